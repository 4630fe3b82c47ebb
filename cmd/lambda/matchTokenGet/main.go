package main

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/Davetheuj/SCWebService/internal/auth"
	"github.com/Davetheuj/SCWebService/internal/domains/dtos"
	"github.com/Davetheuj/SCWebService/pkg/logging"
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"
)

var issuer *auth.Issuer

func init() {
	var err error
	issuer, err = auth.NewIssuer(auth.NewConfig())
	if err != nil {
		// Without a signing secret the function must not come up at all.
		panic(err)
	}
}

// Handle match session token requests. The token authorizes a later result
// submission for this user and is only ever sent over TLS.
func handler(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	userId := event.PathParameters["userId"]
	if userId == "" {
		return events.APIGatewayProxyResponse{StatusCode: http.StatusBadRequest}, nil
	}

	token, err := issuer.Issue(userId, time.Now().UTC())
	if err != nil {
		logging.Error("failed to issue match token", zap.Error(err))
		return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError}, nil
	}

	tokenJson, err := json.Marshal(dtos.MatchTokenResponse{Token: token})
	if err != nil {
		logging.Error("failed to marshal token response", zap.Error(err))
		return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError}, nil
	}
	return events.APIGatewayProxyResponse{StatusCode: http.StatusOK, Body: string(tokenJson)}, nil
}

func main() {
	lambda.Start(handler)
}
