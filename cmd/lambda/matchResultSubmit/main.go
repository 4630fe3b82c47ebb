package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/Davetheuj/SCWebService/internal/auth"
	"github.com/Davetheuj/SCWebService/internal/aws/storage"
	"github.com/Davetheuj/SCWebService/internal/domains/dtos"
	"github.com/Davetheuj/SCWebService/internal/settlement"
	"github.com/Davetheuj/SCWebService/pkg/logging"
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.uber.org/zap"
)

var settlementService *settlement.Service

func init() {
	awsCfg, _ := config.LoadDefaultConfig(context.TODO())
	storageClient := storage.NewClient(dynamodb.NewFromConfig(awsCfg), storage.NewConfig())

	issuer, err := auth.NewIssuer(auth.NewConfig())
	if err != nil {
		// Without a signing secret the function must not come up at all.
		panic(err)
	}
	settlementService = settlement.NewService(issuer, storageClient, settlement.NewConfig())
}

// Handle match result submissions. Token failures surface as 401 so the
// client knows to restart the match rather than fix the payload.
func handler(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	var req dtos.MatchSubmissionRequest
	if err := json.Unmarshal([]byte(event.Body), &req); err != nil {
		return events.APIGatewayProxyResponse{StatusCode: http.StatusBadRequest}, nil
	}

	gems, err := settlementService.SubmitResult(ctx, req, time.Now().UTC())
	switch {
	case errors.Is(err, settlement.ErrInvalidToken):
		return events.APIGatewayProxyResponse{
			StatusCode: http.StatusUnauthorized,
			Body:       "Invalid or expired token.",
		}, nil
	case errors.Is(err, settlement.ErrMatchTooShort):
		return events.APIGatewayProxyResponse{
			StatusCode: http.StatusBadRequest,
			Body:       "Invalid match data",
		}, nil
	case errors.Is(err, settlement.ErrUserNotFound):
		return events.APIGatewayProxyResponse{StatusCode: http.StatusNotFound}, nil
	case err != nil:
		logging.Error("failed to settle match result", zap.Error(err))
		return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError}, nil
	}

	rewardJson, err := json.Marshal(dtos.MatchRewardResponse{Gems: gems})
	if err != nil {
		logging.Error("failed to marshal reward response", zap.Error(err))
		return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError}, nil
	}
	return events.APIGatewayProxyResponse{StatusCode: http.StatusAccepted, Body: string(rewardJson)}, nil
}

func main() {
	lambda.Start(handler)
}
