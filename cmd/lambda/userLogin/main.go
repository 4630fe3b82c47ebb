package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Davetheuj/SCWebService/internal/aws/storage"
	"github.com/Davetheuj/SCWebService/internal/domains/dtos"
	"github.com/Davetheuj/SCWebService/pkg/logging"
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.uber.org/zap"
)

var storageClient *storage.Client

func init() {
	cfg, _ := config.LoadDefaultConfig(context.TODO())
	storageClient = storage.NewClient(dynamodb.NewFromConfig(cfg), storage.NewConfig())
}

// Handle login requests. Wrong credentials read the same as an unknown
// user.
func handler(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	var req dtos.UserLoginRequest
	if err := json.Unmarshal([]byte(event.Body), &req); err != nil || req.Username == "" {
		return events.APIGatewayProxyResponse{StatusCode: http.StatusBadRequest}, nil
	}

	user, err := storageClient.GetUserByCredentials(ctx, req.Username, req.Password)
	if errors.Is(err, storage.ErrUserNotFound) {
		return events.APIGatewayProxyResponse{StatusCode: http.StatusNotFound}, nil
	}
	if err != nil {
		logging.Error("failed to get user", zap.Error(err))
		return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError}, nil
	}

	userJson, err := json.Marshal(dtos.UserResponseFromEntity(user, true))
	if err != nil {
		logging.Error("failed to marshal user response", zap.Error(err))
		return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError}, nil
	}
	return events.APIGatewayProxyResponse{StatusCode: http.StatusOK, Body: string(userJson)}, nil
}

func main() {
	lambda.Start(handler)
}
