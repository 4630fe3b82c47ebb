package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

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

// Handle board preset updates. The request must carry valid credentials;
// only preset data is writable through this operation.
func handler(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	var req dtos.UserUpdateRequest
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

	user.BoardPresets = dtos.BoardPresetsFromRequests(req.BoardPresets)
	user.UpdatedAt = time.Now().UTC()
	if err := storageClient.UpdateUser(ctx, user); err != nil {
		logging.Error("failed to update user", zap.Error(err))
		return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError}, nil
	}
	return events.APIGatewayProxyResponse{StatusCode: http.StatusAccepted}, nil
}

func main() {
	lambda.Start(handler)
}
