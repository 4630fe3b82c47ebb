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

// Handle ranked match search requests. An empty queue is a successful
// request with no content, not a failure.
func handler(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	var req dtos.FindMatchRequest
	if err := json.Unmarshal([]byte(event.Body), &req); err != nil {
		return events.APIGatewayProxyResponse{StatusCode: http.StatusBadRequest}, nil
	}

	host, err := storageClient.FindRankedMatchmakingHost(ctx, req.Username)
	if errors.Is(err, storage.ErrNoHostAvailable) {
		return events.APIGatewayProxyResponse{StatusCode: http.StatusNoContent}, nil
	}
	if err != nil {
		logging.Error("failed to find ranked host", zap.Error(err))
		return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError}, nil
	}

	hostJson, err := json.Marshal(dtos.MatchmakingHostResponseFromEntity(host))
	if err != nil {
		logging.Error("failed to marshal host response", zap.Error(err))
		return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError}, nil
	}
	return events.APIGatewayProxyResponse{StatusCode: http.StatusOK, Body: string(hostJson)}, nil
}

func main() {
	lambda.Start(handler)
}
