package main

import (
	"context"
	"net/http"

	"github.com/Davetheuj/SCWebService/internal/aws/storage"
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

// Handle ranked queue removal requests. An unacknowledged removal is
// reported as unavailable so the client retries, never as success.
func handler(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	username := event.PathParameters["username"]
	if username == "" {
		return events.APIGatewayProxyResponse{StatusCode: http.StatusBadRequest}, nil
	}

	acknowledged, err := storageClient.RemoveRankedMatchmakingHost(ctx, username)
	if err != nil {
		logging.Error("failed to remove ranked host", zap.Error(err))
		return events.APIGatewayProxyResponse{StatusCode: http.StatusServiceUnavailable}, nil
	}
	if !acknowledged {
		return events.APIGatewayProxyResponse{StatusCode: http.StatusServiceUnavailable}, nil
	}
	return events.APIGatewayProxyResponse{StatusCode: http.StatusAccepted}, nil
}

func main() {
	lambda.Start(handler)
}
