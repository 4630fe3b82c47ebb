package main

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/Davetheuj/SCWebService/internal/aws/storage"
	"github.com/Davetheuj/SCWebService/internal/domains/dtos"
	"github.com/Davetheuj/SCWebService/internal/domains/entities"
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

// Handle ranked queue enqueue requests.
func handler(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	var req dtos.MatchmakingHostRequest
	if err := json.Unmarshal([]byte(event.Body), &req); err != nil {
		return events.APIGatewayProxyResponse{StatusCode: http.StatusBadRequest}, nil
	}

	host := entities.MatchmakingHost{
		Username:  req.Username,
		Rating:    req.Rating,
		JoinCode:  req.JoinCode,
		CreatedAt: time.Now().UTC(),
	}
	if err := storageClient.PutRankedMatchmakingHost(ctx, host); err != nil {
		logging.Error("failed to put ranked host", zap.Error(err))
		return events.APIGatewayProxyResponse{StatusCode: http.StatusServiceUnavailable}, nil
	}
	return events.APIGatewayProxyResponse{StatusCode: http.StatusAccepted}, nil
}

func main() {
	lambda.Start(handler)
}
