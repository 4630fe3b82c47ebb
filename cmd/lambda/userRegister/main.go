package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/Davetheuj/SCWebService/internal/aws/storage"
	"github.com/Davetheuj/SCWebService/internal/domains/dtos"
	"github.com/Davetheuj/SCWebService/internal/domains/entities"
	"github.com/Davetheuj/SCWebService/pkg/logging"
	"github.com/Davetheuj/SCWebService/pkg/utils"
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

// Handle registration requests. A taken username is answered with the
// literal "taken" body the client checks for.
func handler(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	var req dtos.UserRegisterRequest
	if err := json.Unmarshal([]byte(event.Body), &req); err != nil || req.Username == "" {
		return events.APIGatewayProxyResponse{StatusCode: http.StatusBadRequest}, nil
	}

	_, err := storageClient.GetUserByUsername(ctx, req.Username)
	if err == nil {
		return events.APIGatewayProxyResponse{StatusCode: http.StatusOK, Body: `"taken"`}, nil
	}
	if !errors.Is(err, storage.ErrUserNotFound) {
		logging.Error("failed to check username", zap.Error(err))
		return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError}, nil
	}

	now := time.Now().UTC()
	user := entities.User{
		Id:        utils.GenerateUUID(),
		Username:  req.Username,
		Password:  req.Password,
		Email:     req.Email,
		Rating:    entities.DefaultRating,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := storageClient.PutUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrUserAlreadyExists) {
			return events.APIGatewayProxyResponse{StatusCode: http.StatusConflict}, nil
		}
		logging.Error("failed to create user", zap.Error(err))
		return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError}, nil
	}

	userJson, err := json.Marshal(dtos.UserResponseFromEntity(user, true))
	if err != nil {
		logging.Error("failed to marshal user response", zap.Error(err))
		return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError}, nil
	}
	return events.APIGatewayProxyResponse{StatusCode: http.StatusCreated, Body: string(userJson)}, nil
}

func main() {
	lambda.Start(handler)
}
