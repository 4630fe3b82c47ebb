package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/Davetheuj/SCWebService/internal/domains/entities"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

var (
	ErrUserNotFound      = fmt.Errorf("user not found")
	ErrUserAlreadyExists = fmt.Errorf("user already exists")
)

func (client *Client) GetUser(ctx context.Context, userId string) (entities.User, error) {
	output, err := client.dynamodb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: client.cfg.UsersTableName,
		Key: map[string]types.AttributeValue{
			"Id": &types.AttributeValueMemberS{
				Value: userId,
			},
		},
	})
	if err != nil {
		return entities.User{}, err
	}
	if output.Item == nil {
		return entities.User{}, ErrUserNotFound
	}
	var user entities.User
	if err := attributevalue.UnmarshalMap(output.Item, &user); err != nil {
		return entities.User{}, err
	}
	return user, nil
}

// GetUserByUsername looks a user up through the username index. It is
// credential-free; callers returning the record to anyone but the owner must
// go through the DTO layer so secure fields are stripped.
func (client *Client) GetUserByUsername(ctx context.Context, username string) (entities.User, error) {
	output, err := client.dynamodb.Query(ctx, &dynamodb.QueryInput{
		TableName:              client.cfg.UsersTableName,
		IndexName:              client.cfg.UsernameIndexName,
		KeyConditionExpression: aws.String("Username = :username"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":username": &types.AttributeValueMemberS{Value: username},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.User{}, err
	}
	if len(output.Items) == 0 {
		return entities.User{}, ErrUserNotFound
	}
	var user entities.User
	if err := attributevalue.UnmarshalMap(output.Items[0], &user); err != nil {
		return entities.User{}, err
	}
	return user, nil
}

// GetUserByCredentials is the credential-checked lookup. A credential
// mismatch reads the same as an absent user so callers cannot probe for
// registered usernames.
func (client *Client) GetUserByCredentials(ctx context.Context, username, password string) (entities.User, error) {
	user, err := client.GetUserByUsername(ctx, username)
	if err != nil {
		return entities.User{}, err
	}
	if user.Password != password {
		return entities.User{}, ErrUserNotFound
	}
	return user, nil
}

func (client *Client) PutUser(ctx context.Context, user entities.User) error {
	av, err := attributevalue.MarshalMap(user)
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}
	_, err = client.dynamodb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           client.cfg.UsersTableName,
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(Id)"),
	})
	if err != nil {
		var conditionErr *types.ConditionalCheckFailedException
		if errors.As(err, &conditionErr) {
			return ErrUserAlreadyExists
		}
		return fmt.Errorf("failed to put user: %w", err)
	}
	return nil
}

// UpdateUser replaces the stored record wholesale, keyed by Id. Last writer
// wins; there is no version check on the item.
func (client *Client) UpdateUser(ctx context.Context, user entities.User) error {
	av, err := attributevalue.MarshalMap(user)
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}
	_, err = client.dynamodb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: client.cfg.UsersTableName,
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}
