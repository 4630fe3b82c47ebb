package storage

import (
	"context"
	"fmt"

	"github.com/Davetheuj/SCWebService/internal/domains/entities"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

var ErrNoHostAvailable = fmt.Errorf("no host available")

// Plain queue.

func (client *Client) PutMatchmakingHost(ctx context.Context, host entities.MatchmakingHost) error {
	return client.putHost(ctx, client.cfg.MatchmakingHostsTableName, host)
}

func (client *Client) FindMatchmakingHost(ctx context.Context, username string) (entities.MatchmakingHost, error) {
	return client.findHost(ctx, client.cfg.MatchmakingHostsTableName, username)
}

func (client *Client) RemoveMatchmakingHost(ctx context.Context, username string) (bool, error) {
	return client.removeHost(ctx, client.cfg.MatchmakingHostsTableName, username)
}

// Ranked queue. Same mechanics as the plain queue, separate table.

func (client *Client) PutRankedMatchmakingHost(ctx context.Context, host entities.MatchmakingHost) error {
	return client.putHost(ctx, client.cfg.RankedMatchmakingHostsTableName, host)
}

func (client *Client) FindRankedMatchmakingHost(ctx context.Context, username string) (entities.MatchmakingHost, error) {
	return client.findHost(ctx, client.cfg.RankedMatchmakingHostsTableName, username)
}

func (client *Client) RemoveRankedMatchmakingHost(ctx context.Context, username string) (bool, error) {
	return client.removeHost(ctx, client.cfg.RankedMatchmakingHostsTableName, username)
}

// putHost enqueues a host. The table is keyed by Username, so re-queueing
// while already queued overwrites the previous entry.
func (client *Client) putHost(ctx context.Context, table *string, host entities.MatchmakingHost) error {
	av, err := attributevalue.MarshalMap(host)
	if err != nil {
		return fmt.Errorf("failed to marshal host: %w", err)
	}
	_, err = client.dynamodb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: table,
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("failed to put host: %w", err)
	}
	return nil
}

// findHost returns the longest-waiting host other than the requester.
// Queue position is decided by insertion time alone; the requester's rating
// plays no part in candidate selection. The scan filter narrows pages
// server-side, but the exclusion is enforced again in selectHost so it does
// not hinge on the expression alone.
func (client *Client) findHost(ctx context.Context, table *string, username string) (entities.MatchmakingHost, error) {
	input := &dynamodb.ScanInput{
		TableName:        table,
		FilterExpression: aws.String("Username <> :username"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":username": &types.AttributeValueMemberS{Value: username},
		},
	}

	var candidates []entities.MatchmakingHost
	for {
		output, err := client.dynamodb.Scan(ctx, input)
		if err != nil {
			return entities.MatchmakingHost{}, err
		}
		var hosts []entities.MatchmakingHost
		if err := attributevalue.UnmarshalListOfMaps(output.Items, &hosts); err != nil {
			return entities.MatchmakingHost{}, err
		}
		candidates = append(candidates, hosts...)
		if output.LastEvaluatedKey == nil {
			break
		}
		input.ExclusiveStartKey = output.LastEvaluatedKey
	}

	host, ok := selectHost(candidates, username)
	if !ok {
		return entities.MatchmakingHost{}, ErrNoHostAvailable
	}
	return host, nil
}

// selectHost picks the earliest-queued host whose username differs from the
// requester. A queue holding only the requester yields no candidate.
func selectHost(hosts []entities.MatchmakingHost, username string) (entities.MatchmakingHost, bool) {
	var earliest entities.MatchmakingHost
	var found bool
	for _, host := range hosts {
		if host.Username == username {
			continue
		}
		if !found || host.CreatedAt.Before(earliest.CreatedAt) {
			earliest = host
			found = true
		}
	}
	return earliest, found
}

// removeHost dequeues a host. The returned flag reports whether a live
// entry was actually deleted; false is a soft miss, not a failure.
func (client *Client) removeHost(ctx context.Context, table *string, username string) (bool, error) {
	output, err := client.dynamodb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: table,
		Key: map[string]types.AttributeValue{
			"Username": &types.AttributeValueMemberS{Value: username},
		},
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, err
	}
	return output.Attributes != nil, nil
}
