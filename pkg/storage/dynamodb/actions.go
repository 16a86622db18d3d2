package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/alan12292009/megaroll-core/pkg/models"
	"github.com/alan12292009/megaroll-core/pkg/storage"
)

// CreateAction stores a new single-use pending action.
func (s *Store) CreateAction(ctx context.Context, action *models.PendingAction) (*models.PendingAction, error) {
	action.TTL = ttlFrom(time.Now())

	actionAV, err := attributevalue.MarshalMap(action)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal pending action: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName:           aws.String(s.ActionsTableName),
		Item:                actionAV,
		ConditionExpression: aws.String("attribute_not_exists(#token)"),
		ExpressionAttributeNames: map[string]string{
			"#token": "token",
		},
	}

	if _, err := s.Client.PutItem(ctx, input); err != nil {
		return nil, fmt.Errorf("failed to create pending action: %w", err)
	}

	return action, nil
}

// GetAction retrieves a pending action by its token.
func (s *Store) GetAction(ctx context.Context, token string) (*models.PendingAction, error) {
	input := &dynamodb.GetItemInput{
		TableName: aws.String(s.ActionsTableName),
		Key:       map[string]types.AttributeValue{"token": strAV(token)},
	}

	result, err := s.Client.GetItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get pending action: %w", err)
	}

	if result.Item == nil {
		return nil, fmt.Errorf("pending action %s: %w", token, storage.ErrNotFound)
	}

	var action models.PendingAction
	if err := attributevalue.UnmarshalMap(result.Item, &action); err != nil {
		return nil, fmt.Errorf("failed to unmarshal pending action: %w", err)
	}

	return &action, nil
}

// ConsumeAction deletes the action if it still exists. Two concurrent
// resolutions race on the conditional delete; exactly one wins, the other
// sees ErrNotFound.
func (s *Store) ConsumeAction(ctx context.Context, token string) error {
	input := &dynamodb.DeleteItemInput{
		TableName:           aws.String(s.ActionsTableName),
		Key:                 map[string]types.AttributeValue{"token": strAV(token)},
		ConditionExpression: aws.String("attribute_exists(#token)"),
		ExpressionAttributeNames: map[string]string{
			"#token": "token",
		},
	}

	_, err := s.Client.DeleteItem(ctx, input)
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return fmt.Errorf("pending action %s: %w", token, storage.ErrNotFound)
		}
		return fmt.Errorf("failed to consume pending action: %w", err)
	}

	return nil
}
