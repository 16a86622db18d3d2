package dynamodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/alan12292009/megaroll-core/pkg/models"
)

// GetJackpot retrieves the singleton jackpot pool. consistent forces a
// strongly-consistent read, used right before computing a settlement.
func (s *Store) GetJackpot(ctx context.Context, consistent bool) (*models.Jackpot, error) {
	input := &dynamodb.GetItemInput{
		TableName:      aws.String(s.MetaTableName),
		Key:            map[string]types.AttributeValue{"id": strAV(models.JackpotID)},
		ConsistentRead: aws.Bool(consistent),
	}

	result, err := s.Client.GetItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get jackpot from DynamoDB: %w", err)
	}

	if result.Item == nil {
		// First contact: the pool starts at its seed value.
		return &models.Jackpot{ID: models.JackpotID, Value: 0, Version: 0}, nil
	}

	var jackpot models.Jackpot
	if err := attributevalue.UnmarshalMap(result.Item, &jackpot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal jackpot: %w", err)
	}

	return &jackpot, nil
}

// SeedJackpot creates the jackpot item with the given seed value if it does
// not exist yet. Called once at startup.
func (s *Store) SeedJackpot(ctx context.Context, seed int64) error {
	jackpotAV, err := attributevalue.MarshalMap(models.Jackpot{ID: models.JackpotID, Value: seed, Version: 1})
	if err != nil {
		return fmt.Errorf("failed to marshal jackpot: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName:           aws.String(s.MetaTableName),
		Item:                jackpotAV,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	}

	_, err = s.Client.PutItem(ctx, input)
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return nil // Already seeded.
		}
		return fmt.Errorf("failed to seed jackpot: %w", err)
	}

	return nil
}
