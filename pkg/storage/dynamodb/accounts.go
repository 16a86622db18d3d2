package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/alan12292009/megaroll-core/pkg/models"
	"github.com/alan12292009/megaroll-core/pkg/storage"
)

const usernameIndex = "username-index"

// CreateAccount creates a new account record in DynamoDB.
func (s *Store) CreateAccount(ctx context.Context, account *models.Account) (*models.Account, error) {
	now := time.Now()
	account.CreatedAt = now
	account.LastActiveAt = now
	account.Version = 1

	accountAV, err := attributevalue.MarshalMap(account)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal account: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName:           aws.String(s.AccountsTableName),
		Item:                accountAV,
		ConditionExpression: aws.String("attribute_not_exists(id)"), // Prevent overwriting existing accounts.
	}

	_, err = s.Client.PutItem(ctx, input)
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return nil, fmt.Errorf("account %d already exists: %w", account.ID, storage.ErrConflict)
		}
		return nil, fmt.Errorf("failed to create account in DynamoDB: %w", err)
	}

	return account, nil
}

// GetAccount retrieves an account from DynamoDB by its ID.
func (s *Store) GetAccount(ctx context.Context, accountID int64) (*models.Account, error) {
	input := &dynamodb.GetItemInput{
		TableName: aws.String(s.AccountsTableName),
		Key:       map[string]types.AttributeValue{"id": numAV(accountID)},
	}

	result, err := s.Client.GetItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get account from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, fmt.Errorf("account %d: %w", accountID, storage.ErrNotFound)
	}

	var account models.Account
	if err := attributevalue.UnmarshalMap(result.Item, &account); err != nil {
		return nil, fmt.Errorf("failed to unmarshal account: %w", err)
	}

	return &account, nil
}

// GetAccountByUsername retrieves an account via the username GSI.
func (s *Store) GetAccountByUsername(ctx context.Context, username string) (*models.Account, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.AccountsTableName),
		IndexName:              aws.String(usernameIndex),
		KeyConditionExpression: aws.String("username = :username"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":username": strAV(username),
		},
		Limit: aws.Int32(1),
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query account by username: %w", err)
	}

	if len(result.Items) == 0 {
		return nil, fmt.Errorf("account %q: %w", username, storage.ErrNotFound)
	}

	var account models.Account
	if err := attributevalue.UnmarshalMap(result.Items[0], &account); err != nil {
		return nil, fmt.Errorf("failed to unmarshal account: %w", err)
	}

	return &account, nil
}

// AdjustBalance applies a signed delta to an account's balance. The condition
// expression makes the non-negativity check atomic with the mutation: a
// concurrent debit cannot interleave between check and commit.
func (s *Store) AdjustBalance(ctx context.Context, accountID int64, delta int64) (bool, error) {
	nowAV, err := attributevalue.Marshal(time.Now())
	if err != nil {
		return false, fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	// balance >= :floor is equivalent to balance + delta >= 0 for debits
	// and always true for credits.
	var floor int64
	if delta < 0 {
		floor = -delta
	}

	input := &dynamodb.UpdateItemInput{
		TableName:           aws.String(s.AccountsTableName),
		Key:                 map[string]types.AttributeValue{"id": numAV(accountID)},
		UpdateExpression:    aws.String("SET balance = balance + :delta, last_active_at = :now, version = version + :inc"),
		ConditionExpression: aws.String("attribute_exists(id) AND balance >= :floor"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":delta": numAV(delta),
			":floor": numAV(floor),
			":now":   nowAV,
			":inc":   numAV(1),
		},
	}

	_, err = s.Client.UpdateItem(ctx, input)
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			// Insufficient funds is an expected outcome, not a fault.
			return false, nil
		}
		return false, fmt.Errorf("failed to adjust balance: %w", err)
	}

	return true, nil
}

// TopAccounts retrieves the highest-ranked accounts by casino wins. The
// accounts table stays small enough that a scan-and-sort is acceptable here;
// the presentation layer caps limit at leaderboard size.
func (s *Store) TopAccounts(ctx context.Context, limit int32) ([]models.Account, error) {
	input := &dynamodb.ScanInput{
		TableName:        aws.String(s.AccountsTableName),
		FilterExpression: aws.String("banned = :banned AND total_games > :zero"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":banned": &types.AttributeValueMemberBOOL{Value: false},
			":zero":   numAV(0),
		},
	}

	result, err := s.Client.Scan(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to scan accounts table: %w", err)
	}

	var accounts []models.Account
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &accounts); err != nil {
		return nil, fmt.Errorf("failed to unmarshal accounts: %w", err)
	}

	sort.Slice(accounts, func(i, j int) bool {
		if accounts[i].TotalWins != accounts[j].TotalWins {
			return accounts[i].TotalWins > accounts[j].TotalWins
		}
		return accounts[i].TotalGames > accounts[j].TotalGames
	})

	if int32(len(accounts)) > limit {
		accounts = accounts[:limit]
	}

	return accounts, nil
}
