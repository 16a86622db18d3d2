package dynamodb

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"

	"github.com/alan12292009/megaroll-core/pkg/models"
)

const ledgerGSI = "gsi1pk-timestamp-index"

// ledgerPartition keys all entries into one GSI partition so the most recent
// entries can be read in timestamp order.
const ledgerPartition = "LEDGER_ENTRIES"

// ledgerPut builds the Put operation for one ledger entry within a larger
// write transaction.
func (s *Store) ledgerPut(txID string, accountID, debit, credit int64, description string, ts time.Time) (types.TransactWriteItem, error) {
	entry := models.LedgerEntry{
		EntryID:       uuid.New().String(),
		TransactionID: txID,
		AccountID:     accountID,
		Debit:         debit,
		Credit:        credit,
		Description:   description,
		Timestamp:     ts,
		GSI1PK:        ledgerPartition,
	}

	entryAV, err := attributevalue.MarshalMap(entry)
	if err != nil {
		return types.TransactWriteItem{}, fmt.Errorf("failed to marshal ledger entry: %w", err)
	}

	return types.TransactWriteItem{
		Put: &types.Put{
			TableName:           aws.String(s.LedgerTableName),
			Item:                entryAV,
			ConditionExpression: aws.String("attribute_not_exists(entry_id)"),
		},
	}, nil
}

// ListLedgerEntries retrieves the most recent ledger entries.
func (s *Store) ListLedgerEntries(ctx context.Context, limit int32) ([]models.LedgerEntry, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.LedgerTableName),
		IndexName:              aws.String(ledgerGSI),
		KeyConditionExpression: aws.String("gsi1pk = :pk"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": strAV(ledgerPartition),
		},
		ScanIndexForward: aws.Bool(false), // Most recent first.
		Limit:            aws.Int32(limit),
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger entries: %w", err)
	}

	var entries []models.LedgerEntry
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal ledger entries: %w", err)
	}

	return entries, nil
}
