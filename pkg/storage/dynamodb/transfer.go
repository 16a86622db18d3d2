package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"

	"github.com/alan12292009/megaroll-core/pkg/storage"
)

// Transfer atomically debits the sender, credits the receiver net of fee and
// routes the fee to the collector. The sender's balance condition is
// evaluated at commit time, so a concurrent debit cannot push it negative.
func (s *Store) Transfer(ctx context.Context, fromID, toID, amount, fee int64) error {
	now := time.Now()
	txID := uuid.New().String()

	slog.Log(ctx, slog.LevelDebug, "settling transfer",
		"tx_id", txID, "from", fromID, "to", toID, "amount", amount, "fee", fee)

	nowAV, err := attributevalue.Marshal(now)
	if err != nil {
		return fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	items := []types.TransactWriteItem{
		{
			// Operation 1: Debit the sender's full amount.
			Update: &types.Update{
				TableName:           aws.String(s.AccountsTableName),
				Key:                 map[string]types.AttributeValue{"id": numAV(fromID)},
				UpdateExpression:    aws.String("SET balance = balance - :amount, version = version + :inc, last_active_at = :now"),
				ConditionExpression: aws.String("balance >= :amount"),
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":amount": numAV(amount),
					":inc":    numAV(1),
					":now":    nowAV,
				},
			},
		},
		{
			// Operation 2: Credit the receiver net of fee.
			Update: &types.Update{
				TableName:           aws.String(s.AccountsTableName),
				Key:                 map[string]types.AttributeValue{"id": numAV(toID)},
				UpdateExpression:    aws.String("SET balance = balance + :net, version = version + :inc"),
				ConditionExpression: aws.String("attribute_exists(id)"),
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":net": numAV(amount - fee),
					":inc": numAV(1),
				},
			},
		},
		{
			// Operation 3: Route the fee to the collector.
			Update: &types.Update{
				TableName:           aws.String(s.AccountsTableName),
				Key:                 map[string]types.AttributeValue{"id": numAV(s.CollectorID)},
				UpdateExpression:    aws.String("SET balance = balance + :fee, version = version + :inc"),
				ConditionExpression: aws.String("attribute_exists(id)"),
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":fee": numAV(fee),
					":inc": numAV(1),
				},
			},
		},
	}

	debitEntry, err := s.ledgerPut(txID, fromID, amount, 0, fmt.Sprintf("Transfer %s to account %d", txID, toID), now)
	if err != nil {
		return err
	}
	creditEntry, err := s.ledgerPut(txID, toID, 0, amount-fee, fmt.Sprintf("Transfer %s from account %d", txID, fromID), now)
	if err != nil {
		return err
	}
	feeEntry, err := s.ledgerPut(txID, s.CollectorID, 0, fee, fmt.Sprintf("Transfer fee for %s", txID), now)
	if err != nil {
		return err
	}
	items = append(items, debitEntry, creditEntry, feeEntry)

	_, err = s.Client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			if cancelledAt(tce, 0) {
				return storage.ErrInsufficientFunds
			}
			if cancelledAt(tce, 1) || cancelledAt(tce, 2) {
				return storage.ErrNotFound
			}
		}
		return fmt.Errorf("failed to execute transfer transaction: %w", err)
	}

	return nil
}
