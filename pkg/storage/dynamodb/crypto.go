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
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/alan12292009/megaroll-core/pkg/models"
	"github.com/alan12292009/megaroll-core/pkg/storage"
)

// decimal.Decimal carries unexported fields, so instruments and positions
// round-trip through string-typed item structs at the DynamoDB boundary.

type instrumentItem struct {
	Symbol    string    `dynamodbav:"symbol"`
	Name      string    `dynamodbav:"name"`
	Price     string    `dynamodbav:"price"`
	UpdatedAt time.Time `dynamodbav:"updated_at"`
}

func (i instrumentItem) toModel() (models.Instrument, error) {
	price, err := decimal.NewFromString(i.Price)
	if err != nil {
		return models.Instrument{}, fmt.Errorf("failed to parse price for %s: %w", i.Symbol, err)
	}
	return models.Instrument{Symbol: i.Symbol, Name: i.Name, Price: price, UpdatedAt: i.UpdatedAt}, nil
}

type positionItem struct {
	AccountID int64  `dynamodbav:"account_id"`
	Symbol    string `dynamodbav:"symbol"`
	Amount    string `dynamodbav:"amount"`
	AvgCost   string `dynamodbav:"avg_cost"`
	Version   int64  `dynamodbav:"version"`
}

func (p positionItem) toModel() (models.CryptoPosition, error) {
	amount, err := decimal.NewFromString(p.Amount)
	if err != nil {
		return models.CryptoPosition{}, fmt.Errorf("failed to parse amount for %s: %w", p.Symbol, err)
	}
	avgCost, err := decimal.NewFromString(p.AvgCost)
	if err != nil {
		return models.CryptoPosition{}, fmt.Errorf("failed to parse avg cost for %s: %w", p.Symbol, err)
	}
	return models.CryptoPosition{
		AccountID: p.AccountID,
		Symbol:    p.Symbol,
		Amount:    amount,
		AvgCost:   avgCost,
		Version:   p.Version,
	}, nil
}

func positionKey(accountID int64, symbol string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"account_id": numAV(accountID),
		"symbol":     strAV(symbol),
	}
}

// ListInstruments retrieves all tradeable instruments.
func (s *Store) ListInstruments(ctx context.Context) ([]models.Instrument, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(s.InstrumentsTableName),
	}

	result, err := s.Client.Scan(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to scan instruments: %w", err)
	}

	var items []instrumentItem
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal instruments: %w", err)
	}

	instruments := make([]models.Instrument, 0, len(items))
	for _, item := range items {
		instrument, err := item.toModel()
		if err != nil {
			return nil, err
		}
		instruments = append(instruments, instrument)
	}

	return instruments, nil
}

// GetInstrument retrieves one instrument by symbol.
func (s *Store) GetInstrument(ctx context.Context, symbol string) (*models.Instrument, error) {
	input := &dynamodb.GetItemInput{
		TableName: aws.String(s.InstrumentsTableName),
		Key:       map[string]types.AttributeValue{"symbol": strAV(symbol)},
	}

	result, err := s.Client.GetItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get instrument: %w", err)
	}

	if result.Item == nil {
		return nil, fmt.Errorf("instrument %s: %w", symbol, storage.ErrNotFound)
	}

	var item instrumentItem
	if err := attributevalue.UnmarshalMap(result.Item, &item); err != nil {
		return nil, fmt.Errorf("failed to unmarshal instrument: %w", err)
	}

	instrument, err := item.toModel()
	if err != nil {
		return nil, err
	}
	return &instrument, nil
}

// SeedInstruments upserts the default instrument set. Prices of existing
// instruments are refreshed; positions are untouched.
func (s *Store) SeedInstruments(ctx context.Context, instruments []models.Instrument) error {
	for _, instrument := range instruments {
		item := instrumentItem{
			Symbol:    instrument.Symbol,
			Name:      instrument.Name,
			Price:     instrument.Price.String(),
			UpdatedAt: time.Now(),
		}
		itemAV, err := attributevalue.MarshalMap(item)
		if err != nil {
			return fmt.Errorf("failed to marshal instrument %s: %w", instrument.Symbol, err)
		}

		input := &dynamodb.PutItemInput{
			TableName: aws.String(s.InstrumentsTableName),
			Item:      itemAV,
		}
		if _, err := s.Client.PutItem(ctx, input); err != nil {
			return fmt.Errorf("failed to seed instrument %s: %w", instrument.Symbol, err)
		}
	}

	return nil
}

// GetPosition retrieves an account's position in one instrument.
func (s *Store) GetPosition(ctx context.Context, accountID int64, symbol string) (*models.CryptoPosition, error) {
	input := &dynamodb.GetItemInput{
		TableName: aws.String(s.PositionsTableName),
		Key:       positionKey(accountID, symbol),
	}

	result, err := s.Client.GetItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get position: %w", err)
	}

	if result.Item == nil {
		return nil, fmt.Errorf("position %d/%s: %w", accountID, symbol, storage.ErrNotFound)
	}

	var item positionItem
	if err := attributevalue.UnmarshalMap(result.Item, &item); err != nil {
		return nil, fmt.Errorf("failed to unmarshal position: %w", err)
	}

	position, err := item.toModel()
	if err != nil {
		return nil, err
	}
	return &position, nil
}

// ListPositions retrieves all of an account's positions.
func (s *Store) ListPositions(ctx context.Context, accountID int64) ([]models.CryptoPosition, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.PositionsTableName),
		KeyConditionExpression: aws.String("account_id = :account"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":account": numAV(accountID),
		},
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query positions: %w", err)
	}

	var items []positionItem
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal positions: %w", err)
	}

	positions := make([]models.CryptoPosition, 0, len(items))
	for _, item := range items {
		position, err := item.toModel()
		if err != nil {
			return nil, err
		}
		positions = append(positions, position)
	}

	return positions, nil
}

// positionWrite builds the conditional Put for the recomputed position.
// prevVersion 0 asserts the position does not exist yet; any other value
// asserts it has not changed since it was read.
func (s *Store) positionWrite(position *models.CryptoPosition, prevVersion int64) (types.TransactWriteItem, error) {
	item := positionItem{
		AccountID: position.AccountID,
		Symbol:    position.Symbol,
		Amount:    position.Amount.String(),
		AvgCost:   position.AvgCost.String(),
		Version:   prevVersion + 1,
	}
	itemAV, err := attributevalue.MarshalMap(item)
	if err != nil {
		return types.TransactWriteItem{}, fmt.Errorf("failed to marshal position: %w", err)
	}

	put := &types.Put{
		TableName: aws.String(s.PositionsTableName),
		Item:      itemAV,
	}
	if prevVersion == 0 {
		put.ConditionExpression = aws.String("attribute_not_exists(account_id)")
	} else {
		put.ConditionExpression = aws.String("version = :prev")
		put.ExpressionAttributeValues = map[string]types.AttributeValue{
			":prev": numAV(prevVersion),
		}
	}

	return types.TransactWriteItem{Put: put}, nil
}

// SettleCryptoBuy debits the buyer the full notional, credits the collector
// the fee and writes the recomputed position, all in one commit. Both the
// buyer's balance and the position version are re-validated at commit time.
func (s *Store) SettleCryptoBuy(ctx context.Context, buyerID, debit, fee int64, position *models.CryptoPosition, prevVersion int64) error {
	now := time.Now()
	txID := uuid.New().String()

	nowAV, err := attributevalue.Marshal(now)
	if err != nil {
		return fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	positionWrite, err := s.positionWrite(position, prevVersion)
	if err != nil {
		return err
	}

	items := []types.TransactWriteItem{
		{
			// Operation 1: Debit the buyer the full notional.
			Update: &types.Update{
				TableName:           aws.String(s.AccountsTableName),
				Key:                 map[string]types.AttributeValue{"id": numAV(buyerID)},
				UpdateExpression:    aws.String("SET balance = balance - :debit, version = version + :inc, last_active_at = :now"),
				ConditionExpression: aws.String("balance >= :debit"),
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":debit": numAV(debit),
					":inc":   numAV(1),
					":now":   nowAV,
				},
			},
		},
		{
			// Operation 2: Route the fee to the collector.
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
		// Operation 3: Write the recomputed position.
		positionWrite,
	}

	debitEntry, err := s.ledgerPut(txID, buyerID, debit, 0, fmt.Sprintf("Buy %s %s", position.Symbol, position.Amount), now)
	if err != nil {
		return err
	}
	feeEntry, err := s.ledgerPut(txID, s.CollectorID, 0, fee, fmt.Sprintf("Trade fee for %s", txID), now)
	if err != nil {
		return err
	}
	items = append(items, debitEntry, feeEntry)

	_, err = s.Client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			if cancelledAt(tce, 0) {
				return storage.ErrInsufficientFunds
			}
			if cancelledAt(tce, 1) {
				return storage.ErrNotFound
			}
			if cancelledAt(tce, 2) {
				return storage.ErrConflict
			}
		}
		return fmt.Errorf("failed to execute crypto buy transaction: %w", err)
	}

	return nil
}

// SettleCryptoSell credits the seller the net proceeds, credits the collector
// the fee and writes or deletes the position, all in one commit. The position
// version condition rejects a sale computed against a stale holding.
func (s *Store) SettleCryptoSell(ctx context.Context, sellerID, credit, fee int64, position *models.CryptoPosition, prevVersion int64, deletePosition bool) error {
	now := time.Now()
	txID := uuid.New().String()

	nowAV, err := attributevalue.Marshal(now)
	if err != nil {
		return fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	var positionWrite types.TransactWriteItem
	if deletePosition {
		positionWrite = types.TransactWriteItem{
			Delete: &types.Delete{
				TableName:           aws.String(s.PositionsTableName),
				Key:                 positionKey(position.AccountID, position.Symbol),
				ConditionExpression: aws.String("version = :prev"),
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":prev": numAV(prevVersion),
				},
			},
		}
	} else {
		positionWrite, err = s.positionWrite(position, prevVersion)
		if err != nil {
			return err
		}
	}

	items := []types.TransactWriteItem{
		{
			// Operation 1: Credit the seller the net proceeds.
			Update: &types.Update{
				TableName:           aws.String(s.AccountsTableName),
				Key:                 map[string]types.AttributeValue{"id": numAV(sellerID)},
				UpdateExpression:    aws.String("SET balance = balance + :credit, version = version + :inc, last_active_at = :now"),
				ConditionExpression: aws.String("attribute_exists(id)"),
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":credit": numAV(credit),
					":inc":    numAV(1),
					":now":    nowAV,
				},
			},
		},
		{
			// Operation 2: Route the fee to the collector.
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
		// Operation 3: Write the remaining position, or delete it when dust.
		positionWrite,
	}

	creditEntry, err := s.ledgerPut(txID, sellerID, 0, credit, fmt.Sprintf("Sell %s", position.Symbol), now)
	if err != nil {
		return err
	}
	feeEntry, err := s.ledgerPut(txID, s.CollectorID, 0, fee, fmt.Sprintf("Trade fee for %s", txID), now)
	if err != nil {
		return err
	}
	items = append(items, creditEntry, feeEntry)

	_, err = s.Client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			if cancelledAt(tce, 0) || cancelledAt(tce, 1) {
				return storage.ErrNotFound
			}
			if cancelledAt(tce, 2) {
				return storage.ErrConflict
			}
		}
		return fmt.Errorf("failed to execute crypto sell transaction: %w", err)
	}

	return nil
}
