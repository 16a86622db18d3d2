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

	"github.com/alan12292009/megaroll-core/pkg/models"
	"github.com/alan12292009/megaroll-core/pkg/storage"
)

const ownerGSI = "owner_id-index"

// GetAsset retrieves an asset by its ID.
func (s *Store) GetAsset(ctx context.Context, assetID string) (*models.Asset, error) {
	input := &dynamodb.GetItemInput{
		TableName: aws.String(s.AssetsTableName),
		Key:       map[string]types.AttributeValue{"id": strAV(assetID)},
	}

	result, err := s.Client.GetItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get asset: %w", err)
	}

	if result.Item == nil {
		return nil, fmt.Errorf("asset %s: %w", assetID, storage.ErrNotFound)
	}

	var asset models.Asset
	if err := attributevalue.UnmarshalMap(result.Item, &asset); err != nil {
		return nil, fmt.Errorf("failed to unmarshal asset: %w", err)
	}

	return &asset, nil
}

// ListAssetsByOwner retrieves all assets held by an account.
func (s *Store) ListAssetsByOwner(ctx context.Context, ownerID int64) ([]models.Asset, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.AssetsTableName),
		IndexName:              aws.String(ownerGSI),
		KeyConditionExpression: aws.String("owner_id = :owner"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":owner": numAV(ownerID),
		},
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query assets by owner: %w", err)
	}

	var assets []models.Asset
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &assets); err != nil {
		return nil, fmt.Errorf("failed to unmarshal assets: %w", err)
	}

	return assets, nil
}

// PurchaseAsset debits the buyer the quoted price, routes the proceeds to the
// collector and creates the asset record, all in one commit. The buyer's
// balance is re-validated at commit time.
func (s *Store) PurchaseAsset(ctx context.Context, asset *models.Asset) (*models.Asset, error) {
	now := time.Now()
	txID := uuid.New().String()

	asset.Version = 1
	asset.CreatedAt = now

	assetAV, err := attributevalue.MarshalMap(asset)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal asset: %w", err)
	}

	nowAV, err := attributevalue.Marshal(now)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	items := []types.TransactWriteItem{
		{
			// Operation 1: Debit the buyer the quoted price.
			Update: &types.Update{
				TableName:           aws.String(s.AccountsTableName),
				Key:                 map[string]types.AttributeValue{"id": numAV(asset.OwnerID)},
				UpdateExpression:    aws.String("SET balance = balance - :price, version = version + :inc, last_active_at = :now"),
				ConditionExpression: aws.String("balance >= :price"),
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":price": numAV(asset.Price),
					":inc":   numAV(1),
					":now":   nowAV,
				},
			},
		},
		{
			// Operation 2: Route the proceeds to the collector.
			Update: &types.Update{
				TableName:           aws.String(s.AccountsTableName),
				Key:                 map[string]types.AttributeValue{"id": numAV(s.CollectorID)},
				UpdateExpression:    aws.String("SET balance = balance + :price, version = version + :inc"),
				ConditionExpression: aws.String("attribute_exists(id)"),
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":price": numAV(asset.Price),
					":inc":   numAV(1),
				},
			},
		},
		{
			// Operation 3: Create the asset owned by the buyer.
			Put: &types.Put{
				TableName:           aws.String(s.AssetsTableName),
				Item:                assetAV,
				ConditionExpression: aws.String("attribute_not_exists(id)"),
			},
		},
	}

	debitEntry, err := s.ledgerPut(txID, asset.OwnerID, asset.Price, 0,
		fmt.Sprintf("Purchase %s %s %s", asset.Category, asset.Brand, asset.Model), now)
	if err != nil {
		return nil, err
	}
	creditEntry, err := s.ledgerPut(txID, s.CollectorID, 0, asset.Price,
		fmt.Sprintf("Sale of %s %s", asset.Category, asset.ID), now)
	if err != nil {
		return nil, err
	}
	items = append(items, debitEntry, creditEntry)

	_, err = s.Client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			if cancelledAt(tce, 0) {
				return nil, storage.ErrInsufficientFunds
			}
			if cancelledAt(tce, 1) {
				return nil, storage.ErrNotFound
			}
			if cancelledAt(tce, 2) {
				return nil, storage.ErrConflict
			}
		}
		return nil, fmt.Errorf("failed to execute purchase transaction: %w", err)
	}

	return asset, nil
}

// BuybackAsset removes the asset, credits the seller the payout and the
// collector the commission. The ownership condition rejects a buyback of an
// asset the seller traded away after the quote was issued.
func (s *Store) BuybackAsset(ctx context.Context, sellerID int64, assetID string, payout, commission int64) error {
	now := time.Now()
	txID := uuid.New().String()

	nowAV, err := attributevalue.Marshal(now)
	if err != nil {
		return fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	items := []types.TransactWriteItem{
		{
			// Operation 1: Remove the asset, only if the seller still owns it.
			Delete: &types.Delete{
				TableName:           aws.String(s.AssetsTableName),
				Key:                 map[string]types.AttributeValue{"id": strAV(assetID)},
				ConditionExpression: aws.String("owner_id = :seller"),
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":seller": numAV(sellerID),
				},
			},
		},
		{
			// Operation 2: Credit the seller the payout.
			Update: &types.Update{
				TableName:           aws.String(s.AccountsTableName),
				Key:                 map[string]types.AttributeValue{"id": numAV(sellerID)},
				UpdateExpression:    aws.String("SET balance = balance + :payout, version = version + :inc, last_active_at = :now"),
				ConditionExpression: aws.String("attribute_exists(id)"),
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":payout": numAV(payout),
					":inc":    numAV(1),
					":now":    nowAV,
				},
			},
		},
		{
			// Operation 3: Credit the collector the commission.
			Update: &types.Update{
				TableName:           aws.String(s.AccountsTableName),
				Key:                 map[string]types.AttributeValue{"id": numAV(s.CollectorID)},
				UpdateExpression:    aws.String("SET balance = balance + :commission, version = version + :inc"),
				ConditionExpression: aws.String("attribute_exists(id)"),
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":commission": numAV(commission),
					":inc":        numAV(1),
				},
			},
		},
	}

	payoutEntry, err := s.ledgerPut(txID, sellerID, 0, payout, fmt.Sprintf("Buyback of asset %s", assetID), now)
	if err != nil {
		return err
	}
	commissionEntry, err := s.ledgerPut(txID, s.CollectorID, 0, commission, fmt.Sprintf("Buyback commission for asset %s", assetID), now)
	if err != nil {
		return err
	}
	items = append(items, payoutEntry, commissionEntry)

	_, err = s.Client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			if cancelledAt(tce, 0) {
				return storage.ErrNotOwned
			}
			if cancelledAt(tce, 1) || cancelledAt(tce, 2) {
				return storage.ErrNotFound
			}
		}
		return fmt.Errorf("failed to execute buyback transaction: %w", err)
	}

	return nil
}

// TransferAsset reassigns the asset's owner. No money moves; the ownership
// condition rejects a handover the sender can no longer make.
func (s *Store) TransferAsset(ctx context.Context, assetID string, fromID, toID int64) error {
	input := &dynamodb.UpdateItemInput{
		TableName:           aws.String(s.AssetsTableName),
		Key:                 map[string]types.AttributeValue{"id": strAV(assetID)},
		UpdateExpression:    aws.String("SET owner_id = :to, version = version + :inc"),
		ConditionExpression: aws.String("owner_id = :from"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":to":   numAV(toID),
			":from": numAV(fromID),
			":inc":  numAV(1),
		},
	}

	_, err := s.Client.UpdateItem(ctx, input)
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return fmt.Errorf("asset %s: %w", assetID, storage.ErrNotOwned)
		}
		return fmt.Errorf("failed to transfer asset: %w", err)
	}

	return nil
}
