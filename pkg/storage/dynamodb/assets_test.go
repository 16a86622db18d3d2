package dynamodb

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/alan12292009/megaroll-core/pkg/models"
	"github.com/alan12292009/megaroll-core/pkg/storage"
	"github.com/alan12292009/megaroll-core/pkg/storage/dynamodb/mocks"
)

func TestPurchaseAsset(t *testing.T) {
	asset := &models.Asset{
		ID:       "asset-1",
		OwnerID:  42,
		Category: models.AssetCar,
		Brand:    "Bugatti",
		Model:    "Chiron",
		Price:    3000000,
		Speed:    420,
	}

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, CollectorID: 1, AccountsTableName: "accounts", AssetsTableName: "assets", LedgerTableName: "ledger"}

		mockClient.On("TransactWriteItems", mock.Anything, mock.AnythingOfType("*dynamodb.TransactWriteItemsInput")).Once().
			Run(func(args mock.Arguments) {
				input := args.Get(1).(*dynamodb.TransactWriteItemsInput)
				// Buyer debit, collector credit, asset put, two ledger entries.
				assert.Len(t, input.TransactItems, 5)
			}).
			Return(&dynamodb.TransactWriteItemsOutput{}, nil)

		result, err := store.PurchaseAsset(context.Background(), asset)

		assert.NoError(t, err)
		assert.Equal(t, int64(1), result.Version)
		mockClient.AssertExpectations(t)
	})

	t.Run("Insufficient Funds", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, CollectorID: 1, AccountsTableName: "accounts", AssetsTableName: "assets", LedgerTableName: "ledger"}

		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Return(nil, cancelledTx(5, 0))

		_, err := store.PurchaseAsset(context.Background(), asset)

		assert.ErrorIs(t, err, storage.ErrInsufficientFunds)
		mockClient.AssertExpectations(t)
	})
}

func TestBuybackAsset(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, CollectorID: 1, AccountsTableName: "accounts", AssetsTableName: "assets", LedgerTableName: "ledger"}

		mockClient.On("TransactWriteItems", mock.Anything, mock.AnythingOfType("*dynamodb.TransactWriteItemsInput")).Once().
			Run(func(args mock.Arguments) {
				input := args.Get(1).(*dynamodb.TransactWriteItemsInput)
				// Asset delete, seller payout, collector commission, two
				// ledger entries.
				assert.Len(t, input.TransactItems, 5)
			}).
			Return(&dynamodb.TransactWriteItemsOutput{}, nil)

		err := store.BuybackAsset(context.Background(), 42, "asset-1", 2400000, 600000)

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("Not Owned", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, CollectorID: 1, AccountsTableName: "accounts", AssetsTableName: "assets", LedgerTableName: "ledger"}

		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Return(nil, cancelledTx(5, 0))

		err := store.BuybackAsset(context.Background(), 42, "asset-1", 2400000, 600000)

		assert.ErrorIs(t, err, storage.ErrNotOwned)
		mockClient.AssertExpectations(t)
	})
}

func TestTransferAsset(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, AssetsTableName: "assets"}

		mockClient.On("UpdateItem", mock.Anything, mock.AnythingOfType("*dynamodb.UpdateItemInput")).Return(&dynamodb.UpdateItemOutput{}, nil)

		err := store.TransferAsset(context.Background(), "asset-1", 42, 43)

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("Not Owned", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, AssetsTableName: "assets"}

		mockClient.On("UpdateItem", mock.Anything, mock.Anything).Return(nil, &types.ConditionalCheckFailedException{})

		err := store.TransferAsset(context.Background(), "asset-1", 42, 43)

		assert.ErrorIs(t, err, storage.ErrNotOwned)
		mockClient.AssertExpectations(t)
	})
}
