package payments

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/alan12292009/megaroll-core/pkg/models"
	"github.com/alan12292009/megaroll-core/pkg/storage"
	storage_mocks "github.com/alan12292009/megaroll-core/pkg/storage/mocks"
)

func TestProposeCryptoBuy(t *testing.T) {
	btc := &models.Instrument{Symbol: "BTC", Name: "Bitcoin", Price: decimal.NewFromInt(50000)}

	t.Run("Success Pins Price And Fee", func(t *testing.T) {
		mockStorage := new(storage_mocks.ApiStore)
		service := testService(mockStorage)

		mockStorage.On("GetAccount", mock.Anything, int64(42)).Return(&models.Account{ID: 42, Balance: 100000}, nil)
		mockStorage.On("GetInstrument", mock.Anything, "BTC").Return(btc, nil)
		passthroughCreateAction(mockStorage)

		action, err := service.ProposeCryptoBuy(context.Background(), 42, "BTC", 10000)

		assert.NoError(t, err)
		assert.Equal(t, models.ActionBuyCrypto, action.Kind)
		assert.Equal(t, "50000", action.BuyCrypto.Price)
		// 0.05% of 10000.
		assert.Equal(t, int64(5), action.BuyCrypto.Fee)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Insufficient Funds", func(t *testing.T) {
		mockStorage := new(storage_mocks.ApiStore)
		service := testService(mockStorage)

		mockStorage.On("GetAccount", mock.Anything, int64(42)).Return(&models.Account{ID: 42, Balance: 500}, nil)

		_, err := service.ProposeCryptoBuy(context.Background(), 42, "BTC", 10000)

		assert.ErrorIs(t, err, storage.ErrInsufficientFunds)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Unknown Instrument", func(t *testing.T) {
		mockStorage := new(storage_mocks.ApiStore)
		service := testService(mockStorage)

		mockStorage.On("GetAccount", mock.Anything, int64(42)).Return(&models.Account{ID: 42, Balance: 100000}, nil)
		mockStorage.On("GetInstrument", mock.Anything, "XYZ").Return(nil, storage.ErrNotFound)

		_, err := service.ProposeCryptoBuy(context.Background(), 42, "XYZ", 10000)

		assert.ErrorIs(t, err, storage.ErrNotFound)
		mockStorage.AssertExpectations(t)
	})
}

func TestExecuteCryptoBuy(t *testing.T) {
	payload := &models.BuyCryptoPayload{BuyerID: 42, Symbol: "BTC", AmountUSD: 10000, Fee: 5, Price: "50000"}

	t.Run("First Buy Creates The Position", func(t *testing.T) {
		mockStorage := new(storage_mocks.ApiStore)
		service := testService(mockStorage)

		mockStorage.On("GetPosition", mock.Anything, int64(42), "BTC").Return(nil, storage.ErrNotFound)
		mockStorage.On("SettleCryptoBuy", mock.Anything, int64(42), int64(10000), int64(5), mock.AnythingOfType("*models.CryptoPosition"), int64(0)).
			Run(func(args mock.Arguments) {
				position := args.Get(4).(*models.CryptoPosition)
				// Net 9995 at 50000 per unit.
				assert.True(t, position.Amount.Equal(decimal.RequireFromString("0.1999")), "amount %s", position.Amount)
				assert.True(t, position.AvgCost.Equal(decimal.NewFromInt(50000)))
			}).
			Return(nil)

		trade, err := service.ExecuteCryptoBuy(context.Background(), payload)

		assert.NoError(t, err)
		assert.Equal(t, int64(10000), trade.Notional)
		assert.Equal(t, int64(5), trade.Fee)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Repeat Buy Reweights The Cost Basis", func(t *testing.T) {
		mockStorage := new(storage_mocks.ApiStore)
		service := testService(mockStorage)

		existing := &models.CryptoPosition{
			AccountID: 42,
			Symbol:    "BTC",
			Amount:    decimal.RequireFromString("0.2"),
			AvgCost:   decimal.NewFromInt(40000),
			Version:   3,
		}
		mockStorage.On("GetPosition", mock.Anything, int64(42), "BTC").Return(existing, nil)
		mockStorage.On("SettleCryptoBuy", mock.Anything, int64(42), int64(10000), int64(5), mock.AnythingOfType("*models.CryptoPosition"), int64(3)).
			Run(func(args mock.Arguments) {
				position := args.Get(4).(*models.CryptoPosition)
				assert.True(t, position.Amount.Equal(decimal.RequireFromString("0.3999")), "amount %s", position.Amount)
				// (0.2*40000 + 0.1999*50000) / 0.3999.
				assert.True(t, position.AvgCost.GreaterThan(decimal.NewFromInt(40000)))
				assert.True(t, position.AvgCost.LessThan(decimal.NewFromInt(50000)))
			}).
			Return(nil)

		_, err := service.ExecuteCryptoBuy(context.Background(), payload)

		assert.NoError(t, err)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Insufficient Funds At Commit", func(t *testing.T) {
		mockStorage := new(storage_mocks.ApiStore)
		service := testService(mockStorage)

		mockStorage.On("GetPosition", mock.Anything, int64(42), "BTC").Return(nil, storage.ErrNotFound)
		mockStorage.On("SettleCryptoBuy", mock.Anything, int64(42), int64(10000), int64(5), mock.Anything, int64(0)).Return(storage.ErrInsufficientFunds)

		_, err := service.ExecuteCryptoBuy(context.Background(), payload)

		assert.ErrorIs(t, err, storage.ErrInsufficientFunds)
		mockStorage.AssertExpectations(t)
	})
}

func TestProposeCryptoSell(t *testing.T) {
	btc := &models.Instrument{Symbol: "BTC", Name: "Bitcoin", Price: decimal.NewFromInt(60000)}
	holding := &models.CryptoPosition{AccountID: 42, Symbol: "BTC", Amount: decimal.RequireFromString("0.5"), AvgCost: decimal.NewFromInt(50000), Version: 2}

	t.Run("Success", func(t *testing.T) {
		mockStorage := new(storage_mocks.ApiStore)
		service := testService(mockStorage)

		mockStorage.On("GetAccount", mock.Anything, int64(42)).Return(&models.Account{ID: 42}, nil)
		mockStorage.On("GetPosition", mock.Anything, int64(42), "BTC").Return(holding, nil)
		mockStorage.On("GetInstrument", mock.Anything, "BTC").Return(btc, nil)
		passthroughCreateAction(mockStorage)

		action, err := service.ProposeCryptoSell(context.Background(), 42, "BTC", decimal.RequireFromString("0.25"))

		assert.NoError(t, err)
		assert.Equal(t, models.ActionSellCrypto, action.Kind)
		assert.Equal(t, "0.25", action.SellCrypto.Quantity)
		assert.Equal(t, "60000", action.SellCrypto.Price)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Quantity Exceeds Holding", func(t *testing.T) {
		mockStorage := new(storage_mocks.ApiStore)
		service := testService(mockStorage)

		mockStorage.On("GetAccount", mock.Anything, int64(42)).Return(&models.Account{ID: 42}, nil)
		mockStorage.On("GetPosition", mock.Anything, int64(42), "BTC").Return(holding, nil)

		_, err := service.ProposeCryptoSell(context.Background(), 42, "BTC", decimal.NewFromInt(1))

		assert.ErrorIs(t, err, storage.ErrInsufficientFunds)
		mockStorage.AssertExpectations(t)
	})

	t.Run("No Position", func(t *testing.T) {
		mockStorage := new(storage_mocks.ApiStore)
		service := testService(mockStorage)

		mockStorage.On("GetAccount", mock.Anything, int64(42)).Return(&models.Account{ID: 42}, nil)
		mockStorage.On("GetPosition", mock.Anything, int64(42), "BTC").Return(nil, storage.ErrNotFound)

		_, err := service.ProposeCryptoSell(context.Background(), 42, "BTC", decimal.NewFromInt(1))

		assert.ErrorIs(t, err, storage.ErrNotFound)
		mockStorage.AssertExpectations(t)
	})
}

func TestExecuteCryptoSell(t *testing.T) {
	holding := &models.CryptoPosition{AccountID: 42, Symbol: "BTC", Amount: decimal.RequireFromString("0.5"), AvgCost: decimal.NewFromInt(50000), Version: 2}

	t.Run("Partial Sale Realizes Profit", func(t *testing.T) {
		mockStorage := new(storage_mocks.ApiStore)
		service := testService(mockStorage)

		mockStorage.On("GetPosition", mock.Anything, int64(42), "BTC").Return(holding, nil)
		// Proceeds 0.25 * 60000 = 15000, fee 0.05% = 7.
		mockStorage.On("SettleCryptoSell", mock.Anything, int64(42), int64(14993), int64(7), mock.AnythingOfType("*models.CryptoPosition"), int64(2), false).
			Run(func(args mock.Arguments) {
				position := args.Get(4).(*models.CryptoPosition)
				assert.True(t, position.Amount.Equal(decimal.RequireFromString("0.25")))
			}).
			Return(nil)

		trade, err := service.ExecuteCryptoSell(context.Background(), &models.SellCryptoPayload{
			SellerID: 42, Symbol: "BTC", Quantity: "0.25", Price: "60000",
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(15000), trade.Notional)
		assert.Equal(t, int64(7), trade.Fee)
		// (60000 - 50000) * 0.25.
		assert.Equal(t, int64(2500), trade.Profit)
		assert.False(t, trade.Closed)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Full Sale Closes The Position", func(t *testing.T) {
		mockStorage := new(storage_mocks.ApiStore)
		service := testService(mockStorage)

		mockStorage.On("GetPosition", mock.Anything, int64(42), "BTC").Return(holding, nil)
		mockStorage.On("SettleCryptoSell", mock.Anything, int64(42), int64(29985), int64(15), mock.Anything, int64(2), true).Return(nil)

		trade, err := service.ExecuteCryptoSell(context.Background(), &models.SellCryptoPayload{
			SellerID: 42, Symbol: "BTC", Quantity: "0.5", Price: "60000",
		})

		assert.NoError(t, err)
		assert.True(t, trade.Closed)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Holding Shrank Since The Quote", func(t *testing.T) {
		mockStorage := new(storage_mocks.ApiStore)
		service := testService(mockStorage)

		small := &models.CryptoPosition{AccountID: 42, Symbol: "BTC", Amount: decimal.RequireFromString("0.1"), AvgCost: decimal.NewFromInt(50000), Version: 4}
		mockStorage.On("GetPosition", mock.Anything, int64(42), "BTC").Return(small, nil)

		_, err := service.ExecuteCryptoSell(context.Background(), &models.SellCryptoPayload{
			SellerID: 42, Symbol: "BTC", Quantity: "0.25", Price: "60000",
		})

		assert.ErrorIs(t, err, storage.ErrInsufficientFunds)
		mockStorage.AssertExpectations(t)
	})
}
