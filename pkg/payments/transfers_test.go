package payments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/alan12292009/megaroll-core/pkg/confirmations"
	"github.com/alan12292009/megaroll-core/pkg/models"
	"github.com/alan12292009/megaroll-core/pkg/storage"
	storage_mocks "github.com/alan12292009/megaroll-core/pkg/storage/mocks"
)

func testService(mockStorage *storage_mocks.ApiStore) *Service {
	broker := &confirmations.Broker{
		Store: mockStorage,
		Now:   func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) },
	}
	return NewService(mockStorage, broker)
}

func passthroughCreateAction(mockStorage *storage_mocks.ApiStore) {
	mockStorage.On("CreateAction", mock.Anything, mock.AnythingOfType("*models.PendingAction")).
		Return(func(_ context.Context, action *models.PendingAction) (*models.PendingAction, error) {
			return action, nil
		})
}

func TestProposeTransfer(t *testing.T) {
	t.Run("Success Pins Recipient And Fee", func(t *testing.T) {
		mockStorage := new(storage_mocks.ApiStore)
		service := testService(mockStorage)

		mockStorage.On("GetAccount", mock.Anything, int64(42)).Return(&models.Account{ID: 42, Balance: 5000}, nil)
		mockStorage.On("GetAccountByUsername", mock.Anything, "bob").Return(&models.Account{ID: 43, Username: "bob", Balance: 100}, nil)
		passthroughCreateAction(mockStorage)

		action, err := service.ProposeTransfer(context.Background(), 42, "bob", 1000)

		assert.NoError(t, err)
		assert.Equal(t, models.ActionTransfer, action.Kind)
		assert.Equal(t, int64(43), action.Transfer.ToID)
		// 0.2% of 1000.
		assert.Equal(t, int64(2), action.Transfer.Fee)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Self Transfer", func(t *testing.T) {
		mockStorage := new(storage_mocks.ApiStore)
		service := testService(mockStorage)

		mockStorage.On("GetAccount", mock.Anything, int64(42)).Return(&models.Account{ID: 42, Balance: 5000}, nil)
		mockStorage.On("GetAccountByUsername", mock.Anything, "alice").Return(&models.Account{ID: 42, Username: "alice"}, nil)

		_, err := service.ProposeTransfer(context.Background(), 42, "alice", 1000)

		assert.ErrorIs(t, err, storage.ErrInvalidAmount)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Banned Recipient", func(t *testing.T) {
		mockStorage := new(storage_mocks.ApiStore)
		service := testService(mockStorage)

		mockStorage.On("GetAccount", mock.Anything, int64(42)).Return(&models.Account{ID: 42, Balance: 5000}, nil)
		mockStorage.On("GetAccountByUsername", mock.Anything, "bob").Return(&models.Account{ID: 43, Banned: true}, nil)

		_, err := service.ProposeTransfer(context.Background(), 42, "bob", 1000)

		assert.ErrorIs(t, err, storage.ErrAccountBanned)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Insufficient Funds", func(t *testing.T) {
		mockStorage := new(storage_mocks.ApiStore)
		service := testService(mockStorage)

		mockStorage.On("GetAccount", mock.Anything, int64(42)).Return(&models.Account{ID: 42, Balance: 500}, nil)
		mockStorage.On("GetAccountByUsername", mock.Anything, "bob").Return(&models.Account{ID: 43}, nil)

		_, err := service.ProposeTransfer(context.Background(), 42, "bob", 1000)

		assert.ErrorIs(t, err, storage.ErrInsufficientFunds)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Non Positive Amount", func(t *testing.T) {
		mockStorage := new(storage_mocks.ApiStore)
		service := testService(mockStorage)

		_, err := service.ProposeTransfer(context.Background(), 42, "bob", 0)

		assert.ErrorIs(t, err, storage.ErrInvalidAmount)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Unknown Recipient", func(t *testing.T) {
		mockStorage := new(storage_mocks.ApiStore)
		service := testService(mockStorage)

		mockStorage.On("GetAccount", mock.Anything, int64(42)).Return(&models.Account{ID: 42, Balance: 5000}, nil)
		mockStorage.On("GetAccountByUsername", mock.Anything, "ghost").Return(nil, storage.ErrNotFound)

		_, err := service.ProposeTransfer(context.Background(), 42, "ghost", 1000)

		assert.ErrorIs(t, err, storage.ErrNotFound)
		mockStorage.AssertExpectations(t)
	})
}

func TestExecuteTransfer(t *testing.T) {
	t.Run("Commits The Pinned Terms", func(t *testing.T) {
		mockStorage := new(storage_mocks.ApiStore)
		service := testService(mockStorage)

		mockStorage.On("Transfer", mock.Anything, int64(42), int64(43), int64(1000), int64(2)).Return(nil)

		err := service.ExecuteTransfer(context.Background(), &models.TransferPayload{FromID: 42, ToID: 43, Amount: 1000, Fee: 2})

		assert.NoError(t, err)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Insufficient Funds At Commit", func(t *testing.T) {
		mockStorage := new(storage_mocks.ApiStore)
		service := testService(mockStorage)

		mockStorage.On("Transfer", mock.Anything, int64(42), int64(43), int64(1000), int64(2)).Return(storage.ErrInsufficientFunds)

		err := service.ExecuteTransfer(context.Background(), &models.TransferPayload{FromID: 42, ToID: 43, Amount: 1000, Fee: 2})

		assert.ErrorIs(t, err, storage.ErrInsufficientFunds)
		mockStorage.AssertExpectations(t)
	})
}
