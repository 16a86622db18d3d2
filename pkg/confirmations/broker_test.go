package confirmations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/alan12292009/megaroll-core/pkg/models"
	"github.com/alan12292009/megaroll-core/pkg/storage"
	storage_mocks "github.com/alan12292009/megaroll-core/pkg/storage/mocks"
)

func frozenBroker(store storage.ActionStore, now time.Time) *Broker {
	return &Broker{Store: store, Now: func() time.Time { return now }}
}

func TestPropose(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Success", func(t *testing.T) {
		mockStorage := new(storage_mocks.ApiStore)
		broker := frozenBroker(mockStorage, now)

		mockStorage.On("CreateAction", mock.Anything, mock.AnythingOfType("*models.PendingAction")).
			Run(func(args mock.Arguments) {
				action := args.Get(1).(*models.PendingAction)
				assert.NotEmpty(t, action.Token)
				assert.Equal(t, now, action.CreatedAt)
				assert.Equal(t, now.Add(ActionExpiry), action.ExpiresAt)
			}).
			Return(func(_ context.Context, action *models.PendingAction) (*models.PendingAction, error) {
				return action, nil
			})

		action, err := broker.Propose(context.Background(), &models.PendingAction{
			ActorID:  42,
			Kind:     models.ActionTransfer,
			Transfer: &models.TransferPayload{FromID: 42, ToID: 43, Amount: 1000, Fee: 2},
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, action.Token)
		mockStorage.AssertExpectations(t)
	})
}

func TestResolve(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	pinned := &models.PendingAction{
		Token:     "action-token",
		ActorID:   42,
		Kind:      models.ActionTransfer,
		Transfer:  &models.TransferPayload{FromID: 42, ToID: 43, Amount: 1000, Fee: 2},
		ExpiresAt: now.Add(time.Minute),
	}

	t.Run("Confirm Returns The Pinned Payload", func(t *testing.T) {
		mockStorage := new(storage_mocks.ApiStore)
		broker := frozenBroker(mockStorage, now)

		mockStorage.On("GetAction", mock.Anything, "action-token").Return(pinned, nil)
		mockStorage.On("ConsumeAction", mock.Anything, "action-token").Return(nil)

		action, err := broker.Resolve(context.Background(), "action-token", 42, Confirm)

		assert.NoError(t, err)
		assert.Equal(t, pinned.Transfer, action.Transfer)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Cancel Consumes Without Executing", func(t *testing.T) {
		mockStorage := new(storage_mocks.ApiStore)
		broker := frozenBroker(mockStorage, now)

		mockStorage.On("GetAction", mock.Anything, "action-token").Return(pinned, nil)
		mockStorage.On("ConsumeAction", mock.Anything, "action-token").Return(nil)

		action, err := broker.Resolve(context.Background(), "action-token", 42, Cancel)

		assert.NoError(t, err)
		assert.Nil(t, action)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Wrong Actor", func(t *testing.T) {
		mockStorage := new(storage_mocks.ApiStore)
		broker := frozenBroker(mockStorage, now)

		mockStorage.On("GetAction", mock.Anything, "action-token").Return(pinned, nil)

		_, err := broker.Resolve(context.Background(), "action-token", 99, Confirm)

		assert.ErrorIs(t, err, storage.ErrForbidden)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Expired Token", func(t *testing.T) {
		mockStorage := new(storage_mocks.ApiStore)
		broker := frozenBroker(mockStorage, now.Add(2*time.Minute))

		mockStorage.On("GetAction", mock.Anything, "action-token").Return(pinned, nil)
		mockStorage.On("ConsumeAction", mock.Anything, "action-token").Return(nil)

		_, err := broker.Resolve(context.Background(), "action-token", 42, Confirm)

		assert.ErrorIs(t, err, storage.ErrNotFound)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Already Consumed", func(t *testing.T) {
		mockStorage := new(storage_mocks.ApiStore)
		broker := frozenBroker(mockStorage, now)

		mockStorage.On("GetAction", mock.Anything, "action-token").Return(pinned, nil)
		mockStorage.On("ConsumeAction", mock.Anything, "action-token").Return(storage.ErrNotFound)

		_, err := broker.Resolve(context.Background(), "action-token", 42, Confirm)

		assert.ErrorIs(t, err, storage.ErrNotFound)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Unknown Token", func(t *testing.T) {
		mockStorage := new(storage_mocks.ApiStore)
		broker := frozenBroker(mockStorage, now)

		mockStorage.On("GetAction", mock.Anything, "action-token").Return(nil, storage.ErrNotFound)

		_, err := broker.Resolve(context.Background(), "action-token", 42, Confirm)

		assert.ErrorIs(t, err, storage.ErrNotFound)
		mockStorage.AssertExpectations(t)
	})
}
