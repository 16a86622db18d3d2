package actions_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/alan12292009/megaroll-core/pkg/api"
	"github.com/alan12292009/megaroll-core/pkg/confirmations"
	"github.com/alan12292009/megaroll-core/pkg/handlers/actions"
	"github.com/alan12292009/megaroll-core/pkg/marketplace"
	"github.com/alan12292009/megaroll-core/pkg/models"
	"github.com/alan12292009/megaroll-core/pkg/payments"
	"github.com/alan12292009/megaroll-core/pkg/storage"
	"github.com/alan12292009/megaroll-core/pkg/storage/mocks"
)

func testHandler(mockStorage *mocks.ApiStore) *actions.ActionsHandler {
	broker := &confirmations.Broker{Store: mockStorage, Now: time.Now}
	return actions.NewActionsHandler(
		broker,
		payments.NewService(mockStorage, broker),
		marketplace.NewService(mockStorage, broker),
	)
}

func resolveRequest(token uuid.UUID, accountID int64, decision string) *http.Request {
	body, _ := json.Marshal(api.ResolveAction{AccountID: accountID, Decision: decision})
	return httptest.NewRequest(http.MethodPost, "/actions/"+token.String(), bytes.NewReader(body))
}

func TestResolveAction(t *testing.T) {
	t.Run("Confirm Transfer", func(t *testing.T) {
		mockStorage := new(mocks.ApiStore)
		token := uuid.New()
		mockStorage.On("GetAction", mock.Anything, token.String()).Return(&models.PendingAction{
			Token:     token.String(),
			ActorID:   42,
			Kind:      models.ActionTransfer,
			Transfer:  &models.TransferPayload{FromID: 42, ToID: 43, Amount: 1000, Fee: 2},
			ExpiresAt: time.Now().Add(time.Minute),
		}, nil)
		mockStorage.On("ConsumeAction", mock.Anything, token.String()).Return(nil)
		mockStorage.On("Transfer", mock.Anything, int64(42), int64(43), int64(1000), int64(2)).Return(nil)

		h := testHandler(mockStorage)
		rr := httptest.NewRecorder()

		h.ResolveAction(rr, resolveRequest(token, 42, "confirm"), token)

		assert.Equal(t, http.StatusOK, rr.Code)

		var result api.ActionResult
		json.Unmarshal(rr.Body.Bytes(), &result)
		assert.True(t, result.Executed)
		assert.Equal(t, string(models.ActionTransfer), result.Kind)

		mockStorage.AssertExpectations(t)
	})

	t.Run("Confirm Purchase Returns The Asset", func(t *testing.T) {
		mockStorage := new(mocks.ApiStore)
		token := uuid.New()
		mockStorage.On("GetAction", mock.Anything, token.String()).Return(&models.PendingAction{
			Token:   token.String(),
			ActorID: 42,
			Kind:    models.ActionBuyAsset,
			BuyAsset: &models.BuyAssetPayload{
				BuyerID: 42, Category: models.AssetHouse, Model: "Forest Hut", Price: 50000, Rooms: 1, Area: 30, Comfort: 20,
			},
			ExpiresAt: time.Now().Add(time.Minute),
		}, nil)
		mockStorage.On("ConsumeAction", mock.Anything, token.String()).Return(nil)
		mockStorage.On("PurchaseAsset", mock.Anything, mock.MatchedBy(func(asset *models.Asset) bool {
			return asset.OwnerID == 42 && asset.Model == "Forest Hut" && asset.Price == 50000
		})).Return(func(_ context.Context, asset *models.Asset) (*models.Asset, error) {
			return asset, nil
		})

		h := testHandler(mockStorage)
		rr := httptest.NewRecorder()

		h.ResolveAction(rr, resolveRequest(token, 42, "confirm"), token)

		assert.Equal(t, http.StatusOK, rr.Code)

		var result api.ActionResult
		json.Unmarshal(rr.Body.Bytes(), &result)
		assert.True(t, result.Executed)
		assert.NotNil(t, result.Asset)
		assert.Equal(t, "Forest Hut", result.Asset.Model)
		assert.Equal(t, int64(50000), result.Asset.Price)

		mockStorage.AssertExpectations(t)
	})

	t.Run("Cancel Burns The Token", func(t *testing.T) {
		mockStorage := new(mocks.ApiStore)
		token := uuid.New()
		mockStorage.On("GetAction", mock.Anything, token.String()).Return(&models.PendingAction{
			Token:     token.String(),
			ActorID:   42,
			Kind:      models.ActionTransfer,
			Transfer:  &models.TransferPayload{FromID: 42, ToID: 43, Amount: 1000, Fee: 2},
			ExpiresAt: time.Now().Add(time.Minute),
		}, nil)
		mockStorage.On("ConsumeAction", mock.Anything, token.String()).Return(nil)

		h := testHandler(mockStorage)
		rr := httptest.NewRecorder()

		h.ResolveAction(rr, resolveRequest(token, 42, "cancel"), token)

		assert.Equal(t, http.StatusOK, rr.Code)

		var result api.ActionResult
		json.Unmarshal(rr.Body.Bytes(), &result)
		assert.False(t, result.Executed)

		mockStorage.AssertNotCalled(t, "Transfer", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Wrong Actor", func(t *testing.T) {
		mockStorage := new(mocks.ApiStore)
		token := uuid.New()
		mockStorage.On("GetAction", mock.Anything, token.String()).Return(&models.PendingAction{
			Token:     token.String(),
			ActorID:   42,
			Kind:      models.ActionTransfer,
			ExpiresAt: time.Now().Add(time.Minute),
		}, nil)

		h := testHandler(mockStorage)
		rr := httptest.NewRecorder()

		h.ResolveAction(rr, resolveRequest(token, 99, "confirm"), token)

		assert.Equal(t, http.StatusForbidden, rr.Code)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Expired Token", func(t *testing.T) {
		mockStorage := new(mocks.ApiStore)
		token := uuid.New()
		mockStorage.On("GetAction", mock.Anything, token.String()).Return(&models.PendingAction{
			Token:     token.String(),
			ActorID:   42,
			Kind:      models.ActionTransfer,
			ExpiresAt: time.Now().Add(-time.Minute),
		}, nil)
		mockStorage.On("ConsumeAction", mock.Anything, token.String()).Return(nil)

		h := testHandler(mockStorage)
		rr := httptest.NewRecorder()

		h.ResolveAction(rr, resolveRequest(token, 42, "confirm"), token)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Already Consumed", func(t *testing.T) {
		mockStorage := new(mocks.ApiStore)
		token := uuid.New()
		mockStorage.On("GetAction", mock.Anything, token.String()).Return(nil, storage.ErrNotFound)

		h := testHandler(mockStorage)
		rr := httptest.NewRecorder()

		h.ResolveAction(rr, resolveRequest(token, 42, "confirm"), token)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Unknown Decision", func(t *testing.T) {
		mockStorage := new(mocks.ApiStore)
		token := uuid.New()

		h := testHandler(mockStorage)
		rr := httptest.NewRecorder()

		h.ResolveAction(rr, resolveRequest(token, 42, "maybe"), token)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Execution Fails At Commit", func(t *testing.T) {
		mockStorage := new(mocks.ApiStore)
		token := uuid.New()
		mockStorage.On("GetAction", mock.Anything, token.String()).Return(&models.PendingAction{
			Token:     token.String(),
			ActorID:   42,
			Kind:      models.ActionTransfer,
			Transfer:  &models.TransferPayload{FromID: 42, ToID: 43, Amount: 1000, Fee: 2},
			ExpiresAt: time.Now().Add(time.Minute),
		}, nil)
		mockStorage.On("ConsumeAction", mock.Anything, token.String()).Return(nil)
		mockStorage.On("Transfer", mock.Anything, int64(42), int64(43), int64(1000), int64(2)).Return(storage.ErrInsufficientFunds)

		h := testHandler(mockStorage)
		rr := httptest.NewRecorder()

		h.ResolveAction(rr, resolveRequest(token, 42, "confirm"), token)

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		mockStorage.AssertExpectations(t)
	})
}
