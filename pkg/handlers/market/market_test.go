package market_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/alan12292009/megaroll-core/pkg/api"
	"github.com/alan12292009/megaroll-core/pkg/confirmations"
	"github.com/alan12292009/megaroll-core/pkg/handlers/market"
	"github.com/alan12292009/megaroll-core/pkg/marketplace"
	"github.com/alan12292009/megaroll-core/pkg/models"
	"github.com/alan12292009/megaroll-core/pkg/storage/mocks"
)

func testHandler(mockStorage *mocks.ApiStore) *market.MarketHandler {
	broker := &confirmations.Broker{Store: mockStorage, Now: time.Now}
	service := marketplace.NewService(mockStorage, broker)
	// Quote the bottom of every price range.
	service.RandInt = func(int64) int64 { return 0 }
	return market.NewMarketHandler(service)
}

func passthroughCreateAction(mockStorage *mocks.ApiStore) {
	mockStorage.On("CreateAction", mock.Anything, mock.AnythingOfType("*models.PendingAction")).
		Return(func(_ context.Context, action *models.PendingAction) (*models.PendingAction, error) {
			return action, nil
		})
}

func TestGetCatalog(t *testing.T) {
	t.Run("Houses", func(t *testing.T) {
		mockStorage := new(mocks.ApiStore)
		h := testHandler(mockStorage)

		req := httptest.NewRequest(http.MethodGet, "/market/catalog/house", nil)
		rr := httptest.NewRecorder()

		h.GetCatalog(rr, req, "house")

		assert.Equal(t, http.StatusOK, rr.Code)

		var items []api.CatalogItem
		json.Unmarshal(rr.Body.Bytes(), &items)
		assert.Len(t, items, 11)
		assert.Equal(t, "Forest Hut", items[0].Model)
		assert.Equal(t, int64(50000), *items[0].Price)

		mockStorage.AssertExpectations(t)
	})

	t.Run("Unknown Category", func(t *testing.T) {
		mockStorage := new(mocks.ApiStore)
		h := testHandler(mockStorage)

		req := httptest.NewRequest(http.MethodGet, "/market/catalog/boat", nil)
		rr := httptest.NewRecorder()

		h.GetCatalog(rr, req, "boat")

		assert.Equal(t, http.StatusNotFound, rr.Code)
		mockStorage.AssertExpectations(t)
	})
}

func TestProposePurchase(t *testing.T) {
	t.Run("Success Pins The Quote", func(t *testing.T) {
		mockStorage := new(mocks.ApiStore)
		mockStorage.On("GetAccount", mock.Anything, int64(42)).Return(&models.Account{ID: 42, Balance: 200000}, nil)
		passthroughCreateAction(mockStorage)

		h := testHandler(mockStorage)

		body, _ := json.Marshal(api.NewPurchase{BuyerID: 42, Category: "car", Name: "Lada"})
		req := httptest.NewRequest(http.MethodPost, "/market/purchases", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		h.ProposePurchase(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)

		var pending api.PendingAction
		json.Unmarshal(rr.Body.Bytes(), &pending)
		assert.NotEmpty(t, pending.Token)
		assert.Equal(t, string(models.ActionBuyAsset), pending.Kind)
		assert.Equal(t, int64(100000), *pending.Amount)
		assert.Equal(t, "Lada Lada", *pending.Detail)

		mockStorage.AssertExpectations(t)
	})

	t.Run("Cannot Afford The Quote", func(t *testing.T) {
		mockStorage := new(mocks.ApiStore)
		mockStorage.On("GetAccount", mock.Anything, int64(42)).Return(&models.Account{ID: 42, Balance: 1000}, nil)

		h := testHandler(mockStorage)

		body, _ := json.Marshal(api.NewPurchase{BuyerID: 42, Category: "car", Name: "Lada"})
		req := httptest.NewRequest(http.MethodPost, "/market/purchases", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		h.ProposePurchase(rr, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Unknown Item", func(t *testing.T) {
		mockStorage := new(mocks.ApiStore)
		mockStorage.On("GetAccount", mock.Anything, int64(42)).Return(&models.Account{ID: 42, Balance: 200000}, nil)

		h := testHandler(mockStorage)

		body, _ := json.Marshal(api.NewPurchase{BuyerID: 42, Category: "car", Name: "Yugo"})
		req := httptest.NewRequest(http.MethodPost, "/market/purchases", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		h.ProposePurchase(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		mockStorage.AssertExpectations(t)
	})
}

func TestProposeBuyback(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockStorage := new(mocks.ApiStore)
		mockStorage.On("GetAsset", mock.Anything, "asset-1").Return(&models.Asset{
			ID: "asset-1", OwnerID: 42, Category: models.AssetHouse, Model: "Forest Hut", Price: 50000,
		}, nil)
		passthroughCreateAction(mockStorage)

		h := testHandler(mockStorage)

		body, _ := json.Marshal(api.NewBuyback{SellerID: 42, AssetID: "asset-1"})
		req := httptest.NewRequest(http.MethodPost, "/market/buybacks", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		h.ProposeBuyback(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)

		var pending api.PendingAction
		json.Unmarshal(rr.Body.Bytes(), &pending)
		// 80% payout, 20% commission.
		assert.Equal(t, int64(40000), *pending.Amount)
		assert.Equal(t, int64(10000), *pending.Fee)

		mockStorage.AssertExpectations(t)
	})

	t.Run("Not The Owner", func(t *testing.T) {
		mockStorage := new(mocks.ApiStore)
		mockStorage.On("GetAsset", mock.Anything, "asset-1").Return(&models.Asset{ID: "asset-1", OwnerID: 99}, nil)

		h := testHandler(mockStorage)

		body, _ := json.Marshal(api.NewBuyback{SellerID: 42, AssetID: "asset-1"})
		req := httptest.NewRequest(http.MethodPost, "/market/buybacks", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		h.ProposeBuyback(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
		mockStorage.AssertExpectations(t)
	})
}

func TestProposeTrade(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockStorage := new(mocks.ApiStore)
		mockStorage.On("GetAsset", mock.Anything, "asset-1").Return(&models.Asset{ID: "asset-1", OwnerID: 42}, nil)
		mockStorage.On("GetAccountByUsername", mock.Anything, "bob").Return(&models.Account{ID: 43, Username: "bob"}, nil)
		passthroughCreateAction(mockStorage)

		h := testHandler(mockStorage)

		body, _ := json.Marshal(api.NewAssetTrade{FromID: 42, ToUsername: "bob", AssetID: "asset-1"})
		req := httptest.NewRequest(http.MethodPost, "/market/trades", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		h.ProposeTrade(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)

		var pending api.PendingAction
		json.Unmarshal(rr.Body.Bytes(), &pending)
		assert.Equal(t, string(models.ActionTradeAsset), pending.Kind)
		assert.Equal(t, "asset-1", *pending.Detail)

		mockStorage.AssertExpectations(t)
	})

	t.Run("Trade With Yourself", func(t *testing.T) {
		mockStorage := new(mocks.ApiStore)
		mockStorage.On("GetAsset", mock.Anything, "asset-1").Return(&models.Asset{ID: "asset-1", OwnerID: 42}, nil)
		mockStorage.On("GetAccountByUsername", mock.Anything, "alice").Return(&models.Account{ID: 42, Username: "alice"}, nil)

		h := testHandler(mockStorage)

		body, _ := json.Marshal(api.NewAssetTrade{FromID: 42, ToUsername: "alice", AssetID: "asset-1"})
		req := httptest.NewRequest(http.MethodPost, "/market/trades", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		h.ProposeTrade(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockStorage.AssertExpectations(t)
	})
}

func TestListAssetsByOwner(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockStorage := new(mocks.ApiStore)
		mockStorage.On("ListAssetsByOwner", mock.Anything, int64(42)).Return([]models.Asset{
			{ID: "asset-1", OwnerID: 42, Category: models.AssetCar, Brand: "Lada", Model: "Lada", Price: 150000, Speed: 150},
			{ID: "asset-2", OwnerID: 42, Category: models.AssetHouse, Model: "Forest Hut", Price: 50000, Rooms: 1},
		}, nil)

		h := testHandler(mockStorage)

		req := httptest.NewRequest(http.MethodGet, "/accounts/42/assets", nil)
		rr := httptest.NewRecorder()

		h.ListAssetsByOwner(rr, req, 42)

		assert.Equal(t, http.StatusOK, rr.Code)

		var assets []api.Asset
		json.Unmarshal(rr.Body.Bytes(), &assets)
		assert.Len(t, assets, 2)
		assert.Equal(t, int64(150), *assets[0].Speed)
		assert.Nil(t, assets[0].Rooms)

		mockStorage.AssertExpectations(t)
	})

	t.Run("Storage Error", func(t *testing.T) {
		mockStorage := new(mocks.ApiStore)
		mockStorage.On("ListAssetsByOwner", mock.Anything, int64(42)).Return(nil, assert.AnError)

		h := testHandler(mockStorage)

		req := httptest.NewRequest(http.MethodGet, "/accounts/42/assets", nil)
		rr := httptest.NewRecorder()

		h.ListAssetsByOwner(rr, req, 42)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		mockStorage.AssertExpectations(t)
	})
}
