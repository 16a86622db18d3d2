package market

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/alan12292009/megaroll-core/pkg/api"
	"github.com/alan12292009/megaroll-core/pkg/mapping"
	"github.com/alan12292009/megaroll-core/pkg/marketplace"
	"github.com/alan12292009/megaroll-core/pkg/models"
	"github.com/alan12292009/megaroll-core/pkg/storage"
)

// MarketHandler holds the dependencies for marketplace handlers.
type MarketHandler struct {
	Market *marketplace.Service
}

// NewMarketHandler creates a new MarketHandler.
func NewMarketHandler(service *marketplace.Service) *MarketHandler {
	return &MarketHandler{Market: service}
}

// GetCatalog handles the logic for listing one category of the shop.
func (h *MarketHandler) GetCatalog(w http.ResponseWriter, r *http.Request, category string) {
	items, err := marketplace.Catalog(models.AssetCategory(category))
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve catalog: %v", err), http.StatusNotFound)
		return
	}

	apiItems := make([]*api.CatalogItem, len(items))
	for i, item := range items {
		apiItems[i] = mapping.ToApiCatalogItem(&item)
	}

	respond(w, http.StatusOK, apiItems)
}

// ProposePurchase handles the first phase of a shop purchase: the item is
// quoted and the offer pinned under a confirmation token.
func (h *MarketHandler) ProposePurchase(w http.ResponseWriter, r *http.Request) {
	var newPurchase api.NewPurchase
	if err := json.NewDecoder(r.Body).Decode(&newPurchase); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	action, err := h.Market.ProposePurchase(r.Context(), newPurchase.BuyerID, models.AssetCategory(newPurchase.Category), newPurchase.Name)
	if err != nil {
		writeMarketError(w, err)
		return
	}

	respond(w, http.StatusCreated, mapping.ToApiPendingAction(action))
}

// ProposeBuyback handles the first phase of a government buyback.
func (h *MarketHandler) ProposeBuyback(w http.ResponseWriter, r *http.Request) {
	var newBuyback api.NewBuyback
	if err := json.NewDecoder(r.Body).Decode(&newBuyback); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	action, err := h.Market.ProposeBuyback(r.Context(), newBuyback.SellerID, newBuyback.AssetID)
	if err != nil {
		writeMarketError(w, err)
		return
	}

	respond(w, http.StatusCreated, mapping.ToApiPendingAction(action))
}

// ProposeTrade handles the first phase of a peer-to-peer asset handover.
func (h *MarketHandler) ProposeTrade(w http.ResponseWriter, r *http.Request) {
	var newTrade api.NewAssetTrade
	if err := json.NewDecoder(r.Body).Decode(&newTrade); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	action, err := h.Market.ProposeTrade(r.Context(), newTrade.FromID, newTrade.ToUsername, newTrade.AssetID)
	if err != nil {
		writeMarketError(w, err)
		return
	}

	respond(w, http.StatusCreated, mapping.ToApiPendingAction(action))
}

// ListAssetsByOwner handles the logic for listing everything a player owns.
func (h *MarketHandler) ListAssetsByOwner(w http.ResponseWriter, r *http.Request, accountId int64) {
	assets, err := h.Market.ListOwned(r.Context(), accountId)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve assets: %v", err), http.StatusInternalServerError)
		return
	}

	apiAssets := make([]*api.Asset, len(assets))
	for i, asset := range assets {
		apiAssets[i] = mapping.ToApiAsset(&asset)
	}

	respond(w, http.StatusOK, apiAssets)
}

func writeMarketError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, storage.ErrInvalidAmount):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, storage.ErrInsufficientFunds):
		http.Error(w, "Insufficient funds", http.StatusUnprocessableEntity)
	case errors.Is(err, storage.ErrAccountBanned):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, storage.ErrNotOwned):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, storage.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		http.Error(w, fmt.Sprintf("Marketplace operation failed: %v", err), http.StatusInternalServerError)
	}
}

func respond(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}
