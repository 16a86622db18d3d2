package crypto

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/alan12292009/megaroll-core/pkg/api"
	"github.com/alan12292009/megaroll-core/pkg/mapping"
	"github.com/alan12292009/megaroll-core/pkg/payments"
	"github.com/alan12292009/megaroll-core/pkg/storage"
)

// CryptoHandler holds the dependencies for crypto-trading handlers.
type CryptoHandler struct {
	Payments *payments.Service
	Store    storage.CryptoStore
}

// NewCryptoHandler creates a new CryptoHandler.
func NewCryptoHandler(service *payments.Service, store storage.CryptoStore) *CryptoHandler {
	return &CryptoHandler{Payments: service, Store: store}
}

// ListInstruments handles the logic for listing the tradeable instruments.
func (h *CryptoHandler) ListInstruments(w http.ResponseWriter, r *http.Request) {
	instruments, err := h.Store.ListInstruments(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve instruments: %v", err), http.StatusInternalServerError)
		return
	}

	apiInstruments := make([]*api.Instrument, len(instruments))
	for i, instrument := range instruments {
		apiInstruments[i] = mapping.ToApiInstrument(&instrument)
	}

	respond(w, http.StatusOK, apiInstruments)
}

// ListPositions handles the logic for listing a player's holdings.
func (h *CryptoHandler) ListPositions(w http.ResponseWriter, r *http.Request, accountId int64) {
	positions, err := h.Store.ListPositions(r.Context(), accountId)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve positions: %v", err), http.StatusInternalServerError)
		return
	}

	apiPositions := make([]*api.Position, len(positions))
	for i, position := range positions {
		apiPositions[i] = mapping.ToApiPosition(&position)
	}

	respond(w, http.StatusOK, apiPositions)
}

// ProposeBuy handles the first phase of a crypto purchase.
func (h *CryptoHandler) ProposeBuy(w http.ResponseWriter, r *http.Request) {
	var newBuy api.NewCryptoBuy
	if err := json.NewDecoder(r.Body).Decode(&newBuy); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	action, err := h.Payments.ProposeCryptoBuy(r.Context(), newBuy.BuyerID, newBuy.Symbol, newBuy.AmountUSD)
	if err != nil {
		writeCryptoError(w, err)
		return
	}

	respond(w, http.StatusCreated, mapping.ToApiPendingAction(action))
}

// ProposeSell handles the first phase of a crypto sale.
func (h *CryptoHandler) ProposeSell(w http.ResponseWriter, r *http.Request) {
	var newSell api.NewCryptoSell
	if err := json.NewDecoder(r.Body).Decode(&newSell); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	quantity, err := decimal.NewFromString(newSell.Quantity)
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid quantity %q: %v", newSell.Quantity, err), http.StatusBadRequest)
		return
	}

	action, err := h.Payments.ProposeCryptoSell(r.Context(), newSell.SellerID, newSell.Symbol, quantity)
	if err != nil {
		writeCryptoError(w, err)
		return
	}

	respond(w, http.StatusCreated, mapping.ToApiPendingAction(action))
}

func writeCryptoError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, storage.ErrInvalidAmount):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, storage.ErrInsufficientFunds):
		http.Error(w, "Insufficient funds", http.StatusUnprocessableEntity)
	case errors.Is(err, storage.ErrAccountBanned):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, storage.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		http.Error(w, fmt.Sprintf("Crypto operation failed: %v", err), http.StatusInternalServerError)
	}
}

func respond(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}
