package bets

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/alan12292009/megaroll-core/pkg/api"
	"github.com/alan12292009/megaroll-core/pkg/casino"
	"github.com/alan12292009/megaroll-core/pkg/mapping"
	"github.com/alan12292009/megaroll-core/pkg/storage"
)

// BetsHandler holds the dependencies for standalone bet handlers.
type BetsHandler struct {
	Engine *casino.Engine
	Store  storage.GameStore
}

// NewBetsHandler creates a new BetsHandler.
func NewBetsHandler(engine *casino.Engine, store storage.GameStore) *BetsHandler {
	return &BetsHandler{Engine: engine, Store: store}
}

// PlaceDiceBet handles the logic for one dice bet.
func (h *BetsHandler) PlaceDiceBet(w http.ResponseWriter, r *http.Request) {
	var newBet api.NewBet
	if err := json.NewDecoder(r.Body).Decode(&newBet); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	result, err := h.Engine.PlayDice(r.Context(), newBet.AccountID, newBet.Amount)
	if err != nil {
		writeBetError(w, err)
		return
	}

	respond(w, mapping.ToApiBetResult(result))
}

// PlaceRouletteBet handles the logic for one roulette bet.
func (h *BetsHandler) PlaceRouletteBet(w http.ResponseWriter, r *http.Request) {
	var newBet api.NewBet
	if err := json.NewDecoder(r.Body).Decode(&newBet); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	var number int64
	if newBet.Number != nil {
		number = *newBet.Number
	}

	result, err := h.Engine.PlayRoulette(r.Context(), newBet.AccountID, newBet.Amount, casino.RouletteBet(newBet.BetType), number)
	if err != nil {
		writeBetError(w, err)
		return
	}

	respond(w, mapping.ToApiBetResult(result))
}

// GetJackpot handles the logic for reading the current jackpot pool.
func (h *BetsHandler) GetJackpot(w http.ResponseWriter, r *http.Request) {
	pool, err := h.Store.GetJackpot(r.Context(), false)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve jackpot: %v", err), http.StatusInternalServerError)
		return
	}

	respond(w, &api.Jackpot{Value: pool.Value})
}

func writeBetError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, storage.ErrInvalidAmount):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, storage.ErrInsufficientFunds):
		http.Error(w, "Insufficient funds", http.StatusUnprocessableEntity)
	case errors.Is(err, storage.ErrAccountBanned), errors.Is(err, storage.ErrForbidden):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, storage.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, storage.ErrConflict):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, fmt.Sprintf("Failed to place bet: %v", err), http.StatusInternalServerError)
	}
}

func respond(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}
