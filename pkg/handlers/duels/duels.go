package duels

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/alan12292009/megaroll-core/pkg/api"
	"github.com/alan12292009/megaroll-core/pkg/casino"
	"github.com/alan12292009/megaroll-core/pkg/mapping"
	"github.com/alan12292009/megaroll-core/pkg/storage"
)

// DuelsHandler holds the dependencies for duel-related handlers.
type DuelsHandler struct {
	Coordinator *casino.DuelCoordinator
	Store       storage.DuelStore
}

// NewDuelsHandler creates a new DuelsHandler.
func NewDuelsHandler(coordinator *casino.DuelCoordinator, store storage.DuelStore) *DuelsHandler {
	return &DuelsHandler{Coordinator: coordinator, Store: store}
}

// CreateDuel handles the logic for challenging another player.
func (h *DuelsHandler) CreateDuel(w http.ResponseWriter, r *http.Request) {
	var newDuel api.NewDuel
	if err := json.NewDecoder(r.Body).Decode(&newDuel); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	duel, err := h.Coordinator.Challenge(r.Context(), newDuel.ChallengerID, newDuel.OpponentID, newDuel.Stake)
	if err != nil {
		writeDuelError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(mapping.ToApiDuel(duel)); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// GetDuelByToken handles the logic for retrieving a duel.
func (h *DuelsHandler) GetDuelByToken(w http.ResponseWriter, r *http.Request, token openapi_types.UUID) {
	duel, err := h.Store.GetDuel(r.Context(), token.String())
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve duel: %v", err), http.StatusNotFound)
		return
	}

	respond(w, mapping.ToApiDuel(duel))
}

// RespondToDuel handles the accept/reject decision of the challenged player.
func (h *DuelsHandler) RespondToDuel(w http.ResponseWriter, r *http.Request, token openapi_types.UUID) {
	var response api.DuelResponse
	if err := json.NewDecoder(r.Body).Decode(&response); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	duel, err := h.Coordinator.Respond(r.Context(), token.String(), response.AccountID, response.Accept)
	if err != nil {
		writeDuelError(w, err)
		return
	}

	respond(w, mapping.ToApiDuel(duel))
}

// SubmitRoll handles one participant's roll submission.
func (h *DuelsHandler) SubmitRoll(w http.ResponseWriter, r *http.Request, token openapi_types.UUID) {
	var roll api.DuelRoll
	if err := json.NewDecoder(r.Body).Decode(&roll); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	result, err := h.Coordinator.SubmitRoll(r.Context(), token.String(), roll.AccountID)
	if err != nil {
		writeDuelError(w, err)
		return
	}

	respond(w, mapping.ToApiRollResult(result))
}

func writeDuelError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, storage.ErrInvalidAmount):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, storage.ErrInsufficientFunds):
		http.Error(w, "Insufficient funds", http.StatusUnprocessableEntity)
	case errors.Is(err, storage.ErrForbidden), errors.Is(err, storage.ErrAccountBanned):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, storage.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, storage.ErrAlreadyResolved), errors.Is(err, storage.ErrDuplicateRoll):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, fmt.Sprintf("Duel operation failed: %v", err), http.StatusInternalServerError)
	}
}

func respond(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}
