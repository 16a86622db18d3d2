package transfers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/alan12292009/megaroll-core/pkg/api"
	"github.com/alan12292009/megaroll-core/pkg/mapping"
	"github.com/alan12292009/megaroll-core/pkg/payments"
	"github.com/alan12292009/megaroll-core/pkg/storage"
)

// TransfersHandler holds the dependencies for transfer-related handlers.
type TransfersHandler struct {
	Payments *payments.Service
}

// NewTransfersHandler creates a new TransfersHandler.
func NewTransfersHandler(service *payments.Service) *TransfersHandler {
	return &TransfersHandler{Payments: service}
}

// ProposeTransfer handles the first phase of a money transfer: the terms are
// pinned under a confirmation token returned to the caller.
func (h *TransfersHandler) ProposeTransfer(w http.ResponseWriter, r *http.Request) {
	var newTransfer api.NewTransfer
	if err := json.NewDecoder(r.Body).Decode(&newTransfer); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	action, err := h.Payments.ProposeTransfer(r.Context(), newTransfer.FromID, newTransfer.ToUsername, newTransfer.Amount)
	if err != nil {
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
			http.Error(w, fmt.Sprintf("Failed to propose transfer: %v", err), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(mapping.ToApiPendingAction(action)); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}
