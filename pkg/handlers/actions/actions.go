package actions

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/alan12292009/megaroll-core/pkg/api"
	"github.com/alan12292009/megaroll-core/pkg/confirmations"
	"github.com/alan12292009/megaroll-core/pkg/mapping"
	"github.com/alan12292009/megaroll-core/pkg/marketplace"
	"github.com/alan12292009/megaroll-core/pkg/models"
	"github.com/alan12292009/megaroll-core/pkg/payments"
	"github.com/alan12292009/megaroll-core/pkg/storage"
)

// ActionsHandler resolves confirmation tokens and dispatches confirmed
// actions to the owning service.
type ActionsHandler struct {
	Broker   *confirmations.Broker
	Payments *payments.Service
	Market   *marketplace.Service
}

// NewActionsHandler creates a new ActionsHandler.
func NewActionsHandler(broker *confirmations.Broker, paymentsService *payments.Service, marketService *marketplace.Service) *ActionsHandler {
	return &ActionsHandler{Broker: broker, Payments: paymentsService, Market: marketService}
}

// ResolveAction handles the second phase of any proposed action: confirm
// executes the pinned terms, cancel just burns the token.
func (h *ActionsHandler) ResolveAction(w http.ResponseWriter, r *http.Request, token openapi_types.UUID) {
	var resolve api.ResolveAction
	if err := json.NewDecoder(r.Body).Decode(&resolve); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	var decision confirmations.Decision
	switch resolve.Decision {
	case string(confirmations.Confirm):
		decision = confirmations.Confirm
	case string(confirmations.Cancel):
		decision = confirmations.Cancel
	default:
		http.Error(w, fmt.Sprintf("Unknown decision %q", resolve.Decision), http.StatusBadRequest)
		return
	}

	action, err := h.Broker.Resolve(r.Context(), token.String(), resolve.AccountID, decision)
	if err != nil {
		writeActionError(w, err)
		return
	}

	if action == nil {
		// Cancelled.
		respond(w, &api.ActionResult{Token: token.String(), Kind: "cancelled", Executed: false})
		return
	}

	result, err := h.execute(r, action)
	if err != nil {
		slog.Error("confirmed action failed to execute", "token", action.Token, "kind", action.Kind, "error", err)
		writeActionError(w, err)
		return
	}

	respond(w, result)
}

// execute runs the confirmed action's pinned payload against the owning
// service.
func (h *ActionsHandler) execute(r *http.Request, action *models.PendingAction) (*api.ActionResult, error) {
	result := &api.ActionResult{Token: action.Token, Kind: string(action.Kind), Executed: true}

	switch action.Kind {
	case models.ActionTransfer:
		return result, h.Payments.ExecuteTransfer(r.Context(), action.Transfer)
	case models.ActionBuyAsset:
		asset, err := h.Market.ExecutePurchase(r.Context(), action.BuyAsset)
		if err != nil {
			return nil, err
		}
		result.Asset = mapping.ToApiAsset(asset)
		return result, nil
	case models.ActionSellAsset:
		return result, h.Market.ExecuteBuyback(r.Context(), action.SellAsset)
	case models.ActionTradeAsset:
		return result, h.Market.ExecuteTrade(r.Context(), action.TradeAsset)
	case models.ActionBuyCrypto:
		trade, err := h.Payments.ExecuteCryptoBuy(r.Context(), action.BuyCrypto)
		if err != nil {
			return nil, err
		}
		result.Trade = mapping.ToApiCryptoTrade(trade)
		return result, nil
	case models.ActionSellCrypto:
		trade, err := h.Payments.ExecuteCryptoSell(r.Context(), action.SellCrypto)
		if err != nil {
			return nil, err
		}
		result.Trade = mapping.ToApiCryptoTrade(trade)
		return result, nil
	default:
		return nil, fmt.Errorf("unknown action kind %q: %w", action.Kind, storage.ErrNotFound)
	}
}

func writeActionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, storage.ErrForbidden), errors.Is(err, storage.ErrAccountBanned):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, storage.ErrInsufficientFunds):
		http.Error(w, "Insufficient funds", http.StatusUnprocessableEntity)
	case errors.Is(err, storage.ErrInvalidAmount):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, storage.ErrNotOwned), errors.Is(err, storage.ErrConflict):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, fmt.Sprintf("Failed to resolve action: %v", err), http.StatusInternalServerError)
	}
}

func respond(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}
