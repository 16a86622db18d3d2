package accounts

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/alan12292009/megaroll-core/pkg/api"
	"github.com/alan12292009/megaroll-core/pkg/mapping"
	"github.com/alan12292009/megaroll-core/pkg/storage"
)

// AccountsHandler holds the dependencies for account-related handlers.
type AccountsHandler struct {
	Store storage.AccountStore
}

// NewAccountsHandler creates a new AccountsHandler.
func NewAccountsHandler(store storage.AccountStore) *AccountsHandler {
	return &AccountsHandler{Store: store}
}

// CreateAccount handles the logic for creating a new account.
func (h *AccountsHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var newAccount api.NewAccount
	if err := json.NewDecoder(r.Body).Decode(&newAccount); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if newAccount.ID <= 0 || newAccount.Username == "" {
		http.Error(w, "id and username are required", http.StatusBadRequest)
		return
	}

	created, err := h.Store.CreateAccount(r.Context(), mapping.ToDomainNewAccount(&newAccount))
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			http.Error(w, "Account already exists", http.StatusConflict)
		} else {
			http.Error(w, fmt.Sprintf("Failed to create account: %v", err), http.StatusInternalServerError)
		}
		return
	}

	apiAccount := mapping.ToApiAccount(created)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(apiAccount); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// GetAccountById handles the logic for retrieving an account.
func (h *AccountsHandler) GetAccountById(w http.ResponseWriter, r *http.Request, accountId int64) {
	account, err := h.Store.GetAccount(r.Context(), accountId)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve account: %v", err), http.StatusNotFound)
		return
	}

	apiAccount := mapping.ToApiAccount(account)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(apiAccount); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// Leaderboard handles the logic for listing the top-ranked accounts.
func (h *AccountsHandler) Leaderboard(w http.ResponseWriter, r *http.Request, params api.LeaderboardParams) {
	limit := int32(10)
	if params.Limit != nil {
		limit = *params.Limit
	}

	accounts, err := h.Store.TopAccounts(r.Context(), limit)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve leaderboard: %v", err), http.StatusInternalServerError)
		return
	}

	apiAccounts := make([]*api.Account, len(accounts))
	for i, account := range accounts {
		apiAccounts[i] = mapping.ToApiAccount(&account)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(apiAccounts); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}
