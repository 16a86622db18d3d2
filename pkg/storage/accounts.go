package storage

import (
	"context"

	"github.com/alan12292009/megaroll-core/pkg/models"
)

// AccountStore defines the interface for managing accounts.
type AccountStore interface {
	// GetAccount retrieves an account by its ID.
	GetAccount(ctx context.Context, accountID int64) (*models.Account, error)

	// GetAccountByUsername retrieves an account by its username.
	GetAccountByUsername(ctx context.Context, username string) (*models.Account, error)

	// CreateAccount creates a new account with the default starting balance.
	CreateAccount(ctx context.Context, account *models.Account) (*models.Account, error)

	// AdjustBalance applies a signed delta to an account's balance. The
	// non-negativity check is atomic with the mutation; a delta that would
	// drive the balance negative returns (false, nil) with no state change.
	AdjustBalance(ctx context.Context, accountID int64, delta int64) (bool, error)

	// TopAccounts retrieves the highest-ranked accounts by casino wins.
	TopAccounts(ctx context.Context, limit int32) ([]models.Account, error)
}
