package storage

import (
	"context"

	"github.com/alan12292009/megaroll-core/pkg/models"
)

// ActionStore defines the interface for pending-confirmation tokens.
type ActionStore interface {
	// CreateAction stores a new single-use pending action.
	CreateAction(ctx context.Context, action *models.PendingAction) (*models.PendingAction, error)

	// GetAction retrieves a pending action by its token.
	GetAction(ctx context.Context, token string) (*models.PendingAction, error)

	// ConsumeAction deletes the action if it still exists. A token that was
	// already consumed (or never existed) returns ErrNotFound, which makes
	// confirm/cancel exactly-once even under concurrent resolution.
	ConsumeAction(ctx context.Context, token string) error
}
