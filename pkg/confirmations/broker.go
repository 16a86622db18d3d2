// Package confirmations implements the two-phase confirm pattern used by
// every user-visible economic action: a proposal pins the fully-resolved
// terms under a single-use token, and execution only happens when the same
// actor confirms that token before it expires.
package confirmations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/alan12292009/megaroll-core/pkg/models"
	"github.com/alan12292009/megaroll-core/pkg/storage"
)

// ActionExpiry is how long a proposed action stays confirmable.
const ActionExpiry = 5 * time.Minute

// Decision is the second phase of a proposed action.
type Decision string

const (
	Confirm Decision = "confirm"
	Cancel  Decision = "cancel"
)

// Broker issues and resolves confirmation tokens.
type Broker struct {
	Store storage.ActionStore
	Now   func() time.Time
}

// NewBroker creates a new Broker using wall-clock time.
func NewBroker(store storage.ActionStore) *Broker {
	return &Broker{Store: store, Now: time.Now}
}

// Propose stores the action under a fresh token. The action's payload must
// already carry the final terms; Resolve hands it back verbatim so execution
// cannot drift from what the actor confirmed.
func (b *Broker) Propose(ctx context.Context, action *models.PendingAction) (*models.PendingAction, error) {
	now := b.Now()
	action.Token = uuid.New().String()
	action.CreatedAt = now
	action.ExpiresAt = now.Add(ActionExpiry)

	created, err := b.Store.CreateAction(ctx, action)
	if err != nil {
		return nil, fmt.Errorf("failed to propose %s action: %w", action.Kind, err)
	}
	return created, nil
}

// Resolve consumes the token and, on Confirm, returns the pinned action for
// execution. Cancel consumes the token and returns nil. Each token resolves
// at most once: a second resolution, concurrent or not, gets ErrNotFound.
func (b *Broker) Resolve(ctx context.Context, token string, actorID int64, decision Decision) (*models.PendingAction, error) {
	action, err := b.Store.GetAction(ctx, token)
	if err != nil {
		return nil, err
	}
	if action.ActorID != actorID {
		return nil, fmt.Errorf("token belongs to account %d: %w", action.ActorID, storage.ErrForbidden)
	}

	if b.Now().After(action.ExpiresAt) {
		// Consume eagerly so the table does not wait on the TTL sweep.
		if err := b.Store.ConsumeAction(ctx, token); err != nil && !errors.Is(err, storage.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("action %s expired: %w", token, storage.ErrNotFound)
	}

	// The conditional delete is the exactly-once gate; whoever wins it owns
	// the resolution.
	if err := b.Store.ConsumeAction(ctx, token); err != nil {
		return nil, err
	}

	if decision == Confirm {
		return action, nil
	}
	return nil, nil
}
