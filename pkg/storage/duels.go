package storage

import (
	"context"
	"time"

	"github.com/alan12292009/megaroll-core/pkg/models"
)

// DuelStore defines the interface for the two-party escrow state machine.
// Every transition is conditional on the current status, so a transition
// attempted twice fails on the second attempt instead of re-executing.
type DuelStore interface {
	// CreateDuel stores a new duel in PENDING state.
	CreateDuel(ctx context.Context, duel *models.Duel) (*models.Duel, error)

	// GetDuel retrieves a duel by its token.
	GetDuel(ctx context.Context, token string) (*models.Duel, error)

	// RejectDuel moves a PENDING duel to REJECTED. No funds move.
	RejectDuel(ctx context.Context, token string) error

	// ActivateDuel captures both stakes, routes the duel fee to the
	// collector and moves the duel from PENDING to ACTIVE, all in one
	// commit. Either participant lacking funds returns
	// ErrInsufficientFunds and nothing is captured.
	ActivateDuel(ctx context.Context, duel *models.Duel) error

	// RecordRoll stores a participant's roll. A second roll by the same
	// participant returns ErrDuplicateRoll; a roll against a non-ACTIVE
	// duel returns ErrAlreadyResolved. The returned duel reflects the
	// state after the write.
	RecordRoll(ctx context.Context, token string, participantID int64, roll int64) (*models.Duel, error)

	// SettleDuel pays the pot to the winner, updates both participants'
	// duel statistics and moves the duel from ACTIVE to RESOLVED.
	SettleDuel(ctx context.Context, duel *models.Duel, winnerID int64) error

	// RefundDuel returns each participant's stake and moves the duel from
	// ACTIVE to the given terminal status (RESOLVED for a tie, EXPIRED for
	// an abandoned duel). The fee captured at accept time stays with the
	// collector.
	RefundDuel(ctx context.Context, duel *models.Duel, status models.DuelStatus) error

	// GetStuckDuels retrieves duels that have been ACTIVE for longer than
	// the specified duration.
	GetStuckDuels(ctx context.Context, maxAge time.Duration) ([]models.Duel, error)
}
