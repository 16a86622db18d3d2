package storage

import (
	"context"

	"github.com/alan12292009/megaroll-core/pkg/models"
)

// TransferStore defines the interface for settling money transfers.
type TransferStore interface {
	// Transfer atomically debits the sender by amount, credits the
	// receiver with amount-fee and the collector with fee, and appends the
	// matching ledger entries. The sender's balance is re-validated at
	// commit time; insufficient funds returns ErrInsufficientFunds with no
	// partial state.
	Transfer(ctx context.Context, fromID, toID, amount, fee int64) error
}

// GameStore defines the privileged interface for settling casino bets. A
// settlement touches the player, the collector and the jackpot pool in one
// indivisible commit.
type GameStore interface {
	// GetJackpot retrieves the current jackpot pool.
	GetJackpot(ctx context.Context, consistent bool) (*models.Jackpot, error)

	// ApplyGameSettlement commits a resolved bet: player and collector
	// balance deltas, jackpot accrual or reset, game statistics and ledger
	// entries. jackpotVersion is the version observed when the outcome was
	// computed; a mismatch returns ErrConflict and nothing is applied.
	ApplyGameSettlement(ctx context.Context, settlement *models.GameSettlement, jackpotVersion int64) error
}
