package storage

import (
	"context"

	"github.com/alan12292009/megaroll-core/pkg/models"
)

// CryptoStore defines the interface for crypto instruments and positions.
type CryptoStore interface {
	// ListInstruments retrieves all tradeable instruments.
	ListInstruments(ctx context.Context) ([]models.Instrument, error)

	// GetInstrument retrieves one instrument by symbol.
	GetInstrument(ctx context.Context, symbol string) (*models.Instrument, error)

	// SeedInstruments inserts the default instrument set, refreshing
	// prices of any that already exist.
	SeedInstruments(ctx context.Context, instruments []models.Instrument) error

	// GetPosition retrieves an account's position in one instrument.
	GetPosition(ctx context.Context, accountID int64, symbol string) (*models.CryptoPosition, error)

	// ListPositions retrieves all of an account's positions.
	ListPositions(ctx context.Context, accountID int64) ([]models.CryptoPosition, error)

	// SettleCryptoBuy debits the buyer the full notional, credits the
	// collector the fee and upserts the recomputed position, atomically.
	// prevVersion 0 means the position is being created.
	SettleCryptoBuy(ctx context.Context, buyerID, debit, fee int64, position *models.CryptoPosition, prevVersion int64) error

	// SettleCryptoSell credits the seller the net proceeds, credits the
	// collector the fee and writes (or deletes, when the remaining amount
	// is dust) the position, atomically.
	SettleCryptoSell(ctx context.Context, sellerID, credit, fee int64, position *models.CryptoPosition, prevVersion int64, deletePosition bool) error
}
