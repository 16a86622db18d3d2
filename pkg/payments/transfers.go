// Package payments implements peer-to-peer money transfers and crypto
// trading. Every operation is two-phase: a proposal pins the terms (resolved
// recipient, quoted price, computed fee) under a confirmation token, and
// execution replays exactly those terms.
package payments

import (
	"context"
	"fmt"

	"github.com/alan12292009/megaroll-core/pkg/confirmations"
	"github.com/alan12292009/megaroll-core/pkg/economy"
	"github.com/alan12292009/megaroll-core/pkg/models"
	"github.com/alan12292009/megaroll-core/pkg/storage"
)

// Backend is the storage surface the payments service needs.
type Backend interface {
	storage.AccountStore
	storage.TransferStore
	storage.CryptoStore
}

// Service proposes and executes transfers and crypto trades.
type Service struct {
	Store  Backend
	Broker *confirmations.Broker
}

// NewService creates a new Service.
func NewService(store Backend, broker *confirmations.Broker) *Service {
	return &Service{Store: store, Broker: broker}
}

// ProposeTransfer resolves the recipient by username, computes the fee and
// pins the transfer under a confirmation token. The sender's balance is
// checked here to fail fast and re-validated atomically at execution.
func (s *Service) ProposeTransfer(ctx context.Context, fromID int64, toUsername string, amount int64) (*models.PendingAction, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("transfer amount %d: %w", amount, storage.ErrInvalidAmount)
	}

	sender, err := s.Store.GetAccount(ctx, fromID)
	if err != nil {
		return nil, err
	}
	if sender.Banned {
		return nil, fmt.Errorf("account %d: %w", fromID, storage.ErrAccountBanned)
	}

	recipient, err := s.Store.GetAccountByUsername(ctx, toUsername)
	if err != nil {
		return nil, err
	}
	if recipient.ID == fromID {
		return nil, fmt.Errorf("cannot transfer to yourself: %w", storage.ErrInvalidAmount)
	}
	if recipient.Banned {
		return nil, fmt.Errorf("account %d: %w", recipient.ID, storage.ErrAccountBanned)
	}

	fee, _ := economy.TransferFee(amount)
	if sender.Balance < amount {
		return nil, storage.ErrInsufficientFunds
	}

	return s.Broker.Propose(ctx, &models.PendingAction{
		ActorID: fromID,
		Kind:    models.ActionTransfer,
		Transfer: &models.TransferPayload{
			FromID: fromID,
			ToID:   recipient.ID,
			Amount: amount,
			Fee:    fee,
		},
	})
}

// ExecuteTransfer commits a confirmed transfer with the pinned terms.
func (s *Service) ExecuteTransfer(ctx context.Context, payload *models.TransferPayload) error {
	return s.Store.Transfer(ctx, payload.FromID, payload.ToID, payload.Amount, payload.Fee)
}
