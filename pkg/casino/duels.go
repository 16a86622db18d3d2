package casino

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/alan12292009/megaroll-core/pkg/economy"
	"github.com/alan12292009/megaroll-core/pkg/models"
	"github.com/alan12292009/megaroll-core/pkg/scheduler"
	"github.com/alan12292009/megaroll-core/pkg/storage"
)

// DuelExpiry is how long an accepted duel may sit without both rolls before
// the captured stakes are refunded.
const DuelExpiry = 15 * time.Minute

// DuelBackend is the storage surface the coordinator needs.
type DuelBackend interface {
	storage.AccountStore
	storage.DuelStore
}

// DuelCoordinator drives the challenge -> accept/reject -> roll -> resolve
// state machine. Stake movement happens only inside DuelStore commits; the
// coordinator owns sequencing, authorization and outcome computation.
type DuelCoordinator struct {
	Store     DuelBackend
	Scheduler scheduler.Scheduler
	RNG       RNG
}

// NewDuelCoordinator creates a new DuelCoordinator.
func NewDuelCoordinator(store DuelBackend, sched scheduler.Scheduler, rng RNG) *DuelCoordinator {
	return &DuelCoordinator{Store: store, Scheduler: sched, RNG: rng}
}

// Challenge creates a PENDING duel. Both balances are checked here so a
// hopeless challenge fails immediately, and re-validated atomically at accept
// time since either balance may drop in between.
func (c *DuelCoordinator) Challenge(ctx context.Context, challengerID, opponentID, stake int64) (*models.Duel, error) {
	if !economy.ValidBet(stake) {
		return nil, fmt.Errorf("stake %d outside [%d, %d]: %w", stake, economy.MinBet, economy.MaxBet, storage.ErrInvalidAmount)
	}
	if challengerID == opponentID {
		return nil, fmt.Errorf("cannot duel yourself: %w", storage.ErrForbidden)
	}

	challenger, err := c.Store.GetAccount(ctx, challengerID)
	if err != nil {
		return nil, err
	}
	if challenger.Banned {
		return nil, fmt.Errorf("account %d: %w", challengerID, storage.ErrAccountBanned)
	}
	if challenger.Balance < stake {
		return nil, storage.ErrInsufficientFunds
	}

	opponent, err := c.Store.GetAccount(ctx, opponentID)
	if err != nil {
		return nil, err
	}
	if opponent.Banned {
		return nil, fmt.Errorf("account %d: %w", opponentID, storage.ErrAccountBanned)
	}
	if opponent.Balance < stake {
		return nil, fmt.Errorf("opponent %d cannot cover the stake: %w", opponentID, storage.ErrInsufficientFunds)
	}

	fee, pot := economy.DuelFee(stake)
	duel := &models.Duel{
		Token:        uuid.New().String(),
		ChallengerID: challengerID,
		OpponentID:   opponentID,
		Stake:        stake,
		Fee:          fee,
		Pot:          pot,
	}

	return c.Store.CreateDuel(ctx, duel)
}

// Respond lets the challenged party accept or reject a PENDING duel. Accept
// captures both stakes and the fee in one commit and schedules the expiry
// refund; reject moves no funds.
func (c *DuelCoordinator) Respond(ctx context.Context, token string, responderID int64, accept bool) (*models.Duel, error) {
	duel, err := c.Store.GetDuel(ctx, token)
	if err != nil {
		return nil, err
	}
	if responderID != duel.OpponentID {
		return nil, fmt.Errorf("account %d is not the challenged party: %w", responderID, storage.ErrForbidden)
	}

	if !accept {
		if err := c.Store.RejectDuel(ctx, token); err != nil {
			return nil, err
		}
		duel.Status = models.DuelRejected
		return duel, nil
	}

	duel.Fee, duel.Pot = economy.DuelFee(duel.Stake)
	if err := c.Store.ActivateDuel(ctx, duel); err != nil {
		return nil, err
	}
	duel.Status = models.DuelActive

	// Expiry delivery is best effort; the reconciliation sweep picks up
	// anything a lost message leaves behind.
	msg := &scheduler.ExpiryMessage{Kind: scheduler.ExpireDuel, Token: duel.Token}
	if err := c.Scheduler.ScheduleExpiry(ctx, msg, DuelExpiry); err != nil {
		slog.Error("failed to schedule duel expiry", "duel", duel.Token, "error", err)
	}

	return duel, nil
}

// RollResult is the observable outcome of one roll submission.
type RollResult struct {
	Duel        *models.Duel      `json:"duel"`
	Roll        int64             `json:"roll"`
	Resolved    bool              `json:"resolved"`
	Tie         bool              `json:"tie"`
	WinnerID    int64             `json:"winner_id,omitempty"`
	Pot         int64             `json:"pot,omitempty"`
	LoserBusted bool              `json:"loser_busted,omitempty"`
}

// SubmitRoll draws and records the participant's roll. The submission that
// completes the pair also resolves the duel: higher roll takes the pot, a tie
// refunds both stakes with the fee kept.
func (c *DuelCoordinator) SubmitRoll(ctx context.Context, token string, participantID int64) (*RollResult, error) {
	roll := rollDie(c.RNG)

	duel, err := c.Store.RecordRoll(ctx, token, participantID, roll)
	if err != nil {
		return nil, err
	}

	result := &RollResult{Duel: duel, Roll: roll}
	if duel.ChallengerRoll == nil || duel.OpponentRoll == nil {
		return result, nil
	}

	if err := c.resolve(ctx, duel, result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *DuelCoordinator) resolve(ctx context.Context, duel *models.Duel, result *RollResult) error {
	challengerRoll := *duel.ChallengerRoll
	opponentRoll := *duel.OpponentRoll
	result.Resolved = true

	if challengerRoll == opponentRoll {
		result.Tie = true
		err := c.Store.RefundDuel(ctx, duel, models.DuelResolved)
		if errors.Is(err, storage.ErrAlreadyResolved) {
			return nil
		}
		return err
	}

	winnerID := duel.ChallengerID
	loserID := duel.OpponentID
	if opponentRoll > challengerRoll {
		winnerID, loserID = loserID, winnerID
	}

	err := c.Store.SettleDuel(ctx, duel, winnerID)
	if errors.Is(err, storage.ErrAlreadyResolved) {
		return nil
	}
	if err != nil {
		return err
	}

	result.WinnerID = winnerID
	result.Pot = duel.Pot

	// Losing a duel can drain a balance to exactly zero; surface it.
	if loser, err := c.Store.GetAccount(ctx, loserID); err == nil && loser.Balance == 0 {
		result.LoserBusted = true
	}

	return nil
}

// ExpireDuel is invoked by the expiry consumer. An ACTIVE duel past its
// deadline refunds both stakes; a still-PENDING challenge is rejected. A duel
// that resolved in the meantime is left alone.
func (c *DuelCoordinator) ExpireDuel(ctx context.Context, token string) error {
	duel, err := c.Store.GetDuel(ctx, token)
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	switch duel.Status {
	case models.DuelActive:
		err := c.Store.RefundDuel(ctx, duel, models.DuelExpired)
		if errors.Is(err, storage.ErrAlreadyResolved) {
			return nil
		}
		return err
	case models.DuelPending:
		err := c.Store.RejectDuel(ctx, token)
		if errors.Is(err, storage.ErrAlreadyResolved) {
			return nil
		}
		return err
	default:
		return nil
	}
}
