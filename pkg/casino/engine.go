// Package casino implements the wagering engine: standalone dice and roulette
// bets resolved in a single atomic settlement, and the two-party duel state
// machine. Money only moves inside storage commits; everything here is
// outcome computation.
package casino

import (
	"context"
	"errors"
	"fmt"

	"github.com/alan12292009/megaroll-core/pkg/economy"
	"github.com/alan12292009/megaroll-core/pkg/models"
	"github.com/alan12292009/megaroll-core/pkg/storage"
)

// settleRetries bounds how often a bet is re-settled after losing a version
// race on the player or jackpot item.
const settleRetries = 3

// Store is the storage surface the engine needs.
type Store interface {
	storage.AccountStore
	storage.GameStore
}

// Engine resolves standalone bets.
type Engine struct {
	Store Store
	RNG   RNG
}

// NewEngine creates a new Engine.
func NewEngine(store Store, rng RNG) *Engine {
	return &Engine{Store: store, RNG: rng}
}

// BetResult is the observable outcome of one resolved bet.
type BetResult struct {
	Game        models.Game      `json:"game"`
	Bet         int64            `json:"bet"`
	Outcome     models.BetOutcome `json:"outcome"`
	PlayerRoll  int64            `json:"player_roll,omitempty"`
	HouseRoll   int64            `json:"house_roll,omitempty"`
	Number      int64            `json:"number,omitempty"`
	Color       string           `json:"color,omitempty"`
	PayoutDelta int64            `json:"payout_delta"`
	Tax         int64            `json:"tax"`
	Jackpot     int64            `json:"jackpot"`
	NewBalance  int64            `json:"new_balance"`
}

// PlayDice resolves one dice bet: player die against house die, higher face
// wins double the stake less tax, equal faces push with no effect. An
// independent low-probability check can award the whole jackpot pool
// regardless of the dice comparison.
func (e *Engine) PlayDice(ctx context.Context, accountID, bet int64) (*BetResult, error) {
	account, err := e.validateBet(ctx, accountID, bet)
	if err != nil {
		return nil, err
	}

	playerRoll := rollDie(e.RNG)
	houseRoll := rollDie(e.RNG)
	jackpotHit := e.RNG.Float64() < economy.JackpotChance

	result := &BetResult{
		Game:       models.GameDice,
		Bet:        bet,
		PlayerRoll: playerRoll,
		HouseRoll:  houseRoll,
	}

	settle := func(pool *models.Jackpot) *models.GameSettlement {
		switch {
		case jackpotHit:
			tax, net := economy.CasinoTax(pool.Value)
			return &models.GameSettlement{
				AccountID:    accountID,
				Game:         models.GameDice,
				Bet:          bet,
				Outcome:      models.OutcomeJackpot,
				PlayerDelta:  net,
				JackpotDelta: tax,
				JackpotReset: true,
				Tax:          tax,
			}
		case playerRoll > houseRoll:
			tax, net := economy.CasinoTax(bet * economy.DiceWinMultiplier)
			return &models.GameSettlement{
				AccountID:    accountID,
				Game:         models.GameDice,
				Bet:          bet,
				Outcome:      models.OutcomeWin,
				PlayerDelta:  net,
				JackpotDelta: tax,
				Tax:          tax,
			}
		case playerRoll < houseRoll:
			return &models.GameSettlement{
				AccountID:      accountID,
				Game:           models.GameDice,
				Bet:            bet,
				Outcome:        models.OutcomeLoss,
				PlayerDelta:    -bet,
				CollectorDelta: bet,
				JackpotDelta:   economy.LossJackpotContribution(bet),
			}
		default:
			return nil // Push.
		}
	}

	return e.commit(ctx, account, result, settle)
}

// RouletteBet is the kind of roulette wager.
type RouletteBet string

const (
	BetRed    RouletteBet = "red"
	BetBlack  RouletteBet = "black"
	BetGreen  RouletteBet = "green"
	BetNumber RouletteBet = "number"
)

// redNumbers is the fixed partition of 1-36; zero is green, the rest black.
var redNumbers = [...]int64{1, 3, 5, 7, 9, 12, 14, 16, 18, 19, 21, 23, 25, 27, 30, 32, 34, 36}

// RouletteColor returns the wheel color of a pocket.
func RouletteColor(number int64) string {
	if number == 0 {
		return "green"
	}
	for _, n := range redNumbers {
		if n == number {
			return "red"
		}
	}
	return "black"
}

// PlayRoulette resolves one roulette bet. Colors pay double, the green zero
// and exact-number bets pay thirty-six times the stake, all less tax. number
// is only consulted for BetNumber wagers.
func (e *Engine) PlayRoulette(ctx context.Context, accountID, bet int64, betType RouletteBet, number int64) (*BetResult, error) {
	switch betType {
	case BetRed, BetBlack, BetGreen:
	case BetNumber:
		if number < 0 || number > 36 {
			return nil, fmt.Errorf("roulette number %d: %w", number, storage.ErrInvalidAmount)
		}
	default:
		return nil, fmt.Errorf("roulette bet type %q: %w", betType, storage.ErrInvalidAmount)
	}

	account, err := e.validateBet(ctx, accountID, bet)
	if err != nil {
		return nil, err
	}

	spin := int64(e.RNG.IntN(37))
	color := RouletteColor(spin)

	var multiplier int64
	switch {
	case betType == BetRed && color == "red":
		multiplier = economy.RouletteColorMultiplier
	case betType == BetBlack && color == "black":
		multiplier = economy.RouletteColorMultiplier
	case betType == BetGreen && spin == 0:
		multiplier = economy.RouletteNumberMultiplier
	case betType == BetNumber && spin == number:
		multiplier = economy.RouletteNumberMultiplier
	}

	result := &BetResult{
		Game:   models.GameRoulette,
		Bet:    bet,
		Number: spin,
		Color:  color,
	}

	settle := func(pool *models.Jackpot) *models.GameSettlement {
		if multiplier > 0 {
			tax, net := economy.CasinoTax(bet * multiplier)
			return &models.GameSettlement{
				AccountID:    accountID,
				Game:         models.GameRoulette,
				Bet:          bet,
				Outcome:      models.OutcomeWin,
				PlayerDelta:  net,
				JackpotDelta: tax,
				Tax:          tax,
			}
		}
		return &models.GameSettlement{
			AccountID:      accountID,
			Game:           models.GameRoulette,
			Bet:            bet,
			Outcome:        models.OutcomeLoss,
			PlayerDelta:    -bet,
			CollectorDelta: bet,
			JackpotDelta:   economy.LossJackpotContribution(bet),
		}
	}

	return e.commit(ctx, account, result, settle)
}

// validateBet rejects out-of-bounds stakes, banned accounts and stakes the
// live balance cannot cover. The settlement re-validates the balance at
// commit time; this check just fails fast.
func (e *Engine) validateBet(ctx context.Context, accountID, bet int64) (*models.Account, error) {
	if !economy.ValidBet(bet) {
		return nil, fmt.Errorf("bet %d outside [%d, %d]: %w", bet, economy.MinBet, economy.MaxBet, storage.ErrInvalidAmount)
	}

	account, err := e.Store.GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account.Banned {
		return nil, fmt.Errorf("account %d: %w", accountID, storage.ErrAccountBanned)
	}
	if account.Balance < bet {
		return nil, storage.ErrInsufficientFunds
	}

	return account, nil
}

// commit reads the jackpot pool, builds the settlement for the already-drawn
// outcome and applies it, retrying on version races. The drawn outcome is
// fixed before the first attempt; only the pool value is re-read.
func (e *Engine) commit(ctx context.Context, account *models.Account, result *BetResult, settle func(*models.Jackpot) *models.GameSettlement) (*BetResult, error) {
	for attempt := 0; attempt < settleRetries; attempt++ {
		pool, err := e.Store.GetJackpot(ctx, true)
		if err != nil {
			return nil, err
		}

		settlement := settle(pool)
		if settlement == nil {
			// Push: stake returned untouched, no tax, no stats.
			result.Outcome = models.OutcomePush
			result.Jackpot = pool.Value
			result.NewBalance = account.Balance
			return result, nil
		}

		err = e.Store.ApplyGameSettlement(ctx, settlement, pool.Version)
		if errors.Is(err, storage.ErrConflict) {
			continue
		}
		if err != nil {
			return nil, err
		}

		result.Outcome = settlement.Outcome
		result.PayoutDelta = settlement.PlayerDelta
		result.Tax = settlement.Tax
		if settlement.JackpotReset {
			result.Jackpot = economy.JackpotSeed + settlement.JackpotDelta
		} else {
			result.Jackpot = pool.Value + settlement.JackpotDelta
		}

		// Re-read for the post-settlement balance; the earlier read may be
		// stale by now.
		result.NewBalance = account.Balance + settlement.PlayerDelta
		if fresh, err := e.Store.GetAccount(ctx, settlement.AccountID); err == nil {
			result.NewBalance = fresh.Balance
		}

		// A loss that drains the balance to exactly zero is surfaced as
		// its own outcome.
		if settlement.Outcome == models.OutcomeLoss && result.NewBalance == 0 {
			result.Outcome = models.OutcomeBusted
		}
		return result, nil
	}

	return nil, fmt.Errorf("bet settlement kept losing version races: %w", storage.ErrConflict)
}
