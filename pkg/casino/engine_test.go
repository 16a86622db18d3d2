package casino

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/alan12292009/megaroll-core/pkg/models"
	"github.com/alan12292009/megaroll-core/pkg/storage"
	storage_mocks "github.com/alan12292009/megaroll-core/pkg/storage/mocks"
)

// seqRNG replays a fixed sequence of draws.
type seqRNG struct {
	ints   []int
	floats []float64
}

func (r *seqRNG) IntN(n int) int {
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v
}

func (r *seqRNG) Float64() float64 {
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func TestPlayDice(t *testing.T) {
	pool := &models.Jackpot{ID: models.JackpotID, Value: 1500000, Version: 7}

	t.Run("Win", func(t *testing.T) {
		mockStorage := new(storage_mocks.ApiStore)
		// Player rolls 6, house rolls 1, no jackpot hit.
		engine := NewEngine(mockStorage, &seqRNG{ints: []int{5, 0}, floats: []float64{0.9}})

		mockStorage.On("GetAccount", mock.Anything, int64(42)).Once().Return(&models.Account{ID: 42, Balance: 5000}, nil)
		mockStorage.On("GetJackpot", mock.Anything, true).Once().Return(pool, nil)
		mockStorage.On("ApplyGameSettlement", mock.Anything, mock.AnythingOfType("*models.GameSettlement"), int64(7)).Once().
			Run(func(args mock.Arguments) {
				s := args.Get(1).(*models.GameSettlement)
				assert.Equal(t, models.OutcomeWin, s.Outcome)
				// Gross win 2000, tax 2% = 40.
				assert.Equal(t, int64(1960), s.PlayerDelta)
				assert.Equal(t, int64(40), s.JackpotDelta)
				assert.Equal(t, int64(0), s.CollectorDelta)
			}).
			Return(nil)
		mockStorage.On("GetAccount", mock.Anything, int64(42)).Once().Return(&models.Account{ID: 42, Balance: 6960}, nil)

		result, err := engine.PlayDice(context.Background(), 42, 1000)

		assert.NoError(t, err)
		assert.Equal(t, models.OutcomeWin, result.Outcome)
		assert.Equal(t, int64(6), result.PlayerRoll)
		assert.Equal(t, int64(1), result.HouseRoll)
		assert.Equal(t, int64(1960), result.PayoutDelta)
		assert.Equal(t, int64(6960), result.NewBalance)
		assert.Equal(t, int64(1500040), result.Jackpot)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Loss To Zero Is Busted", func(t *testing.T) {
		mockStorage := new(storage_mocks.ApiStore)
		// Player rolls 1, house rolls 6.
		engine := NewEngine(mockStorage, &seqRNG{ints: []int{0, 5}, floats: []float64{0.9}})

		mockStorage.On("GetAccount", mock.Anything, int64(42)).Once().Return(&models.Account{ID: 42, Balance: 1000}, nil)
		mockStorage.On("GetJackpot", mock.Anything, true).Once().Return(pool, nil)
		mockStorage.On("ApplyGameSettlement", mock.Anything, mock.AnythingOfType("*models.GameSettlement"), int64(7)).Once().
			Run(func(args mock.Arguments) {
				s := args.Get(1).(*models.GameSettlement)
				assert.Equal(t, models.OutcomeLoss, s.Outcome)
				assert.Equal(t, int64(-1000), s.PlayerDelta)
				assert.Equal(t, int64(1000), s.CollectorDelta)
				assert.Equal(t, int64(100), s.JackpotDelta)
			}).
			Return(nil)
		mockStorage.On("GetAccount", mock.Anything, int64(42)).Once().Return(&models.Account{ID: 42, Balance: 0}, nil)

		result, err := engine.PlayDice(context.Background(), 42, 1000)

		assert.NoError(t, err)
		assert.Equal(t, models.OutcomeBusted, result.Outcome)
		assert.Equal(t, int64(0), result.NewBalance)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Push Moves Nothing", func(t *testing.T) {
		mockStorage := new(storage_mocks.ApiStore)
		engine := NewEngine(mockStorage, &seqRNG{ints: []int{3, 3}, floats: []float64{0.9}})

		mockStorage.On("GetAccount", mock.Anything, int64(42)).Once().Return(&models.Account{ID: 42, Balance: 5000}, nil)
		mockStorage.On("GetJackpot", mock.Anything, true).Once().Return(pool, nil)

		result, err := engine.PlayDice(context.Background(), 42, 1000)

		assert.NoError(t, err)
		assert.Equal(t, models.OutcomePush, result.Outcome)
		assert.Equal(t, int64(0), result.PayoutDelta)
		assert.Equal(t, int64(5000), result.NewBalance)
		assert.Equal(t, pool.Value, result.Jackpot)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Jackpot Hit Pays Whole Pool", func(t *testing.T) {
		mockStorage := new(storage_mocks.ApiStore)
		// Losing faces, but the jackpot draw hits.
		engine := NewEngine(mockStorage, &seqRNG{ints: []int{0, 5}, floats: []float64{0.0001}})

		mockStorage.On("GetAccount", mock.Anything, int64(42)).Once().Return(&models.Account{ID: 42, Balance: 5000}, nil)
		mockStorage.On("GetJackpot", mock.Anything, true).Once().Return(pool, nil)
		mockStorage.On("ApplyGameSettlement", mock.Anything, mock.AnythingOfType("*models.GameSettlement"), int64(7)).Once().
			Run(func(args mock.Arguments) {
				s := args.Get(1).(*models.GameSettlement)
				assert.Equal(t, models.OutcomeJackpot, s.Outcome)
				// Pool 1,500,000 taxed 2%.
				assert.Equal(t, int64(1470000), s.PlayerDelta)
				assert.Equal(t, int64(30000), s.JackpotDelta)
				assert.True(t, s.JackpotReset)
			}).
			Return(nil)
		mockStorage.On("GetAccount", mock.Anything, int64(42)).Once().Return(&models.Account{ID: 42, Balance: 1475000}, nil)

		result, err := engine.PlayDice(context.Background(), 42, 1000)

		assert.NoError(t, err)
		assert.Equal(t, models.OutcomeJackpot, result.Outcome)
		// Pool restarts from its seed plus the tax on the payout.
		assert.Equal(t, int64(1030000), result.Jackpot)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Retries On Version Race", func(t *testing.T) {
		mockStorage := new(storage_mocks.ApiStore)
		engine := NewEngine(mockStorage, &seqRNG{ints: []int{5, 0}, floats: []float64{0.9}})

		mockStorage.On("GetAccount", mock.Anything, int64(42)).Once().Return(&models.Account{ID: 42, Balance: 5000}, nil)
		mockStorage.On("GetJackpot", mock.Anything, true).Twice().Return(pool, nil)
		mockStorage.On("ApplyGameSettlement", mock.Anything, mock.Anything, int64(7)).Once().Return(storage.ErrConflict)
		mockStorage.On("ApplyGameSettlement", mock.Anything, mock.Anything, int64(7)).Once().Return(nil)
		mockStorage.On("GetAccount", mock.Anything, int64(42)).Once().Return(&models.Account{ID: 42, Balance: 6960}, nil)

		result, err := engine.PlayDice(context.Background(), 42, 1000)

		assert.NoError(t, err)
		assert.Equal(t, models.OutcomeWin, result.Outcome)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Bet Out Of Bounds", func(t *testing.T) {
		mockStorage := new(storage_mocks.ApiStore)
		engine := NewEngine(mockStorage, &seqRNG{})

		_, err := engine.PlayDice(context.Background(), 42, 50)

		assert.ErrorIs(t, err, storage.ErrInvalidAmount)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Banned Account", func(t *testing.T) {
		mockStorage := new(storage_mocks.ApiStore)
		engine := NewEngine(mockStorage, &seqRNG{})

		mockStorage.On("GetAccount", mock.Anything, int64(42)).Return(&models.Account{ID: 42, Balance: 5000, Banned: true}, nil)

		_, err := engine.PlayDice(context.Background(), 42, 1000)

		assert.ErrorIs(t, err, storage.ErrAccountBanned)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Insufficient Funds", func(t *testing.T) {
		mockStorage := new(storage_mocks.ApiStore)
		engine := NewEngine(mockStorage, &seqRNG{})

		mockStorage.On("GetAccount", mock.Anything, int64(42)).Return(&models.Account{ID: 42, Balance: 500}, nil)

		_, err := engine.PlayDice(context.Background(), 42, 1000)

		assert.ErrorIs(t, err, storage.ErrInsufficientFunds)
		mockStorage.AssertExpectations(t)
	})
}

func TestPlayRoulette(t *testing.T) {
	pool := &models.Jackpot{ID: models.JackpotID, Value: 1500000, Version: 7}

	t.Run("Red Wins Double", func(t *testing.T) {
		mockStorage := new(storage_mocks.ApiStore)
		// Pocket 3 is red.
		engine := NewEngine(mockStorage, &seqRNG{ints: []int{3}})

		mockStorage.On("GetAccount", mock.Anything, int64(42)).Once().Return(&models.Account{ID: 42, Balance: 5000}, nil)
		mockStorage.On("GetJackpot", mock.Anything, true).Once().Return(pool, nil)
		mockStorage.On("ApplyGameSettlement", mock.Anything, mock.AnythingOfType("*models.GameSettlement"), int64(7)).Once().
			Run(func(args mock.Arguments) {
				s := args.Get(1).(*models.GameSettlement)
				assert.Equal(t, models.OutcomeWin, s.Outcome)
				// Gross win 200, tax 2% = 4.
				assert.Equal(t, int64(196), s.PlayerDelta)
				assert.Equal(t, int64(4), s.JackpotDelta)
			}).
			Return(nil)
		mockStorage.On("GetAccount", mock.Anything, int64(42)).Once().Return(&models.Account{ID: 42, Balance: 5196}, nil)

		result, err := engine.PlayRoulette(context.Background(), 42, 100, BetRed, 0)

		assert.NoError(t, err)
		assert.Equal(t, models.OutcomeWin, result.Outcome)
		assert.Equal(t, "red", result.Color)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Red Bet On Black Pocket Loses", func(t *testing.T) {
		mockStorage := new(storage_mocks.ApiStore)
		// Pocket 2 is black.
		engine := NewEngine(mockStorage, &seqRNG{ints: []int{2}})

		mockStorage.On("GetAccount", mock.Anything, int64(42)).Once().Return(&models.Account{ID: 42, Balance: 5000}, nil)
		mockStorage.On("GetJackpot", mock.Anything, true).Once().Return(pool, nil)
		mockStorage.On("ApplyGameSettlement", mock.Anything, mock.AnythingOfType("*models.GameSettlement"), int64(7)).Once().
			Run(func(args mock.Arguments) {
				s := args.Get(1).(*models.GameSettlement)
				assert.Equal(t, models.OutcomeLoss, s.Outcome)
				assert.Equal(t, int64(-100), s.PlayerDelta)
				assert.Equal(t, int64(100), s.CollectorDelta)
				assert.Equal(t, int64(10), s.JackpotDelta)
			}).
			Return(nil)
		mockStorage.On("GetAccount", mock.Anything, int64(42)).Once().Return(&models.Account{ID: 42, Balance: 4900}, nil)

		result, err := engine.PlayRoulette(context.Background(), 42, 100, BetRed, 0)

		assert.NoError(t, err)
		assert.Equal(t, models.OutcomeLoss, result.Outcome)
		assert.Equal(t, "black", result.Color)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Exact Number Pays Thirty Six", func(t *testing.T) {
		mockStorage := new(storage_mocks.ApiStore)
		engine := NewEngine(mockStorage, &seqRNG{ints: []int{17}})

		mockStorage.On("GetAccount", mock.Anything, int64(42)).Once().Return(&models.Account{ID: 42, Balance: 5000}, nil)
		mockStorage.On("GetJackpot", mock.Anything, true).Once().Return(pool, nil)
		mockStorage.On("ApplyGameSettlement", mock.Anything, mock.AnythingOfType("*models.GameSettlement"), int64(7)).Once().
			Run(func(args mock.Arguments) {
				s := args.Get(1).(*models.GameSettlement)
				// Gross win 3600, tax 2% = 72.
				assert.Equal(t, int64(3528), s.PlayerDelta)
				assert.Equal(t, int64(72), s.JackpotDelta)
			}).
			Return(nil)
		mockStorage.On("GetAccount", mock.Anything, int64(42)).Once().Return(&models.Account{ID: 42, Balance: 8528}, nil)

		result, err := engine.PlayRoulette(context.Background(), 42, 100, BetNumber, 17)

		assert.NoError(t, err)
		assert.Equal(t, models.OutcomeWin, result.Outcome)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Invalid Number", func(t *testing.T) {
		mockStorage := new(storage_mocks.ApiStore)
		engine := NewEngine(mockStorage, &seqRNG{})

		_, err := engine.PlayRoulette(context.Background(), 42, 100, BetNumber, 37)

		assert.ErrorIs(t, err, storage.ErrInvalidAmount)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Invalid Bet Type", func(t *testing.T) {
		mockStorage := new(storage_mocks.ApiStore)
		engine := NewEngine(mockStorage, &seqRNG{})

		_, err := engine.PlayRoulette(context.Background(), 42, 100, RouletteBet("corner"), 0)

		assert.ErrorIs(t, err, storage.ErrInvalidAmount)
		mockStorage.AssertExpectations(t)
	})
}

func TestRouletteColor(t *testing.T) {
	assert.Equal(t, "green", RouletteColor(0))
	assert.Equal(t, "red", RouletteColor(1))
	assert.Equal(t, "black", RouletteColor(2))
	assert.Equal(t, "red", RouletteColor(36))
	assert.Equal(t, "black", RouletteColor(35))
}
