package economy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransferFee(t *testing.T) {
	fee, net := TransferFee(10000)
	assert.Equal(t, int64(20), fee)
	assert.Equal(t, int64(9980), net)

	// Fees truncate; sender debit always equals fee + net exactly.
	fee, net = TransferFee(999)
	assert.Equal(t, int64(1), fee)
	assert.Equal(t, int64(998), net)
	assert.Equal(t, int64(999), fee+net)

	fee, net = TransferFee(499)
	assert.Equal(t, int64(0), fee)
	assert.Equal(t, int64(499), net)
}

func TestCasinoTax(t *testing.T) {
	tax, net := CasinoTax(2000)
	assert.Equal(t, int64(40), tax)
	assert.Equal(t, int64(1960), net)

	tax, net = CasinoTax(49)
	assert.Equal(t, int64(0), tax)
	assert.Equal(t, int64(49), net)
}

func TestDuelFee(t *testing.T) {
	// Stake 2000 at 1%: pot removed is 4000, fee floor(4000*0.01)=40.
	fee, pot := DuelFee(2000)
	assert.Equal(t, int64(40), fee)
	assert.Equal(t, int64(3960), pot)

	// Small stakes floor to zero fee, full pot to the winner.
	fee, pot = DuelFee(49)
	assert.Equal(t, int64(0), fee)
	assert.Equal(t, int64(98), pot)
}

func TestLossJackpotContribution(t *testing.T) {
	assert.Equal(t, int64(10), LossJackpotContribution(100))
	assert.Equal(t, int64(0), LossJackpotContribution(9))
	assert.Equal(t, int64(100000), LossJackpotContribution(1000000))
}

func TestGovernmentBuyback(t *testing.T) {
	payout, commission := GovernmentBuyback(100000)
	assert.Equal(t, int64(80000), payout)
	assert.Equal(t, int64(20000), commission)
	assert.Equal(t, int64(100000), payout+commission)

	// Odd prices truncate the payout, never the commission.
	payout, commission = GovernmentBuyback(101)
	assert.Equal(t, int64(80), payout)
	assert.Equal(t, int64(21), commission)
}

func TestCryptoFee(t *testing.T) {
	fee, net := CryptoFee(100000)
	assert.Equal(t, int64(50), fee)
	assert.Equal(t, int64(99950), net)
}

func TestValidBet(t *testing.T) {
	assert.False(t, ValidBet(MinBet-1))
	assert.True(t, ValidBet(MinBet))
	assert.True(t, ValidBet(MaxBet))
	assert.False(t, ValidBet(MaxBet+1))
	assert.False(t, ValidBet(-100))
}
