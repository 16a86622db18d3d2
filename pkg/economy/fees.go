// Package economy holds the pure fee, tax and game-rule arithmetic shared by
// every settlement path. All rates are expressed in basis points so that the
// floor semantics of fee computation are exact integer division, never
// floating-point truncation.
package economy

// Fee and game-rule constants.
const (
	// StartingBalance is granted to every account on first contact.
	StartingBalance int64 = 10000

	// TransferFeeBps is the 0.2% fee on peer-to-peer money transfers.
	TransferFeeBps int64 = 20

	// CryptoFeeBps is the 0.05% fee on the USD notional of crypto trades.
	CryptoFeeBps int64 = 5

	// CasinoTaxBps is the 2% tax withheld from casino winnings. The tax
	// accrues into the jackpot pool, not the collector account.
	CasinoTaxBps int64 = 200

	// DuelFeeBps is the 1% fee taken from the combined duel pot at accept
	// time.
	DuelFeeBps int64 = 100

	// LossJackpotBps is the 10% of every losing stake that feeds the
	// jackpot pool.
	LossJackpotBps int64 = 1000

	// BuybackPercent is the fraction of an asset's price the government
	// pays when buying it back; the remainder is commission.
	BuybackPercent int64 = 80

	MinBet      int64 = 100
	MaxBet      int64 = 1000000
	JackpotSeed int64 = 1000000

	// JackpotChance is the independent per-dice-game probability of
	// hitting the accumulated jackpot.
	JackpotChance = 0.001

	// DiceWinMultiplier, RouletteColorMultiplier and
	// RouletteNumberMultiplier are the gross payout multipliers before tax.
	DiceWinMultiplier        int64 = 2
	RouletteColorMultiplier  int64 = 2
	RouletteNumberMultiplier int64 = 36
)

const bpsDenominator int64 = 10000

// feeBps computes floor(amount * bps / 10000). Amounts are validated
// non-negative by callers, so integer division is an exact floor.
func feeBps(amount, bps int64) int64 {
	return amount * bps / bpsDenominator
}

// TransferFee returns the collector's cut of a transfer and the net amount
// the recipient receives.
func TransferFee(amount int64) (fee, net int64) {
	fee = feeBps(amount, TransferFeeBps)
	return fee, amount - fee
}

// CryptoFee returns the collector's cut of a crypto trade's USD notional and
// the net notional.
func CryptoFee(notional int64) (fee, net int64) {
	fee = feeBps(notional, CryptoFeeBps)
	return fee, notional - fee
}

// CasinoTax returns the jackpot's cut of a gross win and the net payout.
func CasinoTax(winAmount int64) (tax, net int64) {
	tax = feeBps(winAmount, CasinoTaxBps)
	return tax, winAmount - tax
}

// DuelFee returns the collector's cut of a duel with the given per-player
// stake, and the remaining pot the winner takes.
func DuelFee(stake int64) (fee, pot int64) {
	fee = feeBps(stake*2, DuelFeeBps)
	return fee, stake*2 - fee
}

// LossJackpotContribution returns the jackpot accrual for a lost stake.
func LossJackpotContribution(stake int64) int64 {
	return feeBps(stake, LossJackpotBps)
}

// GovernmentBuyback returns the payout the seller receives for an asset and
// the commission routed to the collector.
func GovernmentBuyback(price int64) (payout, commission int64) {
	payout = price * BuybackPercent / 100
	return payout, price - payout
}

// ValidBet reports whether a stake is inside the allowed betting bounds.
func ValidBet(amount int64) bool {
	return amount >= MinBet && amount <= MaxBet
}
