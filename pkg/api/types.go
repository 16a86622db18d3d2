// Package api defines the wire types of the HTTP surface. Request bodies
// carry the acting account explicitly; optional response fields are pointers
// so they are omitted rather than zeroed.
package api

import (
	"time"
)

// NewAccount is the request body for account creation.
type NewAccount struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// Account is the wire form of a player account.
type Account struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Balance      int64     `json:"balance"`
	Banned       bool      `json:"banned"`
	TotalGames   int64     `json:"total_games"`
	TotalWins    int64     `json:"total_wins"`
	TotalLosses  int64     `json:"total_losses"`
	BiggestWin   int64     `json:"biggest_win"`
	BiggestLoss  int64     `json:"biggest_loss"`
	DuelWins     int64     `json:"duel_wins"`
	DuelLosses   int64     `json:"duel_losses"`
	CreatedAt    time.Time `json:"created_at"`
	LastActiveAt time.Time `json:"last_active_at"`
}

// NewTransfer proposes a money transfer to another player.
type NewTransfer struct {
	FromID     int64  `json:"from_id"`
	ToUsername string `json:"to_username"`
	Amount     int64  `json:"amount"`
}

// PendingAction is the wire form of a proposed, not yet confirmed action.
type PendingAction struct {
	Token     string    `json:"token"`
	Kind      string    `json:"kind"`
	ExpiresAt time.Time `json:"expires_at"`
	Amount    *int64    `json:"amount,omitempty"`
	Fee       *int64    `json:"fee,omitempty"`
	Price     *string   `json:"price,omitempty"`
	Detail    *string   `json:"detail,omitempty"`
}

// ResolveAction confirms or cancels a pending action.
type ResolveAction struct {
	AccountID int64  `json:"account_id"`
	Decision  string `json:"decision"`
}

// ActionResult reports what a confirmed action did. Exactly one of the
// optional fields is set, matching the action's kind.
type ActionResult struct {
	Token    string       `json:"token"`
	Kind     string       `json:"kind"`
	Executed bool         `json:"executed"`
	Asset    *Asset       `json:"asset,omitempty"`
	Trade    *CryptoTrade `json:"trade,omitempty"`
}

// NewBet places a dice or roulette bet.
type NewBet struct {
	AccountID int64  `json:"account_id"`
	Amount    int64  `json:"amount"`
	BetType   string `json:"bet_type,omitempty"`
	Number    *int64 `json:"number,omitempty"`
}

// BetResult is the wire form of a resolved bet.
type BetResult struct {
	Game        string `json:"game"`
	Bet         int64  `json:"bet"`
	Outcome     string `json:"outcome"`
	PlayerRoll  *int64 `json:"player_roll,omitempty"`
	HouseRoll   *int64 `json:"house_roll,omitempty"`
	Number      *int64 `json:"number,omitempty"`
	Color       string `json:"color,omitempty"`
	PayoutDelta int64  `json:"payout_delta"`
	Tax         int64  `json:"tax"`
	Jackpot     int64  `json:"jackpot"`
	NewBalance  int64  `json:"new_balance"`
}

// Jackpot is the wire form of the prize pool.
type Jackpot struct {
	Value int64 `json:"value"`
}

// NewDuel challenges another player.
type NewDuel struct {
	ChallengerID int64 `json:"challenger_id"`
	OpponentID   int64 `json:"opponent_id"`
	Stake        int64 `json:"stake"`
}

// DuelResponse accepts or rejects a pending duel.
type DuelResponse struct {
	AccountID int64 `json:"account_id"`
	Accept    bool  `json:"accept"`
}

// DuelRoll submits the caller's roll.
type DuelRoll struct {
	AccountID int64 `json:"account_id"`
}

// Duel is the wire form of a duel.
type Duel struct {
	Token          string    `json:"token"`
	ChallengerID   int64     `json:"challenger_id"`
	OpponentID     int64     `json:"opponent_id"`
	Stake          int64     `json:"stake"`
	Fee            int64     `json:"fee"`
	Pot            int64     `json:"pot"`
	Status         string    `json:"status"`
	ChallengerRoll *int64    `json:"challenger_roll,omitempty"`
	OpponentRoll   *int64    `json:"opponent_roll,omitempty"`
	WinnerID       *int64    `json:"winner_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// RollResult is the wire form of one roll submission.
type RollResult struct {
	Duel        *Duel  `json:"duel"`
	Roll        int64  `json:"roll"`
	Resolved    bool   `json:"resolved"`
	Tie         bool   `json:"tie"`
	WinnerID    *int64 `json:"winner_id,omitempty"`
	Pot         *int64 `json:"pot,omitempty"`
	LoserBusted bool   `json:"loser_busted,omitempty"`
}

// NewPurchase asks for a quote on one shop item.
type NewPurchase struct {
	BuyerID  int64  `json:"buyer_id"`
	Category string `json:"category"`
	Name     string `json:"name"`
}

// NewBuyback asks for a government buyback quote on an owned asset.
type NewBuyback struct {
	SellerID int64  `json:"seller_id"`
	AssetID  string `json:"asset_id"`
}

// NewAssetTrade proposes handing an owned asset to another player.
type NewAssetTrade struct {
	FromID     int64  `json:"from_id"`
	ToUsername string `json:"to_username"`
	AssetID    string `json:"asset_id"`
}

// Asset is the wire form of an owned item.
type Asset struct {
	ID        string    `json:"id"`
	OwnerID   int64     `json:"owner_id"`
	Category  string    `json:"category"`
	Brand     string    `json:"brand,omitempty"`
	Model     string    `json:"model"`
	Price     int64     `json:"price"`
	Speed     *int64    `json:"speed,omitempty"`
	Camera    *int64    `json:"camera,omitempty"`
	Rooms     *int64    `json:"rooms,omitempty"`
	Area      *int64    `json:"area,omitempty"`
	Comfort   *int64    `json:"comfort,omitempty"`
	Style     *int64    `json:"style,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// CatalogItem is one purchasable shop entry.
type CatalogItem struct {
	Category string `json:"category"`
	Brand    string `json:"brand,omitempty"`
	Model    string `json:"model"`
	Price    *int64 `json:"price,omitempty"`
	Speed    *int64 `json:"speed,omitempty"`
	Camera   *int64 `json:"camera,omitempty"`
	Rooms    *int64 `json:"rooms,omitempty"`
	Area     *int64 `json:"area,omitempty"`
	Comfort  *int64 `json:"comfort,omitempty"`
	Style    *int64 `json:"style,omitempty"`
}

// NewCryptoBuy proposes buying amount_usd worth of an instrument.
type NewCryptoBuy struct {
	BuyerID   int64  `json:"buyer_id"`
	Symbol    string `json:"symbol"`
	AmountUSD int64  `json:"amount_usd"`
}

// NewCryptoSell proposes selling a quantity of an instrument. Quantity is a
// decimal string.
type NewCryptoSell struct {
	SellerID int64  `json:"seller_id"`
	Symbol   string `json:"symbol"`
	Quantity string `json:"quantity"`
}

// Instrument is the wire form of a tradeable cryptocurrency.
type Instrument struct {
	Symbol    string    `json:"symbol"`
	Name      string    `json:"name"`
	Price     string    `json:"price"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Position is the wire form of a crypto holding.
type Position struct {
	Symbol  string `json:"symbol"`
	Amount  string `json:"amount"`
	AvgCost string `json:"avg_cost"`
}

// CryptoTrade is the wire form of an executed crypto trade.
type CryptoTrade struct {
	Symbol   string `json:"symbol"`
	Quantity string `json:"quantity"`
	Price    string `json:"price"`
	Notional int64  `json:"notional"`
	Fee      int64  `json:"fee"`
	Profit   *int64 `json:"profit,omitempty"`
	Closed   bool   `json:"closed,omitempty"`
}

// LedgerEntry is the wire form of one ledger line.
type LedgerEntry struct {
	EntryId       *string   `json:"entry_id,omitempty"`
	TransactionId string    `json:"transaction_id"`
	AccountId     int64     `json:"account_id"`
	Debit         *int64    `json:"debit,omitempty"`
	Credit        *int64    `json:"credit,omitempty"`
	Description   string    `json:"description"`
	Timestamp     time.Time `json:"timestamp"`
}

// ListLedgerEntriesParams carries the query parameters of the ledger listing.
type ListLedgerEntriesParams struct {
	Limit *int32 `json:"limit,omitempty"`
}

// LeaderboardParams carries the query parameters of the leaderboard.
type LeaderboardParams struct {
	Limit *int32 `json:"limit,omitempty"`
}
