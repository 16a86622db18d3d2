package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account represents a player's (or the collector's) wallet and casino record.
// It includes dynamodbav tags for marshalling.
type Account struct {
	ID           int64     `json:"id" dynamodbav:"id"`
	Username     string    `json:"username" dynamodbav:"username"`
	Balance      int64     `json:"balance" dynamodbav:"balance"`
	Banned       bool      `json:"banned" dynamodbav:"banned"`
	Version      int64     `json:"version" dynamodbav:"version"`
	TotalGames   int64     `json:"total_games" dynamodbav:"total_games"`
	TotalWins    int64     `json:"total_wins" dynamodbav:"total_wins"`
	TotalLosses  int64     `json:"total_losses" dynamodbav:"total_losses"`
	BiggestWin   int64     `json:"biggest_win" dynamodbav:"biggest_win"`
	BiggestLoss  int64     `json:"biggest_loss" dynamodbav:"biggest_loss"`
	DuelWins     int64     `json:"duel_wins" dynamodbav:"duel_wins"`
	DuelLosses   int64     `json:"duel_losses" dynamodbav:"duel_losses"`
	CreatedAt    time.Time `json:"created_at" dynamodbav:"created_at"`
	LastActiveAt time.Time `json:"last_active_at" dynamodbav:"last_active_at"`
}

// ActionKind discriminates the payload variant of a pending action.
type ActionKind string

const (
	ActionTransfer   ActionKind = "transfer"
	ActionBuyAsset   ActionKind = "buy-asset"
	ActionSellAsset  ActionKind = "sell-asset"
	ActionTradeAsset ActionKind = "trade-asset"
	ActionBuyCrypto  ActionKind = "buy-crypto"
	ActionSellCrypto ActionKind = "sell-crypto"
)

// TransferPayload pins the terms of a money transfer at proposal time.
type TransferPayload struct {
	FromID int64 `dynamodbav:"from_id"`
	ToID   int64 `dynamodbav:"to_id"`
	Amount int64 `dynamodbav:"amount"`
	Fee    int64 `dynamodbav:"fee"`
}

// BuyAssetPayload pins a shop quote: the asset is created on confirmation
// with exactly these attributes and this price.
type BuyAssetPayload struct {
	BuyerID  int64         `dynamodbav:"buyer_id"`
	Category AssetCategory `dynamodbav:"category"`
	Brand    string        `dynamodbav:"brand"`
	Model    string        `dynamodbav:"model"`
	Price    int64         `dynamodbav:"price"`
	Speed    int64         `dynamodbav:"speed,omitempty"`
	Camera   int64         `dynamodbav:"camera,omitempty"`
	Rooms    int64         `dynamodbav:"rooms,omitempty"`
	Area     int64         `dynamodbav:"area,omitempty"`
	Comfort  int64         `dynamodbav:"comfort,omitempty"`
	Style    int64         `dynamodbav:"style,omitempty"`
}

// SellAssetPayload pins a government buyback quote.
type SellAssetPayload struct {
	SellerID   int64  `dynamodbav:"seller_id"`
	AssetID    string `dynamodbav:"asset_id"`
	Payout     int64  `dynamodbav:"payout"`
	Commission int64  `dynamodbav:"commission"`
}

// TradeAssetPayload pins a peer-to-peer asset handover.
type TradeAssetPayload struct {
	FromID  int64  `dynamodbav:"from_id"`
	ToID    int64  `dynamodbav:"to_id"`
	AssetID string `dynamodbav:"asset_id"`
}

// BuyCryptoPayload pins a crypto purchase at the quoted instrument price.
// Price is a decimal string so the payload round-trips through dynamodbav.
type BuyCryptoPayload struct {
	BuyerID   int64  `dynamodbav:"buyer_id"`
	Symbol    string `dynamodbav:"symbol"`
	AmountUSD int64  `dynamodbav:"amount_usd"`
	Fee       int64  `dynamodbav:"fee"`
	Price     string `dynamodbav:"price"`
}

// SellCryptoPayload pins a crypto sale at the quoted instrument price.
// Quantity and Price are decimal strings.
type SellCryptoPayload struct {
	SellerID int64  `dynamodbav:"seller_id"`
	Symbol   string `dynamodbav:"symbol"`
	Quantity string `dynamodbav:"quantity"`
	Price    string `dynamodbav:"price"`
}

// PendingAction is a single-use confirmation token binding an actor to the
// fully-resolved parameters of an economic action. Exactly one payload field
// is non-nil, selected by Kind.
type PendingAction struct {
	Token      string             `dynamodbav:"token"`
	ActorID    int64              `dynamodbav:"actor_id"`
	Kind       ActionKind         `dynamodbav:"kind"`
	Transfer   *TransferPayload   `dynamodbav:"transfer,omitempty"`
	BuyAsset   *BuyAssetPayload   `dynamodbav:"buy_asset,omitempty"`
	SellAsset  *SellAssetPayload  `dynamodbav:"sell_asset,omitempty"`
	TradeAsset *TradeAssetPayload `dynamodbav:"trade_asset,omitempty"`
	BuyCrypto  *BuyCryptoPayload  `dynamodbav:"buy_crypto,omitempty"`
	SellCrypto *SellCryptoPayload `dynamodbav:"sell_crypto,omitempty"`
	CreatedAt  time.Time          `dynamodbav:"created_at"`
	ExpiresAt  time.Time          `dynamodbav:"expires_at"`
	TTL        int64              `dynamodbav:"ttl,omitempty"`
}

// DuelStatus defines the possible states of a duel.
type DuelStatus string

const (
	DuelPending  DuelStatus = "PENDING"
	DuelActive   DuelStatus = "ACTIVE"
	DuelResolved DuelStatus = "RESOLVED"
	DuelRejected DuelStatus = "REJECTED"
	DuelExpired  DuelStatus = "EXPIRED"
)

// Duel is the two-party escrow state machine. Both stakes are captured when
// the status moves to ACTIVE; the pot is a liability of the duel until the
// status leaves ACTIVE.
type Duel struct {
	Token          string     `dynamodbav:"token"`
	ChallengerID   int64      `dynamodbav:"challenger_id"`
	OpponentID     int64      `dynamodbav:"opponent_id"`
	Stake          int64      `dynamodbav:"stake"`
	Fee            int64      `dynamodbav:"fee"`
	Pot            int64      `dynamodbav:"pot"`
	Status         DuelStatus `dynamodbav:"status"`
	ChallengerRoll *int64     `dynamodbav:"challenger_roll,omitempty"`
	OpponentRoll   *int64     `dynamodbav:"opponent_roll,omitempty"`
	WinnerID       int64      `dynamodbav:"winner_id,omitempty"`
	CreatedAt      time.Time  `dynamodbav:"created_at"`
	UpdatedAt      time.Time  `dynamodbav:"updated_at"`
	TTL            int64      `dynamodbav:"ttl,omitempty"`
}

// RollOf returns a pointer to the stored roll of the given participant, or
// nil if the participant is not part of the duel.
func (d *Duel) RollOf(accountID int64) *int64 {
	switch accountID {
	case d.ChallengerID:
		return d.ChallengerRoll
	case d.OpponentID:
		return d.OpponentRoll
	}
	return nil
}

// IsParticipant reports whether the account takes part in the duel.
func (d *Duel) IsParticipant(accountID int64) bool {
	return accountID == d.ChallengerID || accountID == d.OpponentID
}

// AssetCategory defines the marketplace asset categories.
type AssetCategory string

const (
	AssetCar       AssetCategory = "car"
	AssetPhone     AssetCategory = "phone"
	AssetHouse     AssetCategory = "house"
	AssetAccessory AssetCategory = "accessory"
)

// ShopOwnerID is the sentinel owner of assets that sit in the shop.
const ShopOwnerID int64 = 0

// Asset is a purchasable item. Attributes are fixed at creation; only the
// owner changes afterwards.
type Asset struct {
	ID        string        `dynamodbav:"id"`
	OwnerID   int64         `dynamodbav:"owner_id"`
	Category  AssetCategory `dynamodbav:"category"`
	Brand     string        `dynamodbav:"brand"`
	Model     string        `dynamodbav:"model"`
	Price     int64         `dynamodbav:"price"`
	Speed     int64         `dynamodbav:"speed,omitempty"`
	Camera    int64         `dynamodbav:"camera,omitempty"`
	Rooms     int64         `dynamodbav:"rooms,omitempty"`
	Area      int64         `dynamodbav:"area,omitempty"`
	Comfort   int64         `dynamodbav:"comfort,omitempty"`
	Style     int64         `dynamodbav:"style,omitempty"`
	Version   int64         `dynamodbav:"version"`
	CreatedAt time.Time     `dynamodbav:"created_at"`
}

// Instrument is a tradeable cryptocurrency with its current quote price.
type Instrument struct {
	Symbol    string          `dynamodbav:"symbol"`
	Name      string          `dynamodbav:"name"`
	Price     decimal.Decimal `dynamodbav:"price"`
	UpdatedAt time.Time       `dynamodbav:"updated_at"`
}

// CryptoPosition is an account's holding in one instrument. AvgCost is the
// volume-weighted average purchase price, recomputed on every buy.
type CryptoPosition struct {
	AccountID int64           `dynamodbav:"account_id"`
	Symbol    string          `dynamodbav:"symbol"`
	Amount    decimal.Decimal `dynamodbav:"amount"`
	AvgCost   decimal.Decimal `dynamodbav:"avg_cost"`
	Version   int64           `dynamodbav:"version"`
}

// Game identifies a casino game for settlement and ledger purposes.
type Game string

const (
	GameDice     Game = "dice"
	GameRoulette Game = "roulette"
	GameDuel     Game = "duel"
)

// BetOutcome tags the observable result of a bet. OutcomeBusted is a loss
// that drained the balance to exactly zero; the presentation layer renders
// it differently, so it is a distinct state here.
type BetOutcome string

const (
	OutcomeWin     BetOutcome = "WIN"
	OutcomeLoss    BetOutcome = "LOSS"
	OutcomeBusted  BetOutcome = "BUSTED"
	OutcomePush    BetOutcome = "PUSH"
	OutcomeJackpot BetOutcome = "JACKPOT"
)

// GameSettlement describes the atomic ledger effect of one resolved bet.
// PlayerDelta is applied to the player's balance, CollectorDelta to the
// collector, and JackpotDelta to the pool. JackpotReset snaps the pool to
// its seed value before the delta is added.
type GameSettlement struct {
	AccountID      int64
	Game           Game
	Bet            int64
	Outcome        BetOutcome
	PlayerDelta    int64
	CollectorDelta int64
	JackpotDelta   int64
	JackpotReset   bool
	Tax            int64
}

// Won reports whether the settlement counts as a win in the account stats.
func (s *GameSettlement) Won() bool {
	return s.Outcome == OutcomeWin || s.Outcome == OutcomeJackpot
}

// LedgerEntry represents a single entry in the double-entry ledger.
type LedgerEntry struct {
	EntryID       string    `dynamodbav:"entry_id"`
	TransactionID string    `dynamodbav:"transaction_id"`
	AccountID     int64     `dynamodbav:"account_id"`
	Debit         int64     `dynamodbav:"debit,omitempty"`
	Credit        int64     `dynamodbav:"credit,omitempty"`
	Description   string    `dynamodbav:"description"`
	Timestamp     time.Time `dynamodbav:"timestamp"`
	GSI1PK        string    `dynamodbav:"gsi1pk"`
}

// Jackpot is the singleton accumulating prize pool.
type Jackpot struct {
	ID      string `dynamodbav:"id"`
	Value   int64  `dynamodbav:"value"`
	Version int64  `dynamodbav:"version"`
}

// JackpotID is the key of the singleton jackpot item.
const JackpotID = "jackpot"
