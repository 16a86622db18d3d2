// Package mapping converts between domain models and API wire types.
package mapping

import (
	"fmt"

	"github.com/alan12292009/megaroll-core/pkg/api"
	"github.com/alan12292009/megaroll-core/pkg/casino"
	"github.com/alan12292009/megaroll-core/pkg/economy"
	"github.com/alan12292009/megaroll-core/pkg/marketplace"
	"github.com/alan12292009/megaroll-core/pkg/models"
	"github.com/alan12292009/megaroll-core/pkg/payments"
)

// ToApiAccount converts a domain Account model to an API Account model.
func ToApiAccount(account *models.Account) *api.Account {
	return &api.Account{
		ID:           account.ID,
		Username:     account.Username,
		Balance:      account.Balance,
		Banned:       account.Banned,
		TotalGames:   account.TotalGames,
		TotalWins:    account.TotalWins,
		TotalLosses:  account.TotalLosses,
		BiggestWin:   account.BiggestWin,
		BiggestLoss:  account.BiggestLoss,
		DuelWins:     account.DuelWins,
		DuelLosses:   account.DuelLosses,
		CreatedAt:    account.CreatedAt,
		LastActiveAt: account.LastActiveAt,
	}
}

// ToDomainNewAccount converts an API NewAccount to a domain Account seeded
// with the starting balance.
func ToDomainNewAccount(newAccount *api.NewAccount) *models.Account {
	return &models.Account{
		ID:       newAccount.ID,
		Username: newAccount.Username,
		Balance:  economy.StartingBalance,
	}
}

// ToApiPendingAction converts a domain PendingAction to its API summary. The
// summary repeats the terms the actor is asked to confirm.
func ToApiPendingAction(action *models.PendingAction) *api.PendingAction {
	out := &api.PendingAction{
		Token:     action.Token,
		Kind:      string(action.Kind),
		ExpiresAt: action.ExpiresAt,
	}

	switch {
	case action.Transfer != nil:
		out.Amount = &action.Transfer.Amount
		out.Fee = &action.Transfer.Fee
	case action.BuyAsset != nil:
		out.Amount = &action.BuyAsset.Price
		detail := fmt.Sprintf("%s %s", action.BuyAsset.Brand, action.BuyAsset.Model)
		out.Detail = &detail
	case action.SellAsset != nil:
		out.Amount = &action.SellAsset.Payout
		out.Fee = &action.SellAsset.Commission
	case action.TradeAsset != nil:
		detail := action.TradeAsset.AssetID
		out.Detail = &detail
	case action.BuyCrypto != nil:
		out.Amount = &action.BuyCrypto.AmountUSD
		out.Fee = &action.BuyCrypto.Fee
		out.Price = &action.BuyCrypto.Price
	case action.SellCrypto != nil:
		out.Price = &action.SellCrypto.Price
		detail := action.SellCrypto.Quantity
		out.Detail = &detail
	}

	return out
}

// ToApiBetResult converts an engine bet result to the API model.
func ToApiBetResult(result *casino.BetResult) *api.BetResult {
	out := &api.BetResult{
		Game:        string(result.Game),
		Bet:         result.Bet,
		Outcome:     string(result.Outcome),
		Color:       result.Color,
		PayoutDelta: result.PayoutDelta,
		Tax:         result.Tax,
		Jackpot:     result.Jackpot,
		NewBalance:  result.NewBalance,
	}
	if result.Game == models.GameDice {
		out.PlayerRoll = &result.PlayerRoll
		out.HouseRoll = &result.HouseRoll
	}
	if result.Game == models.GameRoulette {
		out.Number = &result.Number
	}
	return out
}

// ToApiDuel converts a domain Duel model to an API Duel model.
func ToApiDuel(duel *models.Duel) *api.Duel {
	out := &api.Duel{
		Token:          duel.Token,
		ChallengerID:   duel.ChallengerID,
		OpponentID:     duel.OpponentID,
		Stake:          duel.Stake,
		Fee:            duel.Fee,
		Pot:            duel.Pot,
		Status:         string(duel.Status),
		ChallengerRoll: duel.ChallengerRoll,
		OpponentRoll:   duel.OpponentRoll,
		CreatedAt:      duel.CreatedAt,
	}
	if duel.WinnerID != 0 {
		out.WinnerID = &duel.WinnerID
	}
	return out
}

// ToApiRollResult converts a coordinator roll result to the API model.
func ToApiRollResult(result *casino.RollResult) *api.RollResult {
	out := &api.RollResult{
		Duel:        ToApiDuel(result.Duel),
		Roll:        result.Roll,
		Resolved:    result.Resolved,
		Tie:         result.Tie,
		LoserBusted: result.LoserBusted,
	}
	if result.WinnerID != 0 {
		out.WinnerID = &result.WinnerID
		out.Pot = &result.Pot
	}
	return out
}

// ToApiAsset converts a domain Asset model to an API Asset model.
func ToApiAsset(asset *models.Asset) *api.Asset {
	out := &api.Asset{
		ID:        asset.ID,
		OwnerID:   asset.OwnerID,
		Category:  string(asset.Category),
		Brand:     asset.Brand,
		Model:     asset.Model,
		Price:     asset.Price,
		CreatedAt: asset.CreatedAt,
	}
	setIfPositive(&out.Speed, asset.Speed)
	setIfPositive(&out.Camera, asset.Camera)
	setIfPositive(&out.Rooms, asset.Rooms)
	setIfPositive(&out.Area, asset.Area)
	setIfPositive(&out.Comfort, asset.Comfort)
	setIfPositive(&out.Style, asset.Style)
	return out
}

// ToApiCatalogItem converts a shop quote to an API CatalogItem.
func ToApiCatalogItem(quote *marketplace.Quote) *api.CatalogItem {
	out := &api.CatalogItem{
		Category: string(quote.Category),
		Brand:    quote.Brand,
		Model:    quote.Model,
	}
	setIfPositive(&out.Price, quote.Price)
	setIfPositive(&out.Speed, quote.Speed)
	setIfPositive(&out.Camera, quote.Camera)
	setIfPositive(&out.Rooms, quote.Rooms)
	setIfPositive(&out.Area, quote.Area)
	setIfPositive(&out.Comfort, quote.Comfort)
	setIfPositive(&out.Style, quote.Style)
	return out
}

// ToApiInstrument converts a domain Instrument model to an API model.
func ToApiInstrument(instrument *models.Instrument) *api.Instrument {
	return &api.Instrument{
		Symbol:    instrument.Symbol,
		Name:      instrument.Name,
		Price:     instrument.Price.String(),
		UpdatedAt: instrument.UpdatedAt,
	}
}

// ToApiPosition converts a domain CryptoPosition to an API model.
func ToApiPosition(position *models.CryptoPosition) *api.Position {
	return &api.Position{
		Symbol:  position.Symbol,
		Amount:  position.Amount.String(),
		AvgCost: position.AvgCost.String(),
	}
}

// ToApiCryptoTrade converts an executed trade to the API model.
func ToApiCryptoTrade(trade *payments.CryptoTrade) *api.CryptoTrade {
	out := &api.CryptoTrade{
		Symbol:   trade.Symbol,
		Quantity: trade.Quantity.String(),
		Price:    trade.Price.String(),
		Notional: trade.Notional,
		Fee:      trade.Fee,
		Closed:   trade.Closed,
	}
	if trade.Profit != 0 {
		out.Profit = &trade.Profit
	}
	return out
}

// ToApiLedgerEntry converts a domain LedgerEntry model to an API model.
func ToApiLedgerEntry(entry *models.LedgerEntry) *api.LedgerEntry {
	return &api.LedgerEntry{
		TransactionId: entry.TransactionID,
		EntryId:       &entry.EntryID,
		AccountId:     entry.AccountID,
		Debit:         &entry.Debit,
		Credit:        &entry.Credit,
		Description:   entry.Description,
		Timestamp:     entry.Timestamp,
	}
}

func setIfPositive(dst **int64, value int64) {
	if value > 0 {
		v := value
		*dst = &v
	}
}
