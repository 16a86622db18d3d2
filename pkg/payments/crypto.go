package payments

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/alan12292009/megaroll-core/pkg/economy"
	"github.com/alan12292009/megaroll-core/pkg/models"
	"github.com/alan12292009/megaroll-core/pkg/storage"
)

// dustThreshold is the position size below which a sell closes the position
// entirely instead of leaving unsellable residue.
var dustThreshold = decimal.New(1, -8)

// CryptoTrade is the observable outcome of one executed crypto trade.
type CryptoTrade struct {
	Symbol   string          `json:"symbol"`
	Quantity decimal.Decimal `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Notional int64           `json:"notional"`
	Fee      int64           `json:"fee"`
	Profit   int64           `json:"profit,omitempty"`
	Closed   bool            `json:"closed,omitempty"`
}

// ProposeCryptoBuy quotes a purchase of amountUSD worth of the instrument at
// its current price and pins the quote under a confirmation token.
func (s *Service) ProposeCryptoBuy(ctx context.Context, buyerID int64, symbol string, amountUSD int64) (*models.PendingAction, error) {
	if amountUSD <= 0 {
		return nil, fmt.Errorf("buy amount %d: %w", amountUSD, storage.ErrInvalidAmount)
	}

	buyer, err := s.Store.GetAccount(ctx, buyerID)
	if err != nil {
		return nil, err
	}
	if buyer.Banned {
		return nil, fmt.Errorf("account %d: %w", buyerID, storage.ErrAccountBanned)
	}
	if buyer.Balance < amountUSD {
		return nil, storage.ErrInsufficientFunds
	}

	instrument, err := s.Store.GetInstrument(ctx, symbol)
	if err != nil {
		return nil, err
	}

	fee, _ := economy.CryptoFee(amountUSD)
	return s.Broker.Propose(ctx, &models.PendingAction{
		ActorID: buyerID,
		Kind:    models.ActionBuyCrypto,
		BuyCrypto: &models.BuyCryptoPayload{
			BuyerID:   buyerID,
			Symbol:    instrument.Symbol,
			AmountUSD: amountUSD,
			Fee:       fee,
			Price:     instrument.Price.String(),
		},
	})
}

// ExecuteCryptoBuy commits a confirmed purchase at the pinned price: the
// buyer pays the full notional, the fee goes to the collector and the net
// notional converts to quantity. The position's average cost is recomputed
// volume-weighted across the old holding and the new lot.
func (s *Service) ExecuteCryptoBuy(ctx context.Context, payload *models.BuyCryptoPayload) (*CryptoTrade, error) {
	price, err := decimal.NewFromString(payload.Price)
	if err != nil {
		return nil, fmt.Errorf("malformed pinned price %q: %w", payload.Price, err)
	}
	if price.IsZero() {
		return nil, fmt.Errorf("instrument %s has no price: %w", payload.Symbol, storage.ErrInvalidAmount)
	}

	net := payload.AmountUSD - payload.Fee
	quantity := decimal.NewFromInt(net).Div(price)

	position := &models.CryptoPosition{
		AccountID: payload.BuyerID,
		Symbol:    payload.Symbol,
		Amount:    quantity,
		AvgCost:   price,
	}

	var prevVersion int64
	existing, err := s.Store.GetPosition(ctx, payload.BuyerID, payload.Symbol)
	switch {
	case err == nil:
		prevVersion = existing.Version
		total := existing.Amount.Add(quantity)
		weighted := existing.Amount.Mul(existing.AvgCost).Add(quantity.Mul(price))
		position.Amount = total
		position.AvgCost = weighted.Div(total)
	case errors.Is(err, storage.ErrNotFound):
	default:
		return nil, err
	}

	if err := s.Store.SettleCryptoBuy(ctx, payload.BuyerID, payload.AmountUSD, payload.Fee, position, prevVersion); err != nil {
		return nil, err
	}

	return &CryptoTrade{
		Symbol:   payload.Symbol,
		Quantity: quantity,
		Price:    price,
		Notional: payload.AmountUSD,
		Fee:      payload.Fee,
	}, nil
}

// ProposeCryptoSell quotes a sale of the given quantity at the instrument's
// current price and pins the quote under a confirmation token.
func (s *Service) ProposeCryptoSell(ctx context.Context, sellerID int64, symbol string, quantity decimal.Decimal) (*models.PendingAction, error) {
	if !quantity.IsPositive() {
		return nil, fmt.Errorf("sell quantity %s: %w", quantity, storage.ErrInvalidAmount)
	}

	seller, err := s.Store.GetAccount(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	if seller.Banned {
		return nil, fmt.Errorf("account %d: %w", sellerID, storage.ErrAccountBanned)
	}

	position, err := s.Store.GetPosition(ctx, sellerID, symbol)
	if err != nil {
		return nil, err
	}
	if position.Amount.LessThan(quantity) {
		return nil, fmt.Errorf("position %s holds %s: %w", symbol, position.Amount, storage.ErrInsufficientFunds)
	}

	instrument, err := s.Store.GetInstrument(ctx, symbol)
	if err != nil {
		return nil, err
	}

	return s.Broker.Propose(ctx, &models.PendingAction{
		ActorID: sellerID,
		Kind:    models.ActionSellCrypto,
		SellCrypto: &models.SellCryptoPayload{
			SellerID: sellerID,
			Symbol:   instrument.Symbol,
			Quantity: quantity.String(),
			Price:    instrument.Price.String(),
		},
	})
}

// ExecuteCryptoSell commits a confirmed sale at the pinned price. Proceeds
// floor to whole units, the fee comes off the proceeds and a remainder below
// the dust threshold closes the position. Profit is realized against the
// volume-weighted average cost.
func (s *Service) ExecuteCryptoSell(ctx context.Context, payload *models.SellCryptoPayload) (*CryptoTrade, error) {
	price, err := decimal.NewFromString(payload.Price)
	if err != nil {
		return nil, fmt.Errorf("malformed pinned price %q: %w", payload.Price, err)
	}
	quantity, err := decimal.NewFromString(payload.Quantity)
	if err != nil {
		return nil, fmt.Errorf("malformed pinned quantity %q: %w", payload.Quantity, err)
	}

	position, err := s.Store.GetPosition(ctx, payload.SellerID, payload.Symbol)
	if err != nil {
		return nil, err
	}
	if position.Amount.LessThan(quantity) {
		return nil, fmt.Errorf("position %s holds %s: %w", payload.Symbol, position.Amount, storage.ErrInsufficientFunds)
	}

	proceeds := quantity.Mul(price).Floor().IntPart()
	fee, net := economy.CryptoFee(proceeds)
	profit := quantity.Mul(price.Sub(position.AvgCost)).Floor().IntPart()

	remaining := position.Amount.Sub(quantity)
	closed := remaining.LessThan(dustThreshold)

	updated := &models.CryptoPosition{
		AccountID: payload.SellerID,
		Symbol:    payload.Symbol,
		Amount:    remaining,
		AvgCost:   position.AvgCost,
	}

	if err := s.Store.SettleCryptoSell(ctx, payload.SellerID, net, fee, updated, position.Version, closed); err != nil {
		return nil, err
	}

	return &CryptoTrade{
		Symbol:   payload.Symbol,
		Quantity: quantity,
		Price:    price,
		Notional: proceeds,
		Fee:      fee,
		Profit:   profit,
		Closed:   closed,
	}, nil
}
