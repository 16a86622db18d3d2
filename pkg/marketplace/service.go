// Package marketplace implements the asset shop: quoted purchases, the
// government buyback program and peer-to-peer handovers. Quotes are pinned
// through the confirmation flow so the executed price is always the price the
// buyer saw.
package marketplace

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/alan12292009/megaroll-core/pkg/confirmations"
	"github.com/alan12292009/megaroll-core/pkg/economy"
	"github.com/alan12292009/megaroll-core/pkg/models"
	"github.com/alan12292009/megaroll-core/pkg/storage"
)

// Backend is the storage surface the marketplace needs.
type Backend interface {
	storage.AccountStore
	storage.AssetStore
}

// Service proposes and executes marketplace actions.
type Service struct {
	Store   Backend
	Broker  *confirmations.Broker
	RandInt func(n int64) int64
}

// NewService creates a new Service drawing quote prices from the default
// random source.
func NewService(store Backend, broker *confirmations.Broker) *Service {
	return &Service{Store: store, Broker: broker, RandInt: rand.Int64N}
}

// ProposePurchase quotes the item and pins the offer under a confirmation
// token. The buyer's balance is checked against the quoted price here and
// re-validated atomically at execution.
func (s *Service) ProposePurchase(ctx context.Context, buyerID int64, category models.AssetCategory, name string) (*models.PendingAction, error) {
	buyer, err := s.Store.GetAccount(ctx, buyerID)
	if err != nil {
		return nil, err
	}
	if buyer.Banned {
		return nil, fmt.Errorf("account %d: %w", buyerID, storage.ErrAccountBanned)
	}

	quote, err := s.quote(category, name)
	if err != nil {
		return nil, err
	}
	if buyer.Balance < quote.Price {
		return nil, storage.ErrInsufficientFunds
	}

	return s.Broker.Propose(ctx, &models.PendingAction{
		ActorID: buyerID,
		Kind:    models.ActionBuyAsset,
		BuyAsset: &models.BuyAssetPayload{
			BuyerID:  buyerID,
			Category: quote.Category,
			Brand:    quote.Brand,
			Model:    quote.Model,
			Price:    quote.Price,
			Speed:    quote.Speed,
			Camera:   quote.Camera,
			Rooms:    quote.Rooms,
			Area:     quote.Area,
			Comfort:  quote.Comfort,
			Style:    quote.Style,
		},
	})
}

// ExecutePurchase commits a confirmed purchase: the buyer pays exactly the
// pinned price and the asset record is created in one transaction.
func (s *Service) ExecutePurchase(ctx context.Context, payload *models.BuyAssetPayload) (*models.Asset, error) {
	return s.Store.PurchaseAsset(ctx, &models.Asset{
		ID:       uuid.New().String(),
		OwnerID:  payload.BuyerID,
		Category: payload.Category,
		Brand:    payload.Brand,
		Model:    payload.Model,
		Price:    payload.Price,
		Speed:    payload.Speed,
		Camera:   payload.Camera,
		Rooms:    payload.Rooms,
		Area:     payload.Area,
		Comfort:  payload.Comfort,
		Style:    payload.Style,
	})
}

// ProposeBuyback quotes the government buyback of an owned asset: the seller
// gets the payout fraction of the original price, the rest is commission.
func (s *Service) ProposeBuyback(ctx context.Context, sellerID int64, assetID string) (*models.PendingAction, error) {
	asset, err := s.Store.GetAsset(ctx, assetID)
	if err != nil {
		return nil, err
	}
	if asset.OwnerID != sellerID {
		return nil, fmt.Errorf("asset %s: %w", assetID, storage.ErrNotOwned)
	}

	payout, commission := economy.GovernmentBuyback(asset.Price)
	return s.Broker.Propose(ctx, &models.PendingAction{
		ActorID: sellerID,
		Kind:    models.ActionSellAsset,
		SellAsset: &models.SellAssetPayload{
			SellerID:   sellerID,
			AssetID:    assetID,
			Payout:     payout,
			Commission: commission,
		},
	})
}

// ExecuteBuyback commits a confirmed buyback. Ownership is re-validated at
// commit time, so an asset traded away between quote and confirm fails with
// ErrNotOwned.
func (s *Service) ExecuteBuyback(ctx context.Context, payload *models.SellAssetPayload) error {
	return s.Store.BuybackAsset(ctx, payload.SellerID, payload.AssetID, payload.Payout, payload.Commission)
}

// ProposeTrade pins a free peer-to-peer handover of an owned asset.
func (s *Service) ProposeTrade(ctx context.Context, fromID int64, toUsername string, assetID string) (*models.PendingAction, error) {
	asset, err := s.Store.GetAsset(ctx, assetID)
	if err != nil {
		return nil, err
	}
	if asset.OwnerID != fromID {
		return nil, fmt.Errorf("asset %s: %w", assetID, storage.ErrNotOwned)
	}

	recipient, err := s.Store.GetAccountByUsername(ctx, toUsername)
	if err != nil {
		return nil, err
	}
	if recipient.ID == fromID {
		return nil, fmt.Errorf("cannot trade with yourself: %w", storage.ErrInvalidAmount)
	}
	if recipient.Banned {
		return nil, fmt.Errorf("account %d: %w", recipient.ID, storage.ErrAccountBanned)
	}

	return s.Broker.Propose(ctx, &models.PendingAction{
		ActorID: fromID,
		Kind:    models.ActionTradeAsset,
		TradeAsset: &models.TradeAssetPayload{
			FromID:  fromID,
			ToID:    recipient.ID,
			AssetID: assetID,
		},
	})
}

// ExecuteTrade commits a confirmed handover.
func (s *Service) ExecuteTrade(ctx context.Context, payload *models.TradeAssetPayload) error {
	return s.Store.TransferAsset(ctx, payload.AssetID, payload.FromID, payload.ToID)
}

// ListOwned retrieves everything an account holds.
func (s *Service) ListOwned(ctx context.Context, ownerID int64) ([]models.Asset, error) {
	return s.Store.ListAssetsByOwner(ctx, ownerID)
}
