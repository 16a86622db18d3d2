package storage

import (
	"context"

	"github.com/alan12292009/megaroll-core/pkg/models"
)

// AssetStore defines the interface for marketplace settlement. Mutations that
// touch a balance and an asset record apply as one indivisible unit.
type AssetStore interface {
	// GetAsset retrieves an asset by its ID.
	GetAsset(ctx context.Context, assetID string) (*models.Asset, error)

	// ListAssetsByOwner retrieves all assets held by an account.
	ListAssetsByOwner(ctx context.Context, ownerID int64) ([]models.Asset, error)

	// PurchaseAsset debits the buyer by the quoted price and creates the
	// asset record owned by the buyer. The balance is re-validated at
	// commit time.
	PurchaseAsset(ctx context.Context, asset *models.Asset) (*models.Asset, error)

	// BuybackAsset removes the asset, credits the seller the payout and
	// the collector the commission. The asset must still belong to the
	// seller at commit time, otherwise ErrNotOwned.
	BuybackAsset(ctx context.Context, sellerID int64, assetID string, payout, commission int64) error

	// TransferAsset reassigns the asset's owner with no monetary
	// component. Fails with ErrNotOwned if fromID no longer owns it.
	TransferAsset(ctx context.Context, assetID string, fromID, toID int64) error
}
