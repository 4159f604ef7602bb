package royalty

import (
	"marketplace-engine/internal/assets"
	"marketplace-engine/internal/payment"
)

// RoyaltySource is the slice of the asset registry the resolver consults
type RoyaltySource interface {
	FeeConfig(collectionID string) (assets.RoyaltyInfo, bool)
	DefaultRoyalty(collectionID string) (assets.RoyaltyInfo, bool)
	UnitRoyalty(collectionID, unit string) (assets.RoyaltyInfo, bool)
}

// Resolver looks up the royalty owed on a sale. Collections may declare
// royalties under any subset of three conventions; the resolver tries them
// in a fixed order and degrades to "no royalty" rather than failing the sale.
type Resolver struct {
	source     RoyaltySource
	maxRateBps uint64
}

// NewResolver creates a Resolver with the given rate cap in basis points
func NewResolver(source RoyaltySource, maxRateBps uint64) *Resolver {
	return &Resolver{source: source, maxRateBps: maxRateBps}
}

// Resolve returns the royalty recipient and amount for a sale at salePrice.
// Priority: fee configuration object, then collection default, then the
// per-unit declaration. A strategy reporting a zero rate or a rate above
// the cap is treated as absent and the next is tried. No strategy applying
// yields ("", 0).
func (r *Resolver) Resolve(collectionID, unit string, salePrice uint64) (string, uint64) {
	strategies := []func() (assets.RoyaltyInfo, bool){
		func() (assets.RoyaltyInfo, bool) { return r.source.FeeConfig(collectionID) },
		func() (assets.RoyaltyInfo, bool) { return r.source.DefaultRoyalty(collectionID) },
		func() (assets.RoyaltyInfo, bool) { return r.source.UnitRoyalty(collectionID, unit) },
	}

	for _, strategy := range strategies {
		info, ok := strategy()
		if !ok || info.RateBps == 0 || info.RateBps > r.maxRateBps || info.Recipient == "" {
			continue
		}
		return info.Recipient, payment.BpsOf(salePrice, info.RateBps)
	}
	return "", 0
}
