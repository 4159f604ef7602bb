package repository

import (
	"fmt"
	"sync"

	"marketplace-engine/internal/marketerrors"
	model "marketplace-engine/internal/models"
)

type refundKey struct {
	auctionID string
	bidder    string
}

// cloneAuction deep-copies the kind-specific state so callers can never
// mutate a stored record without going through UpdateAuction
func cloneAuction(a model.Auction) model.Auction {
	if a.English != nil {
		st := *a.English
		a.English = &st
	}
	if a.Dutch != nil {
		st := *a.Dutch
		a.Dutch = &st
	}
	return a
}

// MemoryAuctionRepo is a concurrency-safe in-memory implementation of
// AuctionStore. The refund ledger is kept per (auction, bidder) so the sum
// of an auction's entries plus its highest bid always equals the escrow
// custodied for that auction alone.
type MemoryAuctionRepo struct {
	mu       sync.RWMutex
	auctions map[string]model.Auction // key: auctionID
	active   map[assetKey]string      // key: (collection, unit) -> active auctionID
	refunds  map[refundKey]uint64
}

// NewMemoryAuctionRepo creates a new in-memory auction repository
func NewMemoryAuctionRepo() *MemoryAuctionRepo {
	return &MemoryAuctionRepo{
		auctions: make(map[string]model.Auction),
		active:   make(map[assetKey]string),
		refunds:  make(map[refundKey]uint64),
	}
}

// CreateAuction stores an Active auction, enforcing at most one active
// auction per (collection, unit)
func (r *MemoryAuctionRepo) CreateAuction(a model.Auction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := assetKey{a.Asset.Collection, a.Asset.Unit}
	if _, taken := r.active[key]; taken {
		return fmt.Errorf("create auction for %s/%s: %w", a.Asset.Collection, a.Asset.Unit, marketerrors.ErrAlreadyListed)
	}
	a.Status = model.AuctionActive
	r.auctions[a.AuctionID] = cloneAuction(a)
	r.active[key] = a.AuctionID
	return nil
}

// GetAuction returns the auction with the given id
func (r *MemoryAuctionRepo) GetAuction(auctionID string) (model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.auctions[auctionID]
	if !ok {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, marketerrors.ErrAuctionNotFound)
	}
	return cloneAuction(a), nil
}

// UpdateAuction replaces the stored record. A transition out of Active
// removes the active index entry in the same critical section.
func (r *MemoryAuctionRepo) UpdateAuction(a model.Auction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev, ok := r.auctions[a.AuctionID]
	if !ok {
		return fmt.Errorf("update auction %s: %w", a.AuctionID, marketerrors.ErrAuctionNotFound)
	}
	key := assetKey{prev.Asset.Collection, prev.Asset.Unit}
	if prev.Status == model.AuctionActive && a.Status != model.AuctionActive {
		delete(r.active, key)
	}
	if prev.Status != model.AuctionActive && a.Status == model.AuctionActive {
		if current, taken := r.active[key]; taken && current != a.AuctionID {
			return fmt.Errorf("update auction %s: %w", a.AuctionID, marketerrors.ErrAlreadyListed)
		}
		r.active[key] = a.AuctionID
	}
	r.auctions[a.AuctionID] = cloneAuction(a)
	return nil
}

// ActiveAuctionByAsset returns the active auction for an asset, if any
func (r *MemoryAuctionRepo) ActiveAuctionByAsset(collection, unit string) (model.Auction, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.active[assetKey{collection, unit}]
	if !ok {
		return model.Auction{}, false
	}
	return cloneAuction(r.auctions[id]), true
}

// CreditRefund adds to a bidder's withdrawable balance for an auction
func (r *MemoryAuctionRepo) CreditRefund(auctionID, bidder string, amount uint64) {
	if amount == 0 {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.refunds[refundKey{auctionID, bidder}] += amount
}

// DebitRefund subtracts exactly amount from a bidder's withdrawable
// balance, clearing the entry when it reaches zero. Used to revert a
// credit staged earlier in the same failed call, so refunds from prior
// displacements survive the rollback.
func (r *MemoryAuctionRepo) DebitRefund(auctionID, bidder string, amount uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := refundKey{auctionID, bidder}
	current := r.refunds[key]
	if amount >= current {
		delete(r.refunds, key)
		return
	}
	r.refunds[key] = current - amount
}

// TakeRefund zeroes and returns a bidder's withdrawable balance. A zero
// balance is a no-op, not an error.
func (r *MemoryAuctionRepo) TakeRefund(auctionID, bidder string) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := refundKey{auctionID, bidder}
	amount := r.refunds[key]
	delete(r.refunds, key)
	return amount
}

// PendingRefund returns a bidder's withdrawable balance without touching it
func (r *MemoryAuctionRepo) PendingRefund(auctionID, bidder string) uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.refunds[refundKey{auctionID, bidder}]
}
