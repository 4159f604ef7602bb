package repository

import (
	"fmt"
	"sync"

	"marketplace-engine/internal/marketerrors"
	model "marketplace-engine/internal/models"
)

type assetKey struct {
	collection string
	unit       string
}

// MemoryListingRepo is a concurrency-safe in-memory implementation of
// ListingStore. Records persist after leaving Active for audit reads; only
// the active index entry is removed.
type MemoryListingRepo struct {
	mu       sync.RWMutex
	listings map[string]model.Listing // key: listingID
	active   map[assetKey]string      // key: (collection, unit) -> active listingID
}

// NewMemoryListingRepo creates a new in-memory listing repository
func NewMemoryListingRepo() *MemoryListingRepo {
	return &MemoryListingRepo{
		listings: make(map[string]model.Listing),
		active:   make(map[assetKey]string),
	}
}

// CreateListing stores an Active listing, enforcing at most one Active
// listing per (collection, unit)
func (r *MemoryListingRepo) CreateListing(l model.Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := assetKey{l.Asset.Collection, l.Asset.Unit}
	if _, taken := r.active[key]; taken {
		return fmt.Errorf("create listing for %s/%s: %w", l.Asset.Collection, l.Asset.Unit, marketerrors.ErrAlreadyListed)
	}
	l.Status = model.ListingActive
	r.listings[l.ListingID] = l
	r.active[key] = l.ListingID
	return nil
}

// GetListing returns the listing with the given id
func (r *MemoryListingRepo) GetListing(listingID string) (model.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.listings[listingID]
	if !ok {
		return model.Listing{}, fmt.Errorf("get listing %s: %w", listingID, marketerrors.ErrListingNotFound)
	}
	return l, nil
}

// ActiveListingByAsset returns the Active listing for an asset, if any
func (r *MemoryListingRepo) ActiveListingByAsset(collection, unit string) (model.Listing, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.active[assetKey{collection, unit}]
	if !ok {
		return model.Listing{}, false
	}
	return r.listings[id], true
}

// ListingsByCollection returns all listings, past and present, for a collection
func (r *MemoryListingRepo) ListingsByCollection(collection string) ([]model.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []model.Listing
	for _, l := range r.listings {
		if l.Asset.Collection == collection {
			out = append(out, l)
		}
	}
	return out, nil
}

// ListingsBySeller returns all listings created by a seller
func (r *MemoryListingRepo) ListingsBySeller(seller string) ([]model.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []model.Listing
	for _, l := range r.listings {
		if l.Seller == seller {
			out = append(out, l)
		}
	}
	return out, nil
}

// MarkListingSold transitions Active -> Sold and removes the active index
// entry in the same critical section
func (r *MemoryListingRepo) MarkListingSold(listingID string) error {
	return r.leaveActive(listingID, model.ListingSold)
}

// MarkListingCancelled transitions Active -> Cancelled and removes the
// active index entry in the same critical section
func (r *MemoryListingRepo) MarkListingCancelled(listingID string) error {
	return r.leaveActive(listingID, model.ListingCancelled)
}

// MarkListingExpired evicts a lapsed record from the active index, storing
// the derived Expired status so the asset is free to list again
func (r *MemoryListingRepo) MarkListingExpired(listingID string) error {
	return r.leaveActive(listingID, model.ListingExpired)
}

func (r *MemoryListingRepo) leaveActive(listingID string, to model.ListingStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.listings[listingID]
	if !ok {
		return fmt.Errorf("mark listing %s %s: %w", listingID, to, marketerrors.ErrListingNotFound)
	}
	if l.Status != model.ListingActive {
		return fmt.Errorf("mark listing %s %s: %w", listingID, to, marketerrors.ErrListingNotActive)
	}
	l.Status = to
	r.listings[listingID] = l
	delete(r.active, assetKey{l.Asset.Collection, l.Asset.Unit})
	return nil
}

// DeleteListing removes a record entirely. Used only to unwind a partially
// committed batch creation; settled records are never deleted.
func (r *MemoryListingRepo) DeleteListing(listingID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.listings[listingID]
	if !ok {
		return fmt.Errorf("delete listing %s: %w", listingID, marketerrors.ErrListingNotFound)
	}
	key := assetKey{l.Asset.Collection, l.Asset.Unit}
	if r.active[key] == listingID {
		delete(r.active, key)
	}
	delete(r.listings, listingID)
	return nil
}

// ReinstateListing undoes a terminal transition staged earlier in the same
// call, restoring Active status and the active index entry. Used only to
// roll back a buy whose payment leg failed.
func (r *MemoryListingRepo) ReinstateListing(listingID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.listings[listingID]
	if !ok {
		return fmt.Errorf("reinstate listing %s: %w", listingID, marketerrors.ErrListingNotFound)
	}
	key := assetKey{l.Asset.Collection, l.Asset.Unit}
	if current, taken := r.active[key]; taken && current != listingID {
		return fmt.Errorf("reinstate listing %s: %w", listingID, marketerrors.ErrAlreadyListed)
	}
	l.Status = model.ListingActive
	r.listings[listingID] = l
	r.active[key] = listingID
	return nil
}
