package assets

import (
	"fmt"
	"sync"

	"marketplace-engine/internal/marketerrors"
	model "marketplace-engine/internal/models"
)

// RoyaltyInfo is a royalty declaration: recipient plus rate in basis points
type RoyaltyInfo struct {
	Recipient string
	RateBps   uint64
}

type unitKey struct {
	unit   string
	holder string
}

type collection struct {
	standard model.AssetStandard

	owners   map[string]string  // unit -> owner (unique collections)
	balances map[unitKey]uint64 // (unit, holder) -> quantity (multi-unit collections)

	// royalty declarations; any subset may be present
	feeConfig      *RoyaltyInfo
	defaultRoyalty *RoyaltyInfo
	unitRoyalties  map[string]RoyaltyInfo
}

// Registry is a concurrency-safe in-memory asset substrate: per-collection
// ownership, operator approvals and royalty declarations
type Registry struct {
	mu          sync.RWMutex
	collections map[string]*collection
	operators   map[string]map[string]bool // owner -> operator -> approved
}

// NewRegistry creates an empty asset registry
func NewRegistry() *Registry {
	return &Registry{
		collections: make(map[string]*collection),
		operators:   make(map[string]map[string]bool),
	}
}

// RegisterCollection creates a collection under the given standard
func (r *Registry) RegisterCollection(id string, standard model.AssetStandard) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.collections[id]; ok {
		return fmt.Errorf("register collection %s: already exists", id)
	}
	r.collections[id] = &collection{
		standard:      standard,
		owners:        make(map[string]string),
		balances:      make(map[unitKey]uint64),
		unitRoyalties: make(map[string]RoyaltyInfo),
	}
	return nil
}

// Mint assigns a unit (or quantity of a unit) to a holder
func (r *Registry) Mint(collectionID, unit, holder string, quantity uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.collections[collectionID]
	if !ok {
		return fmt.Errorf("mint %s/%s: %w", collectionID, unit, marketerrors.ErrUnknownAsset)
	}
	switch c.standard {
	case model.StandardUnique:
		if _, taken := c.owners[unit]; taken {
			return fmt.Errorf("mint %s/%s: unit already minted", collectionID, unit)
		}
		c.owners[unit] = holder
	case model.StandardMultiUnit:
		c.balances[unitKey{unit, holder}] += quantity
	default:
		return fmt.Errorf("mint %s/%s: unsupported standard", collectionID, unit)
	}
	return nil
}

// Standard reports the collection's ownership standard
func (r *Registry) Standard(collectionID string) (model.AssetStandard, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.collections[collectionID]
	if !ok {
		return model.StandardUnknown, fmt.Errorf("standard of %s: %w", collectionID, marketerrors.ErrUnknownAsset)
	}
	return c.standard, nil
}

// OwnerOf returns the owner of a unique unit
func (r *Registry) OwnerOf(collectionID, unit string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.collections[collectionID]
	if !ok {
		return "", fmt.Errorf("owner of %s/%s: %w", collectionID, unit, marketerrors.ErrUnknownAsset)
	}
	owner, ok := c.owners[unit]
	if !ok {
		return "", fmt.Errorf("owner of %s/%s: %w", collectionID, unit, marketerrors.ErrUnknownAsset)
	}
	return owner, nil
}

// BalanceOf returns a holder's quantity of a multi-unit asset
func (r *Registry) BalanceOf(collectionID, unit, holder string) uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.collections[collectionID]
	if !ok {
		return 0
	}
	return c.balances[unitKey{unit, holder}]
}

// SetApproval grants or revokes an operator's right to move the owner's assets
func (r *Registry) SetApproval(owner, operator string, approved bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.operators[owner] == nil {
		r.operators[owner] = make(map[string]bool)
	}
	r.operators[owner][operator] = approved
}

// IsApproved reports whether operator may transfer on behalf of owner.
// An owner is always approved for their own assets.
func (r *Registry) IsApproved(owner, operator string) bool {
	if owner == operator {
		return true
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.operators[owner][operator]
}

// Transfer moves an asset from one holder to another. The operator must be
// the owner or hold an approval from them.
func (r *Registry) Transfer(asset model.AssetRef, from, to, operator string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.collections[asset.Collection]
	if !ok {
		return fmt.Errorf("transfer %s/%s: %w", asset.Collection, asset.Unit, marketerrors.ErrUnknownAsset)
	}
	if from != operator && !r.operators[from][operator] {
		return fmt.Errorf("transfer %s/%s by %s: %w", asset.Collection, asset.Unit, operator, marketerrors.ErrNotAuthorized)
	}

	switch c.standard {
	case model.StandardUnique:
		if c.owners[asset.Unit] != from {
			return fmt.Errorf("transfer %s/%s: %w", asset.Collection, asset.Unit, marketerrors.ErrNotOwner)
		}
		c.owners[asset.Unit] = to
	case model.StandardMultiUnit:
		key := unitKey{asset.Unit, from}
		if c.balances[key] < asset.Quantity {
			return fmt.Errorf("transfer %s/%s: %w", asset.Collection, asset.Unit, marketerrors.ErrNotOwner)
		}
		c.balances[key] -= asset.Quantity
		if c.balances[key] == 0 {
			delete(c.balances, key)
		}
		c.balances[unitKey{asset.Unit, to}] += asset.Quantity
	default:
		return fmt.Errorf("transfer %s/%s: unsupported standard", asset.Collection, asset.Unit)
	}
	return nil
}

// SetFeeConfig installs the per-collection fee configuration object
func (r *Registry) SetFeeConfig(collectionID string, info RoyaltyInfo) error {
	return r.setRoyalty(collectionID, func(c *collection) { c.feeConfig = &info })
}

// SetDefaultRoyalty installs the collection-level default royalty
func (r *Registry) SetDefaultRoyalty(collectionID string, info RoyaltyInfo) error {
	return r.setRoyalty(collectionID, func(c *collection) { c.defaultRoyalty = &info })
}

// SetUnitRoyalty installs a per-unit royalty declaration
func (r *Registry) SetUnitRoyalty(collectionID, unit string, info RoyaltyInfo) error {
	return r.setRoyalty(collectionID, func(c *collection) { c.unitRoyalties[unit] = info })
}

func (r *Registry) setRoyalty(collectionID string, apply func(*collection)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.collections[collectionID]
	if !ok {
		return fmt.Errorf("set royalty on %s: %w", collectionID, marketerrors.ErrUnknownAsset)
	}
	apply(c)
	return nil
}

// FeeConfig returns the collection's fee configuration object, if any
func (r *Registry) FeeConfig(collectionID string) (RoyaltyInfo, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.collections[collectionID]
	if !ok || c.feeConfig == nil {
		return RoyaltyInfo{}, false
	}
	return *c.feeConfig, true
}

// DefaultRoyalty returns the collection-level default royalty, if any
func (r *Registry) DefaultRoyalty(collectionID string) (RoyaltyInfo, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.collections[collectionID]
	if !ok || c.defaultRoyalty == nil {
		return RoyaltyInfo{}, false
	}
	return *c.defaultRoyalty, true
}

// UnitRoyalty returns the per-unit royalty declaration, if any
func (r *Registry) UnitRoyalty(collectionID, unit string) (RoyaltyInfo, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.collections[collectionID]
	if !ok {
		return RoyaltyInfo{}, false
	}
	info, ok := c.unitRoyalties[unit]
	return info, ok
}
