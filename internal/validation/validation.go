package validation

import (
	model "marketplace-engine/internal/models"
)

// Reason classifies why a check failed
type Reason int

const (
	ReasonNone Reason = iota
	ReasonUnknownAsset
	ReasonNotOwner
	ReasonInsufficientQuantity
	ReasonNotAuthorized
	ReasonInvalidQuantity
)

func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "ok"
	case ReasonUnknownAsset:
		return "unknown asset"
	case ReasonNotOwner:
		return "not owner"
	case ReasonInsufficientQuantity:
		return "insufficient quantity"
	case ReasonNotAuthorized:
		return "not authorized"
	case ReasonInvalidQuantity:
		return "invalid quantity"
	default:
		return "unknown"
	}
}

// Result is the structured outcome of a pre-trade check
type Result struct {
	Standard model.AssetStandard
	OK       bool
	Reason   Reason
}

// AssetReader is the slice of the asset registry the checker reads
type AssetReader interface {
	Standard(collectionID string) (model.AssetStandard, error)
	OwnerOf(collectionID, unit string) (string, error)
	BalanceOf(collectionID, unit, holder string) uint64
	IsApproved(owner, operator string) bool
}

// Checker runs read-only pre-trade checks against the asset registry
type Checker struct {
	registry AssetReader
}

// NewChecker creates a Checker over the given registry
func NewChecker(registry AssetReader) *Checker {
	return &Checker{registry: registry}
}

// Check detects the asset's standard, then confirms the stated owner holds
// the asset (or enough of it) and that spender may transfer it on the
// owner's behalf. Never mutates state.
func (c *Checker) Check(asset model.AssetRef, owner, spender string) Result {
	standard, err := c.registry.Standard(asset.Collection)
	if err != nil {
		return Result{Reason: ReasonUnknownAsset}
	}

	switch standard {
	case model.StandardUnique:
		actual, err := c.registry.OwnerOf(asset.Collection, asset.Unit)
		if err != nil {
			return Result{Standard: standard, Reason: ReasonUnknownAsset}
		}
		if actual != owner {
			return Result{Standard: standard, Reason: ReasonNotOwner}
		}
	case model.StandardMultiUnit:
		if asset.Quantity == 0 {
			return Result{Standard: standard, Reason: ReasonInvalidQuantity}
		}
		if c.registry.BalanceOf(asset.Collection, asset.Unit, owner) < asset.Quantity {
			return Result{Standard: standard, Reason: ReasonInsufficientQuantity}
		}
	default:
		return Result{Reason: ReasonUnknownAsset}
	}

	if !c.registry.IsApproved(owner, spender) {
		return Result{Standard: standard, Reason: ReasonNotAuthorized}
	}
	return Result{Standard: standard, OK: true, Reason: ReasonNone}
}
