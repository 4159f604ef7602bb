package exchange

import (
	"fmt"
	"sync"
	"time"

	"marketplace-engine/internal/marketerrors"
	model "marketplace-engine/internal/models"
	"marketplace-engine/internal/repository"
	"marketplace-engine/internal/validation"
	"marketplace-engine/utils"
)

// AssetRegistry is the slice of the asset substrate the exchange mutates
type AssetRegistry interface {
	Transfer(asset model.AssetRef, from, to, operator string) error
}

// Validator runs the read-only pre-trade checks
type Validator interface {
	Check(asset model.AssetRef, owner, spender string) validation.Result
}

// RoyaltyResolver looks up the royalty owed on a sale
type RoyaltyResolver interface {
	Resolve(collection, unit string, salePrice uint64) (string, uint64)
}

// PaymentDistributor executes the fee/royalty/seller split
type PaymentDistributor interface {
	Fee(price uint64) uint64
	Required(price, royalty uint64) uint64
	Distribute(escrow, seller string, total, fee uint64, royaltyRecipient string, royaltyAmount uint64) error
	FeeAccount() string
}

// FundsLedger moves native currency between accounts
type FundsLedger interface {
	Transfer(from, to string, amount uint64) error
}

// AvailabilityOracle is consulted before listing an asset and notified when
// a listing leaves the active state
type AvailabilityOracle interface {
	Engaged(collection, unit string) bool
	Acquire(collection, unit string) error
	Release(collection, unit string) error
}

// Emitter receives a notification per state transition
type Emitter interface {
	Emit(e model.Event)
}

// Service owns fixed-price listing records and the purchase settlement path
type Service struct {
	listings    repository.ListingStore
	registry    AssetRegistry
	validator   Validator
	resolver    RoyaltyResolver
	distributor PaymentDistributor
	funds       FundsLedger
	oracle      AvailabilityOracle
	emitter     Emitter
	operator    string // identity the engine transfers assets under

	guardMu  sync.Mutex
	inFlight map[string]bool // listingID -> settlement in progress

	now func() time.Time
}

// NewService wires a listing service from its collaborators. The operator
// identity is the one sellers must have approved for asset transfers.
func NewService(
	listings repository.ListingStore,
	registry AssetRegistry,
	validator Validator,
	resolver RoyaltyResolver,
	distributor PaymentDistributor,
	funds FundsLedger,
	oracle AvailabilityOracle,
	emitter Emitter,
	operator string,
) *Service {
	return &Service{
		listings:    listings,
		registry:    registry,
		validator:   validator,
		resolver:    resolver,
		distributor: distributor,
		funds:       funds,
		oracle:      oracle,
		emitter:     emitter,
		operator:    operator,
		inFlight:    make(map[string]bool),
		now:         time.Now,
	}
}

// EscrowAccount names the ledger account custodying a listing's funds
func EscrowAccount(listingID string) string {
	return "escrow:listing:" + listingID
}

// CreateListing validates and stores a new Active listing
func (s *Service) CreateListing(asset model.AssetRef, seller string, price uint64, duration time.Duration) (model.Listing, error) {
	listing, err := s.createListing(asset, seller, price, duration)
	if err != nil {
		return model.Listing{}, err
	}
	s.emit(model.EventListingCreated, listing.ListingID, asset, seller, price)
	return listing, nil
}

func (s *Service) createListing(asset model.AssetRef, seller string, price uint64, duration time.Duration) (model.Listing, error) {
	if price == 0 {
		return model.Listing{}, fmt.Errorf("service: create listing: %w", marketerrors.ErrPriceMustBePositive)
	}
	if duration <= 0 {
		return model.Listing{}, fmt.Errorf("service: create listing: %w", marketerrors.ErrDurationMustBePositive)
	}
	if res := s.validator.Check(asset, seller, s.operator); !res.OK {
		return model.Listing{}, fmt.Errorf("service: create listing for %s/%s: %w", asset.Collection, asset.Unit, translateReason(res.Reason))
	}

	// An incumbent whose window has lapsed is Expired in every read, so it
	// no longer blocks the asset. Evict it before the availability check.
	if cur, ok := s.listings.ActiveListingByAsset(asset.Collection, asset.Unit); ok && !s.now().Before(cur.EndsAt()) {
		if err := s.listings.MarkListingExpired(cur.ListingID); err == nil {
			s.release(cur.Asset)
		}
	}

	if s.oracle.Engaged(asset.Collection, asset.Unit) {
		return model.Listing{}, fmt.Errorf("service: create listing for %s/%s: %w", asset.Collection, asset.Unit, marketerrors.ErrAlreadyListed)
	}

	listing := model.Listing{
		ListingID: utils.GenerateID(),
		Asset:     asset,
		Seller:    seller,
		Price:     price,
		CreatedAt: s.now().UTC(),
		Duration:  duration,
		Status:    model.ListingActive,
	}

	if err := s.oracle.Acquire(asset.Collection, asset.Unit); err != nil {
		return model.Listing{}, fmt.Errorf("service: create listing for %s/%s: %w", asset.Collection, asset.Unit, marketerrors.ErrAlreadyListed)
	}
	if err := s.listings.CreateListing(listing); err != nil {
		s.release(asset)
		return model.Listing{}, fmt.Errorf("service: create listing: %w", err)
	}
	return listing, nil
}

// CreateListingBatch creates one listing per (unit, price, quantity) triple
// for the same seller and collection. The batch is all-or-nothing: a
// mismatch in array lengths or any single failure commits nothing.
func (s *Service) CreateListingBatch(collection, seller string, units []string, prices []uint64, quantities []uint64, duration time.Duration) ([]model.Listing, error) {
	if len(units) != len(prices) || len(units) != len(quantities) {
		return nil, fmt.Errorf("service: create listing batch: %w", marketerrors.ErrBatchLengthMismatch)
	}

	created := make([]model.Listing, 0, len(units))
	for i, unit := range units {
		asset := model.AssetRef{Collection: collection, Unit: unit, Quantity: quantities[i]}
		listing, err := s.createListing(asset, seller, prices[i], duration)
		if err != nil {
			for _, l := range created {
				if undoErr := s.listings.DeleteListing(l.ListingID); undoErr != nil {
					utils.Error("create listing batch: rollback failed", map[string]any{"listing_id": l.ListingID, "error": undoErr.Error()})
				}
				s.release(l.Asset)
			}
			return nil, fmt.Errorf("service: create listing batch at %s/%s: %w", collection, unit, err)
		}
		created = append(created, listing)
	}

	for _, l := range created {
		s.emit(model.EventListingCreated, l.ListingID, l.Asset, seller, l.Price)
	}
	return created, nil
}

// Buy settles a purchase: the listing is made terminal first, then funds
// move, then the asset. A failure in any later step rolls the earlier ones
// back so the call has no observable effect.
func (s *Service) Buy(listingID, buyer string, paid uint64) (model.Listing, error) {
	if err := s.acquireGuard(listingID); err != nil {
		return model.Listing{}, fmt.Errorf("service: buy listing %s: %w", listingID, err)
	}
	defer s.releaseGuard(listingID)

	listing, err := s.listings.GetListing(listingID)
	if err != nil {
		return model.Listing{}, fmt.Errorf("service: buy listing %s: %w", listingID, err)
	}
	if err := s.purchasable(listing, buyer); err != nil {
		return model.Listing{}, fmt.Errorf("service: buy listing %s: %w", listingID, err)
	}

	royaltyRecipient, royaltyAmount := s.resolver.Resolve(listing.Asset.Collection, listing.Asset.Unit, listing.Price)
	required := s.distributor.Required(listing.Price, royaltyAmount)
	if paid < required {
		return model.Listing{}, fmt.Errorf("service: buy listing %s: need %d, got %d: %w", listingID, required, paid, marketerrors.ErrInsufficientPayment)
	}

	if err := s.settlePurchase(listing, buyer, paid, required, royaltyRecipient, royaltyAmount); err != nil {
		return model.Listing{}, fmt.Errorf("service: buy listing %s: %w", listingID, err)
	}

	s.release(listing.Asset)
	s.emit(model.EventListingSold, listingID, listing.Asset, buyer, listing.Price)
	listing.Status = model.ListingSold
	return listing, nil
}

// settlePurchase performs the ordered settlement steps for one listing:
// terminal state, buyer debit into the listing escrow, asset transfer,
// then distribution. Any failure unwinds the completed steps.
func (s *Service) settlePurchase(listing model.Listing, buyer string, paid, required uint64, royaltyRecipient string, royaltyAmount uint64) error {
	escrow := EscrowAccount(listing.ListingID)

	if err := s.listings.MarkListingSold(listing.ListingID); err != nil {
		return err
	}
	if err := s.funds.Transfer(buyer, escrow, paid); err != nil {
		s.reinstate(listing.ListingID)
		return fmt.Errorf("%w: %s", marketerrors.ErrInsufficientFunds, err)
	}
	if err := s.registry.Transfer(listing.Asset, listing.Seller, buyer, s.operator); err != nil {
		s.mustRefund(escrow, buyer, paid)
		s.reinstate(listing.ListingID)
		return fmt.Errorf("%w: %s", marketerrors.ErrTransferFailed, err)
	}
	fee := s.distributor.Fee(listing.Price)
	if err := s.distributor.Distribute(escrow, listing.Seller, required, fee, royaltyRecipient, royaltyAmount); err != nil {
		s.mustReturnAsset(listing.Asset, buyer, listing.Seller)
		s.mustRefund(escrow, buyer, paid)
		s.reinstate(listing.ListingID)
		return err
	}
	return nil
}

// BuyBatch settles several listings of one collection in a single
// all-or-nothing call. The aggregate requirement is the sum of each
// listing's own requirement.
func (s *Service) BuyBatch(listingIDs []string, buyer string, paid uint64) ([]model.Listing, error) {
	if len(listingIDs) == 0 {
		return nil, fmt.Errorf("service: buy batch: %w", marketerrors.ErrBatchLengthMismatch)
	}

	items := make([]pricedListing, 0, len(listingIDs))
	var total uint64
	collection := ""
	for _, id := range listingIDs {
		listing, err := s.listings.GetListing(id)
		if err != nil {
			return nil, fmt.Errorf("service: buy batch: %w", err)
		}
		if collection == "" {
			collection = listing.Asset.Collection
		} else if listing.Asset.Collection != collection {
			return nil, fmt.Errorf("service: buy batch: %w", marketerrors.ErrMixedCollections)
		}
		if err := s.purchasable(listing, buyer); err != nil {
			return nil, fmt.Errorf("service: buy batch listing %s: %w", id, err)
		}
		rr, ra := s.resolver.Resolve(listing.Asset.Collection, listing.Asset.Unit, listing.Price)
		required := s.distributor.Required(listing.Price, ra)
		items = append(items, pricedListing{listing, required, rr, ra})
		total += required
	}
	if paid < total {
		return nil, fmt.Errorf("service: buy batch: need %d, got %d: %w", total, paid, marketerrors.ErrInsufficientPayment)
	}

	bought := make([]model.Listing, 0, len(items))
	for i, item := range items {
		if err := s.acquireGuard(item.listing.ListingID); err != nil {
			s.unwindBatch(items[:i], buyer)
			return nil, fmt.Errorf("service: buy batch listing %s: %w", item.listing.ListingID, err)
		}
		err := s.settlePurchase(item.listing, buyer, item.required, item.required, item.royaltyRecipient, item.royaltyAmount)
		s.releaseGuard(item.listing.ListingID)
		if err != nil {
			s.unwindBatch(items[:i], buyer)
			return nil, fmt.Errorf("service: buy batch listing %s: %w", item.listing.ListingID, err)
		}
		l := item.listing
		l.Status = model.ListingSold
		bought = append(bought, l)
	}

	for _, item := range items {
		s.release(item.listing.Asset)
		s.emit(model.EventListingSold, item.listing.ListingID, item.listing.Asset, buyer, item.listing.Price)
	}
	return bought, nil
}

// pricedListing is a listing with its purchase requirement fully computed
type pricedListing struct {
	listing          model.Listing
	required         uint64
	royaltyRecipient string
	royaltyAmount    uint64
}

// unwindBatch reverses fully settled batch items after a later one failed:
// distribution legs move back to escrow, escrow refunds the buyer, the
// asset returns to the seller and the listing becomes Active again.
func (s *Service) unwindBatch(items []pricedListing, buyer string) {
	for i := len(items) - 1; i >= 0; i-- {
		item := items[i]
		escrow := EscrowAccount(item.listing.ListingID)
		fee := s.distributor.Fee(item.listing.Price)
		sellerAmount := item.required - fee - item.royaltyAmount

		s.mustRefund(item.listing.Seller, escrow, sellerAmount)
		if item.royaltyAmount > 0 && item.royaltyRecipient != "" {
			s.mustRefund(item.royaltyRecipient, escrow, item.royaltyAmount)
		}
		s.mustRefund(s.distributor.FeeAccount(), escrow, fee)
		s.mustReturnAsset(item.listing.Asset, buyer, item.listing.Seller)
		s.mustRefund(escrow, buyer, item.required)
		s.reinstate(item.listing.ListingID)
	}
}

// Cancel withdraws an Active, unexpired listing. Seller only.
func (s *Service) Cancel(listingID, caller string) (model.Listing, error) {
	listing, err := s.listings.GetListing(listingID)
	if err != nil {
		return model.Listing{}, fmt.Errorf("service: cancel listing %s: %w", listingID, err)
	}
	if listing.Status != model.ListingActive {
		return model.Listing{}, fmt.Errorf("service: cancel listing %s: %w", listingID, marketerrors.ErrListingNotActive)
	}
	if !s.now().Before(listing.EndsAt()) {
		return model.Listing{}, fmt.Errorf("service: cancel listing %s: %w", listingID, marketerrors.ErrListingExpired)
	}
	if listing.Seller != caller {
		return model.Listing{}, fmt.Errorf("service: cancel listing %s: %w", listingID, marketerrors.ErrNotSeller)
	}

	if err := s.listings.MarkListingCancelled(listingID); err != nil {
		return model.Listing{}, fmt.Errorf("service: cancel listing %s: %w", listingID, err)
	}
	s.release(listing.Asset)
	s.emit(model.EventListingCancelled, listingID, listing.Asset, caller, 0)
	listing.Status = model.ListingCancelled
	return listing, nil
}

// CancelBatch cancels several listings all-or-nothing: every listing is
// checked before the first one is touched
func (s *Service) CancelBatch(listingIDs []string, caller string) error {
	for _, id := range listingIDs {
		listing, err := s.listings.GetListing(id)
		if err != nil {
			return fmt.Errorf("service: cancel batch: %w", err)
		}
		if listing.Status != model.ListingActive {
			return fmt.Errorf("service: cancel batch listing %s: %w", id, marketerrors.ErrListingNotActive)
		}
		if !s.now().Before(listing.EndsAt()) {
			return fmt.Errorf("service: cancel batch listing %s: %w", id, marketerrors.ErrListingExpired)
		}
		if listing.Seller != caller {
			return fmt.Errorf("service: cancel batch listing %s: %w", id, marketerrors.ErrNotSeller)
		}
	}
	for _, id := range listingIDs {
		if _, err := s.Cancel(id, caller); err != nil {
			return fmt.Errorf("service: cancel batch: %w", err)
		}
	}
	return nil
}

// Get returns a listing, reporting Expired for an Active record whose
// window has passed. Expiry is a read-time view, never a stored transition.
func (s *Service) Get(listingID string) (model.Listing, error) {
	listing, err := s.listings.GetListing(listingID)
	if err != nil {
		return model.Listing{}, fmt.Errorf("service: get listing %s: %w", listingID, err)
	}
	return s.derived(listing), nil
}

// ByCollection returns all of a collection's listings
func (s *Service) ByCollection(collection string) ([]model.Listing, error) {
	listings, err := s.listings.ListingsByCollection(collection)
	if err != nil {
		return nil, fmt.Errorf("service: listings of collection %s: %w", collection, err)
	}
	return s.derivedAll(listings), nil
}

// BySeller returns all of a seller's listings
func (s *Service) BySeller(seller string) ([]model.Listing, error) {
	listings, err := s.listings.ListingsBySeller(seller)
	if err != nil {
		return nil, fmt.Errorf("service: listings of seller %s: %w", seller, err)
	}
	return s.derivedAll(listings), nil
}

func (s *Service) derived(l model.Listing) model.Listing {
	if l.Status == model.ListingActive && !s.now().Before(l.EndsAt()) {
		l.Status = model.ListingExpired
	}
	return l
}

func (s *Service) derivedAll(listings []model.Listing) []model.Listing {
	out := make([]model.Listing, len(listings))
	for i, l := range listings {
		out[i] = s.derived(l)
	}
	return out
}

// purchasable checks the state and authorization rules common to Buy and
// BuyBatch. Payment checks come after.
func (s *Service) purchasable(listing model.Listing, buyer string) error {
	if listing.Status != model.ListingActive {
		return marketerrors.ErrListingNotActive
	}
	if !s.now().Before(listing.EndsAt()) {
		return marketerrors.ErrListingExpired
	}
	if listing.Seller == buyer {
		return marketerrors.ErrCannotBuyOwnListing
	}
	return nil
}

func (s *Service) acquireGuard(listingID string) error {
	s.guardMu.Lock()
	defer s.guardMu.Unlock()
	if s.inFlight[listingID] {
		return marketerrors.ErrSettlementInProgress
	}
	s.inFlight[listingID] = true
	return nil
}

func (s *Service) releaseGuard(listingID string) {
	s.guardMu.Lock()
	defer s.guardMu.Unlock()
	delete(s.inFlight, listingID)
}

// release notifies the oracle an asset left the active state. Oracle
// failures are logged, never allowed to block the primary operation.
func (s *Service) release(asset model.AssetRef) {
	if err := s.oracle.Release(asset.Collection, asset.Unit); err != nil {
		utils.Warn("availability release failed", map[string]any{
			"collection": asset.Collection,
			"unit":       asset.Unit,
			"error":      err.Error(),
		})
	}
}

func (s *Service) reinstate(listingID string) {
	if err := s.listings.ReinstateListing(listingID); err != nil {
		utils.Error("listing reinstate failed", map[string]any{"listing_id": listingID, "error": err.Error()})
	}
}

// mustRefund reverses a fund movement staged earlier in the same call. The
// source account holds exactly what was moved there, so failure means the
// ledger is corrupt.
func (s *Service) mustRefund(from, to string, amount uint64) {
	if amount == 0 {
		return
	}
	if err := s.funds.Transfer(from, to, amount); err != nil {
		panic(fmt.Sprintf("exchange: refund of %d from %s failed: %v", amount, from, err))
	}
}

// mustReturnAsset sends an asset back to the seller during rollback, acting
// under the interim holder's own authority
func (s *Service) mustReturnAsset(asset model.AssetRef, holder, seller string) {
	if err := s.registry.Transfer(asset, holder, seller, holder); err != nil {
		panic(fmt.Sprintf("exchange: asset return of %s/%s failed: %v", asset.Collection, asset.Unit, err))
	}
}

func (s *Service) emit(name, id string, asset model.AssetRef, actor string, amount uint64) {
	s.emitter.Emit(model.Event{
		Name:   name,
		ID:     id,
		Asset:  asset,
		Actor:  actor,
		Amount: amount,
		At:     s.now().UTC(),
	})
}

func translateReason(reason validation.Reason) error {
	switch reason {
	case validation.ReasonUnknownAsset:
		return marketerrors.ErrUnknownAsset
	case validation.ReasonNotOwner, validation.ReasonInsufficientQuantity:
		return marketerrors.ErrNotOwner
	case validation.ReasonNotAuthorized:
		return marketerrors.ErrNotAuthorized
	case validation.ReasonInvalidQuantity:
		return marketerrors.ErrQuantityMustBePositive
	default:
		return marketerrors.ErrUnknownAsset
	}
}
