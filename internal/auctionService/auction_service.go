package auction

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

// AssetRegistry is the slice of the asset substrate the auction engines mutate
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
	Distribute(escrow, seller string, total, fee uint64, royaltyRecipient string, royaltyAmount uint64) error
}

// FundsLedger moves native currency between accounts
type FundsLedger interface {
	Transfer(from, to string, amount uint64) error
}

// AvailabilityOracle is consulted before auctioning an asset and notified
// when an auction leaves the active state
type AvailabilityOracle interface {
	Engaged(collection, unit string) bool
	Acquire(collection, unit string) error
	Release(collection, unit string) error
}

// Emitter receives a notification per state transition
type Emitter interface {
	Emit(e model.Event)
}

// Service is the auction factory and router: it creates English and Dutch
// auctions, assigns ids, and dispatches every bid/buy/withdraw/cancel/settle
// call to the state machine owning the id.
type Service struct {
	auctions    repository.AuctionStore
	registry    AssetRegistry
	validator   Validator
	resolver    RoyaltyResolver
	distributor PaymentDistributor
	funds       FundsLedger
	oracle      AvailabilityOracle
	emitter     Emitter
	operator    string

	// anti-snipe: bids landing within this window of the close push the
	// close out by the same amount
	extendWindow time.Duration

	guardMu  sync.Mutex
	inFlight map[string]bool // auctionID -> settlement in progress

	now func() time.Time
}

// NewService wires the auction service from its collaborators
func NewService(
	auctions repository.AuctionStore,
	registry AssetRegistry,
	validator Validator,
	resolver RoyaltyResolver,
	distributor PaymentDistributor,
	funds FundsLedger,
	oracle AvailabilityOracle,
	emitter Emitter,
	operator string,
	extendWindow time.Duration,
) *Service {
	return &Service{
		auctions:     auctions,
		registry:     registry,
		validator:    validator,
		resolver:     resolver,
		distributor:  distributor,
		funds:        funds,
		oracle:       oracle,
		emitter:      emitter,
		operator:     operator,
		extendWindow: extendWindow,
		inFlight:     make(map[string]bool),
		now:          time.Now,
	}
}

// EscrowAccount names the ledger account custodying an auction's funds
func EscrowAccount(auctionID string) string {
	return "escrow:auction:" + auctionID
}

// CreateEnglish creates an ascending auction. Reserve, if set, must be at
// least the start price; buy-now, if set, must exceed it.
func (s *Service) CreateEnglish(asset model.AssetRef, seller string, startPrice, reservePrice, buyNowPrice, minIncrementBps uint64, extendOnBid bool, duration time.Duration) (model.Auction, error) {
	if reservePrice != 0 && reservePrice < startPrice {
		return model.Auction{}, fmt.Errorf("service: create english auction: %w", marketerrors.ErrReserveBelowStart)
	}
	if buyNowPrice != 0 && buyNowPrice <= startPrice {
		return model.Auction{}, fmt.Errorf("service: create english auction: %w", marketerrors.ErrBuyNowBelowStart)
	}
	english := &model.EnglishState{
		MinIncrementBps: minIncrementBps,
		BuyNowPrice:     buyNowPrice,
		ExtendOnBid:     extendOnBid,
	}
	return s.create(asset, seller, startPrice, reservePrice, duration, model.KindEnglish, english, nil)
}

// CreateDutch creates a descending auction with a pure price-decay schedule
func (s *Service) CreateDutch(asset model.AssetRef, seller string, startPrice, endingPrice, dropAmount uint64, dropInterval, duration time.Duration) (model.Auction, error) {
	if endingPrice > startPrice || dropAmount == 0 || dropInterval <= 0 {
		return model.Auction{}, fmt.Errorf("service: create dutch auction: %w", marketerrors.ErrInvalidPriceSchedule)
	}
	dutch := &model.DutchState{
		EndingPrice:  endingPrice,
		DropAmount:   dropAmount,
		DropInterval: dropInterval,
	}
	return s.create(asset, seller, startPrice, 0, duration, model.KindDutch, nil, dutch)
}

func (s *Service) create(asset model.AssetRef, seller string, startPrice, reservePrice uint64, duration time.Duration, kind model.AuctionKind, english *model.EnglishState, dutch *model.DutchState) (model.Auction, error) {
	if startPrice == 0 {
		return model.Auction{}, fmt.Errorf("service: create %s auction: %w", kind, marketerrors.ErrPriceMustBePositive)
	}
	if duration <= 0 {
		return model.Auction{}, fmt.Errorf("service: create %s auction: %w", kind, marketerrors.ErrDurationMustBePositive)
	}
	if res := s.validator.Check(asset, seller, s.operator); !res.OK {
		return model.Auction{}, fmt.Errorf("service: create %s auction for %s/%s: %w", kind, asset.Collection, asset.Unit, translateReason(res.Reason))
	}
	if s.oracle.Engaged(asset.Collection, asset.Unit) {
		return model.Auction{}, fmt.Errorf("service: create %s auction for %s/%s: %w", kind, asset.Collection, asset.Unit, marketerrors.ErrAlreadyListed)
	}

	now := s.now().UTC()
	a := model.Auction{
		AuctionID:    utils.GenerateID(),
		Asset:        asset,
		Seller:       seller,
		StartPrice:   startPrice,
		ReservePrice: reservePrice,
		CreatedAt:    now,
		Duration:     duration,
		EndsAt:       now.Add(duration),
		Kind:         kind,
		Status:       model.AuctionActive,
		English:      english,
		Dutch:        dutch,
	}

	if err := s.oracle.Acquire(asset.Collection, asset.Unit); err != nil {
		return model.Auction{}, fmt.Errorf("service: create %s auction for %s/%s: %w", kind, asset.Collection, asset.Unit, marketerrors.ErrAlreadyListed)
	}
	if err := s.auctions.CreateAuction(a); err != nil {
		s.release(asset)
		return model.Auction{}, fmt.Errorf("service: create %s auction: %w", kind, err)
	}

	s.emit(model.EventAuctionCreated, a.AuctionID, asset, seller, startPrice)
	return a, nil
}

// Cancel withdraws an auction. Seller only. An English auction is only
// cancellable while it has never received a bid; once funds are at stake
// the only forward path is settlement.
func (s *Service) Cancel(auctionID, caller string) (model.Auction, error) {
	a, err := s.auctions.GetAuction(auctionID)
	if err != nil {
		return model.Auction{}, fmt.Errorf("service: cancel auction %s: %w", auctionID, err)
	}
	if a.Status != model.AuctionActive {
		return model.Auction{}, fmt.Errorf("service: cancel auction %s: %w", auctionID, marketerrors.ErrAuctionNotActive)
	}
	if a.Seller != caller {
		return model.Auction{}, fmt.Errorf("service: cancel auction %s: %w", auctionID, marketerrors.ErrNotSeller)
	}
	if a.Kind == model.KindEnglish && a.English.BidCount > 0 {
		return model.Auction{}, fmt.Errorf("service: cancel auction %s: %w", auctionID, marketerrors.ErrAuctionHasBids)
	}

	a.Status = model.AuctionCancelled
	if err := s.auctions.UpdateAuction(a); err != nil {
		return model.Auction{}, fmt.Errorf("service: cancel auction %s: %w", auctionID, err)
	}
	s.release(a.Asset)
	s.emit(model.EventAuctionCancelled, auctionID, a.Asset, caller, 0)
	return a, nil
}

// WithdrawRefund pays out and zeroes the caller's pending refund for an
// auction. Pull-payment: callable any time, and a zero balance is a no-op.
func (s *Service) WithdrawRefund(auctionID, caller string) (uint64, error) {
	if _, err := s.auctions.GetAuction(auctionID); err != nil {
		return 0, fmt.Errorf("service: withdraw refund for auction %s: %w", auctionID, err)
	}

	amount := s.auctions.TakeRefund(auctionID, caller)
	if amount == 0 {
		return 0, nil
	}
	if err := s.funds.Transfer(EscrowAccount(auctionID), caller, amount); err != nil {
		s.auctions.CreditRefund(auctionID, caller, amount)
		return 0, fmt.Errorf("service: withdraw refund for auction %s: %w: %s", auctionID, marketerrors.ErrTransferFailed, err)
	}

	a, _ := s.auctions.GetAuction(auctionID)
	s.emit(model.EventRefundWithdrawn, auctionID, a.Asset, caller, amount)
	return amount, nil
}

// PendingRefund reports the caller's withdrawable balance for an auction
func (s *Service) PendingRefund(auctionID, bidder string) (uint64, error) {
	if _, err := s.auctions.GetAuction(auctionID); err != nil {
		return 0, fmt.Errorf("service: pending refund for auction %s: %w", auctionID, err)
	}
	return s.auctions.PendingRefund(auctionID, bidder), nil
}

// Get returns the auction record with the given id
func (s *Service) Get(auctionID string) (model.Auction, error) {
	a, err := s.auctions.GetAuction(auctionID)
	if err != nil {
		return model.Auction{}, fmt.Errorf("service: get auction %s: %w", auctionID, err)
	}
	return a, nil
}

// settleSale makes the auction terminal, then moves the asset, then
// distributes salePrice out of the auction escrow. Any failure unwinds the
// completed steps and leaves the auction Active.
func (s *Service) settleSale(a model.Auction, winner string, salePrice uint64) error {
	a.Status = model.AuctionSettled
	if err := s.auctions.UpdateAuction(a); err != nil {
		return err
	}
	if err := s.registry.Transfer(a.Asset, a.Seller, winner, s.operator); err != nil {
		s.reactivate(a)
		return fmt.Errorf("%w: %s", marketerrors.ErrTransferFailed, err)
	}

	royaltyRecipient, royaltyAmount := s.resolver.Resolve(a.Asset.Collection, a.Asset.Unit, salePrice)
	fee := s.distributor.Fee(salePrice)
	if err := s.distributor.Distribute(EscrowAccount(a.AuctionID), a.Seller, salePrice, fee, royaltyRecipient, royaltyAmount); err != nil {
		s.mustReturnAsset(a.Asset, winner, a.Seller)
		s.reactivate(a)
		return err
	}
	return nil
}

func (s *Service) reactivate(a model.Auction) {
	a.Status = model.AuctionActive
	if err := s.auctions.UpdateAuction(a); err != nil {
		utils.Error("auction reactivate failed", map[string]any{"auction_id": a.AuctionID, "error": err.Error()})
	}
}

func (s *Service) acquireGuard(auctionID string) error {
	s.guardMu.Lock()
	defer s.guardMu.Unlock()
	if s.inFlight[auctionID] {
		return marketerrors.ErrSettlementInProgress
	}
	s.inFlight[auctionID] = true
	return nil
}

func (s *Service) releaseGuard(auctionID string) {
	s.guardMu.Lock()
	defer s.guardMu.Unlock()
	delete(s.inFlight, auctionID)
}

// release notifies the oracle the asset left the active state. Oracle
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

// mustRefund reverses a fund movement staged earlier in the same call
func (s *Service) mustRefund(from, to string, amount uint64) {
	if amount == 0 {
		return
	}
	if err := s.funds.Transfer(from, to, amount); err != nil {
		panic(fmt.Sprintf("auction: refund of %d from %s failed: %v", amount, from, err))
	}
}

// mustReturnAsset sends an asset back to the seller during rollback
func (s *Service) mustReturnAsset(asset model.AssetRef, holder, seller string) {
	if err := s.registry.Transfer(asset, holder, seller, holder); err != nil {
		panic(fmt.Sprintf("auction: asset return of %s/%s failed: %v", asset.Collection, asset.Unit, err))
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
