package auction

import (
	"fmt"
	"time"

	"marketplace-engine/internal/marketerrors"
	model "marketplace-engine/internal/models"
)

// dutchPrice evaluates the descending price schedule at a moment in time:
// one drop per full interval elapsed, floored at the ending price. Pure
// function of the stored parameters; nothing is ever written back.
func dutchPrice(a model.Auction, at time.Time) uint64 {
	st := a.Dutch
	elapsed := at.Sub(a.CreatedAt)
	if elapsed <= 0 {
		return a.StartPrice
	}
	intervals := uint64(elapsed / st.DropInterval)
	drop := intervals * st.DropAmount
	if drop >= a.StartPrice || a.StartPrice-drop < st.EndingPrice {
		return st.EndingPrice
	}
	return a.StartPrice - drop
}

// CurrentPrice returns what a Dutch auction costs right now
func (s *Service) CurrentPrice(auctionID string) (uint64, error) {
	a, err := s.auctions.GetAuction(auctionID)
	if err != nil {
		return 0, fmt.Errorf("service: current price of auction %s: %w", auctionID, err)
	}
	if a.Kind != model.KindDutch {
		return 0, fmt.Errorf("service: current price of auction %s: %w", auctionID, marketerrors.ErrWrongAuctionKind)
	}
	return dutchPrice(a, s.now()), nil
}

// BuyNow routes an instant purchase to the owning state machine: for a
// Dutch auction it buys at the current decayed price, for an English
// auction at the configured buy-now price.
func (s *Service) BuyNow(auctionID, buyer string, amount uint64) (model.Auction, error) {
	if err := s.acquireGuard(auctionID); err != nil {
		return model.Auction{}, fmt.Errorf("service: buy now on auction %s: %w", auctionID, err)
	}
	defer s.releaseGuard(auctionID)

	a, err := s.auctions.GetAuction(auctionID)
	if err != nil {
		return model.Auction{}, fmt.Errorf("service: buy now on auction %s: %w", auctionID, err)
	}
	if a.Status != model.AuctionActive {
		return model.Auction{}, fmt.Errorf("service: buy now on auction %s: %w", auctionID, marketerrors.ErrAuctionNotActive)
	}
	if buyer == a.Seller {
		return model.Auction{}, fmt.Errorf("service: buy now on auction %s: %w", auctionID, marketerrors.ErrCannotBidOwnAuction)
	}

	var settled model.Auction
	switch a.Kind {
	case model.KindEnglish:
		settled, err = s.buyNowEnglish(a, buyer, amount)
	case model.KindDutch:
		settled, err = s.buyNowDutch(a, buyer, amount)
	default:
		err = marketerrors.ErrWrongAuctionKind
	}
	if err != nil {
		return model.Auction{}, fmt.Errorf("service: buy now on auction %s: %w", auctionID, err)
	}
	return settled, nil
}

// buyNowDutch settles a Dutch auction at its current price. Only valid
// inside the time window; after that the schedule is dead and the auction
// can only be settled with no sale.
func (s *Service) buyNowDutch(a model.Auction, buyer string, amount uint64) (model.Auction, error) {
	now := s.now()
	if !now.Before(a.EndsAt) {
		return model.Auction{}, marketerrors.ErrAuctionEnded
	}
	price := dutchPrice(a, now)
	if amount < price {
		return model.Auction{}, fmt.Errorf("need %d, got %d: %w", price, amount, marketerrors.ErrInsufficientPayment)
	}

	escrow := EscrowAccount(a.AuctionID)
	if err := s.funds.Transfer(buyer, escrow, amount); err != nil {
		return model.Auction{}, fmt.Errorf("%w: %s", marketerrors.ErrInsufficientFunds, err)
	}
	if err := s.settleSale(a, buyer, price); err != nil {
		s.mustRefund(escrow, buyer, amount)
		return model.Auction{}, err
	}

	a.Status = model.AuctionSettled
	s.release(a.Asset)
	s.emit(model.EventAuctionSettled, a.AuctionID, a.Asset, buyer, price)
	return a, nil
}
