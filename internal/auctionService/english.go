package auction

import (
	"fmt"

	"marketplace-engine/internal/marketerrors"
	model "marketplace-engine/internal/models"
	"marketplace-engine/internal/payment"
)

// minNextBid returns the lowest acceptable bid given the current state.
// With no prior bid it is the start price; after that the prior highest
// plus the basis-point increment, raised at least one unit so the highest
// bid strictly increases.
func minNextBid(a model.Auction) uint64 {
	st := a.English
	if st.BidCount == 0 {
		return a.StartPrice
	}
	increment := payment.BpsOf(st.HighestBid, st.MinIncrementBps)
	if increment == 0 {
		increment = 1
	}
	return st.HighestBid + increment
}

// PlaceBid enters a new highest bid on an English auction. The displaced
// bidder's amount is credited to the refund ledger, never pushed back, so a
// hostile bidder cannot block the auction by refusing funds.
func (s *Service) PlaceBid(auctionID, bidder string, amount uint64) (model.Auction, error) {
	if err := s.acquireGuard(auctionID); err != nil {
		return model.Auction{}, fmt.Errorf("service: bid on auction %s: %w", auctionID, err)
	}
	defer s.releaseGuard(auctionID)

	a, err := s.auctions.GetAuction(auctionID)
	if err != nil {
		return model.Auction{}, fmt.Errorf("service: bid on auction %s: %w", auctionID, err)
	}
	if a.Kind != model.KindEnglish {
		return model.Auction{}, fmt.Errorf("service: bid on auction %s: %w", auctionID, marketerrors.ErrWrongAuctionKind)
	}
	if a.Status != model.AuctionActive {
		return model.Auction{}, fmt.Errorf("service: bid on auction %s: %w", auctionID, marketerrors.ErrAuctionNotActive)
	}
	now := s.now()
	if !now.Before(a.EndsAt) {
		return model.Auction{}, fmt.Errorf("service: bid on auction %s: %w", auctionID, marketerrors.ErrAuctionEnded)
	}
	if bidder == a.Seller {
		return model.Auction{}, fmt.Errorf("service: bid on auction %s: %w", auctionID, marketerrors.ErrCannotBidOwnAuction)
	}
	if min := minNextBid(a); amount < min {
		return model.Auction{}, fmt.Errorf("service: bid on auction %s: need at least %d, got %d: %w", auctionID, min, amount, marketerrors.ErrBidTooLow)
	}

	// Custody the new bid before touching auction state; a failed debit
	// leaves the call without effect.
	if err := s.funds.Transfer(bidder, EscrowAccount(auctionID), amount); err != nil {
		return model.Auction{}, fmt.Errorf("service: bid on auction %s: %w: %s", auctionID, marketerrors.ErrInsufficientFunds, err)
	}

	st := a.English
	displaced := st.HighestBidder
	displacedAmount := st.HighestBid
	if st.BidCount > 0 {
		s.auctions.CreditRefund(auctionID, displaced, displacedAmount)
	}
	st.HighestBid = amount
	st.HighestBidder = bidder
	st.BidCount++

	if st.ExtendOnBid && s.extendWindow > 0 && a.EndsAt.Sub(now) <= s.extendWindow {
		a.EndsAt = a.EndsAt.Add(s.extendWindow)
	}

	if err := s.auctions.UpdateAuction(a); err != nil {
		// revert only what this call staged: the displaced bidder may hold
		// refunds from earlier displacements
		if displaced != "" {
			s.auctions.DebitRefund(auctionID, displaced, displacedAmount)
		}
		s.mustRefund(EscrowAccount(auctionID), bidder, amount)
		return model.Auction{}, fmt.Errorf("service: bid on auction %s: %w", auctionID, err)
	}

	s.emit(model.EventAuctionBid, auctionID, a.Asset, bidder, amount)
	return a, nil
}

// Settle closes an auction whose time window has elapsed. Callable by
// anyone, including after a long delay: a highest bid meeting the reserve
// is still payable post-expiry. With no bid, or a reserve left unmet, the
// auction settles with no sale and any custodied bid becomes a refund.
func (s *Service) Settle(auctionID, caller string) (model.Auction, error) {
	if err := s.acquireGuard(auctionID); err != nil {
		return model.Auction{}, fmt.Errorf("service: settle auction %s: %w", auctionID, err)
	}
	defer s.releaseGuard(auctionID)

	a, err := s.auctions.GetAuction(auctionID)
	if err != nil {
		return model.Auction{}, fmt.Errorf("service: settle auction %s: %w", auctionID, err)
	}
	if a.Status != model.AuctionActive {
		return model.Auction{}, fmt.Errorf("service: settle auction %s: %w", auctionID, marketerrors.ErrAuctionNotActive)
	}
	if s.now().Before(a.EndsAt) {
		return model.Auction{}, fmt.Errorf("service: settle auction %s: %w", auctionID, marketerrors.ErrAuctionNotEnded)
	}

	sold := false
	var winner string
	var salePrice uint64
	if a.Kind == model.KindEnglish && a.English.BidCount > 0 {
		winner = a.English.HighestBidder
		salePrice = a.English.HighestBid
		sold = a.ReservePrice == 0 || salePrice >= a.ReservePrice
	}

	if sold {
		if err := s.settleSale(a, winner, salePrice); err != nil {
			return model.Auction{}, fmt.Errorf("service: settle auction %s: %w", auctionID, err)
		}
		a.Status = model.AuctionSettled
		s.release(a.Asset)
		s.emit(model.EventAuctionSettled, auctionID, a.Asset, winner, salePrice)
		return a, nil
	}

	// No sale: asset stays with the seller. A custodied highest bid that
	// missed the reserve turns into a withdrawable refund.
	a.Status = model.AuctionSettled
	if err := s.auctions.UpdateAuction(a); err != nil {
		return model.Auction{}, fmt.Errorf("service: settle auction %s: %w", auctionID, err)
	}
	if a.Kind == model.KindEnglish && a.English.BidCount > 0 {
		s.auctions.CreditRefund(auctionID, a.English.HighestBidder, a.English.HighestBid)
	}
	s.release(a.Asset)
	s.emit(model.EventAuctionSettled, auctionID, a.Asset, caller, 0)
	return a, nil
}

// buyNowEnglish wins the auction instantly at the configured buy-now
// price, bypassing further bidding. Available until normal settlement.
func (s *Service) buyNowEnglish(a model.Auction, buyer string, amount uint64) (model.Auction, error) {
	st := a.English
	if st.BuyNowPrice == 0 {
		return model.Auction{}, marketerrors.ErrNoBuyNowPrice
	}
	if amount < st.BuyNowPrice {
		return model.Auction{}, fmt.Errorf("need %d, got %d: %w", st.BuyNowPrice, amount, marketerrors.ErrInsufficientPayment)
	}

	escrow := EscrowAccount(a.AuctionID)
	if err := s.funds.Transfer(buyer, escrow, amount); err != nil {
		return model.Auction{}, fmt.Errorf("%w: %s", marketerrors.ErrInsufficientFunds, err)
	}

	displaced := ""
	var displacedAmount uint64
	if st.BidCount > 0 {
		displaced = st.HighestBidder
		displacedAmount = st.HighestBid
		s.auctions.CreditRefund(a.AuctionID, displaced, displacedAmount)
	}

	if err := s.settleSale(a, buyer, st.BuyNowPrice); err != nil {
		if displaced != "" {
			s.auctions.DebitRefund(a.AuctionID, displaced, displacedAmount)
		}
		s.mustRefund(escrow, buyer, amount)
		return model.Auction{}, err
	}

	a.Status = model.AuctionSettled
	s.release(a.Asset)
	s.emit(model.EventAuctionSettled, a.AuctionID, a.Asset, buyer, st.BuyNowPrice)
	return a, nil
}
