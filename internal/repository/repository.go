package repository

import (
	model "marketplace-engine/internal/models"
)

// ListingStore defines the listing record storage for the exchange engine
type ListingStore interface {
	CreateListing(l model.Listing) error
	GetListing(listingID string) (model.Listing, error)
	ActiveListingByAsset(collection, unit string) (model.Listing, bool)
	ListingsByCollection(collection string) ([]model.Listing, error)
	ListingsBySeller(seller string) ([]model.Listing, error)
	MarkListingSold(listingID string) error
	MarkListingCancelled(listingID string) error
	MarkListingExpired(listingID string) error
	ReinstateListing(listingID string) error
	DeleteListing(listingID string) error
}

// AuctionStore defines the auction record and refund ledger storage
type AuctionStore interface {
	CreateAuction(a model.Auction) error
	GetAuction(auctionID string) (model.Auction, error)
	UpdateAuction(a model.Auction) error
	ActiveAuctionByAsset(collection, unit string) (model.Auction, bool)
	CreditRefund(auctionID, bidder string, amount uint64)
	DebitRefund(auctionID, bidder string, amount uint64)
	TakeRefund(auctionID, bidder string) uint64
	PendingRefund(auctionID, bidder string) uint64
}
