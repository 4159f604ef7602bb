package helpers

import (
	model "marketplace-engine/internal/models"
)

// Request DTOs

type CreateListingRequest struct {
	Collection      string `json:"collection" binding:"required"`
	Unit            string `json:"unit" binding:"required"`
	Quantity        uint64 `json:"quantity"`
	Seller          string `json:"seller" binding:"required"`
	Price           uint64 `json:"price" binding:"required,gt=0"`
	DurationSeconds int64  `json:"duration_seconds" binding:"required,gt=0"`
}

type CreateListingBatchRequest struct {
	Collection      string   `json:"collection" binding:"required"`
	Seller          string   `json:"seller" binding:"required"`
	Units           []string `json:"units" binding:"required"`
	Prices          []uint64 `json:"prices" binding:"required"`
	Quantities      []uint64 `json:"quantities" binding:"required"`
	DurationSeconds int64    `json:"duration_seconds" binding:"required,gt=0"`
}

type BuyRequest struct {
	Buyer string `json:"buyer" binding:"required"`
	Paid  uint64 `json:"paid" binding:"required,gt=0"`
}

type BuyBatchRequest struct {
	ListingIDs []string `json:"listing_ids" binding:"required"`
	Buyer      string   `json:"buyer" binding:"required"`
	Paid       uint64   `json:"paid" binding:"required,gt=0"`
}

type CancelRequest struct {
	Caller string `json:"caller" binding:"required"`
}

type CancelBatchRequest struct {
	ListingIDs []string `json:"listing_ids" binding:"required"`
	Caller     string   `json:"caller" binding:"required"`
}

type CreateEnglishAuctionRequest struct {
	Collection      string `json:"collection" binding:"required"`
	Unit            string `json:"unit" binding:"required"`
	Quantity        uint64 `json:"quantity"`
	Seller          string `json:"seller" binding:"required"`
	StartPrice      uint64 `json:"start_price" binding:"required,gt=0"`
	ReservePrice    uint64 `json:"reserve_price"`
	BuyNowPrice     uint64 `json:"buy_now_price"`
	MinIncrementBps uint64 `json:"min_increment_bps"`
	ExtendOnBid     bool   `json:"extend_on_bid"`
	DurationSeconds int64  `json:"duration_seconds" binding:"required,gt=0"`
}

type CreateDutchAuctionRequest struct {
	Collection          string `json:"collection" binding:"required"`
	Unit                string `json:"unit" binding:"required"`
	Quantity            uint64 `json:"quantity"`
	Seller              string `json:"seller" binding:"required"`
	StartPrice          uint64 `json:"start_price" binding:"required,gt=0"`
	EndingPrice         uint64 `json:"ending_price"`
	DropAmount          uint64 `json:"drop_amount" binding:"required,gt=0"`
	DropIntervalSeconds int64  `json:"drop_interval_seconds" binding:"required,gt=0"`
	DurationSeconds     int64  `json:"duration_seconds" binding:"required,gt=0"`
}

type PlaceBidRequest struct {
	Bidder string `json:"bidder" binding:"required"`
	Amount uint64 `json:"amount" binding:"required,gt=0"`
}

type BuyNowRequest struct {
	Buyer  string `json:"buyer" binding:"required"`
	Amount uint64 `json:"amount" binding:"required,gt=0"`
}

type WithdrawRequest struct {
	Caller string `json:"caller" binding:"required"`
}

// Response DTOs

type ListingResponse struct {
	ListingID       string `json:"listing_id"`
	Collection      string `json:"collection"`
	Unit            string `json:"unit"`
	Quantity        uint64 `json:"quantity"`
	Seller          string `json:"seller"`
	Price           uint64 `json:"price"`
	CreatedAt       string `json:"created_at"`
	DurationSeconds int64  `json:"duration_seconds"`
	Status          string `json:"status"`
}

type AuctionResponse struct {
	AuctionID       string `json:"auction_id"`
	Kind            string `json:"kind"`
	Collection      string `json:"collection"`
	Unit            string `json:"unit"`
	Quantity        uint64 `json:"quantity"`
	Seller          string `json:"seller"`
	StartPrice      uint64 `json:"start_price"`
	ReservePrice    uint64 `json:"reserve_price"`
	CreatedAt       string `json:"created_at"`
	EndsAt          string `json:"ends_at"`
	DurationSeconds int64  `json:"duration_seconds"`
	Status          string `json:"status"`

	HighestBid      uint64 `json:"highest_bid,omitempty"`
	HighestBidder   string `json:"highest_bidder,omitempty"`
	BidCount        uint64 `json:"bid_count,omitempty"`
	MinIncrementBps uint64 `json:"min_increment_bps,omitempty"`
	BuyNowPrice     uint64 `json:"buy_now_price,omitempty"`
	ExtendOnBid     bool   `json:"extend_on_bid,omitempty"`

	EndingPrice         uint64 `json:"ending_price,omitempty"`
	DropAmount          uint64 `json:"drop_amount,omitempty"`
	DropIntervalSeconds int64  `json:"drop_interval_seconds,omitempty"`
}

type RefundResponse struct {
	AuctionID string `json:"auction_id"`
	Caller    string `json:"caller"`
	Amount    uint64 `json:"amount"`
}

type PriceResponse struct {
	AuctionID    string `json:"auction_id"`
	CurrentPrice uint64 `json:"current_price"`
}

// NewListingResponse maps a listing record to its wire shape
func NewListingResponse(l model.Listing) ListingResponse {
	return ListingResponse{
		ListingID:       l.ListingID,
		Collection:      l.Asset.Collection,
		Unit:            l.Asset.Unit,
		Quantity:        l.Asset.Quantity,
		Seller:          l.Seller,
		Price:           l.Price,
		CreatedAt:       l.CreatedAt.UTC().Format(timeFormat),
		DurationSeconds: int64(l.Duration.Seconds()),
		Status:          string(l.Status),
	}
}

// NewListingResponses maps a slice of listing records
func NewListingResponses(listings []model.Listing) []ListingResponse {
	out := make([]ListingResponse, len(listings))
	for i, l := range listings {
		out[i] = NewListingResponse(l)
	}
	return out
}

// NewAuctionResponse maps an auction record to its wire shape
func NewAuctionResponse(a model.Auction) AuctionResponse {
	resp := AuctionResponse{
		AuctionID:       a.AuctionID,
		Kind:            string(a.Kind),
		Collection:      a.Asset.Collection,
		Unit:            a.Asset.Unit,
		Quantity:        a.Asset.Quantity,
		Seller:          a.Seller,
		StartPrice:      a.StartPrice,
		ReservePrice:    a.ReservePrice,
		CreatedAt:       a.CreatedAt.UTC().Format(timeFormat),
		EndsAt:          a.EndsAt.UTC().Format(timeFormat),
		DurationSeconds: int64(a.Duration.Seconds()),
		Status:          string(a.Status),
	}
	if a.English != nil {
		resp.HighestBid = a.English.HighestBid
		resp.HighestBidder = a.English.HighestBidder
		resp.BidCount = a.English.BidCount
		resp.MinIncrementBps = a.English.MinIncrementBps
		resp.BuyNowPrice = a.English.BuyNowPrice
		resp.ExtendOnBid = a.English.ExtendOnBid
	}
	if a.Dutch != nil {
		resp.EndingPrice = a.Dutch.EndingPrice
		resp.DropAmount = a.Dutch.DropAmount
		resp.DropIntervalSeconds = int64(a.Dutch.DropInterval.Seconds())
	}
	return resp
}

const timeFormat = "2006-01-02T15:04:05Z07:00"
