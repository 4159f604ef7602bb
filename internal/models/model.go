package models

import "time"

// AssetStandard classifies how a collection tracks ownership
type AssetStandard int

const (
	StandardUnknown   AssetStandard = iota
	StandardUnique                  // one owner per unit
	StandardMultiUnit               // per-holder balances per unit
)

func (s AssetStandard) String() string {
	switch s {
	case StandardUnique:
		return "unique"
	case StandardMultiUnit:
		return "multi-unit"
	default:
		return "unknown"
	}
}

// AssetRef identifies a quantity of a unit within a collection
type AssetRef struct {
	Collection string `json:"collection"`
	Unit       string `json:"unit"`
	Quantity   uint64 `json:"quantity"`
}

// ListingStatus is the lifecycle state of a fixed-price listing.
// Expired is never stored; it is derived at read time from CreatedAt+Duration.
type ListingStatus string

const (
	ListingActive    ListingStatus = "active"
	ListingSold      ListingStatus = "sold"
	ListingCancelled ListingStatus = "cancelled"
	ListingExpired   ListingStatus = "expired"
)

// Listing represents a seller's fixed-price offer for an asset
type Listing struct {
	ListingID string        `json:"listing_id"`
	Asset     AssetRef      `json:"asset"`
	Seller    string        `json:"seller"`
	Price     uint64        `json:"price"`
	CreatedAt time.Time     `json:"created_at"`
	Duration  time.Duration `json:"duration"`
	Status    ListingStatus `json:"status"`
}

// EndsAt returns the moment the listing stops being purchasable
func (l Listing) EndsAt() time.Time {
	return l.CreatedAt.Add(l.Duration)
}

// AuctionKind discriminates the two auction state machines
type AuctionKind string

const (
	KindEnglish AuctionKind = "english"
	KindDutch   AuctionKind = "dutch"
)

// AuctionStatus is the lifecycle state of an auction
type AuctionStatus string

const (
	AuctionActive    AuctionStatus = "active"
	AuctionSettled   AuctionStatus = "settled"
	AuctionCancelled AuctionStatus = "cancelled"
)

// EnglishState holds the ascending-auction fields. HighestBid is zero
// until the first bid; after that it only ever increases.
type EnglishState struct {
	HighestBid      uint64 `json:"highest_bid"`
	HighestBidder   string `json:"highest_bidder"`
	BidCount        uint64 `json:"bid_count"`
	MinIncrementBps uint64 `json:"min_increment_bps"`
	BuyNowPrice     uint64 `json:"buy_now_price"` // 0 = disabled
	ExtendOnBid     bool   `json:"extend_on_bid"`
}

// DutchState holds the descending price schedule. The current price is
// always computed from these fields and the clock, never stored.
type DutchState struct {
	EndingPrice  uint64        `json:"ending_price"`
	DropAmount   uint64        `json:"drop_amount"`
	DropInterval time.Duration `json:"drop_interval"`
}

// Auction is the shared record for both auction kinds. Exactly one of
// English/Dutch is non-nil, matching Kind.
type Auction struct {
	AuctionID    string        `json:"auction_id"`
	Asset        AssetRef      `json:"asset"`
	Seller       string        `json:"seller"`
	StartPrice   uint64        `json:"start_price"`
	ReservePrice uint64        `json:"reserve_price"` // 0 = none
	CreatedAt    time.Time     `json:"created_at"`
	Duration     time.Duration `json:"duration"`
	EndsAt       time.Time     `json:"ends_at"` // may move forward under anti-snipe extension
	Kind         AuctionKind   `json:"kind"`
	Status       AuctionStatus `json:"status"`
	English      *EnglishState `json:"english,omitempty"`
	Dutch        *DutchState   `json:"dutch,omitempty"`
}

// Event is the notification payload emitted on every state transition
type Event struct {
	Name   string    `json:"name"`
	ID     string    `json:"id"`
	Asset  AssetRef  `json:"asset"`
	Actor  string    `json:"actor"`
	Amount uint64    `json:"amount"`
	At     time.Time `json:"at"`
}

// Event names, one per observable transition
const (
	EventListingCreated   = "listing_created"
	EventListingSold      = "listing_sold"
	EventListingCancelled = "listing_cancelled"
	EventAuctionCreated   = "auction_created"
	EventAuctionBid       = "auction_bid"
	EventAuctionSettled   = "auction_settled"
	EventAuctionCancelled = "auction_cancelled"
	EventRefundWithdrawn  = "refund_withdrawn"
)
