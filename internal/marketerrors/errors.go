package marketerrors

import "errors"

// Validation errors: rejected before any state change
var (
	ErrPriceMustBePositive    = errors.New("price must be positive")
	ErrDurationMustBePositive = errors.New("duration must be positive")
	ErrQuantityMustBePositive = errors.New("quantity must be positive")
	ErrBatchLengthMismatch    = errors.New("batch array lengths mismatch")
	ErrReserveBelowStart      = errors.New("reserve price below start price")
	ErrBuyNowBelowStart       = errors.New("buy-now price must exceed start price")
	ErrInvalidPriceSchedule   = errors.New("invalid price drop schedule")
	ErrUnknownAsset           = errors.New("unknown asset")
)

// Authorization errors
var (
	ErrNotOwner            = errors.New("caller is not the asset owner")
	ErrNotAuthorized       = errors.New("caller lacks transfer authorization")
	ErrNotSeller           = errors.New("caller is not the seller")
	ErrCannotBuyOwnListing = errors.New("cannot buy own listing")
	ErrCannotBidOwnAuction = errors.New("cannot bid on own auction")
)

// State errors
var (
	ErrAlreadyListed        = errors.New("asset already listed or in auction")
	ErrListingNotFound      = errors.New("listing not found")
	ErrListingNotActive     = errors.New("listing not active")
	ErrListingExpired       = errors.New("listing expired")
	ErrAuctionNotFound      = errors.New("auction not found")
	ErrAuctionNotActive     = errors.New("auction not active")
	ErrAuctionEnded         = errors.New("auction has ended")
	ErrAuctionNotEnded      = errors.New("auction has not ended yet")
	ErrAuctionHasBids       = errors.New("auction has bids and cannot be cancelled")
	ErrNoBuyNowPrice        = errors.New("auction has no buy-now price")
	ErrWrongAuctionKind     = errors.New("operation not supported for this auction type")
	ErrMixedCollections     = errors.New("batch mixes asset collections")
	ErrSettlementInProgress = errors.New("settlement already in progress")
)

// Payment errors: detected on buy/settle paths, staged state is rolled back
var (
	ErrBidTooLow           = errors.New("bid amount too low")
	ErrInsufficientPayment = errors.New("insufficient payment")
	ErrInsufficientFunds   = errors.New("insufficient funds")
	ErrTransferFailed      = errors.New("transfer failed")
)
