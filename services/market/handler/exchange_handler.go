package handler

import (
	"net/http"
	"time"

	model "marketplace-engine/internal/models"
	"marketplace-engine/services/market/helpers"
	"marketplace-engine/utils"

	"github.com/gin-gonic/gin"
)

// ExchangeServiceInterface is the listing-ledger surface the handlers call
type ExchangeServiceInterface interface {
	CreateListing(asset model.AssetRef, seller string, price uint64, duration time.Duration) (model.Listing, error)
	CreateListingBatch(collection, seller string, units []string, prices []uint64, quantities []uint64, duration time.Duration) ([]model.Listing, error)
	Buy(listingID, buyer string, paid uint64) (model.Listing, error)
	BuyBatch(listingIDs []string, buyer string, paid uint64) ([]model.Listing, error)
	Cancel(listingID, caller string) (model.Listing, error)
	CancelBatch(listingIDs []string, caller string) error
	Get(listingID string) (model.Listing, error)
	ByCollection(collection string) ([]model.Listing, error)
	BySeller(seller string) ([]model.Listing, error)
}

type ExchangeHandler struct {
	service ExchangeServiceInterface
}

func NewExchangeHandler(service ExchangeServiceInterface) *ExchangeHandler {
	return &ExchangeHandler{service: service}
}

// CreateListingHandler handles POST /listings
func (h *ExchangeHandler) CreateListingHandler(c *gin.Context) {
	var req helpers.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateListingHandler", err)
		return
	}

	asset := model.AssetRef{Collection: req.Collection, Unit: req.Unit, Quantity: req.Quantity}
	listing, err := h.service.CreateListing(asset, req.Seller, req.Price, time.Duration(req.DurationSeconds)*time.Second)
	if err != nil {
		helpers.RespondError(c, "CreateListingHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewListingResponse(listing), "listing created successfully")
	helpers.LogSuccess("CreateListingHandler", "listing created successfully", map[string]any{
		"listing_id": listing.ListingID,
		"collection": req.Collection,
		"unit":       req.Unit,
		"seller":     req.Seller,
		"price":      req.Price,
	})
}

// CreateListingBatchHandler handles POST /listings/batch
func (h *ExchangeHandler) CreateListingBatchHandler(c *gin.Context) {
	var req helpers.CreateListingBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateListingBatchHandler", err)
		return
	}

	listings, err := h.service.CreateListingBatch(req.Collection, req.Seller, req.Units, req.Prices, req.Quantities, time.Duration(req.DurationSeconds)*time.Second)
	if err != nil {
		helpers.RespondError(c, "CreateListingBatchHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewListingResponses(listings), "listings created successfully")
	helpers.LogSuccess("CreateListingBatchHandler", "listings created successfully", map[string]any{
		"collection": req.Collection,
		"seller":     req.Seller,
		"count":      len(listings),
	})
}

// BuyHandler handles POST /listings/:listing_id/buy
func (h *ExchangeHandler) BuyHandler(c *gin.Context) {
	listingID := c.Param("listing_id")
	var req helpers.BuyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "BuyHandler", err)
		return
	}

	listing, err := h.service.Buy(listingID, req.Buyer, req.Paid)
	if err != nil {
		helpers.RespondError(c, "BuyHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewListingResponse(listing), "listing bought successfully")
	helpers.LogSuccess("BuyHandler", "listing bought successfully", map[string]any{
		"listing_id": listingID,
		"buyer":      req.Buyer,
		"paid":       req.Paid,
	})
}

// BuyBatchHandler handles POST /listings/buy-batch
func (h *ExchangeHandler) BuyBatchHandler(c *gin.Context) {
	var req helpers.BuyBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "BuyBatchHandler", err)
		return
	}

	listings, err := h.service.BuyBatch(req.ListingIDs, req.Buyer, req.Paid)
	if err != nil {
		helpers.RespondError(c, "BuyBatchHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewListingResponses(listings), "listings bought successfully")
	helpers.LogSuccess("BuyBatchHandler", "listings bought successfully", map[string]any{
		"buyer": req.Buyer,
		"count": len(listings),
	})
}

// CancelHandler handles POST /listings/:listing_id/cancel
func (h *ExchangeHandler) CancelHandler(c *gin.Context) {
	listingID := c.Param("listing_id")
	var req helpers.CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CancelHandler", err)
		return
	}

	listing, err := h.service.Cancel(listingID, req.Caller)
	if err != nil {
		helpers.RespondError(c, "CancelHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewListingResponse(listing), "listing cancelled successfully")
	helpers.LogSuccess("CancelHandler", "listing cancelled successfully", map[string]any{
		"listing_id": listingID,
		"caller":     req.Caller,
	})
}

// CancelBatchHandler handles POST /listings/cancel-batch
func (h *ExchangeHandler) CancelBatchHandler(c *gin.Context) {
	var req helpers.CancelBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CancelBatchHandler", err)
		return
	}

	if err := h.service.CancelBatch(req.ListingIDs, req.Caller); err != nil {
		helpers.RespondError(c, "CancelBatchHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"cancelled": len(req.ListingIDs)}, "listings cancelled successfully")
	helpers.LogSuccess("CancelBatchHandler", "listings cancelled successfully", map[string]any{
		"caller": req.Caller,
		"count":  len(req.ListingIDs),
	})
}

// GetListingHandler handles GET /listings/:listing_id
func (h *ExchangeHandler) GetListingHandler(c *gin.Context) {
	listingID := c.Param("listing_id")
	listing, err := h.service.Get(listingID)
	if err != nil {
		helpers.RespondError(c, "GetListingHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewListingResponse(listing), "listing retrieved successfully")
}

// ListingsByCollectionHandler handles GET /collections/:collection/listings
func (h *ExchangeHandler) ListingsByCollectionHandler(c *gin.Context) {
	collection := c.Param("collection")
	listings, err := h.service.ByCollection(collection)
	if err != nil {
		helpers.RespondError(c, "ListingsByCollectionHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewListingResponses(listings), "listings retrieved successfully")
}

// ListingsBySellerHandler handles GET /sellers/:seller/listings
func (h *ExchangeHandler) ListingsBySellerHandler(c *gin.Context) {
	seller := c.Param("seller")
	listings, err := h.service.BySeller(seller)
	if err != nil {
		helpers.RespondError(c, "ListingsBySellerHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewListingResponses(listings), "listings retrieved successfully")
}
