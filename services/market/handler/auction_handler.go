package handler

import (
	"net/http"
	"time"

	model "marketplace-engine/internal/models"
	"marketplace-engine/services/market/helpers"
	"marketplace-engine/utils"

	"github.com/gin-gonic/gin"
)

// AuctionServiceInterface is the auction factory/router surface the handlers call
type AuctionServiceInterface interface {
	CreateEnglish(asset model.AssetRef, seller string, startPrice, reservePrice, buyNowPrice, minIncrementBps uint64, extendOnBid bool, duration time.Duration) (model.Auction, error)
	CreateDutch(asset model.AssetRef, seller string, startPrice, endingPrice, dropAmount uint64, dropInterval, duration time.Duration) (model.Auction, error)
	PlaceBid(auctionID, bidder string, amount uint64) (model.Auction, error)
	BuyNow(auctionID, buyer string, amount uint64) (model.Auction, error)
	WithdrawRefund(auctionID, caller string) (uint64, error)
	Cancel(auctionID, caller string) (model.Auction, error)
	Settle(auctionID, caller string) (model.Auction, error)
	Get(auctionID string) (model.Auction, error)
	CurrentPrice(auctionID string) (uint64, error)
	PendingRefund(auctionID, bidder string) (uint64, error)
}

type AuctionHandler struct {
	service AuctionServiceInterface
}

func NewAuctionHandler(service AuctionServiceInterface) *AuctionHandler {
	return &AuctionHandler{service: service}
}

// CreateEnglishAuctionHandler handles POST /auctions/english
func (h *AuctionHandler) CreateEnglishAuctionHandler(c *gin.Context) {
	var req helpers.CreateEnglishAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateEnglishAuctionHandler", err)
		return
	}

	asset := model.AssetRef{Collection: req.Collection, Unit: req.Unit, Quantity: req.Quantity}
	a, err := h.service.CreateEnglish(asset, req.Seller, req.StartPrice, req.ReservePrice, req.BuyNowPrice,
		req.MinIncrementBps, req.ExtendOnBid, time.Duration(req.DurationSeconds)*time.Second)
	if err != nil {
		helpers.RespondError(c, "CreateEnglishAuctionHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewAuctionResponse(a), "auction created successfully")
	helpers.LogSuccess("CreateEnglishAuctionHandler", "auction created successfully", map[string]any{
		"auction_id":  a.AuctionID,
		"collection":  req.Collection,
		"unit":        req.Unit,
		"seller":      req.Seller,
		"start_price": req.StartPrice,
	})
}

// CreateDutchAuctionHandler handles POST /auctions/dutch
func (h *AuctionHandler) CreateDutchAuctionHandler(c *gin.Context) {
	var req helpers.CreateDutchAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateDutchAuctionHandler", err)
		return
	}

	asset := model.AssetRef{Collection: req.Collection, Unit: req.Unit, Quantity: req.Quantity}
	a, err := h.service.CreateDutch(asset, req.Seller, req.StartPrice, req.EndingPrice, req.DropAmount,
		time.Duration(req.DropIntervalSeconds)*time.Second, time.Duration(req.DurationSeconds)*time.Second)
	if err != nil {
		helpers.RespondError(c, "CreateDutchAuctionHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewAuctionResponse(a), "auction created successfully")
	helpers.LogSuccess("CreateDutchAuctionHandler", "auction created successfully", map[string]any{
		"auction_id":  a.AuctionID,
		"collection":  req.Collection,
		"unit":        req.Unit,
		"seller":      req.Seller,
		"start_price": req.StartPrice,
	})
}

// PlaceBidHandler handles POST /auctions/:auction_id/bids
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	a, err := h.service.PlaceBid(auctionID, req.Bidder, req.Amount)
	if err != nil {
		helpers.RespondError(c, "PlaceBidHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewAuctionResponse(a), "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"auction_id": auctionID,
		"bidder":     req.Bidder,
		"amount":     req.Amount,
	})
}

// BuyNowHandler handles POST /auctions/:auction_id/buy-now
func (h *AuctionHandler) BuyNowHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	var req helpers.BuyNowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "BuyNowHandler", err)
		return
	}

	a, err := h.service.BuyNow(auctionID, req.Buyer, req.Amount)
	if err != nil {
		helpers.RespondError(c, "BuyNowHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewAuctionResponse(a), "auction bought successfully")
	helpers.LogSuccess("BuyNowHandler", "auction bought successfully", map[string]any{
		"auction_id": auctionID,
		"buyer":      req.Buyer,
		"amount":     req.Amount,
	})
}

// WithdrawRefundHandler handles POST /auctions/:auction_id/withdraw
func (h *AuctionHandler) WithdrawRefundHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	var req helpers.WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "WithdrawRefundHandler", err)
		return
	}

	amount, err := h.service.WithdrawRefund(auctionID, req.Caller)
	if err != nil {
		helpers.RespondError(c, "WithdrawRefundHandler", err)
		return
	}

	resp := helpers.RefundResponse{AuctionID: auctionID, Caller: req.Caller, Amount: amount}
	utils.JSONResponse(c, http.StatusOK, resp, "refund withdrawn successfully")
	helpers.LogSuccess("WithdrawRefundHandler", "refund withdrawn successfully", map[string]any{
		"auction_id": auctionID,
		"caller":     req.Caller,
		"amount":     amount,
	})
}

// CancelAuctionHandler handles POST /auctions/:auction_id/cancel
func (h *AuctionHandler) CancelAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	var req helpers.CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CancelAuctionHandler", err)
		return
	}

	a, err := h.service.Cancel(auctionID, req.Caller)
	if err != nil {
		helpers.RespondError(c, "CancelAuctionHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewAuctionResponse(a), "auction cancelled successfully")
	helpers.LogSuccess("CancelAuctionHandler", "auction cancelled successfully", map[string]any{
		"auction_id": auctionID,
		"caller":     req.Caller,
	})
}

// SettleAuctionHandler handles POST /auctions/:auction_id/settle
func (h *AuctionHandler) SettleAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	var req helpers.CancelRequest // settle also just names the caller
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SettleAuctionHandler", err)
		return
	}

	a, err := h.service.Settle(auctionID, req.Caller)
	if err != nil {
		helpers.RespondError(c, "SettleAuctionHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewAuctionResponse(a), "auction settled successfully")
	helpers.LogSuccess("SettleAuctionHandler", "auction settled successfully", map[string]any{
		"auction_id": auctionID,
		"caller":     req.Caller,
	})
}

// GetAuctionHandler handles GET /auctions/:auction_id
func (h *AuctionHandler) GetAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	a, err := h.service.Get(auctionID)
	if err != nil {
		helpers.RespondError(c, "GetAuctionHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewAuctionResponse(a), "auction retrieved successfully")
}

// CurrentPriceHandler handles GET /auctions/:auction_id/price
func (h *AuctionHandler) CurrentPriceHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	price, err := h.service.CurrentPrice(auctionID)
	if err != nil {
		helpers.RespondError(c, "CurrentPriceHandler", err)
		return
	}

	resp := helpers.PriceResponse{AuctionID: auctionID, CurrentPrice: price}
	utils.JSONResponse(c, http.StatusOK, resp, "current price retrieved successfully")
}

// PendingRefundHandler handles GET /auctions/:auction_id/refunds/:bidder
func (h *AuctionHandler) PendingRefundHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	bidder := c.Param("bidder")
	amount, err := h.service.PendingRefund(auctionID, bidder)
	if err != nil {
		helpers.RespondError(c, "PendingRefundHandler", err)
		return
	}

	resp := helpers.RefundResponse{AuctionID: auctionID, Caller: bidder, Amount: amount}
	utils.JSONResponse(c, http.StatusOK, resp, "pending refund retrieved successfully")
}
