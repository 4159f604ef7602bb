package server

import (
	handler "marketplace-engine/services/market/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the marketplace engine
func SetupRouter(exchangeService handler.ExchangeServiceInterface, auctionService handler.AuctionServiceInterface) *gin.Engine {
	router := gin.New() // no default middleware, logging stays under our control

	router.Use(gin.Recovery())
	router.Use(RequestLoggerMiddleware)

	exchangeHandler := handler.NewExchangeHandler(exchangeService)
	auctionHandler := handler.NewAuctionHandler(auctionService)

	listings := router.Group("/listings")
	{
		listings.POST("", exchangeHandler.CreateListingHandler)
		listings.POST("/batch", exchangeHandler.CreateListingBatchHandler)
		listings.POST("/buy-batch", exchangeHandler.BuyBatchHandler)
		listings.POST("/cancel-batch", exchangeHandler.CancelBatchHandler)
		listings.POST("/:listing_id/buy", exchangeHandler.BuyHandler)
		listings.POST("/:listing_id/cancel", exchangeHandler.CancelHandler)
		listings.GET("/:listing_id", exchangeHandler.GetListingHandler)
	}

	collections := router.Group("/collections")
	{
		collections.GET("/:collection/listings", exchangeHandler.ListingsByCollectionHandler)
	}

	sellers := router.Group("/sellers")
	{
		sellers.GET("/:seller/listings", exchangeHandler.ListingsBySellerHandler)
	}

	auctions := router.Group("/auctions")
	{
		auctions.POST("/english", auctionHandler.CreateEnglishAuctionHandler)
		auctions.POST("/dutch", auctionHandler.CreateDutchAuctionHandler)
		auctions.POST("/:auction_id/bids", auctionHandler.PlaceBidHandler)
		auctions.POST("/:auction_id/buy-now", auctionHandler.BuyNowHandler)
		auctions.POST("/:auction_id/withdraw", auctionHandler.WithdrawRefundHandler)
		auctions.POST("/:auction_id/cancel", auctionHandler.CancelAuctionHandler)
		auctions.POST("/:auction_id/settle", auctionHandler.SettleAuctionHandler)
		auctions.GET("/:auction_id", auctionHandler.GetAuctionHandler)
		auctions.GET("/:auction_id/price", auctionHandler.CurrentPriceHandler)
		auctions.GET("/:auction_id/refunds/:bidder", auctionHandler.PendingRefundHandler)
	}

	return router
}
