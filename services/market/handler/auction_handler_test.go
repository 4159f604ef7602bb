package handler

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"marketplace-engine/internal/marketerrors"
	model "marketplace-engine/internal/models"
	"marketplace-engine/services/market/helpers"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func sampleEnglish(id string, status model.AuctionStatus) model.Auction {
	created := time.Now().UTC()
	return model.Auction{
		AuctionID:  id,
		Asset:      model.AssetRef{Collection: "kitties", Unit: "7", Quantity: 1},
		Seller:     "alice",
		StartPrice: 100,
		CreatedAt:  created,
		Duration:   time.Hour,
		EndsAt:     created.Add(time.Hour),
		Kind:       model.KindEnglish,
		Status:     status,
		English:    &model.EnglishState{MinIncrementBps: 500},
	}
}

// Test CreateEnglishAuctionHandler and CreateDutchAuctionHandler
func TestCreateAuctionHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAuctionServiceInterface(ctrl)
	handler := NewAuctionHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/auctions/english", handler.CreateEnglishAuctionHandler)
	router.POST("/auctions/dutch", handler.CreateDutchAuctionHandler)

	tests := []struct {
		name           string
		path           string
		requestBody    any
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
		validateData   func(t *testing.T, data map[string]any)
	}{
		{
			name: "english_success",
			path: "/auctions/english",
			requestBody: helpers.CreateEnglishAuctionRequest{
				Collection: "kitties", Unit: "7", Quantity: 1, Seller: "alice",
				StartPrice: 100, ReservePrice: 200, BuyNowPrice: 500,
				MinIncrementBps: 500, ExtendOnBid: true, DurationSeconds: 3600,
			},
			mockSetup: func() {
				mockService.EXPECT().
					CreateEnglish(model.AssetRef{Collection: "kitties", Unit: "7", Quantity: 1}, "alice",
						uint64(100), uint64(200), uint64(500), uint64(500), true, time.Hour).
					Return(sampleEnglish("a1", model.AuctionActive), nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "auction created successfully",
			validateData: func(t *testing.T, data map[string]any) {
				require.Equal(t, "a1", data["auction_id"])
				require.Equal(t, "english", data["kind"])
				require.Equal(t, "active", data["status"])
			},
		},
		{
			name: "english_reserve_below_start",
			path: "/auctions/english",
			requestBody: helpers.CreateEnglishAuctionRequest{
				Collection: "kitties", Unit: "7", Seller: "alice",
				StartPrice: 100, ReservePrice: 50, DurationSeconds: 3600,
			},
			mockSetup: func() {
				mockService.EXPECT().
					CreateEnglish(gomock.Any(), "alice", uint64(100), uint64(50), uint64(0),
						uint64(0), false, time.Hour).
					Return(model.Auction{}, marketerrors.ErrReserveBelowStart)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request",
		},
		{
			name: "dutch_success",
			path: "/auctions/dutch",
			requestBody: helpers.CreateDutchAuctionRequest{
				Collection: "kitties", Unit: "7", Quantity: 1, Seller: "alice",
				StartPrice: 1000, EndingPrice: 200, DropAmount: 200,
				DropIntervalSeconds: 3600, DurationSeconds: 14400,
			},
			mockSetup: func() {
				a := sampleEnglish("a2", model.AuctionActive)
				a.Kind = model.KindDutch
				a.English = nil
				a.Dutch = &model.DutchState{EndingPrice: 200, DropAmount: 200, DropInterval: time.Hour}
				mockService.EXPECT().
					CreateDutch(model.AssetRef{Collection: "kitties", Unit: "7", Quantity: 1}, "alice",
						uint64(1000), uint64(200), uint64(200), time.Hour, 4*time.Hour).
					Return(a, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "auction created successfully",
			validateData: func(t *testing.T, data map[string]any) {
				require.Equal(t, "dutch", data["kind"])
				require.Equal(t, float64(200), data["ending_price"])
			},
		},
		{
			name:           "dutch_invalid_json",
			path:           "/auctions/dutch",
			requestBody:    `{not json`,
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "english_missing_duration",
			path: "/auctions/english",
			requestBody: helpers.CreateEnglishAuctionRequest{
				Collection: "kitties", Unit: "7", Seller: "alice", StartPrice: 100,
			},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			w, resp := doJSON(t, router, http.MethodPost, tc.path, tc.requestBody)

			require.Equal(t, tc.expectedStatus, w.Code)
			require.Contains(t, resp["message"], tc.expectedMsg)

			if tc.validateData != nil && w.Code == http.StatusCreated {
				tc.validateData(t, resp["data"].(map[string]any))
			}
		})
	}
}

// Test PlaceBidHandler
func TestPlaceBidHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAuctionServiceInterface(ctrl)
	handler := NewAuctionHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/auctions/:auction_id/bids", handler.PlaceBidHandler)

	tests := []struct {
		name           string
		auctionID      string
		requestBody    any
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:        "success",
			auctionID:   "a1",
			requestBody: helpers.PlaceBidRequest{Bidder: "bob", Amount: 105},
			mockSetup: func() {
				a := sampleEnglish("a1", model.AuctionActive)
				a.English.HighestBid = 105
				a.English.HighestBidder = "bob"
				a.English.BidCount = 1
				mockService.EXPECT().PlaceBid("a1", "bob", uint64(105)).Return(a, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "bid placed successfully",
		},
		{
			name:        "bid_too_low",
			auctionID:   "a1",
			requestBody: helpers.PlaceBidRequest{Bidder: "bob", Amount: 10},
			mockSetup: func() {
				mockService.EXPECT().PlaceBid("a1", "bob", uint64(10)).
					Return(model.Auction{}, marketerrors.ErrBidTooLow)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "conflicting state",
		},
		{
			name:        "insufficient_funds",
			auctionID:   "a1",
			requestBody: helpers.PlaceBidRequest{Bidder: "bob", Amount: 105},
			mockSetup: func() {
				mockService.EXPECT().PlaceBid("a1", "bob", uint64(105)).
					Return(model.Auction{}, marketerrors.ErrInsufficientFunds)
			},
			expectedStatus: http.StatusPaymentRequired,
			expectedMsg:    "payment failed",
		},
		{
			name:        "seller_bids_own_auction",
			auctionID:   "a1",
			requestBody: helpers.PlaceBidRequest{Bidder: "alice", Amount: 105},
			mockSetup: func() {
				mockService.EXPECT().PlaceBid("a1", "alice", uint64(105)).
					Return(model.Auction{}, marketerrors.ErrCannotBidOwnAuction)
			},
			expectedStatus: http.StatusForbidden,
			expectedMsg:    "not allowed",
		},
		{
			name:        "auction_not_found",
			auctionID:   "missing",
			requestBody: helpers.PlaceBidRequest{Bidder: "bob", Amount: 105},
			mockSetup: func() {
				mockService.EXPECT().PlaceBid("missing", "bob", uint64(105)).
					Return(model.Auction{}, marketerrors.ErrAuctionNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "record not found",
		},
		{
			name:           "zero_amount_fails_binding",
			auctionID:      "a1",
			requestBody:    helpers.PlaceBidRequest{Bidder: "bob", Amount: 0},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			w, resp := doJSON(t, router, http.MethodPost, "/auctions/"+tc.auctionID+"/bids", tc.requestBody)

			require.Equal(t, tc.expectedStatus, w.Code)
			require.Contains(t, resp["message"], tc.expectedMsg)
		})
	}
}

// Test the settlement-side handlers: buy-now, settle, cancel, withdraw
func TestAuctionLifecycleHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAuctionServiceInterface(ctrl)
	handler := NewAuctionHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/auctions/:auction_id/buy-now", handler.BuyNowHandler)
	router.POST("/auctions/:auction_id/settle", handler.SettleAuctionHandler)
	router.POST("/auctions/:auction_id/cancel", handler.CancelAuctionHandler)
	router.POST("/auctions/:auction_id/withdraw", handler.WithdrawRefundHandler)

	t.Run("buy_now_success", func(t *testing.T) {
		settled := sampleEnglish("a1", model.AuctionSettled)
		mockService.EXPECT().BuyNow("a1", "bob", uint64(500)).Return(settled, nil)

		w, resp := doJSON(t, router, http.MethodPost, "/auctions/a1/buy-now",
			helpers.BuyNowRequest{Buyer: "bob", Amount: 500})

		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, resp["message"], "auction bought successfully")
		data := resp["data"].(map[string]any)
		require.Equal(t, "settled", data["status"])
	})

	t.Run("buy_now_not_configured", func(t *testing.T) {
		mockService.EXPECT().BuyNow("a1", "bob", uint64(500)).
			Return(model.Auction{}, marketerrors.ErrNoBuyNowPrice)

		w, resp := doJSON(t, router, http.MethodPost, "/auctions/a1/buy-now",
			helpers.BuyNowRequest{Buyer: "bob", Amount: 500})

		require.Equal(t, http.StatusConflict, w.Code)
		require.Contains(t, resp["message"], "conflicting state")
	})

	t.Run("settle_success", func(t *testing.T) {
		mockService.EXPECT().Settle("a1", "anyone").
			Return(sampleEnglish("a1", model.AuctionSettled), nil)

		w, resp := doJSON(t, router, http.MethodPost, "/auctions/a1/settle",
			helpers.CancelRequest{Caller: "anyone"})

		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, resp["message"], "auction settled successfully")
	})

	t.Run("settle_before_close", func(t *testing.T) {
		mockService.EXPECT().Settle("a1", "anyone").
			Return(model.Auction{}, marketerrors.ErrAuctionNotEnded)

		w, _ := doJSON(t, router, http.MethodPost, "/auctions/a1/settle",
			helpers.CancelRequest{Caller: "anyone"})

		require.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("settle_generic_failure", func(t *testing.T) {
		mockService.EXPECT().Settle("a1", "anyone").
			Return(model.Auction{}, errors.New("store failure"))

		w, resp := doJSON(t, router, http.MethodPost, "/auctions/a1/settle",
			helpers.CancelRequest{Caller: "anyone"})

		require.Equal(t, http.StatusInternalServerError, w.Code)
		require.Contains(t, resp["message"], "internal server error")
	})

	t.Run("cancel_with_bids", func(t *testing.T) {
		mockService.EXPECT().Cancel("a1", "alice").
			Return(model.Auction{}, marketerrors.ErrAuctionHasBids)

		w, _ := doJSON(t, router, http.MethodPost, "/auctions/a1/cancel",
			helpers.CancelRequest{Caller: "alice"})

		require.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("cancel_success", func(t *testing.T) {
		mockService.EXPECT().Cancel("a1", "alice").
			Return(sampleEnglish("a1", model.AuctionCancelled), nil)

		w, resp := doJSON(t, router, http.MethodPost, "/auctions/a1/cancel",
			helpers.CancelRequest{Caller: "alice"})

		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, resp["message"], "auction cancelled successfully")
	})

	t.Run("withdraw_success", func(t *testing.T) {
		mockService.EXPECT().WithdrawRefund("a1", "bob").Return(uint64(100), nil)

		w, resp := doJSON(t, router, http.MethodPost, "/auctions/a1/withdraw",
			helpers.WithdrawRequest{Caller: "bob"})

		require.Equal(t, http.StatusOK, w.Code)
		data := resp["data"].(map[string]any)
		require.Equal(t, float64(100), data["amount"])
		require.Equal(t, "bob", data["caller"])
	})

	t.Run("withdraw_missing_caller", func(t *testing.T) {
		w, resp := doJSON(t, router, http.MethodPost, "/auctions/a1/withdraw",
			helpers.WithdrawRequest{})

		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Contains(t, resp["message"], "invalid request payload")
	})
}

// Test the auction read handlers
func TestAuctionReadHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAuctionServiceInterface(ctrl)
	handler := NewAuctionHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/auctions/:auction_id", handler.GetAuctionHandler)
	router.GET("/auctions/:auction_id/price", handler.CurrentPriceHandler)
	router.GET("/auctions/:auction_id/refunds/:bidder", handler.PendingRefundHandler)

	t.Run("get_auction", func(t *testing.T) {
		mockService.EXPECT().Get("a1").Return(sampleEnglish("a1", model.AuctionActive), nil)

		w, resp := doJSON(t, router, http.MethodGet, "/auctions/a1", nil)

		require.Equal(t, http.StatusOK, w.Code)
		data := resp["data"].(map[string]any)
		require.Equal(t, "a1", data["auction_id"])
		require.Equal(t, float64(500), data["min_increment_bps"])
	})

	t.Run("get_auction_not_found", func(t *testing.T) {
		mockService.EXPECT().Get("nope").Return(model.Auction{}, marketerrors.ErrAuctionNotFound)

		w, _ := doJSON(t, router, http.MethodGet, "/auctions/nope", nil)
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("current_price", func(t *testing.T) {
		mockService.EXPECT().CurrentPrice("a2").Return(uint64(400), nil)

		w, resp := doJSON(t, router, http.MethodGet, "/auctions/a2/price", nil)

		require.Equal(t, http.StatusOK, w.Code)
		data := resp["data"].(map[string]any)
		require.Equal(t, float64(400), data["current_price"])
	})

	t.Run("current_price_wrong_kind", func(t *testing.T) {
		mockService.EXPECT().CurrentPrice("a1").
			Return(uint64(0), marketerrors.ErrWrongAuctionKind)

		w, _ := doJSON(t, router, http.MethodGet, "/auctions/a1/price", nil)
		require.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("pending_refund", func(t *testing.T) {
		mockService.EXPECT().PendingRefund("a1", "bob").Return(uint64(100), nil)

		w, resp := doJSON(t, router, http.MethodGet, "/auctions/a1/refunds/bob", nil)

		require.Equal(t, http.StatusOK, w.Code)
		data := resp["data"].(map[string]any)
		require.Equal(t, float64(100), data["amount"])
	})
}
