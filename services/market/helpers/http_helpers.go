package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"marketplace-engine/internal/marketerrors"
	"marketplace-engine/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps engine errors to an HTTP status and caller message.
// Matching is on sentinel identity, never on message text.
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, marketerrors.ErrListingNotFound),
		errors.Is(err, marketerrors.ErrAuctionNotFound):
		return http.StatusNotFound, "record not found"

	case errors.Is(err, marketerrors.ErrPriceMustBePositive),
		errors.Is(err, marketerrors.ErrDurationMustBePositive),
		errors.Is(err, marketerrors.ErrQuantityMustBePositive),
		errors.Is(err, marketerrors.ErrBatchLengthMismatch),
		errors.Is(err, marketerrors.ErrReserveBelowStart),
		errors.Is(err, marketerrors.ErrBuyNowBelowStart),
		errors.Is(err, marketerrors.ErrInvalidPriceSchedule),
		errors.Is(err, marketerrors.ErrUnknownAsset):
		return http.StatusBadRequest, "invalid request"

	case errors.Is(err, marketerrors.ErrNotOwner),
		errors.Is(err, marketerrors.ErrNotAuthorized),
		errors.Is(err, marketerrors.ErrNotSeller),
		errors.Is(err, marketerrors.ErrCannotBuyOwnListing),
		errors.Is(err, marketerrors.ErrCannotBidOwnAuction):
		return http.StatusForbidden, "not allowed"

	case errors.Is(err, marketerrors.ErrInsufficientPayment),
		errors.Is(err, marketerrors.ErrInsufficientFunds),
		errors.Is(err, marketerrors.ErrTransferFailed):
		return http.StatusPaymentRequired, "payment failed"

	case errors.Is(err, marketerrors.ErrAlreadyListed),
		errors.Is(err, marketerrors.ErrListingNotActive),
		errors.Is(err, marketerrors.ErrListingExpired),
		errors.Is(err, marketerrors.ErrAuctionNotActive),
		errors.Is(err, marketerrors.ErrAuctionEnded),
		errors.Is(err, marketerrors.ErrAuctionNotEnded),
		errors.Is(err, marketerrors.ErrAuctionHasBids),
		errors.Is(err, marketerrors.ErrNoBuyNowPrice),
		errors.Is(err, marketerrors.ErrWrongAuctionKind),
		errors.Is(err, marketerrors.ErrMixedCollections),
		errors.Is(err, marketerrors.ErrSettlementInProgress),
		errors.Is(err, marketerrors.ErrBidTooLow):
		return http.StatusConflict, "conflicting state"

	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess standardizes logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}

// RespondError writes the mapped error envelope and logs it
func RespondError(c *gin.Context, handlerName string, err error) {
	status, message := MapErrorToHTTP(err)
	utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
	utils.Warn(handlerName+": request failed", map[string]any{"error": err.Error()})
}
