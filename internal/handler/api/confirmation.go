package api

import (
	"log/slog"
	"net/http"

	reqdto "booking-reconciler/internal/handler/dto/request"
	resdto "booking-reconciler/internal/handler/dto/response"
	"booking-reconciler/internal/handler/middleware"
	"booking-reconciler/internal/pkg/config"
	"booking-reconciler/internal/pkg/cookie"
	"booking-reconciler/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ConfirmationHandler struct {
	uc        usecase.ConfirmationUseCase
	cookieCfg config.CookieConfig
}

func NewConfirmationHandler(uc usecase.ConfirmationUseCase, cookieCfg config.CookieConfig) *ConfirmationHandler {
	return &ConfirmationHandler{uc: uc, cookieCfg: cookieCfg}
}

// @Summary Checkout confirmation
// @Description Identify the booking created by a completed payment, recovering it when necessary. Always answers 200.
// @Tags checkout
// @Produce json
// @Param booking_id query string false "Booking id or booking number"
// @Param order_id query string false "Order id"
// @Param booking_number query string false "Booking number"
// @Param payment_intent query string false "Payment transaction id"
// @Param transaction_id query string false "Payment transaction id (alias)"
// @Param checkout_token query string false "Checkout snapshot token"
// @Success 200 {object} resdto.ConfirmationResponse
// @Router /checkout/confirmation [get]
func (h *ConfirmationHandler) Show(c *gin.Context) {
	var q reqdto.ConfirmationQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		slog.DebugContext(c.Request.Context(), "ignoring malformed confirmation query", "error", err)
	}

	hints := q.ToHints()
	hints.SessionID = cookie.GetSessionID(c)
	hints.CookieBookingID = cookie.GetLastBookingID(c)
	hints.CookieOrderID = cookie.GetLastOrderID(c)
	hints.UserID = middleware.GetUserIDPtr(c)

	view := h.uc.Confirm(c.Request.Context(), hints)
	if view == nil {
		view = usecase.PendingView()
	}

	resp, err := resdto.FromConfirmationView(view)
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "failed to map confirmation view", "error", err)
		resp = &resdto.ConfirmationResponse{
			Status:  usecase.StatusPendingDetails,
			Message: usecase.PaymentReceivedMessage,
		}
	}

	if view.Booking != nil {
		cookie.SetLastBooking(c, h.cookieCfg, view.Booking.ID, h.cookieCfg.LastBookingTTL)
	}
	c.JSON(http.StatusOK, resp)
}
