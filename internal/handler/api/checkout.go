package api

import (
	"net/http"

	reqdto "booking-reconciler/internal/handler/dto/request"
	resdto "booking-reconciler/internal/handler/dto/response"
	"booking-reconciler/internal/handler/httperr"
	"booking-reconciler/internal/handler/middleware"
	"booking-reconciler/internal/pkg/config"
	"booking-reconciler/internal/pkg/cookie"
	"booking-reconciler/internal/pkg/errs"
	"booking-reconciler/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	cmds      commands.CheckoutCommands
	cookieCfg config.CookieConfig
}

func NewCheckoutHandler(cmds commands.CheckoutCommands, cookieCfg config.CookieConfig) *CheckoutHandler {
	return &CheckoutHandler{cmds: cmds, cookieCfg: cookieCfg}
}

// @Summary Capture checkout snapshot
// @Description Store the cart and contact details before payment so the booking can be rebuilt later
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body reqdto.CaptureSnapshotRequest true "Checkout snapshot"
// @Success 201 {object} resdto.SnapshotResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /checkout/snapshots [post]
func (h *CheckoutHandler) CaptureSnapshot(c *gin.Context) {
	var req reqdto.CaptureSnapshotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.CaptureSnapshot(c.Request.Context(), req.ToCommand(), middleware.GetUserIDPtr(c))
	if err != nil {
		if errs.Is(err, errs.ErrDomainValidationFailed) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid checkout", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to store checkout", nil)
		return
	}
	cookie.ClearLastBooking(c, h.cookieCfg)
	c.JSON(http.StatusCreated, resdto.FromCaptureSnapshotResult(result))
}
