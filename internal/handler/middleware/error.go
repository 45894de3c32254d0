package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"booking-reconciler/internal/handler/httperr"
	"booking-reconciler/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ConfirmationPath always answers 200; the payment has been taken by the time a user lands there.
const ConfirmationPath = "/api/checkout/confirmation"

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		// Search backward through the error stack
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]

			if err.IsType(gin.ErrorTypePublic) {
				if resp, ok := err.Meta.(httperr.Response); ok {
					c.JSON(resp.Status, resp)
					return
				}
			}
		}
		if isConfirmation(c) {
			writePaymentReceived(c)
			return
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, httperr.NewResponse(c, http.StatusInternalServerError, "Internal server error", nil))
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("recovered from panic", "error", err, "path", c.Request.URL.Path)

				if isConfirmation(c) {
					writePaymentReceived(c)
					c.Abort()
					return
				}

				resp := httperr.NewResponse(c, http.StatusInternalServerError, "Internal server error", nil)
				c.JSON(http.StatusInternalServerError, resp)
				c.Abort()
			}
		}()
		c.Next()
	}
}

func isConfirmation(c *gin.Context) bool {
	return strings.HasPrefix(c.Request.URL.Path, ConfirmationPath)
}

func writePaymentReceived(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  usecase.StatusPendingDetails,
		"message": usecase.PaymentReceivedMessage,
	})
}
