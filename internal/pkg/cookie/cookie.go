package cookie

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"booking-reconciler/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	AccessTokenCookieName = "access_token"
	SessionIDCookieName   = "session_id"
	LastBookingCookieName = "last_booking_id"
	LastOrderCookieName   = "last_order_id"
)

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}

func GetSessionID(c *gin.Context) string {
	id, _ := c.Cookie(SessionIDCookieName)
	return strings.TrimSpace(id)
}

// GetLastBookingID returns nil when the cookie is absent or not a positive integer.
func GetLastBookingID(c *gin.Context) *int64 {
	return positiveIntCookie(c, LastBookingCookieName)
}

func GetLastOrderID(c *gin.Context) *int64 {
	return positiveIntCookie(c, LastOrderCookieName)
}

// SetLastBooking remembers the confirmed booking so a page reload resolves without query params.
func SetLastBooking(c *gin.Context, cfg config.CookieConfig, bookingID int64, ttl time.Duration) {
	c.SetSameSite(getSameSite(cfg.SameSite))
	c.SetCookie(
		LastBookingCookieName,
		strconv.FormatInt(bookingID, 10),
		int(ttl.Seconds()),
		"/",
		cfg.Domain,
		cfg.Secure,
		true, // HttpOnly
	)
}

// ClearLastBooking expires the remembered booking and order so a new checkout
// cannot be confirmed against a previous purchase.
func ClearLastBooking(c *gin.Context, cfg config.CookieConfig) {
	c.SetSameSite(getSameSite(cfg.SameSite))
	for _, name := range []string{LastBookingCookieName, LastOrderCookieName} {
		c.SetCookie(name, "", -1, "/", cfg.Domain, cfg.Secure, true)
	}
}

func positiveIntCookie(c *gin.Context, name string) *int64 {
	raw, err := c.Cookie(name)
	if err != nil {
		return nil
	}
	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || v <= 0 {
		return nil
	}
	return &v
}

func getSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
