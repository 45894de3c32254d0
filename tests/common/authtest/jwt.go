//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"booking-reconciler/internal/pkg/config"
	"booking-reconciler/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper mints tokens the way the account service would, for routes behind OptionalAuth.
type JWTHelper struct {
	svc *jwt.Service
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{svc: jwt.NewService(cfg.Secret)}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, email string) string {
	t.Helper()
	token, err := h.svc.GenerateToken(userID, email, time.Hour)
	require.NoError(t, err)
	return token
}

// ExpiredToken is already past its expiry when returned.
func (h *JWTHelper) ExpiredToken(t *testing.T, userID uuid.UUID, email string) string {
	t.Helper()
	token, err := h.svc.GenerateToken(userID, email, -time.Minute)
	require.NoError(t, err)
	return token
}

// ForeignToken is well formed but signed with a secret this service does not trust.
func ForeignToken(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	token, err := jwt.NewService("not-our-secret").GenerateToken(userID, "", time.Hour)
	require.NoError(t, err)
	return token
}
