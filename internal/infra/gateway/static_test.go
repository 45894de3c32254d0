//go:build unit

package gateway

import (
	"context"
	"testing"

	"booking-reconciler/internal/domain/checkout"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatic_Lookup(t *testing.T) {
	gw := NewStatic()
	gw.Register(checkout.PaymentTransaction{
		ID:          "pi_123",
		AmountCents: 10000,
		Currency:    "usd",
		Status:      checkout.StatusSucceeded,
		Metadata:    map[string]string{"checkout_token": "tok-1"},
	})

	t.Run("registered transaction", func(t *testing.T) {
		tx, err := gw.Lookup(context.Background(), "pi_123")
		require.NoError(t, err)
		require.NotNil(t, tx)
		assert.True(t, tx.Succeeded())
		assert.Equal(t, "tok-1", tx.CheckoutToken())
	})

	t.Run("unknown transaction", func(t *testing.T) {
		tx, err := gw.Lookup(context.Background(), "pi_missing")
		require.NoError(t, err)
		assert.Nil(t, tx)
	})

	t.Run("returned metadata is a copy", func(t *testing.T) {
		tx, err := gw.Lookup(context.Background(), "pi_123")
		require.NoError(t, err)
		tx.Metadata["checkout_token"] = "tampered"

		again, err := gw.Lookup(context.Background(), "pi_123")
		require.NoError(t, err)
		assert.Equal(t, "tok-1", again.CheckoutToken())
	})
}
