//go:build unit

package notify_test

import (
	"testing"

	"booking-reconciler/internal/usecase/notify"
	"booking-reconciler/internal/usecase/readmodel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateRenderer(t *testing.T) {
	b := &readmodel.BookingRM{
		Number:          "BK-20250301-ABCDEFGH",
		ProviderName:    "Coach Kim",
		GuardianName:    "Pat Doe",
		ParticipantName: "Sam Doe",
		SessionDate:     "2025-03-08",
		StartTime:       "10:00",
		PackageType:     "5-pack",
		TotalSessions:   5,
		TotalCents:      25000,
		PayoutCents:     21250,
		Currency:        "usd",
	}
	r := notify.NewTemplateRenderer()

	t.Run("payer", func(t *testing.T) {
		subject, body, err := r.Render(notify.NewConfirmationData(notify.RolePayer, b))
		require.NoError(t, err)
		assert.Equal(t, "Booking confirmed: BK-20250301-ABCDEFGH", subject)
		assert.Contains(t, body, "Hi Pat Doe,")
		assert.Contains(t, body, "Date: 2025-03-08 at 10:00")
		assert.Contains(t, body, "Package: 5-pack (5 sessions)")
		assert.Contains(t, body, "Total paid: 250.00 USD")
		assert.NotContains(t, body, "Location:")
	})

	t.Run("provider", func(t *testing.T) {
		subject, body, err := r.Render(notify.NewConfirmationData(notify.RoleProvider, b))
		require.NoError(t, err)
		assert.Equal(t, "New booking: BK-20250301-ABCDEFGH", subject)
		assert.Contains(t, body, "Hi Coach Kim,")
		assert.Contains(t, body, "from Pat Doe")
		assert.Contains(t, body, "Your payout: 212.50 USD")
	})

	t.Run("unknown role", func(t *testing.T) {
		_, _, err := r.Render(notify.ConfirmationData{Role: "auditor"})
		assert.Error(t, err)
	})
}
