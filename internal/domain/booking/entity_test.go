//go:build unit

package booking_test

import (
	"testing"
	"time"

	"booking-reconciler/internal/domain/booking"
	"booking-reconciler/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.BookingBuilder)
	errIs  error
}

func TestBooking(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Equal(t, int64(0), actual.ID())
		assert.Equal(t, booking.StatusConfirmed, actual.Status())
		assert.Equal(t, 1, actual.TotalSessions())
		assert.Equal(t, 1, actual.SessionsRemaining())
		assert.Equal(t, int64(1500), actual.Fee().Cents())
		assert.Equal(t, int64(8500), actual.Payout().Cents())
		assert.Nil(t, actual.EscrowHoldID())
		assert.Nil(t, actual.PackageCreditID())
	})

	t.Run("validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "missing transaction id",
				mutate: func(b *builder.BookingBuilder) { b.PaymentTransactionID = "  " },
				errIs:  booking.ErrEmptyTransactionID,
			},
			{
				name:   "missing number",
				mutate: func(b *builder.BookingBuilder) { b.Number = "" },
				errIs:  booking.ErrEmptyNumber,
			},
			{
				name:   "negative total",
				mutate: func(b *builder.BookingBuilder) { b.TotalCents = -100 },
				errIs:  booking.ErrNegativeMoney,
			},
			{
				name:   "10-pack",
				mutate: func(b *builder.BookingBuilder) { b.PackageType = booking.Package10 },
			},
		})
	})

	t.Run("reconstruct enforces remaining <= total", func(t *testing.T) {
		_, err := booking.ReconstructBooking(booking.Snapshot{
			ID:                1,
			Number:            "BK-1",
			TotalSessions:     3,
			SessionsRemaining: 4,
			Status:            "confirmed",
		})
		require.ErrorIs(t, err, booking.ErrRemainingExceeded)

		_, err = booking.ReconstructBooking(booking.Snapshot{
			ID:                1,
			Number:            "BK-1",
			TotalSessions:     0,
			SessionsRemaining: 0,
			Status:            "confirmed",
		})
		require.ErrorIs(t, err, booking.ErrInvalidSessions)

		_, err = booking.ReconstructBooking(booking.Snapshot{
			ID:                1,
			Number:            "BK-1",
			TotalSessions:     1,
			SessionsRemaining: 1,
			Status:            "refunded",
		})
		require.ErrorIs(t, err, booking.ErrInvalidStatus)
	})
}

func TestLedger(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("escrow holds the full total", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().WithID(42).WithTotalCents(12345).BuildPersisted()
		require.NoError(t, err)

		hold, err := booking.NewEscrowHold(b, now)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, hold.ID())
		assert.Equal(t, int64(42), hold.BookingID())
		assert.Equal(t, int64(12345), hold.Amount().Cents())
		assert.Equal(t, booking.EscrowHeld, hold.State())
	})

	t.Run("escrow requires a persisted booking", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		_, err = booking.NewEscrowHold(b, now)
		require.ErrorIs(t, err, booking.ErrBookingNotPersisted)
	})

	t.Run("5-pack credit math", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().WithID(7).WithPackage(booking.Package5).WithTotalCents(25000).BuildPersisted()
		require.NoError(t, err)
		split, err := booking.Derive(b.Total(), 15, b.TotalSessions())
		require.NoError(t, err)

		credit, err := booking.NewPackageCredit(b, split.PerSession, now, 0)
		require.NoError(t, err)

		assert.Equal(t, 5, b.TotalSessions())
		assert.Equal(t, 5, credit.TotalCredits())
		assert.Equal(t, 4, credit.RemainingCredits())
		assert.Equal(t, int64(5000), credit.PricePerCredit().Cents())
		assert.Equal(t, now.Add(booking.DefaultCreditValidity), credit.ExpiresAt())
		assert.Equal(t, b.PaymentTransactionID(), credit.PaymentTransactionID())
		assert.Equal(t, b.GuardianID(), credit.GuardianID())
	})

	t.Run("single session has no credit", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().WithID(8).WithPackage(booking.PackageCamp).BuildPersisted()
		require.NoError(t, err)

		_, err = booking.NewPackageCredit(b, b.Total(), now, time.Hour)
		require.ErrorIs(t, err, booking.ErrNotMultiSession)
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewBookingBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
