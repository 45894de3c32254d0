//go:build e2e

package checkout_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"testing"

	"booking-reconciler/internal/domain/checkout"
	"booking-reconciler/internal/handler/dto/response"
	"booking-reconciler/internal/infra/cache"
	"booking-reconciler/internal/pkg/cookie"
	"booking-reconciler/internal/usecase"
	"booking-reconciler/internal/usecase/notify"
	"booking-reconciler/internal/usecase/resolver"
	"booking-reconciler/tests/common/authtest"
	"booking-reconciler/tests/common/builder"
	"booking-reconciler/tests/common/dbtest"
	"booking-reconciler/tests/common/httptest"
	"booking-reconciler/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	snapshotsURL    = "/api/checkout/snapshots"
	confirmationURL = "/api/checkout/confirmation"
	providerEmail   = "coach@example.com"
	payerEmail      = "parent@example.com"
)

type ConfirmationSuite struct {
	e2e.SharedSuite
}

func TestConfirmationSuite(t *testing.T) {
	suite.Run(t, new(ConfirmationSuite))
}

func (s *ConfirmationSuite) captureSnapshot(t *testing.T, b *builder.CheckoutBuilder, token string) string {
	t.Helper()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, snapshotsURL, b.BuildCaptureRequestDTO(), token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var body response.SnapshotResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &body))
	require.NotEmpty(t, body.Token)
	return body.Token
}

func (s *ConfirmationSuite) pay(txnID, checkoutToken string, amount int64) {
	s.Gateway.Register(checkout.PaymentTransaction{
		ID:          txnID,
		AmountCents: amount,
		Currency:    "usd",
		Status:      checkout.StatusSucceeded,
		Metadata:    map[string]string{"checkout_token": checkoutToken},
	})
}

func (s *ConfirmationSuite) confirm(t *testing.T, path string, cookies []*http.Cookie) (response.ConfirmationResponse, *http.Cookie) {
	t.Helper()
	w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodGet, path, nil, cookies, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body response.ConfirmationResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &body))
	return body, httptest.ExtractCookie(w, cookie.LastBookingCookieName)
}

func newTxnID() string {
	return "pi_" + uuid.NewString()[:16]
}

// =============================================================================
// Recovery through the confirmation page
// =============================================================================

func (s *ConfirmationSuite) TestRecovery() {
	s.Run("Normal case: paid checkout without a booking is recovered and both parties notified", func() {
		t := s.T()
		checkoutToken := s.captureSnapshot(t, builder.NewCheckoutBuilder().WithProvider(dbtest.DefaultProviderID), "")
		txnID := newTxnID()
		s.pay(txnID, checkoutToken, 10000)

		body, last := s.confirm(t, confirmationURL+"?payment_intent="+txnID, nil)

		require.Equal(t, usecase.StatusConfirmed, body.Status)
		require.True(t, body.Recovered)
		require.NotNil(t, body.Booking)
		require.Equal(t, "Default Coach", body.Booking.ProviderName)
		require.Equal(t, int64(10000), body.Booking.TotalCents)
		require.Equal(t, 1, body.Booking.TotalSessions)
		if diff := cmp.Diff(map[string]string{
			string(notify.RolePayer):    string(notify.OutcomeSent),
			string(notify.RoleProvider): string(notify.OutcomeSent),
		}, body.Notifications); diff != "" {
			t.Errorf("notifications mismatch (-want +got):\n%s", diff)
		}

		require.NotNil(t, last)
		require.Equal(t, strconv.FormatInt(body.Booking.ID, 10), last.Value)

		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "bookings", "payment_transaction_id = $1", txnID))
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "escrow_holds", "booking_id = $1", body.Booking.ID))
		require.Equal(t, 0, dbtest.CountRows(t, s.DB, "package_credits", ""))

		var fee, payout int64
		require.NoError(t, s.DB.QueryRow(context.Background(),
			"SELECT fee_cents, payout_cents FROM bookings WHERE id = $1", body.Booking.ID).Scan(&fee, &payout))
		require.Equal(t, int64(1500), fee)
		require.Equal(t, int64(8500), payout)

		exists, err := s.Redis.Snapshot.Exists(context.Background(), "checkout:snapshot:"+checkoutToken).Result()
		require.NoError(t, err)
		require.Zero(t, exists, "snapshot should be consumed")

		require.Len(t, s.Mailer.SentTo(payerEmail), 1)
		require.Len(t, s.Mailer.SentTo(providerEmail), 1)
	})

	s.Run("Normal case: reloading the page does not create or notify twice", func() {
		t := s.T()
		checkoutToken := s.captureSnapshot(t, builder.NewCheckoutBuilder().WithProvider(dbtest.DefaultProviderID), "")
		txnID := newTxnID()
		s.pay(txnID, checkoutToken, 10000)

		first, _ := s.confirm(t, confirmationURL+"?payment_intent="+txnID, nil)
		require.Equal(t, usecase.StatusConfirmed, first.Status)

		second, _ := s.confirm(t, confirmationURL+"?payment_intent="+txnID, nil)
		require.Equal(t, usecase.StatusConfirmed, second.Status)
		require.False(t, second.Recovered)
		require.Equal(t, resolver.StrategyPaymentTransaction, second.ResolvedBy)
		require.Equal(t, first.Booking.ID, second.Booking.ID)
		require.Equal(t, string(notify.OutcomeSkipped), second.Notifications[string(notify.RolePayer)])
		require.Equal(t, string(notify.OutcomeSkipped), second.Notifications[string(notify.RoleProvider)])

		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "bookings", ""))
		require.Equal(t, 2, s.Mailer.Count())
	})

	s.Run("Normal case: concurrent confirmations converge on one booking", func() {
		t := s.T()
		checkoutToken := s.captureSnapshot(t, builder.NewCheckoutBuilder().WithProvider(dbtest.DefaultProviderID), "")
		txnID := newTxnID()
		s.pay(txnID, checkoutToken, 10000)

		const workers = 8
		ids := make([]int64, workers)
		var wg sync.WaitGroup
		for i := range workers {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				w := httptest.PerformRequest(t, s.Router, http.MethodGet, confirmationURL+"?payment_intent="+txnID, nil, "")
				var body response.ConfirmationResponse
				if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || body.Booking == nil {
					return
				}
				ids[i] = body.Booking.ID
			}(i)
		}
		wg.Wait()

		for i, id := range ids {
			require.NotZero(t, id, "worker %d got no booking", i)
			require.Equal(t, ids[0], id)
		}
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "bookings", "payment_transaction_id = $1", txnID))
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "escrow_holds", ""))
	})

	s.Run("Normal case: multi-session package records a package credit", func() {
		t := s.T()
		b := builder.NewCheckoutBuilder().WithProvider(dbtest.DefaultProviderID).WithPackage("5-pack", 50000)
		checkoutToken := s.captureSnapshot(t, b, "")
		txnID := newTxnID()
		s.pay(txnID, checkoutToken, 50000)

		body, _ := s.confirm(t, confirmationURL+"?payment_intent="+txnID+"&checkout_token="+checkoutToken, nil)
		require.Equal(t, usecase.StatusConfirmed, body.Status)
		require.Equal(t, 5, body.Booking.TotalSessions)

		var total, remaining int
		var perCredit int64
		require.NoError(t, s.DB.QueryRow(context.Background(),
			"SELECT total_credits, remaining_credits, price_per_credit_cents FROM package_credits WHERE payment_transaction_id = $1",
			txnID).Scan(&total, &remaining, &perCredit))
		require.Equal(t, 5, total)
		require.Equal(t, 4, remaining)
		require.Equal(t, int64(10000), perCredit)
	})

	s.Run("Normal case: authenticated checkout without an email uses the account email", func() {
		t := s.T()
		userID := dbtest.CreateTestUser(t, s.DB, "member@example.com")
		jwtToken := authtest.NewJWTHelper(s.Config.JWT).GenerateToken(t, userID, "member@example.com")

		b := builder.NewCheckoutBuilder().WithProvider(dbtest.DefaultProviderID).With(func(b *builder.CheckoutBuilder) {
			b.Email = ""
		})
		checkoutToken := s.captureSnapshot(t, b, jwtToken)
		txnID := newTxnID()
		s.pay(txnID, checkoutToken, 10000)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, confirmationURL+"?payment_intent="+txnID, nil, jwtToken)
		require.Equal(t, http.StatusOK, w.Code)

		var guardianEmail string
		var guardianUser uuid.UUID
		require.NoError(t, s.DB.QueryRow(context.Background(),
			"SELECT g.email, g.user_id FROM bookings b JOIN guardians g ON g.id = b.guardian_id WHERE b.payment_transaction_id = $1",
			txnID).Scan(&guardianEmail, &guardianUser))
		require.Equal(t, "member@example.com", guardianEmail)
		require.Equal(t, userID, guardianUser)
		require.Len(t, s.Mailer.SentTo("member@example.com"), 1)
	})

	s.Run("Normal case: session expired before the redirect, snapshot still ties the booking to the account", func() {
		t := s.T()
		userID := dbtest.CreateTestUser(t, s.DB, "member@example.com")
		helper := authtest.NewJWTHelper(s.Config.JWT)

		b := builder.NewCheckoutBuilder().WithProvider(dbtest.DefaultProviderID).With(func(b *builder.CheckoutBuilder) {
			b.Email = ""
		})
		checkoutToken := s.captureSnapshot(t, b, helper.GenerateToken(t, userID, "member@example.com"))
		txnID := newTxnID()
		s.pay(txnID, checkoutToken, 10000)

		for _, stale := range []string{helper.ExpiredToken(t, userID, "member@example.com"), authtest.ForeignToken(t, userID)} {
			w := httptest.PerformRequest(t, s.Router, http.MethodGet, confirmationURL+"?payment_intent="+txnID, nil, stale)
			require.Equal(t, http.StatusOK, w.Code)
		}

		var guardianUser uuid.UUID
		require.NoError(t, s.DB.QueryRow(context.Background(),
			"SELECT g.user_id FROM bookings b JOIN guardians g ON g.id = b.guardian_id WHERE b.payment_transaction_id = $1",
			txnID).Scan(&guardianUser))
		require.Equal(t, userID, guardianUser)
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "bookings", "payment_transaction_id = $1", txnID))
		require.Len(t, s.Mailer.SentTo("member@example.com"), 1)
	})

	s.Run("Abnormal case: unverified payment degrades to pending details", func() {
		t := s.T()
		checkoutToken := s.captureSnapshot(t, builder.NewCheckoutBuilder().WithProvider(dbtest.DefaultProviderID), "")
		txnID := newTxnID()
		s.Gateway.Register(checkout.PaymentTransaction{
			ID:          txnID,
			AmountCents: 10000,
			Currency:    "usd",
			Status:      "requires_payment_method",
			Metadata:    map[string]string{"checkout_token": checkoutToken},
		})

		body, last := s.confirm(t, confirmationURL+"?payment_intent="+txnID, nil)
		require.Equal(t, usecase.StatusPendingDetails, body.Status)
		require.Equal(t, usecase.PaymentReceivedMessage, body.Message)
		require.Nil(t, body.Booking)
		require.Nil(t, last)
		require.Equal(t, 0, dbtest.CountRows(t, s.DB, "bookings", ""))
		require.Zero(t, s.Mailer.Count())
	})

	s.Run("Abnormal case: expired snapshot degrades to pending details", func() {
		t := s.T()
		txnID := newTxnID()
		s.pay(txnID, uuid.NewString(), 10000)

		body, _ := s.confirm(t, confirmationURL+"?payment_intent="+txnID, nil)
		require.Equal(t, usecase.StatusPendingDetails, body.Status)
		require.Equal(t, 0, dbtest.CountRows(t, s.DB, "bookings", ""))
	})

	s.Run("Abnormal case: no identifiers at all", func() {
		body, _ := s.confirm(s.T(), confirmationURL, nil)
		require.Equal(s.T(), usecase.StatusPendingDetails, body.Status)
	})
}

// =============================================================================
// Resolution of existing bookings
// =============================================================================

func (s *ConfirmationSuite) recoverBooking(t *testing.T) response.BookingResponse {
	t.Helper()
	checkoutToken := s.captureSnapshot(t, builder.NewCheckoutBuilder().WithProvider(dbtest.DefaultProviderID), "")
	txnID := newTxnID()
	s.pay(txnID, checkoutToken, 10000)
	body, _ := s.confirm(t, confirmationURL+"?payment_intent="+txnID, nil)
	require.NotNil(t, body.Booking)
	return *body.Booking
}

func (s *ConfirmationSuite) TestResolution() {
	s.Run("Normal case: explicit booking id", func() {
		t := s.T()
		b := s.recoverBooking(t)
		body, _ := s.confirm(t, fmt.Sprintf("%s?booking_id=%d", confirmationURL, b.ID), nil)
		require.Equal(t, resolver.StrategyExplicitBookingID, body.ResolvedBy)
		require.Equal(t, b.ID, body.Booking.ID)
	})

	s.Run("Normal case: booking number passed as booking_id", func() {
		t := s.T()
		b := s.recoverBooking(t)
		body, _ := s.confirm(t, confirmationURL+"?booking_id="+b.Number, nil)
		require.Equal(t, resolver.StrategyBookingNumber, body.ResolvedBy)
		require.Equal(t, b.ID, body.Booking.ID)
	})

	s.Run("Normal case: order id linked to a booking", func() {
		t := s.T()
		b := s.recoverBooking(t)
		orderID := dbtest.CreateTestOrder(t, s.DB, &b.ID, "")
		body, _ := s.confirm(t, fmt.Sprintf("%s?order_id=%d", confirmationURL, orderID), nil)
		require.Equal(t, resolver.StrategyExplicitOrderID, body.ResolvedBy)
		require.Equal(t, b.ID, body.Booking.ID)
	})

	s.Run("Normal case: web session awaiting an order", func() {
		t := s.T()
		b := s.recoverBooking(t)
		orderID := dbtest.CreateTestOrder(t, s.DB, &b.ID, "")
		sessionID := uuid.NewString()
		require.NoError(t, s.Redis.Session.Set(context.Background(),
			cache.AwaitingOrderKey(sessionID), strconv.FormatInt(orderID, 10), 0).Err())

		body, _ := s.confirm(t, confirmationURL, []*http.Cookie{{Name: cookie.SessionIDCookieName, Value: sessionID}})
		require.Equal(t, resolver.StrategySessionState, body.ResolvedBy)
		require.Equal(t, b.ID, body.Booking.ID)
	})

	s.Run("Normal case: last booking cookie", func() {
		t := s.T()
		b := s.recoverBooking(t)
		body, _ := s.confirm(t, confirmationURL, []*http.Cookie{
			{Name: cookie.LastBookingCookieName, Value: strconv.FormatInt(b.ID, 10)},
		})
		require.Equal(t, resolver.StrategyCookie, body.ResolvedBy)
		require.Equal(t, b.ID, body.Booking.ID)
	})

	s.Run("Abnormal case: unknown booking id falls through to pending", func() {
		body, _ := s.confirm(s.T(), confirmationURL+"?booking_id=999999", nil)
		require.Equal(s.T(), usecase.StatusPendingDetails, body.Status)
	})
}

// =============================================================================
// Notification retries
// =============================================================================

func (s *ConfirmationSuite) TestNotificationRetry() {
	s.Run("Normal case: a failed provider email is retried on the next visit", func() {
		t := s.T()
		s.Mailer.FailFor(providerEmail)

		checkoutToken := s.captureSnapshot(t, builder.NewCheckoutBuilder().WithProvider(dbtest.DefaultProviderID), "")
		txnID := newTxnID()
		s.pay(txnID, checkoutToken, 10000)

		first, _ := s.confirm(t, confirmationURL+"?payment_intent="+txnID, nil)
		require.Equal(t, usecase.StatusConfirmed, first.Status)
		require.Equal(t, string(notify.OutcomeSent), first.Notifications[string(notify.RolePayer)])
		require.Equal(t, string(notify.OutcomeFailed), first.Notifications[string(notify.RoleProvider)])

		s.Mailer.Reset()

		second, _ := s.confirm(t, confirmationURL+"?payment_intent="+txnID, nil)
		require.Equal(t, string(notify.OutcomeSkipped), second.Notifications[string(notify.RolePayer)])
		require.Equal(t, string(notify.OutcomeSent), second.Notifications[string(notify.RoleProvider)])
		require.Len(t, s.Mailer.SentTo(providerEmail), 1)
		require.Empty(t, s.Mailer.SentTo(payerEmail))
	})
}
