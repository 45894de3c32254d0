//go:build unit

package resolver_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"booking-reconciler/internal/domain/checkout"
	"booking-reconciler/internal/pkg/clock"
	"booking-reconciler/internal/pkg/ptr"
	"booking-reconciler/internal/usecase/readmodel"
	"booking-reconciler/internal/usecase/resolver"
	sharedmock "booking-reconciler/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ResolverTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	bookings  *sharedmock.MockBookingReader
	orders    *sharedmock.MockOrderReader
	sessions  *sharedmock.MockSessionStateStore
	snapshots *sharedmock.MockSnapshotStore
	guardians *sharedmock.MockGuardianReader
	clock     *clock.MockClock
	chain     *resolver.Chain
}

var now = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func (s *ResolverTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.bookings = sharedmock.NewMockBookingReader(s.ctrl)
	s.orders = sharedmock.NewMockOrderReader(s.ctrl)
	s.sessions = sharedmock.NewMockSessionStateStore(s.ctrl)
	s.snapshots = sharedmock.NewMockSnapshotStore(s.ctrl)
	s.guardians = sharedmock.NewMockGuardianReader(s.ctrl)
	s.clock = clock.NewMockClock(now)
	s.chain = resolver.NewDefaultChain(resolver.Deps{
		Bookings:  s.bookings,
		Orders:    s.orders,
		Sessions:  s.sessions,
		Snapshots: s.snapshots,
		Guardians: s.guardians,
		Clock:     s.clock,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func (s *ResolverTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestResolverSuite(t *testing.T) {
	suite.Run(t, new(ResolverTestSuite))
}

func bookingRM(id int64, txnID string) *readmodel.BookingRM {
	return &readmodel.BookingRM{ID: id, Number: "BK-20250301-AAAAAAAA", PaymentTransactionID: txnID, Status: "confirmed"}
}

func (s *ResolverTestSuite) TestStrategyOrder() {
	s.Equal([]string{
		resolver.StrategyExplicitBookingID,
		resolver.StrategyExplicitOrderID,
		resolver.StrategyBookingNumber,
		resolver.StrategySessionState,
		resolver.StrategyCookie,
		resolver.StrategyPaymentTransaction,
		resolver.StrategyCheckoutProviderWindow,
		resolver.StrategyGuardianWindow,
	}, s.chain.Names())
}

func (s *ResolverTestSuite) TestExplicitBookingIDWins() {
	ctx := context.Background()
	s.bookings.EXPECT().ByID(gomock.Any(), int64(42)).Return(bookingRM(42, "pi_1"), nil)

	res, err := s.chain.Resolve(ctx, resolver.Hints{
		BookingID:            ptr.Of(int64(42)),
		OrderID:              ptr.Of(int64(7)),
		PaymentTransactionID: "pi_1",
	})

	s.Require().NoError(err)
	s.Require().NotNil(res)
	s.Equal(int64(42), res.Booking.ID)
	s.Equal(resolver.StrategyExplicitBookingID, res.Strategy)
}

func (s *ResolverTestSuite) TestFallsThroughToOrder() {
	ctx := context.Background()
	s.bookings.EXPECT().ByID(gomock.Any(), int64(42)).Return(nil, nil)
	s.orders.EXPECT().BookingIDByOrderID(gomock.Any(), int64(7)).Return(ptr.Of(int64(43)), nil)
	s.bookings.EXPECT().ByID(gomock.Any(), int64(43)).Return(bookingRM(43, "pi_1"), nil)

	res, err := s.chain.Resolve(ctx, resolver.Hints{BookingID: ptr.Of(int64(42)), OrderID: ptr.Of(int64(7))})

	s.Require().NoError(err)
	s.Require().NotNil(res)
	s.Equal(int64(43), res.Booking.ID)
	s.Equal(resolver.StrategyExplicitOrderID, res.Strategy)
}

func (s *ResolverTestSuite) TestStrategyErrorIsAMiss() {
	ctx := context.Background()
	s.bookings.EXPECT().ByNumber(gomock.Any(), "BK-20250301-AAAAAAAA").Return(nil, errors.New("db down"))
	s.bookings.EXPECT().ByPaymentTransactionID(gomock.Any(), "pi_1").Return(bookingRM(9, "pi_1"), nil)

	res, err := s.chain.Resolve(ctx, resolver.Hints{BookingNumber: "BK-20250301-AAAAAAAA", PaymentTransactionID: "pi_1"})

	s.Require().NoError(err)
	s.Require().NotNil(res)
	s.Equal(resolver.StrategyPaymentTransaction, res.Strategy)
}

func (s *ResolverTestSuite) TestSessionState() {
	ctx := context.Background()
	s.sessions.EXPECT().AwaitingOrderID(gomock.Any(), "sess-1").Return(ptr.Of(int64(5)), nil)
	s.orders.EXPECT().BookingIDByOrderID(gomock.Any(), int64(5)).Return(ptr.Of(int64(50)), nil)
	s.bookings.EXPECT().ByID(gomock.Any(), int64(50)).Return(bookingRM(50, ""), nil)

	res, err := s.chain.Resolve(ctx, resolver.Hints{SessionID: "sess-1"})

	s.Require().NoError(err)
	s.Require().NotNil(res)
	s.Equal(resolver.StrategySessionState, res.Strategy)
}

func (s *ResolverTestSuite) TestCookieOrderFallback() {
	ctx := context.Background()
	s.bookings.EXPECT().ByID(gomock.Any(), int64(11)).Return(nil, nil)
	s.orders.EXPECT().BookingIDByOrderID(gomock.Any(), int64(12)).Return(ptr.Of(int64(13)), nil)
	s.bookings.EXPECT().ByID(gomock.Any(), int64(13)).Return(bookingRM(13, ""), nil)

	res, err := s.chain.Resolve(ctx, resolver.Hints{CookieBookingID: ptr.Of(int64(11)), CookieOrderID: ptr.Of(int64(12))})

	s.Require().NoError(err)
	s.Require().NotNil(res)
	s.Equal(int64(13), res.Booking.ID)
	s.Equal(resolver.StrategyCookie, res.Strategy)
}

func (s *ResolverTestSuite) TestCheckoutProviderWindow() {
	providerID := uuid.New()
	since := now.Add(-resolver.DefaultWindow)
	snap := &checkout.Snapshot{Token: "tok", ProviderID: providerID}

	s.Run("accepts a candidate with the same transaction", func() {
		s.bookings.EXPECT().ByPaymentTransactionID(gomock.Any(), "pi_1").Return(nil, nil)
		s.snapshots.EXPECT().Get(gomock.Any(), "tok").Return(snap, nil)
		s.bookings.EXPECT().MostRecentForProvider(gomock.Any(), providerID, since).Return(bookingRM(77, "pi_1"), nil)

		res, err := s.chain.Resolve(context.Background(), resolver.Hints{CheckoutToken: "tok", PaymentTransactionID: "pi_1"})

		s.Require().NoError(err)
		s.Require().NotNil(res)
		s.Equal(resolver.StrategyCheckoutProviderWindow, res.Strategy)
	})

	s.Run("rejects another family's booking", func() {
		s.bookings.EXPECT().ByPaymentTransactionID(gomock.Any(), "pi_1").Return(nil, nil)
		s.snapshots.EXPECT().Get(gomock.Any(), "tok").Return(snap, nil)
		s.bookings.EXPECT().MostRecentForProvider(gomock.Any(), providerID, since).Return(bookingRM(78, "pi_other"), nil)

		res, err := s.chain.Resolve(context.Background(), resolver.Hints{CheckoutToken: "tok", PaymentTransactionID: "pi_1"})

		s.Require().NoError(err)
		s.Nil(res)
	})

	s.Run("requires a transaction id", func() {
		res, err := s.chain.Resolve(context.Background(), resolver.Hints{CheckoutToken: "tok"})

		s.Require().NoError(err)
		s.Nil(res)
	})
}

func (s *ResolverTestSuite) TestGuardianWindow() {
	userID := uuid.New()
	guardianID := uuid.New()
	s.guardians.EXPECT().GuardianIDByUserID(gomock.Any(), userID).Return(&guardianID, nil)
	s.bookings.EXPECT().MostRecentForGuardian(gomock.Any(), guardianID, now.Add(-resolver.DefaultWindow)).
		Return(bookingRM(90, "pi_9"), nil)

	res, err := s.chain.Resolve(context.Background(), resolver.Hints{UserID: &userID})

	s.Require().NoError(err)
	s.Require().NotNil(res)
	s.Equal(resolver.StrategyGuardianWindow, res.Strategy)
}

func (s *ResolverTestSuite) TestInferredHitMustMatchTransaction() {
	userID := uuid.New()
	guardianID := uuid.New()

	s.Run("cookie left by an earlier purchase is ignored", func() {
		s.bookings.EXPECT().ByID(gomock.Any(), int64(1)).Return(bookingRM(1, "pi_A"), nil)
		s.bookings.EXPECT().ByPaymentTransactionID(gomock.Any(), "pi_B").Return(nil, nil)

		res, err := s.chain.Resolve(context.Background(), resolver.Hints{
			PaymentTransactionID: "pi_B",
			CookieBookingID:      ptr.Of(int64(1)),
		})

		s.Require().NoError(err)
		s.Nil(res)
	})

	s.Run("session state pointing at an earlier order is ignored", func() {
		s.sessions.EXPECT().AwaitingOrderID(gomock.Any(), "sess-1").Return(ptr.Of(int64(5)), nil)
		s.orders.EXPECT().BookingIDByOrderID(gomock.Any(), int64(5)).Return(ptr.Of(int64(2)), nil)
		s.bookings.EXPECT().ByID(gomock.Any(), int64(2)).Return(bookingRM(2, "pi_A"), nil)
		s.bookings.EXPECT().ByPaymentTransactionID(gomock.Any(), "pi_B").Return(nil, nil)

		res, err := s.chain.Resolve(context.Background(), resolver.Hints{
			PaymentTransactionID: "pi_B",
			SessionID:            "sess-1",
		})

		s.Require().NoError(err)
		s.Nil(res)
	})

	s.Run("guardian's previous booking inside the window is ignored", func() {
		s.bookings.EXPECT().ByPaymentTransactionID(gomock.Any(), "pi_B").Return(nil, nil)
		s.guardians.EXPECT().GuardianIDByUserID(gomock.Any(), userID).Return(&guardianID, nil)
		s.bookings.EXPECT().MostRecentForGuardian(gomock.Any(), guardianID, now.Add(-resolver.DefaultWindow)).
			Return(bookingRM(7, "pi_A"), nil)

		res, err := s.chain.Resolve(context.Background(), resolver.Hints{
			PaymentTransactionID: "pi_B",
			UserID:               &userID,
		})

		s.Require().NoError(err)
		s.Nil(res)
	})

	s.Run("stale cookie falls through to the transaction lookup", func() {
		s.bookings.EXPECT().ByID(gomock.Any(), int64(1)).Return(bookingRM(1, "pi_A"), nil)
		s.bookings.EXPECT().ByPaymentTransactionID(gomock.Any(), "pi_B").Return(bookingRM(3, "pi_B"), nil)

		res, err := s.chain.Resolve(context.Background(), resolver.Hints{
			PaymentTransactionID: "pi_B",
			CookieBookingID:      ptr.Of(int64(1)),
		})

		s.Require().NoError(err)
		s.Require().NotNil(res)
		s.Equal(int64(3), res.Booking.ID)
		s.Equal(resolver.StrategyPaymentTransaction, res.Strategy)
	})

	s.Run("matching cookie is accepted", func() {
		s.bookings.EXPECT().ByID(gomock.Any(), int64(3)).Return(bookingRM(3, "pi_B"), nil)

		res, err := s.chain.Resolve(context.Background(), resolver.Hints{
			PaymentTransactionID: "pi_B",
			CookieBookingID:      ptr.Of(int64(3)),
		})

		s.Require().NoError(err)
		s.Require().NotNil(res)
		s.Equal(resolver.StrategyCookie, res.Strategy)
	})

	s.Run("explicit booking id still wins over the transaction", func() {
		s.bookings.EXPECT().ByID(gomock.Any(), int64(1)).Return(bookingRM(1, "pi_A"), nil)

		res, err := s.chain.Resolve(context.Background(), resolver.Hints{
			PaymentTransactionID: "pi_B",
			BookingID:            ptr.Of(int64(1)),
		})

		s.Require().NoError(err)
		s.Require().NotNil(res)
		s.Equal(resolver.StrategyExplicitBookingID, res.Strategy)
	})
}

func (s *ResolverTestSuite) TestNoHints() {
	res, err := s.chain.Resolve(context.Background(), resolver.Hints{})

	s.Require().NoError(err)
	s.Nil(res)
}

type countingStrategy struct{ calls int }

func (c *countingStrategy) Name() string { return "counting" }

func (c *countingStrategy) Resolve(context.Context, resolver.Hints) (*readmodel.BookingRM, error) {
	c.calls++
	return nil, nil
}

func TestChain_CancelledContext(t *testing.T) {
	strategy := &countingStrategy{}
	chain := resolver.NewChain(slog.New(slog.NewTextHandler(io.Discard, nil)), strategy)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := chain.Resolve(ctx, resolver.Hints{})

	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, res)
	assert.Zero(t, strategy.calls)
}
