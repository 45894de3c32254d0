package resolver

import (
	"context"
	"log/slog"
	"time"

	"booking-reconciler/internal/pkg/clock"
	"booking-reconciler/internal/usecase/readmodel"
	"booking-reconciler/internal/usecase/shared"
)

const (
	StrategyExplicitBookingID      = "explicit_booking_id"
	StrategyExplicitOrderID        = "explicit_order_id"
	StrategyBookingNumber          = "booking_number"
	StrategySessionState           = "session_state"
	StrategyCookie                 = "cookie"
	StrategyPaymentTransaction     = "payment_transaction"
	StrategyCheckoutProviderWindow = "checkout_provider_window"
	StrategyGuardianWindow         = "guardian_window"

	DefaultWindow = 30 * time.Minute
)

type Deps struct {
	Bookings  shared.BookingReader
	Orders    shared.OrderReader
	Sessions  shared.SessionStateStore
	Snapshots shared.SnapshotStore
	Guardians shared.GuardianReader
	Clock     clock.Clock
	Window    time.Duration
}

// NewDefaultChain wires the strategies from most to least specific.
func NewDefaultChain(d Deps, logger *slog.Logger) *Chain {
	window := d.Window
	if window <= 0 {
		window = DefaultWindow
	}
	return NewChain(logger,
		&explicitBookingID{bookings: d.Bookings},
		&explicitOrderID{bookings: d.Bookings, orders: d.Orders},
		&bookingNumber{bookings: d.Bookings},
		&sessionState{bookings: d.Bookings, orders: d.Orders, sessions: d.Sessions},
		&cookie{bookings: d.Bookings, orders: d.Orders},
		&paymentTransaction{bookings: d.Bookings},
		&checkoutProviderWindow{bookings: d.Bookings, snapshots: d.Snapshots, clock: d.Clock, window: window},
		&guardianWindow{bookings: d.Bookings, guardians: d.Guardians, clock: d.Clock, window: window},
	)
}

func byOrder(ctx context.Context, orders shared.OrderReader, bookings shared.BookingReader, orderID int64) (*readmodel.BookingRM, error) {
	bookingID, err := orders.BookingIDByOrderID(ctx, orderID)
	if err != nil || bookingID == nil {
		return nil, err
	}
	return bookings.ByID(ctx, *bookingID)
}

type explicitBookingID struct {
	bookings shared.BookingReader
}

func (s *explicitBookingID) Name() string { return StrategyExplicitBookingID }

func (s *explicitBookingID) Resolve(ctx context.Context, h Hints) (*readmodel.BookingRM, error) {
	if h.BookingID == nil {
		return nil, nil
	}
	return s.bookings.ByID(ctx, *h.BookingID)
}

type explicitOrderID struct {
	bookings shared.BookingReader
	orders   shared.OrderReader
}

func (s *explicitOrderID) Name() string { return StrategyExplicitOrderID }

func (s *explicitOrderID) Resolve(ctx context.Context, h Hints) (*readmodel.BookingRM, error) {
	if h.OrderID == nil {
		return nil, nil
	}
	return byOrder(ctx, s.orders, s.bookings, *h.OrderID)
}

type bookingNumber struct {
	bookings shared.BookingReader
}

func (s *bookingNumber) Name() string { return StrategyBookingNumber }

func (s *bookingNumber) Resolve(ctx context.Context, h Hints) (*readmodel.BookingRM, error) {
	if h.BookingNumber == "" {
		return nil, nil
	}
	return s.bookings.ByNumber(ctx, h.BookingNumber)
}

type sessionState struct {
	inferredStrategy
	bookings shared.BookingReader
	orders   shared.OrderReader
	sessions shared.SessionStateStore
}

func (s *sessionState) Name() string { return StrategySessionState }

func (s *sessionState) Resolve(ctx context.Context, h Hints) (*readmodel.BookingRM, error) {
	if h.SessionID == "" {
		return nil, nil
	}
	orderID, err := s.sessions.AwaitingOrderID(ctx, h.SessionID)
	if err != nil || orderID == nil {
		return nil, err
	}
	return byOrder(ctx, s.orders, s.bookings, *orderID)
}

type cookie struct {
	inferredStrategy
	bookings shared.BookingReader
	orders   shared.OrderReader
}

func (s *cookie) Name() string { return StrategyCookie }

func (s *cookie) Resolve(ctx context.Context, h Hints) (*readmodel.BookingRM, error) {
	if h.CookieBookingID != nil {
		b, err := s.bookings.ByID(ctx, *h.CookieBookingID)
		if err != nil || b != nil {
			return b, err
		}
	}
	if h.CookieOrderID != nil {
		return byOrder(ctx, s.orders, s.bookings, *h.CookieOrderID)
	}
	return nil, nil
}

type paymentTransaction struct {
	bookings shared.BookingReader
}

func (s *paymentTransaction) Name() string { return StrategyPaymentTransaction }

func (s *paymentTransaction) Resolve(ctx context.Context, h Hints) (*readmodel.BookingRM, error) {
	if h.PaymentTransactionID == "" {
		return nil, nil
	}
	return s.bookings.ByPaymentTransactionID(ctx, h.PaymentTransactionID)
}

// checkoutProviderWindow finds the provider's most recent booking. Without a transaction id
// to check the candidate against it could belong to another family, so both hints are required.
type checkoutProviderWindow struct {
	inferredStrategy
	bookings  shared.BookingReader
	snapshots shared.SnapshotStore
	clock     clock.Clock
	window    time.Duration
}

func (s *checkoutProviderWindow) Name() string { return StrategyCheckoutProviderWindow }

func (s *checkoutProviderWindow) Resolve(ctx context.Context, h Hints) (*readmodel.BookingRM, error) {
	if h.CheckoutToken == "" || h.PaymentTransactionID == "" {
		return nil, nil
	}
	snap, err := s.snapshots.Get(ctx, h.CheckoutToken)
	if err != nil || snap == nil {
		return nil, err
	}
	return s.bookings.MostRecentForProvider(ctx, snap.ProviderID, s.clock.Now().Add(-s.window))
}

type guardianWindow struct {
	inferredStrategy
	bookings  shared.BookingReader
	guardians shared.GuardianReader
	clock     clock.Clock
	window    time.Duration
}

func (s *guardianWindow) Name() string { return StrategyGuardianWindow }

func (s *guardianWindow) Resolve(ctx context.Context, h Hints) (*readmodel.BookingRM, error) {
	if h.UserID == nil {
		return nil, nil
	}
	guardianID, err := s.guardians.GuardianIDByUserID(ctx, *h.UserID)
	if err != nil || guardianID == nil {
		return nil, err
	}
	return s.bookings.MostRecentForGuardian(ctx, *guardianID, s.clock.Now().Add(-s.window))
}
