package resolver

import (
	"context"
	"log/slog"

	"booking-reconciler/internal/usecase/readmodel"

	"github.com/google/uuid"
)

// Hints are the correlating identifiers gathered from the confirmation request.
// Any of them may be missing or stale.
type Hints struct {
	BookingID            *int64
	OrderID              *int64
	BookingNumber        string
	PaymentTransactionID string
	CheckoutToken        string
	SessionID            string
	CookieBookingID      *int64
	CookieOrderID        *int64
	UserID               *uuid.UUID
}

// Strategy returns (nil, nil) when it cannot identify a booking.
type Strategy interface {
	Name() string
	Resolve(ctx context.Context, h Hints) (*readmodel.BookingRM, error)
}

// inferred is implemented by strategies that guess from browser or account state
// instead of an identifier the confirmation page was given.
type inferred interface {
	inferred()
}

type inferredStrategy struct{}

func (inferredStrategy) inferred() {}

type Result struct {
	Booking  *readmodel.BookingRM
	Strategy string
}

// Chain runs its strategies in order and stops at the first hit.
type Chain struct {
	strategies []Strategy
	logger     *slog.Logger
}

func NewChain(logger *slog.Logger, strategies ...Strategy) *Chain {
	return &Chain{strategies: strategies, logger: logger}
}

// Resolve returns (nil, nil) when no strategy identified a booking.
// A failing strategy counts as a miss.
func (c *Chain) Resolve(ctx context.Context, h Hints) (*Result, error) {
	for _, s := range c.strategies {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		b, err := s.Resolve(ctx, h)
		if err != nil {
			c.logger.WarnContext(ctx, "resolver strategy failed",
				"strategy", s.Name(),
				"transaction_id", h.PaymentTransactionID,
				"error", err,
			)
			continue
		}
		if b != nil && belongsToOtherPayment(s, b, h) {
			c.logger.InfoContext(ctx, "discarding booking of another payment",
				"strategy", s.Name(),
				"booking_id", b.ID,
				"transaction_id", h.PaymentTransactionID,
			)
			continue
		}
		if b != nil {
			c.logger.DebugContext(ctx, "booking resolved", "strategy", s.Name(), "booking_id", b.ID)
			return &Result{Booking: b, Strategy: s.Name()}, nil
		}
	}
	return nil, nil
}

// belongsToOtherPayment rejects an inferred hit when the request names a different
// transaction, so a new payment is never answered with an earlier booking.
func belongsToOtherPayment(s Strategy, b *readmodel.BookingRM, h Hints) bool {
	if _, ok := s.(inferred); !ok || h.PaymentTransactionID == "" {
		return false
	}
	return b.PaymentTransactionID != "" && b.PaymentTransactionID != h.PaymentTransactionID
}

func (c *Chain) Names() []string {
	names := make([]string, 0, len(c.strategies))
	for _, s := range c.strategies {
		names = append(names, s.Name())
	}
	return names
}
