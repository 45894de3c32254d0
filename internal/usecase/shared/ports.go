package shared

import (
	"context"
	"time"

	"booking-reconciler/internal/domain/checkout"
	"booking-reconciler/internal/usecase/readmodel"

	"github.com/google/uuid"
)

// Read side. Lookups return (nil, nil) when nothing matches.

type BookingReader interface {
	ByID(ctx context.Context, id int64) (*readmodel.BookingRM, error)
	ByNumber(ctx context.Context, number string) (*readmodel.BookingRM, error)
	ByPaymentTransactionID(ctx context.Context, transactionID string) (*readmodel.BookingRM, error)
	MostRecentForProvider(ctx context.Context, providerID uuid.UUID, since time.Time) (*readmodel.BookingRM, error)
	MostRecentForGuardian(ctx context.Context, guardianID uuid.UUID, since time.Time) (*readmodel.BookingRM, error)
}

type OrderReader interface {
	BookingIDByOrderID(ctx context.Context, orderID int64) (*int64, error)
}

type GuardianReader interface {
	GuardianIDByUserID(ctx context.Context, userID uuid.UUID) (*uuid.UUID, error)
}

type ProviderDirectory interface {
	ContactByID(ctx context.Context, providerID uuid.UUID) (*readmodel.ProviderContactRM, error)
}

type UserDirectory interface {
	EmailByID(ctx context.Context, userID uuid.UUID) (string, error)
}

// Key-value stores.

type SnapshotStore interface {
	Put(ctx context.Context, snap *checkout.Snapshot, ttl time.Duration) error
	// Get returns (nil, nil) when the token is unknown or expired.
	Get(ctx context.Context, token string) (*checkout.Snapshot, error)
	// Delete is a no-op for unknown tokens.
	Delete(ctx context.Context, token string) error
}

type MarkerStore interface {
	Exists(ctx context.Context, key string) (bool, error)
	Set(ctx context.Context, key string, ttl time.Duration) error
}

type SessionStateStore interface {
	// AwaitingOrderID returns the order the web session was waiting on, or nil.
	AwaitingOrderID(ctx context.Context, sessionID string) (*int64, error)
}

// External services.

type PaymentGateway interface {
	Lookup(ctx context.Context, transactionID string) (*checkout.PaymentTransaction, error)
}

type Message struct {
	To      string
	Subject string
	Body    string
}

type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

type EventPublisher interface {
	PublishJSON(ctx context.Context, routingKey string, payload any) error
}
