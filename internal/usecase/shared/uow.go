package shared

import (
	"context"

	"booking-reconciler/internal/domain/booking"
	"booking-reconciler/internal/domain/guardian"
	sqlc "booking-reconciler/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Bookings() BookingRepository
	Guardians() GuardianRepository
	Participants() ParticipantRepository
	Ledger() LedgerRepository
	DB() sqlc.DBTX
}

// Lookups return (nil, nil) when nothing matches.

type BookingRepository interface {
	FindByPaymentTransactionID(ctx context.Context, tx sqlc.DBTX, transactionID string) (*booking.Booking, error)
	// InsertOrGet inserts b unless a booking for the same payment transaction exists.
	// inserted reports whether the returned booking is the one just written.
	InsertOrGet(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) (stored *booking.Booking, inserted bool, err error)
	LinkLedger(ctx context.Context, tx sqlc.DBTX, bookingID int64, escrowHoldID uuid.UUID, packageCreditID *uuid.UUID) error
}

type GuardianRepository interface {
	FindByUserID(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) (*guardian.Guardian, error)
	FindByEmail(ctx context.Context, tx sqlc.DBTX, email guardian.Email) (*guardian.Guardian, error)
	// CreateOrGet returns the stored guardian for g's email, creating it when absent.
	CreateOrGet(ctx context.Context, tx sqlc.DBTX, g *guardian.Guardian) (*guardian.Guardian, error)
}

type ParticipantRepository interface {
	FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*guardian.Participant, error)
	Create(ctx context.Context, tx sqlc.DBTX, p *guardian.Participant) error
}

type LedgerRepository interface {
	CreateEscrowHold(ctx context.Context, tx sqlc.DBTX, hold *booking.EscrowHold, currency string) error
	CreatePackageCredit(ctx context.Context, tx sqlc.DBTX, credit *booking.PackageCredit) error
}
