package repository

import (
	"context"

	"booking-reconciler/internal/domain/booking"
	"booking-reconciler/internal/infra"
	"booking-reconciler/internal/infra/repository/converter"
	sqlc "booking-reconciler/internal/infra/sqlc/generated"
	"booking-reconciler/internal/pkg/errs"
	"booking-reconciler/internal/pkg/pgconv"

	"github.com/google/uuid"
)

// errConflictNotVisible means the insert hit the transaction id constraint but the winning row could not be read.
var errConflictNotVisible = errs.New("conflicting booking not visible")

type BookingWriteQueries interface {
	InsertBookingIfAbsent(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertBookingIfAbsentParams) (sqlc.Bookings, error)
	GetBookingByPaymentTransactionID(ctx context.Context, db sqlc.DBTX, paymentTransactionID string) (sqlc.Bookings, error)
	LinkBookingLedger(ctx context.Context, db sqlc.DBTX, arg sqlc.LinkBookingLedgerParams) error
}

type BookingRepository struct {
	queries BookingWriteQueries
}

func NewBookingRepository(queries BookingWriteQueries) *BookingRepository {
	return &BookingRepository{
		queries: queries,
	}
}

func (r *BookingRepository) FindByPaymentTransactionID(ctx context.Context, tx sqlc.DBTX, transactionID string) (*booking.Booking, error) {
	row, err := r.queries.GetBookingByPaymentTransactionID(ctx, tx, transactionID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find booking by payment transaction", err)
	}
	b, err := converter.BookingFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("stored booking violates invariants", err, infra.KindDBFailure)
	}
	return b, nil
}

// InsertOrGet relies on ON CONFLICT (payment_transaction_id) DO NOTHING: a conflicting
// insert returns no row, and the committed winner is read back instead.
func (r *BookingRepository) InsertOrGet(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) (*booking.Booking, bool, error) {
	row, err := r.queries.InsertBookingIfAbsent(ctx, tx, converter.BookingToInsertParams(b))
	if err == nil {
		stored, convErr := converter.BookingFromRow(row)
		if convErr != nil {
			return nil, false, infra.WrapRepoErr("inserted booking violates invariants", convErr, infra.KindDBFailure)
		}
		return stored, true, nil
	}
	if !pgconv.IsNoRows(err) {
		return nil, false, infra.WrapRepoErr("failed to insert booking", err)
	}

	existing, err := r.FindByPaymentTransactionID(ctx, tx, b.PaymentTransactionID())
	if err != nil {
		return nil, false, err
	}
	if existing == nil {
		// conflict reported but the row is not visible; only possible if the winner was deleted
		return nil, false, infra.WrapRepoErr("conflicting booking not found", errConflictNotVisible, infra.KindNotFound)
	}
	return existing, false, nil
}

func (r *BookingRepository) LinkLedger(ctx context.Context, tx sqlc.DBTX, bookingID int64, escrowHoldID uuid.UUID, packageCreditID *uuid.UUID) error {
	err := r.queries.LinkBookingLedger(ctx, tx, sqlc.LinkBookingLedgerParams{
		ID:              bookingID,
		EscrowHoldID:    pgconv.UUIDToPgtype(escrowHoldID),
		PackageCreditID: pgconv.UUIDPtrToPgtype(packageCreditID),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to link booking ledger", err)
	}
	return nil
}
