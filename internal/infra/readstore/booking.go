package readstore

import (
	"context"
	"strings"
	"time"

	"booking-reconciler/internal/infra"
	sqlc "booking-reconciler/internal/infra/sqlc/generated"
	"booking-reconciler/internal/pkg/pgconv"
	"booking-reconciler/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type BookingViewQueries interface {
	GetBookingViewByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.BookingViews, error)
	GetBookingViewByNumber(ctx context.Context, db sqlc.DBTX, number string) (sqlc.BookingViews, error)
	GetBookingViewByPaymentTransactionID(ctx context.Context, db sqlc.DBTX, paymentTransactionID string) (sqlc.BookingViews, error)
	GetLatestBookingViewForProvider(ctx context.Context, db sqlc.DBTX, arg sqlc.GetLatestBookingViewForProviderParams) (sqlc.BookingViews, error)
	GetLatestBookingViewForGuardian(ctx context.Context, db sqlc.DBTX, arg sqlc.GetLatestBookingViewForGuardianParams) (sqlc.BookingViews, error)
}

// BookingReadStore returns (nil, nil) on a miss; the resolver treats absence as normal.
type BookingReadStore struct {
	queries BookingViewQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingViewQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) ByID(ctx context.Context, id int64) (*readmodel.BookingRM, error) {
	return r.one(r.queries.GetBookingViewByID(ctx, r.db, id))
}

func (r *BookingReadStore) ByNumber(ctx context.Context, number string) (*readmodel.BookingRM, error) {
	number = strings.ToUpper(strings.TrimSpace(number))
	if number == "" {
		return nil, nil
	}
	return r.one(r.queries.GetBookingViewByNumber(ctx, r.db, number))
}

func (r *BookingReadStore) ByPaymentTransactionID(ctx context.Context, transactionID string) (*readmodel.BookingRM, error) {
	if transactionID == "" {
		return nil, nil
	}
	return r.one(r.queries.GetBookingViewByPaymentTransactionID(ctx, r.db, transactionID))
}

func (r *BookingReadStore) MostRecentForProvider(ctx context.Context, providerID uuid.UUID, since time.Time) (*readmodel.BookingRM, error) {
	return r.one(r.queries.GetLatestBookingViewForProvider(ctx, r.db, sqlc.GetLatestBookingViewForProviderParams{
		ProviderID: providerID,
		CreatedAt:  pgconv.TimeToPgtype(since),
	}))
}

func (r *BookingReadStore) MostRecentForGuardian(ctx context.Context, guardianID uuid.UUID, since time.Time) (*readmodel.BookingRM, error) {
	return r.one(r.queries.GetLatestBookingViewForGuardian(ctx, r.db, sqlc.GetLatestBookingViewForGuardianParams{
		GuardianID: guardianID,
		CreatedAt:  pgconv.TimeToPgtype(since),
	}))
}

func (r *BookingReadStore) one(row sqlc.BookingViews, err error) (*readmodel.BookingRM, error) {
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to read booking view", err)
	}
	return toBookingRM(row), nil
}

func toBookingRM(row sqlc.BookingViews) *readmodel.BookingRM {
	participant := strings.TrimSpace(row.ParticipantFirstName + " " + pgconv.StringFromPgtype(row.ParticipantLastName))
	return &readmodel.BookingRM{
		ID:                   row.ID,
		Number:               row.Number,
		ProviderID:           row.ProviderID,
		ProviderName:         row.ProviderName,
		GuardianID:           row.GuardianID,
		GuardianName:         row.GuardianName,
		GuardianEmail:        row.GuardianEmail,
		ParticipantID:        row.ParticipantID,
		ParticipantName:      participant,
		SessionDate:          pgconv.StringFromPgtype(row.SessionDate),
		StartTime:            pgconv.StringFromPgtype(row.StartTime),
		Location:             pgconv.StringFromPgtype(row.Location),
		PackageType:          row.PackageType,
		TotalSessions:        int(row.TotalSessions),
		SessionsRemaining:    int(row.SessionsRemaining),
		TotalCents:           row.TotalCents,
		Currency:             row.Currency,
		FeeCents:             row.FeeCents,
		PayoutCents:          row.PayoutCents,
		PaymentTransactionID: row.PaymentTransactionID,
		Status:               row.Status,
		EscrowHoldID:         pgconv.UUIDPtrFromPgtype(row.EscrowHoldID),
		PackageCreditID:      pgconv.UUIDPtrFromPgtype(row.PackageCreditID),
		CreatedAt:            pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
