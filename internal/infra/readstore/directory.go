package readstore

import (
	"context"

	"booking-reconciler/internal/infra"
	sqlc "booking-reconciler/internal/infra/sqlc/generated"
	"booking-reconciler/internal/pkg/pgconv"
	"booking-reconciler/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type DirectoryQueries interface {
	GetOrderBookingID(ctx context.Context, db sqlc.DBTX, id int64) (pgtype.Int8, error)
	GetGuardianByUserID(ctx context.Context, db sqlc.DBTX, userID pgtype.UUID) (sqlc.Guardians, error)
	GetProviderByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Providers, error)
	GetUserEmailByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (string, error)
}

// DirectoryReadStore answers the small lookups around a booking: orders, guardians,
// provider contacts and account emails.
type DirectoryReadStore struct {
	queries DirectoryQueries
	db      sqlc.DBTX
}

func NewDirectoryReadStore(queries DirectoryQueries, db sqlc.DBTX) *DirectoryReadStore {
	return &DirectoryReadStore{
		queries: queries,
		db:      db,
	}
}

// BookingIDByOrderID returns nil for unknown orders and for orders not yet linked to a booking.
func (r *DirectoryReadStore) BookingIDByOrderID(ctx context.Context, orderID int64) (*int64, error) {
	id, err := r.queries.GetOrderBookingID(ctx, r.db, orderID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to read order", err)
	}
	return pgconv.Int64PtrFromPgtype(id), nil
}

func (r *DirectoryReadStore) GuardianIDByUserID(ctx context.Context, userID uuid.UUID) (*uuid.UUID, error) {
	row, err := r.queries.GetGuardianByUserID(ctx, r.db, pgconv.UUIDToPgtype(userID))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to read guardian", err)
	}
	return &row.ID, nil
}

func (r *DirectoryReadStore) ContactByID(ctx context.Context, providerID uuid.UUID) (*readmodel.ProviderContactRM, error) {
	row, err := r.queries.GetProviderByID(ctx, r.db, providerID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to read provider", err)
	}
	return &readmodel.ProviderContactRM{
		ID:    row.ID,
		Name:  row.Name,
		Email: row.Email,
	}, nil
}

// EmailByID returns "" for unknown users.
func (r *DirectoryReadStore) EmailByID(ctx context.Context, userID uuid.UUID) (string, error) {
	email, err := r.queries.GetUserEmailByID(ctx, r.db, userID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return "", nil
		}
		return "", infra.WrapRepoErr("failed to read user email", err)
	}
	return email, nil
}
