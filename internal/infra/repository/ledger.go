package repository

import (
	"context"

	"booking-reconciler/internal/domain/booking"
	"booking-reconciler/internal/infra"
	"booking-reconciler/internal/infra/repository/converter"
	sqlc "booking-reconciler/internal/infra/sqlc/generated"
)

type LedgerWriteQueries interface {
	CreateEscrowHold(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateEscrowHoldParams) (sqlc.EscrowHolds, error)
	CreatePackageCredit(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePackageCreditParams) (sqlc.PackageCredits, error)
}

type LedgerRepository struct {
	queries LedgerWriteQueries
}

func NewLedgerRepository(queries LedgerWriteQueries) *LedgerRepository {
	return &LedgerRepository{queries: queries}
}

func (r *LedgerRepository) CreateEscrowHold(ctx context.Context, tx sqlc.DBTX, hold *booking.EscrowHold, currency string) error {
	if _, err := r.queries.CreateEscrowHold(ctx, tx, converter.EscrowHoldToCreateParams(hold, currency)); err != nil {
		return infra.WrapRepoErr("failed to create escrow hold", err)
	}
	return nil
}

func (r *LedgerRepository) CreatePackageCredit(ctx context.Context, tx sqlc.DBTX, credit *booking.PackageCredit) error {
	if _, err := r.queries.CreatePackageCredit(ctx, tx, converter.PackageCreditToCreateParams(credit)); err != nil {
		return infra.WrapRepoErr("failed to create package credit", err)
	}
	return nil
}
