package repository

import (
	"context"

	"booking-reconciler/internal/domain/guardian"
	"booking-reconciler/internal/infra"
	"booking-reconciler/internal/infra/repository/converter"
	sqlc "booking-reconciler/internal/infra/sqlc/generated"
	"booking-reconciler/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type GuardianWriteQueries interface {
	GetGuardianByUserID(ctx context.Context, db sqlc.DBTX, userID pgtype.UUID) (sqlc.Guardians, error)
	GetGuardianByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Guardians, error)
	UpsertGuardianByEmail(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertGuardianByEmailParams) (sqlc.Guardians, error)
}

type GuardianRepository struct {
	queries GuardianWriteQueries
}

func NewGuardianRepository(queries GuardianWriteQueries) *GuardianRepository {
	return &GuardianRepository{queries: queries}
}

func (r *GuardianRepository) FindByUserID(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) (*guardian.Guardian, error) {
	row, err := r.queries.GetGuardianByUserID(ctx, tx, pgconv.UUIDToPgtype(userID))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find guardian by user", err)
	}
	return converter.GuardianFromRow(row), nil
}

func (r *GuardianRepository) FindByEmail(ctx context.Context, tx sqlc.DBTX, email guardian.Email) (*guardian.Guardian, error) {
	row, err := r.queries.GetGuardianByEmail(ctx, tx, email.Value())
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find guardian by email", err)
	}
	return converter.GuardianFromRow(row), nil
}

func (r *GuardianRepository) CreateOrGet(ctx context.Context, tx sqlc.DBTX, g *guardian.Guardian) (*guardian.Guardian, error) {
	row, err := r.queries.UpsertGuardianByEmail(ctx, tx, converter.GuardianToUpsertParams(g))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create guardian", err)
	}
	return converter.GuardianFromRow(row), nil
}

type ParticipantWriteQueries interface {
	GetParticipantByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Participants, error)
	CreateParticipant(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateParticipantParams) (sqlc.Participants, error)
}

type ParticipantRepository struct {
	queries ParticipantWriteQueries
}

func NewParticipantRepository(queries ParticipantWriteQueries) *ParticipantRepository {
	return &ParticipantRepository{queries: queries}
}

func (r *ParticipantRepository) FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*guardian.Participant, error) {
	row, err := r.queries.GetParticipantByID(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find participant", err)
	}
	return converter.ParticipantFromRow(row), nil
}

func (r *ParticipantRepository) Create(ctx context.Context, tx sqlc.DBTX, p *guardian.Participant) error {
	if _, err := r.queries.CreateParticipant(ctx, tx, converter.ParticipantToCreateParams(p)); err != nil {
		return infra.WrapRepoErr("failed to create participant", err)
	}
	return nil
}
