package commands

import (
	"context"
	"time"

	"booking-reconciler/internal/domain/checkout"
	"booking-reconciler/internal/pkg/clock"
	"booking-reconciler/internal/pkg/errs"
	"booking-reconciler/internal/usecase/shared"

	"github.com/google/uuid"
)

type CaptureSnapshotRequest struct {
	Cart        []checkout.CartItem
	Contact     checkout.Contact
	Participant checkout.ParticipantInfo
	ProviderID  uuid.UUID
	PackageType string
	Schedule    checkout.Schedule
	TotalCents  int64
	Currency    string
}

type CaptureSnapshotResult struct {
	Token     string
	ExpiresAt time.Time
}

type CheckoutCommands interface {
	CaptureSnapshot(ctx context.Context, req CaptureSnapshotRequest, userID *uuid.UUID) (*CaptureSnapshotResult, error)
}

type checkoutUseCaseImpl struct {
	snapshots shared.SnapshotStore
	ttl       time.Duration
	clock     clock.Clock
}

func NewCheckoutUseCase(snapshots shared.SnapshotStore, ttl time.Duration, clk clock.Clock) CheckoutCommands {
	return &checkoutUseCaseImpl{snapshots: snapshots, ttl: ttl, clock: clk}
}

func (uc *checkoutUseCaseImpl) CaptureSnapshot(ctx context.Context, req CaptureSnapshotRequest, userID *uuid.UUID) (*CaptureSnapshotResult, error) {
	now := uc.clock.Now()
	snap, err := checkout.NewSnapshot(checkout.NewSnapshotParams{
		Cart:        req.Cart,
		Contact:     req.Contact,
		Participant: req.Participant,
		ProviderID:  req.ProviderID,
		PackageType: req.PackageType,
		Schedule:    req.Schedule,
		TotalCents:  req.TotalCents,
		Currency:    req.Currency,
		UserID:      userID,
		Now:         now,
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidationFailed)
	}

	if err := uc.snapshots.Put(ctx, snap, uc.ttl); err != nil {
		return nil, errs.Wrap(err, "failed to store checkout snapshot")
	}
	return &CaptureSnapshotResult{Token: snap.Token, ExpiresAt: now.Add(uc.ttl)}, nil
}
