//go:build unit || e2e

package builder

import (
	"time"

	"booking-reconciler/internal/domain/booking"
	sqlc "booking-reconciler/internal/infra/sqlc/generated"
	"booking-reconciler/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingBuilder struct {
	ID                   int64
	Number               string
	ProviderID           uuid.UUID
	ProviderName         string
	GuardianID           uuid.UUID
	GuardianName         string
	GuardianEmail        string
	ParticipantID        uuid.UUID
	ParticipantName      string
	Schedule             booking.Schedule
	PackageType          booking.PackageType
	TotalCents           int64
	Currency             string
	FeePercent           float64
	PaymentTransactionID string
	CreatedAt            time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:                   1,
		Number:               "BK-20250101-ABCDEFGH",
		ProviderID:           uuid.New(),
		ProviderName:         "Coach Carter",
		GuardianID:           uuid.New(),
		GuardianName:         "Pat Parent",
		GuardianEmail:        "parent@example.com",
		ParticipantID:        uuid.New(),
		ParticipantName:      "Kid Parent",
		Schedule:             booking.Schedule{Date: "2025-01-10", StartTime: "10:00", Location: "Court 1"},
		PackageType:          booking.PackageSingle,
		TotalCents:           10000,
		Currency:             "usd",
		FeePercent:           15,
		PaymentTransactionID: "pi_" + uuid.NewString()[:12],
		CreatedAt:            time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithPackage(p booking.PackageType) *BookingBuilder {
	b.PackageType = p
	return b
}

func (b *BookingBuilder) WithTotalCents(cents int64) *BookingBuilder {
	b.TotalCents = cents
	return b
}

func (b *BookingBuilder) WithPaymentTransactionID(id string) *BookingBuilder {
	b.PaymentTransactionID = id
	return b
}

func (b *BookingBuilder) WithID(id int64) *BookingBuilder {
	b.ID = id
	return b
}

// BuildDomain returns an unsaved booking (ID 0).
func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	total, err := booking.NewMoney(b.TotalCents)
	if err != nil {
		return nil, err
	}
	split, err := booking.Derive(total, b.FeePercent, b.PackageType.Sessions())
	if err != nil {
		return nil, err
	}
	number, err := booking.NewNumber(b.Number)
	if err != nil {
		return nil, err
	}
	return booking.NewBooking(booking.NewParams{
		Number:               number,
		ProviderID:           b.ProviderID,
		GuardianID:           b.GuardianID,
		ParticipantID:        b.ParticipantID,
		Schedule:             b.Schedule,
		Package:              b.PackageType,
		Total:                total,
		Currency:             b.Currency,
		Split:                split,
		PaymentTransactionID: b.PaymentTransactionID,
		Now:                  b.CreatedAt,
	})
}

// BuildPersisted returns the booking as it would be reconstructed from storage.
func (b *BookingBuilder) BuildPersisted() (*booking.Booking, error) {
	return booking.ReconstructBooking(b.snapshot())
}

func (b *BookingBuilder) snapshot() booking.Snapshot {
	total := booking.MustMoney(b.TotalCents)
	split, _ := booking.Derive(total, b.FeePercent, b.PackageType.Sessions())
	return booking.Snapshot{
		ID:                   b.ID,
		Number:               b.Number,
		ProviderID:           b.ProviderID,
		GuardianID:           b.GuardianID,
		ParticipantID:        b.ParticipantID,
		Schedule:             b.Schedule,
		PackageType:          b.PackageType.String(),
		TotalSessions:        b.PackageType.Sessions(),
		SessionsRemaining:    b.PackageType.Sessions(),
		TotalCents:           b.TotalCents,
		Currency:             b.Currency,
		FeeCents:             split.Fee.Cents(),
		PayoutCents:          split.Payout.Cents(),
		PaymentTransactionID: b.PaymentTransactionID,
		Status:               booking.StatusConfirmed.String(),
		CreatedAt:            b.CreatedAt,
		UpdatedAt:            b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildInfra() sqlc.Bookings {
	s := b.snapshot()
	return sqlc.Bookings{
		ID:                   s.ID,
		Number:               s.Number,
		ProviderID:           s.ProviderID,
		GuardianID:           s.GuardianID,
		ParticipantID:        s.ParticipantID,
		SessionDate:          pgtype.Text{String: s.Schedule.Date, Valid: s.Schedule.Date != ""},
		StartTime:            pgtype.Text{String: s.Schedule.StartTime, Valid: s.Schedule.StartTime != ""},
		Location:             pgtype.Text{String: s.Schedule.Location, Valid: s.Schedule.Location != ""},
		PackageType:          s.PackageType,
		TotalSessions:        int32(s.TotalSessions),     // #nosec G115
		SessionsRemaining:    int32(s.SessionsRemaining), // #nosec G115
		TotalCents:           s.TotalCents,
		Currency:             s.Currency,
		FeeCents:             s.FeeCents,
		PayoutCents:          s.PayoutCents,
		PaymentTransactionID: s.PaymentTransactionID,
		Status:               s.Status,
		CreatedAt:            pgtype.Timestamptz{Time: s.CreatedAt, Valid: true},
		UpdatedAt:            pgtype.Timestamptz{Time: s.UpdatedAt, Valid: true},
	}
}

func (b *BookingBuilder) BuildReadModel() *readmodel.BookingRM {
	s := b.snapshot()
	return &readmodel.BookingRM{
		ID:                   s.ID,
		Number:               s.Number,
		ProviderID:           s.ProviderID,
		ProviderName:         b.ProviderName,
		GuardianID:           s.GuardianID,
		GuardianName:         b.GuardianName,
		GuardianEmail:        b.GuardianEmail,
		ParticipantID:        s.ParticipantID,
		ParticipantName:      b.ParticipantName,
		SessionDate:          s.Schedule.Date,
		StartTime:            s.Schedule.StartTime,
		Location:             s.Schedule.Location,
		PackageType:          s.PackageType,
		TotalSessions:        s.TotalSessions,
		SessionsRemaining:    s.SessionsRemaining,
		TotalCents:           s.TotalCents,
		Currency:             s.Currency,
		FeeCents:             s.FeeCents,
		PayoutCents:          s.PayoutCents,
		PaymentTransactionID: s.PaymentTransactionID,
		Status:               s.Status,
		CreatedAt:            s.CreatedAt,
	}
}
