package converter

import (
	"booking-reconciler/internal/domain/booking"
	"booking-reconciler/internal/domain/guardian"
	sqlc "booking-reconciler/internal/infra/sqlc/generated"
	"booking-reconciler/internal/pkg/pgconv"
)

func BookingToInsertParams(b *booking.Booking) sqlc.InsertBookingIfAbsentParams {
	s := b.Schedule()
	return sqlc.InsertBookingIfAbsentParams{
		Number:               b.Number().String(),
		ProviderID:           b.ProviderID(),
		GuardianID:           b.GuardianID(),
		ParticipantID:        b.ParticipantID(),
		SessionDate:          pgconv.StringToPgtype(s.Date),
		StartTime:            pgconv.StringToPgtype(s.StartTime),
		Location:             pgconv.StringToPgtype(s.Location),
		PackageType:          b.PackageType().String(),
		TotalSessions:        int32(b.TotalSessions()),     // #nosec G115 -- package table caps at 10
		SessionsRemaining:    int32(b.SessionsRemaining()), // #nosec G115
		TotalCents:           b.Total().Cents(),
		Currency:             b.Currency(),
		FeeCents:             b.Fee().Cents(),
		PayoutCents:          b.Payout().Cents(),
		PaymentTransactionID: b.PaymentTransactionID(),
		Status:               b.Status().String(),
		CreatedAt:            pgconv.TimeToPgtype(b.CreatedAt()),
		UpdatedAt:            pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

func BookingFromRow(row sqlc.Bookings) (*booking.Booking, error) {
	return booking.ReconstructBooking(booking.Snapshot{
		ID:            row.ID,
		Number:        row.Number,
		ProviderID:    row.ProviderID,
		GuardianID:    row.GuardianID,
		ParticipantID: row.ParticipantID,
		Schedule: booking.Schedule{
			Date:      pgconv.StringFromPgtype(row.SessionDate),
			StartTime: pgconv.StringFromPgtype(row.StartTime),
			Location:  pgconv.StringFromPgtype(row.Location),
		},
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
		UpdatedAt:            pgconv.TimeFromPgtype(row.UpdatedAt),
	})
}

func GuardianFromRow(row sqlc.Guardians) *guardian.Guardian {
	return guardian.ReconstructGuardian(
		row.ID,
		row.Name,
		row.Email,
		pgconv.StringFromPgtype(row.Phone),
		pgconv.UUIDPtrFromPgtype(row.UserID),
		pgconv.TimeFromPgtype(row.CreatedAt),
	)
}

func GuardianToUpsertParams(g *guardian.Guardian) sqlc.UpsertGuardianByEmailParams {
	return sqlc.UpsertGuardianByEmailParams{
		ID:        g.ID(),
		UserID:    pgconv.UUIDPtrToPgtype(g.UserID()),
		Name:      g.Name(),
		Email:     g.Email().Value(),
		Phone:     pgconv.StringToPgtype(g.Phone()),
		CreatedAt: pgconv.TimeToPgtype(g.CreatedAt()),
	}
}

func ParticipantFromRow(row sqlc.Participants) *guardian.Participant {
	return guardian.ReconstructParticipant(
		row.ID,
		row.GuardianID,
		row.FirstName,
		pgconv.StringFromPgtype(row.LastName),
		pgconv.TimeFromPgtype(row.CreatedAt),
	)
}

func ParticipantToCreateParams(p *guardian.Participant) sqlc.CreateParticipantParams {
	return sqlc.CreateParticipantParams{
		ID:         p.ID(),
		GuardianID: p.GuardianID(),
		FirstName:  p.FirstName(),
		LastName:   pgconv.StringToPgtype(p.LastName()),
		CreatedAt:  pgconv.TimeToPgtype(p.CreatedAt()),
	}
}

func EscrowHoldToCreateParams(h *booking.EscrowHold, currency string) sqlc.CreateEscrowHoldParams {
	return sqlc.CreateEscrowHoldParams{
		ID:          h.ID(),
		BookingID:   h.BookingID(),
		AmountCents: h.Amount().Cents(),
		Currency:    currency,
		State:       string(h.State()),
		CreatedAt:   pgconv.TimeToPgtype(h.CreatedAt()),
	}
}

func PackageCreditToCreateParams(c *booking.PackageCredit) sqlc.CreatePackageCreditParams {
	return sqlc.CreatePackageCreditParams{
		ID:                   c.ID(),
		GuardianID:           c.GuardianID(),
		ProviderID:           c.ProviderID(),
		PackageType:          c.PackageType().String(),
		TotalCredits:         int32(c.TotalCredits()),     // #nosec G115
		RemainingCredits:     int32(c.RemainingCredits()), // #nosec G115
		PricePerCreditCents:  c.PricePerCredit().Cents(),
		ExpiresAt:            pgconv.TimeToPgtype(c.ExpiresAt()),
		PaymentTransactionID: c.PaymentTransactionID(),
		CreatedAt:            pgconv.TimeToPgtype(c.CreatedAt()),
	}
}
