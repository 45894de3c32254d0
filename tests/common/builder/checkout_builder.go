//go:build unit || e2e

package builder

import (
	"time"

	"booking-reconciler/internal/domain/checkout"
	reqdto "booking-reconciler/internal/handler/dto/request"

	"github.com/google/uuid"
)

type CheckoutBuilder struct {
	Token        string
	ProviderID   uuid.UUID
	PackageType  string
	GuardianName string
	Email        string
	Phone        string
	FirstName    string
	LastName     string
	TotalCents   int64
	Currency     string
	UserID       *uuid.UUID
	CreatedAt    time.Time
}

func NewCheckoutBuilder() *CheckoutBuilder {
	return &CheckoutBuilder{
		Token:        uuid.NewString(),
		ProviderID:   uuid.New(),
		PackageType:  "single",
		GuardianName: "Pat Parent",
		Email:        "parent@example.com",
		Phone:        "555-0100",
		FirstName:    "Kid",
		LastName:     "Parent",
		TotalCents:   10000,
		Currency:     "usd",
		CreatedAt:    time.Date(2025, 1, 1, 8, 30, 0, 0, time.UTC),
	}
}

func (b *CheckoutBuilder) With(mutate func(*CheckoutBuilder)) *CheckoutBuilder {
	mutate(b)
	return b
}

func (b *CheckoutBuilder) WithProvider(id uuid.UUID) *CheckoutBuilder {
	b.ProviderID = id
	return b
}

func (b *CheckoutBuilder) WithPackage(p string, totalCents int64) *CheckoutBuilder {
	b.PackageType = p
	b.TotalCents = totalCents
	return b
}

func (b *CheckoutBuilder) WithUser(id uuid.UUID) *CheckoutBuilder {
	b.UserID = &id
	return b
}

func (b *CheckoutBuilder) BuildSnapshot() *checkout.Snapshot {
	return &checkout.Snapshot{
		Token: b.Token,
		Cart: []checkout.CartItem{
			{SKU: "lesson-" + b.PackageType, Name: "Lesson package", Quantity: 1, PriceCents: b.TotalCents},
		},
		Contact:     checkout.Contact{GuardianName: b.GuardianName, Email: b.Email, Phone: b.Phone},
		Participant: checkout.ParticipantInfo{FirstName: b.FirstName, LastName: b.LastName},
		ProviderID:  b.ProviderID,
		PackageType: b.PackageType,
		Schedule:    checkout.Schedule{Date: "2025-01-10", StartTime: "10:00", Location: "Court 1"},
		TotalCents:  b.TotalCents,
		Currency:    b.Currency,
		UserID:      b.UserID,
		CreatedAt:   b.CreatedAt,
	}
}

func (b *CheckoutBuilder) BuildCaptureRequestDTO() reqdto.CaptureSnapshotRequest {
	return reqdto.CaptureSnapshotRequest{
		Cart: []reqdto.CartItemRequest{
			{SKU: "lesson-" + b.PackageType, Name: "Lesson package", Quantity: 1, PriceCents: b.TotalCents},
		},
		Contact: reqdto.ContactRequest{GuardianName: b.GuardianName, Email: b.Email, Phone: b.Phone},
		Participant: reqdto.ParticipantRequest{
			FirstName: b.FirstName,
			LastName:  b.LastName,
		},
		ProviderID:  b.ProviderID,
		PackageType: b.PackageType,
		Schedule:    reqdto.ScheduleRequest{Date: "2025-01-10", StartTime: "10:00", Location: "Court 1"},
		TotalCents:  b.TotalCents,
		Currency:    b.Currency,
	}
}
