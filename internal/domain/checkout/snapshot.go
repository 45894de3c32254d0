package checkout

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingProvider = errors.New("provider id is required")
	ErrEmptyCart       = errors.New("cart cannot be empty")
	ErrNegativeTotal   = errors.New("total cannot be negative")
	ErrMissingContact  = errors.New("contact email or authenticated user is required")
)

type CartItem struct {
	SKU        string
	Name       string
	Quantity   int
	PriceCents int64
}

type Contact struct {
	GuardianName string
	Email        string
	Phone        string
}

type ParticipantInfo struct {
	ID        *uuid.UUID
	FirstName string
	LastName  string
}

type Schedule struct {
	Date      string
	StartTime string
	Location  string
}

// Snapshot is the cart and contact state captured at checkout start.
// It is the only source for rebuilding a booking after payment when the
// normal write path never ran.
type Snapshot struct {
	Token       string
	Cart        []CartItem
	Contact     Contact
	Participant ParticipantInfo
	ProviderID  uuid.UUID
	PackageType string
	Schedule    Schedule
	TotalCents  int64
	Currency    string
	UserID      *uuid.UUID
	CreatedAt   time.Time
}

type NewSnapshotParams struct {
	Cart        []CartItem
	Contact     Contact
	Participant ParticipantInfo
	ProviderID  uuid.UUID
	PackageType string
	Schedule    Schedule
	TotalCents  int64
	Currency    string
	UserID      *uuid.UUID
	Now         time.Time
}

func NewSnapshot(p NewSnapshotParams) (*Snapshot, error) {
	if p.ProviderID == uuid.Nil {
		return nil, ErrMissingProvider
	}
	if len(p.Cart) == 0 {
		return nil, ErrEmptyCart
	}
	if p.TotalCents < 0 {
		return nil, ErrNegativeTotal
	}
	if strings.TrimSpace(p.Contact.Email) == "" && p.UserID == nil {
		return nil, ErrMissingContact
	}
	currency := strings.ToLower(strings.TrimSpace(p.Currency))
	if currency == "" {
		currency = "usd"
	}

	return &Snapshot{
		Token:       uuid.NewString(),
		Cart:        p.Cart,
		Contact:     p.Contact,
		Participant: p.Participant,
		ProviderID:  p.ProviderID,
		PackageType: p.PackageType,
		Schedule:    p.Schedule,
		TotalCents:  p.TotalCents,
		Currency:    currency,
		UserID:      p.UserID,
		CreatedAt:   p.Now,
	}, nil
}
