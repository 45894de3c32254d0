package booking

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Booking struct {
	id                   int64
	number               Number
	providerID           uuid.UUID
	guardianID           uuid.UUID
	participantID        uuid.UUID
	schedule             Schedule
	packageType          PackageType
	totalSessions        int
	sessionsRemaining    int
	total                Money
	currency             string
	fee                  Money
	payout               Money
	paymentTransactionID string
	status               Status
	escrowHoldID         *uuid.UUID
	packageCreditID      *uuid.UUID
	createdAt            time.Time
	updatedAt            time.Time
}

type NewParams struct {
	Number               Number
	ProviderID           uuid.UUID
	GuardianID           uuid.UUID
	ParticipantID        uuid.UUID
	Schedule             Schedule
	Package              PackageType
	Total                Money
	Currency             string
	Split                Split
	PaymentTransactionID string
	Now                  time.Time
}

// NewBooking builds a confirmed booking whose remaining sessions equal the package size.
func NewBooking(p NewParams) (*Booking, error) {
	if strings.TrimSpace(p.PaymentTransactionID) == "" {
		return nil, ErrEmptyTransactionID
	}
	if p.Number.String() == "" {
		return nil, ErrEmptyNumber
	}
	sessions := p.Package.Sessions()
	if sessions < 1 {
		return nil, ErrInvalidSessions
	}
	if p.Split.Payout.Cents() < 0 || p.Split.Fee.Cents() < 0 {
		return nil, ErrNegativeMoney
	}

	return &Booking{
		number:               p.Number,
		providerID:           p.ProviderID,
		guardianID:           p.GuardianID,
		participantID:        p.ParticipantID,
		schedule:             p.Schedule,
		packageType:          p.Package,
		totalSessions:        sessions,
		sessionsRemaining:    sessions,
		total:                p.Total,
		currency:             strings.ToLower(p.Currency),
		fee:                  p.Split.Fee,
		payout:               p.Split.Payout,
		paymentTransactionID: p.PaymentTransactionID,
		status:               StatusConfirmed,
		createdAt:            p.Now,
		updatedAt:            p.Now,
	}, nil
}

type Snapshot struct {
	ID                   int64
	Number               string
	ProviderID           uuid.UUID
	GuardianID           uuid.UUID
	ParticipantID        uuid.UUID
	Schedule             Schedule
	PackageType          string
	TotalSessions        int
	SessionsRemaining    int
	TotalCents           int64
	Currency             string
	FeeCents             int64
	PayoutCents          int64
	PaymentTransactionID string
	Status               string
	EscrowHoldID         *uuid.UUID
	PackageCreditID      *uuid.UUID
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// ReconstructBooking rebuilds a persisted booking, re-checking the session invariant.
func ReconstructBooking(s Snapshot) (*Booking, error) {
	status, err := NewStatus(s.Status)
	if err != nil {
		return nil, err
	}
	if s.TotalSessions < 1 {
		return nil, ErrInvalidSessions
	}
	if s.SessionsRemaining < 0 || s.SessionsRemaining > s.TotalSessions {
		return nil, ErrRemainingExceeded
	}
	total, err := NewMoney(s.TotalCents)
	if err != nil {
		return nil, err
	}

	return &Booking{
		id:                   s.ID,
		number:               Number{value: s.Number},
		providerID:           s.ProviderID,
		guardianID:           s.GuardianID,
		participantID:        s.ParticipantID,
		schedule:             s.Schedule,
		packageType:          PackageType(s.PackageType),
		totalSessions:        s.TotalSessions,
		sessionsRemaining:    s.SessionsRemaining,
		total:                total,
		currency:             s.Currency,
		fee:                  Money{cents: s.FeeCents},
		payout:               Money{cents: s.PayoutCents},
		paymentTransactionID: s.PaymentTransactionID,
		status:               status,
		escrowHoldID:         s.EscrowHoldID,
		packageCreditID:      s.PackageCreditID,
		createdAt:            s.CreatedAt,
		updatedAt:            s.UpdatedAt,
	}, nil
}

func (b *Booking) AttachEscrow(id uuid.UUID) {
	b.escrowHoldID = &id
}

func (b *Booking) AttachPackageCredit(id uuid.UUID) {
	b.packageCreditID = &id
}

func (b *Booking) IsMultiSession() bool {
	return b.totalSessions > 1
}

func (b *Booking) ID() int64                    { return b.id }
func (b *Booking) Number() Number               { return b.number }
func (b *Booking) ProviderID() uuid.UUID        { return b.providerID }
func (b *Booking) GuardianID() uuid.UUID        { return b.guardianID }
func (b *Booking) ParticipantID() uuid.UUID     { return b.participantID }
func (b *Booking) Schedule() Schedule           { return b.schedule }
func (b *Booking) PackageType() PackageType     { return b.packageType }
func (b *Booking) TotalSessions() int           { return b.totalSessions }
func (b *Booking) SessionsRemaining() int       { return b.sessionsRemaining }
func (b *Booking) Total() Money                 { return b.total }
func (b *Booking) Currency() string             { return b.currency }
func (b *Booking) Fee() Money                   { return b.fee }
func (b *Booking) Payout() Money                { return b.payout }
func (b *Booking) PaymentTransactionID() string { return b.paymentTransactionID }
func (b *Booking) Status() Status               { return b.status }
func (b *Booking) EscrowHoldID() *uuid.UUID     { return b.escrowHoldID }
func (b *Booking) PackageCreditID() *uuid.UUID  { return b.packageCreditID }
func (b *Booking) CreatedAt() time.Time         { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time         { return b.updatedAt }
