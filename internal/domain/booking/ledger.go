package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrBookingNotPersisted = errors.New("booking has no id yet")
	ErrNotMultiSession     = errors.New("package credit requires a multi-session package")
)

type EscrowHold struct {
	id        uuid.UUID
	bookingID int64
	amount    Money
	state     EscrowState
	createdAt time.Time
}

// NewEscrowHold holds the full booking total.
func NewEscrowHold(b *Booking, now time.Time) (*EscrowHold, error) {
	if b.ID() == 0 {
		return nil, ErrBookingNotPersisted
	}
	return &EscrowHold{
		id:        uuid.New(),
		bookingID: b.ID(),
		amount:    b.Total(),
		state:     EscrowHeld,
		createdAt: now,
	}, nil
}

func (e *EscrowHold) ID() uuid.UUID        { return e.id }
func (e *EscrowHold) BookingID() int64     { return e.bookingID }
func (e *EscrowHold) Amount() Money        { return e.amount }
func (e *EscrowHold) State() EscrowState   { return e.state }
func (e *EscrowHold) CreatedAt() time.Time { return e.createdAt }

type PackageCredit struct {
	id                   uuid.UUID
	guardianID           uuid.UUID
	providerID           uuid.UUID
	packageType          PackageType
	totalCredits         int
	remainingCredits     int
	pricePerCredit       Money
	expiresAt            time.Time
	paymentTransactionID string
	createdAt            time.Time
}

// NewPackageCredit records the unused sessions of a multi-session purchase.
// The first session is consumed by the originating booking.
func NewPackageCredit(b *Booking, perSession Money, now time.Time, validity time.Duration) (*PackageCredit, error) {
	if !b.IsMultiSession() {
		return nil, ErrNotMultiSession
	}
	if validity <= 0 {
		validity = DefaultCreditValidity
	}
	return &PackageCredit{
		id:                   uuid.New(),
		guardianID:           b.GuardianID(),
		providerID:           b.ProviderID(),
		packageType:          b.PackageType(),
		totalCredits:         b.TotalSessions(),
		remainingCredits:     b.TotalSessions() - 1,
		pricePerCredit:       perSession,
		expiresAt:            now.Add(validity),
		paymentTransactionID: b.PaymentTransactionID(),
		createdAt:            now,
	}, nil
}

func (c *PackageCredit) ID() uuid.UUID                { return c.id }
func (c *PackageCredit) GuardianID() uuid.UUID        { return c.guardianID }
func (c *PackageCredit) ProviderID() uuid.UUID        { return c.providerID }
func (c *PackageCredit) PackageType() PackageType     { return c.packageType }
func (c *PackageCredit) TotalCredits() int            { return c.totalCredits }
func (c *PackageCredit) RemainingCredits() int        { return c.remainingCredits }
func (c *PackageCredit) PricePerCredit() Money        { return c.pricePerCredit }
func (c *PackageCredit) ExpiresAt() time.Time         { return c.expiresAt }
func (c *PackageCredit) PaymentTransactionID() string { return c.paymentTransactionID }
func (c *PackageCredit) CreatedAt() time.Time         { return c.createdAt }
