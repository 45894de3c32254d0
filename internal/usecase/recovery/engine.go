package recovery

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"booking-reconciler/internal/domain/booking"
	"booking-reconciler/internal/domain/checkout"
	"booking-reconciler/internal/domain/guardian"
	"booking-reconciler/internal/infra"
	"booking-reconciler/internal/pkg/clock"
	"booking-reconciler/internal/pkg/errs"
	"booking-reconciler/internal/usecase/readmodel"
	"booking-reconciler/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrPreconditionUnmet  = errors.New("recovery preconditions not met")
	ErrPaymentNotVerified = errors.New("payment transaction not verified")
	ErrBookingUnresolved  = errors.New("booking could not be persisted")

	// errLostRace rolls back the loser's guardian/participant rows when a concurrent
	// attempt committed the booking first.
	errLostRace = errors.New("booking already recorded by a concurrent attempt")
)

const (
	EventBookingConfirmed = "booking.confirmed"

	numberAttempts       = 3
	numberConstraintName = "bookings_number_key"
)

type Request struct {
	PaymentTransactionID string
	CheckoutToken        string
	UserID               *uuid.UUID
}

type Result struct {
	Booking *readmodel.BookingRM
	// Existing is set when a booking for the transaction was already recorded.
	Existing bool
}

type Config struct {
	FeePercent     float64
	CreditValidity time.Duration
}

type BookingConfirmedEvent struct {
	BookingID            int64     `json:"booking_id"`
	Number               string    `json:"number"`
	ProviderID           uuid.UUID `json:"provider_id"`
	GuardianID           uuid.UUID `json:"guardian_id"`
	PaymentTransactionID string    `json:"payment_transaction_id"`
	PackageType          string    `json:"package_type"`
	TotalSessions        int       `json:"total_sessions"`
	TotalCents           int64     `json:"total_cents"`
	FeeCents             int64     `json:"fee_cents"`
	PayoutCents          int64     `json:"payout_cents"`
	Currency             string    `json:"currency"`
	Recovered            bool      `json:"recovered"`
	OccurredAt           time.Time `json:"occurred_at"`
}

type Engine struct {
	uow       shared.UnitOfWork
	bookings  shared.BookingReader
	snapshots shared.SnapshotStore
	gateway   shared.PaymentGateway
	users     shared.UserDirectory
	events    shared.EventPublisher
	clock     clock.Clock
	logger    *slog.Logger
	cfg       Config
}

func NewEngine(
	uow shared.UnitOfWork,
	bookings shared.BookingReader,
	snapshots shared.SnapshotStore,
	gateway shared.PaymentGateway,
	users shared.UserDirectory,
	events shared.EventPublisher,
	clock clock.Clock,
	logger *slog.Logger,
	cfg Config,
) *Engine {
	return &Engine{
		uow:       uow,
		bookings:  bookings,
		snapshots: snapshots,
		gateway:   gateway,
		users:     users,
		events:    events,
		clock:     clock,
		logger:    logger,
		cfg:       cfg,
	}
}

// Recover rebuilds the booking for a succeeded payment from its checkout snapshot.
// It is safe to call repeatedly and concurrently for the same transaction.
func (e *Engine) Recover(ctx context.Context, req Request) (*Result, error) {
	txnID := strings.TrimSpace(req.PaymentTransactionID)
	if txnID == "" {
		return nil, errs.Wrap(ErrPreconditionUnmet, "payment transaction id missing")
	}

	existing, err := e.bookings.ByPaymentTransactionID(ctx, txnID)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "idempotency check failed"), ErrBookingUnresolved)
	}
	if existing != nil {
		return &Result{Booking: existing, Existing: true}, nil
	}

	payment, err := e.verifyPayment(ctx, txnID)
	if err != nil {
		return nil, err
	}

	token := strings.TrimSpace(req.CheckoutToken)
	if token == "" {
		token = payment.CheckoutToken()
	}
	if token == "" {
		return nil, errs.Wrap(ErrPreconditionUnmet, "checkout token missing")
	}
	snap, err := e.snapshots.Get(ctx, token)
	if err != nil {
		e.logger.WarnContext(ctx, "checkout snapshot unavailable", "token", token, "error", err)
		return nil, errs.Wrap(ErrPreconditionUnmet, "checkout snapshot unavailable")
	}
	if snap == nil {
		// a concurrent attempt may have consumed the snapshot after our first check
		again, readErr := e.bookings.ByPaymentTransactionID(ctx, txnID)
		if readErr != nil {
			e.logger.WarnContext(ctx, "booking re-read after missing snapshot failed",
				"transaction_id", txnID,
				"token", token,
				"error", readErr,
			)
			return nil, errs.Mark(errs.Wrap(readErr, "booking re-read failed"), ErrBookingUnresolved)
		}
		if again != nil {
			return &Result{Booking: again, Existing: true}, nil
		}
		return nil, errs.Wrap(ErrPreconditionUnmet, "checkout snapshot not found")
	}

	userID := req.UserID
	if userID == nil {
		userID = snap.UserID
	}
	contactEmail := e.contactEmail(ctx, snap, userID)
	total := e.verifiedTotal(ctx, snap, payment)
	currency := payment.Currency
	if currency == "" {
		currency = snap.Currency
	}

	var created *booking.Booking
	for attempt := 1; attempt <= numberAttempts; attempt++ {
		created, err = e.persist(ctx, snap, userID, contactEmail, txnID, total, currency)
		if err == nil || infra.ConstraintName(err) != numberConstraintName {
			break
		}
		e.logger.WarnContext(ctx, "booking number collision, regenerating", "attempt", attempt)
	}

	switch {
	case errs.Is(err, errLostRace):
		e.deleteSnapshot(ctx, token)
		winner, readErr := e.bookings.ByPaymentTransactionID(ctx, txnID)
		if readErr != nil || winner == nil {
			return nil, errs.Mark(errs.Wrap(readErr, "concurrent booking not readable"), ErrBookingUnresolved)
		}
		return &Result{Booking: winner, Existing: true}, nil
	case errs.Is(err, ErrPreconditionUnmet):
		return nil, err
	case err != nil:
		e.logger.ErrorContext(ctx, "booking recovery failed",
			"transaction_id", txnID,
			"token", token,
			"provider_id", snap.ProviderID,
			"error", err,
		)
		return nil, errs.Mark(err, ErrBookingUnresolved)
	}

	e.logger.InfoContext(ctx, "booking recovered from checkout snapshot",
		"booking_id", created.ID(),
		"booking_number", created.Number().String(),
		"transaction_id", txnID,
	)
	e.deleteSnapshot(ctx, token)
	e.publishConfirmed(ctx, created)

	view, err := e.bookings.ByID(ctx, created.ID())
	if err != nil || view == nil {
		return nil, errs.Mark(errs.Wrap(err, "recovered booking not readable"), ErrBookingUnresolved)
	}
	return &Result{Booking: view}, nil
}

func (e *Engine) verifyPayment(ctx context.Context, txnID string) (*checkout.PaymentTransaction, error) {
	payment, err := e.gateway.Lookup(ctx, txnID)
	if err != nil {
		e.logger.WarnContext(ctx, "payment lookup failed, skipping recovery", "transaction_id", txnID, "error", err)
		return nil, errs.Mark(errs.Wrap(err, "payment lookup failed"), ErrPaymentNotVerified)
	}
	if !payment.Succeeded() {
		status := ""
		if payment != nil {
			status = payment.Status
		}
		e.logger.InfoContext(ctx, "payment not succeeded, skipping recovery", "transaction_id", txnID, "status", status)
		return nil, ErrPaymentNotVerified
	}
	return payment, nil
}

// contactEmail prefers the snapshot address and falls back to the signed-in user's account.
func (e *Engine) contactEmail(ctx context.Context, snap *checkout.Snapshot, userID *uuid.UUID) string {
	if email := strings.TrimSpace(snap.Contact.Email); email != "" {
		return email
	}
	if userID == nil {
		return ""
	}
	email, err := e.users.EmailByID(ctx, *userID)
	if err != nil {
		e.logger.WarnContext(ctx, "user email lookup failed", "user_id", *userID, "error", err)
		return ""
	}
	return email
}

func (e *Engine) verifiedTotal(ctx context.Context, snap *checkout.Snapshot, payment *checkout.PaymentTransaction) int64 {
	if payment.AmountCents > 0 && payment.AmountCents != snap.TotalCents {
		e.logger.WarnContext(ctx, "snapshot total differs from charged amount, using charged amount",
			"transaction_id", payment.ID,
			"snapshot_total_cents", snap.TotalCents,
			"charged_cents", payment.AmountCents,
		)
		return payment.AmountCents
	}
	return snap.TotalCents
}

func (e *Engine) persist(
	ctx context.Context,
	snap *checkout.Snapshot,
	userID *uuid.UUID,
	contactEmail string,
	txnID string,
	totalCents int64,
	currency string,
) (*booking.Booking, error) {
	now := e.clock.Now()

	total, err := booking.NewMoney(totalCents)
	if err != nil {
		return nil, errs.Mark(err, ErrPreconditionUnmet)
	}
	pkg := booking.ParsePackageType(snap.PackageType)
	split, err := booking.Derive(total, e.cfg.FeePercent, pkg.Sessions())
	if err != nil {
		return nil, errs.Mark(err, ErrPreconditionUnmet)
	}
	number, err := booking.GenerateNumber(now)
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate booking number")
	}

	var created *booking.Booking
	err = e.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		g, err := e.resolveGuardian(ctx, tx, snap, userID, contactEmail, now)
		if err != nil {
			return err
		}
		p, err := e.resolveParticipant(ctx, tx, snap, g, now)
		if err != nil {
			return err
		}

		b, err := booking.NewBooking(booking.NewParams{
			Number:        number,
			ProviderID:    snap.ProviderID,
			GuardianID:    g.ID(),
			ParticipantID: p.ID(),
			Schedule: booking.Schedule{
				Date:      snap.Schedule.Date,
				StartTime: snap.Schedule.StartTime,
				Location:  snap.Schedule.Location,
			},
			Package:              pkg,
			Total:                total,
			Currency:             currency,
			Split:                split,
			PaymentTransactionID: txnID,
			Now:                  now,
		})
		if err != nil {
			return errs.Mark(err, ErrPreconditionUnmet)
		}

		stored, inserted, err := tx.Bookings().InsertOrGet(ctx, tx.DB(), b)
		if err != nil {
			return err
		}
		if !inserted {
			return errLostRace
		}

		if err := e.recordLedger(ctx, tx, stored, split, now); err != nil {
			return err
		}
		created = stored
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (e *Engine) resolveGuardian(
	ctx context.Context,
	tx shared.Tx,
	snap *checkout.Snapshot,
	userID *uuid.UUID,
	contactEmail string,
	now time.Time,
) (*guardian.Guardian, error) {
	if userID != nil {
		g, err := tx.Guardians().FindByUserID(ctx, tx.DB(), *userID)
		if err != nil || g != nil {
			return g, err
		}
	}

	email, err := guardian.NewEmail(contactEmail)
	if err != nil {
		return nil, errs.Mark(errs.Wrapf(err, "contact email %q", contactEmail), ErrPreconditionUnmet)
	}
	g, err := tx.Guardians().FindByEmail(ctx, tx.DB(), email)
	if err != nil || g != nil {
		return g, err
	}

	fresh, err := guardian.NewGuardian(snap.Contact.GuardianName, email, snap.Contact.Phone, userID, now)
	if err != nil {
		return nil, errs.Mark(err, ErrPreconditionUnmet)
	}
	return tx.Guardians().CreateOrGet(ctx, tx.DB(), fresh)
}

func (e *Engine) resolveParticipant(
	ctx context.Context,
	tx shared.Tx,
	snap *checkout.Snapshot,
	g *guardian.Guardian,
	now time.Time,
) (*guardian.Participant, error) {
	if id := snap.Participant.ID; id != nil {
		p, err := tx.Participants().FindByID(ctx, tx.DB(), *id)
		if err != nil {
			return nil, err
		}
		if p != nil {
			if err := p.OwnedBy(g.ID()); err == nil {
				return p, nil
			}
			e.logger.WarnContext(ctx, "snapshot participant owned by another guardian, creating a new one",
				"participant_id", *id,
				"guardian_id", g.ID(),
			)
		}
	}

	firstName := snap.Participant.FirstName
	if strings.TrimSpace(firstName) == "" {
		firstName = g.Name()
	}
	p, err := guardian.NewParticipant(g.ID(), firstName, snap.Participant.LastName, now)
	if err != nil {
		return nil, errs.Mark(err, ErrPreconditionUnmet)
	}
	if err := tx.Participants().Create(ctx, tx.DB(), p); err != nil {
		return nil, err
	}
	return p, nil
}

func (e *Engine) recordLedger(ctx context.Context, tx shared.Tx, b *booking.Booking, split booking.Split, now time.Time) error {
	hold, err := booking.NewEscrowHold(b, now)
	if err != nil {
		return err
	}
	if err := tx.Ledger().CreateEscrowHold(ctx, tx.DB(), hold, b.Currency()); err != nil {
		return err
	}
	b.AttachEscrow(hold.ID())

	var creditID *uuid.UUID
	if b.IsMultiSession() {
		credit, err := booking.NewPackageCredit(b, split.PerSession, now, e.cfg.CreditValidity)
		if err != nil {
			return err
		}
		if err := tx.Ledger().CreatePackageCredit(ctx, tx.DB(), credit); err != nil {
			return err
		}
		id := credit.ID()
		creditID = &id
		b.AttachPackageCredit(id)
	}

	return tx.Bookings().LinkLedger(ctx, tx.DB(), b.ID(), hold.ID(), creditID)
}

func (e *Engine) deleteSnapshot(ctx context.Context, token string) {
	if err := e.snapshots.Delete(ctx, token); err != nil {
		e.logger.WarnContext(ctx, "failed to delete consumed checkout snapshot", "token", token, "error", err)
	}
}

func (e *Engine) publishConfirmed(ctx context.Context, b *booking.Booking) {
	evt := BookingConfirmedEvent{
		BookingID:            b.ID(),
		Number:               b.Number().String(),
		ProviderID:           b.ProviderID(),
		GuardianID:           b.GuardianID(),
		PaymentTransactionID: b.PaymentTransactionID(),
		PackageType:          b.PackageType().String(),
		TotalSessions:        b.TotalSessions(),
		TotalCents:           b.Total().Cents(),
		FeeCents:             b.Fee().Cents(),
		PayoutCents:          b.Payout().Cents(),
		Currency:             b.Currency(),
		Recovered:            true,
		OccurredAt:           e.clock.Now().UTC(),
	}
	if err := e.events.PublishJSON(ctx, EventBookingConfirmed, evt); err != nil {
		e.logger.WarnContext(ctx, "failed to publish booking event", "booking_id", b.ID(), "error", err)
	}
}
