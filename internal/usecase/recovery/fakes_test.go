//go:build unit

package recovery_test

import (
	"context"
	"maps"
	"sync"
	"time"

	"booking-reconciler/internal/domain/booking"
	"booking-reconciler/internal/domain/checkout"
	"booking-reconciler/internal/domain/guardian"
	sqlc "booking-reconciler/internal/infra/sqlc/generated"
	"booking-reconciler/internal/usecase/readmodel"
	"booking-reconciler/internal/usecase/shared"

	"github.com/google/uuid"
)

// memState is an in-memory stand-in for the relational store. Each transaction works
// on a copy that replaces the committed state only when fn succeeds.
type memState struct {
	nextID       int64
	bookings     map[int64]booking.Snapshot
	byTxn        map[string]int64
	guardians    map[uuid.UUID]*guardian.Guardian
	participants map[uuid.UUID]*guardian.Participant
	holds        map[uuid.UUID]*booking.EscrowHold
	credits      map[uuid.UUID]*booking.PackageCredit
}

func newMemState() *memState {
	return &memState{
		bookings:     map[int64]booking.Snapshot{},
		byTxn:        map[string]int64{},
		guardians:    map[uuid.UUID]*guardian.Guardian{},
		participants: map[uuid.UUID]*guardian.Participant{},
		holds:        map[uuid.UUID]*booking.EscrowHold{},
		credits:      map[uuid.UUID]*booking.PackageCredit{},
	}
}

func (s *memState) clone() *memState {
	return &memState{
		nextID:       s.nextID,
		bookings:     maps.Clone(s.bookings),
		byTxn:        maps.Clone(s.byTxn),
		guardians:    maps.Clone(s.guardians),
		participants: maps.Clone(s.participants),
		holds:        maps.Clone(s.holds),
		credits:      maps.Clone(s.credits),
	}
}

type memDB struct {
	mu        sync.Mutex
	state     *memState
	failWrite error
	// beforeTx runs at the start of every transaction, before the lock is taken.
	beforeTx func()
}

func newMemDB() *memDB {
	return &memDB{state: newMemState()}
}

func (d *memDB) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if d.beforeTx != nil {
		d.beforeTx()
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	work := d.state.clone()
	if err := fn(ctx, &memTx{db: d, s: work}); err != nil {
		return err
	}
	d.state = work
	return nil
}

func (d *memDB) snapshot() *memState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state.clone()
}

type memTx struct {
	db *memDB
	s  *memState
}

func (t *memTx) Bookings() shared.BookingRepository         { return memBookings{t} }
func (t *memTx) Guardians() shared.GuardianRepository       { return memGuardians{t} }
func (t *memTx) Participants() shared.ParticipantRepository { return memParticipants{t} }
func (t *memTx) Ledger() shared.LedgerRepository            { return memLedger{t} }
func (t *memTx) DB() sqlc.DBTX                              { return nil }

type memBookings struct{ t *memTx }

func toSnapshot(b *booking.Booking, id int64) booking.Snapshot {
	return booking.Snapshot{
		ID:                   id,
		Number:               b.Number().String(),
		ProviderID:           b.ProviderID(),
		GuardianID:           b.GuardianID(),
		ParticipantID:        b.ParticipantID(),
		Schedule:             b.Schedule(),
		PackageType:          b.PackageType().String(),
		TotalSessions:        b.TotalSessions(),
		SessionsRemaining:    b.SessionsRemaining(),
		TotalCents:           b.Total().Cents(),
		Currency:             b.Currency(),
		FeeCents:             b.Fee().Cents(),
		PayoutCents:          b.Payout().Cents(),
		PaymentTransactionID: b.PaymentTransactionID(),
		Status:               b.Status().String(),
		EscrowHoldID:         b.EscrowHoldID(),
		PackageCreditID:      b.PackageCreditID(),
		CreatedAt:            b.CreatedAt(),
		UpdatedAt:            b.UpdatedAt(),
	}
}

func (r memBookings) FindByPaymentTransactionID(_ context.Context, _ sqlc.DBTX, txnID string) (*booking.Booking, error) {
	id, ok := r.t.s.byTxn[txnID]
	if !ok {
		return nil, nil
	}
	return booking.ReconstructBooking(r.t.s.bookings[id])
}

func (r memBookings) InsertOrGet(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) (*booking.Booking, bool, error) {
	if r.t.db.failWrite != nil {
		return nil, false, r.t.db.failWrite
	}
	if _, ok := r.t.s.byTxn[b.PaymentTransactionID()]; ok {
		existing, err := r.FindByPaymentTransactionID(ctx, tx, b.PaymentTransactionID())
		return existing, false, err
	}
	r.t.s.nextID++
	id := r.t.s.nextID
	r.t.s.bookings[id] = toSnapshot(b, id)
	r.t.s.byTxn[b.PaymentTransactionID()] = id
	stored, err := booking.ReconstructBooking(r.t.s.bookings[id])
	return stored, true, err
}

func (r memBookings) LinkLedger(_ context.Context, _ sqlc.DBTX, bookingID int64, holdID uuid.UUID, creditID *uuid.UUID) error {
	snap := r.t.s.bookings[bookingID]
	snap.EscrowHoldID = &holdID
	snap.PackageCreditID = creditID
	r.t.s.bookings[bookingID] = snap
	return nil
}

type memGuardians struct{ t *memTx }

func (r memGuardians) FindByUserID(_ context.Context, _ sqlc.DBTX, userID uuid.UUID) (*guardian.Guardian, error) {
	for _, g := range r.t.s.guardians {
		if g.UserID() != nil && *g.UserID() == userID {
			return g, nil
		}
	}
	return nil, nil
}

func (r memGuardians) FindByEmail(_ context.Context, _ sqlc.DBTX, email guardian.Email) (*guardian.Guardian, error) {
	for _, g := range r.t.s.guardians {
		if g.Email() == email {
			return g, nil
		}
	}
	return nil, nil
}

func (r memGuardians) CreateOrGet(ctx context.Context, tx sqlc.DBTX, g *guardian.Guardian) (*guardian.Guardian, error) {
	if existing, _ := r.FindByEmail(ctx, tx, g.Email()); existing != nil {
		return existing, nil
	}
	r.t.s.guardians[g.ID()] = g
	return g, nil
}

type memParticipants struct{ t *memTx }

func (r memParticipants) FindByID(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (*guardian.Participant, error) {
	return r.t.s.participants[id], nil
}

func (r memParticipants) Create(_ context.Context, _ sqlc.DBTX, p *guardian.Participant) error {
	r.t.s.participants[p.ID()] = p
	return nil
}

type memLedger struct{ t *memTx }

func (r memLedger) CreateEscrowHold(_ context.Context, _ sqlc.DBTX, hold *booking.EscrowHold, _ string) error {
	r.t.s.holds[hold.ID()] = hold
	return nil
}

func (r memLedger) CreatePackageCredit(_ context.Context, _ sqlc.DBTX, credit *booking.PackageCredit) error {
	r.t.s.credits[credit.ID()] = credit
	return nil
}

// memReader serves the committed state as booking views.
type memReader struct{ db *memDB }

func (r memReader) view(s *memState, id int64) *readmodel.BookingRM {
	b, ok := s.bookings[id]
	if !ok {
		return nil
	}
	rm := &readmodel.BookingRM{
		ID:                   b.ID,
		Number:               b.Number,
		ProviderID:           b.ProviderID,
		GuardianID:           b.GuardianID,
		ParticipantID:        b.ParticipantID,
		PackageType:          b.PackageType,
		TotalSessions:        b.TotalSessions,
		SessionsRemaining:    b.SessionsRemaining,
		TotalCents:           b.TotalCents,
		Currency:             b.Currency,
		FeeCents:             b.FeeCents,
		PayoutCents:          b.PayoutCents,
		PaymentTransactionID: b.PaymentTransactionID,
		Status:               b.Status,
		EscrowHoldID:         b.EscrowHoldID,
		PackageCreditID:      b.PackageCreditID,
		CreatedAt:            b.CreatedAt,
	}
	if g, ok := s.guardians[b.GuardianID]; ok {
		rm.GuardianName = g.Name()
		rm.GuardianEmail = g.Email().Value()
	}
	return rm
}

func (r memReader) ByID(_ context.Context, id int64) (*readmodel.BookingRM, error) {
	return r.view(r.db.snapshot(), id), nil
}

func (r memReader) ByNumber(context.Context, string) (*readmodel.BookingRM, error) {
	return nil, nil
}

func (r memReader) ByPaymentTransactionID(_ context.Context, txnID string) (*readmodel.BookingRM, error) {
	s := r.db.snapshot()
	id, ok := s.byTxn[txnID]
	if !ok {
		return nil, nil
	}
	return r.view(s, id), nil
}

// rereadFailingReader answers the first transaction lookup and fails every later one.
type rereadFailingReader struct {
	memReader
	calls int
	err   error
}

func (r *rereadFailingReader) ByPaymentTransactionID(ctx context.Context, txnID string) (*readmodel.BookingRM, error) {
	r.calls++
	if r.calls > 1 {
		return nil, r.err
	}
	return r.memReader.ByPaymentTransactionID(ctx, txnID)
}

func (r memReader) MostRecentForProvider(context.Context, uuid.UUID, time.Time) (*readmodel.BookingRM, error) {
	return nil, nil
}

func (r memReader) MostRecentForGuardian(context.Context, uuid.UUID, time.Time) (*readmodel.BookingRM, error) {
	return nil, nil
}

type memSnapshots struct {
	mu      sync.Mutex
	items   map[string]*checkout.Snapshot
	deletes int
}

func newMemSnapshots(snaps ...*checkout.Snapshot) *memSnapshots {
	m := &memSnapshots{items: map[string]*checkout.Snapshot{}}
	for _, s := range snaps {
		m.items[s.Token] = s
	}
	return m
}

func (m *memSnapshots) Put(_ context.Context, snap *checkout.Snapshot, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[snap.Token] = snap
	return nil
}

func (m *memSnapshots) Get(_ context.Context, token string) (*checkout.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.items[token], nil
}

func (m *memSnapshots) Delete(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deletes++
	delete(m.items, token)
	return nil
}

type memEvents struct {
	mu   sync.Mutex
	keys []string
}

func (m *memEvents) PublishJSON(_ context.Context, key string, _ any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.keys = append(m.keys, key)
	return nil
}

func (m *memEvents) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.keys)
}

type staticUsers map[uuid.UUID]string

func (u staticUsers) EmailByID(_ context.Context, id uuid.UUID) (string, error) {
	return u[id], nil
}
