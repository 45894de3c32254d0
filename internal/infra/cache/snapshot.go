package cache

import (
	"context"
	"encoding/json"
	"time"

	"booking-reconciler/internal/domain/checkout"
	"booking-reconciler/internal/pkg/errs"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const snapshotKeyPrefix = "checkout:snapshot:"

type snapshotRecord struct {
	Token       string           `json:"token"`
	Cart        []cartItemRecord `json:"cart"`
	Contact     contactRecord    `json:"contact"`
	Participant participantRec   `json:"participant"`
	ProviderID  uuid.UUID        `json:"provider_id"`
	PackageType string           `json:"package_type"`
	Schedule    scheduleRecord   `json:"schedule"`
	TotalCents  int64            `json:"total_cents"`
	Currency    string           `json:"currency"`
	UserID      *uuid.UUID       `json:"user_id,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
}

type cartItemRecord struct {
	SKU        string `json:"sku"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	PriceCents int64  `json:"price_cents"`
}

type contactRecord struct {
	GuardianName string `json:"guardian_name"`
	Email        string `json:"email"`
	Phone        string `json:"phone,omitempty"`
}

type participantRec struct {
	ID        *uuid.UUID `json:"id,omitempty"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name,omitempty"`
}

type scheduleRecord struct {
	Date      string `json:"date,omitempty"`
	StartTime string `json:"start_time,omitempty"`
	Location  string `json:"location,omitempty"`
}

// SnapshotStore keeps checkout snapshots keyed by their token.
type SnapshotStore struct {
	client redis.Cmdable
}

func NewSnapshotStore(client redis.Cmdable) *SnapshotStore {
	return &SnapshotStore{client: client}
}

func snapshotKey(token string) string {
	return snapshotKeyPrefix + token
}

func (s *SnapshotStore) Put(ctx context.Context, snap *checkout.Snapshot, ttl time.Duration) error {
	payload, err := json.Marshal(toSnapshotRecord(snap))
	if err != nil {
		return errs.Wrap(err, "failed to encode checkout snapshot")
	}
	if err := s.client.Set(ctx, snapshotKey(snap.Token), payload, ttl).Err(); err != nil {
		return errs.Mark(errs.Wrap(err, "failed to store checkout snapshot"), errs.ErrCacheOperationFailed)
	}
	return nil
}

func (s *SnapshotStore) Get(ctx context.Context, token string) (*checkout.Snapshot, error) {
	raw, err := s.client.Get(ctx, snapshotKey(token)).Bytes()
	if err != nil {
		if errs.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, errs.Mark(errs.Wrap(err, "failed to load checkout snapshot"), errs.ErrCacheOperationFailed)
	}

	var rec snapshotRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, errs.Wrap(err, "failed to decode checkout snapshot")
	}
	return fromSnapshotRecord(rec), nil
}

func (s *SnapshotStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, snapshotKey(token)).Err(); err != nil {
		return errs.Mark(errs.Wrap(err, "failed to delete checkout snapshot"), errs.ErrCacheOperationFailed)
	}
	return nil
}

func toSnapshotRecord(s *checkout.Snapshot) snapshotRecord {
	cart := make([]cartItemRecord, 0, len(s.Cart))
	for _, item := range s.Cart {
		cart = append(cart, cartItemRecord(item))
	}
	return snapshotRecord{
		Token:       s.Token,
		Cart:        cart,
		Contact:     contactRecord(s.Contact),
		Participant: participantRec(s.Participant),
		ProviderID:  s.ProviderID,
		PackageType: s.PackageType,
		Schedule:    scheduleRecord(s.Schedule),
		TotalCents:  s.TotalCents,
		Currency:    s.Currency,
		UserID:      s.UserID,
		CreatedAt:   s.CreatedAt,
	}
}

func fromSnapshotRecord(r snapshotRecord) *checkout.Snapshot {
	cart := make([]checkout.CartItem, 0, len(r.Cart))
	for _, item := range r.Cart {
		cart = append(cart, checkout.CartItem(item))
	}
	return &checkout.Snapshot{
		Token:       r.Token,
		Cart:        cart,
		Contact:     checkout.Contact(r.Contact),
		Participant: checkout.ParticipantInfo(r.Participant),
		ProviderID:  r.ProviderID,
		PackageType: r.PackageType,
		Schedule:    checkout.Schedule(r.Schedule),
		TotalCents:  r.TotalCents,
		Currency:    r.Currency,
		UserID:      r.UserID,
		CreatedAt:   r.CreatedAt,
	}
}
