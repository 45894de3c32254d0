package cache

import (
	"context"
	"strconv"
	"time"

	"booking-reconciler/internal/pkg/errs"

	"github.com/go-redis/redis/v8"
)

// MarkerStore records that a side effect already happened for a key.
type MarkerStore struct {
	client redis.Cmdable
}

func NewMarkerStore(client redis.Cmdable) *MarkerStore {
	return &MarkerStore{client: client}
}

func (m *MarkerStore) Exists(ctx context.Context, key string) (bool, error) {
	n, err := m.client.Exists(ctx, key).Result()
	if err != nil {
		return false, errs.Mark(errs.Wrapf(err, "failed to check marker %s", key), errs.ErrCacheOperationFailed)
	}
	return n > 0, nil
}

func (m *MarkerStore) Set(ctx context.Context, key string, ttl time.Duration) error {
	stamp := strconv.FormatInt(time.Now().Unix(), 10)
	if err := m.client.Set(ctx, key, stamp, ttl).Err(); err != nil {
		return errs.Mark(errs.Wrapf(err, "failed to set marker %s", key), errs.ErrCacheOperationFailed)
	}
	return nil
}

// SessionStateStore reads the checkout state the storefront keeps per web session.
type SessionStateStore struct {
	client redis.Cmdable
}

func NewSessionStateStore(client redis.Cmdable) *SessionStateStore {
	return &SessionStateStore{client: client}
}

func AwaitingOrderKey(sessionID string) string {
	return "checkout:session:" + sessionID + ":awaiting_order"
}

func (s *SessionStateStore) AwaitingOrderID(ctx context.Context, sessionID string) (*int64, error) {
	raw, err := s.client.Get(ctx, AwaitingOrderKey(sessionID)).Result()
	if err != nil {
		if errs.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, errs.Mark(errs.Wrap(err, "failed to read session state"), errs.ErrCacheOperationFailed)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil, nil
	}
	return &id, nil
}
