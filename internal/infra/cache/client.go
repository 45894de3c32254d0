package cache

import (
	"context"
	"time"

	"booking-reconciler/internal/pkg/config"
	"booking-reconciler/internal/pkg/errs"

	"github.com/go-redis/redis/v8"
)

// Clients groups the logical Redis databases used by the service.
type Clients struct {
	Snapshot *redis.Client
	Marker   *redis.Client
	Session  *redis.Client
}

func NewClients(ctx context.Context, cfg config.RedisConfig) (*Clients, func(), error) {
	snapshot, err := newClient(ctx, cfg, cfg.SnapshotDB)
	if err != nil {
		return nil, nil, errs.Wrap(err, "snapshot cache")
	}
	marker, err := newClient(ctx, cfg, cfg.MarkerDB)
	if err != nil {
		_ = snapshot.Close()
		return nil, nil, errs.Wrap(err, "marker cache")
	}
	session, err := newClient(ctx, cfg, cfg.SessionDB)
	if err != nil {
		_ = snapshot.Close()
		_ = marker.Close()
		return nil, nil, errs.Wrap(err, "session cache")
	}

	cleanup := func() {
		_ = snapshot.Close()
		_ = marker.Close()
		_ = session.Close()
	}
	return &Clients{Snapshot: snapshot, Marker: marker, Session: session}, cleanup, nil
}

func newClient(ctx context.Context, cfg config.RedisConfig, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       db,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, errs.Mark(errs.Wrapf(err, "failed to connect to redis db %d", db), errs.ErrCacheOperationFailed)
	}
	return client, nil
}

// Ping checks every logical database.
func (c *Clients) Ping(ctx context.Context) error {
	for name, client := range map[string]*redis.Client{
		"snapshot": c.Snapshot,
		"marker":   c.Marker,
		"session":  c.Session,
	} {
		if err := client.Ping(ctx).Err(); err != nil {
			return errs.Wrapf(err, "redis %s db", name)
		}
	}
	return nil
}
