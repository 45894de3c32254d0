package bootstrap

import (
	"context"
	"log/slog"

	"booking-reconciler/internal/infra/cache"
	"booking-reconciler/internal/infra/db"
	"booking-reconciler/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewRedisClients,
	),
)

func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}
	logger.Info("connected to postgres", "host", cfg.DB.Host, "database", cfg.DB.DBName, "max_conns", cfg.DB.MaxConns)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			stat := pool.Stat()
			logger.Info("closing postgres pool", "acquired_conns", stat.AcquiredConns(), "total_conns", stat.TotalConns())
			cleanup()
			return nil
		},
	})

	return pool, nil
}

// NewRedisClients opens one client per logical database: snapshots, markers and web sessions.
func NewRedisClients(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*cache.Clients, error) {
	clients, cleanup, err := cache.NewClients(context.Background(), cfg.Redis)
	if err != nil {
		return nil, err
	}
	logger.Info("connected to redis",
		"addr", cfg.Redis.Addr,
		"snapshot_db", cfg.Redis.SnapshotDB,
		"marker_db", cfg.Redis.MarkerDB,
		"session_db", cfg.Redis.SessionDB)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	return clients, nil
}
