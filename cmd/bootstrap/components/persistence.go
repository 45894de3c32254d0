package components

import (
	"booking-reconciler/internal/infra/cache"
	"booking-reconciler/internal/infra/readstore"
	sqlc "booking-reconciler/internal/infra/sqlc/generated"
	"booking-reconciler/internal/infra/uow"
	"booking-reconciler/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
	kvstoreModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Booking view
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BookingViewQueries)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(shared.BookingReader)),
		),
		// Orders, guardians, providers, users
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.DirectoryQueries)),
		),
		fx.Annotate(
			readstore.NewDirectoryReadStore,
			fx.As(new(shared.OrderReader)),
			fx.As(new(shared.GuardianReader)),
			fx.As(new(shared.ProviderDirectory)),
			fx.As(new(shared.UserDirectory)),
		),
	),
)

// Write repositories are bound per transaction inside the unit of work.
var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
	),
)

var kvstoreModule = fx.Module("persistence/kvstore",
	fx.Provide(
		NewSnapshotStore,
		NewMarkerStore,
		NewSessionStateStore,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}

func NewSnapshotStore(c *cache.Clients) shared.SnapshotStore {
	return cache.NewSnapshotStore(c.Snapshot)
}

func NewMarkerStore(c *cache.Clients) shared.MarkerStore {
	return cache.NewMarkerStore(c.Marker)
}

func NewSessionStateStore(c *cache.Clients) shared.SessionStateStore {
	return cache.NewSessionStateStore(c.Session)
}
