package components

import (
	"log/slog"

	"booking-reconciler/internal/pkg/clock"
	"booking-reconciler/internal/pkg/config"
	"booking-reconciler/internal/usecase"
	"booking-reconciler/internal/usecase/commands"
	"booking-reconciler/internal/usecase/notify"
	"booking-reconciler/internal/usecase/recovery"
	"booking-reconciler/internal/usecase/resolver"
	"booking-reconciler/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseConfirmationModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		notify.NewTemplateRenderer,
		fx.As(new(notify.Renderer)),
	),
)

var usecaseConfirmationModule = fx.Module("usecase/confirmation",
	fx.Provide(
		fx.Annotate(
			NewResolverChain,
			fx.As(new(usecase.BookingResolver)),
		),
		fx.Annotate(
			NewRecoveryEngine,
			fx.As(new(usecase.BookingRecoverer)),
		),
		fx.Annotate(
			NewDispatcher,
			fx.As(new(usecase.ConfirmationNotifier)),
		),
		usecase.NewConfirmationUseCase,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		NewCheckoutCommands,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

type resolverParams struct {
	fx.In

	Bookings  shared.BookingReader
	Orders    shared.OrderReader
	Sessions  shared.SessionStateStore
	Snapshots shared.SnapshotStore
	Guardians shared.GuardianReader
	Clock     clock.Clock
	Config    config.Config
	Logger    *slog.Logger
}

func NewResolverChain(p resolverParams) *resolver.Chain {
	return resolver.NewDefaultChain(resolver.Deps{
		Bookings:  p.Bookings,
		Orders:    p.Orders,
		Sessions:  p.Sessions,
		Snapshots: p.Snapshots,
		Guardians: p.Guardians,
		Clock:     p.Clock,
		Window:    p.Config.Checkout.ResolverWindow,
	}, p.Logger)
}

type recoveryParams struct {
	fx.In

	UoW       shared.UnitOfWork
	Bookings  shared.BookingReader
	Snapshots shared.SnapshotStore
	Gateway   shared.PaymentGateway
	Users     shared.UserDirectory
	Events    shared.EventPublisher
	Clock     clock.Clock
	Config    config.Config
	Logger    *slog.Logger
}

func NewRecoveryEngine(p recoveryParams) *recovery.Engine {
	return recovery.NewEngine(
		p.UoW,
		p.Bookings,
		p.Snapshots,
		p.Gateway,
		p.Users,
		p.Events,
		p.Clock,
		p.Logger,
		recovery.Config{
			FeePercent:     p.Config.Checkout.FeePercent,
			CreditValidity: p.Config.Checkout.CreditValidity,
		},
	)
}

func NewDispatcher(
	markers shared.MarkerStore,
	providers shared.ProviderDirectory,
	users shared.UserDirectory,
	mailer shared.Mailer,
	renderer notify.Renderer,
	cfg config.Config,
	logger *slog.Logger,
) *notify.Dispatcher {
	return notify.NewDispatcher(markers, providers, users, mailer, renderer, cfg.Checkout.MarkerTTL, logger)
}

func NewCheckoutCommands(snapshots shared.SnapshotStore, clk clock.Clock, cfg config.Config) commands.CheckoutCommands {
	return commands.NewCheckoutUseCase(snapshots, cfg.Checkout.SnapshotTTL, clk)
}
