package components

import (
	"booking-reconciler/internal/handler"
	"booking-reconciler/internal/handler/api"
	"booking-reconciler/internal/handler/middleware"
	"booking-reconciler/internal/infra/cache"
	"booking-reconciler/internal/pkg/config"
	"booking-reconciler/internal/usecase"
	"booking-reconciler/internal/usecase/commands"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		NewConfirmationHandler,
		NewHealthHandler,
		NewCheckoutHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewConfirmationHandler(uc usecase.ConfirmationUseCase, cfg config.Config) *api.ConfirmationHandler {
	return api.NewConfirmationHandler(uc, cfg.Cookie)
}

func NewCheckoutHandler(cmds commands.CheckoutCommands, cfg config.Config) *api.CheckoutHandler {
	return api.NewCheckoutHandler(cmds, cfg.Cookie)
}

func NewHealthHandler(pool *pgxpool.Pool, caches *cache.Clients) *api.HealthHandler {
	return api.NewHealthHandler(
		api.HealthCheck{Name: "postgres", Pinger: pool},
		api.HealthCheck{Name: "redis", Pinger: caches},
	)
}

type handlerParams struct {
	fx.In

	Health       *api.HealthHandler
	Confirmation *api.ConfirmationHandler
	Checkout     *api.CheckoutHandler
}

func NewHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		Health:       p.Health,
		Confirmation: p.Confirmation,
		Checkout:     p.Checkout,
	}
}
