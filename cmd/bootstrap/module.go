package bootstrap

import (
	"booking-reconciler/cmd/bootstrap/components"
	"booking-reconciler/internal/pkg/config"
	"booking-reconciler/internal/pkg/jwt"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
)

// JWTModule only verifies tokens issued elsewhere; this service never signs in users.
var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config) *jwt.Service {
	return jwt.NewService(cfg.JWT.Secret)
}

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	CacheModule,
	ExternalModule,
	JWTModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
