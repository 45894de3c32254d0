package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"booking-reconciler/internal/infra/events"
	"booking-reconciler/internal/infra/gateway"
	"booking-reconciler/internal/infra/mailer"
	"booking-reconciler/internal/pkg/config"
	"booking-reconciler/internal/usecase/shared"

	"go.uber.org/fx"
)

var ExternalModule = fx.Module("external",
	fx.Provide(
		NewPaymentGateway,
		NewMailer,
		NewEventPublisher,
	),
)

func NewPaymentGateway(cfg config.Config, logger *slog.Logger) (shared.PaymentGateway, error) {
	switch cfg.Payment.Gateway {
	case "stripe":
		gw, err := gateway.NewStripe(cfg.Payment.StripeSecretKey)
		if err != nil {
			return nil, err
		}
		return gw, nil
	case "static":
		logger.Warn("using static payment gateway; payments are never verified against a processor")
		return gateway.NewStatic(), nil
	default:
		return nil, fmt.Errorf("unknown PAYMENT_GATEWAY %q", cfg.Payment.Gateway)
	}
}

func NewMailer(cfg config.Config) shared.Mailer {
	return mailer.NewSMTPMailer(cfg.Mail)
}

func NewEventPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (shared.EventPublisher, error) {
	if cfg.Events.URL == "" {
		return events.NewDiscard(logger), nil
	}
	pub, err := events.NewPublisher(cfg.Events.URL, cfg.Events.Exchange)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return pub.Close()
		},
	})

	return pub, nil
}
