package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"booking-reconciler/internal/pkg/errs"

	amqp "github.com/rabbitmq/amqp091-go"
)

const RoutingBookingConfirmed = "booking.confirmed"

// Publisher sends JSON messages to a durable topic exchange.
type Publisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
}

func NewPublisher(url, exchange string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, errs.Wrap(err, "dial rabbitmq")
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, errs.Wrap(err, "open channel")
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, errs.Wrap(err, "declare exchange")
	}
	return &Publisher{conn: conn, ch: ch, exchange: exchange}, nil
}

func (p *Publisher) PublishJSON(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return errs.Wrap(err, "encode event")
	}
	err = p.ch.PublishWithContext(ctx, p.exchange, key, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         b,
	})
	if err != nil {
		return errs.Mark(errs.Wrapf(err, "publish %s", key), errs.ErrExternalServiceFailed)
	}
	return nil
}

func (p *Publisher) Close() error {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

// Discard is used when no broker is configured.
type Discard struct {
	logger *slog.Logger
}

func NewDiscard(logger *slog.Logger) *Discard {
	return &Discard{logger: logger}
}

func (d *Discard) PublishJSON(ctx context.Context, key string, _ any) error {
	d.logger.DebugContext(ctx, "event publishing disabled", "routing_key", key)
	return nil
}
