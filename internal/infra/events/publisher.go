package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"hotel-booking/internal/domain/checkout"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Publisher sends settlement events to a durable topic exchange.
type Publisher struct {
	conn     *amqp.Connection
	ch       channel
	exchange string
	logger   *slog.Logger
}

func NewPublisher(url, exchange string, logger *slog.Logger) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}
	return &Publisher{conn: conn, ch: ch, exchange: exchange, logger: logger}, nil
}

func newPublisherWithChannel(ch channel, exchange string, logger *slog.Logger) *Publisher {
	return &Publisher{ch: ch, exchange: exchange, logger: logger}
}

func (p *Publisher) PublishSettlement(ctx context.Context, ev checkout.Event) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("encode settlement event: %w", err)
	}
	key := ev.RoutingKey()
	err = p.ch.PublishWithContext(ctx, p.exchange, key, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    uuid.NewString(),
		Timestamp:    ev.OccurredAt,
		Type:         key,
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("publish %s: %w", key, err)
	}
	p.logger.DebugContext(ctx, "settlement event published", "routing_key", key, "booking_number", ev.BookingNumber)
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

// Nop drops events; used when AMQP_URL is empty.
type Nop struct {
	logger *slog.Logger
}

func NewNop(logger *slog.Logger) *Nop {
	return &Nop{logger: logger}
}

func (n *Nop) PublishSettlement(ctx context.Context, ev checkout.Event) error {
	n.logger.DebugContext(ctx, "settlement event dropped, no broker configured",
		"routing_key", ev.RoutingKey(),
		"booking_number", ev.BookingNumber,
		"occurred_at", ev.OccurredAt.Format(time.RFC3339),
	)
	return nil
}
