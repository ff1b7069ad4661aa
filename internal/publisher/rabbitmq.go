package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"resource_catalog/internal/domain"
)

// RabbitMQ announces catalog events on a direct exchange.
type RabbitMQ struct {
	conn       *amqp.Connection
	channel    *amqp.Channel
	exchange   string
	routingKey string
	logger     *slog.Logger
}

type Config struct {
	URL        string
	Exchange   string
	RoutingKey string
	QueueName  string
}

// NewRabbitMQ connects and declares the exchange, plus a durable queue
// bound to it when QueueName is set.
func NewRabbitMQ(cfg Config, logger *slog.Logger) (*RabbitMQ, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err := declareTopology(ch, cfg); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	logger = logger.With("component", "publisher")
	logger.Info("connected to rabbitmq",
		"exchange", cfg.Exchange,
		"queue", cfg.QueueName,
		"routing_key", cfg.RoutingKey,
	)

	return &RabbitMQ{
		conn:       conn,
		channel:    ch,
		exchange:   cfg.Exchange,
		routingKey: cfg.RoutingKey,
		logger:     logger,
	}, nil
}

func declareTopology(ch *amqp.Channel, cfg Config) error {
	// durable, not auto-deleted, not internal, wait for confirmation
	if err := ch.ExchangeDeclare(cfg.Exchange, amqp.ExchangeDirect, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}
	if cfg.QueueName == "" {
		return nil
	}

	q, err := ch.QueueDeclare(cfg.QueueName, true, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}
	if err := ch.QueueBind(q.Name, cfg.RoutingKey, cfg.Exchange, false, nil); err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}
	return nil
}

// EventMessage is the JSON body of every published event.
type EventMessage struct {
	ID        string              `json:"id"`
	Event     domain.CatalogEvent `json:"event"`
	Timestamp time.Time           `json:"timestamp"`
}

// Publish sends event as a persistent JSON message. The AMQP type header
// carries the event action so consumers can route without decoding.
func (r *RabbitMQ) Publish(ctx context.Context, event *domain.CatalogEvent) error {
	msg := EventMessage{ID: uuid.NewString(), Event: *event, Timestamp: time.Now().UTC()}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode %s event: %w", event.Action, err)
	}

	publishing := amqp.Publishing{
		MessageId:    msg.ID,
		Type:         event.Action,
		Timestamp:    msg.Timestamp,
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	}
	// not mandatory, not immediate
	if err := r.channel.PublishWithContext(ctx, r.exchange, r.routingKey, false, false, publishing); err != nil {
		return fmt.Errorf("publish %s event: %w", event.Action, err)
	}

	r.logger.Debug("published event", "message_id", msg.ID, "action", event.Action)
	return nil
}

// Close shuts the channel and then the connection.
func (r *RabbitMQ) Close() error {
	var chErr error
	if r.channel != nil {
		chErr = r.channel.Close()
	}
	if r.conn != nil {
		if err := r.conn.Close(); err != nil {
			return fmt.Errorf("close connection: %w", err)
		}
	}
	if chErr != nil {
		return fmt.Errorf("close channel: %w", chErr)
	}
	return nil
}
