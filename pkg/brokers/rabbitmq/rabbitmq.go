package rabbitmq

import (
	"context"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/daitlovv/gozon-shop/pkg/logger"
)

const (
	connectAttempts = 10
	connectBackoff  = 3 * time.Second
)

// Broker owns the process-wide AMQP connection and a channel used for
// topology declaration, publishing and consuming. Both are acquired once
// at startup and released by Close.
type Broker struct {
	conn    *amqp.Connection
	channel *amqp.Channel

	log logger.Logger
}

func New(ctx context.Context, log logger.Logger, url string) (*Broker, error) {
	const op = "brokers.rabbitmq.New"

	var (
		conn *amqp.Connection
		err  error
	)

	for attempt := 1; attempt <= connectAttempts; attempt++ {
		conn, err = amqp.Dial(url)
		if err == nil {
			break
		}

		log.Warn(op,
			logger.String("broker not ready", err.Error()),
			logger.Int("attempt", attempt),
		)

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%s: %w", op, ctx.Err())
		case <-time.After(connectBackoff):
		}
	}
	if err != nil {
		return nil, fmt.Errorf("%s: dial after %d attempts: %w", op, connectAttempts, err)
	}

	channel, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("%s: open channel: %w", op, err)
	}

	log.Info("connected to rabbitmq")

	return &Broker{
		conn:    conn,
		channel: channel,
		log:     log,
	}, nil
}

// DeclareDirect declares a durable direct exchange, a durable queue and the
// binding between them. Declarations are idempotent on the broker side, so
// whichever service connects first sets the topology up for both.
func (b *Broker) DeclareDirect(exchange, queue, routingKey string) error {
	const op = "brokers.rabbitmq.DeclareDirect"

	if err := b.channel.ExchangeDeclare(
		exchange,
		amqp.ExchangeDirect,
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		return fmt.Errorf("%s: declare exchange %s: %w", op, exchange, err)
	}

	if _, err := b.channel.QueueDeclare(
		queue,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	); err != nil {
		return fmt.Errorf("%s: declare queue %s: %w", op, queue, err)
	}

	if err := b.channel.QueueBind(queue, routingKey, exchange, false, nil); err != nil {
		return fmt.Errorf("%s: bind %s to %s: %w", op, queue, exchange, err)
	}

	return nil
}

// Publish sends a persistent message to a direct exchange.
func (b *Broker) Publish(ctx context.Context, exchange, routingKey string, body []byte) error {
	const op = "brokers.rabbitmq.Publish"

	err := b.channel.PublishWithContext(ctx,
		exchange,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("%s: publish to %s: %w", op, exchange, err)
	}

	b.log.Debug(op,
		logger.String("exchange", exchange),
		logger.String("routing_key", routingKey),
	)

	return nil
}

// Consume opens a manual-ack delivery stream for the queue. Deliveries are
// processed one at a time; the caller acks or nacks each one.
func (b *Broker) Consume(queue string) (<-chan amqp.Delivery, error) {
	const op = "brokers.rabbitmq.Consume"

	deliveries, err := b.channel.Consume(
		queue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: consume %s: %w", op, queue, err)
	}

	b.log.Info("consuming queue", logger.String("queue", queue))

	return deliveries, nil
}

func (b *Broker) Close() error {
	if err := b.channel.Close(); err != nil {
		return err
	}

	return b.conn.Close()
}
