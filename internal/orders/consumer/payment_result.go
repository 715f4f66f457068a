package consumer

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/daitlovv/gozon-shop/internal/events"
	"github.com/daitlovv/gozon-shop/pkg/logger"
)

type deliveryConsumer interface {
	Consume(queue string) (<-chan amqp.Delivery, error)
}

type inboxGuard interface {
	Process(ctx context.Context, eventID uuid.UUID, fn func(ctx context.Context, tx *sqlx.Tx) error) (bool, error)
}

type resultApplier interface {
	ApplyResult(ctx context.Context, tx *sqlx.Tx, result events.PaymentResult) error
}

// PaymentResultConsumer applies payment results to orders. Deliveries are
// processed one at a time; each one is acked only after the guarded
// transaction committed.
type PaymentResultConsumer struct {
	log logger.Logger

	broker  deliveryConsumer
	guard   inboxGuard
	settler resultApplier
}

func NewPaymentResultConsumer(
	log logger.Logger,
	broker deliveryConsumer,
	guard inboxGuard,
	settler resultApplier,
) *PaymentResultConsumer {
	return &PaymentResultConsumer{
		log:     log,
		broker:  broker,
		guard:   guard,
		settler: settler,
	}
}

func (c *PaymentResultConsumer) Run(ctx context.Context) error {
	const op = "consumer.PaymentResultConsumer.Run"

	deliveries, err := c.broker.Consume(events.ResultsQueue)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			c.log.Info("payment result consumer stopped")
			return nil
		case delivery, ok := <-deliveries:
			if !ok {
				c.log.Warn(op, logger.String("reason", "delivery channel closed"))
				return nil
			}

			c.handle(ctx, delivery)
		}
	}
}

func (c *PaymentResultConsumer) handle(ctx context.Context, delivery amqp.Delivery) {
	const op = "consumer.PaymentResultConsumer.handle"

	var result events.PaymentResult
	if err := json.Unmarshal(delivery.Body, &result); err != nil {
		// Permanently malformed: requeueing would loop forever, so the
		// message is dropped and the defect is logged instead.
		c.log.Error(op, logger.String("malformed payment result dropped", err.Error()))
		_ = delivery.Nack(false, false)
		return
	}

	applied, err := c.guard.Process(ctx, result.EventID, func(ctx context.Context, tx *sqlx.Tx) error {
		return c.settler.ApplyResult(ctx, tx, result)
	})
	if err != nil {
		c.log.Error(op, logger.Err(err))
		_ = delivery.Nack(false, true)
		return
	}

	if !applied {
		c.log.Debug(op, logger.String("duplicate payment result", result.EventID.String()))
	}

	_ = delivery.Ack(false)
}
