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

type requestProcessor interface {
	Process(ctx context.Context, tx *sqlx.Tx, request events.PaymentRequest) error
}

// PaymentRequestConsumer feeds inbound payment requests through the inbox
// guard into the orchestrator, one delivery at a time.
type PaymentRequestConsumer struct {
	log logger.Logger

	broker       deliveryConsumer
	guard        inboxGuard
	orchestrator requestProcessor
}

func NewPaymentRequestConsumer(
	log logger.Logger,
	broker deliveryConsumer,
	guard inboxGuard,
	orchestrator requestProcessor,
) *PaymentRequestConsumer {
	return &PaymentRequestConsumer{
		log:          log,
		broker:       broker,
		guard:        guard,
		orchestrator: orchestrator,
	}
}

func (c *PaymentRequestConsumer) Run(ctx context.Context) error {
	const op = "consumer.PaymentRequestConsumer.Run"

	deliveries, err := c.broker.Consume(events.PaymentsQueue)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			c.log.Info("payment request consumer stopped")
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

func (c *PaymentRequestConsumer) handle(ctx context.Context, delivery amqp.Delivery) {
	const op = "consumer.PaymentRequestConsumer.handle"

	var request events.PaymentRequest
	if err := json.Unmarshal(delivery.Body, &request); err != nil {
		// Permanently malformed: requeueing would loop forever, so the
		// message is dropped and the defect is logged instead.
		c.log.Error(op, logger.String("malformed payment request dropped", err.Error()))
		_ = delivery.Nack(false, false)
		return
	}

	applied, err := c.guard.Process(ctx, request.EventID, func(ctx context.Context, tx *sqlx.Tx) error {
		return c.orchestrator.Process(ctx, tx, request)
	})
	if err != nil {
		c.log.Error(op, logger.Err(err))
		_ = delivery.Nack(false, true)
		return
	}

	if !applied {
		c.log.Debug(op, logger.String("duplicate payment request", request.EventID.String()))
	}

	_ = delivery.Ack(false)
}
