package send

import (
	"context"
	"fmt"

	"github.com/daitlovv/gozon-shop/internal/events"
	"github.com/daitlovv/gozon-shop/internal/outbox"
	"github.com/daitlovv/gozon-shop/pkg/logger"
)

type busPublisher interface {
	Publish(ctx context.Context, exchange, routingKey string, body []byte) error
}

// Sender routes drained outbox messages of the orders service to the broker.
type Sender struct {
	log logger.Logger
	bus busPublisher
}

func New(log logger.Logger, bus busPublisher) *Sender {
	return &Sender{log: log, bus: bus}
}

func (s *Sender) Send(ctx context.Context, msg outbox.Message) error {
	const op = "services.outbox.send.Send"

	switch msg.EventType {
	case events.TypePaymentRequest:
		return s.bus.Publish(ctx, events.OrdersExchange, events.PaymentRequestKey, msg.Payload)
	default:
		return fmt.Errorf("%s: unknown event type %q", op, msg.EventType)
	}
}
