package outbox

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/daitlovv/gozon-shop/pkg/logger"
)

type messageStore interface {
	Unsent(ctx context.Context, limit int) ([]Message, error)
	MarkSent(ctx context.Context, ids []uuid.UUID) error
}

type sender interface {
	Send(ctx context.Context, msg Message) error
}

// Publisher drains the outbox log to the broker on a fixed interval.
// Delivery is at-least-once: a crash between publish and MarkSent means the
// message goes out again on the next cycle, which every consumer must (and
// does) tolerate through its inbox guard.
type Publisher struct {
	log logger.Logger

	store  messageStore
	sender sender

	initialDelay time.Duration
	interval     time.Duration
	batchSize    int
}

func NewPublisher(
	log logger.Logger,
	store messageStore,
	sender sender,
	initialDelay time.Duration,
	interval time.Duration,
	batchSize int,
) *Publisher {
	return &Publisher{
		log:          log,
		store:        store,
		sender:       sender,
		initialDelay: initialDelay,
		interval:     interval,
		batchSize:    batchSize,
	}
}

// Run polls until ctx is cancelled. Drain errors are logged and retried on
// the next tick; they never stop the loop.
func (p *Publisher) Run(ctx context.Context) error {
	const op = "outbox.Publisher.Run"

	select {
	case <-ctx.Done():
		return nil
	case <-time.After(p.initialDelay):
	}

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.log.Info("outbox publisher started")

	for {
		if err := p.drain(ctx); err != nil {
			p.log.Error(op, logger.Err(err))
		}

		select {
		case <-ctx.Done():
			p.log.Info("outbox publisher stopped")
			return nil
		case <-ticker.C:
		}
	}
}

// drain publishes pending messages in creation order. A publish failure stops
// the current batch instead of skipping ahead, so per-service event ordering
// survives broker hiccups; everything already published is still marked sent.
func (p *Publisher) drain(ctx context.Context) error {
	const op = "outbox.Publisher.drain"

	messages, err := p.store.Unsent(ctx, p.batchSize)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if len(messages) == 0 {
		return nil
	}

	sentIDs := make([]uuid.UUID, 0, len(messages))

	for _, msg := range messages {
		if err = p.sender.Send(ctx, msg); err != nil {
			p.log.Error(op,
				logger.String("publish failed", err.Error()),
				logger.String("message_id", msg.ID.String()),
			)
			break
		}

		sentIDs = append(sentIDs, msg.ID)
	}

	if err := p.store.MarkSent(ctx, sentIDs); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	p.log.Debug(op, logger.Int("messages sent", len(sentIDs)))

	return nil
}
