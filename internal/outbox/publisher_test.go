package outbox_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/daitlovv/gozon-shop/internal/outbox"
	"github.com/daitlovv/gozon-shop/internal/outbox/mocks"
	"github.com/daitlovv/gozon-shop/pkg/logger"
)

func testMessages(n int) []outbox.Message {
	messages := make([]outbox.Message, 0, n)
	for i := 0; i < n; i++ {
		messages = append(messages, outbox.Message{
			ID:        uuid.New(),
			EventType: "PaymentRequest",
			Payload:   []byte(`{}`),
			CreatedAt: time.Now().Add(time.Duration(i) * time.Millisecond),
		})
	}
	return messages
}

func messageIDs(messages []outbox.Message) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(messages))
	for _, msg := range messages {
		ids = append(ids, msg.ID)
	}
	return ids
}

func TestPublisherDrainsInOrder(t *testing.T) {
	log := logger.NewSlogLogger(logger.EnvLocal)

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	store := mocks.NewMockmessageStore(ctl)
	bus := mocks.NewMocksender(ctl)

	messages := testMessages(3)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store.EXPECT().Unsent(gomock.Any(), 10).Return(messages, nil)

	prev := bus.EXPECT().Send(gomock.Any(), messages[0]).Return(nil)
	for _, msg := range messages[1:] {
		prev = bus.EXPECT().Send(gomock.Any(), msg).Return(nil).After(prev)
	}

	store.EXPECT().
		MarkSent(gomock.Any(), messageIDs(messages)).
		DoAndReturn(func(context.Context, []uuid.UUID) error {
			cancel() // one full drain is enough for the test
			return nil
		})

	p := outbox.NewPublisher(log, store, bus, 0, time.Minute, 10)

	require.NoError(t, p.Run(ctx))
}

func TestPublisherStopsBatchOnPublishFailure(t *testing.T) {
	log := logger.NewSlogLogger(logger.EnvLocal)

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	store := mocks.NewMockmessageStore(ctl)
	bus := mocks.NewMocksender(ctl)

	messages := testMessages(3)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store.EXPECT().Unsent(gomock.Any(), 10).Return(messages, nil)

	bus.EXPECT().Send(gomock.Any(), messages[0]).Return(nil)
	bus.EXPECT().Send(gomock.Any(), messages[1]).Return(errors.New("broker unreachable"))
	// messages[2] must not be published: skipping ahead would break ordering.

	store.EXPECT().
		MarkSent(gomock.Any(), []uuid.UUID{messages[0].ID}).
		DoAndReturn(func(context.Context, []uuid.UUID) error {
			cancel()
			return nil
		})

	p := outbox.NewPublisher(log, store, bus, 0, time.Minute, 10)

	require.NoError(t, p.Run(ctx))
}
