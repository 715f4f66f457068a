package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/daitlovv/gozon-shop/internal/events"
	"github.com/daitlovv/gozon-shop/internal/outbox"
	"github.com/daitlovv/gozon-shop/internal/payments/services/withdrawal"
	"github.com/daitlovv/gozon-shop/pkg/logger"
)

type withdrawer interface {
	TryWithdraw(ctx context.Context, tx *sqlx.Tx, request events.PaymentRequest) withdrawal.Result
}

type outboxInserter interface {
	InsertTx(ctx context.Context, tx *sqlx.Tx, msg outbox.Message) error
}

// PaymentOrchestrator turns an inbound payment request into a withdrawal
// attempt plus an outbound result event, all inside the consumer's
// transaction. The result row commits together with the debit, so a crash
// right after a successful withdrawal can never lose the result.
type PaymentOrchestrator struct {
	log logger.Logger

	withdrawer       withdrawer
	outboxRepository outboxInserter
}

func New(log logger.Logger, withdrawer withdrawer, outboxRepository outboxInserter) *PaymentOrchestrator {
	return &PaymentOrchestrator{
		log:              log,
		withdrawer:       withdrawer,
		outboxRepository: outboxRepository,
	}
}

// Process never returns an error for business outcomes: a declined payment
// is a normal result reported to the orders service. Only infrastructure
// failures escalate, rolling the whole delivery back for redelivery.
func (o *PaymentOrchestrator) Process(
	ctx context.Context,
	tx *sqlx.Tx,
	request events.PaymentRequest,
) error {
	const op = "services.orchestrator.Process"

	result := o.withdrawer.TryWithdraw(ctx, tx, request)

	event := events.PaymentResult{
		EventID: uuid.New(),
		OrderID: result.OrderID,
		Status:  result.Status,
		Reason:  result.Reason,
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%s: marshal payment result: %w", op, err)
	}

	if err = o.outboxRepository.InsertTx(ctx, tx, outbox.NewMessage(events.TypePaymentResult, payload)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	o.log.InfoContext(ctx, op,
		logger.String("order", request.OrderID.String()),
		logger.String("status", result.Status),
		logger.String("reason", result.Reason),
	)

	return nil
}
