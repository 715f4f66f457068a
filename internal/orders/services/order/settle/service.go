package settle

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/daitlovv/gozon-shop/internal/events"
	"github.com/daitlovv/gozon-shop/internal/orders/domain/models"
	internalErrors "github.com/daitlovv/gozon-shop/internal/orders/lib/errors"
	"github.com/daitlovv/gozon-shop/pkg/logger"
)

type orderRepository interface {
	ByIDTx(ctx context.Context, tx *sqlx.Tx, orderID uuid.UUID) (*models.Order, error)
	UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, orderID uuid.UUID, status models.OrderStatus) error
}

// OrderSettlementService is the receiving half of the saga coordinator: it
// turns an inbound payment result into the order's terminal status.
type OrderSettlementService struct {
	log logger.Logger

	orderRepository orderRepository
}

func New(log logger.Logger, orderRepository orderRepository) *OrderSettlementService {
	return &OrderSettlementService{
		log:             log,
		orderRepository: orderRepository,
	}
}

// ApplyResult settles the order inside the consumer's transaction. An unknown
// order id is a non-fatal no-op; a terminal order stays as it is, so the
// first result wins regardless of redelivery or contradictory follow-ups.
func (s *OrderSettlementService) ApplyResult(
	ctx context.Context,
	tx *sqlx.Tx,
	result events.PaymentResult,
) error {
	const op = "services.order.settle.ApplyResult"

	order, err := s.orderRepository.ByIDTx(ctx, tx, result.OrderID)
	if err != nil {
		if errors.Is(err, internalErrors.ErrOrderNotFound) {
			s.log.WarnContext(ctx, op, logger.String("unknown order in payment result", result.OrderID.String()))
			return nil
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	var settled bool
	if result.Status == events.StatusSuccess {
		settled = order.MarkFinished()
	} else {
		settled = order.MarkCancelled()
	}

	if !settled {
		s.log.InfoContext(ctx, op, logger.String("order already settled", order.ID.String()))
		return nil
	}

	if err = s.orderRepository.UpdateStatusTx(ctx, tx, order.ID, order.Status); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.log.InfoContext(ctx, op,
		logger.String("order", order.ID.String()),
		logger.String("status", string(order.Status)),
		logger.String("reason", result.Reason),
	)

	return nil
}
