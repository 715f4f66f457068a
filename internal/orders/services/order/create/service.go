package create

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/daitlovv/gozon-shop/internal/events"
	"github.com/daitlovv/gozon-shop/internal/orders/domain/models"
	internalErrors "github.com/daitlovv/gozon-shop/internal/orders/lib/errors"
	"github.com/daitlovv/gozon-shop/internal/outbox"
	"github.com/daitlovv/gozon-shop/pkg/logger"
)

// duplicateWindow guards against accidental double submission from the
// client. This is a UX guard, not broker-level idempotency: that lives in
// the inbox package.
const duplicateWindow = 5 * time.Minute

type orderRepository interface {
	ExistsRecentDuplicate(
		ctx context.Context,
		userID uuid.UUID,
		amount decimal.Decimal,
		description string,
		createdAfter time.Time,
	) (bool, error)
	CreateWithPaymentRequest(ctx context.Context, order *models.Order, msg outbox.Message) error
}

type OrderCreationService struct {
	log logger.Logger

	orderRepository orderRepository
}

func New(log logger.Logger, orderRepository orderRepository) *OrderCreationService {
	return &OrderCreationService{
		log:             log,
		orderRepository: orderRepository,
	}
}

// Create starts the payment saga: the order row and the payment request
// outbox row are written in one transaction, and the caller gets the order id
// back immediately while the payment settles asynchronously.
func (s *OrderCreationService) Create(
	ctx context.Context,
	userID uuid.UUID,
	amount decimal.Decimal,
	description string,
) (uuid.UUID, error) {
	const op = "services.order.create.Create"

	duplicate, err := s.orderRepository.ExistsRecentDuplicate(
		ctx, userID, amount, description, time.Now().UTC().Add(-duplicateWindow),
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	if duplicate {
		s.log.WarnContext(ctx, op, logger.String("duplicate order rejected for user", userID.String()))
		return uuid.Nil, internalErrors.ErrDuplicateOrder
	}

	order := models.NewOrder(userID, amount, description)

	paymentRequest := events.PaymentRequest{
		EventID: uuid.New(),
		OrderID: order.ID,
		UserID:  userID,
		Amount:  amount,
	}

	payload, err := json.Marshal(paymentRequest)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: marshal payment request: %w", op, err)
	}

	msg := outbox.NewMessage(events.TypePaymentRequest, payload)

	if err = s.orderRepository.CreateWithPaymentRequest(ctx, order, msg); err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.InfoContext(ctx, op, logger.String("order created", order.ID.String()))

	return order.ID, nil
}
