package get

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/daitlovv/gozon-shop/internal/orders/domain/models"
	"github.com/daitlovv/gozon-shop/pkg/logger"
)

type orderGetter interface {
	ByID(ctx context.Context, orderID uuid.UUID) (*models.Order, error)
	ByUser(ctx context.Context, userID uuid.UUID) ([]models.Order, error)
}

type orderCache interface {
	Get(key uuid.UUID) (*models.Order, bool)
	Add(key uuid.UUID, value *models.Order) bool
}

type OrderRetrievalService struct {
	log   logger.Logger
	cache orderCache

	orderGetter orderGetter
}

func New(
	log logger.Logger,
	cache orderCache,
	orderGetter orderGetter,
) *OrderRetrievalService {
	return &OrderRetrievalService{
		log:         log,
		cache:       cache,
		orderGetter: orderGetter,
	}
}

func (s *OrderRetrievalService) OrderByID(ctx context.Context, orderID uuid.UUID) (*models.Order, error) {
	const op = "services.order.get.OrderByID"

	if order, ok := s.cache.Get(orderID); ok && order != nil {
		s.log.DebugContext(ctx, op, logger.String("cache hit", orderID.String()))
		return order, nil
	}

	order, err := s.orderGetter.ByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// Only settled orders go into the cache: a New order changes status
	// asynchronously when the payment result arrives.
	if order.Status.Terminal() {
		_ = s.cache.Add(orderID, order)
	}

	return order, nil
}

func (s *OrderRetrievalService) OrdersByUser(ctx context.Context, userID uuid.UUID) ([]models.Order, error) {
	const op = "services.order.get.OrdersByUser"

	orders, err := s.orderGetter.ByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return orders, nil
}
