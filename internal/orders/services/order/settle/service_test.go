package settle_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/daitlovv/gozon-shop/internal/events"
	"github.com/daitlovv/gozon-shop/internal/orders/domain/models"
	internalErrors "github.com/daitlovv/gozon-shop/internal/orders/lib/errors"
	"github.com/daitlovv/gozon-shop/internal/orders/services/order/settle"
	"github.com/daitlovv/gozon-shop/internal/orders/services/order/settle/mocks"
	"github.com/daitlovv/gozon-shop/pkg/logger"
)

func newOrder(status models.OrderStatus) *models.Order {
	order := models.NewOrder(uuid.New(), decimal.NewFromInt(100), "books")
	order.Status = status
	return order
}

func TestApplyResult(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name         string
		initial      models.OrderStatus
		resultStatus string
		wantUpdate   bool
		wantStatus   models.OrderStatus
	}{
		{
			name:         "success_finishes_new_order",
			initial:      models.OrderStatusNew,
			resultStatus: events.StatusSuccess,
			wantUpdate:   true,
			wantStatus:   models.OrderStatusFinished,
		},
		{
			name:         "failure_cancels_new_order",
			initial:      models.OrderStatusNew,
			resultStatus: events.StatusFail,
			wantUpdate:   true,
			wantStatus:   models.OrderStatusCancelled,
		},
		{
			name:         "finished_order_ignores_failure",
			initial:      models.OrderStatusFinished,
			resultStatus: events.StatusFail,
			wantUpdate:   false,
		},
		{
			name:         "cancelled_order_ignores_success",
			initial:      models.OrderStatusCancelled,
			resultStatus: events.StatusSuccess,
			wantUpdate:   false,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			log := logger.NewSlogLogger(logger.EnvLocal)
			repo := mocks.NewMockorderRepository(ctrl)
			service := settle.New(log, repo)

			order := newOrder(tc.initial)

			repo.EXPECT().
				ByIDTx(gomock.Any(), gomock.Nil(), order.ID).
				Return(order, nil)

			if tc.wantUpdate {
				repo.EXPECT().
					UpdateStatusTx(gomock.Any(), gomock.Nil(), order.ID, tc.wantStatus).
					Return(nil)
			}

			err := service.ApplyResult(context.Background(), nil, events.PaymentResult{
				EventID: uuid.New(),
				OrderID: order.ID,
				Status:  tc.resultStatus,
			})
			require.NoError(t, err)
		})
	}
}

func TestApplyResultUnknownOrderIsNoOp(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	log := logger.NewSlogLogger(logger.EnvLocal)
	repo := mocks.NewMockorderRepository(ctrl)
	service := settle.New(log, repo)

	repo.EXPECT().
		ByIDTx(gomock.Any(), gomock.Nil(), gomock.Any()).
		Return(nil, internalErrors.ErrOrderNotFound)

	err := service.ApplyResult(context.Background(), nil, events.PaymentResult{
		EventID: uuid.New(),
		OrderID: uuid.New(),
		Status:  events.StatusSuccess,
	})
	require.NoError(t, err)
}
