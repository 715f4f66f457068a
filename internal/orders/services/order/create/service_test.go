package create_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/daitlovv/gozon-shop/internal/events"
	"github.com/daitlovv/gozon-shop/internal/orders/domain/models"
	internalErrors "github.com/daitlovv/gozon-shop/internal/orders/lib/errors"
	"github.com/daitlovv/gozon-shop/internal/orders/services/order/create"
	"github.com/daitlovv/gozon-shop/internal/orders/services/order/create/mocks"
	"github.com/daitlovv/gozon-shop/internal/outbox"
	"github.com/daitlovv/gozon-shop/pkg/logger"
)

func TestCreateWritesOrderAndPaymentRequestTogether(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	log := logger.NewSlogLogger(logger.EnvLocal)
	repo := mocks.NewMockorderRepository(ctrl)
	service := create.New(log, repo)

	userID := uuid.New()
	amount := decimal.NewFromInt(150)

	repo.EXPECT().
		ExistsRecentDuplicate(gomock.Any(), userID, amount, "books", gomock.Any()).
		Return(false, nil)

	var capturedOrder *models.Order
	var capturedMsg outbox.Message

	repo.EXPECT().
		CreateWithPaymentRequest(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, order *models.Order, msg outbox.Message) error {
			capturedOrder = order
			capturedMsg = msg
			return nil
		})

	orderID, err := service.Create(context.Background(), userID, amount, "books")
	require.NoError(t, err)

	require.Equal(t, capturedOrder.ID, orderID)
	require.Equal(t, models.OrderStatusNew, capturedOrder.Status)
	require.Equal(t, events.TypePaymentRequest, capturedMsg.EventType)

	var request events.PaymentRequest
	require.NoError(t, json.Unmarshal(capturedMsg.Payload, &request))
	require.Equal(t, orderID, request.OrderID)
	require.Equal(t, userID, request.UserID)
	require.True(t, amount.Equal(request.Amount))
	require.NotEqual(t, uuid.Nil, request.EventID)
}

func TestCreateRejectsRecentDuplicate(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	log := logger.NewSlogLogger(logger.EnvLocal)
	repo := mocks.NewMockorderRepository(ctrl)
	service := create.New(log, repo)

	repo.EXPECT().
		ExistsRecentDuplicate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(true, nil)

	_, err := service.Create(context.Background(), uuid.New(), decimal.NewFromInt(10), "books")
	require.ErrorIs(t, err, internalErrors.ErrDuplicateOrder)
}

func TestCreatePropagatesRepositoryError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	log := logger.NewSlogLogger(logger.EnvLocal)
	repo := mocks.NewMockorderRepository(ctrl)
	service := create.New(log, repo)

	repoErr := errors.New("db is down")

	repo.EXPECT().
		ExistsRecentDuplicate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(false, nil)
	repo.EXPECT().
		CreateWithPaymentRequest(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(repoErr)

	_, err := service.Create(context.Background(), uuid.New(), decimal.NewFromInt(10), "books")
	require.ErrorIs(t, err, repoErr)
}
