package orchestrator_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/daitlovv/gozon-shop/internal/events"
	"github.com/daitlovv/gozon-shop/internal/outbox"
	"github.com/daitlovv/gozon-shop/internal/payments/services/orchestrator"
	"github.com/daitlovv/gozon-shop/internal/payments/services/orchestrator/mocks"
	"github.com/daitlovv/gozon-shop/internal/payments/services/withdrawal"
	"github.com/daitlovv/gozon-shop/pkg/logger"
)

func TestProcessSchedulesResultEvent(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		result withdrawal.Result
	}{
		{
			name: "successful_withdrawal",
			result: withdrawal.Result{
				OrderID: uuid.New(),
				Status:  events.StatusSuccess,
				Reason:  events.ReasonOK,
			},
		},
		{
			name: "declined_withdrawal_is_not_an_error",
			result: withdrawal.Result{
				OrderID: uuid.New(),
				Status:  events.StatusFail,
				Reason:  events.ReasonNotEnoughMoney,
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			log := logger.NewSlogLogger(logger.EnvLocal)
			withdrawer := mocks.NewMockwithdrawer(ctrl)
			outboxRepo := mocks.NewMockoutboxInserter(ctrl)
			service := orchestrator.New(log, withdrawer, outboxRepo)

			request := events.PaymentRequest{
				EventID: uuid.New(),
				OrderID: tc.result.OrderID,
				UserID:  uuid.New(),
				Amount:  decimal.NewFromInt(100),
			}

			withdrawer.EXPECT().
				TryWithdraw(gomock.Any(), gomock.Nil(), request).
				Return(tc.result)

			outboxRepo.EXPECT().
				InsertTx(gomock.Any(), gomock.Nil(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ *sqlx.Tx, msg outbox.Message) error {
					require.Equal(t, events.TypePaymentResult, msg.EventType)

					var event events.PaymentResult
					require.NoError(t, json.Unmarshal(msg.Payload, &event))
					require.Equal(t, tc.result.OrderID, event.OrderID)
					require.Equal(t, tc.result.Status, event.Status)
					require.Equal(t, tc.result.Reason, event.Reason)
					require.NotEqual(t, request.EventID, event.EventID)
					return nil
				})

			require.NoError(t, service.Process(context.Background(), nil, request))
		})
	}
}

func TestProcessEscalatesOutboxFailure(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	log := logger.NewSlogLogger(logger.EnvLocal)
	withdrawer := mocks.NewMockwithdrawer(ctrl)
	outboxRepo := mocks.NewMockoutboxInserter(ctrl)
	service := orchestrator.New(log, withdrawer, outboxRepo)

	insertErr := errors.New("outbox insert failed")

	withdrawer.EXPECT().
		TryWithdraw(gomock.Any(), gomock.Nil(), gomock.Any()).
		Return(withdrawal.Result{
			OrderID: uuid.New(),
			Status:  events.StatusSuccess,
			Reason:  events.ReasonOK,
		})
	outboxRepo.EXPECT().
		InsertTx(gomock.Any(), gomock.Nil(), gomock.Any()).
		Return(insertErr)

	err := service.Process(context.Background(), nil, events.PaymentRequest{
		EventID: uuid.New(),
		OrderID: uuid.New(),
		UserID:  uuid.New(),
		Amount:  decimal.NewFromInt(100),
	})
	require.ErrorIs(t, err, insertErr)
}
