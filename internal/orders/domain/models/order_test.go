package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestOrderSettlement(t *testing.T) {
	tCases := []struct {
		name      string
		settle    func(o *Order) bool
		expStatus OrderStatus
	}{
		{
			name:      "finish_new_order",
			settle:    (*Order).MarkFinished,
			expStatus: OrderStatusFinished,
		},
		{
			name:      "cancel_new_order",
			settle:    (*Order).MarkCancelled,
			expStatus: OrderStatusCancelled,
		},
	}

	for _, tCase := range tCases {
		t.Run(tCase.name, func(t *testing.T) {
			order := NewOrder(uuid.New(), decimal.NewFromInt(30), "keyboard")
			require.Equal(t, OrderStatusNew, order.Status)

			require.True(t, tCase.settle(order))
			require.Equal(t, tCase.expStatus, order.Status)
		})
	}
}

func TestOrderSettlementFirstResultWins(t *testing.T) {
	order := NewOrder(uuid.New(), decimal.NewFromInt(30), "keyboard")

	require.True(t, order.MarkFinished())

	// a contradictory result delivered later must not move the order
	require.False(t, order.MarkCancelled())
	require.Equal(t, OrderStatusFinished, order.Status)

	require.False(t, order.MarkFinished())
	require.Equal(t, OrderStatusFinished, order.Status)
}

func TestOrderStatusTerminal(t *testing.T) {
	require.False(t, OrderStatusNew.Terminal())
	require.True(t, OrderStatusFinished.Terminal())
	require.True(t, OrderStatusCancelled.Terminal())
}
