package events

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// Field names on the wire are part of the contract between the two services,
// so they are pinned here explicitly.
func TestPaymentRequestWireFields(t *testing.T) {
	req := PaymentRequest{
		EventID: uuid.New(),
		OrderID: uuid.New(),
		UserID:  uuid.New(),
		Amount:  decimal.NewFromInt(30),
	}

	raw, err := json.Marshal(req)
	require.NoError(t, err)

	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &fields))

	for _, name := range []string{"EventId", "OrderId", "UserId", "Amount"} {
		require.Contains(t, fields, name)
	}
}

func TestPaymentResultWireFields(t *testing.T) {
	res := PaymentResult{
		EventID: uuid.New(),
		OrderID: uuid.New(),
		Status:  StatusFail,
		Reason:  ReasonNotEnoughMoney,
	}

	raw, err := json.Marshal(res)
	require.NoError(t, err)

	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &fields))

	for _, name := range []string{"EventId", "OrderId", "Status", "Reason"} {
		require.Contains(t, fields, name)
	}

	var parsed PaymentResult
	require.NoError(t, json.Unmarshal(raw, &parsed))
	require.Equal(t, res, parsed)
}
