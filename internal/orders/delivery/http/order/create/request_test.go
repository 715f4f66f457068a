package create

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tCases := []struct {
		name  string
		input *CreateOrderRequest
	}{
		{
			name: "whole_amount",
			input: &CreateOrderRequest{
				Amount:      decimal.NewFromInt(320),
				Description: "books",
			},
		},
		{
			name: "fractional_amount",
			input: &CreateOrderRequest{
				Amount:      decimal.RequireFromString("19.99"),
				Description: "coffee",
			},
		},
	}

	for _, tCase := range tCases {
		t.Run(tCase.name, func(t *testing.T) {
			err := tCase.input.validate()
			require.NoError(t, err)
		})
	}
}

func TestValidateError(t *testing.T) {
	tCases := []struct {
		name   string
		input  *CreateOrderRequest
		expErr error
	}{
		{
			name: "zero_amount",
			input: &CreateOrderRequest{
				Amount:      decimal.Zero,
				Description: "books",
			},
			expErr: errInvalidAmount,
		},
		{
			name: "negative_amount",
			input: &CreateOrderRequest{
				Amount:      decimal.NewFromInt(-5),
				Description: "books",
			},
			expErr: errInvalidAmount,
		},
		{
			name: "empty_description",
			input: &CreateOrderRequest{
				Amount: decimal.NewFromInt(320),
			},
			expErr: errEmptyDescription,
		},
	}

	for _, tCase := range tCases {
		t.Run(tCase.name, func(t *testing.T) {
			err := tCase.input.validate()
			require.Error(t, err)
			require.EqualError(t, tCase.expErr, err.Error())
		})
	}
}
