package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	internalErrors "github.com/daitlovv/gozon-shop/internal/payments/lib/errors"
)

func TestDeposit(t *testing.T) {
	account := NewAccount(uuid.New())

	require.NoError(t, account.Deposit(decimal.NewFromInt(100)))
	require.True(t, account.Balance.Equal(decimal.NewFromInt(100)))
	require.Equal(t, 1, account.Version)

	require.NoError(t, account.Deposit(decimal.NewFromFloat(0.5)))
	require.True(t, account.Balance.Equal(decimal.NewFromFloat(100.5)))
	require.Equal(t, 2, account.Version)
}

func TestDepositError(t *testing.T) {
	tCases := []struct {
		name   string
		amount decimal.Decimal
	}{
		{name: "zero_amount", amount: decimal.Zero},
		{name: "negative_amount", amount: decimal.NewFromInt(-10)},
	}

	for _, tCase := range tCases {
		t.Run(tCase.name, func(t *testing.T) {
			account := NewAccount(uuid.New())

			err := account.Deposit(tCase.amount)
			require.ErrorIs(t, err, internalErrors.ErrInvalidAmount)
			require.True(t, account.Balance.IsZero())
			require.Equal(t, 0, account.Version)
		})
	}
}

func TestWithdraw(t *testing.T) {
	account := NewAccount(uuid.New())
	require.NoError(t, account.Deposit(decimal.NewFromInt(100)))

	require.NoError(t, account.Withdraw(decimal.NewFromInt(30), 1))
	require.True(t, account.Balance.Equal(decimal.NewFromInt(70)))
	require.Equal(t, 2, account.Version)
}

func TestWithdrawError(t *testing.T) {
	tCases := []struct {
		name            string
		amount          decimal.Decimal
		expectedVersion int
		expErr          error
	}{
		{
			name:            "invalid_amount",
			amount:          decimal.Zero,
			expectedVersion: 1,
			expErr:          internalErrors.ErrInvalidAmount,
		},
		{
			name:            "insufficient_funds",
			amount:          decimal.NewFromInt(150),
			expectedVersion: 1,
			expErr:          internalErrors.ErrInsufficientFunds,
		},
		{
			// the balance check runs first: a stale reader with not enough
			// money gets the business answer, not a retryable conflict
			name:            "insufficient_funds_beats_stale_version",
			amount:          decimal.NewFromInt(150),
			expectedVersion: 0,
			expErr:          internalErrors.ErrInsufficientFunds,
		},
		{
			name:            "version_conflict",
			amount:          decimal.NewFromInt(30),
			expectedVersion: 0,
			expErr:          internalErrors.ErrConcurrencyConflict,
		},
	}

	for _, tCase := range tCases {
		t.Run(tCase.name, func(t *testing.T) {
			account := NewAccount(uuid.New())
			require.NoError(t, account.Deposit(decimal.NewFromInt(100)))

			err := account.Withdraw(tCase.amount, tCase.expectedVersion)
			require.ErrorIs(t, err, tCase.expErr)

			// failed withdrawals never touch balance or version
			require.True(t, account.Balance.Equal(decimal.NewFromInt(100)))
			require.Equal(t, 1, account.Version)
		})
	}
}

func TestBalanceNeverNegative(t *testing.T) {
	account := NewAccount(uuid.New())
	require.NoError(t, account.Deposit(decimal.NewFromInt(50)))

	require.NoError(t, account.Withdraw(decimal.NewFromInt(50), 1))
	require.True(t, account.Balance.IsZero())

	err := account.Withdraw(decimal.NewFromInt(1), 2)
	require.ErrorIs(t, err, internalErrors.ErrInsufficientFunds)
	require.True(t, account.Balance.IsZero())
}
