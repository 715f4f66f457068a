package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	internalErrors "github.com/daitlovv/gozon-shop/internal/payments/lib/errors"
)

// Account is the ledger row of the payments service. Version is the
// optimistic-concurrency token: every balance change bumps it, and a writer
// that saw a stale version loses without any row lock being held.
type Account struct {
	ID      uuid.UUID       `db:"id"`
	UserID  uuid.UUID       `db:"user_id"`
	Balance decimal.Decimal `db:"balance"`
	Version int             `db:"version"`
}

func NewAccount(userID uuid.UUID) *Account {
	return &Account{
		ID:      uuid.New(),
		UserID:  userID,
		Balance: decimal.Zero,
		Version: 0,
	}
}

// Deposit is unconditional: account funding has a single writer, so no
// version check is needed. The version still bumps to keep the token
// monotonic for concurrent withdrawers.
func (a *Account) Deposit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return internalErrors.ErrInvalidAmount
	}

	a.Balance = a.Balance.Add(amount)
	a.Version++

	return nil
}

// Withdraw debits the balance when the caller's expected version still
// matches. Funds are checked before the version so that insufficient funds
// is reported even off a stale read; a version mismatch alone means the
// caller must re-read and retry.
func (a *Account) Withdraw(amount decimal.Decimal, expectedVersion int) error {
	if !amount.IsPositive() {
		return internalErrors.ErrInvalidAmount
	}

	if a.Balance.LessThan(amount) {
		return internalErrors.ErrInsufficientFunds
	}

	if a.Version != expectedVersion {
		return internalErrors.ErrConcurrencyConflict
	}

	a.Balance = a.Balance.Sub(amount)
	a.Version++

	return nil
}
