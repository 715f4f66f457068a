package deposit

import (
	"errors"

	"github.com/shopspring/decimal"
)

var errInvalidAmount = errors.New("amount must be positive")

type DepositRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

func (r *DepositRequest) validate() error {
	if !r.Amount.IsPositive() {
		return errInvalidAmount
	}

	return nil
}
