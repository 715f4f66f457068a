package create

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	errInvalidAmount    = errors.New("amount must be positive")
	errEmptyDescription = errors.New("description can't be empty")
)

type CreateOrderRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

func (req *CreateOrderRequest) validate() error {
	if !req.Amount.IsPositive() {
		return errInvalidAmount
	}

	if req.Description == "" {
		return errEmptyDescription
	}

	return nil
}
