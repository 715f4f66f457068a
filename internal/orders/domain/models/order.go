package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusNew       OrderStatus = "New"
	OrderStatusFinished  OrderStatus = "Finished"
	OrderStatusCancelled OrderStatus = "Cancelled"
)

func (s OrderStatus) Terminal() bool {
	return s == OrderStatusFinished || s == OrderStatusCancelled
}

// Order is the aggregate owned by the orders service. The id is assigned by
// the application, never by the store: it has to exist before commit so the
// payment request event can carry it.
type Order struct {
	ID          uuid.UUID       `db:"id" json:"id"`
	UserID      uuid.UUID       `db:"user_id" json:"user_id"`
	Amount      decimal.Decimal `db:"amount" json:"amount"`
	Description string          `db:"description" json:"description"`
	Status      OrderStatus     `db:"status" json:"status"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
}

func NewOrder(userID uuid.UUID, amount decimal.Decimal, description string) *Order {
	return &Order{
		ID:          uuid.New(),
		UserID:      userID,
		Amount:      amount,
		Description: description,
		Status:      OrderStatusNew,
		CreatedAt:   time.Now().UTC(),
	}
}

// MarkFinished settles the order as paid. A no-op unless the order is still
// New, so applying the same (or a contradictory) payment result twice cannot
// move an order out of a terminal state.
func (o *Order) MarkFinished() bool {
	if o.Status != OrderStatusNew {
		return false
	}

	o.Status = OrderStatusFinished

	return true
}

// MarkCancelled settles the order as failed. Same no-op rule as MarkFinished.
func (o *Order) MarkCancelled() bool {
	if o.Status != OrderStatusNew {
		return false
	}

	o.Status = OrderStatusCancelled

	return true
}
