// Package events defines the wire contract between the orders and payments
// services: the two event payloads and the broker topology they travel over.
package events

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Broker topology. The orders service publishes payment requests to its own
// exchange; the payments service answers on its own exchange. Both exchanges
// are direct and durable.
const (
	OrdersExchange    = "orders.exchange"
	PaymentRequestKey = "payment.request"
	PaymentsQueue     = "payments.payments"

	PaymentsExchange = "payments.exchange"
	PaymentResultKey = "payment.result"
	ResultsQueue     = "orders.results"
)

const (
	TypePaymentRequest = "PaymentRequest"
	TypePaymentResult  = "PaymentResult"
)

const (
	StatusSuccess = "success"
	StatusFail    = "fail"
)

// Reason codes carried by PaymentResult. Business failures are values, not
// errors: the counterparty reads them from the event, never from an exception.
const (
	ReasonOK                  = "OK"
	ReasonNoAccount           = "NO_ACCOUNT"
	ReasonNotEnoughMoney      = "NOT_ENOUGH_MONEY"
	ReasonInvalidAmount       = "INVALID_AMOUNT"
	ReasonConcurrencyConflict = "CONCURRENCY_CONFLICT"
	ReasonMaxRetriesExceeded  = "MAX_RETRIES_EXCEEDED"
	ReasonInternalError       = "INTERNAL_ERROR"
)

type PaymentRequest struct {
	EventID uuid.UUID       `json:"EventId"`
	OrderID uuid.UUID       `json:"OrderId"`
	UserID  uuid.UUID       `json:"UserId"`
	Amount  decimal.Decimal `json:"Amount"`
}

type PaymentResult struct {
	EventID uuid.UUID `json:"EventId"`
	OrderID uuid.UUID `json:"OrderId"`
	Status  string    `json:"Status"`
	Reason  string    `json:"Reason"`
}
