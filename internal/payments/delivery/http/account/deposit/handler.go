package deposit

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	internalErrors "github.com/daitlovv/gozon-shop/internal/payments/lib/errors"
	"github.com/daitlovv/gozon-shop/pkg/logger"
)

type depositor interface {
	Deposit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error)
}

type Handler struct {
	log logger.Logger

	depositor depositor
}

func NewHandler(log logger.Logger, depositor depositor) *Handler {
	return &Handler{
		log:       log,
		depositor: depositor,
	}
}

func (h *Handler) Deposit(w http.ResponseWriter, r *http.Request) {
	const op = "delivery.http.account.deposit.Deposit"

	userID, err := uuid.Parse(r.Header.Get("user_id"))
	if err != nil {
		h.log.Error(op, logger.String("invalid user_id header", err.Error()))
		http.Error(w, "invalid user_id header", http.StatusBadRequest)
		return
	}

	var req DepositRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error(op, logger.String("failed to decode request body", err.Error()))
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err = req.validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	newBalance, err := h.depositor.Deposit(r.Context(), userID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, internalErrors.ErrAccountNotFound):
			http.Error(w, internalErrors.ErrAccountNotFound.Error(), http.StatusNotFound)
		case errors.Is(err, internalErrors.ErrInvalidAmount):
			http.Error(w, internalErrors.ErrInvalidAmount.Error(), http.StatusBadRequest)
		default:
			h.log.Error(op, logger.String("failed to deposit", err.Error()))
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err = json.NewEncoder(w).Encode(
		map[string]decimal.Decimal{
			"new_balance": newBalance,
		},
	); err != nil {
		h.log.Error(op, logger.String("failed to encode response", err.Error()))
	}
}
