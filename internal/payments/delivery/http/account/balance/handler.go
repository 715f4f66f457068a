package balance

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

type balanceProvider interface {
	Balance(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error)
}

type Handler struct {
	log logger.Logger

	balanceProvider balanceProvider
}

func NewHandler(log logger.Logger, balanceProvider balanceProvider) *Handler {
	return &Handler{
		log:             log,
		balanceProvider: balanceProvider,
	}
}

func (h *Handler) Balance(w http.ResponseWriter, r *http.Request) {
	const op = "delivery.http.account.balance.Balance"

	userID, err := uuid.Parse(r.Header.Get("user_id"))
	if err != nil {
		h.log.Error(op, logger.String("invalid user_id header", err.Error()))
		http.Error(w, "invalid user_id header", http.StatusBadRequest)
		return
	}

	currentBalance, err := h.balanceProvider.Balance(r.Context(), userID)
	if err != nil {
		if errors.Is(err, internalErrors.ErrAccountNotFound) {
			http.Error(w, internalErrors.ErrAccountNotFound.Error(), http.StatusNotFound)
			return
		}
		h.log.Error(op, logger.String("failed to get balance", err.Error()))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err = json.NewEncoder(w).Encode(
		map[string]decimal.Decimal{
			"balance": currentBalance,
		},
	); err != nil {
		h.log.Error(op, logger.String("failed to encode response", err.Error()))
	}
}
