package create

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	internalErrors "github.com/daitlovv/gozon-shop/internal/orders/lib/errors"
	"github.com/daitlovv/gozon-shop/pkg/logger"
)

type orderCreator interface {
	Create(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, description string) (uuid.UUID, error)
}

type Handler struct {
	log logger.Logger

	orderCreator orderCreator
}

func NewHandler(log logger.Logger, orderCreator orderCreator) *Handler {
	return &Handler{
		log:          log,
		orderCreator: orderCreator,
	}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	const op = "delivery.http.order.create.Create"

	userID, err := uuid.Parse(r.Header.Get("user_id"))
	if err != nil {
		h.log.Error(op, logger.String("invalid user_id header", err.Error()))
		http.Error(w, "invalid user_id header", http.StatusBadRequest)
		return
	}

	var request CreateOrderRequest

	if err = json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.log.Error(op, logger.String("failed to decode request", err.Error()))
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err = request.validate(); err != nil {
		h.log.Error(op, logger.String("failed to validate request", err.Error()))
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	orderID, err := h.orderCreator.Create(r.Context(), userID, request.Amount, request.Description)
	if err != nil {
		if errors.Is(err, internalErrors.ErrDuplicateOrder) {
			http.Error(w, internalErrors.ErrDuplicateOrder.Error(), http.StatusConflict)
			return
		}
		h.log.Error(op, logger.String("failed to create order", err.Error()))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err = json.NewEncoder(w).Encode(
		map[string]string{
			"order_id": orderID.String(),
		},
	); err != nil {
		h.log.Error(op, logger.String("failed to encode response", err.Error()))
	}
}
