package get

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/daitlovv/gozon-shop/internal/orders/domain/models"
	internalErrors "github.com/daitlovv/gozon-shop/internal/orders/lib/errors"
	"github.com/daitlovv/gozon-shop/pkg/logger"
)

type orderGetter interface {
	OrderByID(ctx context.Context, orderID uuid.UUID) (*models.Order, error)
	OrdersByUser(ctx context.Context, userID uuid.UUID) ([]models.Order, error)
}

type Handler struct {
	log logger.Logger

	orderGetter orderGetter
}

func NewHandler(log logger.Logger, orderGetter orderGetter) *Handler {
	return &Handler{
		log:         log,
		orderGetter: orderGetter,
	}
}

func (h *Handler) OrderByID(w http.ResponseWriter, r *http.Request) {
	const op = "delivery.http.order.get.OrderByID"

	orderID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.log.Error(op, logger.String("invalid order id", err.Error()))
		http.Error(w, "invalid order id", http.StatusBadRequest)
		return
	}

	order, err := h.orderGetter.OrderByID(r.Context(), orderID)
	if err != nil {
		if errors.Is(err, internalErrors.ErrOrderNotFound) {
			http.Error(w, internalErrors.ErrOrderNotFound.Error(), http.StatusNotFound)
			return
		}
		h.log.Error(op, logger.String("failed to get order", err.Error()))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err = json.NewEncoder(w).Encode(order); err != nil {
		h.log.Error(op, logger.String("failed to encode response", err.Error()))
	}
}

func (h *Handler) OrdersByUser(w http.ResponseWriter, r *http.Request) {
	const op = "delivery.http.order.get.OrdersByUser"

	userID, err := uuid.Parse(r.Header.Get("user_id"))
	if err != nil {
		h.log.Error(op, logger.String("invalid user_id header", err.Error()))
		http.Error(w, "invalid user_id header", http.StatusBadRequest)
		return
	}

	orders, err := h.orderGetter.OrdersByUser(r.Context(), userID)
	if err != nil {
		h.log.Error(op, logger.String("failed to get orders", err.Error()))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err = json.NewEncoder(w).Encode(
		map[string]interface{}{
			"orders": orders,
		},
	); err != nil {
		h.log.Error(op, logger.String("failed to encode response", err.Error()))
	}
}
