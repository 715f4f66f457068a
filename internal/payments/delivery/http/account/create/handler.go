package create

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	internalErrors "github.com/daitlovv/gozon-shop/internal/payments/lib/errors"
	"github.com/daitlovv/gozon-shop/pkg/logger"
)

type accountCreator interface {
	CreateAccount(ctx context.Context, userID uuid.UUID) (uuid.UUID, error)
}

type Handler struct {
	log logger.Logger

	accountCreator accountCreator
}

func NewHandler(log logger.Logger, accountCreator accountCreator) *Handler {
	return &Handler{
		log:            log,
		accountCreator: accountCreator,
	}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	const op = "delivery.http.account.create.Create"

	userID, err := uuid.Parse(r.Header.Get("user_id"))
	if err != nil {
		h.log.Error(op, logger.String("invalid user_id header", err.Error()))
		http.Error(w, "invalid user_id header", http.StatusBadRequest)
		return
	}

	accountID, err := h.accountCreator.CreateAccount(r.Context(), userID)
	if err != nil {
		if errors.Is(err, internalErrors.ErrAccountExists) {
			http.Error(w, internalErrors.ErrAccountExists.Error(), http.StatusConflict)
			return
		}
		h.log.Error(op, logger.String("failed to create account", err.Error()))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err = json.NewEncoder(w).Encode(
		map[string]string{
			"account_id": accountID.String(),
		},
	); err != nil {
		h.log.Error(op, logger.String("failed to encode response", err.Error()))
	}
}
