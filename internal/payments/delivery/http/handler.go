package payments_http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/daitlovv/gozon-shop/internal/payments/delivery/http/account/balance"
	"github.com/daitlovv/gozon-shop/internal/payments/delivery/http/account/create"
	"github.com/daitlovv/gozon-shop/internal/payments/delivery/http/account/deposit"
	"github.com/daitlovv/gozon-shop/pkg/logger"
)

type Handler struct {
	log logger.Logger

	createHandler  *create.Handler
	depositHandler *deposit.Handler
	balanceHandler *balance.Handler
}

func NewHandler(
	log logger.Logger,
	createHandler *create.Handler,
	depositHandler *deposit.Handler,
	balanceHandler *balance.Handler,
) *Handler {
	return &Handler{
		log:            log,
		createHandler:  createHandler,
		depositHandler: depositHandler,
		balanceHandler: balanceHandler,
	}
}

func (h *Handler) InitRoutes() http.Handler {
	mux := chi.NewRouter()

	mux.Route("/account", func(r chi.Router) {
		r.Post("/", h.createHandler.Create)
		r.Post("/deposit", h.depositHandler.Deposit)
		r.Get("/balance", h.balanceHandler.Balance)
	})

	mux.Get("/health", h.health)

	return mux
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
