package orders_http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/daitlovv/gozon-shop/internal/orders/delivery/http/order/create"
	"github.com/daitlovv/gozon-shop/internal/orders/delivery/http/order/get"
	"github.com/daitlovv/gozon-shop/pkg/logger"
)

type Handler struct {
	log logger.Logger

	createHandler *create.Handler
	getHandler    *get.Handler
}

func NewHandler(log logger.Logger, createHandler *create.Handler, getHandler *get.Handler) *Handler {
	return &Handler{
		log:           log,
		createHandler: createHandler,
		getHandler:    getHandler,
	}
}

func (h *Handler) InitRoutes() http.Handler {
	mux := chi.NewRouter()

	mux.Route("/order", func(r chi.Router) {
		r.Post("/", h.createHandler.Create)
		r.Get("/{id}", h.getHandler.OrderByID)
	})

	mux.Get("/orders", h.getHandler.OrdersByUser)
	mux.Get("/health", h.health)

	return mux
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
