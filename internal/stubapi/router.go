package stubapi

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/nikolayk812/foodnodes/internal/apperrors"
	"github.com/nikolayk812/foodnodes/internal/port"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter mounts the cart and order endpoints under /api/v1. ready backs
// the readiness probe.
func NewRouter(repo port.CartRepository, ready func(context.Context) error, logger *slog.Logger) http.Handler {
	h := NewHandler(repo, logger)

	r := chi.NewRouter()

	r.Use(recovery(logger))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(requestLogging(logger))
	r.Use(metrics)

	r.Get("/health/live", func(w http.ResponseWriter, _ *http.Request) {
		writeData(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/health/ready", func(w http.ResponseWriter, r *http.Request) {
		if err := ready(r.Context()); err != nil {
			logger.WarnContext(r.Context(), "not ready", slog.String("error", err.Error()))
			writeError(w, r, apperrors.Unavailable("database is not reachable", err), logger)
			return
		}
		writeData(w, http.StatusOK, map[string]string{"status": "ready"})
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(bearerAuth(logger))

		r.Get("/cart", h.GetCart)
		r.Post("/cart", h.AddItem)
		r.Put("/cart/{id}", h.UpdateItem)
		r.Delete("/cart/{id}", h.RemoveItem)

		r.Post("/orders", h.CreateOrder)
		r.Get("/orders", h.ListOrders)
	})

	return r
}
