package booking

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// PublicRoutes returns the submission routes. Middleware such as the rate
// limiter applies to submissions only.
func (h *Handler) PublicRoutes(submitMiddleware ...func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.With(submitMiddleware...).Post("/", h.Submit)

	return r
}

// AdminRoutes returns operator routes; authMiddleware guards all of them
func (h *Handler) AdminRoutes(authMiddleware ...func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Use(authMiddleware...)

	r.Get("/", h.List)
	r.Get("/{id}", h.GetByID)

	return r
}
