package admin

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns admin auth routes. loginMiddleware wraps the login endpoint
// (rate limiting); authMiddleware guards the rest.
func (h *Handler) Routes(authMiddleware []func(http.Handler) http.Handler, loginMiddleware ...func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	// Auth routes (no auth required)
	r.With(loginMiddleware...).Post("/auth/login", h.Login)

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware...)
		r.Get("/auth/me", h.Me)
	})

	return r
}
