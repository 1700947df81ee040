package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORSHandler lets the configured origins call the JSON API and read the
// request id and rate limit headers. Credentials are allowed so the CSRF
// cookie travels with form posts from a separately hosted page.
func CORSHandler(allowedOrigins []string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{
			"Accept",
			"Authorization",
			"Content-Type",
			"X-CSRF-Token",
			"X-Request-ID",
		},
		ExposedHeaders:   []string{"X-Request-ID", "Retry-After"},
		AllowCredentials: true,
		MaxAge:           300,
	})
}
