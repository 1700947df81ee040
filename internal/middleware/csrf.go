package middleware

import (
	"net/http"
	"strings"

	"github.com/gorilla/csrf"
	"github.com/rs/zerolog/log"

	"github.com/sinding/booking-api/internal/pkg/response"
)

// CSRFConfig configures anti-forgery protection
type CSRFConfig struct {
	AuthKey        []byte
	Secure         bool
	TrustedOrigins []string
}

// CSRF protects form submissions with gorilla/csrf. JSON API requests are
// exempt; browsers cannot send them cross-origin without passing CORS.
func CSRF(cfg CSRFConfig) func(http.Handler) http.Handler {
	protect := csrf.Protect(
		cfg.AuthKey,
		csrf.Secure(cfg.Secure),
		csrf.Path("/"),
		csrf.SameSite(csrf.SameSiteLaxMode),
		csrf.TrustedOrigins(trustedHosts(cfg.TrustedOrigins)),
		csrf.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log.Warn().
				Err(csrf.FailureReason(r)).
				Str("path", r.URL.Path).
				Str("ip", ClientIP(r)).
				Msg("CSRF check failed")
			response.Forbidden(w, "Invalid or missing CSRF token")
		})),
	)

	return func(next http.Handler) http.Handler {
		protected := protect(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isJSON(r) {
				next.ServeHTTP(w, r)
				return
			}
			if !cfg.Secure {
				r = csrf.PlaintextHTTPRequest(r)
			}
			protected.ServeHTTP(w, r)
		})
	}
}

func isJSON(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "application/json")
}

// trustedHosts strips schemes; gorilla/csrf compares against the Origin host.
func trustedHosts(origins []string) []string {
	hosts := make([]string, 0, len(origins))
	for _, o := range origins {
		o = strings.TrimPrefix(o, "https://")
		o = strings.TrimPrefix(o, "http://")
		if o = strings.TrimSuffix(o, "/"); o != "" {
			hosts = append(hosts, o)
		}
	}
	return hosts
}
