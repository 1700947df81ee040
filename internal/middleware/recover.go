package middleware

import (
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/sinding/booking-api/internal/pkg/logger"
	"github.com/sinding/booking-api/internal/pkg/response"
)

// Recover turns a handler panic into a 500 envelope. http.ErrAbortHandler is
// re-raised so net/http can abort the connection.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rec)
			}

			logger.FromContext(r.Context()).Error().
				Interface("panic", rec).
				Bytes("stack", debug.Stack()).
				Str("request_id", logger.RequestID(r.Context())).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Msg("Handler panicked")

			response.InternalError(w)
		}()

		next.ServeHTTP(w, r)
	})
}
