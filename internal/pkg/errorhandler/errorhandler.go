package errorhandler

import (
	"context"
	"net/http"

	"github.com/sinding/booking-api/internal/pkg/logger"
	"github.com/sinding/booking-api/internal/pkg/response"
)

// HandleError logs the internal cause and sends a generic error response.
// The cause never reaches the client.
func HandleError(ctx context.Context, w http.ResponseWriter, status int, code, message string, err error) {
	event := logger.FromContext(ctx).Error().
		Str("request_id", logger.RequestID(ctx)).
		Str("error_code", code).
		Int("status_code", status)

	if err != nil {
		event = event.Err(err)
	}

	event.Msg("Request error")

	response.Error(w, status, code, message)
}

// HandleValidationError logs rejected fields at debug level and sends a 422
// response with per-field details.
func HandleValidationError(ctx context.Context, w http.ResponseWriter, message string, details map[string]string) {
	logger.FromContext(ctx).Debug().
		Str("request_id", logger.RequestID(ctx)).
		Interface("validation_errors", details).
		Msg("Validation error")

	response.ValidationErrorWithMessage(w, message, details)
}
