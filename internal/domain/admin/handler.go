package admin

import (
	"errors"
	"net/http"

	"github.com/sinding/booking-api/internal/middleware"
	"github.com/sinding/booking-api/internal/pkg/errorhandler"
	"github.com/sinding/booking-api/internal/pkg/response"
	"github.com/sinding/booking-api/internal/pkg/validator"
)

// Handler handles admin HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates admin handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Login handles POST /admin/auth/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	resp, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCredentials):
			response.Unauthorized(w, "Invalid email or password")
		case errors.Is(err, ErrLoginDisabled):
			response.Forbidden(w, "Operator login is disabled")
		default:
			errorhandler.HandleError(r.Context(), w, http.StatusInternalServerError, "INTERNAL_ERROR", "An unexpected error occurred", err)
		}
		return
	}

	response.OK(w, resp)
}

// Me handles GET /admin/auth/me
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	response.OK(w, &MeResponse{
		Email: middleware.GetEmail(r.Context()),
		Role:  middleware.GetRole(r.Context()),
	})
}
