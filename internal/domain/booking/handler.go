package booking

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/sinding/booking-api/internal/pkg/errorhandler"
	"github.com/sinding/booking-api/internal/pkg/logger"
	"github.com/sinding/booking-api/internal/pkg/response"
)

const maxBodyBytes = 64 << 10

// Handler handles booking HTTP requests
type Handler struct {
	svc *Service
}

// NewHandler creates booking handler
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Submit handles POST /bookings (public). Accepts JSON or a form-encoded body.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	req, err := decodeSubmitRequest(r)
	if err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	b, err := h.svc.Submit(r.Context(), req)
	if err != nil {
		h.writeSubmitError(w, r, err)
		return
	}

	response.Created(w, &SubmittedResponse{
		BookingID:  b.ID,
		Message:    MsgReceived,
		TotalPrice: b.TotalPrice,
	})
}

func (h *Handler) writeSubmitError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		errorhandler.HandleValidationError(r.Context(), w, verr.Message(), verr.Details())
	case errors.Is(err, ErrNoSession):
		response.Error(w, http.StatusUnprocessableEntity, "NO_SESSION", MsgNoSession)
	case errors.Is(err, ErrPersistence):
		errorhandler.HandleError(r.Context(), w, http.StatusInternalServerError, "BOOKING_NOT_SAVED", MsgNotSaved, err)
	default:
		logger.LogError(r.Context(), err, "Booking submission failed")
		response.InternalError(w)
	}
}

func decodeSubmitRequest(r *http.Request) (SubmitRequest, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	var req SubmitRequest
	switch mediaType {
	case "application/x-www-form-urlencoded", "multipart/form-data":
		if err := r.ParseMultipartForm(maxBodyBytes); err != nil && !errors.Is(err, http.ErrNotMultipart) {
			return req, err
		}
		form := r.PostForm
		req.Name = form.Get("name")
		req.Email = form.Get("email")
		req.Phone = form.Get("phone")
		req.BookingDate = form.Get("booking_date")
		req.SessionIDs = formList(form, "session_items", "session_ids")
		req.AddonIDs = formList(form, "addon_items", "addon_ids")
		return req, nil
	default:
		dec := json.NewDecoder(r.Body)
		err := dec.Decode(&req)
		return req, err
	}
}

// formList collects repeated values for each name, with or without a "[]" suffix.
func formList(form map[string][]string, names ...string) []string {
	var out []string
	for _, name := range names {
		out = append(out, form[name]...)
		out = append(out, form[name+"[]"]...)
	}
	for i, v := range out {
		out[i] = strings.TrimSpace(v)
	}
	return out
}

// List handles GET /admin/bookings
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.svc.List(r.Context())
	if err != nil {
		errorhandler.HandleError(r.Context(), w, http.StatusInternalServerError, "INTERNAL_ERROR", "Could not load bookings", err)
		return
	}

	items := make([]*Response, len(bookings))
	for i, b := range bookings {
		items[i] = ResponseFromEntity(b)
	}

	response.WithMeta(w, items, response.Meta{Total: len(items)})
}

// GetByID handles GET /admin/bookings/{id}
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(w, "Invalid booking ID")
		return
	}

	b, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			response.NotFound(w, "Booking not found")
			return
		}
		errorhandler.HandleError(r.Context(), w, http.StatusInternalServerError, "INTERNAL_ERROR", "Could not load booking", err)
		return
	}

	response.OK(w, ResponseFromEntity(b))
}
