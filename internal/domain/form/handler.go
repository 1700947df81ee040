package form

import (
	"bytes"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/csrf"

	"github.com/sinding/booking-api/internal/domain/booking"
	"github.com/sinding/booking-api/internal/domain/catalogue"
	"github.com/sinding/booking-api/internal/pkg/errorhandler"
	"github.com/sinding/booking-api/internal/pkg/validator"
)

// Messages are the client-side copies of the server validation notices.
type Messages struct {
	Required      string `json:"required"`
	InvalidEmail  string `json:"invalidEmail"`
	InvalidPhone  string `json:"invalidPhone"`
	InvalidDate   string `json:"invalidDate"`
	SelectSession string `json:"selectSession"`
	Submitting    string `json:"submitting"`
	Error         string `json:"error"`
}

// Config configures the booking form page
type Config struct {
	SiteName  string
	SubmitURL string
	Location  *time.Location
}

type pageData struct {
	SiteName  string
	SubmitURL string
	CSRFToken string
	MinDate   string
	Sessions  []catalogue.Item
	Addons    []catalogue.Item
	Items     []clientItem
	Messages  Messages
}

// Handler renders the public booking form
type Handler struct {
	catalogue *catalogue.Catalogue
	cfg       Config
	now       func() time.Time
}

// NewHandler creates form handler
func NewHandler(cat *catalogue.Catalogue, cfg Config) *Handler {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.SubmitURL == "" {
		cfg.SubmitURL = "/api/v1/bookings"
	}
	return &Handler{catalogue: cat, cfg: cfg, now: time.Now}
}

// Page handles GET /
func (h *Handler) Page(w http.ResponseWriter, r *http.Request) {
	tomorrow := h.now().In(h.cfg.Location).AddDate(0, 0, 1)

	data := pageData{
		SiteName:  h.cfg.SiteName,
		SubmitURL: h.cfg.SubmitURL,
		CSRFToken: csrf.Token(r),
		MinDate:   tomorrow.Format(validator.DateLayout),
		Sessions:  h.catalogue.Sessions(),
		Addons:    h.catalogue.Addons(),
		Items:     clientItems(h.catalogue.Items()),
		Messages: Messages{
			Required:      booking.MsgRequiredFields,
			InvalidEmail:  booking.MsgInvalidEmail,
			InvalidPhone:  booking.MsgInvalidPhone,
			InvalidDate:   booking.MsgPastDate,
			SelectSession: booking.MsgNoSession,
			Submitting:    "Submitting…",
			Error:         "Something went wrong. Please try again.",
		},
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		errorhandler.HandleError(r.Context(), w, http.StatusInternalServerError, "INTERNAL_ERROR", "Could not render the booking form", err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// Routes returns form router
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.Page)
	return r
}
