package catalogue

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sinding/booking-api/internal/pkg/response"
)

// ListResponse groups the catalogue the way the booking form presents it.
type ListResponse struct {
	Sessions []Item `json:"sessions"`
	Addons   []Item `json:"addons"`
}

// Handler serves the catalogue read-only.
type Handler struct {
	catalogue *Catalogue
}

// NewHandler creates catalogue handler
func NewHandler(c *Catalogue) *Handler {
	return &Handler{catalogue: c}
}

// List handles GET /catalogue
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	resp := ListResponse{
		Sessions: h.catalogue.Sessions(),
		Addons:   h.catalogue.Addons(),
	}
	if resp.Sessions == nil {
		resp.Sessions = []Item{}
	}
	if resp.Addons == nil {
		resp.Addons = []Item{}
	}
	response.OK(w, resp)
}

// Routes returns catalogue router
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	return r
}
