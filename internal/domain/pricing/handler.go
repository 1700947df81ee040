package pricing

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sinding/booking-api/internal/domain/catalogue"
	"github.com/sinding/booking-api/internal/pkg/response"
	"github.com/sinding/booking-api/internal/pkg/validator"
)

// Handler serves price previews. Quotes are display only; submissions are
// re-priced server side.
type Handler struct {
	catalogue *catalogue.Catalogue
}

// NewHandler creates pricing handler
func NewHandler(cat *catalogue.Catalogue) *Handler {
	return &Handler{catalogue: cat}
}

// Quote handles POST /quote
func (h *Handler) Quote(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	q := Compute(h.catalogue, req.SessionID, req.AddonIDs)
	response.OK(w, QuoteResponseFromQuote(q))
}

// Routes returns pricing routes
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.Quote)
	return r
}
