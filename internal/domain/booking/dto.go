package booking

import (
	"time"
)

// SubmitRequest is the untrusted booking form input. It carries no total;
// prices are always computed from the catalogue.
type SubmitRequest struct {
	Name        string   `json:"name" validate:"required"`
	Email       string   `json:"email" validate:"required,booking_email"`
	Phone       string   `json:"phone" validate:"required,booking_phone"`
	BookingDate string   `json:"booking_date" validate:"required,booking_date"`
	SessionIDs  []string `json:"session_ids"`
	AddonIDs    []string `json:"addon_ids"`
}

// SubmittedResponse is returned for an accepted booking
type SubmittedResponse struct {
	BookingID  int64   `json:"booking_id"`
	Message    string  `json:"message"`
	TotalPrice float64 `json:"total_price"`
}

// Response is the operator view of a booking
type Response struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	BookingDate   string    `json:"booking_date"`
	SessionLabels []string  `json:"session_labels"`
	AddonLabels   []string  `json:"addon_labels"`
	TotalPrice    float64   `json:"total_price"`
	Status        Status    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

// ResponseFromEntity converts a booking to its operator view
func ResponseFromEntity(b *Booking) *Response {
	sessions := []string(b.SessionLabels)
	if sessions == nil {
		sessions = []string{}
	}
	addons := []string(b.AddonLabels)
	if addons == nil {
		addons = []string{}
	}
	return &Response{
		ID:            b.ID,
		Name:          b.Name,
		Email:         b.Email,
		Phone:         b.Phone,
		BookingDate:   b.BookingDate.String(),
		SessionLabels: sessions,
		AddonLabels:   addons,
		TotalPrice:    b.TotalPrice,
		Status:        b.Status,
		CreatedAt:     b.CreatedAt,
	}
}
