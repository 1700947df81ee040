package booking

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sinding/booking-api/internal/domain/pricing"
	"github.com/sinding/booking-api/internal/pkg/email"
	"github.com/sinding/booking-api/internal/pkg/events"
)

// EventBookingCreated is the routing key of accepted bookings
const EventBookingCreated = "booking.created"

// EmailSender is the part of the email service used for bookings
type EmailSender interface {
	SendBookingConfirmation(data email.BookingEmailData) error
	SendBookingNotification(to string, data email.BookingEmailData) error
}

// EmailNotifier queues the customer confirmation and the studio notification
type EmailNotifier struct {
	emails        EmailSender
	operatorEmail string
}

func NewEmailNotifier(emails EmailSender, operatorEmail string) *EmailNotifier {
	return &EmailNotifier{emails: emails, operatorEmail: operatorEmail}
}

func (n *EmailNotifier) Name() string { return "email" }

func (n *EmailNotifier) BookingCreated(_ context.Context, b *Booking) error {
	data := email.BookingEmailData{
		BookingID: b.ID,
		Name:      b.Name,
		Email:     b.Email,
		Phone:     b.Phone,
		Date:      b.BookingDate.String(),
		Sessions:  joinOrNone(b.SessionLabels),
		Addons:    joinOrNone(b.AddonLabels),
		Total:     pricing.FormatNOK(int64(b.TotalPrice)),
	}

	errCustomer := n.emails.SendBookingConfirmation(data)

	var errOperator error
	if n.operatorEmail != "" {
		errOperator = n.emails.SendBookingNotification(n.operatorEmail, data)
	}

	return errors.Join(errCustomer, errOperator)
}

func joinOrNone(labels []string) string {
	if len(labels) == 0 {
		return "None"
	}
	return strings.Join(labels, ", ")
}

// CreatedEvent is the payload of EventBookingCreated
type CreatedEvent struct {
	BookingID     int64     `json:"booking_id"`
	BookingDate   string    `json:"booking_date"`
	SessionLabels []string  `json:"session_labels"`
	AddonLabels   []string  `json:"addon_labels"`
	TotalPrice    float64   `json:"total_price"`
	Status        Status    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

// EventNotifier publishes EventBookingCreated. Contact details are left out
// of the payload.
type EventNotifier struct {
	publisher events.Publisher
}

func NewEventNotifier(publisher events.Publisher) *EventNotifier {
	return &EventNotifier{publisher: publisher}
}

func (n *EventNotifier) Name() string { return "event" }

func (n *EventNotifier) BookingCreated(ctx context.Context, b *Booking) error {
	return n.publisher.Publish(ctx, EventBookingCreated, CreatedEvent{
		BookingID:     b.ID,
		BookingDate:   b.BookingDate.String(),
		SessionLabels: b.SessionLabels,
		AddonLabels:   b.AddonLabels,
		TotalPrice:    b.TotalPrice,
		Status:        b.Status,
		CreatedAt:     b.CreatedAt,
	})
}
