package booking

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sinding/booking-api/internal/pkg/email"
)

type fakeEmails struct {
	confirmations []email.BookingEmailData
	notifications map[string]email.BookingEmailData
	err           error
}

func (f *fakeEmails) SendBookingConfirmation(data email.BookingEmailData) error {
	f.confirmations = append(f.confirmations, data)
	return f.err
}

func (f *fakeEmails) SendBookingNotification(to string, data email.BookingEmailData) error {
	if f.notifications == nil {
		f.notifications = map[string]email.BookingEmailData{}
	}
	f.notifications[to] = data
	return nil
}

type fakePublisher struct {
	routingKey string
	payload    []byte
}

func (p *fakePublisher) Publish(_ context.Context, routingKey string, payload any) error {
	p.routingKey = routingKey
	b, err := json.Marshal(payload)
	p.payload = b
	return err
}

func storedBooking() *Booking {
	b := sampleBooking(time.Date(2026, 5, 10, 10, 0, 0, 0, time.UTC))
	b.ID = 12
	return b
}

func TestEmailNotifierSendsBothEmails(t *testing.T) {
	emails := &fakeEmails{}
	n := NewEmailNotifier(emails, "post@sinding.no")

	require.NoError(t, n.BookingCreated(context.Background(), storedBooking()))

	require.Len(t, emails.confirmations, 1)
	data := emails.confirmations[0]
	assert.Equal(t, int64(12), data.BookingID)
	assert.Equal(t, "Family Session", data.Sessions)
	assert.Equal(t, "Extra Hour, Full Digital Package", data.Addons)
	assert.Equal(t, "2026-06-01", data.Date)
	assert.Equal(t, "NOK 4 500", data.Total)

	assert.Contains(t, emails.notifications, "post@sinding.no")
}

func TestEmailNotifierNoneForEmptyLists(t *testing.T) {
	emails := &fakeEmails{}
	b := storedBooking()
	b.AddonLabels = Labels{}

	require.NoError(t, NewEmailNotifier(emails, "").BookingCreated(context.Background(), b))
	assert.Equal(t, "None", emails.confirmations[0].Addons)
	assert.Empty(t, emails.notifications)
}

func TestEmailNotifierReportsQueueErrors(t *testing.T) {
	emails := &fakeEmails{err: email.ErrQueueFull}
	err := NewEmailNotifier(emails, "post@sinding.no").BookingCreated(context.Background(), storedBooking())
	assert.True(t, errors.Is(err, email.ErrQueueFull))
	assert.Contains(t, emails.notifications, "post@sinding.no")
}

func TestEventNotifierPublishesWithoutContactDetails(t *testing.T) {
	pub := &fakePublisher{}
	require.NoError(t, NewEventNotifier(pub).BookingCreated(context.Background(), storedBooking()))

	assert.Equal(t, EventBookingCreated, pub.routingKey)

	var ev map[string]interface{}
	require.NoError(t, json.Unmarshal(pub.payload, &ev))
	assert.Equal(t, float64(12), ev["booking_id"])
	assert.Equal(t, "2026-06-01", ev["booking_date"])
	assert.Equal(t, float64(4500), ev["total_price"])
	assert.NotContains(t, ev, "email")
	assert.NotContains(t, ev, "phone")
}
