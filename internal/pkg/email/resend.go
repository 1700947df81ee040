package email

import (
	"context"
	"fmt"
	"net/mail"

	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog/log"
)

// ResendSender sends emails via the Resend API
type ResendSender struct {
	client *resend.Client
	from   string
}

// NewResendSender creates a sender with the given API key and from address
func NewResendSender(apiKey, from string) *ResendSender {
	return &ResendSender{
		client: resend.NewClient(apiKey),
		from:   from,
	}
}

// Send sends a single email via Resend
func (s *ResendSender) Send(ctx context.Context, msg *EmailMessage) error {
	to := msg.To
	if msg.ToName != "" {
		to = (&mail.Address{Name: msg.ToName, Address: msg.To}).String()
	}

	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{to},
		Subject: msg.Subject,
		Html:    msg.HTMLContent,
		Text:    msg.TextContent,
	}
	if msg.ReplyTo != "" {
		params.ReplyTo = msg.ReplyTo
	}

	sent, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("resend send failed: %w", err)
	}

	log.Debug().Str("message_id", sent.Id).Str("to", msg.To).Msg("Email sent")
	return nil
}
