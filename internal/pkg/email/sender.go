package email

import (
	"context"

	"github.com/rs/zerolog/log"
)

// EmailMessage represents an email to send
type EmailMessage struct {
	To          string
	ToName      string
	ReplyTo     string
	Subject     string
	HTMLContent string
	TextContent string
}

// Sender delivers a rendered message
type Sender interface {
	Send(ctx context.Context, msg *EmailMessage) error
}

// LogSender writes messages to the log instead of delivering them.
// Used when no email provider is configured.
type LogSender struct{}

func (LogSender) Send(_ context.Context, msg *EmailMessage) error {
	log.Info().
		Str("to", msg.To).
		Str("reply_to", msg.ReplyTo).
		Str("subject", msg.Subject).
		Str("body", msg.TextContent).
		Msg("Email (not sent, no provider configured)")
	return nil
}
