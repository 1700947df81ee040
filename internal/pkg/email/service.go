package email

import (
	"bytes"
	"context"
	"errors"
	htmltemplate "html/template"
	"sync"
	texttemplate "text/template"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	TemplateBookingConfirmation = "booking_confirmation"
	TemplateBookingNotification = "booking_notification"
)

var (
	ErrQueueFull        = errors.New("email queue full")
	ErrTemplateNotFound = errors.New("email template not found")
)

// Config holds email service settings
type Config struct {
	SiteName    string
	QueueSize   int
	SendTimeout time.Duration
}

type messageTemplate struct {
	html *htmltemplate.Template
	text *texttemplate.Template
}

// Service handles email sending with templates
type Service struct {
	sender       Sender
	siteName     string
	sendTimeout  time.Duration
	templates    map[string]messageTemplate
	baseTemplate *htmltemplate.Template
	queue        chan *QueuedEmail
	wg           sync.WaitGroup
	closeOnce    sync.Once
}

// QueuedEmail represents an email in the send queue
type QueuedEmail struct {
	To           string
	ToName       string
	ReplyTo      string
	Subject      string
	TemplateName string
	Data         interface{}
}

// NewService creates email service
func NewService(sender Sender, cfg Config) *Service {
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 100
	}
	if cfg.SendTimeout <= 0 {
		cfg.SendTimeout = 30 * time.Second
	}

	s := &Service{
		sender:      sender,
		siteName:    cfg.SiteName,
		sendTimeout: cfg.SendTimeout,
		templates:   make(map[string]messageTemplate),
		queue:       make(chan *QueuedEmail, cfg.QueueSize),
	}

	s.baseTemplate = htmltemplate.Must(htmltemplate.New("base").Parse(BaseTemplate))
	s.loadTemplates()

	// Start async worker
	s.wg.Add(1)
	go s.worker()

	return s
}

// loadTemplates loads all email templates
func (s *Service) loadTemplates() {
	templates := map[string][2]string{
		TemplateBookingConfirmation: {BookingConfirmationTemplate, BookingConfirmationText},
		TemplateBookingNotification: {BookingNotificationTemplate, BookingNotificationText},
	}

	for name, content := range templates {
		html, err := htmltemplate.New(name).Parse(content[0])
		if err != nil {
			log.Error().Err(err).Str("template", name).Msg("Failed to parse email template")
			continue
		}
		text, err := texttemplate.New(name).Parse(content[1])
		if err != nil {
			log.Error().Err(err).Str("template", name).Msg("Failed to parse email text template")
			continue
		}
		s.templates[name] = messageTemplate{html: html, text: text}
	}
}

// worker processes queued emails asynchronously
func (s *Service) worker() {
	defer s.wg.Done()

	for email := range s.queue {
		ctx, cancel := context.WithTimeout(context.Background(), s.sendTimeout)
		if err := s.send(ctx, email); err != nil {
			log.Error().Err(err).
				Str("to", email.To).
				Str("template", email.TemplateName).
				Msg("Failed to send email")
		}
		cancel()
	}
}

// Render renders the HTML and text bodies of a template
func (s *Service) Render(templateName string, data interface{}) (html, text string, err error) {
	tmpl, ok := s.templates[templateName]
	if !ok {
		return "", "", ErrTemplateNotFound
	}

	var contentBuf bytes.Buffer
	if err := tmpl.html.Execute(&contentBuf, data); err != nil {
		return "", "", err
	}

	// Wrap in base template
	var htmlBuf bytes.Buffer
	if err := s.baseTemplate.Execute(&htmlBuf, map[string]interface{}{
		"Content":  htmltemplate.HTML(contentBuf.String()),
		"SiteName": s.siteName,
	}); err != nil {
		return "", "", err
	}

	var textBuf bytes.Buffer
	if err := tmpl.text.Execute(&textBuf, data); err != nil {
		return "", "", err
	}

	return htmlBuf.String(), textBuf.String(), nil
}

// send actually sends the email
func (s *Service) send(ctx context.Context, email *QueuedEmail) error {
	html, text, err := s.Render(email.TemplateName, email.Data)
	if err != nil {
		return err
	}

	return s.sender.Send(ctx, &EmailMessage{
		To:          email.To,
		ToName:      email.ToName,
		ReplyTo:     email.ReplyTo,
		Subject:     email.Subject,
		HTMLContent: html,
		TextContent: text,
	})
}

// Queue adds an email to the async send queue
func (s *Service) Queue(email *QueuedEmail) error {
	select {
	case s.queue <- email:
		return nil
	default:
		log.Warn().Str("to", email.To).Str("template", email.TemplateName).Msg("Email queue full, dropping email")
		return ErrQueueFull
	}
}

// SendSync sends an email synchronously (blocking)
func (s *Service) SendSync(ctx context.Context, email *QueuedEmail) error {
	return s.send(ctx, email)
}

// Close stops the email worker after the queue drains
func (s *Service) Close() {
	s.closeOnce.Do(func() {
		close(s.queue)
	})
	s.wg.Wait()
}

// --- Convenience methods for specific emails ---

// BookingEmailData is the template data of both booking emails
type BookingEmailData struct {
	BookingID int64
	SiteName  string
	Name      string
	Email     string
	Phone     string
	Date      string
	Sessions  string
	Addons    string
	Total     string
}

// SendBookingConfirmation queues the customer's confirmation
func (s *Service) SendBookingConfirmation(data BookingEmailData) error {
	data.SiteName = s.siteName
	return s.Queue(&QueuedEmail{
		To:           data.Email,
		ToName:       data.Name,
		Subject:      "Booking Confirmation – " + s.siteName,
		TemplateName: TemplateBookingConfirmation,
		Data:         data,
	})
}

// SendBookingNotification queues the studio's new booking notice.
// Replies go to the customer.
func (s *Service) SendBookingNotification(to string, data BookingEmailData) error {
	data.SiteName = s.siteName
	return s.Queue(&QueuedEmail{
		To:           to,
		ReplyTo:      data.Email,
		Subject:      "New Booking Request – " + s.siteName,
		TemplateName: TemplateBookingNotification,
		Data:         data,
	})
}
