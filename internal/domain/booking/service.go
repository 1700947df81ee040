package booking

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/sinding/booking-api/internal/domain/catalogue"
	"github.com/sinding/booking-api/internal/domain/pricing"
)

// Notifier is told about every accepted booking
type Notifier interface {
	Name() string
	BookingCreated(ctx context.Context, b *Booking) error
}

// ServiceConfig holds submission settings
type ServiceConfig struct {
	Location      *time.Location
	NotifyTimeout time.Duration
}

// Service handles booking submissions
type Service struct {
	repo          Repository
	catalogue     *catalogue.Catalogue
	notifiers     []Notifier
	location      *time.Location
	notifyTimeout time.Duration
	now           func() time.Time
	pending       sync.WaitGroup
}

// NewService creates booking service
func NewService(repo Repository, cat *catalogue.Catalogue, cfg ServiceConfig, notifiers ...Notifier) *Service {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.NotifyTimeout <= 0 {
		cfg.NotifyTimeout = 30 * time.Second
	}
	return &Service{
		repo:          repo,
		catalogue:     cat,
		notifiers:     notifiers,
		location:      cfg.Location,
		notifyTimeout: cfg.NotifyTimeout,
		now:           time.Now,
	}
}

// Submit validates, prices and stores a booking request. Returned errors are
// *ValidationError, ErrNoSession or ErrPersistence (wrapped).
func (s *Service) Submit(ctx context.Context, req SubmitRequest) (*Booking, error) {
	now := s.now()
	req = sanitize(req)

	fields, fieldErrs := Validate(req, now, s.location)
	if len(fieldErrs) > 0 {
		return nil, &ValidationError{Fields: fieldErrs}
	}

	if len(req.SessionIDs) == 0 {
		return nil, ErrNoSession
	}

	quote := pricing.ComputeSelection(s.catalogue, req.SessionIDs, req.AddonIDs)

	b := &Booking{
		Name:          fields.Name,
		Email:         fields.Email,
		Phone:         fields.Phone,
		BookingDate:   fields.Date,
		SessionLabels: quote.SessionLabels(),
		AddonLabels:   quote.AddonLabels(),
		TotalPrice:    float64(quote.Total),
		Status:        StatusPending,
		CreatedAt:     now.UTC(),
	}

	id, err := s.repo.Insert(ctx, b)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	b.ID = id

	log.Info().
		Int64("booking_id", b.ID).
		Str("booking_date", b.BookingDate.String()).
		Float64("total_price", b.TotalPrice).
		Msg("Booking received")

	s.dispatch(b)

	return b, nil
}

// List returns all bookings, newest first
func (s *Service) List(ctx context.Context) ([]*Booking, error) {
	return s.repo.ListAll(ctx)
}

// GetByID returns a single booking
func (s *Service) GetByID(ctx context.Context, id int64) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrBookingNotFound
	}
	return b, nil
}

// dispatch runs the notifiers in the background. The request does not wait for
// them and their failures are only logged.
func (s *Service) dispatch(b *Booking) {
	if len(s.notifiers) == 0 {
		return
	}

	snapshot := *b
	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Int64("booking_id", snapshot.ID).Msg("Notifier panicked")
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), s.notifyTimeout)
		defer cancel()

		for _, n := range s.notifiers {
			if err := n.BookingCreated(ctx, &snapshot); err != nil {
				log.Error().Err(err).
					Str("notifier", n.Name()).
					Int64("booking_id", snapshot.ID).
					Msg("Booking notification failed")
			}
		}
	}()
}

// Wait blocks until in-flight notifications finish or ctx is done.
func (s *Service) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.pending.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
