package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"skyfare/internal/events"
	"skyfare/internal/flight"
	"skyfare/internal/payment"
	"skyfare/pkg/idgen"
	"skyfare/pkg/logger"
)

// ErrPaymentDeclined signals a charge that was refused. No booking exists
// when this is returned.
var ErrPaymentDeclined = errors.New("payment declined")

// FlightResolver resolves a flight id against the current search results.
type FlightResolver interface {
	GetFlightByID(ctx context.Context, id string) (*flight.Flight, error)
}

// Producer publishes booking events. A nil Producer disables publishing.
type Producer interface {
	Publish(ctx context.Context, topic, key string, payload any) error
}

type Service struct {
	repo     Repository
	flights  FlightResolver
	payments payment.Authorizer
	producer Producer
	topic    string
	ids      idgen.Generator
	logger   logger.Client
}

type ServiceOption func(*Service)

// WithProducer enables best-effort event publishing after a booking is
// created.
func WithProducer(producer Producer, topic string) ServiceOption {
	return func(s *Service) {
		s.producer = producer
		s.topic = topic
	}
}

func NewService(repo Repository, flights FlightResolver, payments payment.Authorizer,
	ids idgen.Generator, log logger.Client, opts ...ServiceOption) *Service {
	service := &Service{
		repo:     repo,
		flights:  flights,
		payments: payments,
		ids:      ids,
		logger:   log,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// Book authorizes the charge and then persists the booking. Order matters:
// no booking record may exist for an unauthorized charge, and a persistence
// failure is surfaced rather than silently degraded.
func (s *Service) Book(ctx context.Context, userID string, input CreateInput) (*Booking, error) {
	if userID == "" {
		return nil, errors.New("user id is required")
	}
	if input.FlightID == "" {
		return nil, errors.New("flight id is required")
	}
	if input.Passengers < 1 {
		return nil, errors.New("passengers must be at least 1")
	}
	if input.PaymentMethod == "" {
		return nil, errors.New("payment method is required")
	}

	f, err := s.flights.GetFlightByID(ctx, input.FlightID)
	if err != nil {
		return nil, err
	}

	amount := f.Price * float64(input.Passengers)
	resp, err := s.payments.Authorize(ctx, input.PaymentMethod, amount)
	if err != nil {
		return nil, fmt.Errorf("payment authorization failed: %w", err)
	}
	if !resp.Success {
		return nil, ErrPaymentDeclined
	}

	b := &Booking{
		ID:            "bkg_" + s.ids.GenerateString(),
		UserID:        userID,
		FlightID:      f.ID,
		Airline:       f.Airline.Name,
		Price:         f.Price,
		Date:          f.Departure.Scheduled.Format("2006-01-02"),
		Time:          f.Departure.Scheduled.Format("15:04"),
		Duration:      f.Duration,
		TransactionID: resp.TransactionID,
		Status:        StatusConfirmed,
		From:          f.Departure.Airport,
		To:            f.Arrival.Airport,
		Passengers:    input.Passengers,
		CreatedAt:     time.Now(),
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, fmt.Errorf("failed to persist booking: %w", err)
	}

	s.publish(ctx, "booking_confirmed", b)
	return b, nil
}

func (s *Service) List(ctx context.Context, userID string) ([]Booking, error) {
	if userID == "" {
		return nil, errors.New("user id is required")
	}
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) publish(ctx context.Context, eventType string, b *Booking) {
	if s.producer == nil || s.topic == "" {
		return
	}

	event := events.BookingEvent{
		Type:          eventType,
		BookingID:     b.ID,
		UserID:        b.UserID,
		FlightID:      b.FlightID,
		TransactionID: b.TransactionID,
		Price:         b.Price,
		Status:        string(b.Status),
		CreatedAt:     b.CreatedAt,
	}
	if err := s.producer.Publish(ctx, s.topic, b.ID, event); err != nil {
		s.logger.Warn("failed to publish booking event",
			logger.Field{Key: "err", Value: err},
			logger.Field{Key: "booking_id", Value: b.ID},
		)
	}
}
