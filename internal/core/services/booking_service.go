package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/srgjo27/airline_inventory/internal/core/domain"
)

type BookSeatRequest struct {
	FlightName  string    `json:"flight_name"`
	SeatIndex   int       `json:"seat_index"`
	TravellerID uuid.UUID `json:"traveller_id"`
}

type BookingService struct {
	catalog    *CatalogService
	travellers *TravellerService
	pricing    PricingPolicy
	pool       *WorkerPool
	dispatcher *Dispatcher
	timeout    time.Duration
	now        func() time.Time
	logger     *slog.Logger
}

type BookingOption func(*BookingService)

// WithTimeout bounds how long AttemptBook waits for its booking unit.
// Zero means wait indefinitely.
func WithTimeout(d time.Duration) BookingOption {
	return func(s *BookingService) { s.timeout = d }
}

func WithClock(now func() time.Time) BookingOption {
	return func(s *BookingService) { s.now = now }
}

func NewBookingService(
	catalog *CatalogService,
	travellers *TravellerService,
	pricing PricingPolicy,
	pool *WorkerPool,
	dispatcher *Dispatcher,
	logger *slog.Logger,
	opts ...BookingOption,
) *BookingService {
	s := &BookingService{
		catalog:    catalog,
		travellers: travellers,
		pricing:    pricing,
		pool:       pool,
		dispatcher: dispatcher,
		now:        time.Now,
		logger:     logger,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// AttemptBook runs one booking attempt as its own unit on the worker pool
// and waits for that unit. Losing the race for a seat is reported as
// OutcomeAlreadyBooked, not as an error.
func (s *BookingService) AttemptBook(ctx context.Context, req BookSeatRequest) (*domain.BookingResult, error) {
	flight, err := s.catalog.Find(req.FlightName)
	if err != nil {
		return nil, err
	}

	seat, err := flight.Seat(req.SeatIndex)
	if err != nil {
		return nil, err
	}

	traveller, err := s.travellers.Get(req.TravellerID)
	if err != nil {
		return nil, err
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	future, err := Submit(ctx, s.pool, func() (*domain.BookingResult, error) {
		return s.book(flight, seat, traveller)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to queue booking for seat %d on %s: %w", seat.Position, flight.Name, err)
	}

	result, err := future.Await(ctx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			s.logger.Warn("booking wait timed out", "flight", flight.Name, "seat", seat.Position, "traveller_id", traveller.ID)
		}
		return nil, err
	}

	return result, nil
}

// book is the body of one booking unit. The seat commit runs inside the
// flight's departure gate; the counters, price and ledger are updated by
// the dispatcher and book waits for that before reporting.
func (s *BookingService) book(flight *domain.Flight, seat *domain.Seat, traveller *domain.Traveller) (*domain.BookingResult, error) {
	result := &domain.BookingResult{
		Outcome:     domain.OutcomeAlreadyBooked,
		FlightID:    flight.ID,
		FlightName:  flight.Name,
		Seat:        seat.Position,
		TravellerID: traveller.ID,
		Capacity:    flight.Capacity(),
	}

	var applied <-chan struct{}

	err := flight.WithOpenGate(func() error {
		if !seat.TryBook(traveller.Name, s.now()) {
			return nil
		}

		result.Outcome = domain.OutcomeBooked

		var err error
		applied, err = s.dispatcher.Submit(context.Background(), func() []domain.FlightEvent {
			return s.commit(flight, seat, traveller, result)
		})
		return err
	})
	if err != nil {
		if result.Booked() {
			s.logger.Error("seat committed but side effects were not queued",
				"flight", flight.Name, "seat", seat.Position, "error", err)
		}
		return nil, err
	}

	if applied != nil {
		<-applied
	} else {
		result.CurrentPrice = flight.CurrentPrice()
		result.BookedCount = flight.BookedCount()
	}

	result.FlightFull = flight.AllSeatsBooked()

	s.logger.Debug("booking attempt finished",
		"flight", flight.Name,
		"seat", seat.Position,
		"traveller_id", traveller.ID,
		"outcome", result.Outcome,
	)

	return result, nil
}

// commit runs on the dispatcher goroutine once per successful booking.
func (s *BookingService) commit(flight *domain.Flight, seat *domain.Seat, traveller *domain.Traveller, result *domain.BookingResult) []domain.FlightEvent {
	paid, booked := flight.RecordBooking()
	seat.SetRecordedPrice(paid)

	view := seat.View()
	traveller.RecordSeat(flight.Name, view, paid)

	price := s.pricing.OnBookingCommitted(flight)

	result.PricePaid = paid
	result.CurrentPrice = price
	result.BookedCount = booked
	result.BookedAt = view.BookedAt

	at := *view.BookedAt
	position := seat.Position

	booking := domain.NewFlightEvent(domain.EventSeatBooked, flight, at)
	booking.Seat = &position
	booking.Price = paid

	events := []domain.FlightEvent{
		booking,
		domain.NewFlightEvent(domain.EventPriceChanged, flight, at),
	}

	if booked == flight.Capacity() {
		events = append(events, domain.NewFlightEvent(domain.EventFlightFull, flight, at))
	}

	return events
}
