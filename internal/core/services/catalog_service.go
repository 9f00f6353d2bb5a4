package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/srgjo27/airline_inventory/internal/core/domain"
	"github.com/srgjo27/airline_inventory/internal/core/ports"
)

// CatalogService holds the open flights and is the only way a flight
// leaves the bookable set.
type CatalogService struct {
	mu      sync.RWMutex
	flights []*domain.Flight

	departures *domain.DepartureLog
	dispatcher *Dispatcher
	archive    ports.DepartureArchive
	now        func() time.Time
	logger     *slog.Logger
}

// NewCatalogService wires the catalog. archive may be nil.
func NewCatalogService(departures *domain.DepartureLog, dispatcher *Dispatcher, archive ports.DepartureArchive, logger *slog.Logger) *CatalogService {
	return &CatalogService{
		departures: departures,
		dispatcher: dispatcher,
		archive:    archive,
		now:        time.Now,
		logger:     logger,
	}
}

func (c *CatalogService) Add(spec domain.FlightSpec) (*domain.Flight, error) {
	flight, err := domain.NewFlight(spec)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.indexLocked(flight.Name) != -1 {
		return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateFlight, flight.Name)
	}

	c.flights = append(c.flights, flight)
	c.logger.Info("flight scheduled", "flight", flight.Name, "capacity", flight.Capacity(), "price", flight.InitialPrice)

	return flight, nil
}

func (c *CatalogService) indexLocked(name string) int {
	name = strings.TrimSpace(name)
	for i, f := range c.flights {
		if strings.EqualFold(f.Name, name) {
			return i
		}
	}
	return -1
}

// Find matches name case-insensitively against open flights.
func (c *CatalogService) Find(name string) (*domain.Flight, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i := c.indexLocked(name)
	if i == -1 {
		return nil, fmt.Errorf("%w: %s", domain.ErrFlightNotFound, name)
	}

	return c.flights[i], nil
}

// List returns the open flights in the order they were scheduled.
func (c *CatalogService) List() []*domain.Flight {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]*domain.Flight(nil), c.flights...)
}

func (c *CatalogService) Delete(name string) error {
	_, err := c.remove(name)
	if err != nil {
		return err
	}

	c.logger.Info("flight removed from schedule", "flight", name)
	return nil
}

func (c *CatalogService) remove(name string) (*domain.Flight, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexLocked(name)
	if i == -1 {
		return nil, fmt.Errorf("%w: %s", domain.ErrFlightNotFound, name)
	}

	f := c.flights[i]
	c.flights = append(c.flights[:i], c.flights[i+1:]...)

	return f, nil
}

// OpenForBooking is the entry check for a booking flow.
func (c *CatalogService) OpenForBooking(name string) (*domain.Flight, error) {
	f, err := c.Find(name)
	if err != nil {
		return nil, err
	}

	if f.AllSeatsBooked() {
		return nil, fmt.Errorf("%w: %s", domain.ErrFlightFull, f.Name)
	}

	return f, nil
}

// DepartFlight takes the flight out of the schedule, closes it to further
// bookings and appends it to the departure log. The log push is queued
// behind every pricing task already committed for the flight, so the logged
// flight carries its final price.
func (c *CatalogService) DepartFlight(ctx context.Context, name string) (*domain.Flight, error) {
	f, err := c.remove(name)
	if err != nil {
		return nil, err
	}

	if !f.MarkDeparted() {
		panic(fmt.Sprintf("flight %s departed twice", f.Name))
	}

	err = c.dispatcher.Do(context.Background(), func() []domain.FlightEvent {
		c.departures.Push(f)
		return []domain.FlightEvent{domain.NewFlightEvent(domain.EventFlightDeparted, f, c.now())}
	})
	if err != nil {
		// Only happens during shutdown; the flight is already closed.
		c.departures.Push(f)
	}

	c.logger.Info("flight departed",
		"flight", f.Name,
		"destination", f.Destination,
		"booked", f.BookedCount(),
		"capacity", f.Capacity(),
		"final_price", f.CurrentPrice(),
	)

	if c.archive != nil {
		if err := c.archive.SaveDeparture(ctx, f.Record(c.now())); err != nil {
			c.logger.Warn("failed to archive departure", "flight", f.Name, "error", err)
		}
	}

	return f, nil
}

func (c *CatalogService) Departures() []*domain.Flight {
	return c.departures.Entries()
}

func (c *CatalogService) FullyBookedDepartures() []*domain.Flight {
	return c.departures.FullyBooked()
}

// ScheduleQuery filters open flights. After and Before are HH:MM bounds on
// the arrival time; if either fails to parse the time filter is skipped.
type ScheduleQuery struct {
	Origin      string
	Destination string
	After       string
	Before      string
}

func (c *CatalogService) Search(q ScheduleQuery) []*domain.Flight {
	after, errAfter := time.Parse("15:04", q.After)
	before, errBefore := time.Parse("15:04", q.Before)
	useTime := errAfter == nil && errBefore == nil

	var matches []*domain.Flight
	for _, f := range c.List() {
		desc := f.Descriptor()

		if !strings.Contains(desc, "FROM: "+q.Origin) || !strings.Contains(desc, "TO: "+q.Destination) {
			continue
		}

		if useTime {
			arrival := minuteOfDay(f.Arrival.Hour(), f.Arrival.Minute())
			if arrival <= minuteOfDay(after.Hour(), after.Minute()) || arrival >= minuteOfDay(before.Hour(), before.Minute()) {
				continue
			}
		}

		matches = append(matches, f)
	}

	return matches
}

func minuteOfDay(h, m int) int {
	return h*60 + m
}
