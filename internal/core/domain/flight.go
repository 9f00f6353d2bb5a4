package domain

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

type FlightSpec struct {
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Capacity    int       `json:"capacity"`
	SeatPrice   float64   `json:"seat_price"`
	Origin      string    `json:"origin"`
	Destination string    `json:"destination"`
	Arrival     time.Time `json:"arrival"`
	Departure   time.Time `json:"departure"`
}

func (s FlightSpec) Validate() error {
	switch {
	case strings.TrimSpace(s.Name) == "":
		return fmt.Errorf("%w: name is required", ErrInvalidFlight)
	case s.Capacity <= 0:
		return fmt.Errorf("%w: capacity must be positive", ErrInvalidFlight)
	case s.SeatPrice < 0:
		return fmt.Errorf("%w: seat price must not be negative", ErrInvalidFlight)
	case strings.TrimSpace(s.Origin) == "" || strings.TrimSpace(s.Destination) == "":
		return fmt.Errorf("%w: origin and destination are required", ErrInvalidFlight)
	}

	return nil
}

// Flight holds two locks. gate guards departed and is held shared by every
// seat commit, so departure waits for in-flight commits. mu guards the
// observable counters, which only the dispatcher goroutine writes.
type Flight struct {
	ID           uuid.UUID
	Name         string
	Type         string
	Origin       string
	Destination  string
	Arrival      time.Time
	Departure    time.Time
	InitialPrice float64
	Seats        []*Seat

	gate     sync.RWMutex
	departed bool

	mu           sync.RWMutex
	currentPrice float64
	bookedCount  int
	revision     uint64
}

func NewFlight(spec FlightSpec) (*Flight, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	f := &Flight{
		ID:           uuid.New(),
		Name:         strings.TrimSpace(spec.Name),
		Type:         spec.Type,
		Origin:       spec.Origin,
		Destination:  spec.Destination,
		Arrival:      spec.Arrival,
		Departure:    spec.Departure,
		InitialPrice: spec.SeatPrice,
		currentPrice: spec.SeatPrice,
	}

	f.Seats = make([]*Seat, spec.Capacity)
	for i := range f.Seats {
		f.Seats[i] = NewSeat(f.ID, f.Name, i, spec.SeatPrice)
	}

	return f, nil
}

func (f *Flight) Capacity() int {
	return len(f.Seats)
}

func (f *Flight) Seat(index int) (*Seat, error) {
	if index < 0 || index >= len(f.Seats) {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrSeatOutOfRange, index, len(f.Seats))
	}
	return f.Seats[index], nil
}

func (f *Flight) CurrentPrice() float64 {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.currentPrice
}

func (f *Flight) BookedCount() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.bookedCount
}

// CountBooked scans the seats rather than trusting bookedCount, which trails
// the seat commits until the dispatcher catches up.
func (f *Flight) CountBooked() int {
	n := 0
	for _, s := range f.Seats {
		if s.IsBooked() {
			n++
		}
	}
	return n
}

func (f *Flight) AllSeatsBooked() bool {
	return f.CountBooked() == len(f.Seats)
}

func (f *Flight) IsDeparted() bool {
	f.gate.RLock()
	defer f.gate.RUnlock()
	return f.departed
}

// WithOpenGate runs fn while holding the departure gate shared. It returns
// ErrFlightDeparted without calling fn once the flight has departed.
func (f *Flight) WithOpenGate(fn func() error) error {
	f.gate.RLock()
	defer f.gate.RUnlock()

	if f.departed {
		return ErrFlightDeparted
	}

	return fn()
}

// MarkDeparted closes the gate. It blocks until every commit that entered
// the gate has left it and reports false if the flight was already departed.
func (f *Flight) MarkDeparted() bool {
	f.gate.Lock()
	defer f.gate.Unlock()

	if f.departed {
		return false
	}

	f.departed = true
	return true
}

// RecordBooking increments bookedCount and returns the price the new
// occupant pays together with the updated count.
func (f *Flight) RecordBooking() (float64, int) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.bookedCount++
	if f.bookedCount > len(f.Seats) {
		panic(fmt.Sprintf("flight %s: booked count %d exceeds capacity %d", f.Name, f.bookedCount, len(f.Seats)))
	}

	return f.currentPrice, f.bookedCount
}

// Revision increases each time a booking's price update completes. A seat
// map built after reading revision r reflects at least r.
func (f *Flight) Revision() uint64 {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.revision
}

// Reprice replaces the current price with next(current), stamps the new
// price on every booked seat and bumps the revision.
func (f *Flight) Reprice(next func(float64) float64) float64 {
	f.mu.Lock()
	defer f.mu.Unlock()

	price := next(f.currentPrice)
	if price < f.currentPrice {
		panic(fmt.Sprintf("flight %s: price would drop from %f to %f", f.Name, f.currentPrice, price))
	}
	f.currentPrice = price

	for _, s := range f.Seats {
		if s.IsBooked() {
			s.SetRecordedPrice(price)
		}
	}
	f.revision++

	return price
}

// Descriptor is the one-line schedule form. Search filters match on its
// substrings, so the layout must not change.
func (f *Flight) Descriptor() string {
	return fmt.Sprintf("%s | ARRIVAL TIME: %s | DEPARTURE TIME: %s | FROM: %s | TO: %s | BOOKED SEATS: %d/%d",
		f.Name, FormatTimestamp(f.Arrival), FormatTimestamp(f.Departure),
		f.Origin, f.Destination, f.CountBooked(), len(f.Seats))
}

type FlightView struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Type         string    `json:"type,omitempty"`
	Origin       string    `json:"origin"`
	Destination  string    `json:"destination"`
	Arrival      time.Time `json:"arrival"`
	Departure    time.Time `json:"departure"`
	Capacity     int       `json:"capacity"`
	BookedCount  int       `json:"booked_count"`
	CurrentPrice float64   `json:"current_price"`
	Departed     bool      `json:"departed"`
	Descriptor   string    `json:"descriptor"`
}

func (f *Flight) View() FlightView {
	return FlightView{
		ID:           f.ID,
		Name:         f.Name,
		Type:         f.Type,
		Origin:       f.Origin,
		Destination:  f.Destination,
		Arrival:      f.Arrival,
		Departure:    f.Departure,
		Capacity:     len(f.Seats),
		BookedCount:  f.BookedCount(),
		CurrentPrice: f.CurrentPrice(),
		Departed:     f.IsDeparted(),
		Descriptor:   f.Descriptor(),
	}
}

// SeatMap is a seat snapshot labelled with the flight revision read before
// it was taken.
type SeatMap struct {
	Revision uint64     `json:"revision"`
	Seats    []SeatView `json:"seats"`
}

func (f *Flight) SeatMap() SeatMap {
	rev := f.Revision()
	return SeatMap{Revision: rev, Seats: f.SeatViews()}
}

func (f *Flight) SeatViews() []SeatView {
	views := make([]SeatView, len(f.Seats))
	for i, s := range f.Seats {
		views[i] = s.View()
	}
	return views
}
