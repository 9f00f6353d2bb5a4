package domain

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type SeatStatus string

const (
	SeatAvailable SeatStatus = "AVAILABLE"
	SeatBooked    SeatStatus = "BOOKED"
)

// Seat owns its booking state. booked moves from false to true at most
// once; nothing in this package can clear it.
type Seat struct {
	FlightID   uuid.UUID
	FlightName string
	Position   int

	mu            sync.Mutex
	booked        bool
	occupantName  string
	recordedPrice float64
	bookedAt      time.Time
}

type SeatView struct {
	Position      int        `json:"position"`
	Status        SeatStatus `json:"status"`
	OccupantName  string     `json:"occupant_name,omitempty"`
	RecordedPrice float64    `json:"recorded_price"`
	BookedAt      *time.Time `json:"booked_at,omitempty"`
}

func NewSeat(flightID uuid.UUID, flightName string, position int, price float64) *Seat {
	return &Seat{
		FlightID:      flightID,
		FlightName:    flightName,
		Position:      position,
		recordedPrice: price,
	}
}

// TryBook is the per-seat check-and-set. It returns true only for the
// caller that moved the seat to booked.
func (s *Seat) TryBook(occupant string, at time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.booked {
		return false
	}

	s.booked = true
	s.occupantName = occupant
	s.bookedAt = at

	return true
}

func (s *Seat) IsBooked() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.booked
}

func (s *Seat) RecordedPrice() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.recordedPrice
}

func (s *Seat) SetRecordedPrice(price float64) {
	s.mu.Lock()
	s.recordedPrice = price
	s.mu.Unlock()
}

func (s *Seat) View() SeatView {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := SeatView{
		Position:      s.Position,
		Status:        SeatAvailable,
		OccupantName:  s.occupantName,
		RecordedPrice: s.recordedPrice,
	}

	if s.booked {
		at := s.bookedAt
		v.Status = SeatBooked
		v.BookedAt = &at
	}

	return v
}
