package domain

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventSeatBooked     EventType = "seat_booked"
	EventPriceChanged   EventType = "price_changed"
	EventFlightFull     EventType = "flight_full"
	EventFlightDeparted EventType = "flight_departed"
)

// FlightEvent describes a change to state that presentation clients observe.
type FlightEvent struct {
	ID          uuid.UUID `json:"id"`
	Type        EventType `json:"type"`
	FlightID    uuid.UUID `json:"flight_id"`
	FlightName  string    `json:"flight_name"`
	Seat        *int      `json:"seat,omitempty"`
	Price       float64   `json:"price"`
	BookedCount int       `json:"booked_count"`
	Capacity    int       `json:"capacity"`
	OccurredAt  time.Time `json:"occurred_at"`
}

func NewFlightEvent(t EventType, f *Flight, at time.Time) FlightEvent {
	return FlightEvent{
		ID:          uuid.New(),
		Type:        t,
		FlightID:    f.ID,
		FlightName:  f.Name,
		Price:       f.CurrentPrice(),
		BookedCount: f.BookedCount(),
		Capacity:    f.Capacity(),
		OccurredAt:  at,
	}
}
