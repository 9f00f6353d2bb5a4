package domain

import (
	"time"

	"github.com/google/uuid"
)

type Outcome string

const (
	OutcomeBooked        Outcome = "BOOKED"
	OutcomeAlreadyBooked Outcome = "ALREADY_BOOKED"
)

// BookingResult reports one attempt. FlightFull replaces the old
// all-seats-booked signal: it is true once every seat on the flight is taken.
type BookingResult struct {
	Outcome      Outcome    `json:"outcome"`
	FlightID     uuid.UUID  `json:"flight_id"`
	FlightName   string     `json:"flight_name"`
	Seat         int        `json:"seat"`
	TravellerID  uuid.UUID  `json:"traveller_id"`
	PricePaid    float64    `json:"price_paid,omitempty"`
	CurrentPrice float64    `json:"current_price"`
	BookedCount  int        `json:"booked_count"`
	Capacity     int        `json:"capacity"`
	FlightFull   bool       `json:"flight_full"`
	BookedAt     *time.Time `json:"booked_at,omitempty"`
}

func (r *BookingResult) Booked() bool {
	return r.Outcome == OutcomeBooked
}
