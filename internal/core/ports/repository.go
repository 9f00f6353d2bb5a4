package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/srgjo27/airline_inventory/internal/core/domain"
)

// DepartureArchive mirrors departed flights outside the process. The
// in-memory departure log stays authoritative.
type DepartureArchive interface {
	SaveDeparture(ctx context.Context, record domain.DepartureRecord) error
}

// EventPublisher receives observable flight changes. Publish is only ever
// called from the dispatcher goroutine.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.FlightEvent) error
}

// SeatCache stores seat maps by flight. Callers compare the stored
// revision with the live flight before trusting an entry.
type SeatCache interface {
	GetSeats(ctx context.Context, flightID uuid.UUID) (domain.SeatMap, bool, error)
	SetSeats(ctx context.Context, flightID uuid.UUID, seats domain.SeatMap) error
}
