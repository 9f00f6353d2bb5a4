package services

import (
	"context"
	"log/slog"

	"github.com/srgjo27/airline_inventory/internal/core/domain"
	"github.com/srgjo27/airline_inventory/internal/core/ports"
)

// SeatMapService serves the per-seat view of open flights, read through an
// optional cache. An entry is used only while its revision matches the
// flight's, so a fill that lands after an invalidation is never served.
type SeatMapService struct {
	catalog *CatalogService
	cache   ports.SeatCache
	logger  *slog.Logger
}

// NewSeatMapService wires the seat map. cache may be nil.
func NewSeatMapService(catalog *CatalogService, cache ports.SeatCache, logger *slog.Logger) *SeatMapService {
	return &SeatMapService{catalog: catalog, cache: cache, logger: logger}
}

func (s *SeatMapService) Seats(ctx context.Context, flightName string) ([]domain.SeatView, error) {
	flight, err := s.catalog.Find(flightName)
	if err != nil {
		return nil, err
	}

	if s.cache == nil {
		return flight.SeatViews(), nil
	}

	cached, ok, err := s.cache.GetSeats(ctx, flight.ID)
	if err != nil {
		s.logger.Warn("seat cache read failed", "flight", flight.Name, "error", err)
	} else if ok && cached.Revision == flight.Revision() {
		return cached.Seats, nil
	}

	fresh := flight.SeatMap()
	if err := s.cache.SetSeats(ctx, flight.ID, fresh); err != nil {
		s.logger.Warn("seat cache write failed", "flight", flight.Name, "error", err)
	}

	return fresh.Seats, nil
}
