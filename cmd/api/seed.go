package main

import (
	"time"

	"github.com/srgjo27/airline_inventory/internal/core/domain"
	"github.com/srgjo27/airline_inventory/internal/core/services"
)

// seed schedules demo flights departing over the next few days.
func seed(catalog *services.CatalogService, now time.Time) error {
	day := now.Truncate(time.Hour)

	flights := []domain.FlightSpec{
		{Name: "A350", Type: "Airbus A350", Capacity: 8, SeatPrice: 1000, Origin: "Bangalore", Destination: "Goa"},
		{Name: "B777", Type: "Boeing 777", Capacity: 12, SeatPrice: 2500, Origin: "Bangalore", Destination: "Mumbai"},
		{Name: "A320", Type: "Airbus A320", Capacity: 4, SeatPrice: 800, Origin: "Chennai", Destination: "Goa"},
	}

	for i, spec := range flights {
		spec.Departure = day.Add(time.Duration(24*(i+1)) * time.Hour)
		spec.Arrival = spec.Departure.Add(-90 * time.Minute)

		if _, err := catalog.Add(spec); err != nil {
			return err
		}
	}

	return nil
}
