package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/srgjo27/airline_inventory/internal/core/domain"
	"github.com/srgjo27/airline_inventory/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func departAll(t *testing.T, env *testEnv, names ...string) {
	t.Helper()
	for _, n := range names {
		_, err := env.catalog.DepartFlight(context.Background(), n)
		require.NoError(t, err)
	}
}

func TestAnalytics_EmptyLog(t *testing.T) {
	env := newTestEnv(t, nil, nil)

	snap := env.analytics.Snapshot()

	assert.Equal(t, domain.AnalyticsSnapshot{}, snap)
	assert.Equal(t, "", snap.DepartureMonthName())
	assert.Equal(t, " |  | ", snap.BookingPeriod())
}

func TestAnalytics_FrequentDestination(t *testing.T) {
	env := newTestEnv(t, nil, nil)
	env.addFlight(t, "F1", "Goa", 1, 100, departureTime)
	env.addFlight(t, "F2", "Mumbai", 1, 100, departureTime)
	env.addFlight(t, "F3", "Goa", 1, 100, departureTime)
	departAll(t, env, "F1", "F2", "F3")

	assert.Equal(t, "Goa", env.analytics.Snapshot().FrequentDestination)
}

func TestAnalytics_TieGoesToFirstOccurrence(t *testing.T) {
	env := newTestEnv(t, nil, nil)
	env.addFlight(t, "F1", "Goa", 1, 100, departureTime)
	env.addFlight(t, "F2", "Mumbai", 1, 100, departureTime)
	env.addFlight(t, "F3", "Mumbai", 1, 100, departureTime)
	env.addFlight(t, "F4", "Goa", 1, 100, departureTime)
	departAll(t, env, "F1", "F2", "F3", "F4")

	assert.Equal(t, "Goa", env.analytics.Snapshot().FrequentDestination)
}

func TestAnalytics_DepartureMonth(t *testing.T) {
	env := newTestEnv(t, nil, nil)
	env.addFlight(t, "JAN", "Goa", 1, 100, time.Date(2024, time.January, 3, 10, 0, 0, 0, time.UTC))
	env.addFlight(t, "DEC1", "Goa", 1, 100, time.Date(2023, time.December, 3, 10, 0, 0, 0, time.UTC))
	env.addFlight(t, "DEC2", "Goa", 1, 100, time.Date(2024, time.December, 9, 10, 0, 0, 0, time.UTC))
	departAll(t, env, "JAN", "DEC1", "DEC2")

	snap := env.analytics.Snapshot()
	assert.Equal(t, 12, snap.FrequentDepartureMonth)
	assert.Equal(t, "December", snap.DepartureMonthName())
}

func TestAnalytics_BookingPeriod(t *testing.T) {
	clock := []time.Time{
		time.Date(2023, time.May, 7, 10, 0, 0, 0, time.UTC),  // Sunday
		time.Date(2024, time.March, 4, 10, 0, 0, 0, time.UTC), // Monday
		time.Date(2024, time.March, 11, 9, 0, 0, 0, time.UTC), // Monday
	}
	tick := 0
	now := func() time.Time {
		ts := clock[tick%len(clock)]
		tick++
		return ts
	}

	env := newTestEnv(t, nil, nil, services.WithClock(now))
	env.addFlight(t, "F1", "Goa", 3, 100, departureTime)
	traveller := env.traveller(t, "Asha")

	for seat := 0; seat < 3; seat++ {
		_, err := env.booking.AttemptBook(context.Background(), services.BookSeatRequest{FlightName: "F1", SeatIndex: seat, TravellerID: traveller.ID})
		require.NoError(t, err)
	}
	departAll(t, env, "F1")

	snap := env.analytics.Snapshot()
	assert.Equal(t, 2, snap.FrequentBookingDay)
	assert.Equal(t, 3, snap.FrequentBookingMonth)
	assert.Equal(t, 2024, snap.FrequentBookingYear)
	assert.Equal(t, "Monday | March | 2024", snap.BookingPeriod())
}

func TestComputeAnalytics_NoBookedSeats(t *testing.T) {
	f, err := domain.NewFlight(domain.FlightSpec{
		Name: "EMPTY", Capacity: 2, SeatPrice: 10, Origin: "Pune", Destination: "Goa", Departure: departureTime,
	})
	require.NoError(t, err)

	snap := services.ComputeAnalytics([]*domain.Flight{f})

	assert.Equal(t, "Goa", snap.FrequentDestination)
	assert.Equal(t, 3, snap.FrequentDepartureMonth)
	assert.Zero(t, snap.FrequentBookingDay)
	assert.Zero(t, snap.FrequentBookingMonth)
	assert.Zero(t, snap.FrequentBookingYear)
}
