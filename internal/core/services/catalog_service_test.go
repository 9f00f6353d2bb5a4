package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/srgjo27/airline_inventory/internal/core/domain"
	"github.com/srgjo27/airline_inventory/internal/core/ports/mocks"
	"github.com/srgjo27/airline_inventory/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCatalog_AddRejectsDuplicateNames(t *testing.T) {
	env := newTestEnv(t, nil, nil)
	env.addFlight(t, "A350", "Goa", 3, 1000, departureTime)

	_, err := env.catalog.Add(domain.FlightSpec{
		Name: "a350", Capacity: 2, SeatPrice: 10, Origin: "Pune", Destination: "Goa",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateFlight)

	_, err = env.catalog.Add(domain.FlightSpec{Name: "X1", Capacity: 0, Origin: "Pune", Destination: "Goa"})
	assert.ErrorIs(t, err, domain.ErrInvalidFlight)
}

func TestCatalog_FindIsCaseInsensitive(t *testing.T) {
	env := newTestEnv(t, nil, nil)
	added := env.addFlight(t, "IndiGo 6E", "Goa", 3, 1000, departureTime)

	found, err := env.catalog.Find("indigo 6e")
	require.NoError(t, err)
	assert.Same(t, added, found)

	_, err = env.catalog.Find("indigo")
	assert.ErrorIs(t, err, domain.ErrFlightNotFound)
}

func TestCatalog_Delete(t *testing.T) {
	env := newTestEnv(t, nil, nil)
	env.addFlight(t, "A350", "Goa", 3, 1000, departureTime)
	env.addFlight(t, "B777", "Mumbai", 3, 1000, departureTime)

	require.NoError(t, env.catalog.Delete("A350"))
	assert.ErrorIs(t, env.catalog.Delete("A350"), domain.ErrFlightNotFound)

	flights := env.catalog.List()
	require.Len(t, flights, 1)
	assert.Equal(t, "B777", flights[0].Name)
	assert.Equal(t, 0, env.departures.Len())
}

func TestCatalog_DepartFlight(t *testing.T) {
	archive := mocks.NewDepartureArchive(t)
	env := newTestEnv(t, archive, nil)
	flight := env.addFlight(t, "A350", "Goa", 2, 1000, departureTime)
	traveller := env.traveller(t, "Asha")

	_, err := env.booking.AttemptBook(context.Background(), services.BookSeatRequest{FlightName: "A350", SeatIndex: 1, TravellerID: traveller.ID})
	require.NoError(t, err)

	archive.On("SaveDeparture", mock.Anything, mock.MatchedBy(func(r domain.DepartureRecord) bool {
		return r.FlightID == flight.ID &&
			r.BookedCount == 1 &&
			r.Capacity == 2 &&
			len(r.Seats) == 2 &&
			assert.ObjectsAreEqual([]string{"Asha"}, r.Occupants())
	})).Return(nil).Once()

	departed, err := env.catalog.DepartFlight(context.Background(), "a350")
	require.NoError(t, err)
	assert.Same(t, flight, departed)
	assert.True(t, departed.IsDeparted())

	_, err = env.catalog.Find("A350")
	assert.ErrorIs(t, err, domain.ErrFlightNotFound)

	_, err = env.catalog.DepartFlight(context.Background(), "A350")
	assert.ErrorIs(t, err, domain.ErrFlightNotFound)

	entries := env.catalog.Departures()
	require.Len(t, entries, 1)
	assert.Same(t, flight, entries[0])
	assert.InDelta(t, 1100.0, entries[0].CurrentPrice(), 1e-9)
}

func TestCatalog_DepartFlightIgnoresArchiveFailure(t *testing.T) {
	archive := mocks.NewDepartureArchive(t)
	env := newTestEnv(t, archive, nil)
	env.addFlight(t, "A350", "Goa", 2, 1000, departureTime)

	archive.On("SaveDeparture", mock.Anything, mock.Anything).Return(errors.New("connection refused"))

	_, err := env.catalog.DepartFlight(context.Background(), "A350")
	require.NoError(t, err)
	assert.Equal(t, 1, env.departures.Len())
}

func TestCatalog_FullyBookedDepartures(t *testing.T) {
	env := newTestEnv(t, nil, nil)
	env.addFlight(t, "FULL1", "Goa", 2, 100, departureTime)
	env.addFlight(t, "HALF1", "Goa", 2, 100, departureTime)
	traveller := env.traveller(t, "Asha")

	for _, req := range []services.BookSeatRequest{
		{FlightName: "FULL1", SeatIndex: 0, TravellerID: traveller.ID},
		{FlightName: "FULL1", SeatIndex: 1, TravellerID: traveller.ID},
		{FlightName: "HALF1", SeatIndex: 0, TravellerID: traveller.ID},
	} {
		_, err := env.booking.AttemptBook(context.Background(), req)
		require.NoError(t, err)
	}

	_, err := env.catalog.DepartFlight(context.Background(), "FULL1")
	require.NoError(t, err)
	_, err = env.catalog.DepartFlight(context.Background(), "HALF1")
	require.NoError(t, err)

	full := env.catalog.FullyBookedDepartures()
	require.Len(t, full, 1)
	assert.Equal(t, "FULL1", full[0].Name)
	assert.Contains(t, full[0].Descriptor(), "BOOKED SEATS: 2/2")
	assert.Len(t, env.catalog.Departures(), 2)
}

func TestCatalog_Search(t *testing.T) {
	env := newTestEnv(t, nil, nil)
	day := time.Date(2024, time.April, 2, 0, 0, 0, 0, time.UTC)

	specs := []domain.FlightSpec{
		{Name: "MORNING", Capacity: 2, SeatPrice: 1, Origin: "Bangalore", Destination: "Goa", Arrival: day.Add(8 * time.Hour), Departure: day.Add(6 * time.Hour)},
		{Name: "EVENING", Capacity: 2, SeatPrice: 1, Origin: "Bangalore", Destination: "Goa", Arrival: day.Add(20 * time.Hour), Departure: day.Add(18 * time.Hour)},
		{Name: "OTHER", Capacity: 2, SeatPrice: 1, Origin: "Delhi", Destination: "Mumbai", Arrival: day.Add(9 * time.Hour), Departure: day.Add(7 * time.Hour)},
	}
	for _, s := range specs {
		_, err := env.catalog.Add(s)
		require.NoError(t, err)
	}

	names := func(flights []*domain.Flight) []string {
		var out []string
		for _, f := range flights {
			out = append(out, f.Name)
		}
		return out
	}

	tests := []struct {
		name  string
		query services.ScheduleQuery
		want  []string
	}{
		{
			name:  "route and time window",
			query: services.ScheduleQuery{Origin: "Bangalore", Destination: "Goa", After: "07:00", Before: "12:00"},
			want:  []string{"MORNING"},
		},
		{
			name:  "bounds are exclusive",
			query: services.ScheduleQuery{Origin: "Bangalore", Destination: "Goa", After: "08:00", Before: "20:00"},
			want:  nil,
		},
		{
			name:  "malformed bound drops the time filter",
			query: services.ScheduleQuery{Origin: "Bangalore", Destination: "Goa", After: "seven", Before: "12:00"},
			want:  []string{"MORNING", "EVENING"},
		},
		{
			name:  "empty query matches everything",
			query: services.ScheduleQuery{},
			want:  []string{"MORNING", "EVENING", "OTHER"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, names(env.catalog.Search(tt.query)))
		})
	}
}

func TestCatalog_OpenForBooking(t *testing.T) {
	env := newTestEnv(t, nil, nil)
	flight := env.addFlight(t, "A320", "Goa", 1, 800, departureTime)

	got, err := env.catalog.OpenForBooking("a320")
	require.NoError(t, err)
	assert.Same(t, flight, got)

	require.True(t, flight.Seats[0].TryBook("Asha", departureTime))

	_, err = env.catalog.OpenForBooking("A320")
	assert.ErrorIs(t, err, domain.ErrFlightFull)

	_, err = env.catalog.OpenForBooking("B777")
	assert.ErrorIs(t, err, domain.ErrFlightNotFound)
}
