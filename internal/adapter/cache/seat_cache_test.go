package cache_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/srgjo27/airline_inventory/internal/adapter/cache"
	"github.com/srgjo27/airline_inventory/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeatCache_Miss(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	flightID := uuid.New()

	mockRedis.ExpectGet(cache.SeatsKey(flightID)).RedisNil()

	seats, ok, err := cache.NewSeatCache(db, time.Minute).GetSeats(context.Background(), flightID)

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, seats.Seats)
	assert.NoError(t, mockRedis.ExpectationsWereMet())
}

func TestSeatCache_SetThenHit(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	flightID := uuid.New()
	c := cache.NewSeatCache(db, time.Minute)

	seats := domain.SeatMap{
		Revision: 1,
		Seats: []domain.SeatView{
			{Position: 0, Status: domain.SeatBooked, OccupantName: "Asha", RecordedPrice: 1100},
			{Position: 1, Status: domain.SeatAvailable, RecordedPrice: 1000},
		},
	}
	data, err := json.Marshal(seats)
	require.NoError(t, err)

	mockRedis.ExpectSet(cache.SeatsKey(flightID), string(data), time.Minute).SetVal("OK")
	mockRedis.ExpectGet(cache.SeatsKey(flightID)).SetVal(string(data))

	require.NoError(t, c.SetSeats(context.Background(), flightID, seats))

	got, ok, err := c.GetSeats(context.Background(), flightID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, seats, got)
	assert.NoError(t, mockRedis.ExpectationsWereMet())
}

func TestSeatCache_CorruptEntry(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	flightID := uuid.New()

	mockRedis.ExpectGet(cache.SeatsKey(flightID)).SetVal("{not json")

	_, ok, err := cache.NewSeatCache(db, 0).GetSeats(context.Background(), flightID)

	assert.Error(t, err)
	assert.False(t, ok)
}

func TestSeatCache_InvalidatesOnFlightEvents(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	c := cache.NewSeatCache(db, time.Minute)
	flightID := uuid.New()

	mockRedis.ExpectDel(cache.SeatsKey(flightID)).SetVal(1)

	require.NoError(t, c.Publish(context.Background(), domain.FlightEvent{Type: domain.EventSeatBooked, FlightID: flightID}))
	// flight_full carries no seat change of its own.
	require.NoError(t, c.Publish(context.Background(), domain.FlightEvent{Type: domain.EventFlightFull, FlightID: flightID}))

	assert.NoError(t, mockRedis.ExpectationsWereMet())
}
