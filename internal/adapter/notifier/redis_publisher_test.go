package notifier_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/srgjo27/airline_inventory/internal/adapter/notifier"
	"github.com/srgjo27/airline_inventory/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEvent() domain.FlightEvent {
	seat := 3
	return domain.FlightEvent{
		ID:          uuid.New(),
		Type:        domain.EventSeatBooked,
		FlightID:    uuid.New(),
		FlightName:  "A350",
		Seat:        &seat,
		Price:       1000,
		BookedCount: 1,
		Capacity:    4,
		OccurredAt:  time.Date(2024, time.March, 5, 9, 7, 0, 0, time.UTC),
	}
}

func TestRedisPublisher_Publish(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	event := sampleEvent()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	mockRedis.ExpectPublish(notifier.EventsChannel(event.FlightID), string(data)).SetVal(2)

	err = notifier.NewRedisPublisher(db).Publish(context.Background(), event)

	assert.NoError(t, err)
	assert.NoError(t, mockRedis.ExpectationsWereMet())
}

func TestRedisPublisher_PropagatesErrors(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	event := sampleEvent()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	mockRedis.ExpectPublish(notifier.EventsChannel(event.FlightID), string(data)).SetErr(errors.New("connection refused"))

	err = notifier.NewRedisPublisher(db).Publish(context.Background(), event)

	assert.EqualError(t, err, "connection refused")
}
