package notifier

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/srgjo27/airline_inventory/internal/core/domain"
)

func EventsChannel(flightID uuid.UUID) string {
	return fmt.Sprintf("flights:%s:events", flightID.String())
}

// RedisPublisher fans flight events out over Redis pub/sub, one channel per
// flight.
type RedisPublisher struct {
	client *redis.Client
}

func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{client: client}
}

func (p *RedisPublisher) Publish(ctx context.Context, event domain.FlightEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode %s event: %w", event.Type, err)
	}

	return p.client.Publish(ctx, EventsChannel(event.FlightID), string(data)).Err()
}
