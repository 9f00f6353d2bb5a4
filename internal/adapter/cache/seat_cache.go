package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/srgjo27/airline_inventory/internal/core/domain"
)

const DefaultSeatTTL = 30 * time.Second

func SeatsKey(flightID uuid.UUID) string {
	return fmt.Sprintf("seats:%s", flightID.String())
}

// SeatCache keeps revision-labelled seat maps in Redis. It is also
// registered as an event publisher so flight changes drop the entry early.
type SeatCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSeatCache(client *redis.Client, ttl time.Duration) *SeatCache {
	if ttl <= 0 {
		ttl = DefaultSeatTTL
	}
	return &SeatCache{client: client, ttl: ttl}
}

func (c *SeatCache) GetSeats(ctx context.Context, flightID uuid.UUID) (domain.SeatMap, bool, error) {
	raw, err := c.client.Get(ctx, SeatsKey(flightID)).Result()
	if errors.Is(err, redis.Nil) {
		return domain.SeatMap{}, false, nil
	}
	if err != nil {
		return domain.SeatMap{}, false, err
	}

	var seats domain.SeatMap
	if err := json.Unmarshal([]byte(raw), &seats); err != nil {
		return domain.SeatMap{}, false, fmt.Errorf("corrupt seat cache entry for %s: %w", flightID, err)
	}

	return seats, true, nil
}

func (c *SeatCache) SetSeats(ctx context.Context, flightID uuid.UUID, seats domain.SeatMap) error {
	data, err := json.Marshal(seats)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, SeatsKey(flightID), string(data), c.ttl).Err()
}

// Publish invalidates the cached seat map of the event's flight.
func (c *SeatCache) Publish(ctx context.Context, event domain.FlightEvent) error {
	switch event.Type {
	case domain.EventSeatBooked, domain.EventPriceChanged, domain.EventFlightDeparted:
		return c.client.Del(ctx, SeatsKey(event.FlightID)).Err()
	}
	return nil
}
