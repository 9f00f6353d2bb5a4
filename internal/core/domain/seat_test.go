package domain_test

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/srgjo27/airline_inventory/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestSeat_TryBookSucceedsOnce(t *testing.T) {
	seat := domain.NewSeat(uuid.New(), "A350", 4, 1000)
	at := time.Date(2024, time.March, 5, 9, 7, 0, 0, time.UTC)

	assert.True(t, seat.TryBook("Asha", at))
	assert.False(t, seat.TryBook("Ravi", at.Add(time.Minute)))

	view := seat.View()
	assert.Equal(t, domain.SeatBooked, view.Status)
	assert.Equal(t, "Asha", view.OccupantName)
	assert.Equal(t, at, *view.BookedAt)
	assert.Equal(t, 1000.0, view.RecordedPrice)
}

func TestSeat_ConcurrentTryBookHasOneWinner(t *testing.T) {
	seat := domain.NewSeat(uuid.New(), "A350", 0, 1000)

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
	)

	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if seat.TryBook("racer", time.Now()) {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, wins)
}

func TestSeat_AvailableViewHasNoBookingTime(t *testing.T) {
	view := domain.NewSeat(uuid.New(), "A350", 2, 500).View()

	assert.Equal(t, domain.SeatAvailable, view.Status)
	assert.Empty(t, view.OccupantName)
	assert.Nil(t, view.BookedAt)
}
