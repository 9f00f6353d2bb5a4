package services_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/srgjo27/airline_inventory/internal/core/domain"
	"github.com/srgjo27/airline_inventory/internal/core/ports"
	"github.com/srgjo27/airline_inventory/internal/core/services"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	departures *domain.DepartureLog
	dispatcher *services.Dispatcher
	pool       *services.WorkerPool
	catalog    *services.CatalogService
	travellers *services.TravellerService
	booking    *services.BookingService
	analytics  *services.AnalyticsService
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEnv(t *testing.T, archive ports.DepartureArchive, publishers []ports.EventPublisher, opts ...services.BookingOption) *testEnv {
	t.Helper()

	logger := discardLogger()
	pricing, err := services.NewPricingPolicy(services.DefaultSurcharge)
	require.NoError(t, err)

	env := &testEnv{departures: domain.NewDepartureLog()}
	env.dispatcher = services.NewDispatcher(64, logger, publishers...)
	env.pool = services.NewWorkerPool(8, 64, logger)
	env.catalog = services.NewCatalogService(env.departures, env.dispatcher, archive, logger)
	env.travellers = services.NewTravellerService(logger)
	env.booking = services.NewBookingService(env.catalog, env.travellers, pricing, env.pool, env.dispatcher, logger, opts...)
	env.analytics = services.NewAnalyticsService(env.departures)

	t.Cleanup(func() {
		env.pool.Close()
		env.dispatcher.Close()
	})

	return env
}

func (e *testEnv) addFlight(t *testing.T, name, destination string, capacity int, price float64, departure time.Time) *domain.Flight {
	t.Helper()

	f, err := e.catalog.Add(domain.FlightSpec{
		Name:        name,
		Type:        "Airbus",
		Capacity:    capacity,
		SeatPrice:   price,
		Origin:      "Bangalore",
		Destination: destination,
		Arrival:     departure.Add(-2 * time.Hour),
		Departure:   departure,
	})
	require.NoError(t, err)

	return f
}

func (e *testEnv) traveller(t *testing.T, name string) *domain.Traveller {
	t.Helper()

	tr, err := e.travellers.Register(name)
	require.NoError(t, err)

	return tr
}

// blockingPublisher holds every Publish call until release is closed, after
// an optional fixed delay.
type blockingPublisher struct {
	delay   time.Duration
	release chan struct{}

	mu    sync.Mutex
	count int
}

func newBlockingPublisher(delay time.Duration) *blockingPublisher {
	p := &blockingPublisher{delay: delay, release: make(chan struct{})}
	if delay > 0 {
		close(p.release)
	}
	return p
}

func (p *blockingPublisher) Publish(ctx context.Context, _ domain.FlightEvent) error {
	time.Sleep(p.delay)
	<-p.release

	p.mu.Lock()
	p.count++
	p.mu.Unlock()
	return nil
}

func (p *blockingPublisher) Published() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.count
}
