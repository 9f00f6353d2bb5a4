package services

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/srgjo27/airline_inventory/internal/core/domain"
	"github.com/srgjo27/airline_inventory/internal/core/ports"
	"go.uber.org/atomic"
)

var ErrDispatcherClosed = errors.New("dispatcher closed")

const (
	publishTimeout = 2 * time.Second
	minEventBuffer = 64
)

// Task mutates observable state and returns the events describing it.
type Task func() []domain.FlightEvent

type dispatchTask struct {
	run  Task
	done chan struct{}
}

// Dispatcher is the single consumer for every change a live client can
// observe: flight price, booked count, departures. Tasks run one at a time
// in submission order. Their events go to a second goroutine that feeds the
// publishers in the same order; when that buffer is full events are dropped
// so publisher latency never holds up a task.
type Dispatcher struct {
	tasks      chan dispatchTask
	events     chan domain.FlightEvent
	publishers []ports.EventPublisher
	logger     *slog.Logger

	mu        sync.RWMutex
	closed    bool
	exited    chan struct{}
	fanoutEnd chan struct{}

	processed atomic.Int64
	published atomic.Int64
	dropped   atomic.Int64
}

func NewDispatcher(queueSize int, logger *slog.Logger, publishers ...ports.EventPublisher) *Dispatcher {
	eventBuffer := queueSize * 4
	if eventBuffer < minEventBuffer {
		eventBuffer = minEventBuffer
	}

	d := &Dispatcher{
		tasks:      make(chan dispatchTask, queueSize),
		events:     make(chan domain.FlightEvent, eventBuffer),
		publishers: publishers,
		logger:     logger,
		exited:     make(chan struct{}),
		fanoutEnd:  make(chan struct{}),
	}

	go d.run()
	go d.fanout()

	return d
}

func (d *Dispatcher) run() {
	defer close(d.exited)
	defer close(d.events)

	for t := range d.tasks {
		events := d.execute(t.run)
		close(t.done)
		d.processed.Inc()

		if len(d.publishers) == 0 {
			continue
		}
		for _, ev := range events {
			select {
			case d.events <- ev:
			default:
				d.dropped.Inc()
				d.logger.Warn("event buffer full, dropping flight event",
					"type", ev.Type, "flight", ev.FlightName)
			}
		}
	}
}

func (d *Dispatcher) fanout() {
	defer close(d.fanoutEnd)

	for ev := range d.events {
		d.publish(ev)
	}
}

func (d *Dispatcher) execute(run Task) (events []domain.FlightEvent) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("dispatcher task panicked", "panic", r)
			events = nil
		}
	}()

	return run()
}

func (d *Dispatcher) publish(ev domain.FlightEvent) {
	for _, p := range d.publishers {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		err := p.Publish(ctx, ev)
		cancel()

		if err != nil {
			d.logger.Warn("failed to publish flight event",
				"type", ev.Type, "flight", ev.FlightName, "error", err)
			continue
		}
		d.published.Inc()
	}
}

// Submit queues t and returns a channel closed once t has run.
func (d *Dispatcher) Submit(ctx context.Context, t Task) (<-chan struct{}, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		return nil, ErrDispatcherClosed
	}

	task := dispatchTask{run: t, done: make(chan struct{})}

	select {
	case d.tasks <- task:
		return task.done, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Do submits t and waits for it to run.
func (d *Dispatcher) Do(ctx context.Context, t Task) error {
	done, err := d.Submit(ctx, t)
	if err != nil {
		return err
	}

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *Dispatcher) Processed() int64 {
	return d.processed.Load()
}

// Dropped counts events discarded because the publishers fell behind.
func (d *Dispatcher) Dropped() int64 {
	return d.dropped.Load()
}

// Close drains queued tasks, then the buffered events, and stops both
// goroutines.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	close(d.tasks)
	d.mu.Unlock()

	<-d.exited
	<-d.fanoutEnd
	d.logger.Info("dispatcher stopped",
		"tasks", d.processed.Load(),
		"events_published", d.published.Load(),
		"events_dropped", d.dropped.Load(),
	)
}
