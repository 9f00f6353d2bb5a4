package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"go.uber.org/atomic"
)

var ErrPoolClosed = errors.New("worker pool closed")

// Future is the handle for one unit of work submitted to a WorkerPool.
type Future[T any] struct {
	done  chan struct{}
	value T
	err   error
}

// Await blocks until the unit finishes or ctx ends. An expired ctx only
// stops the wait; the unit itself still runs to completion.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

type WorkerPool struct {
	jobs   chan func()
	wg     sync.WaitGroup
	logger *slog.Logger

	mu     sync.RWMutex
	closed bool

	inFlight  atomic.Int64
	completed atomic.Int64
}

func NewWorkerPool(size, queue int, logger *slog.Logger) *WorkerPool {
	if size <= 0 {
		size = 1
	}
	if queue < 0 {
		queue = 0
	}

	p := &WorkerPool{
		jobs:   make(chan func(), queue),
		logger: logger,
	}

	p.wg.Add(size)
	for i := 0; i < size; i++ {
		go p.worker()
	}

	logger.Info("worker pool started", "workers", size, "queue", queue)

	return p
}

func (p *WorkerPool) worker() {
	defer p.wg.Done()

	for job := range p.jobs {
		job()
	}
}

// Submit queues fn on p and returns its Future. It blocks while the queue
// is full, until ctx ends.
func Submit[T any](ctx context.Context, p *WorkerPool, fn func() (T, error)) (*Future[T], error) {
	f := &Future[T]{done: make(chan struct{})}

	job := func() {
		p.inFlight.Inc()
		defer func() {
			if r := recover(); r != nil {
				p.logger.Error("worker recovered from panic", "panic", r)
				f.err = fmt.Errorf("worker panic: %v", r)
			}
			p.inFlight.Dec()
			p.completed.Inc()
			close(f.done)
		}()

		f.value, f.err = fn()
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return nil, ErrPoolClosed
	}

	select {
	case p.jobs <- job:
		return f, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (p *WorkerPool) InFlight() int64 {
	return p.inFlight.Load()
}

func (p *WorkerPool) Completed() int64 {
	return p.completed.Load()
}

// Close stops accepting work and waits for queued units to finish.
func (p *WorkerPool) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.jobs)
	p.mu.Unlock()

	p.wg.Wait()
	p.logger.Info("worker pool stopped", "completed", p.completed.Load())
}
