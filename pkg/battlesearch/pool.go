package battlesearch

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Dispatcher accepts file tasks.
type Dispatcher interface {
	Dispatch(t Task)
}

// PoolOption configures a Pool.
type PoolOption func(*poolConfig)

type poolConfig struct {
	logger zerolog.Logger
}

// WithPoolLogger sets the logger for dispatch failures and worker events.
// Default: disabled.
func WithPoolLogger(logger zerolog.Logger) PoolOption {
	return func(c *poolConfig) {
		c.logger = logger
	}
}

// Pool is a fixed set of workers, each with its own unbounded queue.
// Tasks are assigned by round robin: with W workers, the i-th dispatched
// task (0-indexed) goes to worker i mod W.
type Pool struct {
	workers []*worker
	cursor  atomic.Uint64
	group   errgroup.Group
	logger  zerolog.Logger

	mu       sync.Mutex
	shutdown bool
}

// NewPool starts n workers. newHandler is called once per worker, so each
// worker gets a handler it owns exclusively.
func NewPool(n int, newHandler func(workerID int) Handler, opts ...PoolOption) (*Pool, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidWorkerCount, n)
	}

	cfg := &poolConfig{logger: zerolog.Nop()}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}

	p := &Pool{
		workers: make([]*worker, n),
		logger:  cfg.logger,
	}
	for i := range n {
		w := newWorker(i, newHandler(i), cfg.logger)
		p.workers[i] = w
		p.group.Go(w.run)
	}
	return p, nil
}

// Size returns the number of workers.
func (p *Pool) Size() int {
	return len(p.workers)
}

// Dispatch queues a file task on the next worker in round-robin order.
// It never blocks on worker progress. Send failures are logged, not
// returned: one dead worker must not stop the walk.
func (p *Pool) Dispatch(t Task) {
	if t.IsTerminate() {
		p.logger.Warn().Msg("ignoring terminate task passed to Dispatch")
		return
	}

	idx := (p.cursor.Add(1) - 1) % uint64(len(p.workers))
	if err := p.workers[idx].queue.push(t); err != nil {
		p.logger.Error().Err(err).
			Uint64("worker", idx).
			Str("path", t.Path).
			Msg("dispatch failed")
	}
}

// Shutdown queues one termination signal per worker, behind any pending
// tasks, and waits for every worker to exit. Workers that crashed are
// reported as ErrWorkerFailed. Shutdown must be called once, after the
// last Dispatch; later calls return ErrPoolShutdown.
func (p *Pool) Shutdown() ([]WorkerStats, error) {
	p.mu.Lock()
	if p.shutdown {
		p.mu.Unlock()
		return nil, ErrPoolShutdown
	}
	p.shutdown = true
	p.mu.Unlock()

	for _, w := range p.workers {
		if err := w.queue.push(Task{Kind: TaskTerminate}); err != nil {
			p.logger.Error().Err(err).Int("worker", w.id).Msg("sending terminate signal")
		}
	}

	// Wait only reports the first failure; collect all of them.
	_ = p.group.Wait()

	stats := make([]WorkerStats, len(p.workers))
	var errs []error
	for i, w := range p.workers {
		stats[i] = w.stats
		if w.err != nil {
			errs = append(errs, w.err)
		}
	}
	return stats, errors.Join(errs...)
}
