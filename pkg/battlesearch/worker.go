package battlesearch

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Handler processes the file tasks of one worker.
// A Handler is only ever called from its own worker goroutine.
type Handler interface {
	// Handle processes one file task. reported is true when a report line
	// was produced. A non-nil error is logged and the worker carries on.
	Handle(t Task) (reported bool, err error)
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(t Task) (bool, error)

// Handle calls f(t).
func (f HandlerFunc) Handle(t Task) (bool, error) {
	return f(t)
}

// WorkerStats counts what one worker did.
type WorkerStats struct {
	ID      int   `json:"id"`
	Files   int64 `json:"files"`
	Matches int64 `json:"matches"`
	Errors  int64 `json:"errors"`
}

// worker consumes its queue until it receives a termination signal.
type worker struct {
	id      int
	queue   *queue
	handler Handler
	logger  zerolog.Logger

	// Written only by the worker goroutine, read after it exits.
	stats WorkerStats
	err   error
}

func newWorker(id int, h Handler, logger zerolog.Logger) *worker {
	return &worker{
		id:      id,
		queue:   newQueue(),
		handler: h,
		logger:  logger.With().Int("worker", id).Logger(),
		stats:   WorkerStats{ID: id},
	}
}

// run is the worker loop. It returns a non-nil error only when the handler
// panicked; per-file errors are logged and never stop the loop.
func (w *worker) run() (err error) {
	// Sends after exit fail with ErrQueueClosed.
	defer w.queue.close()
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: worker %d: panic: %v", ErrWorkerFailed, w.id, r)
			w.logger.Error().Err(err).Msg("worker crashed")
			w.err = err
		}
	}()

	for {
		t, ok := w.queue.pop()
		if !ok {
			w.logger.Error().Msg("queue closed without a terminate signal")
			return nil
		}
		if t.IsTerminate() {
			w.logger.Debug().
				Int64("files", w.stats.Files).
				Int64("matches", w.stats.Matches).
				Msg("worker terminated")
			return nil
		}
		w.handle(t)
	}
}

func (w *worker) handle(t Task) {
	w.stats.Files++
	reported, err := w.handler.Handle(t)
	if reported {
		w.stats.Matches++
	}
	if err != nil {
		w.stats.Errors++
		w.logger.Warn().Err(err).Str("path", t.Path).Msg("error searching battle log")
	}
}
