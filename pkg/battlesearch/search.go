package battlesearch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/samber/lo"

	"github.com/battlesearch/battlesearch-go/internal/logwalk"
)

// Summary describes a finished search.
type Summary struct {
	// Workers holds per-worker counters, indexed by worker id.
	Workers []WorkerStats `json:"workers"`

	// Roots is the number of root directories walked.
	Roots int `json:"roots"`

	// Dispatched is the number of file tasks handed to the pool.
	Dispatched int64 `json:"dispatched"`

	// Skipped counts directory entries that could not be read or
	// classified.
	Skipped int64 `json:"skipped"`

	Elapsed time.Duration `json:"elapsed"`
}

// Files returns the number of battle logs processed by all workers.
func (s Summary) Files() int64 {
	return lo.SumBy(s.Workers, func(w WorkerStats) int64 { return w.Files })
}

// Matches returns the number of report lines written.
func (s Summary) Matches() int64 {
	return lo.SumBy(s.Workers, func(w WorkerStats) int64 { return w.Matches })
}

// Errors returns the number of battle logs that could not be searched.
func (s Summary) Errors() int64 {
	return lo.SumBy(s.Workers, func(w WorkerStats) int64 { return w.Errors })
}

// Search prints a report line for every battle username took part in,
// looking at every file under roots and, if configured, every path listed
// in the manifest.
//
// Errors on individual files or subdirectories are logged and skipped. An
// unreadable root directory aborts the walk with ErrRootUnreadable; tasks
// dispatched before the failure are still processed before Search returns.
// A crashed worker is reported as ErrWorkerFailed.
//
// Example:
//
//	summary, err := battlesearch.Search(ctx, "Annika", []string{"logs/2021-01-01"},
//	    battlesearch.WithForfeitsOnly(true),
//	)
func Search(ctx context.Context, username string, roots []string, opts ...SearchOption) (Summary, error) {
	cfg := applySearchOptions(opts)

	searchOpts, err := NewSearchOptions(username, cfg.winsOnly, cfg.forfeitsOnly, cfg.workers)
	if err != nil {
		return Summary{}, fmt.Errorf("invalid options: %w", err)
	}
	if len(roots) == 0 && cfg.manifest == "" {
		return Summary{}, ErrNoRoots
	}

	out := newLineWriter(cfg.output)
	pool, err := NewPool(searchOpts.WorkerCount, func(int) Handler {
		return newLogSearcher(searchOpts, out)
	}, WithPoolLogger(cfg.logger))
	if err != nil {
		return Summary{}, err
	}

	start := time.Now()
	summary, scanErr := scan(ctx, cfg, roots, pool)

	// Always drain the pool, even after a fatal walk error.
	stats, shutdownErr := pool.Shutdown()
	summary.Workers = stats
	summary.Elapsed = time.Since(start)

	cfg.logger.Debug().
		Int64("files", summary.Files()).
		Int64("matches", summary.Matches()).
		Dur("elapsed", summary.Elapsed).
		Msg("search finished")

	return summary, errors.Join(scanErr, shutdownErr)
}

// scan feeds every root, then the manifest, into the pool.
func scan(ctx context.Context, cfg *searchConfig, roots []string, pool *Pool) (Summary, error) {
	var summary Summary

	for _, root := range roots {
		stats, err := logwalk.Walk(ctx, root, pool, cfg.logger)
		summary.Roots++
		summary.Dispatched += stats.Files
		summary.Skipped += stats.Skipped
		if err != nil {
			return summary, err
		}
	}

	if cfg.manifest != "" {
		n, err := feedManifest(ctx, cfg.manifest, cfg.follow, pool, cfg.logger)
		summary.Dispatched += n
		if err != nil {
			return summary, err
		}
	}

	return summary, nil
}
