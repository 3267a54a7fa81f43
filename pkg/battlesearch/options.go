package battlesearch

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// SearchOption configures Search behavior using the functional options pattern.
type SearchOption func(*searchConfig)

// searchConfig holds internal configuration for a search.
type searchConfig struct {
	workers      int
	winsOnly     bool
	forfeitsOnly bool
	output       io.Writer
	logger       zerolog.Logger
	manifest     string
	follow       bool
}

// defaultSearchConfig returns a searchConfig with sensible defaults.
func defaultSearchConfig() *searchConfig {
	return &searchConfig{
		workers: DefaultWorkers,
		output:  os.Stdout,
		logger:  zerolog.Nop(),
	}
}

// applySearchOptions applies functional options to a searchConfig.
func applySearchOptions(opts []SearchOption) *searchConfig {
	cfg := defaultSearchConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	return cfg
}

// WithWorkers sets the number of workers.
// Default: 2.
func WithWorkers(n int) SearchOption {
	return func(c *searchConfig) {
		c.workers = n
	}
}

// WithWinsOnly reports only battles the searched player won.
func WithWinsOnly(winsOnly bool) SearchOption {
	return func(c *searchConfig) {
		c.winsOnly = winsOnly
	}
}

// WithForfeitsOnly reports only battles that ended in a forfeit.
func WithForfeitsOnly(forfeitsOnly bool) SearchOption {
	return func(c *searchConfig) {
		c.forfeitsOnly = forfeitsOnly
	}
}

// WithOutput sets where report lines are written.
// Default: os.Stdout.
func WithOutput(w io.Writer) SearchOption {
	return func(c *searchConfig) {
		c.output = w
	}
}

// WithLogger sets the logger for diagnostics (unreadable files, malformed
// logs, skipped directory entries).
// Default: disabled.
func WithLogger(logger zerolog.Logger) SearchOption {
	return func(c *searchConfig) {
		c.logger = logger
	}
}

// WithManifest also searches the log paths listed in a manifest file, one
// per line, after the root directories. With follow set, lines appended to
// the manifest keep being searched until the context is cancelled.
func WithManifest(path string, follow bool) SearchOption {
	return func(c *searchConfig) {
		c.manifest = path
		c.follow = follow
	}
}
