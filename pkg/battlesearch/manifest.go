package battlesearch

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/battlesearch/battlesearch-go/internal/tailer"
	"github.com/battlesearch/battlesearch-go/pkg/battlesearch/task"
)

// parseManifestLine turns one manifest line into a file task.
//
// Lines are either "path" or "label<TAB>path". Without a label, the name of
// the file's parent directory is used. Blank lines and lines starting with
// '#' are skipped.
func parseManifestLine(line string) (Task, bool) {
	line = strings.TrimRight(line, "\r\n")
	if strings.TrimSpace(line) == "" || strings.HasPrefix(strings.TrimSpace(line), "#") {
		return Task{}, false
	}

	label, path, found := strings.Cut(line, "\t")
	if !found {
		label, path = "", line
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return Task{}, false
	}

	label = strings.TrimSpace(label)
	if label == "" {
		label = filepath.Base(filepath.Dir(path))
	}
	return task.NewFile(path, label), true
}

// feedManifest dispatches every path listed in the manifest. Without follow
// it stops at end of file; with follow it runs until ctx is cancelled,
// which is then not an error.
func feedManifest(ctx context.Context, path string, follow bool, d Dispatcher, logger zerolog.Logger) (int64, error) {
	t, err := tailer.New(ctx, path, tailer.Config{Follow: follow})
	if err != nil {
		return 0, fmt.Errorf("opening manifest: %w", err)
	}
	defer func() { _ = t.Stop() }()

	var n int64
	lines, errs := t.Lines(), t.Errors()
	for {
		select {
		case <-ctx.Done():
			if follow {
				return n, nil
			}
			return n, ctx.Err()
		case line, ok := <-lines:
			if !ok {
				return n, nil
			}
			tk, ok := parseManifestLine(line)
			if !ok {
				continue
			}
			d.Dispatch(tk)
			n++
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			logger.Warn().Err(err).Str("manifest", path).Msg("reading manifest")
		}
	}
}
