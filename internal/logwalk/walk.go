// Package logwalk walks battle log directory trees and hands every file to
// a dispatcher.
package logwalk

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/battlesearch/battlesearch-go/pkg/battlesearch/task"
)

// Sentinel errors.
var (
	ErrRootUnreadable = errors.New("root directory unreadable")
	ErrNoRoots        = errors.New("no root directories given")
)

// Dispatcher receives the file tasks produced by a walk.
type Dispatcher interface {
	Dispatch(t task.Task)
}

// Stats counts what a walk did.
type Stats struct {
	Files   int64
	Dirs    int64
	Skipped int64
}

// Label returns the context label for every file under root: the name of
// root itself. Relative roots such as "." are resolved first so they get a
// real name.
func Label(root string) string {
	root = filepath.Clean(root)
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}
	return filepath.Base(root)
}

// ResolveRoots cleans the given roots and drops duplicates, keeping the
// first occurrence. Returns ErrNoRoots if nothing is left.
func ResolveRoots(paths []string) ([]string, error) {
	roots := lo.FilterMap(paths, func(p string, _ int) (string, bool) {
		if p == "" {
			return "", false
		}
		return filepath.Clean(p), true
	})
	roots = lo.Uniq(roots)
	if len(roots) == 0 {
		return nil, ErrNoRoots
	}
	return roots, nil
}

// walker carries the state shared by every level of one walk.
type walker struct {
	ctx    context.Context
	d      Dispatcher
	label  string
	logger zerolog.Logger
	stats  Stats
}

// Walk dispatches a file task for every regular file under root, labelled
// with Label(root) at every depth.
//
// Failing to read root itself returns ErrRootUnreadable. Subdirectories
// that cannot be read and entries that cannot be classified are logged and
// skipped. Symlinks to files are followed; symlinks to directories are not,
// so a link cycle cannot trap the walk. Sibling order is unspecified.
func Walk(ctx context.Context, root string, d Dispatcher, logger zerolog.Logger) (Stats, error) {
	root = filepath.Clean(root)

	entries, err := os.ReadDir(root)
	if err != nil {
		return Stats{}, fmt.Errorf("%w: %w", ErrRootUnreadable, err)
	}

	w := &walker{
		ctx:    ctx,
		d:      d,
		label:  Label(root),
		logger: logger.With().Str("root", root).Logger(),
	}
	w.logger.Debug().Str("label", w.label).Msg("walking root")

	err = w.walkEntries(root, entries)
	return w.stats, err
}

func (w *walker) walkDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		w.stats.Skipped++
		w.logger.Warn().Err(err).Str("dir", dir).Msg("skipping unreadable directory")
		return nil
	}
	return w.walkEntries(dir, entries)
}

func (w *walker) walkEntries(dir string, entries []fs.DirEntry) error {
	for _, entry := range entries {
		if err := w.ctx.Err(); err != nil {
			return err
		}

		path := filepath.Join(dir, entry.Name())
		kind, err := classify(path, entry)
		if err != nil {
			w.stats.Skipped++
			w.logger.Warn().Err(err).Str("path", path).Msg("skipping entry")
			continue
		}

		switch kind {
		case kindDir:
			w.stats.Dirs++
			if err := w.walkDir(path); err != nil {
				return err
			}
		case kindFile:
			w.stats.Files++
			w.d.Dispatch(task.NewFile(path, w.label))
		default:
			w.logger.Debug().Str("path", path).Msg("ignoring non-regular entry")
		}
	}
	return nil
}

type entryKind int

const (
	kindOther entryKind = iota
	kindFile
	kindDir
)

// classify reports whether entry is a directory to descend into, a file to
// search, or something to ignore.
func classify(path string, entry fs.DirEntry) (entryKind, error) {
	mode := entry.Type()
	switch {
	case mode.IsDir():
		return kindDir, nil
	case mode.IsRegular():
		return kindFile, nil
	case mode&fs.ModeSymlink != 0:
		info, err := os.Stat(path)
		if err != nil {
			return kindOther, err
		}
		if info.Mode().IsRegular() {
			return kindFile, nil
		}
		return kindOther, nil
	}
	return kindOther, nil
}
