// Package tailer reads a manifest of battle log paths line by line, either
// once up to end of file or continuously as battle servers append to it.
package tailer

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/nxadm/tail"
)

// errBuffer is how many read errors are kept for a consumer that is busy
// dispatching.
const errBuffer = 16

// Config selects how a manifest is read.
type Config struct {
	// Follow keeps reading after end of file until the tailer is stopped.
	// A followed manifest is reopened when it is rotated or recreated.
	Follow bool

	// Poll detects appended lines by polling instead of inotify.
	// Only meaningful with Follow.
	Poll bool
}

// Tailer streams the lines of one manifest file, always from its start.
type Tailer struct {
	src    *tail.Tail
	ctx    context.Context
	cancel context.CancelFunc
	lines  chan string
	errs   chan error
	done   chan struct{}

	stopOnce sync.Once
	stopErr  error
}

// New opens the manifest at path, which must exist, and starts streaming
// its lines. Cancelling ctx stops the stream.
func New(ctx context.Context, path string, cfg Config) (*Tailer, error) {
	src, err := tail.TailFile(path, tail.Config{
		Follow:    cfg.Follow,
		ReOpen:    cfg.Follow,
		Poll:      cfg.Poll,
		MustExist: true,
		Location:  &tail.SeekInfo{Offset: 0, Whence: io.SeekStart},
		Logger:    tail.DiscardingLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("opening manifest %s: %w", path, err)
	}

	ctx, cancel := context.WithCancel(ctx)
	t := &Tailer{
		src:    src,
		ctx:    ctx,
		cancel: cancel,
		lines:  make(chan string),
		errs:   make(chan error, errBuffer),
		done:   make(chan struct{}),
	}
	go t.forward()
	return t, nil
}

// Lines returns the manifest lines without their trailing newline.
// The channel is closed at end of file when not following, and when the
// tailer stops.
func (t *Tailer) Lines() <-chan string {
	return t.lines
}

// Errors returns read errors. Errors that find the buffer full are dropped.
func (t *Tailer) Errors() <-chan error {
	return t.errs
}

// Stop ends the stream and releases the file. Later calls return the
// result of the first one.
func (t *Tailer) Stop() error {
	t.stopOnce.Do(func() {
		t.cancel()
		<-t.done
		t.stopErr = t.src.Stop()
	})
	return t.stopErr
}

// forward copies lines from the underlying tail until it ends or ctx is
// cancelled.
func (t *Tailer) forward() {
	defer close(t.done)
	defer close(t.lines)
	defer close(t.errs)

	for {
		var line *tail.Line
		var ok bool
		select {
		case <-t.ctx.Done():
			return
		case line, ok = <-t.src.Lines:
			if !ok {
				return
			}
		}

		if line.Err != nil {
			select {
			case t.errs <- fmt.Errorf("reading manifest: %w", line.Err):
			default:
			}
			continue
		}

		select {
		case t.lines <- line.Text:
		case <-t.ctx.Done():
			return
		}
	}
}
