package battlesearch

import (
	"errors"
	"fmt"

	"github.com/battlesearch/battlesearch-go/internal/logwalk"
)

// Sentinel errors returned by this package.
var (
	// ErrRootUnreadable is returned when a root directory cannot be read.
	// It aborts the search.
	ErrRootUnreadable = logwalk.ErrRootUnreadable

	// ErrNoRoots is returned when neither a root directory nor a manifest
	// was given.
	ErrNoRoots = logwalk.ErrNoRoots

	// ErrMalformedDocument is returned for a battle log that is not valid
	// JSON or lacks a player field.
	ErrMalformedDocument = errors.New("malformed battle log")

	// ErrUsernameRequired is returned when the searched name normalizes to
	// an empty id.
	ErrUsernameRequired = errors.New("username required")

	// ErrInvalidWorkerCount is returned for a pool size below one.
	ErrInvalidWorkerCount = errors.New("worker count must be at least 1")

	// ErrQueueClosed is returned when a task is sent to a worker that has
	// already exited.
	ErrQueueClosed = errors.New("worker queue closed")

	// ErrWorkerFailed is returned by Pool.Shutdown when a worker terminated
	// abnormally.
	ErrWorkerFailed = errors.New("worker failed")

	// ErrPoolShutdown is returned by a second call to Pool.Shutdown.
	ErrPoolShutdown = errors.New("pool already shut down")
)

// FileError records a failure local to one battle log.
// It never aborts a search.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}
