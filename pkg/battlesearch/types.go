package battlesearch

import (
	"fmt"

	"github.com/battlesearch/battlesearch-go/pkg/battlesearch/task"
)

// Re-export task types so callers only need to import this package.

// Task is a unit of work for a worker.
type Task = task.Task

// TaskKind distinguishes file tasks from the termination signal.
type TaskKind = task.Kind

// Task kind constants.
const (
	TaskFile      = task.File
	TaskTerminate = task.Terminate
)

// DefaultWorkers is the worker count used when none is configured.
const DefaultWorkers = 2

// SearchOptions is built once and shared read-only by every worker.
type SearchOptions struct {
	// SearchedUserID is the normalized id of the player to look for.
	SearchedUserID ID

	// WinsOnly reports only battles the searched player won.
	WinsOnly bool

	// ForfeitsOnly reports only battles that ended in a forfeit.
	ForfeitsOnly bool

	// WorkerCount is the number of workers, at least 1.
	WorkerCount int
}

// NewSearchOptions normalizes username and validates the result.
func NewSearchOptions(username string, winsOnly, forfeitsOnly bool, workers int) (SearchOptions, error) {
	opts := SearchOptions{
		SearchedUserID: ToID(username),
		WinsOnly:       winsOnly,
		ForfeitsOnly:   forfeitsOnly,
		WorkerCount:    workers,
	}
	if err := opts.Validate(); err != nil {
		return SearchOptions{}, err
	}
	return opts, nil
}

// Validate checks for unusable option values.
func (o SearchOptions) Validate() error {
	if o.SearchedUserID == "" {
		return ErrUsernameRequired
	}
	if o.WorkerCount < 1 {
		return fmt.Errorf("%w, got %d", ErrInvalidWorkerCount, o.WorkerCount)
	}
	return nil
}

// MatchReport is one battle the searched player took part in.
type MatchReport struct {
	// Label is the context label of the root the log was found under.
	Label string `json:"label"`

	// Room is the log file name without its .log.json suffix.
	Room string `json:"room"`

	Player1 ID `json:"p1"`
	Player2 ID `json:"p2"`

	// Outcome describes the result, e.g. "annika won by forfeit".
	Outcome string `json:"outcome"`
}

// String renders the report as a single output line without a newline.
func (r MatchReport) String() string {
	return fmt.Sprintf("(%s) <<%s>> %s vs. %s (%s)", r.Label, r.Room, r.Player1, r.Player2, r.Outcome)
}
