// Package task defines the unit of work exchanged between the directory
// walker and the search workers.
//
// This package is separated from the main battlesearch package to avoid an
// import cycle between pkg/battlesearch and internal/logwalk.
package task

// Kind distinguishes file tasks from the termination signal.
type Kind string

const (
	// File asks a worker to search one battle log.
	File Kind = "file"

	// Terminate asks a worker to stop after draining earlier tasks.
	Terminate Kind = "terminate"
)

// Task is consumed by exactly one worker, exactly once.
type Task struct {
	// Kind is the task kind.
	Kind Kind `json:"kind"`

	// Path is the battle log to read (File tasks only).
	Path string `json:"path,omitempty"`

	// Label is the context label, usually the date directory the log was
	// found under (File tasks only).
	Label string `json:"label,omitempty"`
}

// NewFile builds a File task.
func NewFile(path, label string) Task {
	return Task{Kind: File, Path: path, Label: label}
}

// NewTerminate builds the termination signal.
func NewTerminate() Task {
	return Task{Kind: Terminate}
}

// IsTerminate reports whether t is the termination signal.
func (t Task) IsTerminate() bool {
	return t.Kind == Terminate
}
