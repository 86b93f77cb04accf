// Package store persists the task list. The Repository interface is the
// only thing the rest of the program depends on; file, memory, and sqlite
// backends implement it interchangeably.
package store

import (
	"errors"

	"github.com/taskwell/taskwell/internal/task"
)

// ErrNotFound is returned by backends that support single-task lookup.
var ErrNotFound = errors.New("task not found")

// Repository loads and saves the full task list. Save is full-replace:
// the previous contents are discarded on every write.
type Repository interface {
	Load() ([]task.Task, error)
	Save(tasks []task.Task) error
}
