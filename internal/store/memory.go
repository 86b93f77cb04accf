package store

import (
	"sync"

	"github.com/taskwell/taskwell/internal/task"
)

// Memory is an in-process Repository. It is used by tests and by
// ephemeral runs where nothing should touch the disk.
type Memory struct {
	mu    sync.Mutex
	tasks []task.Task
}

// NewMemory creates an empty in-memory repository.
func NewMemory() *Memory {
	return &Memory{tasks: []task.Task{}}
}

// Load returns a copy of the stored list.
func (m *Memory) Load() ([]task.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]task.Task, len(m.tasks))
	copy(out, m.tasks)
	return out, nil
}

// Save replaces the stored list with a copy of tasks.
func (m *Memory) Save(tasks []task.Task) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tasks = make([]task.Task, len(tasks))
	copy(m.tasks, tasks)
	return nil
}
