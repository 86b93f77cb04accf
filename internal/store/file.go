package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/taskwell/taskwell/internal/task"
)

// File is a Repository backed by a single JSON file holding the serialized
// task list. Writes are synchronous and full-replace.
type File struct {
	mu     sync.Mutex
	path   string
	logger *log.Logger
	warned bool
}

// NewFile creates a file repository at path. The file does not need to
// exist yet; a missing file loads as an empty list.
func NewFile(path string, logger *log.Logger) *File {
	if logger == nil {
		logger = log.Default()
	}
	return &File{path: path, logger: logger}
}

// Path returns the backing file path.
func (f *File) Path() string {
	return f.path
}

// Load reads and parses the task list. A missing file yields an empty
// list. An unparseable file is moved aside to <path>.bad and an empty list
// is returned, with a one-time warning; the next save starts fresh without
// clobbering the damaged data. A blob that parses but does not conform to
// the expected shape is trusted as-is and only warned about.
func (f *File) Load() ([]task.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []task.Task{}, nil
		}
		return nil, fmt.Errorf("read task file: %w", err)
	}

	var tasks []task.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		f.quarantine(err)
		return []task.Task{}, nil
	}

	if !f.warned {
		if problems := task.CheckBlob(data); len(problems) > 0 {
			f.warned = true
			f.logger.Warn("task file does not match expected shape",
				"path", f.path, "problems", len(problems), "first", problems[0])
		}
	}

	return tasks, nil
}

// Save serializes the full task list and replaces the file contents.
// A write failure is reported, never swallowed.
func (f *File) Save(tasks []task.Task) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if tasks == nil {
		tasks = []task.Task{}
	}
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal task file: %w", err)
	}
	data = append(data, '\n')

	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create data dir: %w", err)
		}
	}
	if err := os.WriteFile(f.path, data, 0644); err != nil {
		return fmt.Errorf("write task file: %w", err)
	}
	return nil
}

// quarantine moves a corrupted task file aside so the data survives the
// next save.
func (f *File) quarantine(parseErr error) {
	if f.warned {
		return
	}
	f.warned = true

	bad := f.path + ".bad"
	if err := os.Rename(f.path, bad); err != nil {
		f.logger.Warn("task file is corrupted and could not be moved aside",
			"path", f.path, "err", parseErr)
		return
	}
	f.logger.Warn("task file is corrupted, starting with an empty list",
		"path", f.path, "moved_to", bad, "err", parseErr)
}
