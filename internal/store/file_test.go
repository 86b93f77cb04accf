package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/taskwell/taskwell/internal/task"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{Level: log.FatalLevel})
}

func TestFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	repo := NewFile(path, quietLogger())

	original := []task.Task{
		{ID: 1, Title: "Alpha", Date: "2099-01-01", Description: "first", Completed: false},
		{ID: 2, Title: "Beta", Date: "2000-01-01", Description: "second", Completed: true},
	}
	if err := repo.Save(original); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := repo.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(loaded) != len(original) {
		t.Fatalf("len: got %d, want %d", len(loaded), len(original))
	}
	for i := range original {
		if loaded[i] != original[i] {
			t.Errorf("task %d: got %+v, want %+v", i, loaded[i], original[i])
		}
	}
}

func TestFileLoadMissingFile(t *testing.T) {
	repo := NewFile(filepath.Join(t.TempDir(), "absent.json"), quietLogger())
	tasks, err := repo.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("want empty list, got %+v", tasks)
	}
}

func TestFileLoadCorruptedFallsBackToEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tasks.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	repo := NewFile(path, quietLogger())
	tasks, err := repo.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("want empty list, got %+v", tasks)
	}

	// The damaged data is moved aside, not clobbered.
	if _, err := os.Stat(path + ".bad"); err != nil {
		t.Errorf("corrupted file was not quarantined: %v", err)
	}
}

func TestFileSaveCreatesDataDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "tasks.json")
	repo := NewFile(path, quietLogger())
	if err := repo.Save([]task.Task{{ID: 1, Title: "A", Date: "2099-01-01", Description: "x"}}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("file not written: %v", err)
	}
}

func TestFileSaveWritesTrailingNewline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	repo := NewFile(path, quietLogger())
	if err := repo.Save(nil); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) == 0 || data[len(data)-1] != '\n' {
		t.Errorf("want trailing newline, got %q", data)
	}
}
