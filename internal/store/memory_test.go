package store

import (
	"testing"

	"github.com/taskwell/taskwell/internal/task"
)

func TestMemoryRoundTrip(t *testing.T) {
	repo := NewMemory()

	tasks, err := repo.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("fresh repo should be empty, got %+v", tasks)
	}

	original := []task.Task{{ID: 1, Title: "Alpha", Date: "2099-01-01", Description: "x"}}
	if err := repo.Save(original); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := repo.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(loaded) != 1 || loaded[0] != original[0] {
		t.Errorf("got %+v, want %+v", loaded, original)
	}
}

func TestMemoryIsolatesCallers(t *testing.T) {
	repo := NewMemory()
	if err := repo.Save([]task.Task{{ID: 1, Title: "Alpha"}}); err != nil {
		t.Fatal(err)
	}

	loaded, _ := repo.Load()
	loaded[0].Title = "Mutated"

	again, _ := repo.Load()
	if again[0].Title != "Alpha" {
		t.Error("mutating a loaded slice must not affect the store")
	}
}
