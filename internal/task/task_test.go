package task

import (
	"testing"
	"time"
)

func sampleTasks() []Task {
	return []Task{
		{ID: 1, Title: "Alpha", Date: "2099-01-01", Description: "first", Completed: false},
		{ID: 2, Title: "Beta", Date: "2000-01-01", Description: "second", Completed: true},
		{ID: 3, Title: "Gamma", Date: "2099-06-01", Description: "third", Completed: false},
	}
}

func TestNextID(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	t.Run("clock-derived when clock is ahead", func(t *testing.T) {
		got := NextID(sampleTasks(), now)
		if got != now.UnixMilli() {
			t.Errorf("NextID: got %d, want %d", got, now.UnixMilli())
		}
	})

	t.Run("bumps past highest existing id", func(t *testing.T) {
		high := now.UnixMilli() + 5
		tasks := []Task{{ID: high}}
		got := NextID(tasks, now)
		if got != high+1 {
			t.Errorf("NextID: got %d, want %d", got, high+1)
		}
	})

	t.Run("ids stay unique under a frozen clock", func(t *testing.T) {
		tasks := []Task{}
		seen := map[int64]bool{}
		for i := 0; i < 10; i++ {
			id := NextID(tasks, now)
			if seen[id] {
				t.Fatalf("duplicate id %d", id)
			}
			seen[id] = true
			tasks = Append(tasks, Task{ID: id})
		}
	})
}

func TestReplace(t *testing.T) {
	tasks := sampleTasks()
	title := "Delta"
	date := "2099-02-02"

	Replace(tasks, 1, Patch{Title: &title, Date: &date})

	if tasks[0].Title != "Delta" || tasks[0].Date != "2099-02-02" {
		t.Errorf("patched fields not applied: %+v", tasks[0])
	}
	if tasks[0].Description != "first" {
		t.Errorf("unpatched field changed: %q", tasks[0].Description)
	}
	if tasks[0].ID != 1 || tasks[0].Completed {
		t.Errorf("id/completed must never change: %+v", tasks[0])
	}
	if tasks[1].Title != "Beta" {
		t.Errorf("other task modified: %+v", tasks[1])
	}
}

func TestReplaceUnknownIDIsNoOp(t *testing.T) {
	tasks := sampleTasks()
	title := "Nope"
	Replace(tasks, 99, Patch{Title: &title})
	for i, want := range sampleTasks() {
		if tasks[i] != want {
			t.Errorf("task %d changed: got %+v, want %+v", i, tasks[i], want)
		}
	}
}

func TestRemove(t *testing.T) {
	tasks := Remove(sampleTasks(), 2)
	if len(tasks) != 2 {
		t.Fatalf("len: got %d, want 2", len(tasks))
	}
	if tasks[0].ID != 1 || tasks[1].ID != 3 {
		t.Errorf("wrong tasks remain: %+v", tasks)
	}

	same := Remove(sampleTasks(), 99)
	if len(same) != 3 {
		t.Errorf("unknown id must be a no-op, got %d tasks", len(same))
	}
}

func TestToggleCompletedIsIdempotentInPairs(t *testing.T) {
	tasks := sampleTasks()
	original := tasks[0].Completed

	ToggleCompleted(tasks, 1)
	if tasks[0].Completed == original {
		t.Error("first toggle did not flip")
	}
	ToggleCompleted(tasks, 1)
	if tasks[0].Completed != original {
		t.Error("second toggle did not restore")
	}
	if tasks[1].Completed != true || tasks[2].Completed != false {
		t.Error("other tasks affected by toggle")
	}

	ToggleCompleted(tasks, 99) // no-op
	for i, want := range sampleTasks() {
		if tasks[i] != want {
			t.Errorf("task %d changed by unknown-id toggle", i)
		}
	}
}

func TestFind(t *testing.T) {
	tasks := sampleTasks()
	if got := Find(tasks, 3); got == nil || got.Title != "Gamma" {
		t.Errorf("Find(3): got %+v", got)
	}
	if got := Find(tasks, 42); got != nil {
		t.Errorf("Find(42): got %+v, want nil", got)
	}
}
