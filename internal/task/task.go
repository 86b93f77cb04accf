package task

import "time"

// DateLayout is the calendar date format used for due dates.
const DateLayout = "2006-01-02"

// Task represents a single task in the list.
type Task struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// Patch represents a partial update to a task's editable fields.
// nil pointer => "no change". ID and Completed are never patched.
type Patch struct {
	Title       *string
	Date        *string
	Description *string
}

// NextID returns a fresh id derived from the clock (unix milliseconds).
// If the clock has not advanced past the highest existing id, the result
// is bumped to highest+1 so ids stay unique and monotonically increasing.
func NextID(tasks []Task, now time.Time) int64 {
	id := now.UnixMilli()
	for i := range tasks {
		if tasks[i].ID >= id {
			id = tasks[i].ID + 1
		}
	}
	return id
}

// Find returns a pointer to the task with the given id, or nil.
func Find(tasks []Task, id int64) *Task {
	for i := range tasks {
		if tasks[i].ID == id {
			return &tasks[i]
		}
	}
	return nil
}

// Append adds a task to the end of the list.
func Append(tasks []Task, t Task) []Task {
	return append(tasks, t)
}

// Replace applies a patch to the task with the given id, in place.
// An unknown id is a no-op.
func Replace(tasks []Task, id int64, p Patch) {
	t := Find(tasks, id)
	if t == nil {
		return
	}
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Date != nil {
		t.Date = *p.Date
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
}

// Remove deletes the task with the given id, preserving the order of the
// remaining tasks. An unknown id is a no-op.
func Remove(tasks []Task, id int64) []Task {
	for i := range tasks {
		if tasks[i].ID == id {
			return append(tasks[:i], tasks[i+1:]...)
		}
	}
	return tasks
}

// ToggleCompleted flips the completed flag of the task with the given id,
// in place. An unknown id is a no-op.
func ToggleCompleted(tasks []Task, id int64) {
	if t := Find(tasks, id); t != nil {
		t.Completed = !t.Completed
	}
}
