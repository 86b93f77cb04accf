// Package task holds the task domain model: the Task entity, list
// operations, draft validation, and the derived view used for display.
//
// The package is pure: nothing here touches storage or a terminal. List
// operations work on plain []Task slices and id-keyed operations treat an
// unknown id as a no-op. Validation takes a Draft and the current time and
// returns one message per field; constraints are enforced at write time
// only, so a stored task's date may drift into the past without violating
// anything.
//
// The derived view (ApplyQuery, CountTasks, DueStatusText) is a projection
// recomputed on demand and never mutates the underlying list.
package task
