// Package editor implements the submit/edit/cancel state machine over a
// task repository. Every mutation (add, update, toggle, delete) is
// followed by a synchronous save; draft and query changes never are.
package editor

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/taskwell/taskwell/internal/store"
	"github.com/taskwell/taskwell/internal/task"
)

// Mode is the editor's lifecycle state.
type Mode int

const (
	// Idle means a submit creates a new task.
	Idle Mode = iota
	// Editing means a submit updates the task identified by EditingID.
	Editing
)

// Option configures an Editor.
type Option func(*Editor)

// WithClock overrides the time source used for id generation and
// validation. Tests use this to pin "today".
func WithClock(clock func() time.Time) Option {
	return func(e *Editor) { e.clock = clock }
}

// WithLogger overrides the editor's logger.
func WithLogger(logger *log.Logger) Option {
	return func(e *Editor) { e.logger = logger }
}

// Editor owns the in-memory task list, the transient draft, and the
// Idle/Editing state. It has no opinion about presentation: the touched
// flags that gate when errors are shown live in the UI layer.
type Editor struct {
	repo   store.Repository
	logger *log.Logger
	clock  func() time.Time

	tasks  []task.Task
	draft  task.Draft
	errs   task.FieldErrors
	mode   Mode
	editID int64
}

// New creates an editor and loads the current task list from repo.
func New(repo store.Repository, opts ...Option) (*Editor, error) {
	e := &Editor{
		repo:   repo,
		logger: log.Default(),
		clock:  time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}

	tasks, err := repo.Load()
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}
	e.tasks = tasks
	return e, nil
}

// Tasks returns the current in-memory task list.
func (e *Editor) Tasks() []task.Task {
	return e.tasks
}

// Draft returns the current draft fields.
func (e *Editor) Draft() task.Draft {
	return e.draft
}

// Errors returns the result of the most recent validation pass.
func (e *Editor) Errors() task.FieldErrors {
	return e.errs
}

// Mode returns Idle or Editing.
func (e *Editor) Mode() Mode {
	return e.mode
}

// EditingID returns the id being edited; meaningful only in Editing mode.
func (e *Editor) EditingID() int64 {
	return e.editID
}

// SetTitle updates the draft title and re-validates.
func (e *Editor) SetTitle(s string) {
	e.draft.Title = s
	e.errs = task.Validate(e.draft, e.clock())
}

// SetDate updates the draft due date and re-validates.
func (e *Editor) SetDate(s string) {
	e.draft.Date = s
	e.errs = task.Validate(e.draft, e.clock())
}

// SetDescription updates the draft description and re-validates.
func (e *Editor) SetDescription(s string) {
	e.draft.Description = s
	e.errs = task.Validate(e.draft, e.clock())
}

// Submit runs the authoritative validation pass and, if it succeeds,
// commits the draft: a new task in Idle mode, a field replacement of the
// edited task in Editing mode. On success the draft resets and the mode
// returns to Idle. On validation failure nothing changes except the
// error messages. The returned error reports persistence failures only.
func (e *Editor) Submit() (task.FieldErrors, error) {
	now := e.clock()
	e.errs = task.Validate(e.draft, now)
	if !e.errs.OK() {
		return e.errs, nil
	}

	switch e.mode {
	case Idle:
		t := task.Task{
			ID:          task.NextID(e.tasks, now),
			Title:       e.draft.Title,
			Date:        e.draft.Date,
			Description: e.draft.Description,
			Completed:   false,
		}
		e.tasks = task.Append(e.tasks, t)
	case Editing:
		task.Replace(e.tasks, e.editID, task.Patch{
			Title:       &e.draft.Title,
			Date:        &e.draft.Date,
			Description: &e.draft.Description,
		})
	}

	if err := e.save(); err != nil {
		return e.errs, err
	}

	e.resetDraft()
	e.mode = Idle
	e.editID = 0
	return e.errs, nil
}

// BeginEdit populates the draft from the task with the given id and moves
// to Editing mode. It reports whether the id was found.
func (e *Editor) BeginEdit(id int64) bool {
	t := task.Find(e.tasks, id)
	if t == nil {
		return false
	}
	e.draft = task.FromTask(*t)
	e.errs = task.FieldErrors{}
	e.mode = Editing
	e.editID = id
	return true
}

// Cancel discards the draft and returns to Idle mode.
func (e *Editor) Cancel() {
	e.resetDraft()
	e.mode = Idle
	e.editID = 0
}

// Toggle flips the completed flag of the task with the given id and saves.
func (e *Editor) Toggle(id int64) error {
	task.ToggleCompleted(e.tasks, id)
	return e.save()
}

// Delete removes the task with the given id and saves. Confirmation is
// the caller's responsibility; a declined delete means this is never
// called.
func (e *Editor) Delete(id int64) error {
	e.tasks = task.Remove(e.tasks, id)
	return e.save()
}

func (e *Editor) save() error {
	if err := e.repo.Save(e.tasks); err != nil {
		e.logger.Error("saving task list failed", "err", err)
		return fmt.Errorf("save tasks: %w", err)
	}
	return nil
}

func (e *Editor) resetDraft() {
	e.draft = task.Draft{}
	e.errs = task.FieldErrors{}
}
