// Package ui provides the interactive terminal interface.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/taskwell/taskwell/internal/config"
	"github.com/taskwell/taskwell/internal/editor"
	"github.com/taskwell/taskwell/internal/task"
)

// Run starts the TUI over an already-loaded editor.
func Run(ctx context.Context, ed *editor.Editor, cfg *config.Config) error {
	if !isTTY(os.Stdout) {
		return fmt.Errorf("tui requires a TTY")
	}

	m := newModel(ed, cfg)
	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

// focusArea says which surface owns keyboard input.
type focusArea int

const (
	focusList focusArea = iota
	focusSearch
	focusForm
	focusConfirm
)

type model struct {
	ed    *editor.Editor
	cfg   *config.Config
	theme Theme
	keys  keyMap
	help  help.Model

	focus     focusArea
	cursor    int
	expanded  map[int64]bool
	query     task.Query
	search    textinput.Model
	form      formModel
	confirmID int64

	status string
	width  int
	height int
}

func newModel(ed *editor.Editor, cfg *config.Config) *model {
	search := textinput.New()
	search.Placeholder = "search titles"
	search.Prompt = "/ "
	search.CharLimit = 80

	return &model{
		ed:       ed,
		cfg:      cfg,
		theme:    themeByName(cfg.Theme),
		keys:     defaultKeyMap(),
		help:     help.New(),
		expanded: map[int64]bool{},
		query:    task.Query{Status: task.FilterAll},
		search:   search,
		form:     newFormModel(ed),
	}
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.form.resize(msg.Width)
		return m, nil
	case tea.KeyMsg:
		switch m.focus {
		case focusForm:
			return m.updateForm(msg)
		case focusSearch:
			return m.updateSearch(msg)
		case focusConfirm:
			return m.updateConfirm(msg)
		default:
			return m.updateList(msg)
		}
	}

	// Everything else (cursor blink ticks) goes to the focused input.
	switch m.focus {
	case focusForm:
		return m, m.form.forward(msg)
	case focusSearch:
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	view := m.visible()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(view)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Add):
		m.ed.Cancel() // fresh empty draft
		m.focus = focusForm
		return m, tea.Batch(m.form.open(), m.form.blink())

	case key.Matches(msg, m.keys.Edit):
		if t := m.selected(view); t != nil && m.ed.BeginEdit(t.ID) {
			m.focus = focusForm
			return m, tea.Batch(m.form.open(), m.form.blink())
		}
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		if t := m.selected(view); t != nil {
			m.report(m.ed.Toggle(t.ID))
		}
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		if t := m.selected(view); t != nil {
			m.confirmID = t.ID
			m.focus = focusConfirm
		}
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.focus = focusSearch
		return m, m.search.Focus()

	case key.Matches(msg, m.keys.Filter):
		m.query.Status = nextFilter(m.query.Status)
		m.clampCursor()
		return m, nil

	case key.Matches(msg, m.keys.Sort):
		m.query.Sort = nextSort(m.query.Sort)
		return m, nil

	case key.Matches(msg, m.keys.Expand):
		if t := m.selected(view); t != nil {
			m.expanded[t.ID] = !m.expanded[t.ID]
		}
		return m, nil
	}
	return m, nil
}

func (m *model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.search.Blur()
		m.focus = focusList
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.query.Search = m.search.Value()
	m.clampCursor()
	return m, cmd
}

func (m *model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	result, cmd, err := m.form.update(msg)
	m.report(err)
	switch result {
	case formSubmitted:
		m.focus = focusList
		m.clampCursor()
	case formCancelled:
		m.focus = focusList
	}
	return m, cmd
}

// updateConfirm handles the delete confirmation modal. Only an explicit
// yes deletes; anything else declines and leaves the store untouched.
func (m *model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if s := msg.String(); s == "y" || s == "Y" {
		m.report(m.ed.Delete(m.confirmID))
		delete(m.expanded, m.confirmID)
		m.clampCursor()
	}
	m.confirmID = 0
	m.focus = focusList
	return m, nil
}

func (m *model) View() string {
	var b strings.Builder

	b.WriteString(m.theme.Title.Render("Taskwell") + "\n")
	c := task.CountTasks(m.ed.Tasks())
	b.WriteString(m.theme.Counts.Render(
		fmt.Sprintf("Total: %d  Completed: %d  Pending: %d", c.Total, c.Completed, c.Pending)) + "\n\n")

	if m.focus == focusForm {
		b.WriteString(m.form.view(m.theme))
		return b.String()
	}

	b.WriteString(m.search.View() + "\n")
	b.WriteString(m.theme.Toolbar.Render(
		fmt.Sprintf("filter: %s  |  sort: %s", m.query.Status, sortLabel(m.query.Sort))) + "\n\n")

	m.writeList(&b)

	if m.focus == focusConfirm {
		t := task.Find(m.ed.Tasks(), m.confirmID)
		title := ""
		if t != nil {
			title = t.Title
		}
		b.WriteString("\n" + m.theme.Confirm.Render(
			fmt.Sprintf("Delete %q? This cannot be undone. [y/N]", title)) + "\n")
	}

	if m.status != "" {
		b.WriteString("\n" + m.theme.Error.Render(m.status) + "\n")
	}

	b.WriteString("\n" + m.help.View(m.keys))
	return b.String()
}

func (m *model) writeList(b *strings.Builder) {
	view := m.visible()
	if len(view) == 0 {
		b.WriteString(m.theme.Desc.Render("No tasks match.") + "\n")
		return
	}

	now := time.Now()
	for i, t := range view {
		marker := "  "
		if i == m.cursor {
			marker = m.theme.Cursor.Render("> ")
		}

		box := "[ ]"
		if t.Completed {
			box = "[x]"
		}

		title := t.Title
		if t.Completed {
			title = m.theme.Done.Render(title)
		}

		due := task.DueStatusText(task.DaysRemaining(t.Date, now))
		if task.Urgent(t, now, m.cfg.UrgentWithinDays) {
			due = m.theme.Urgent.Render(due + " !")
		} else {
			due = m.theme.Due.Render(due)
		}

		b.WriteString(fmt.Sprintf("%s%s %s  %s\n", marker, box, title, due))

		desc := t.Description
		if !m.expanded[t.ID] && len(desc) > 60 {
			desc = desc[:57] + "..."
		}
		desc = strings.ReplaceAll(desc, "\n", " ")
		b.WriteString("      " + m.theme.Desc.Render(desc) + "\n")
	}
}

// visible is the derived view under the current query.
func (m *model) visible() []task.Task {
	return task.ApplyQuery(m.ed.Tasks(), m.query)
}

func (m *model) selected(view []task.Task) *task.Task {
	if m.cursor < 0 || m.cursor >= len(view) {
		return nil
	}
	return &view[m.cursor]
}

func (m *model) clampCursor() {
	n := len(m.visible())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// report records a persistence error on the status line. The in-memory
// list keeps the change; only the write failed.
func (m *model) report(err error) {
	if err != nil {
		m.status = err.Error()
	} else {
		m.status = ""
	}
}

func nextFilter(f task.StatusFilter) task.StatusFilter {
	switch f {
	case task.FilterAll:
		return task.FilterPending
	case task.FilterPending:
		return task.FilterDone
	default:
		return task.FilterAll
	}
}

func nextSort(s task.SortKey) task.SortKey {
	switch s {
	case "":
		return task.SortTitleAsc
	case task.SortTitleAsc:
		return task.SortTitleDesc
	case task.SortTitleDesc:
		return task.SortDateAsc
	case task.SortDateAsc:
		return task.SortDateDesc
	default:
		return ""
	}
}

func sortLabel(s task.SortKey) string {
	if s == "" {
		return "none"
	}
	return string(s)
}

// isTTY returns true if w is a terminal.
func isTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, _ := f.Stat()
	return (info.Mode() & os.ModeCharDevice) != 0
}
