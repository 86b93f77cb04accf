package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/taskwell/taskwell/internal/editor"
)

// Form field indexes.
const (
	fieldTitle = iota
	fieldDate
	fieldDescription
	fieldCount
)

// formModel is the add/update form: two single-line inputs, a multi-line
// description, per-field touched flags gating when live validation errors
// are shown, and a contextual submit label. Validation itself lives in the
// task package; the form only decides display timing.
type formModel struct {
	ed      *editor.Editor
	title   textinput.Model
	date    textinput.Model
	desc    textarea.Model
	touched [fieldCount]bool
	focus   int
}

func newFormModel(ed *editor.Editor) formModel {
	var f formModel
	f.ed = ed

	f.title = textinput.New()
	f.title.Placeholder = "Buy groceries"
	f.title.CharLimit = 120
	f.title.Prompt = ""

	f.date = textinput.New()
	f.date.Placeholder = "2026-12-31"
	f.date.CharLimit = 10
	f.date.Prompt = ""

	f.desc = textarea.New()
	f.desc.Placeholder = "What needs doing?"
	f.desc.CharLimit = 500
	f.desc.SetHeight(3)
	f.desc.ShowLineNumbers = false

	return f
}

// open seeds the inputs from the editor's draft (empty in Idle mode,
// populated by BeginEdit) and clears touched state.
func (f *formModel) open() tea.Cmd {
	draft := f.ed.Draft()
	f.title.SetValue(draft.Title)
	f.date.SetValue(draft.Date)
	f.desc.SetValue(draft.Description)
	f.touched = [fieldCount]bool{}
	return f.setFocus(fieldTitle)
}

func (f *formModel) setFocus(i int) tea.Cmd {
	f.focus = i
	f.title.Blur()
	f.date.Blur()
	f.desc.Blur()
	switch i {
	case fieldTitle:
		return f.title.Focus()
	case fieldDate:
		return f.date.Focus()
	default:
		return f.desc.Focus()
	}
}

// formResult tells the parent model what happened on a keypress.
type formResult int

const (
	formContinue formResult = iota
	formSubmitted
	formCancelled
)

// update handles one key event. Tab/shift+tab cycle focus, enter advances
// from the single-line fields (and inserts a newline in the description),
// ctrl+s submits from anywhere, esc cancels. Any other key is typed into
// the focused input, marks it touched, and re-validates live.
func (f *formModel) update(msg tea.KeyMsg) (formResult, tea.Cmd, error) {
	switch msg.String() {
	case "esc":
		f.ed.Cancel()
		return formCancelled, nil, nil
	case "ctrl+s":
		return f.submit()
	case "tab":
		return formContinue, f.setFocus((f.focus + 1) % fieldCount), nil
	case "shift+tab":
		return formContinue, f.setFocus((f.focus + fieldCount - 1) % fieldCount), nil
	case "enter":
		// Enter advances through the single-line fields; in the
		// description it falls through and inserts a newline.
		if f.focus < fieldDescription {
			return formContinue, f.setFocus(f.focus + 1), nil
		}
	}

	var cmd tea.Cmd
	switch f.focus {
	case fieldTitle:
		f.title, cmd = f.title.Update(msg)
	case fieldDate:
		f.date, cmd = f.date.Update(msg)
	default:
		f.desc, cmd = f.desc.Update(msg)
	}
	f.touched[f.focus] = true
	f.push()
	return formContinue, cmd, nil
}

// submit runs the authoritative validation pass via the editor. On
// rejection every field is marked touched so all errors become visible.
func (f *formModel) submit() (formResult, tea.Cmd, error) {
	f.push()
	errs, err := f.ed.Submit()
	if err != nil {
		return formContinue, nil, err
	}
	if !errs.OK() {
		f.touched = [fieldCount]bool{true, true, true}
		return formContinue, nil, nil
	}
	return formSubmitted, nil, nil
}

// forward delivers a non-key message (cursor blink) to the focused input.
func (f *formModel) forward(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch f.focus {
	case fieldTitle:
		f.title, cmd = f.title.Update(msg)
	case fieldDate:
		f.date, cmd = f.date.Update(msg)
	default:
		f.desc, cmd = f.desc.Update(msg)
	}
	return cmd
}

// resize keeps the description area within the terminal width.
func (f *formModel) resize(width int) {
	if width <= 0 {
		return
	}
	w := width - 6
	if w > 72 {
		w = 72
	}
	if w < 20 {
		w = 20
	}
	f.title.Width = w
	f.date.Width = 12
	f.desc.SetWidth(w)
}

// push copies the input values into the editor's draft, which re-runs
// validation on every change.
func (f *formModel) push() {
	f.ed.SetTitle(f.title.Value())
	f.ed.SetDate(f.date.Value())
	f.ed.SetDescription(f.desc.Value())
}

// view renders the form. Error lines appear only under touched fields.
func (f *formModel) view(theme Theme) string {
	editing := f.ed.Mode() == editor.Editing

	heading := "Add Task"
	if editing {
		heading = "Update Task"
	}

	errs := f.ed.Errors()
	fieldErr := [fieldCount]string{errs.Title, errs.Date, errs.Description}
	labels := [fieldCount]string{"Title", "Date (YYYY-MM-DD)", "Description"}
	views := [fieldCount]string{f.title.View(), f.date.View(), f.desc.View()}

	var b strings.Builder
	b.WriteString(theme.Title.Render(heading) + "\n\n")
	for i := range views {
		b.WriteString(theme.Label.Render(labels[i]) + "\n")
		b.WriteString(views[i] + "\n")
		if f.touched[i] && fieldErr[i] != "" {
			b.WriteString(theme.Error.Render(fieldErr[i]) + "\n")
		}
		b.WriteString("\n")
	}

	submit := "ctrl+s: " + heading
	if editing {
		b.WriteString(theme.Hint.Render(submit + "  |  esc: cancel edit  |  tab: next field"))
	} else {
		b.WriteString(theme.Hint.Render(submit + "  |  esc: discard  |  tab: next field"))
	}

	return theme.FormBox.Render(b.String())
}

func (f *formModel) blink() tea.Cmd {
	return textarea.Blink
}
