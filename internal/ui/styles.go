package ui

import "github.com/charmbracelet/lipgloss"

// Theme is one presentational skin over the task list model. Both themes
// render the same state; only colors and chrome differ.
type Theme struct {
	Title   lipgloss.Style
	Counts  lipgloss.Style
	Toolbar lipgloss.Style
	Cursor  lipgloss.Style
	Done    lipgloss.Style
	Urgent  lipgloss.Style
	Due     lipgloss.Style
	Desc    lipgloss.Style
	Label   lipgloss.Style
	Error   lipgloss.Style
	Hint    lipgloss.Style
	Confirm lipgloss.Style
	FormBox lipgloss.Style
}

// plainTheme is the undecorated skin: monochrome, no borders.
func plainTheme() Theme {
	return Theme{
		Title:   lipgloss.NewStyle().Bold(true),
		Counts:  lipgloss.NewStyle(),
		Toolbar: lipgloss.NewStyle(),
		Cursor:  lipgloss.NewStyle().Bold(true),
		Done:    lipgloss.NewStyle().Strikethrough(true).Faint(true),
		Urgent:  lipgloss.NewStyle().Bold(true),
		Due:     lipgloss.NewStyle(),
		Desc:    lipgloss.NewStyle().Faint(true),
		Label:   lipgloss.NewStyle(),
		Error:   lipgloss.NewStyle().Bold(true),
		Hint:    lipgloss.NewStyle().Faint(true),
		Confirm: lipgloss.NewStyle().Bold(true),
		FormBox: lipgloss.NewStyle(),
	}
}

// slateTheme is the decorated skin: colored accents and a bordered form.
func slateTheme() Theme {
	var (
		accent  = lipgloss.Color("69")
		danger  = lipgloss.Color("203")
		subtle  = lipgloss.Color("245")
		okGreen = lipgloss.Color("78")
	)
	return Theme{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(accent),
		Counts:  lipgloss.NewStyle().Foreground(okGreen),
		Toolbar: lipgloss.NewStyle().Foreground(subtle),
		Cursor:  lipgloss.NewStyle().Bold(true).Foreground(accent),
		Done:    lipgloss.NewStyle().Strikethrough(true).Foreground(subtle),
		Urgent:  lipgloss.NewStyle().Bold(true).Foreground(danger),
		Due:     lipgloss.NewStyle().Foreground(subtle),
		Desc:    lipgloss.NewStyle().Foreground(subtle),
		Label:   lipgloss.NewStyle().Foreground(accent),
		Error:   lipgloss.NewStyle().Bold(true).Foreground(danger),
		Hint:    lipgloss.NewStyle().Foreground(subtle),
		Confirm: lipgloss.NewStyle().Bold(true).Foreground(danger),
		FormBox: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accent).Padding(0, 1),
	}
}

// themeByName resolves a configured theme name, defaulting to plain.
func themeByName(name string) Theme {
	if name == "slate" {
		return slateTheme()
	}
	return plainTheme()
}
