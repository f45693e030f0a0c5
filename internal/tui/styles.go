package tui

import (
	"hermes/internal/theme"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

type palette struct {
	background lipgloss.Color
	foreground lipgloss.Color
	muted      lipgloss.Color
	accent     lipgloss.Color
	onAccent   lipgloss.Color
	input      lipgloss.Color
	success    lipgloss.Color
	warning    lipgloss.Color
	danger     lipgloss.Color
}

var palettes = map[theme.Theme]palette{
	theme.Dark: {
		background: "#1e1f29",
		foreground: "#dddddd",
		muted:      "#a8a8a8",
		accent:     "#00aadd",
		onAccent:   "#000000",
		input:      "#ff79c6",
		success:    "#50fa7b",
		warning:    "#f1fa8c",
		danger:     "#ff5555",
	},
	theme.Light: {
		background: "#fafafa",
		foreground: "#1a1a1a",
		muted:      "#626262",
		accent:     "#005577",
		onAccent:   "#ffffff",
		input:      "#d33682",
		success:    "#859900",
		warning:    "#b58900",
		danger:     "#dc322f",
	},
}

// Styles is rebuilt whenever the theme changes; sub-models share a pointer
// to it.
type Styles struct {
	Theme theme.Theme

	Background       lipgloss.Color
	Title            lipgloss.Style
	MenuItem         lipgloss.Style
	SelectedMenuItem lipgloss.Style
	Help             lipgloss.Style
	Form             lipgloss.Style
	Input            lipgloss.Style
	Label            lipgloss.Style
	Value            lipgloss.Style
	Placeholder      lipgloss.Style
	Success          lipgloss.Style
	Warning          lipgloss.Style
	Error            lipgloss.Style
	Alert            lipgloss.Style
	Table            table.Styles
}

func NewStyles(t theme.Theme) Styles {
	p, ok := palettes[t]
	if !ok {
		t = theme.Default
		p = palettes[t]
	}

	menuItem := lipgloss.NewStyle().
		Padding(0, 2).
		Margin(0, 1).
		Foreground(p.foreground)

	tableStyles := table.DefaultStyles()
	tableStyles.Header = tableStyles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(p.accent).
		BorderBottom(true).
		Foreground(p.foreground).
		Bold(true)
	tableStyles.Cell = tableStyles.Cell.Foreground(p.foreground)
	tableStyles.Selected = tableStyles.Selected.
		Foreground(p.onAccent).
		Background(p.accent).
		Bold(false)

	return Styles{
		Theme:      t,
		Background: p.background,
		Title: lipgloss.NewStyle().
			Foreground(p.foreground).
			Bold(true).
			Margin(1, 0, 1, 0),
		MenuItem: menuItem,
		SelectedMenuItem: menuItem.
			Foreground(p.onAccent).
			Background(p.accent).
			Bold(true),
		Help: lipgloss.NewStyle().
			Foreground(p.muted).
			Margin(1, 0, 0, 0),
		Form: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.accent).
			Padding(1, 2).
			Margin(1, 0),
		Input: lipgloss.NewStyle().Foreground(p.input),
		Label: lipgloss.NewStyle().
			Foreground(p.success).
			Bold(true),
		Value:       lipgloss.NewStyle().Foreground(p.foreground),
		Placeholder: lipgloss.NewStyle().Foreground(p.muted).Italic(true).Padding(0, 1),
		Success: lipgloss.NewStyle().
			Foreground(p.success).
			Bold(true),
		Warning: lipgloss.NewStyle().
			Foreground(p.warning).
			Bold(true),
		Error: lipgloss.NewStyle().
			Foreground(p.danger).
			Bold(true),
		Alert: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(p.danger).
			Foreground(p.foreground).
			Padding(1, 3),
		Table: tableStyles,
	}
}

// Adaptive returns the title, form and help styles sized to the terminal.
func (s *Styles) Adaptive(width int) (title, form, help lipgloss.Style) {
	if width <= 4 {
		return s.Title, s.Form, s.Help
	}
	maxWidth := width - 4
	return s.Title.Width(maxWidth), s.Form.Width(maxWidth), s.Help.Width(maxWidth)
}
