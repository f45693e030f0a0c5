package tui

import (
	"hermes/internal/search"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var columnWidths = map[search.Mode][]int{
	search.ModeTransfer: {14, 10, 32, 14, 18},
	search.ModePhaseout: {10, 12, 32, 14, 14, 14},
}

type SearchModel struct {
	state      *search.State
	styles     *Styles
	title      string
	input      textinput.Model
	table      table.Model
	result     search.Result
	focusTable bool
	width      int
	height     int
}

func NewSearchModel(state *search.State, styles *Styles) *SearchModel {
	input := textinput.New()
	input.Prompt = "🔎 "
	input.CharLimit = 120

	return &SearchModel{
		state:  state,
		styles: styles,
		input:  input,
		table:  table.New(table.WithHeight(10)),
	}
}

func (m *SearchModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *SearchModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	if height > 16 {
		m.table.SetHeight(height - 14)
	}
}

// Open resets the panel for mode with an empty query.
func (m *SearchModel) Open(mode search.Mode, result search.Result) {
	switch mode {
	case search.ModeTransfer:
		m.title = search.TransferTitle
		m.input.Placeholder = search.TransferInputPrompt
	case search.ModePhaseout:
		m.title = search.PhaseoutTitle
		m.input.Placeholder = search.PhaseoutInputPrompt
	}
	m.input.SetValue("")
	m.input.Focus()
	m.focusTable = false
	m.table.Blur()
	m.SetResult(result)
}

// SetResult replaces the table contents. Rows are cleared before the columns
// change so no row is ever wider than the header.
func (m *SearchModel) SetResult(result search.Result) {
	m.result = result
	m.table.SetRows(nil)

	widths := columnWidths[result.Mode]
	columns := make([]table.Column, len(result.Columns))
	for i, title := range result.Columns {
		width := 12
		if i < len(widths) {
			width = widths[i]
		}
		columns[i] = table.Column{Title: title, Width: width}
	}
	m.table.SetColumns(columns)

	rows := make([]table.Row, len(result.Rows))
	for i, row := range result.Rows {
		rows[i] = table.Row(row.Cells)
	}
	m.table.SetRows(rows)
	if len(rows) > 0 {
		m.table.SetCursor(0)
	}
}

// Result is the result currently on screen.
func (m *SearchModel) Result() search.Result {
	return m.result
}

func (m *SearchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		if m.focusTable {
			return m.updateTable(msg)
		}
		return m.updateInput(msg)
	}

	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *SearchModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg.String() {
	case "enter":
		m.SetResult(m.state.Search(m.input.Value()))
		return m, nil
	case "tab", "down":
		if len(m.result.Rows) > 0 {
			m.focusTable = true
			m.input.Blur()
			m.table.Focus()
		}
		return m, nil
	}

	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *SearchModel) updateTable(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg.String() {
	case "enter":
		cursor := m.table.Cursor()
		if cursor >= 0 && cursor < len(m.result.Rows) && m.result.Rows[cursor].Record != nil {
			return m, OpenDetail(m.result.Rows[cursor].Record)
		}
		return m, nil
	case "tab", "shift+tab":
		m.focusTable = false
		m.table.Blur()
		m.input.Focus()
		return m, textinput.Blink
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *SearchModel) View() string {
	title, form, help := m.styles.Adaptive(m.width)
	m.table.SetStyles(m.styles.Table)

	body := m.table.View()
	if m.result.IsPlaceholder() {
		body += "\n" + m.styles.Placeholder.Render(m.result.Placeholder)
	}

	keys := "Enter: pesquisar • Tab: resultados • Esc: voltar"
	if m.focusTable {
		keys = "↑/↓: navegar • Enter: detalhes • Tab: pesquisa • Esc: voltar"
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title.Render(m.title),
		form.Render(m.styles.Input.Render(m.input.View())+"\n\n"+body),
		help.Render(keys),
	)
}
