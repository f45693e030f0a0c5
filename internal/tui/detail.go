package tui

import (
	"fmt"
	"strings"
	"time"

	"hermes/internal/models"
	"hermes/internal/search"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
)

// clipboardWriteAll is swapped out in tests.
var clipboardWriteAll = clipboard.WriteAll

const copiedLabel = "COPIADO!"

type copyResetMsg struct {
	field int
}

type DetailModel struct {
	styles *Styles
	log    zerolog.Logger
	mode   search.Mode
	fields []models.Field
	cursor int
	copied int
	width  int
	height int
}

func NewDetailModel(styles *Styles, logger zerolog.Logger) *DetailModel {
	return &DetailModel{styles: styles, log: logger, copied: -1}
}

func (m *DetailModel) Init() tea.Cmd {
	return nil
}

func (m *DetailModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Show displays every field of record. The cursor starts on the first
// copyable field, if any.
func (m *DetailModel) Show(mode search.Mode, record models.Record) {
	m.mode = mode
	m.fields = record.DetailFields()
	m.cursor = 0
	m.copied = -1
	for i, f := range m.fields {
		if f.Copyable {
			m.cursor = i
			break
		}
	}
}

func (m *DetailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case copyResetMsg:
		if m.copied == msg.field {
			m.copied = -1
		}
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.fields)-1 {
				m.cursor++
			}
		case "enter", "c":
			return m, m.copy()
		}
	}
	return m, nil
}

// copy writes the focused field to the clipboard. A failure is only logged.
func (m *DetailModel) copy() tea.Cmd {
	if m.cursor >= len(m.fields) || !m.fields[m.cursor].Copyable {
		return nil
	}

	field := m.fields[m.cursor]
	if err := clipboardWriteAll(field.Value); err != nil {
		m.log.Error().Err(err).Str("field", field.Label).Msg("failed to copy to clipboard")
		return nil
	}

	m.copied = m.cursor
	index := m.cursor
	return tea.Tick(1500*time.Millisecond, func(time.Time) tea.Msg {
		return copyResetMsg{field: index}
	})
}

func (m *DetailModel) View() string {
	title, form, help := m.styles.Adaptive(m.width)

	heading := "Detalhes do Produto"
	if m.mode == search.ModePhaseout {
		heading = "Detalhes do Phase Out"
	}

	var b strings.Builder
	for i, f := range m.fields {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%s %s", cursor, m.styles.Label.Render(f.Label+":"), m.styles.Value.Render(f.Value))
		if f.Copyable {
			button := "[COPIAR]"
			if i == m.copied {
				button = m.styles.Success.Render(copiedLabel)
			}
			line += "  " + button
		}
		b.WriteString(line + "\n")
	}

	keys := "Esc: voltar"
	if m.hasCopyable() {
		keys = "↑/↓: navegar • Enter/c: copiar • Esc: voltar"
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title.Render(heading),
		form.Render(strings.TrimRight(b.String(), "\n")),
		help.Render(keys),
	)
}

func (m *DetailModel) hasCopyable() bool {
	for _, f := range m.fields {
		if f.Copyable {
			return true
		}
	}
	return false
}
