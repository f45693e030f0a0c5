package tui

import (
	"fmt"

	"hermes/internal/search"
	"hermes/internal/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type MenuModel struct {
	choices  []string
	cursor   int
	selected int
	styles   *Styles
	width    int
	height   int
}

func NewMenuModel(styles *Styles) *MenuModel {
	return &MenuModel{
		choices: []string{
			"🔁 Transferência",
			"📦 Phase Out",
			"💡 Enviar sugestão",
			"💬 Ajuda / Chat",
			"🌓 Alternar tema",
			"🚪 Sair",
		},
		cursor: 0,
		styles: styles,
	}
}

func (m *MenuModel) Init() tea.Cmd {
	return nil
}

func (m *MenuModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.choices)-1 {
				m.cursor++
			}
		case "t":
			return m, ToggleTheme()
		case "enter", " ":
			m.selected = m.cursor
			return m, m.handleSelection()
		}
	}
	return m, nil
}

func (m *MenuModel) handleSelection() tea.Cmd {
	switch m.selected {
	case 0:
		return OpenSearch(search.ModeTransfer)
	case 1:
		return OpenSearch(search.ModePhaseout)
	case 2:
		return ChangeScreen(SuggestionScreen)
	case 3:
		return ChangeScreen(HelpScreen)
	case 4:
		return ToggleTheme()
	case 5:
		return tea.Quit
	}
	return nil
}

func (m *MenuModel) View() string {
	title, _, help := m.styles.Adaptive(m.width)

	var menu string
	for i, choice := range m.choices {
		cursor := " "
		if m.cursor == i {
			cursor = ">"
			choice = m.styles.SelectedMenuItem.Render(choice)
		} else {
			choice = m.styles.MenuItem.Render(choice)
		}
		menu += fmt.Sprintf("%s %s\n", cursor, choice)
	}

	icon := "🌙"
	if m.styles.Theme == theme.Light {
		icon = "☀️"
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title.Render("Hermes "+icon),
		menu,
		help.Render("↑/↓ (ou j/k): navegar • Enter: selecionar • t: tema • q: sair"),
	)
}
