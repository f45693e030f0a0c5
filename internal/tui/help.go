package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var helpSections = []struct {
	heading string
	lines   []string
}{
	{
		heading: "Transferência",
		lines: []string{
			"Pesquise por produto, código ou segmento.",
			"Abra um resultado para ver o telefone e a fila Blip de transferência.",
			"Os campos de telefone e Blip podem ser copiados com Enter ou c.",
		},
	},
	{
		heading: "Phase Out",
		lines: []string{
			"Pesquise por item, descrição ou modelo.",
			"Os detalhes mostram a data de phase out e os substitutos indicados.",
		},
	},
	{
		heading: "Chat",
		lines: []string{
			"Não encontrou o que procurava? Fale com o time de suporte pelo chat interno",
			"ou envie uma sugestão pelo menu principal.",
		},
	},
}

type HelpModel struct {
	styles *Styles
	width  int
	height int
}

func NewHelpModel(styles *Styles) *HelpModel {
	return &HelpModel{styles: styles}
}

func (m *HelpModel) Init() tea.Cmd {
	return nil
}

func (m *HelpModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "enter" {
		return m, ChangeScreen(MenuScreen)
	}
	return m, nil
}

func (m *HelpModel) View() string {
	title, form, help := m.styles.Adaptive(m.width)

	var b strings.Builder
	for i, section := range helpSections {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(m.styles.Label.Render(section.heading))
		for _, line := range section.lines {
			b.WriteString("\n" + m.styles.Value.Render(line))
		}
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title.Render("💬 Ajuda / Chat"),
		form.Render(b.String()),
		help.Render("Enter/Esc: voltar ao menu"),
	)
}
