package tui

import (
	"context"
	"strings"

	"hermes/internal/suggestion"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const suggestionFields = 3

type SuggestionModel struct {
	sender       Submitter
	styles       *Styles
	nameInput    textinput.Model
	emailInput   textinput.Model
	messageInput textarea.Model
	focusedInput int
	sending      bool
	width        int
	height       int
}

func NewSuggestionModel(sender Submitter, styles *Styles) *SuggestionModel {
	nameInput := textinput.New()
	nameInput.Placeholder = "Seu nome"
	nameInput.Focus()

	emailInput := textinput.New()
	emailInput.Placeholder = "voce@empresa.com"

	messageInput := textarea.New()
	messageInput.Placeholder = "Descreva sua sugestão..."
	messageInput.SetHeight(5)

	return &SuggestionModel{
		sender:       sender,
		styles:       styles,
		nameInput:    nameInput,
		emailInput:   emailInput,
		messageInput: messageInput,
	}
}

func (m *SuggestionModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *SuggestionModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	if width > 12 {
		m.messageInput.SetWidth(width - 12)
	}
}

// Reset clears the form after a successful submission.
func (m *SuggestionModel) Reset() {
	m.sending = false
	m.nameInput.SetValue("")
	m.emailInput.SetValue("")
	m.messageInput.Reset()
	m.focusedInput = 0
	m.updateInputFocus()
}

func (m *SuggestionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.sending {
			return m, nil
		}
		switch msg.String() {
		case "tab":
			m.focusedInput = (m.focusedInput + 1) % suggestionFields
			m.updateInputFocus()
			return m, nil
		case "shift+tab":
			m.focusedInput = (m.focusedInput - 1 + suggestionFields) % suggestionFields
			m.updateInputFocus()
			return m, nil
		case "ctrl+s":
			return m, m.submit()
		case "enter":
			if m.focusedInput < suggestionFields-1 {
				m.focusedInput++
				m.updateInputFocus()
				return m, nil
			}
		}
	case SuggestionSentMsg:
		m.sending = false
		return m, nil
	}

	switch m.focusedInput {
	case 0:
		m.nameInput, cmd = m.nameInput.Update(msg)
	case 1:
		m.emailInput, cmd = m.emailInput.Update(msg)
	case 2:
		m.messageInput, cmd = m.messageInput.Update(msg)
	}
	return m, cmd
}

func (m *SuggestionModel) updateInputFocus() {
	m.nameInput.Blur()
	m.emailInput.Blur()
	m.messageInput.Blur()

	switch m.focusedInput {
	case 0:
		m.nameInput.Focus()
	case 1:
		m.emailInput.Focus()
	case 2:
		m.messageInput.Focus()
	}
}

func (m *SuggestionModel) submit() tea.Cmd {
	if strings.TrimSpace(m.messageInput.Value()) == "" {
		return ShowAlert("Digite sua sugestão antes de enviar.")
	}

	m.sending = true
	sender := m.sender
	sg := suggestion.Suggestion{
		Name:    strings.TrimSpace(m.nameInput.Value()),
		Email:   strings.TrimSpace(m.emailInput.Value()),
		Message: strings.TrimSpace(m.messageInput.Value()),
	}
	return func() tea.Msg {
		return SuggestionSentMsg{Err: sender.Submit(context.Background(), sg)}
	}
}

func (m *SuggestionModel) View() string {
	title, form, help := m.styles.Adaptive(m.width)

	status := ""
	if m.sending {
		status = "\n\n" + m.styles.Warning.Render("Enviando...")
	} else if !m.sender.Enabled() {
		status = "\n\n" + m.styles.Warning.Render("O envio de sugestões não está configurado.")
	}

	body := m.styles.Label.Render("Nome:") + "\n" + m.nameInput.View() + "\n\n" +
		m.styles.Label.Render("E-mail:") + "\n" + m.emailInput.View() + "\n\n" +
		m.styles.Label.Render("Sugestão:") + "\n" + m.messageInput.View() + status

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title.Render("💡 Enviar sugestão"),
		form.Render(body),
		help.Render("Tab/Shift+Tab: navegar • Ctrl+S: enviar • Esc: voltar"),
	)
}
