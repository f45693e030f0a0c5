package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"hermes/internal/client"
	"hermes/internal/models"
	"hermes/internal/search"
	"hermes/internal/suggestion"
	"hermes/internal/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
)

type Screen int

const (
	MenuScreen Screen = iota
	SearchScreen
	DetailScreen
	SuggestionScreen
	HelpScreen
)

const loadFailureAlert = "Não foi possível carregar os dados do servidor."

// Fetcher loads both datasets once at startup.
type Fetcher interface {
	FetchAll(ctx context.Context) client.Datasets
}

// Submitter sends the suggestion form.
type Submitter interface {
	Enabled() bool
	Submit(ctx context.Context, sg suggestion.Suggestion) error
}

// ThemeStore persists the display preference.
type ThemeStore interface {
	Load() (theme.Theme, error)
	Save(t theme.Theme) error
}

type Deps struct {
	Fetcher Fetcher
	Sender  Submitter
	Themes  ThemeStore
	Locale  string
	Log     zerolog.Logger
}

type Model struct {
	deps            Deps
	state           *search.State
	styles          *Styles
	currentScreen   Screen
	menuModel       *MenuModel
	searchModel     *SearchModel
	detailModel     *DetailModel
	suggestionModel *SuggestionModel
	helpModel       *HelpModel
	alert           string
	loading         bool
	quitting        bool
	width           int
	height          int
}

func NewModel(deps Deps) Model {
	current, err := deps.Themes.Load()
	if err != nil {
		deps.Log.Warn().Err(err).Msg("failed to load theme preference, using default")
	}
	styles := NewStyles(current)
	state := search.NewState(deps.Locale)

	return Model{
		deps:            deps,
		state:           state,
		styles:          &styles,
		currentScreen:   MenuScreen,
		menuModel:       NewMenuModel(&styles),
		searchModel:     NewSearchModel(state, &styles),
		detailModel:     NewDetailModel(&styles, deps.Log),
		suggestionModel: NewSuggestionModel(deps.Sender, &styles),
		helpModel:       NewHelpModel(&styles),
		loading:         true,
	}
}

func (m Model) Init() tea.Cmd {
	fetcher := m.deps.Fetcher
	return func() tea.Msg {
		return DataLoadedMsg{Datasets: fetcher.FetchAll(context.Background())}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.menuModel.SetSize(msg.Width, msg.Height)
		m.searchModel.SetSize(msg.Width, msg.Height)
		m.detailModel.SetSize(msg.Width, msg.Height)
		m.suggestionModel.SetSize(msg.Width, msg.Height)
		m.helpModel.SetSize(msg.Width, msg.Height)
		return m, nil

	case DataLoadedMsg:
		m.applyDatasets(msg.Datasets)
		return m, nil

	case AlertMsg:
		m.alert = msg.Text
		return m, nil

	case ScreenChangeMsg:
		m.currentScreen = msg.Screen
		if msg.Screen == SuggestionScreen {
			return m, m.suggestionModel.Init()
		}
		return m, nil

	case OpenSearchMsg:
		m.searchModel.Open(msg.Mode, m.state.Open(msg.Mode))
		m.currentScreen = SearchScreen
		return m, textinput.Blink

	case OpenDetailMsg:
		m.detailModel.Show(m.state.Mode, msg.Record)
		m.currentScreen = DetailScreen
		return m, nil

	case ToggleThemeMsg:
		m.toggleTheme()
		return m, nil

	case SuggestionSentMsg:
		return m.handleSuggestionSent(msg)

	case tea.KeyMsg:
		if m.alert != "" {
			switch msg.String() {
			case "ctrl+c":
				m.quitting = true
				return m, tea.Quit
			case "enter", "esc", " ":
				m.alert = ""
			}
			return m, nil
		}

		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "q":
			if m.currentScreen == MenuScreen {
				m.quitting = true
				return m, tea.Quit
			}
		case "esc":
			switch m.currentScreen {
			case MenuScreen:
				return m, nil
			case DetailScreen:
				m.currentScreen = SearchScreen
				return m, nil
			default:
				m.currentScreen = MenuScreen
				return m, nil
			}
		}
	}

	switch m.currentScreen {
	case MenuScreen:
		newMenuModel, cmd := m.menuModel.Update(msg)
		m.menuModel = newMenuModel.(*MenuModel)
		return m, cmd
	case SearchScreen:
		newSearchModel, cmd := m.searchModel.Update(msg)
		m.searchModel = newSearchModel.(*SearchModel)
		return m, cmd
	case DetailScreen:
		newDetailModel, cmd := m.detailModel.Update(msg)
		m.detailModel = newDetailModel.(*DetailModel)
		return m, cmd
	case SuggestionScreen:
		newSuggestionModel, cmd := m.suggestionModel.Update(msg)
		m.suggestionModel = newSuggestionModel.(*SuggestionModel)
		return m, cmd
	case HelpScreen:
		newHelpModel, cmd := m.helpModel.Update(msg)
		m.helpModel = newHelpModel.(*HelpModel)
		return m, cmd
	}

	return m, cmd
}

// applyDatasets stores whatever loaded. Each dataset fails on its own; a
// single alert lists every failure.
func (m *Model) applyDatasets(d client.Datasets) {
	m.loading = false
	m.state.Transfers = d.Transfers
	m.state.Phaseouts = d.Phaseouts

	var failed []string
	for _, err := range []error{d.TransferErr, d.PhaseoutErr} {
		if err == nil {
			continue
		}
		m.deps.Log.Error().Err(err).Msg("failed to load dataset")
		failed = append(failed, err.Error())
	}
	if len(failed) == 0 {
		m.deps.Log.Info().
			Int("transfers", len(d.Transfers)).
			Int("phaseouts", len(d.Phaseouts)).
			Msg("datasets loaded")
		return
	}
	m.alert = loadFailureAlert + "\n\n" + strings.Join(failed, "\n")
}

func (m *Model) toggleTheme() {
	next := m.styles.Theme.Toggle()
	*m.styles = NewStyles(next)
	if err := m.deps.Themes.Save(next); err != nil {
		m.deps.Log.Warn().Err(err).Msg("failed to save theme preference")
	}
}

func (m Model) handleSuggestionSent(msg SuggestionSentMsg) (tea.Model, tea.Cmd) {
	m.suggestionModel.Update(msg)

	switch {
	case msg.Err == nil:
		m.alert = "Sugestão enviada com sucesso!"
		m.suggestionModel.Reset()
		m.currentScreen = MenuScreen
	case errors.Is(msg.Err, suggestion.ErrNotConfigured):
		m.alert = "O envio de sugestões não está configurado."
	case errors.Is(msg.Err, suggestion.ErrRejected):
		m.deps.Log.Warn().Err(msg.Err).Msg("suggestion rejected")
		m.alert = "Houve um erro ao enviar sua sugestão."
	default:
		m.deps.Log.Warn().Err(msg.Err).Msg("suggestion not sent")
		m.alert = "Erro de conexão ao enviar sugestão."
	}
	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return "Até logo! 👋\n"
	}

	var content string
	switch m.currentScreen {
	case MenuScreen:
		content = m.menuModel.View()
		if m.loading {
			content += "\n" + m.styles.Help.Render("Carregando dados...")
		}
	case SearchScreen:
		content = m.searchModel.View()
	case DetailScreen:
		content = m.detailModel.View()
	case SuggestionScreen:
		content = m.suggestionModel.View()
	case HelpScreen:
		content = m.helpModel.View()
	}

	if m.alert != "" {
		alert := m.styles.Alert.Render(m.alert + "\n\n" + m.styles.Help.Render("Enter: OK"))
		content = lipgloss.JoinVertical(lipgloss.Left, content, alert)
	}

	if m.width > 0 && m.height > 0 {
		content = lipgloss.Place(
			m.width, m.height,
			lipgloss.Left, lipgloss.Top,
			content,
			lipgloss.WithWhitespaceBackground(m.styles.Background),
		)
	}
	return content
}

type DataLoadedMsg struct {
	Datasets client.Datasets
}

type ScreenChangeMsg struct {
	Screen Screen
}

type OpenSearchMsg struct {
	Mode search.Mode
}

type OpenDetailMsg struct {
	Record models.Record
}

type AlertMsg struct {
	Text string
}

type ToggleThemeMsg struct{}

type SuggestionSentMsg struct {
	Err error
}

func ChangeScreen(screen Screen) tea.Cmd {
	return func() tea.Msg {
		return ScreenChangeMsg{Screen: screen}
	}
}

func OpenSearch(mode search.Mode) tea.Cmd {
	return func() tea.Msg {
		return OpenSearchMsg{Mode: mode}
	}
}

func OpenDetail(record models.Record) tea.Cmd {
	return func() tea.Msg {
		return OpenDetailMsg{Record: record}
	}
}

func ShowAlert(format string, args ...interface{}) tea.Cmd {
	return func() tea.Msg {
		return AlertMsg{Text: fmt.Sprintf(format, args...)}
	}
}

func ToggleTheme() tea.Cmd {
	return func() tea.Msg {
		return ToggleThemeMsg{}
	}
}
