package cmd

import (
	"fmt"

	"hermes/internal/client"
	"hermes/internal/logging"
	"hermes/internal/suggestion"
	"hermes/internal/theme"
	"hermes/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Start the terminal client (same as default)",
	Long: `Start the terminal client. Both tables are fetched from API_BASE_URL
once at startup; searching happens locally.

Note: This is the same as running the program without any commands.`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	// The alternate screen owns the terminal, so logs go to LOG_FILE or nowhere.
	tuiLog, closer, err := logging.NewFile(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return err
	}
	defer closer.Close()

	themePath, err := cfg.ThemePath()
	if err != nil {
		return err
	}

	model := tui.NewModel(tui.Deps{
		Fetcher: client.New(cfg.APIBaseURL, cfg.HTTPTimeout),
		Sender:  suggestion.NewSender(cfg.SuggestionURL, cfg.HTTPTimeout),
		Themes:  theme.NewStore(themePath),
		Locale:  cfg.Locale,
		Log:     tuiLog,
	})

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
