package cmd

import (
	"os"

	"hermes/internal/config"
	"hermes/internal/csv"
	"hermes/internal/logging"

	"github.com/spf13/cobra"
)

var (
	cfg     config.Config
	logger  = logging.New("info", os.Stderr)
	dataDir string
)

var rootCmd = &cobra.Command{
	Use:   "hermes",
	Short: "Look up call-transfer routes and discontinued products",
	Long: `Hermes serves the transfer and phase-out tables over HTTP and ships a
terminal client for searching them.

Running hermes without a subcommand starts the terminal client.`,
	SilenceUsage: true,
	RunE:         runTUI,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Fatal().Err(err).Msg("command failed")
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Directory holding the source tables (overrides DATA_DIR)")
}

func initConfig() {
	loaded, dotenvErr, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}
	cfg = loaded
	logger = logging.New(cfg.LogLevel, os.Stderr)

	if dotenvErr != nil {
		logger.Debug().Err(dotenvErr).Msg("no .env file loaded")
	}

	if rootCmd.PersistentFlags().Changed("data-dir") {
		cfg.DataDir = dataDir
	}
}

// newCatalog reads both tables from the configured data directory.
func newCatalog() *csv.Catalog {
	return csv.NewCatalog(
		csv.NewParser(cfg.TransferPath(), csv.WithEncoding(cfg.TransferEncoding)),
		csv.NewParser(cfg.PhaseoutPath(), csv.WithEncoding(cfg.PhaseoutEncoding)),
	)
}
