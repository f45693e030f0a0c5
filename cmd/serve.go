package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"hermes/internal/api"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the transfer and phase-out tables over HTTP",
	Long: `Serve the transfer and phase-out tables as JSON.

Every request re-reads the source file, so edits to the tables are picked up
without a restart.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 3000, "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}

	gin.SetMode(gin.ReleaseMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info().
		Str("transferencia", cfg.TransferPath()).
		Str("phaseout", cfg.PhaseoutPath()).
		Msg("serving tables")

	server := api.NewServer(newCatalog(), logger)
	if err := server.Run(ctx, fmt.Sprintf(":%d", cfg.Port)); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}
