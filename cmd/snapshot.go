package cmd

import (
	"fmt"

	"hermes/internal/models"
	"hermes/internal/snapshot"

	"github.com/spf13/cobra"
)

var (
	outputDir       string
	snapshotFormat  string
	snapshotDataset string
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Export the normalized tables to files",
	Long:  "Export the normalized transfer and phase-out tables to JSON lines or BSON files",
	RunE:  runSnapshot,
}

func init() {
	snapshotCmd.Flags().StringVarP(&outputDir, "output", "o", "./snapshots", "Output directory for snapshot files")
	snapshotCmd.Flags().StringVarP(&snapshotFormat, "format", "f", snapshot.FormatJSON, "Snapshot format: json or bson")
	snapshotCmd.Flags().StringVarP(&snapshotDataset, "dataset", "s", "", "Dataset to export: transferencia or phaseout (if empty, exports both)")
	rootCmd.AddCommand(snapshotCmd)
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	if snapshotFormat != snapshot.FormatBSON && snapshotFormat != snapshot.FormatJSON {
		return fmt.Errorf("invalid format: %s. Use 'bson' or 'json'", snapshotFormat)
	}

	service := snapshot.NewService(newCatalog())

	if snapshotDataset != "" {
		dataset, err := models.ParseDataset(snapshotDataset)
		if err != nil {
			return err
		}

		logger.Info().Str("dataset", string(dataset)).Str("format", snapshotFormat).Msg("starting snapshot")
		path, count, err := service.Export(dataset, outputDir, snapshotFormat)
		if err != nil {
			return fmt.Errorf("snapshot failed: %w", err)
		}
		logger.Info().Str("file", path).Int("documents", count).Msg("snapshot completed")
		return nil
	}

	logger.Info().Str("format", snapshotFormat).Msg("starting snapshot of all datasets")
	files, err := service.ExportAll(outputDir, snapshotFormat)
	if err != nil {
		return fmt.Errorf("snapshot failed: %w", err)
	}

	logger.Info().Int("files", len(files)).Msg("snapshot completed")
	for _, file := range files {
		logger.Info().Str("file", file).Msg("created")
	}
	return nil
}
