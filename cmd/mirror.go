package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"hermes/internal/database"
	"hermes/internal/models"

	"github.com/spf13/cobra"
)

var (
	dbURI            string
	dbName           string
	skipConfirmation bool
)

var mirrorCmd = &cobra.Command{
	Use:   "mirror",
	Short: "Publish both tables to MongoDB",
	Long: `Publish the normalized tables to the MongoDB collections "transferencia"
and "phaseout". Existing collections are dropped and rewritten; the source
files stay the system of record.`,
	RunE: runMirror,
}

func init() {
	mirrorCmd.Flags().StringVarP(&dbURI, "db-uri", "u", "mongodb://localhost:27017", "MongoDB connection URI (overrides DB_URI)")
	mirrorCmd.Flags().StringVarP(&dbName, "database", "d", "hermes", "Database name (overrides DB_NAME)")
	mirrorCmd.Flags().BoolVar(&skipConfirmation, "yes", false, "Skip confirmation prompts")
	rootCmd.AddCommand(mirrorCmd)
}

func runMirror(cmd *cobra.Command, args []string) error {
	if cmd.Flags().Changed("db-uri") {
		cfg.DBURI = dbURI
	}
	if cmd.Flags().Changed("database") {
		cfg.DBName = dbName
	}

	catalog := newCatalog()

	// Parse everything before touching the database so a bad table never
	// leaves a collection dropped.
	documents := make(map[models.Dataset][]interface{})
	for _, dataset := range models.Datasets() {
		docs, err := catalog.Documents(dataset)
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", dataset, err)
		}
		documents[dataset] = docs
		logger.Info().Str("dataset", string(dataset)).Int("rows", len(docs)).Msg("parsed table")
	}

	if !skipConfirmation {
		fmt.Printf("About to replace collections %q and %q in database %q.\n", models.Transfer, models.Phaseout, cfg.DBName)
		if !confirmAction("Do you want to continue?") {
			logger.Info().Msg("mirror cancelled")
			return nil
		}
	}

	db, err := database.NewMongoDB(cfg.DBURI, cfg.DBName, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	for _, dataset := range models.Datasets() {
		inserted, err := db.ReplaceCollection(ctx, string(dataset), documents[dataset])
		if err != nil {
			return fmt.Errorf("failed to mirror %s: %w", dataset, err)
		}
		count, err := db.Count(ctx, string(dataset))
		if err != nil {
			return err
		}
		logger.Info().
			Str("collection", string(dataset)).
			Int("inserted", inserted).
			Int64("count", count).
			Msg("collection replaced")
	}

	return nil
}

func confirmAction(message string) bool {
	fmt.Printf("%s (y/N): ", message)
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}
