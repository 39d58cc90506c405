// Package commands implements the newsctl subcommands.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pkordes/nc-news/backend/internal/config"
)

var (
	// Global flags
	dbURL string
)

var rootCmd = &cobra.Command{
	Use:   "newsctl",
	Short: "Administer the NC News database",
	Long: `newsctl manages the NC News Postgres schema and its data.

The database is taken from --db, or from DATABASE_URL (a .env file in the
working directory is honoured).`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if dbURL != "" {
			return nil
		}
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("no --db given: %w", err)
		}
		dbURL = cfg.DatabaseURL
		return nil
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbURL, "db", "", "Postgres connection URL (defaults to DATABASE_URL)")
}
