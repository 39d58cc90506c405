package commands

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/pkordes/nc-news/backend/migrations"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long: `Run the embedded schema migrations.

Subcommands:
  up      - Apply pending migrations
  down    - Roll back the most recent migration
  status  - Show every migration and whether it is applied
  reset   - Roll back every migration`,
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withProvider(cmd.Context(), func(p *goose.Provider) error {
			results, err := p.Up(cmd.Context())
			if err != nil {
				return fmt.Errorf("migrate up: %w", err)
			}
			if len(results) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no pending migrations")
			}
			printResults(cmd.OutOrStdout(), results...)
			return nil
		})
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back the most recent migration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withProvider(cmd.Context(), func(p *goose.Provider) error {
			result, err := p.Down(cmd.Context())
			if err != nil {
				return fmt.Errorf("migrate down: %w", err)
			}
			printResults(cmd.OutOrStdout(), result)
			return nil
		})
	},
}

var migrateResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Roll back every migration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withProvider(cmd.Context(), func(p *goose.Provider) error {
			results, err := p.DownTo(cmd.Context(), 0)
			if err != nil {
				return fmt.Errorf("migrate reset: %w", err)
			}
			printResults(cmd.OutOrStdout(), results...)
			return nil
		})
	},
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show migration status",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withProvider(cmd.Context(), func(p *goose.Provider) error {
			statuses, err := p.Status(cmd.Context())
			if err != nil {
				return fmt.Errorf("migrate status: %w", err)
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "VERSION\tFILE\tSTATE\tAPPLIED AT")
			for _, s := range statuses {
				applied := "-"
				if !s.AppliedAt.IsZero() {
					applied = s.AppliedAt.Format("2006-01-02 15:04:05")
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", s.Source.Version, s.Source.Path, s.State, applied)
			}
			return w.Flush()
		})
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd, migrateResetCmd, migrateStatusCmd)
}

// withProvider opens dbURL through database/sql, which goose requires, and
// hands fn a provider over the embedded migrations.
func withProvider(ctx context.Context, fn func(*goose.Provider) error) error {
	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}

	p, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("create migration provider: %w", err)
	}
	return fn(p)
}

func printResults(w io.Writer, results ...*goose.MigrationResult) {
	for _, r := range results {
		if r == nil {
			continue
		}
		fmt.Fprintf(w, "%-4s %s (%s)\n", r.Direction, r.Source.Path, r.Duration.Round(time.Millisecond))
	}
}
