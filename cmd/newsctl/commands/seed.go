package commands

import (
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/pkordes/nc-news/backend/internal/seed"
)

var (
	// Seed flags
	fakeArticles int
	fakeSeed     int64
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Replace all data with a seed dataset",
	Long: `Truncate every table and load a dataset. Article and comment IDs restart at 1.

Examples:
  newsctl seed                 # load the fixed test dataset
  newsctl seed --fake 500      # load 500 generated articles
  newsctl seed --fake 500 --fake-seed 7`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if fakeArticles < 0 {
			return fmt.Errorf("--fake must not be negative, got %d", fakeArticles)
		}

		data := seed.TestData()
		if fakeArticles > 0 {
			data = seed.Fake(fakeArticles, fakeSeed)
		}

		ctx := cmd.Context()
		pool, err := pgxpool.New(ctx, dbURL)
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		defer pool.Close()

		start := time.Now()
		if err := seed.Run(ctx, pool, data); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "seeded %d topics, %d users, %d articles, %d comments in %s\n",
			len(data.Topics), len(data.Users), len(data.Articles), len(data.Comments),
			time.Since(start).Round(time.Millisecond))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
	seedCmd.Flags().IntVar(&fakeArticles, "fake", 0, "Generate this many articles instead of the fixed dataset")
	seedCmd.Flags().Int64Var(&fakeSeed, "fake-seed", time.Now().UnixNano(), "Random seed for --fake")
}
