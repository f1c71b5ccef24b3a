package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-lol-metrics/internal/aggregator"
	"github.com/pable/go-lol-metrics/internal/report"
	"github.com/pable/go-lol-metrics/internal/storage"
)

var (
	championsYear int
	championsTop  int
)

var championsCmd = &cobra.Command{
	Use:   "champions",
	Short: "Show the champion meta for a stored season",
	Args:  cobra.NoArgs,
	RunE:  runChampions,
}

func init() {
	championsCmd.Flags().IntVar(&championsYear, "year", 0, "season to show (defaults to the configured current year)")
	championsCmd.Flags().IntVar(&championsTop, "top", 20, "rows to show")
}

func runChampions(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	year := championsYear
	if year == 0 {
		year = cfg.CurrentYear
	}

	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	rows, err := db.GetMatchRows(year)
	if err != nil {
		return fmt.Errorf("query match rows: %w", err)
	}
	if len(rows) == 0 {
		return fmt.Errorf("no stored results for %d; run 'lolmetrics analyze --year %d' first", year, year)
	}

	agg := aggregator.New(cfg.MinGamesThreshold)
	report.PrintChampionTable(os.Stdout, agg.ChampionView(rows), championsTop)
	return nil
}
