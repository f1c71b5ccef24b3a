package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-lol-metrics/internal/report"
	"github.com/pable/go-lol-metrics/internal/storage"
)

var (
	playersYear int
	playersTop  int
)

var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "Show stored player performance for a season",
	Args:  cobra.NoArgs,
	RunE:  runPlayers,
}

func init() {
	playersCmd.Flags().IntVar(&playersYear, "year", 0, "season to show (defaults to the configured current year)")
	playersCmd.Flags().IntVar(&playersTop, "top", 20, "rows to show")
}

func runPlayers(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	year := playersYear
	if year == 0 {
		year = cfg.CurrentYear
	}

	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	stats, err := db.GetPlayerStats(year)
	if err != nil {
		return fmt.Errorf("query player stats: %w", err)
	}
	if len(stats) == 0 {
		return fmt.Errorf("no stored results for %d; run 'lolmetrics analyze --year %d' first", year, year)
	}

	report.PrintPlayerTable(os.Stdout, stats, playersTop)
	return nil
}
