package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-lol-metrics/internal/aggregator"
	"github.com/pable/go-lol-metrics/internal/report"
	"github.com/pable/go-lol-metrics/internal/storage"
)

var summaryYear int

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show describe()-style statistics for a stored season",
	Args:  cobra.NoArgs,
	RunE:  runSummary,
}

func init() {
	summaryCmd.Flags().IntVar(&summaryYear, "year", 0, "season to show (defaults to the configured current year)")
}

func runSummary(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	year := summaryYear
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

	fmt.Fprintf(os.Stdout, "Numeric column statistics (%d season, %d rows):\n", year, len(rows))
	report.PrintSummaryTable(os.Stdout, aggregator.Summary(rows))

	missing := aggregator.MissingData(rows)
	if len(missing) > 0 {
		fmt.Fprintln(os.Stdout, "\nColumns with missing values:")
		report.PrintMissingTable(os.Stdout, missing)
	}
	return nil
}
