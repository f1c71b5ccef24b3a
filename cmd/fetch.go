package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-lol-metrics/internal/loader"
)

// fetch command flags.
var (
	// fetchYear selects the season export to download.
	fetchYear int
	// fetchForce re-downloads even when a cached copy exists.
	fetchForce bool
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download a season's match export into the local cache",
	Long: `Downloads the Oracle's Elixir match export for a season and caches it
under the configured data directory. Later commands read the cache, so this
is the only command that needs network access.

Examples:
  lolmetrics fetch --year 2025
  lolmetrics fetch --year 2024 --force`,
	Args: cobra.NoArgs,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().IntVar(&fetchYear, "year", 0, "season to fetch (defaults to the configured current year)")
	fetchCmd.Flags().BoolVar(&fetchForce, "force", false, "re-download even if a cached copy exists")
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	year := fetchYear
	if year == 0 {
		year = cfg.CurrentYear
	}

	l := loader.New(cfg, logger)
	path, err := l.Fetch(cmd.Context(), year, fetchForce)
	if err != nil {
		return fmt.Errorf("fetch %d: %w", year, err)
	}

	fmt.Fprintf(os.Stdout, "Cached %d match export at %s\n", year, path)
	return nil
}
