package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-lol-metrics/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all analyzed seasons",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	datasets, err := db.ListDatasets()
	if err != nil {
		return fmt.Errorf("list datasets: %w", err)
	}
	if len(datasets) == 0 {
		fmt.Fprintln(os.Stdout, "No seasons analyzed yet. Run 'lolmetrics analyze' to add one.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-6s  %8s  %8s  %-20s  %s\n",
		"YEAR", "RAW", "CLEAN", "LOADED AT", "SOURCE")
	fmt.Fprintf(os.Stdout, "%-6s  %8s  %8s  %-20s  %s\n",
		"──────", "────────", "────────", "────────────────────", "──────")
	for _, d := range datasets {
		fmt.Fprintf(os.Stdout, "%-6d  %8d  %8d  %-20s  %s\n",
			d.Year, d.RawRows, d.CleanRows, d.LoadedAt, d.SourcePath)
	}
	return nil
}
