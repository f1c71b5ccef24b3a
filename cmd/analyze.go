package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pable/go-lol-metrics/internal/aggregator"
	"github.com/pable/go-lol-metrics/internal/chart"
	"github.com/pable/go-lol-metrics/internal/cleaner"
	"github.com/pable/go-lol-metrics/internal/loader"
	"github.com/pable/go-lol-metrics/internal/model"
	"github.com/pable/go-lol-metrics/internal/report"
	"github.com/pable/go-lol-metrics/internal/storage"
)

// analyze command flags.
var (
	analyzeYear    int
	analyzeOffline bool
	analyzeTop     int
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the full analysis pipeline for a season",
	Long: `Loads a season's match export, cleans it, computes the aggregate views
and writes CSV reports plus PNG figures under the output directory. Player
results are also stored in the local database for later querying.

Examples:
  lolmetrics analyze --year 2025
  lolmetrics analyze --year 2024 --offline --top 10`,
	Args: cobra.NoArgs,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().IntVar(&analyzeYear, "year", 0, "season to analyze (defaults to the configured current year)")
	analyzeCmd.Flags().BoolVar(&analyzeOffline, "offline", false, "fail instead of downloading when the cache is missing")
	analyzeCmd.Flags().IntVar(&analyzeTop, "top", 20, "rows to show in the console tables")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	year := analyzeYear
	if year == 0 {
		year = cfg.CurrentYear
	}

	l := loader.New(cfg, logger)
	rows, schema, err := l.Load(cmd.Context(), year, analyzeOffline)
	if err != nil {
		return fmt.Errorf("load %d: %w", year, err)
	}
	logger.Info("loaded match export", "year", year, "rows", schema.Rows, "columns", len(schema.Columns))
	if len(schema.Missing) > 0 {
		logger.Warn("export is missing expected columns", "columns", schema.Missing)
	}

	missing := aggregator.MissingData(rows)

	clean, cr := cleaner.Clean(rows)
	logger.Info("cleaned rows", "in", cr.RowsIn, "out", cr.RowsOut,
		"team_rows", cr.TeamRows, "missing_key", cr.MissingKey)
	if len(clean) == 0 {
		// Empty outputs still get written; figures are skipped per view.
		logger.Warn("no player rows left after cleaning", "in", cr.RowsIn)
	}

	agg := aggregator.New(cfg.MinGamesThreshold)
	players := agg.PlayerView(clean)
	champions := agg.ChampionView(clean)
	teams := agg.TeamView(clean)
	positions := agg.PositionView(clean)
	durations := agg.DurationView(clean)
	summary := aggregator.Summary(clean)
	corr := aggregator.Correlation(clean)

	if err := writeReports(cfg.ReportsDir(), players, champions, teams, positions, durations, summary, corr); err != nil {
		return err
	}
	logger.Info("wrote CSV reports", "dir", cfg.ReportsDir())

	r := chart.New(cfg.FiguresDir(), cfg.ChartWidth, cfg.ChartHeight, logger)
	if err := renderFigures(r, players, champions, positions, durations, corr, missing); err != nil {
		return err
	}
	logger.Info("wrote figures", "dir", cfg.FiguresDir())

	if err := persist(year, cfg.CachePath(year), cr, clean, players); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "\nTop players (%d season):\n", year)
	report.PrintPlayerTable(os.Stdout, players, analyzeTop)
	fmt.Fprintln(os.Stdout, "\nChampion meta:")
	report.PrintChampionTable(os.Stdout, champions, analyzeTop)
	fmt.Fprintln(os.Stdout, "\nTeam performance:")
	report.PrintTeamTable(os.Stdout, teams, analyzeTop)
	fmt.Fprintln(os.Stdout, "\nPosition metrics:")
	report.PrintPositionTable(os.Stdout, positions)
	fmt.Fprintln(os.Stdout, "\nGame duration impact:")
	report.PrintDurationTable(os.Stdout, durations)
	return nil
}

func writeReports(dir string,
	players []model.PlayerStats, champions []model.ChampionStats,
	teams []model.TeamStats, positions []model.PositionStats,
	durations []model.DurationStats, summary []model.ColumnSummary,
	corr model.Correlation,
) error {
	if err := report.WritePlayerCSV(dir, players); err != nil {
		return fmt.Errorf("write player report: %w", err)
	}
	if err := report.WriteChampionCSV(dir, champions); err != nil {
		return fmt.Errorf("write champion report: %w", err)
	}
	if err := report.WriteTeamCSV(dir, teams); err != nil {
		return fmt.Errorf("write team report: %w", err)
	}
	if err := report.WritePositionCSV(dir, positions); err != nil {
		return fmt.Errorf("write position report: %w", err)
	}
	if err := report.WriteDurationCSV(dir, durations); err != nil {
		return fmt.Errorf("write duration report: %w", err)
	}
	if err := report.WriteSummaryCSV(dir, summary); err != nil {
		return fmt.Errorf("write summary report: %w", err)
	}
	if err := report.WriteCorrelationCSV(dir, corr); err != nil {
		return fmt.Errorf("write correlation report: %w", err)
	}
	return nil
}

func renderFigures(r *chart.Renderer,
	players []model.PlayerStats, champions []model.ChampionStats,
	positions []model.PositionStats, durations []model.DurationStats,
	corr model.Correlation, missing []model.MissingColumn,
) error {
	if err := r.TopPlayersKDA(players); err != nil {
		return err
	}
	if err := r.ChampionPickRate(champions); err != nil {
		return err
	}
	if err := r.PositionComparison(positions); err != nil {
		return err
	}
	if err := r.DurationImpact(durations); err != nil {
		return err
	}
	if err := r.CorrelationHeatmap(corr); err != nil {
		return err
	}
	return r.MissingData(missing)
}

func persist(year int, source string, cr cleaner.Report, clean []model.MatchRecord, players []model.PlayerStats) error {
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	if exists, err := db.DatasetExists(year); err == nil && exists {
		logger.Info("replacing stored results", "year", year)
	}

	ds := model.DatasetSummary{
		Year:       year,
		SourcePath: source,
		RawRows:    cr.RowsIn,
		CleanRows:  cr.RowsOut,
		LoadedAt:   time.Now().UTC().Format(time.RFC3339),
	}
	if err := db.UpsertDataset(ds); err != nil {
		return fmt.Errorf("store dataset: %w", err)
	}
	if err := db.InsertMatchRows(year, clean); err != nil {
		return fmt.Errorf("store match rows: %w", err)
	}
	if err := db.InsertPlayerStats(year, players); err != nil {
		return fmt.Errorf("store player stats: %w", err)
	}
	return nil
}
