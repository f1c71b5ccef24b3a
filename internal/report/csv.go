package report

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pable/go-lol-metrics/internal/model"
)

// Output file names, one per aggregate view, overwritten each run.
const (
	SummaryFile     = "summary_statistics.csv"
	PlayerFile      = "player_performance.csv"
	ChampionFile    = "champion_meta.csv"
	PositionFile    = "position_metrics.csv"
	TeamFile        = "team_performance.csv"
	DurationFile    = "duration_breakdown.csv"
	CorrelationFile = "correlation_matrix.csv"
)

func f2(v float64) string { return strconv.FormatFloat(v, 'f', 4, 64) }

// WritePlayerCSV writes the player view to dir/player_performance.csv.
func WritePlayerCSV(dir string, stats []model.PlayerStats) error {
	rows := make([][]string, 0, len(stats))
	for _, s := range stats {
		rows = append(rows, []string{
			s.PlayerID, s.PlayerName, strconv.Itoa(s.Games),
			f2(s.AvgKills), f2(s.AvgDeaths), f2(s.AvgAssists), f2(s.AvgKDA),
			f2(s.AvgDPM), f2(s.AvgCSPM), f2(s.AvgVSPM), f2(s.WinRate),
		})
	}
	return writeCSV(filepath.Join(dir, PlayerFile), []string{
		"player_id", "player_name", "games_played", "avg_kills", "avg_deaths",
		"avg_assists", "avg_kda", "avg_dpm", "avg_cspm", "avg_vspm", "win_rate",
	}, rows)
}

// WriteChampionCSV writes the champion meta view to dir/champion_meta.csv.
func WriteChampionCSV(dir string, stats []model.ChampionStats) error {
	rows := make([][]string, 0, len(stats))
	for _, s := range stats {
		rows = append(rows, []string{
			s.Champion, strconv.Itoa(s.GamesPicked), f2(s.PickRate), f2(s.WinRate),
			f2(s.AvgKills), f2(s.AvgDeaths), f2(s.AvgAssists), f2(s.AvgKDA),
		})
	}
	return writeCSV(filepath.Join(dir, ChampionFile), []string{
		"champion", "games_picked", "pick_rate", "win_rate",
		"avg_kills", "avg_deaths", "avg_assists", "avg_kda",
	}, rows)
}

// WriteTeamCSV writes the team view to dir/team_performance.csv.
func WriteTeamCSV(dir string, stats []model.TeamStats) error {
	rows := make([][]string, 0, len(stats))
	for _, s := range stats {
		rows = append(rows, []string{
			s.TeamName, strconv.Itoa(s.Games), f2(s.WinRate),
			f2(s.AvgKills), f2(s.AvgDeaths), f2(s.AvgAssists),
			f2(s.AvgGold), f2(s.AvgDamage),
		})
	}
	return writeCSV(filepath.Join(dir, TeamFile), []string{
		"team", "games_played", "win_rate", "avg_kills", "avg_deaths",
		"avg_assists", "avg_gold", "avg_damage",
	}, rows)
}

// WritePositionCSV writes the per-role view to dir/position_metrics.csv.
func WritePositionCSV(dir string, stats []model.PositionStats) error {
	rows := make([][]string, 0, len(stats))
	for _, s := range stats {
		rows = append(rows, []string{
			s.Position, strconv.Itoa(s.Games),
			f2(s.AvgKills), f2(s.AvgDeaths), f2(s.AvgAssists), f2(s.AvgKDA),
			f2(s.AvgDPM), f2(s.AvgCSPM), f2(s.AvgVSPM),
			f2(s.AvgDamage), f2(s.AvgGold),
		})
	}
	return writeCSV(filepath.Join(dir, PositionFile), []string{
		"position", "games", "avg_kills", "avg_deaths", "avg_assists",
		"avg_kda", "avg_dpm", "avg_cspm", "avg_vspm", "avg_damage", "avg_gold",
	}, rows)
}

// WriteDurationCSV writes the duration-bucket view to dir/duration_breakdown.csv.
func WriteDurationCSV(dir string, stats []model.DurationStats) error {
	rows := make([][]string, 0, len(stats))
	for _, s := range stats {
		rows = append(rows, []string{
			s.Bucket, strconv.Itoa(s.Games),
			f2(s.AvgKills), f2(s.AvgGold), f2(s.AvgDamage), f2(s.AvgCS),
		})
	}
	return writeCSV(filepath.Join(dir, DurationFile), []string{
		"duration_category", "games", "avg_kills", "avg_gold", "avg_damage", "avg_cs",
	}, rows)
}

// WriteSummaryCSV writes describe()-style statistics to dir/summary_statistics.csv.
func WriteSummaryCSV(dir string, cols []model.ColumnSummary) error {
	rows := make([][]string, 0, len(cols))
	for _, c := range cols {
		rows = append(rows, []string{
			c.Column, strconv.Itoa(c.Count),
			f2(c.Mean), f2(c.Std), f2(c.Min), f2(c.P25), f2(c.Median), f2(c.P75), f2(c.Max),
		})
	}
	return writeCSV(filepath.Join(dir, SummaryFile), []string{
		"column", "count", "mean", "std", "min", "25%", "50%", "75%", "max",
	}, rows)
}

// WriteCorrelationCSV writes the metric correlation matrix to
// dir/correlation_matrix.csv. Undefined cells are left empty.
func WriteCorrelationCSV(dir string, c model.Correlation) error {
	header := make([]string, 0, len(c.Columns)+1)
	header = append(header, "")
	header = append(header, c.Columns...)

	rows := make([][]string, 0, len(c.Columns))
	for i, col := range c.Columns {
		row := make([]string, 0, len(c.Columns)+1)
		row = append(row, col)
		for _, v := range c.Matrix[i] {
			if math.IsNaN(v) {
				row = append(row, "")
			} else {
				row = append(row, f2(v))
			}
		}
		rows = append(rows, row)
	}
	return writeCSV(filepath.Join(dir, CorrelationFile), header, rows)
}

func writeCSV(path string, header []string, rows [][]string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create reports dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}
