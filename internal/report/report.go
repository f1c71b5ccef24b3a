// Package report renders aggregate views: tablewriter consoles tables for
// interactive use, CSV files for downstream consumption. Pure consumer of
// aggregator output.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/pable/go-lol-metrics/internal/model"
)

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))
}

// PrintPlayerTable prints the top-N rows of the player view.
func PrintPlayerTable(w io.Writer, stats []model.PlayerStats, top int) {
	table := newTable(w)
	table.Header("PLAYER", "GAMES", "K", "D", "A", "KDA", "DPM", "CSPM", "VSPM", "WIN%")

	for _, s := range clampTop(len(stats), top, stats) {
		table.Append(
			s.PlayerName,
			strconv.Itoa(s.Games),
			fmt.Sprintf("%.1f", s.AvgKills),
			fmt.Sprintf("%.1f", s.AvgDeaths),
			fmt.Sprintf("%.1f", s.AvgAssists),
			fmt.Sprintf("%.2f", s.AvgKDA),
			fmt.Sprintf("%.0f", s.AvgDPM),
			fmt.Sprintf("%.1f", s.AvgCSPM),
			fmt.Sprintf("%.2f", s.AvgVSPM),
			fmt.Sprintf("%.0f%%", s.WinRate),
		)
	}
	table.Render()
}

// PrintChampionTable prints the top-N rows of the champion meta view.
func PrintChampionTable(w io.Writer, stats []model.ChampionStats, top int) {
	table := newTable(w)
	table.Header("CHAMPION", "PICKS", "PICK%", "WIN%", "K", "D", "A", "KDA")

	for _, s := range clampTop(len(stats), top, stats) {
		table.Append(
			s.Champion,
			strconv.Itoa(s.GamesPicked),
			fmt.Sprintf("%.1f%%", s.PickRate),
			fmt.Sprintf("%.0f%%", s.WinRate),
			fmt.Sprintf("%.1f", s.AvgKills),
			fmt.Sprintf("%.1f", s.AvgDeaths),
			fmt.Sprintf("%.1f", s.AvgAssists),
			fmt.Sprintf("%.2f", s.AvgKDA),
		)
	}
	table.Render()
}

// PrintTeamTable prints the top-N rows of the team view.
func PrintTeamTable(w io.Writer, stats []model.TeamStats, top int) {
	table := newTable(w)
	table.Header("TEAM", "GAMES", "WIN%", "K", "D", "A", "GOLD", "DAMAGE")

	for _, s := range clampTop(len(stats), top, stats) {
		table.Append(
			s.TeamName,
			strconv.Itoa(s.Games),
			fmt.Sprintf("%.0f%%", s.WinRate),
			fmt.Sprintf("%.1f", s.AvgKills),
			fmt.Sprintf("%.1f", s.AvgDeaths),
			fmt.Sprintf("%.1f", s.AvgAssists),
			fmt.Sprintf("%.0f", s.AvgGold),
			fmt.Sprintf("%.0f", s.AvgDamage),
		)
	}
	table.Render()
}

// PrintPositionTable prints the per-role view.
func PrintPositionTable(w io.Writer, stats []model.PositionStats) {
	table := newTable(w)
	table.Header("POSITION", "GAMES", "K", "D", "A", "KDA", "DPM", "CSPM", "VSPM", "DAMAGE", "GOLD")

	for _, s := range stats {
		table.Append(
			s.Position,
			strconv.Itoa(s.Games),
			fmt.Sprintf("%.1f", s.AvgKills),
			fmt.Sprintf("%.1f", s.AvgDeaths),
			fmt.Sprintf("%.1f", s.AvgAssists),
			fmt.Sprintf("%.2f", s.AvgKDA),
			fmt.Sprintf("%.0f", s.AvgDPM),
			fmt.Sprintf("%.1f", s.AvgCSPM),
			fmt.Sprintf("%.2f", s.AvgVSPM),
			fmt.Sprintf("%.0f", s.AvgDamage),
			fmt.Sprintf("%.0f", s.AvgGold),
		)
	}
	table.Render()
}

// PrintDurationTable prints the duration-bucket view.
func PrintDurationTable(w io.Writer, stats []model.DurationStats) {
	table := newTable(w)
	table.Header("DURATION", "GAMES", "KILLS", "GOLD", "DAMAGE", "CS")

	for _, s := range stats {
		table.Append(
			s.Bucket,
			strconv.Itoa(s.Games),
			fmt.Sprintf("%.1f", s.AvgKills),
			fmt.Sprintf("%.0f", s.AvgGold),
			fmt.Sprintf("%.0f", s.AvgDamage),
			fmt.Sprintf("%.0f", s.AvgCS),
		)
	}
	table.Render()
}

// PrintSummaryTable prints describe()-style statistics per numeric column.
func PrintSummaryTable(w io.Writer, cols []model.ColumnSummary) {
	table := newTable(w)
	table.Header("COLUMN", "COUNT", "MEAN", "STD", "MIN", "25%", "50%", "75%", "MAX")

	for _, c := range cols {
		table.Append(
			c.Column,
			strconv.Itoa(c.Count),
			fmt.Sprintf("%.2f", c.Mean),
			fmt.Sprintf("%.2f", c.Std),
			fmt.Sprintf("%.2f", c.Min),
			fmt.Sprintf("%.2f", c.P25),
			fmt.Sprintf("%.2f", c.Median),
			fmt.Sprintf("%.2f", c.P75),
			fmt.Sprintf("%.2f", c.Max),
		)
	}
	table.Render()
}

// PrintMissingTable prints the null share of source columns that have any.
func PrintMissingTable(w io.Writer, cols []model.MissingColumn) {
	table := newTable(w)
	table.Header("COLUMN", "MISSING", "MISSING %")

	for _, c := range cols {
		table.Append(
			c.Column,
			strconv.Itoa(c.Missing),
			fmt.Sprintf("%.2f", c.MissingPct),
		)
	}
	table.Render()
}

// clampTop returns the first top elements, or all of them when top <= 0 or
// exceeds the slice.
func clampTop[T any](n, top int, s []T) []T {
	if top <= 0 || top > n {
		return s
	}
	return s[:top]
}
