// Package chart renders the analysis views as PNG bar charts.
package chart

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"sort"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/pable/go-lol-metrics/internal/model"
)

const maxBars = 15

// Renderer writes PNG figures into a single output directory.
type Renderer struct {
	dir    string
	width  int
	height int
	log    *slog.Logger
}

func New(dir string, width, height int, log *slog.Logger) *Renderer {
	return &Renderer{dir: dir, width: width, height: height, log: log}
}

// TopPlayersKDA renders the leading players by average KDA.
func (r *Renderer) TopPlayersKDA(stats []model.PlayerStats) error {
	vals := make([]chart.Value, 0, maxBars)
	for _, s := range stats {
		if len(vals) == maxBars {
			break
		}
		vals = append(vals, chart.Value{Label: s.PlayerName, Value: s.AvgKDA})
	}
	return r.render("top_players_kda.png", "Top Players by Average KDA", vals)
}

// ChampionPickRate renders the most-picked champions by pick rate.
func (r *Renderer) ChampionPickRate(stats []model.ChampionStats) error {
	vals := make([]chart.Value, 0, maxBars)
	for _, s := range stats {
		if len(vals) == maxBars {
			break
		}
		vals = append(vals, chart.Value{Label: s.Champion, Value: s.PickRate})
	}
	return r.render("champion_pickrate.png", "Champion Pick Rate (%)", vals)
}

// PositionComparison renders average KDA per role.
func (r *Renderer) PositionComparison(stats []model.PositionStats) error {
	vals := make([]chart.Value, 0, len(stats))
	for _, s := range stats {
		vals = append(vals, chart.Value{Label: s.Position, Value: s.AvgKDA})
	}
	return r.render("position_comparison.png", "Average KDA by Position", vals)
}

// DurationImpact renders average kills per game-length bucket.
func (r *Renderer) DurationImpact(stats []model.DurationStats) error {
	vals := make([]chart.Value, 0, len(stats))
	for _, s := range stats {
		vals = append(vals, chart.Value{Label: s.Bucket, Value: s.AvgKills})
	}
	return r.render("game_duration_impact.png", "Average Kills by Game Duration", vals)
}

// CorrelationHeatmap renders the correlation matrix. There is no heatmap
// primitive here, so the artifact ranks the strongest metric pairs by
// absolute correlation instead.
func (r *Renderer) CorrelationHeatmap(c model.Correlation) error {
	type pair struct {
		label string
		abs   float64
	}
	var pairs []pair
	for i := range c.Columns {
		for j := i + 1; j < len(c.Columns); j++ {
			v := c.Matrix[i][j]
			if math.IsNaN(v) {
				continue
			}
			pairs = append(pairs, pair{c.Columns[i] + "/" + c.Columns[j], math.Abs(v)})
		}
	}
	sort.Slice(pairs, func(a, b int) bool { return pairs[a].abs > pairs[b].abs })

	vals := make([]chart.Value, 0, maxBars)
	for _, p := range pairs {
		if len(vals) == maxBars {
			break
		}
		vals = append(vals, chart.Value{Label: p.label, Value: p.abs})
	}
	return r.render("correlation_heatmap.png", "Strongest Metric Correlations (|r|)", vals)
}

// MissingData renders the null share of the worst source columns.
func (r *Renderer) MissingData(cols []model.MissingColumn) error {
	vals := make([]chart.Value, 0, maxBars)
	for _, c := range cols {
		if len(vals) == maxBars {
			break
		}
		vals = append(vals, chart.Value{Label: c.Column, Value: c.MissingPct})
	}
	return r.render("missing_data_analysis.png", "Missing Data by Column (%)", vals)
}

func (r *Renderer) render(name, title string, vals []chart.Value) error {
	if len(vals) == 0 {
		r.log.Warn("skipping figure, no data", "figure", name)
		return nil
	}
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return fmt.Errorf("create figures dir: %w", err)
	}

	graph := chart.BarChart{
		Title:    title,
		Width:    r.width,
		Height:   r.height,
		BarWidth: max(r.width/(2*len(vals)), 10),
		Bars:     vals,
		XAxis:    chart.Style{TextRotationDegrees: 45},
	}

	path := filepath.Join(r.dir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := graph.Render(chart.PNG, f); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	return nil
}
