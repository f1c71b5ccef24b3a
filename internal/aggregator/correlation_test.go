package aggregator

import (
	"math"
	"testing"

	"github.com/pable/go-lol-metrics/internal/model"
)

// makeCorrRows builds rows where kills rises linearly, assists tracks kills
// exactly and deaths falls linearly, giving known perfect correlations.
func makeCorrRows(n int) []model.MatchRecord {
	rows := make([]model.MatchRecord, 0, n)
	for i := 0; i < n; i++ {
		r := makeRow("g"+string(rune('0'+i)), "p", "Ahri", "mid")
		r.Kills = model.Num(float64(i))
		r.Assists = model.Num(float64(2 * i))
		r.Deaths = model.Num(float64(10 - i))
		rows = append(rows, r)
	}
	return rows
}

func colIndex(t *testing.T, c model.Correlation, name string) int {
	t.Helper()
	for i, col := range c.Columns {
		if col == name {
			return i
		}
	}
	t.Fatalf("column %s not in correlation matrix", name)
	return -1
}

func TestCorrelation_PerfectPairs(t *testing.T) {
	c := Correlation(makeCorrRows(5))

	k := colIndex(t, c, "kills")
	a := colIndex(t, c, "assists")
	d := colIndex(t, c, "deaths")

	if !approx(c.Matrix[k][a], 1) {
		t.Errorf("kills/assists: expected r=1, got %.4f", c.Matrix[k][a])
	}
	if !approx(c.Matrix[k][d], -1) {
		t.Errorf("kills/deaths: expected r=-1, got %.4f", c.Matrix[k][d])
	}
	if !approx(c.Matrix[k][k], 1) {
		t.Errorf("diagonal: expected r=1, got %.4f", c.Matrix[k][k])
	}
	if c.Matrix[a][k] != c.Matrix[k][a] {
		t.Error("matrix is not symmetric")
	}
}

func TestCorrelation_NullsSkippedPairwise(t *testing.T) {
	rows := makeCorrRows(5)
	// One null kill: the kills/assists pair drops that row only and the
	// remaining points still lie on the same line.
	rows[2].Kills = model.Null()

	c := Correlation(rows)
	k := colIndex(t, c, "kills")
	a := colIndex(t, c, "assists")
	if !approx(c.Matrix[k][a], 1) {
		t.Errorf("expected r=1 over the non-null pairs, got %.4f", c.Matrix[k][a])
	}
}

func TestCorrelation_ZeroVarianceIsNaN(t *testing.T) {
	// makeRow gives every row the same dpm, so dpm has no variance.
	c := Correlation(makeCorrRows(5))
	k := colIndex(t, c, "kills")
	dpm := colIndex(t, c, "dpm")

	if !math.IsNaN(c.Matrix[k][dpm]) {
		t.Errorf("expected NaN for a zero-variance column, got %.4f", c.Matrix[k][dpm])
	}
	if !math.IsNaN(c.Matrix[dpm][dpm]) {
		t.Errorf("expected NaN on the zero-variance diagonal, got %.4f", c.Matrix[dpm][dpm])
	}
}

func TestCorrelation_TooFewRows(t *testing.T) {
	c := Correlation(makeCorrRows(1))
	for i := range c.Matrix {
		for j := range c.Matrix[i] {
			if !math.IsNaN(c.Matrix[i][j]) {
				t.Fatalf("expected all-NaN matrix for a single row, got %.4f at [%d][%d]", c.Matrix[i][j], i, j)
			}
		}
	}
}
