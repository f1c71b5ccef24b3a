package aggregator

import (
	"testing"

	"github.com/pable/go-lol-metrics/internal/model"
)

func TestQuantile_LinearInterpolation(t *testing.T) {
	sorted := []float64{1, 2, 3, 4}
	cases := []struct {
		q    float64
		want float64
	}{
		{0, 1},
		{0.25, 1.75},
		{0.5, 2.5},
		{0.75, 3.25},
		{1, 4},
	}
	for _, c := range cases {
		if got := quantile(sorted, c.q); !approx(got, c.want) {
			t.Errorf("quantile(%v, %.2f): got %.4f, want %.4f", sorted, c.q, got, c.want)
		}
	}
}

func TestStddev_Sample(t *testing.T) {
	vals := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	m := mean(vals)
	if !approx(m, 5) {
		t.Fatalf("mean: got %.4f, want 5", m)
	}
	// Sample variance is 32/7.
	if got := stddev(vals, m); !approx(got*got, 32.0/7.0) {
		t.Errorf("stddev: got %.6f, want sqrt(32/7)", got)
	}

	if got := stddev([]float64{3}, 3); got != 0 {
		t.Errorf("stddev of a single value: got %.4f, want 0", got)
	}
}

func TestSummary_CountsNonNullOnly(t *testing.T) {
	a := makeRow("g1", "a", "Ahri", "mid")
	b := makeRow("g2", "b", "Jinx", "bot")
	b.Kills = model.Null()

	summary := Summary([]model.MatchRecord{a, b})

	var kills *model.ColumnSummary
	for i := range summary {
		if summary[i].Column == "kills" {
			kills = &summary[i]
		}
	}
	if kills == nil {
		t.Fatal("kills column missing from summary")
	}
	if kills.Count != 1 {
		t.Errorf("expected count 1 for kills, got %d", kills.Count)
	}
	if !approx(kills.Mean, 4) {
		t.Errorf("expected mean 4 for kills, got %.4f", kills.Mean)
	}
}

func TestMissingData_SortedAndFiltered(t *testing.T) {
	a := makeRow("g1", "a", "Ahri", "mid")
	b := makeRow("g2", "b", "Jinx", "bot")
	a.VisionScore = model.Null()
	b.VisionScore = model.Null()
	b.WardsPlaced = model.Null()

	missing := MissingData([]model.MatchRecord{a, b})

	for _, m := range missing {
		if m.Column == "kills" {
			t.Error("fully populated column reported as missing")
		}
	}
	if len(missing) < 2 {
		t.Fatalf("expected at least 2 missing columns, got %d", len(missing))
	}
	if missing[0].Column != "visionscore" || !approx(missing[0].MissingPct, 100) {
		t.Errorf("expected visionscore at 100%% first, got %+v", missing[0])
	}
}

func TestMissingData_RawTableWithoutDerivedFields(t *testing.T) {
	// Raw rows carry no kda/kill_participation; a fully populated source
	// table must report nothing missing.
	a := makeRow("g1", "a", "Ahri", "mid")
	b := makeRow("g2", "b", "Jinx", "bot")
	a.KDA, a.KillParticipation = model.Null(), model.Null()
	b.KDA, b.KillParticipation = model.Null(), model.Null()

	if got := MissingData([]model.MatchRecord{a, b}); len(got) != 0 {
		t.Errorf("expected no missing columns on a full raw table, got %v", got)
	}
}

func TestMissingData_EmptyInput(t *testing.T) {
	if got := MissingData(nil); got != nil {
		t.Errorf("expected nil for empty input, got %v", got)
	}
}
