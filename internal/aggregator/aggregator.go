// Package aggregator computes the fixed aggregate views over the cleaned
// match table. All five views share one grouping routine: a key function,
// a metric set, and null-skipping means.
package aggregator

import (
	"database/sql"
	"sort"

	"github.com/pable/go-lol-metrics/internal/model"
)

// Aggregator holds the minimum-sample-size threshold applied to the player
// and team views. Champion, position and duration views are unfiltered.
type Aggregator struct {
	threshold int
}

// New returns an Aggregator with the given minimum-games threshold.
func New(threshold int) *Aggregator {
	return &Aggregator{threshold: threshold}
}

// nf is shorthand for the nullable column type used throughout the metric sets.
type nf = sql.NullFloat64

// metric is a named numeric accessor over a record. The bool result marks
// null values, which are skipped by the mean but still counted in the group.
type metric struct {
	name  string
	value func(*model.MatchRecord) (float64, bool)
}

// num adapts a NullFloat64 field accessor into a metric value function.
func num(get func(*model.MatchRecord) sql.NullFloat64) func(*model.MatchRecord) (float64, bool) {
	return func(r *model.MatchRecord) (float64, bool) {
		v := get(r)
		return v.Float64, v.Valid
	}
}

// group accumulates one grouping key: total row count plus per-metric sums
// over non-null values.
type group struct {
	key   string
	label string
	count int
	sums  []float64
	ns    []int
}

// mean returns the null-skipping mean of metric i, or 0 when every value in
// the group was null.
func (g *group) mean(i int) float64 {
	if g.ns[i] == 0 {
		return 0
	}
	return g.sums[i] / float64(g.ns[i])
}

// groupBy groups rows by keyFn and accumulates the metric set. Rows where
// keyFn reports !ok are excluded. Groups come back sorted by key so output
// is deterministic before any view-specific re-sort.
func groupBy(rows []model.MatchRecord, keyFn func(*model.MatchRecord) (key, label string, ok bool), metrics []metric) []*group {
	byKey := make(map[string]*group)
	for i := range rows {
		r := &rows[i]
		key, label, ok := keyFn(r)
		if !ok {
			continue
		}
		g := byKey[key]
		if g == nil {
			g = &group{
				key:   key,
				label: label,
				sums:  make([]float64, len(metrics)),
				ns:    make([]int, len(metrics)),
			}
			byKey[key] = g
		}
		g.count++
		for mi, m := range metrics {
			if v, valid := m.value(r); valid {
				g.sums[mi] += v
				g.ns[mi]++
			}
		}
	}

	out := make([]*group, 0, len(byKey))
	for _, g := range byKey {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].key < out[j].key })
	return out
}

// distinctGames counts unique game ids across the table.
func distinctGames(rows []model.MatchRecord) int {
	seen := make(map[string]struct{}, len(rows)/10+1)
	for i := range rows {
		if rows[i].GameID == "" {
			continue
		}
		seen[rows[i].GameID] = struct{}{}
	}
	return len(seen)
}
