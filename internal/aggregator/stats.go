package aggregator

import (
	"math"
	"sort"

	"github.com/pable/go-lol-metrics/internal/model"
)

// numericColumns drives the summary-statistics and missing-data views, in
// output order. Names match the source column names.
var numericColumns = []metric{
	{"kills", num(func(r *model.MatchRecord) nf { return r.Kills })},
	{"deaths", num(func(r *model.MatchRecord) nf { return r.Deaths })},
	{"assists", num(func(r *model.MatchRecord) nf { return r.Assists })},
	{"teamkills", num(func(r *model.MatchRecord) nf { return r.TeamKills })},
	{"kda", num(func(r *model.MatchRecord) nf { return r.KDA })},
	{"kill_participation", num(func(r *model.MatchRecord) nf { return r.KillParticipation })},
	{"gamelength", num(func(r *model.MatchRecord) nf { return r.Gamelength })},
	{"result", num(func(r *model.MatchRecord) nf { return r.Result })},
	{"totalgold", num(func(r *model.MatchRecord) nf { return r.TotalGold })},
	{"earnedgold", num(func(r *model.MatchRecord) nf { return r.EarnedGold })},
	{"earned gpm", num(func(r *model.MatchRecord) nf { return r.EarnedGPM })},
	{"damagetochampions", num(func(r *model.MatchRecord) nf { return r.DamageToChampions })},
	{"dpm", num(func(r *model.MatchRecord) nf { return r.DPM })},
	{"damageshare", num(func(r *model.MatchRecord) nf { return r.DamageShare })},
	{"wardsplaced", num(func(r *model.MatchRecord) nf { return r.WardsPlaced })},
	{"visionscore", num(func(r *model.MatchRecord) nf { return r.VisionScore })},
	{"vspm", num(func(r *model.MatchRecord) nf { return r.VSPM })},
	{"total cs", num(func(r *model.MatchRecord) nf { return r.TotalCS })},
	{"cspm", num(func(r *model.MatchRecord) nf { return r.CSPM })},
	{"goldat10", num(func(r *model.MatchRecord) nf { return r.GoldAt10 })},
	{"golddiffat10", num(func(r *model.MatchRecord) nf { return r.GoldDiffAt10 })},
	{"csdiffat10", num(func(r *model.MatchRecord) nf { return r.CSDiffAt10 })},
}

// Summary computes describe()-style statistics for every numeric column:
// non-null count, mean, sample standard deviation, min, quartiles, max.
func Summary(rows []model.MatchRecord) []model.ColumnSummary {
	out := make([]model.ColumnSummary, 0, len(numericColumns))
	for _, col := range numericColumns {
		vals := make([]float64, 0, len(rows))
		for i := range rows {
			if v, ok := col.value(&rows[i]); ok {
				vals = append(vals, v)
			}
		}
		cs := model.ColumnSummary{Column: col.name, Count: len(vals)}
		if len(vals) > 0 {
			sort.Float64s(vals)
			cs.Mean = mean(vals)
			cs.Std = stddev(vals, cs.Mean)
			cs.Min = vals[0]
			cs.P25 = quantile(vals, 0.25)
			cs.Median = quantile(vals, 0.5)
			cs.P75 = quantile(vals, 0.75)
			cs.Max = vals[len(vals)-1]
		}
		out = append(out, cs)
	}
	return out
}

// derivedMetrics are attached by the cleaner and never appear in the source
// table; the missing-data view skips them.
var derivedMetrics = map[string]struct{}{
	"kda":                {},
	"kill_participation": {},
}

// MissingData reports, for each source numeric column, how many cells of the
// raw table are null. Columns with no missing values are omitted; output is
// sorted by missing share descending.
func MissingData(rows []model.MatchRecord) []model.MissingColumn {
	if len(rows) == 0 {
		return nil
	}
	var out []model.MissingColumn
	for _, col := range numericColumns {
		if _, derived := derivedMetrics[col.name]; derived {
			continue
		}
		missing := 0
		for i := range rows {
			if _, ok := col.value(&rows[i]); !ok {
				missing++
			}
		}
		if missing == 0 {
			continue
		}
		out = append(out, model.MissingColumn{
			Column:     col.name,
			Missing:    missing,
			MissingPct: float64(missing) / float64(len(rows)) * 100,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].MissingPct != out[j].MissingPct {
			return out[i].MissingPct > out[j].MissingPct
		}
		return out[i].Column < out[j].Column
	})
	return out
}

func mean(vals []float64) float64 {
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

// stddev is the sample standard deviation (n-1 denominator). Zero for fewer
// than two values.
func stddev(vals []float64, m float64) float64 {
	if len(vals) < 2 {
		return 0
	}
	sum := 0.0
	for _, v := range vals {
		d := v - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(vals)-1))
}

// quantile returns the q-th quantile of a pre-sorted slice using linear
// interpolation between closest ranks.
func quantile(sorted []float64, q float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return sorted[0]
	}
	pos := q * float64(n-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
