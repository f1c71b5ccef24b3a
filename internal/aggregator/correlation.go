package aggregator

import (
	"math"

	"github.com/pable/go-lol-metrics/internal/model"
)

// correlationColumns is the fixed metric set the correlation matrix covers.
var correlationColumns = []metric{
	{"kills", num(func(r *model.MatchRecord) nf { return r.Kills })},
	{"deaths", num(func(r *model.MatchRecord) nf { return r.Deaths })},
	{"assists", num(func(r *model.MatchRecord) nf { return r.Assists })},
	{"kda", num(func(r *model.MatchRecord) nf { return r.KDA })},
	{"dpm", num(func(r *model.MatchRecord) nf { return r.DPM })},
	{"cspm", num(func(r *model.MatchRecord) nf { return r.CSPM })},
	{"vspm", num(func(r *model.MatchRecord) nf { return r.VSPM })},
	{"totalgold", num(func(r *model.MatchRecord) nf { return r.TotalGold })},
	{"damagetochampions", num(func(r *model.MatchRecord) nf { return r.DamageToChampions })},
	{"gamelength", num(func(r *model.MatchRecord) nf { return r.Gamelength })},
}

// Correlation computes pairwise Pearson correlations over the cleaned table.
// Each pair uses only the rows where both values are non-null.
func Correlation(rows []model.MatchRecord) model.Correlation {
	n := len(correlationColumns)
	c := model.Correlation{
		Columns: make([]string, n),
		Matrix:  make([][]float64, n),
	}

	vals := make([][]float64, n)
	valid := make([][]bool, n)
	for i, col := range correlationColumns {
		c.Columns[i] = col.name
		vals[i] = make([]float64, len(rows))
		valid[i] = make([]bool, len(rows))
		for r := range rows {
			vals[i][r], valid[i][r] = col.value(&rows[r])
		}
	}

	for i := 0; i < n; i++ {
		c.Matrix[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			var xs, ys []float64
			for r := range rows {
				if valid[i][r] && valid[j][r] {
					xs = append(xs, vals[i][r])
					ys = append(ys, vals[j][r])
				}
			}
			v := pearson(xs, ys)
			c.Matrix[i][j] = v
			c.Matrix[j][i] = v
		}
	}
	return c
}

// pearson is the sample Pearson correlation coefficient. NaN for fewer than
// two pairs or a zero-variance input, matching pandas corr().
func pearson(xs, ys []float64) float64 {
	if len(xs) < 2 {
		return math.NaN()
	}
	mx, my := mean(xs), mean(ys)
	var cov, vx, vy float64
	for k := range xs {
		dx, dy := xs[k]-mx, ys[k]-my
		cov += dx * dy
		vx += dx * dx
		vy += dy * dy
	}
	if vx == 0 || vy == 0 {
		return math.NaN()
	}
	return cov / math.Sqrt(vx*vy)
}
