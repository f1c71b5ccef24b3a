package aggregator

import (
	"sort"

	"github.com/pable/go-lol-metrics/internal/model"
)

// PlayerView computes per-player means, drops players under the games
// threshold, and sorts by average KDA descending.
func (a *Aggregator) PlayerView(rows []model.MatchRecord) []model.PlayerStats {
	metrics := []metric{
		{"kills", num(func(r *model.MatchRecord) nf { return r.Kills })},
		{"deaths", num(func(r *model.MatchRecord) nf { return r.Deaths })},
		{"assists", num(func(r *model.MatchRecord) nf { return r.Assists })},
		{"kda", num(func(r *model.MatchRecord) nf { return r.KDA })},
		{"dpm", num(func(r *model.MatchRecord) nf { return r.DPM })},
		{"cspm", num(func(r *model.MatchRecord) nf { return r.CSPM })},
		{"vspm", num(func(r *model.MatchRecord) nf { return r.VSPM })},
		{"result", num(func(r *model.MatchRecord) nf { return r.Result })},
	}

	groups := groupBy(rows, func(r *model.MatchRecord) (string, string, bool) {
		return r.PlayerID, r.PlayerName, r.PlayerID != ""
	}, metrics)

	out := make([]model.PlayerStats, 0, len(groups))
	for _, g := range groups {
		if g.count < a.threshold {
			continue
		}
		out = append(out, model.PlayerStats{
			PlayerID:   g.key,
			PlayerName: g.label,
			Games:      g.count,
			AvgKills:   g.mean(0),
			AvgDeaths:  g.mean(1),
			AvgAssists: g.mean(2),
			AvgKDA:     g.mean(3),
			AvgDPM:     g.mean(4),
			AvgCSPM:    g.mean(5),
			AvgVSPM:    g.mean(6),
			WinRate:    g.mean(7) * 100,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].AvgKDA != out[j].AvgKDA {
			return out[i].AvgKDA > out[j].AvgKDA
		}
		return out[i].PlayerName < out[j].PlayerName
	})
	return out
}

// ChampionView computes per-champion means plus pick rate over the distinct
// game count. No sample-size filter; sorted by games picked descending.
func (a *Aggregator) ChampionView(rows []model.MatchRecord) []model.ChampionStats {
	metrics := []metric{
		{"result", num(func(r *model.MatchRecord) nf { return r.Result })},
		{"kills", num(func(r *model.MatchRecord) nf { return r.Kills })},
		{"deaths", num(func(r *model.MatchRecord) nf { return r.Deaths })},
		{"assists", num(func(r *model.MatchRecord) nf { return r.Assists })},
		{"kda", num(func(r *model.MatchRecord) nf { return r.KDA })},
	}

	groups := groupBy(rows, func(r *model.MatchRecord) (string, string, bool) {
		return r.Champion, "", r.Champion != ""
	}, metrics)

	totalGames := distinctGames(rows)

	out := make([]model.ChampionStats, 0, len(groups))
	for _, g := range groups {
		cs := model.ChampionStats{
			Champion:    g.key,
			GamesPicked: g.count,
			WinRate:     g.mean(0) * 100,
			AvgKills:    g.mean(1),
			AvgDeaths:   g.mean(2),
			AvgAssists:  g.mean(3),
			AvgKDA:      g.mean(4),
		}
		if totalGames > 0 {
			cs.PickRate = float64(g.count) / float64(totalGames) * 100
		}
		out = append(out, cs)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].GamesPicked != out[j].GamesPicked {
			return out[i].GamesPicked > out[j].GamesPicked
		}
		return out[i].Champion < out[j].Champion
	})
	return out
}

// TeamView computes per-team means, drops teams under the games threshold,
// and sorts by win rate descending.
func (a *Aggregator) TeamView(rows []model.MatchRecord) []model.TeamStats {
	metrics := []metric{
		{"result", num(func(r *model.MatchRecord) nf { return r.Result })},
		{"kills", num(func(r *model.MatchRecord) nf { return r.Kills })},
		{"deaths", num(func(r *model.MatchRecord) nf { return r.Deaths })},
		{"assists", num(func(r *model.MatchRecord) nf { return r.Assists })},
		{"totalgold", num(func(r *model.MatchRecord) nf { return r.TotalGold })},
		{"damagetochampions", num(func(r *model.MatchRecord) nf { return r.DamageToChampions })},
	}

	groups := groupBy(rows, func(r *model.MatchRecord) (string, string, bool) {
		return r.TeamName, "", r.TeamName != ""
	}, metrics)

	out := make([]model.TeamStats, 0, len(groups))
	for _, g := range groups {
		if g.count < a.threshold {
			continue
		}
		out = append(out, model.TeamStats{
			TeamName:   g.key,
			Games:      g.count,
			WinRate:    g.mean(0) * 100,
			AvgKills:   g.mean(1),
			AvgDeaths:  g.mean(2),
			AvgAssists: g.mean(3),
			AvgGold:    g.mean(4),
			AvgDamage:  g.mean(5),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].WinRate != out[j].WinRate {
			return out[i].WinRate > out[j].WinRate
		}
		return out[i].TeamName < out[j].TeamName
	})
	return out
}

// PositionView computes per-role means. Unfiltered; sorted in the standard
// role order.
func (a *Aggregator) PositionView(rows []model.MatchRecord) []model.PositionStats {
	metrics := []metric{
		{"kills", num(func(r *model.MatchRecord) nf { return r.Kills })},
		{"deaths", num(func(r *model.MatchRecord) nf { return r.Deaths })},
		{"assists", num(func(r *model.MatchRecord) nf { return r.Assists })},
		{"kda", num(func(r *model.MatchRecord) nf { return r.KDA })},
		{"dpm", num(func(r *model.MatchRecord) nf { return r.DPM })},
		{"cspm", num(func(r *model.MatchRecord) nf { return r.CSPM })},
		{"vspm", num(func(r *model.MatchRecord) nf { return r.VSPM })},
		{"damagetochampions", num(func(r *model.MatchRecord) nf { return r.DamageToChampions })},
		{"totalgold", num(func(r *model.MatchRecord) nf { return r.TotalGold })},
	}

	groups := groupBy(rows, func(r *model.MatchRecord) (string, string, bool) {
		return r.Position, "", r.Position != ""
	}, metrics)

	out := make([]model.PositionStats, 0, len(groups))
	for _, g := range groups {
		out = append(out, model.PositionStats{
			Position:   g.key,
			Games:      g.count,
			AvgKills:   g.mean(0),
			AvgDeaths:  g.mean(1),
			AvgAssists: g.mean(2),
			AvgKDA:     g.mean(3),
			AvgDPM:     g.mean(4),
			AvgCSPM:    g.mean(5),
			AvgVSPM:    g.mean(6),
			AvgDamage:  g.mean(7),
			AvgGold:    g.mean(8),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		oi, oj := positionOrder(out[i].Position), positionOrder(out[j].Position)
		if oi != oj {
			return oi < oj
		}
		return out[i].Position < out[j].Position
	})
	return out
}

// DurationView buckets rows by game length and computes per-bucket means.
// Rows with a null gamelength carry no bucket and are excluded.
func (a *Aggregator) DurationView(rows []model.MatchRecord) []model.DurationStats {
	metrics := []metric{
		{"kills", num(func(r *model.MatchRecord) nf { return r.Kills })},
		{"totalgold", num(func(r *model.MatchRecord) nf { return r.TotalGold })},
		{"damagetochampions", num(func(r *model.MatchRecord) nf { return r.DamageToChampions })},
		{"total cs", num(func(r *model.MatchRecord) nf { return r.TotalCS })},
	}

	groups := groupBy(rows, func(r *model.MatchRecord) (string, string, bool) {
		if !r.Gamelength.Valid {
			return "", "", false
		}
		return DurationBucket(r.Gamelength.Float64 / 60), "", true
	}, metrics)

	out := make([]model.DurationStats, 0, len(groups))
	for _, g := range groups {
		out = append(out, model.DurationStats{
			Bucket:    g.key,
			Games:     g.count,
			AvgKills:  g.mean(0),
			AvgGold:   g.mean(1),
			AvgDamage: g.mean(2),
			AvgCS:     g.mean(3),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		return bucketOrder(out[i].Bucket) < bucketOrder(out[j].Bucket)
	})
	return out
}

// DurationBucket classifies a game length in minutes into its fixed bucket.
// Intervals are half-open [lo, hi): exactly 25.0 minutes is Medium.
func DurationBucket(minutes float64) string {
	switch {
	case minutes < 25:
		return "Short (<25m)"
	case minutes < 30:
		return "Medium (25-30m)"
	case minutes < 35:
		return "Long (30-35m)"
	default:
		return "Very Long (35m+)"
	}
}

func bucketOrder(bucket string) int {
	switch bucket {
	case "Short (<25m)":
		return 0
	case "Medium (25-30m)":
		return 1
	case "Long (30-35m)":
		return 2
	case "Very Long (35m+)":
		return 3
	default:
		return 4
	}
}

func positionOrder(pos string) int {
	switch pos {
	case "top":
		return 0
	case "jng":
		return 1
	case "mid":
		return 2
	case "bot":
		return 3
	case "sup":
		return 4
	default:
		return 5
	}
}
