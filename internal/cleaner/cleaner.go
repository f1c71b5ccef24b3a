// Package cleaner turns the raw parsed table into the cleaned table every
// aggregate view reads: individual-player rows only, key fields present,
// derived metrics attached.
package cleaner

import (
	"database/sql"

	"github.com/pable/go-lol-metrics/internal/model"
)

// Report counts what cleaning changed, for logging. Data-quality gaps are
// never errors.
type Report struct {
	RowsIn     int
	RowsOut    int
	TeamRows   int // team-summary rows dropped
	MissingKey int // rows dropped for a missing player id, position or champion
}

// Clean filters and enriches rows. It is a total function over any input:
// malformed values are already nulls by the time they arrive here, and nulls
// propagate into the derived fields. Cleaning an already-cleaned table
// yields the same table.
func Clean(rows []model.MatchRecord) ([]model.MatchRecord, Report) {
	report := Report{RowsIn: len(rows)}
	out := make([]model.MatchRecord, 0, len(rows))

	for _, r := range rows {
		if r.IsTeamRow() {
			report.TeamRows++
			continue
		}
		if r.PlayerID == "" || r.Position == "" || r.Champion == "" {
			report.MissingKey++
			continue
		}

		r.KDA = kda(r.Kills, r.Deaths, r.Assists)
		r.KillParticipation = killParticipation(r.Kills, r.Assists, r.TeamKills)
		out = append(out, r)
	}

	report.RowsOut = len(out)
	return out, report
}

// kda computes (kills+assists)/max(deaths,1). Null if any input is null.
func kda(kills, deaths, assists sql.NullFloat64) sql.NullFloat64 {
	if !kills.Valid || !deaths.Valid || !assists.Valid {
		return sql.NullFloat64{}
	}
	d := deaths.Float64
	if d == 0 {
		d = 1
	}
	return sql.NullFloat64{Float64: (kills.Float64 + assists.Float64) / d, Valid: true}
}

// killParticipation computes (kills+assists)/max(teamkills,1)*100.
// Null if any input is null.
func killParticipation(kills, assists, teamKills sql.NullFloat64) sql.NullFloat64 {
	if !kills.Valid || !assists.Valid || !teamKills.Valid {
		return sql.NullFloat64{}
	}
	tk := teamKills.Float64
	if tk == 0 {
		tk = 1
	}
	return sql.NullFloat64{Float64: (kills.Float64 + assists.Float64) / tk * 100, Valid: true}
}
