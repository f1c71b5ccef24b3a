package model

import "database/sql"

// MatchRecord is one row of the source dataset: a single player's line in a
// single professional game. Rows are uniquely keyed by (GameID, PlayerID).
// Numeric fields use sql.NullFloat64 so that unparseable or absent source
// cells propagate as nulls instead of zeroes, all the way into storage.
type MatchRecord struct {
	GameID     string
	PlayerID   string
	PlayerName string
	TeamName   string
	Champion   string

	Position string // top, jng, mid, bot, sup — or "team" for team-summary rows
	Side     string // Blue / Red
	League   string
	Split    string
	Patch    string
	Year     int
	Date     sql.NullTime

	Gamelength sql.NullFloat64 // seconds
	Result     sql.NullFloat64 // 1 = win, 0 = loss

	Kills      sql.NullFloat64
	Deaths     sql.NullFloat64
	Assists    sql.NullFloat64
	TeamKills  sql.NullFloat64
	TeamDeaths sql.NullFloat64

	DoubleKills sql.NullFloat64
	TripleKills sql.NullFloat64
	QuadraKills sql.NullFloat64
	PentaKills  sql.NullFloat64
	FirstBlood  sql.NullFloat64

	DamageToChampions    sql.NullFloat64
	DPM                  sql.NullFloat64
	DamageShare          sql.NullFloat64
	DamageTakenPerMinute sql.NullFloat64

	WardsPlaced        sql.NullFloat64
	WPM                sql.NullFloat64
	WardsKilled        sql.NullFloat64
	WCPM               sql.NullFloat64
	ControlWardsBought sql.NullFloat64
	VisionScore        sql.NullFloat64
	VSPM               sql.NullFloat64

	TotalGold  sql.NullFloat64
	EarnedGold sql.NullFloat64
	EarnedGPM  sql.NullFloat64
	GoldSpent  sql.NullFloat64

	TotalCS      sql.NullFloat64
	MinionKills  sql.NullFloat64
	MonsterKills sql.NullFloat64
	CSPM         sql.NullFloat64

	GoldAt10     sql.NullFloat64
	XPAt10       sql.NullFloat64
	CSAt10       sql.NullFloat64
	GoldDiffAt10 sql.NullFloat64
	XPDiffAt10   sql.NullFloat64
	CSDiffAt10   sql.NullFloat64
	KillsAt10    sql.NullFloat64
	AssistsAt10  sql.NullFloat64
	DeathsAt10   sql.NullFloat64

	// Derived during cleaning; never read back from the source.
	KDA               sql.NullFloat64
	KillParticipation sql.NullFloat64
}

// IsTeamRow reports whether the record is a team-summary row rather than an
// individual player line.
func (r *MatchRecord) IsTeamRow() bool {
	return r.Position == "team"
}

// ---- Aggregate views ----

// PlayerStats is one row of the player performance view: per-player means
// over all games, restricted to players with at least the configured number
// of games.
type PlayerStats struct {
	PlayerID   string
	PlayerName string
	Games      int

	AvgKills   float64
	AvgDeaths  float64
	AvgAssists float64
	AvgKDA     float64
	AvgDPM     float64
	AvgCSPM    float64
	AvgVSPM    float64
	WinRate    float64 // percent
}

// ChampionStats is one row of the champion meta view. Unfiltered: every
// champion picked at least once appears.
type ChampionStats struct {
	Champion    string
	GamesPicked int
	PickRate    float64 // percent of distinct games the champion appeared in
	WinRate     float64 // percent

	AvgKills   float64
	AvgDeaths  float64
	AvgAssists float64
	AvgKDA     float64
}

// TeamStats is one row of the team performance view.
type TeamStats struct {
	TeamName string
	Games    int
	WinRate  float64 // percent

	AvgKills   float64
	AvgDeaths  float64
	AvgAssists float64
	AvgGold    float64
	AvgDamage  float64
}

// PositionStats is one row of the per-role view.
type PositionStats struct {
	Position string
	Games    int

	AvgKills   float64
	AvgDeaths  float64
	AvgAssists float64
	AvgKDA     float64
	AvgDPM     float64
	AvgCSPM    float64
	AvgVSPM    float64
	AvgDamage  float64
	AvgGold    float64
}

// DurationStats is one row of the duration-bucket view: means over all
// player rows whose game fell in a fixed minute range.
type DurationStats struct {
	Bucket string
	Games  int

	AvgKills  float64
	AvgGold   float64
	AvgDamage float64
	AvgCS     float64
}

// ColumnSummary holds describe()-style statistics for one numeric column.
type ColumnSummary struct {
	Column string
	Count  int
	Mean   float64
	Std    float64
	Min    float64
	P25    float64
	Median float64
	P75    float64
	Max    float64
}

// MissingColumn reports the null share of one source column.
type MissingColumn struct {
	Column     string
	Missing    int
	MissingPct float64
}

// Correlation is a symmetric Pearson correlation matrix over the key numeric
// metrics. Matrix[i][j] is NaN when columns i and j share fewer than two
// rows with both values present, or when either has zero variance.
type Correlation struct {
	Columns []string
	Matrix  [][]float64
}

// DatasetSummary is a lightweight record of one ingested dataset for the
// list command.
type DatasetSummary struct {
	Year       int
	SourcePath string
	RawRows    int
	CleanRows  int
	LoadedAt   string
}
