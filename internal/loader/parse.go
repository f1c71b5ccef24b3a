package loader

import (
	"database/sql"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/pable/go-lol-metrics/internal/model"
)

// Schema describes the header of a parsed file: the columns it carries and
// the expected columns it is missing. Purely informational — a missing
// column simply yields null fields.
type Schema struct {
	Columns []string
	Missing []string
	Rows    int
}

// nullish cell values treated as absent, matching the source conventions.
var nullish = map[string]struct{}{
	"": {}, "NA": {}, "N/A": {}, "null": {}, "NULL": {},
}

// dateLayouts tried in order when parsing the date column.
var dateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseFile reads a CSV file, trying each configured encoding in order, and
// returns typed match records plus the observed schema.
func (l *Loader) ParseFile(path string) ([]model.MatchRecord, *Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}

	var lastErr error
	for _, enc := range l.cfg.Encodings {
		decoded, err := decode(enc, data)
		if err != nil {
			lastErr = err
			continue
		}
		records, schema, err := l.parseCSV(decoded)
		if err != nil {
			lastErr = err
			continue
		}
		l.log.Info("dataset parsed", "path", path, "encoding", enc,
			"rows", schema.Rows, "columns", len(schema.Columns), "missing_columns", len(schema.Missing))
		if len(schema.Missing) > 0 {
			l.log.Warn("expected columns absent from header", "columns", strings.Join(schema.Missing, ","))
		}
		return records, schema, nil
	}
	return nil, nil, fmt.Errorf("parse %s: no encoding in %v succeeded: %w", path, l.cfg.Encodings, lastErr)
}

// decode converts raw bytes to UTF-8 text using the named encoding.
func decode(name string, data []byte) (string, error) {
	switch strings.ToLower(name) {
	case "utf-8", "utf8":
		if !utf8.Valid(data) {
			return "", fmt.Errorf("not valid UTF-8")
		}
		return string(data), nil
	case "latin-1", "iso-8859-1":
		out, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
		return string(out), err
	case "windows-1252", "cp1252":
		out, err := charmap.Windows1252.NewDecoder().Bytes(data)
		return string(out), err
	default:
		return "", fmt.Errorf("unsupported encoding %q", name)
	}
}

func (l *Loader) parseCSV(text string) ([]model.MatchRecord, *Schema, error) {
	r := csv.NewReader(strings.NewReader(text))
	r.FieldsPerRecord = -1 // ragged rows tolerated; short rows read as null fields

	rows, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, &Schema{}, nil
	}

	header := rows[0]
	idx := make(map[string]int, len(header))
	columns := make([]string, 0, len(header))
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(h))
		idx[name] = i
		columns = append(columns, name)
	}

	var missing []string
	for _, want := range l.cfg.ExpectedColumns {
		if _, ok := idx[want]; !ok {
			missing = append(missing, want)
		}
	}

	records := make([]model.MatchRecord, 0, len(rows)-1)
	for _, rec := range rows[1:] {
		records = append(records, buildRecord(rowView{idx: idx, rec: rec}))
	}
	return records, &Schema{Columns: columns, Missing: missing, Rows: len(records)}, nil
}

// rowView is a header-indexed view over one CSV record. Absent columns and
// nullish cells read as zero values / nulls.
type rowView struct {
	idx map[string]int
	rec []string
}

func (v rowView) raw(col string) (string, bool) {
	i, ok := v.idx[col]
	if !ok || i >= len(v.rec) {
		return "", false
	}
	s := strings.TrimSpace(v.rec[i])
	if _, null := nullish[s]; null {
		return "", false
	}
	return s, true
}

func (v rowView) str(col string) string {
	s, _ := v.raw(col)
	return s
}

func (v rowView) num(col string) sql.NullFloat64 {
	s, ok := v.raw(col)
	if !ok {
		return sql.NullFloat64{}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return sql.NullFloat64{} // unparseable → null, row retained
	}
	return sql.NullFloat64{Float64: f, Valid: true}
}

func (v rowView) intval(col string) int {
	s, ok := v.raw(col)
	if !ok {
		return 0
	}
	// Year sometimes arrives as "2025.0".
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f)
	}
	return 0
}

func (v rowView) date(col string) sql.NullTime {
	s, ok := v.raw(col)
	if !ok {
		return sql.NullTime{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return sql.NullTime{Time: t, Valid: true}
		}
	}
	return sql.NullTime{}
}

// buildRecord maps one CSV row onto the typed record shape. Every numeric
// coercion failure becomes a null; no row is ever rejected here.
func buildRecord(v rowView) model.MatchRecord {
	return model.MatchRecord{
		GameID:     v.str("gameid"),
		PlayerID:   v.str("playerid"),
		PlayerName: v.str("playername"),
		TeamName:   v.str("teamname"),
		Champion:   v.str("champion"),

		Position: strings.ToLower(v.str("position")),
		Side:     v.str("side"),
		League:   v.str("league"),
		Split:    v.str("split"),
		Patch:    v.str("patch"),
		Year:     v.intval("year"),
		Date:     v.date("date"),

		Gamelength: v.num("gamelength"),
		Result:     v.num("result"),

		Kills:      v.num("kills"),
		Deaths:     v.num("deaths"),
		Assists:    v.num("assists"),
		TeamKills:  v.num("teamkills"),
		TeamDeaths: v.num("teamdeaths"),

		DoubleKills: v.num("doublekills"),
		TripleKills: v.num("triplekills"),
		QuadraKills: v.num("quadrakills"),
		PentaKills:  v.num("pentakills"),
		FirstBlood:  v.num("firstblood"),

		DamageToChampions:    v.num("damagetochampions"),
		DPM:                  v.num("dpm"),
		DamageShare:          v.num("damageshare"),
		DamageTakenPerMinute: v.num("damagetakenperminute"),

		WardsPlaced:        v.num("wardsplaced"),
		WPM:                v.num("wpm"),
		WardsKilled:        v.num("wardskilled"),
		WCPM:               v.num("wcpm"),
		ControlWardsBought: v.num("controlwardsbought"),
		VisionScore:        v.num("visionscore"),
		VSPM:               v.num("vspm"),

		TotalGold:  v.num("totalgold"),
		EarnedGold: v.num("earnedgold"),
		EarnedGPM:  v.num("earned gpm"),
		GoldSpent:  v.num("goldspent"),

		TotalCS:      v.num("total cs"),
		MinionKills:  v.num("minionkills"),
		MonsterKills: v.num("monsterkills"),
		CSPM:         v.num("cspm"),

		GoldAt10:     v.num("goldat10"),
		XPAt10:       v.num("xpat10"),
		CSAt10:       v.num("csat10"),
		GoldDiffAt10: v.num("golddiffat10"),
		XPDiffAt10:   v.num("xpdiffat10"),
		CSDiffAt10:   v.num("csdiffat10"),
		KillsAt10:    v.num("killsat10"),
		AssistsAt10:  v.num("assistsat10"),
		DeathsAt10:   v.num("deathsat10"),
	}
}
