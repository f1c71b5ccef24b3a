package cleaner

import (
	"math"
	"testing"

	"github.com/pable/go-lol-metrics/internal/model"
)

func playerRow(player, champ string) model.MatchRecord {
	return model.MatchRecord{
		GameID:     "g1",
		PlayerID:   "oe:" + player,
		PlayerName: player,
		Champion:   champ,
		Position:   "mid",
		Kills:      model.Num(5),
		Deaths:     model.Num(3),
		Assists:    model.Num(7),
		TeamKills:  model.Num(20),
	}
}

func teamRow() model.MatchRecord {
	return model.MatchRecord{
		GameID:   "g1",
		TeamName: "T1",
		Position: "team",
		Kills:    model.Num(20),
	}
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestClean_DropsTeamRows(t *testing.T) {
	rows := []model.MatchRecord{playerRow("faker", "Ahri"), teamRow(), teamRow()}

	out, report := Clean(rows)
	if len(out) != 1 {
		t.Fatalf("expected 1 row, got %d", len(out))
	}
	if report.TeamRows != 2 {
		t.Errorf("expected 2 team rows dropped, got %d", report.TeamRows)
	}
	if report.RowsIn != 3 || report.RowsOut != 1 {
		t.Errorf("unexpected report counts: %+v", report)
	}
}

func TestClean_DropsMissingKeys(t *testing.T) {
	noID := playerRow("ghost", "Ahri")
	noID.PlayerID = ""
	noChamp := playerRow("blank", "")
	noPos := playerRow("drifter", "Ahri")
	noPos.Position = ""

	out, report := Clean([]model.MatchRecord{playerRow("ok", "Jinx"), noID, noChamp, noPos})
	if len(out) != 1 {
		t.Fatalf("expected 1 row, got %d", len(out))
	}
	if report.MissingKey != 3 {
		t.Errorf("expected 3 missing-key drops, got %d", report.MissingKey)
	}
	// A missing position is a missing key, not a team-summary row.
	if report.TeamRows != 0 {
		t.Errorf("expected 0 team rows, got %d", report.TeamRows)
	}
}

func TestClean_DerivesKDA(t *testing.T) {
	out, _ := Clean([]model.MatchRecord{playerRow("faker", "Ahri")})
	if len(out) != 1 {
		t.Fatal("expected 1 row")
	}
	r := out[0]
	if !r.KDA.Valid || !approx(r.KDA.Float64, 4) {
		t.Errorf("expected KDA (5+7)/3 = 4, got %+v", r.KDA)
	}
	if !r.KillParticipation.Valid || !approx(r.KillParticipation.Float64, 60) {
		t.Errorf("expected KP (5+7)/20*100 = 60, got %+v", r.KillParticipation)
	}
}

func TestClean_ZeroDeathsUsesDivisorOne(t *testing.T) {
	row := playerRow("perfect", "Ahri")
	row.Deaths = model.Num(0)

	out, _ := Clean([]model.MatchRecord{row})
	if !out[0].KDA.Valid || !approx(out[0].KDA.Float64, 12) {
		t.Errorf("expected KDA (5+7)/1 = 12 for a deathless game, got %+v", out[0].KDA)
	}
}

func TestClean_ZeroTeamKillsUsesDivisorOne(t *testing.T) {
	row := playerRow("quiet", "Ahri")
	row.Kills = model.Num(0)
	row.Assists = model.Num(0)
	row.TeamKills = model.Num(0)

	out, _ := Clean([]model.MatchRecord{row})
	if !out[0].KillParticipation.Valid || !approx(out[0].KillParticipation.Float64, 0) {
		t.Errorf("expected KP 0 for a killless game, got %+v", out[0].KillParticipation)
	}
}

func TestClean_NullInputsYieldNullDerived(t *testing.T) {
	row := playerRow("partial", "Ahri")
	row.Deaths = model.Null()

	out, _ := Clean([]model.MatchRecord{row})
	if out[0].KDA.Valid {
		t.Errorf("expected null KDA when deaths is null, got %+v", out[0].KDA)
	}
	if !out[0].KillParticipation.Valid {
		t.Error("kill participation should not depend on deaths")
	}
}

func TestClean_Idempotent(t *testing.T) {
	rows := []model.MatchRecord{playerRow("faker", "Ahri"), playerRow("caps", "Orianna"), teamRow()}

	once, _ := Clean(rows)
	twice, r2 := Clean(once)

	if len(once) != len(twice) {
		t.Fatalf("second clean changed row count: %d -> %d", len(once), len(twice))
	}
	if r2.TeamRows != 0 || r2.MissingKey != 0 {
		t.Errorf("second clean dropped rows: %+v", r2)
	}
	for i := range once {
		if once[i] != twice[i] {
			t.Errorf("row %d changed on second clean", i)
		}
	}
}
