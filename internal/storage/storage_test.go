package storage

import (
	"testing"
	"time"

	"github.com/pable/go-lol-metrics/internal/model"
)

func openMemDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open in-memory db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestDatasetUpsertAndExists(t *testing.T) {
	db := openMemDB(t)

	ds := model.DatasetSummary{
		Year:       2025,
		SourcePath: "data/raw/lol_esports_2025.csv",
		RawRows:    1200,
		CleanRows:  1000,
		LoadedAt:   "2025-06-01T00:00:00Z",
	}
	if err := db.UpsertDataset(ds); err != nil {
		t.Fatalf("UpsertDataset: %v", err)
	}

	exists, err := db.DatasetExists(2025)
	if err != nil {
		t.Fatalf("DatasetExists: %v", err)
	}
	if !exists {
		t.Error("expected dataset to exist after upsert")
	}
	exists2, _ := db.DatasetExists(2019)
	if exists2 {
		t.Error("expected unstored year to not exist")
	}

	// Re-upserting the same year replaces, not duplicates.
	ds.CleanRows = 1100
	if err := db.UpsertDataset(ds); err != nil {
		t.Fatalf("UpsertDataset (replace): %v", err)
	}
	list, err := db.ListDatasets()
	if err != nil {
		t.Fatalf("ListDatasets: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 dataset after replace, got %d", len(list))
	}
	if list[0].CleanRows != 1100 {
		t.Errorf("expected replaced clean_rows 1100, got %d", list[0].CleanRows)
	}
}

func TestListDatasets_YearDescending(t *testing.T) {
	db := openMemDB(t)

	for _, y := range []int{2023, 2025, 2024} {
		if err := db.UpsertDataset(model.DatasetSummary{Year: y, SourcePath: "p", LoadedAt: "t"}); err != nil {
			t.Fatalf("UpsertDataset %d: %v", y, err)
		}
	}

	list, err := db.ListDatasets()
	if err != nil {
		t.Fatalf("ListDatasets: %v", err)
	}
	want := []int{2025, 2024, 2023}
	for i, ds := range list {
		if ds.Year != want[i] {
			t.Errorf("position %d: expected year %d, got %d", i, want[i], ds.Year)
		}
	}
}

func TestMatchRowsRoundtrip(t *testing.T) {
	db := openMemDB(t)

	rec := model.MatchRecord{
		GameID:     "G1",
		PlayerID:   "oe:p1",
		PlayerName: "Faker",
		TeamName:   "T1",
		Champion:   "Ahri",
		Position:   "mid",
		Side:       "Blue",
		League:     "LCK",
		Date:       model.Date(time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)),
		Gamelength: model.Num(1845),
		Result:     model.Num(1),
		Kills:      model.Num(5),
		Deaths:     model.Num(2),
		Assists:    model.Num(7),
		TeamKills:  model.Num(18),
		KDA:        model.Num(6),
		DPM:        model.Num(612.4),
	}
	noNums := model.MatchRecord{GameID: "G1", PlayerID: "oe:p2", PlayerName: "Keria"}

	if err := db.InsertMatchRows(2025, []model.MatchRecord{rec, noNums}); err != nil {
		t.Fatalf("InsertMatchRows: %v", err)
	}

	got, err := db.GetMatchRows(2025)
	if err != nil {
		t.Fatalf("GetMatchRows: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got))
	}

	r := got[0]
	if r.PlayerID != "oe:p1" || r.Champion != "Ahri" {
		t.Errorf("unexpected first row: %+v", r)
	}
	if !r.Kills.Valid || r.Kills.Float64 != 5 {
		t.Errorf("kills did not survive roundtrip: %+v", r.Kills)
	}
	if !r.DPM.Valid || r.DPM.Float64 != 612.4 {
		t.Errorf("dpm did not survive roundtrip: %+v", r.DPM)
	}
	if !r.Date.Valid || r.Date.Time.Format("2006-01-02") != "2025-03-14" {
		t.Errorf("date did not survive roundtrip: %+v", r.Date)
	}
	if r.Year != 2025 {
		t.Errorf("expected year 2025, got %d", r.Year)
	}

	if got[1].Kills.Valid || got[1].Date.Valid {
		t.Errorf("null fields came back non-null: %+v", got[1])
	}

	// Different year is invisible.
	other, err := db.GetMatchRows(2024)
	if err != nil {
		t.Fatalf("GetMatchRows(2024): %v", err)
	}
	if len(other) != 0 {
		t.Errorf("expected no rows for 2024, got %d", len(other))
	}
}

func TestPlayerStatsRoundtrip(t *testing.T) {
	db := openMemDB(t)

	stats := []model.PlayerStats{
		{PlayerID: "oe:p2", PlayerName: "Chovy", Games: 20, AvgKDA: 5.1, WinRate: 70},
		{PlayerID: "oe:p1", PlayerName: "Faker", Games: 18, AvgKDA: 4.2, WinRate: 66.7},
	}
	if err := db.InsertPlayerStats(2025, stats); err != nil {
		t.Fatalf("InsertPlayerStats: %v", err)
	}

	got, err := db.GetPlayerStats(2025)
	if err != nil {
		t.Fatalf("GetPlayerStats: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 players, got %d", len(got))
	}
	if got[0].PlayerName != "Chovy" {
		t.Errorf("expected avg_kda descending order, got %s first", got[0].PlayerName)
	}
	if got[1].Games != 18 || got[1].WinRate != 66.7 {
		t.Errorf("player stats did not survive roundtrip: %+v", got[1])
	}
}
