package report

import (
	"encoding/csv"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/pable/go-lol-metrics/internal/model"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return rows
}

func TestWritePlayerCSV(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	stats := []model.PlayerStats{
		{PlayerID: "oe:p1", PlayerName: "Faker", Games: 18, AvgKDA: 4.25, WinRate: 66.7},
	}

	if err := WritePlayerCSV(dir, stats); err != nil {
		t.Fatalf("WritePlayerCSV: %v", err)
	}

	rows := readCSV(t, filepath.Join(dir, PlayerFile))
	if len(rows) != 2 {
		t.Fatalf("expected header + 1 row, got %d rows", len(rows))
	}
	if rows[0][0] != "player_id" || rows[0][6] != "avg_kda" {
		t.Errorf("unexpected header: %v", rows[0])
	}
	if rows[1][1] != "Faker" || rows[1][7] != "4.2500" {
		t.Errorf("unexpected data row: %v", rows[1])
	}
}

func TestWriteDurationCSV_Overwrites(t *testing.T) {
	dir := t.TempDir()
	two := []model.DurationStats{
		{Bucket: "Short (<25m)", Games: 3},
		{Bucket: "Medium (25-30m)", Games: 5},
	}
	one := []model.DurationStats{{Bucket: "Long (30-35m)", Games: 4}}

	if err := WriteDurationCSV(dir, two); err != nil {
		t.Fatalf("WriteDurationCSV: %v", err)
	}
	if err := WriteDurationCSV(dir, one); err != nil {
		t.Fatalf("WriteDurationCSV (second): %v", err)
	}

	rows := readCSV(t, filepath.Join(dir, DurationFile))
	if len(rows) != 2 {
		t.Fatalf("expected the second write to replace the first, got %d rows", len(rows))
	}
	if rows[1][0] != "Long (30-35m)" {
		t.Errorf("unexpected bucket: %v", rows[1])
	}
}

func TestWriteSummaryCSV_EmptyStillWritesHeader(t *testing.T) {
	dir := t.TempDir()
	if err := WriteSummaryCSV(dir, nil); err != nil {
		t.Fatalf("WriteSummaryCSV: %v", err)
	}
	rows := readCSV(t, filepath.Join(dir, SummaryFile))
	if len(rows) != 1 {
		t.Fatalf("expected header only, got %d rows", len(rows))
	}
}

func TestWriteCorrelationCSV(t *testing.T) {
	dir := t.TempDir()
	c := model.Correlation{
		Columns: []string{"kills", "deaths"},
		Matrix: [][]float64{
			{1, -0.5},
			{-0.5, math.NaN()},
		},
	}

	if err := WriteCorrelationCSV(dir, c); err != nil {
		t.Fatalf("WriteCorrelationCSV: %v", err)
	}

	rows := readCSV(t, filepath.Join(dir, CorrelationFile))
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}
	if rows[0][1] != "kills" || rows[1][0] != "kills" {
		t.Errorf("unexpected matrix labels: %v / %v", rows[0], rows[1])
	}
	if rows[1][2] != "-0.5000" {
		t.Errorf("expected -0.5000, got %q", rows[1][2])
	}
	if rows[2][2] != "" {
		t.Errorf("expected empty cell for an undefined correlation, got %q", rows[2][2])
	}
}

func TestClampTop(t *testing.T) {
	s := []int{1, 2, 3}
	if got := clampTop(len(s), 2, s); len(got) != 2 {
		t.Errorf("clampTop(3, 2): got %d elements", len(got))
	}
	if got := clampTop(len(s), 0, s); len(got) != 3 {
		t.Errorf("clampTop(3, 0): got %d elements, want all", len(got))
	}
	if got := clampTop(len(s), 10, s); len(got) != 3 {
		t.Errorf("clampTop(3, 10): got %d elements, want all", len(got))
	}
}
