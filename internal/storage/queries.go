package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/pable/go-lol-metrics/internal/model"
)

const dateLayout = "2006-01-02"

// DatasetExists returns true if a dataset for the given year is already stored.
func (db *DB) DatasetExists(year int) (bool, error) {
	var count int
	err := db.conn.QueryRow("SELECT COUNT(1) FROM datasets WHERE year = ?", year).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpsertDataset records an ingested dataset. INSERT OR REPLACE keeps re-runs
// idempotent.
func (db *DB) UpsertDataset(ds model.DatasetSummary) error {
	_, err := db.conn.Exec(`
		INSERT OR REPLACE INTO datasets(year, source_path, raw_rows, clean_rows, loaded_at)
		VALUES (?, ?, ?, ?, ?)`,
		ds.Year, ds.SourcePath, ds.RawRows, ds.CleanRows, ds.LoadedAt,
	)
	return err
}

// ListDatasets returns all stored datasets ordered by year descending.
func (db *DB) ListDatasets() ([]model.DatasetSummary, error) {
	rows, err := db.conn.Query(`
		SELECT year, source_path, raw_rows, clean_rows, loaded_at
		FROM datasets ORDER BY year DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.DatasetSummary
	for rows.Next() {
		var ds model.DatasetSummary
		if err := rows.Scan(&ds.Year, &ds.SourcePath, &ds.RawRows, &ds.CleanRows, &ds.LoadedAt); err != nil {
			return nil, err
		}
		out = append(out, ds)
	}
	return out, rows.Err()
}

// InsertMatchRows bulk-inserts cleaned match rows in a transaction.
// Rows are keyed (game_id, player_id); re-inserting replaces.
func (db *DB) InsertMatchRows(year int, records []model.MatchRecord) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO match_rows(
			game_id, player_id, year, date, league, split, side, position,
			player_name, team_name, champion, patch,
			gamelength, result, kills, deaths, assists, team_kills,
			kda, kill_participation, dpm, cspm, vspm,
			total_gold, damage_to_champions, total_cs, vision_score
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i := range records {
		r := &records[i]
		_, err = stmt.Exec(
			r.GameID, r.PlayerID, year, dateText(r.Date), r.League, r.Split, r.Side, r.Position,
			r.PlayerName, r.TeamName, r.Champion, r.Patch,
			r.Gamelength, r.Result, r.Kills, r.Deaths, r.Assists, r.TeamKills,
			r.KDA, r.KillParticipation, r.DPM, r.CSPM, r.VSPM,
			r.TotalGold, r.DamageToChampions, r.TotalCS, r.VisionScore,
		)
		if err != nil {
			return fmt.Errorf("insert match_rows for %s/%s: %w", r.GameID, r.PlayerID, err)
		}
	}
	return tx.Commit()
}

// GetMatchRows returns the stored cleaned rows for a year. Only the columns
// the aggregate views read are persisted, so records come back with the
// remaining numeric fields null.
func (db *DB) GetMatchRows(year int) ([]model.MatchRecord, error) {
	rows, err := db.conn.Query(`
		SELECT game_id, player_id, date, league, split, side, position,
		       player_name, team_name, champion, patch,
		       gamelength, result, kills, deaths, assists, team_kills,
		       kda, kill_participation, dpm, cspm, vspm,
		       total_gold, damage_to_champions, total_cs, vision_score
		FROM match_rows WHERE year = ?
		ORDER BY game_id, player_id`, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.MatchRecord
	for rows.Next() {
		var r model.MatchRecord
		var date sql.NullString
		r.Year = year
		if err := rows.Scan(
			&r.GameID, &r.PlayerID, &date, &r.League, &r.Split, &r.Side, &r.Position,
			&r.PlayerName, &r.TeamName, &r.Champion, &r.Patch,
			&r.Gamelength, &r.Result, &r.Kills, &r.Deaths, &r.Assists, &r.TeamKills,
			&r.KDA, &r.KillParticipation, &r.DPM, &r.CSPM, &r.VSPM,
			&r.TotalGold, &r.DamageToChampions, &r.TotalCS, &r.VisionScore,
		); err != nil {
			return nil, err
		}
		if date.Valid && date.String != "" {
			if t, err := time.Parse(dateLayout, date.String); err == nil {
				r.Date = sql.NullTime{Time: t, Valid: true}
			}
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// InsertPlayerStats bulk-inserts the player view for a year in a transaction.
func (db *DB) InsertPlayerStats(year int, stats []model.PlayerStats) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO player_stats(
			year, player_id, player_name, games,
			avg_kills, avg_deaths, avg_assists, avg_kda,
			avg_dpm, avg_cspm, avg_vspm, win_rate
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, s := range stats {
		_, err = stmt.Exec(
			year, s.PlayerID, s.PlayerName, s.Games,
			s.AvgKills, s.AvgDeaths, s.AvgAssists, s.AvgKDA,
			s.AvgDPM, s.AvgCSPM, s.AvgVSPM, s.WinRate,
		)
		if err != nil {
			return fmt.Errorf("insert player_stats for %s: %w", s.PlayerID, err)
		}
	}
	return tx.Commit()
}

// GetPlayerStats returns the stored player view for a year ordered by
// average KDA descending.
func (db *DB) GetPlayerStats(year int) ([]model.PlayerStats, error) {
	rows, err := db.conn.Query(`
		SELECT player_id, player_name, games,
		       avg_kills, avg_deaths, avg_assists, avg_kda,
		       avg_dpm, avg_cspm, avg_vspm, win_rate
		FROM player_stats WHERE year = ?
		ORDER BY avg_kda DESC`, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.PlayerStats
	for rows.Next() {
		var s model.PlayerStats
		if err := rows.Scan(
			&s.PlayerID, &s.PlayerName, &s.Games,
			&s.AvgKills, &s.AvgDeaths, &s.AvgAssists, &s.AvgKDA,
			&s.AvgDPM, &s.AvgCSPM, &s.AvgVSPM, &s.WinRate,
		); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func dateText(t sql.NullTime) sql.NullString {
	if !t.Valid {
		return sql.NullString{}
	}
	return sql.NullString{String: t.Time.Format(dateLayout), Valid: true}
}
