// Package config defines the immutable run configuration for the lolmetrics
// pipeline. Components receive a Config at construction; nothing mutates it
// afterwards.
package config

import (
	"fmt"
	"path/filepath"
)

// Config contains every recognized option. Defaults come from Default();
// Load layers an optional YAML file and LOLMETRICS_* env vars on top.
type Config struct {
	// DataDir holds raw downloaded CSVs.
	DataDir string `koanf:"data_dir"`

	// OutputDir is the root for generated artifacts; reports and figures
	// live in fixed subdirectories underneath it.
	OutputDir string `koanf:"output_dir"`

	// MinGamesThreshold is the minimum sample size for the player and team
	// views. Champion, position and duration views are unfiltered.
	MinGamesThreshold int `koanf:"min_games_threshold"`

	// CurrentYear selects the dataset when no --year flag is given.
	CurrentYear int `koanf:"current_year"`

	// SourceURLs maps a year (as a string key, YAML-friendly) to the
	// download URL of that year's dataset.
	SourceURLs map[string]string `koanf:"source_urls"`

	// Encodings is the ordered list of text encodings tried when reading a
	// source CSV.
	Encodings []string `koanf:"encodings"`

	// ExpectedColumns is the documented source schema; columns absent from
	// a file are reported after load but never fatal.
	ExpectedColumns []string `koanf:"expected_columns"`

	// ChartWidth and ChartHeight size the rendered PNG artifacts in pixels.
	ChartWidth  int `koanf:"chart_width"`
	ChartHeight int `koanf:"chart_height"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		DataDir:           "data/raw",
		OutputDir:         "output",
		MinGamesThreshold: 5,
		CurrentYear:       2025,
		SourceURLs: map[string]string{
			"2025": "https://drive.google.com/uc?export=download&id=1gLSw0RLjBbtaNy0dgnGQDAZOHIgCe-HH",
			"2024": "https://drive.google.com/uc?export=download&id=1gLSw0RLjBbtaNy0dgnGQDAZOHIgCe-HH",
		},
		Encodings:       []string{"utf-8", "latin-1", "windows-1252"},
		ExpectedColumns: expectedColumns,
		ChartWidth:      1024,
		ChartHeight:     512,
	}
}

// ReportsDir is where per-view CSV files are written.
func (c Config) ReportsDir() string {
	return filepath.Join(c.OutputDir, "reports")
}

// FiguresDir is where PNG chart artifacts are written.
func (c Config) FiguresDir() string {
	return filepath.Join(c.OutputDir, "figures")
}

// CachePath returns the local path of the raw CSV for a year.
func (c Config) CachePath(year int) string {
	return filepath.Join(c.DataDir, fmt.Sprintf("lol_esports_%d.csv", year))
}

// SourceURL returns the download URL for a year, if one is configured.
func (c Config) SourceURL(year int) (string, bool) {
	u, ok := c.SourceURLs[fmt.Sprintf("%d", year)]
	return u, ok
}

// expectedColumns is the documented Oracle's Elixir column superset.
var expectedColumns = []string{
	"gameid", "datacompleteness", "url", "league", "year", "split", "playoffs",
	"date", "game", "patch", "playerid", "side", "position", "playername",
	"teamname", "champion", "ban1", "ban2", "ban3", "ban4", "ban5",
	"gamelength", "result", "kills", "deaths", "assists", "teamkills",
	"teamdeaths", "doublekills", "triplekills", "quadrakills", "pentakills",
	"firstblood", "firstbloodkill", "firstbloodassist", "firstbloodvictim",
	"damagetochampions", "dpm", "damageshare", "damagetakenperminute",
	"damagemitigatedperminute", "wardsplaced", "wpm", "wardskilled",
	"wcpm", "controlwardsbought", "visionscore", "vspm", "totalgold",
	"earnedgold", "earned gpm", "goldspent", "gspd", "total cs", "minionkills",
	"monsterkills", "monsterkillsownjungle", "monsterkillsenemyjungle",
	"cspm", "goldat10", "xpat10", "csat10", "opp_goldat10", "opp_xpat10",
	"opp_csat10", "golddiffat10", "xpdiffat10", "csdiffat10", "killsat10",
	"assistsat10", "deathsat10", "opp_killsat10", "opp_assistsat10",
	"opp_deathsat10",
}
