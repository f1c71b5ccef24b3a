// Package loader obtains the raw match table for a year: local cache first,
// HTTP download otherwise, then a tolerant CSV parse into MatchRecords.
package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/pable/go-lol-metrics/internal/config"
	"github.com/pable/go-lol-metrics/internal/model"
)

// ErrNotFound is returned by Load when no cached file exists and downloads
// are disabled.
var ErrNotFound = errors.New("dataset not cached and downloads disabled")

// Loader fetches and parses yearly datasets.
type Loader struct {
	cfg    config.Config
	log    *slog.Logger
	client *http.Client
}

// New returns a Loader using the given configuration.
func New(cfg config.Config, log *slog.Logger) *Loader {
	return &Loader{
		cfg:    cfg,
		log:    log,
		client: &http.Client{Timeout: 5 * time.Minute},
	}
}

// Load returns the parsed match table for a year. A cached file is used when
// present; otherwise the dataset is downloaded unless offline is set.
func (l *Loader) Load(ctx context.Context, year int, offline bool) ([]model.MatchRecord, *Schema, error) {
	path := l.cfg.CachePath(year)
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return nil, nil, fmt.Errorf("stat %s: %w", path, err)
		}
		if offline {
			return nil, nil, fmt.Errorf("%w: expected %s", ErrNotFound, path)
		}
		if _, err := l.Fetch(ctx, year, false); err != nil {
			return nil, nil, err
		}
	}
	return l.ParseFile(path)
}

// Fetch ensures the raw CSV for a year exists at its cache path, downloading
// it when absent (or always, when force is set). Returns the cache path.
func (l *Loader) Fetch(ctx context.Context, year int, force bool) (string, error) {
	path := l.cfg.CachePath(year)
	if !force {
		if _, err := os.Stat(path); err == nil {
			l.log.Info("dataset already cached", "year", year, "path", path)
			return path, nil
		}
	}

	url, ok := l.cfg.SourceURL(year)
	if !ok {
		return "", fmt.Errorf("no source URL configured for year %d", year)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create data dir: %w", err)
	}

	l.log.Info("downloading dataset", "year", year, "url", url)
	op := func() error {
		return l.download(ctx, url, path)
	}
	bo := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3), ctx)
	if err := backoff.Retry(op, bo); err != nil {
		return "", fmt.Errorf("download %d dataset: %w\nmanual recovery: fetch %s yourself and save it as %s",
			year, err, url, path)
	}
	l.log.Info("dataset downloaded", "year", year, "path", path)
	return path, nil
}

// download streams url to path via a temp file so a failed transfer never
// leaves a truncated cache behind.
func (l *Loader) download(ctx context.Context, url, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return backoff.Permanent(err)
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return backoff.Permanent(fmt.Errorf("HTTP %d", resp.StatusCode))
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".download-*")
	if err != nil {
		return backoff.Permanent(err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		return fmt.Errorf("write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
