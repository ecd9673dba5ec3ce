// Package store persists fetched verses in a local SQLite database so the
// client can keep showing previously seen days while offline, the way the
// original web app's service worker cache did.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"dailyverse/internal/api"
)

// VerseCache is a by-date cache of verse payloads.
type VerseCache struct {
	mu sync.RWMutex
	db *sql.DB
}

// OpenVerseCache opens (creating if needed) the cache database at path.
func OpenVerseCache(path string) (*VerseCache, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set busy_timeout: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL: %w", err)
	}

	c := &VerseCache{db: db}
	if err := c.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	return c, nil
}

func (c *VerseCache) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS verses (
		date TEXT PRIMARY KEY,
		payload TEXT NOT NULL,
		cached_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	`
	if _, err := c.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create cache schema: %w", err)
	}
	return nil
}

// Put stores or replaces the verse cached for its date.
func (c *VerseCache) Put(v *api.Verse) error {
	if v == nil || v.Date == "" {
		return nil
	}
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal verse: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	_, err = c.db.Exec(`
		INSERT INTO verses (date, payload, cached_at) VALUES (?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET payload = excluded.payload, cached_at = excluded.cached_at`,
		v.Date, string(payload), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to cache verse: %w", err)
	}
	return nil
}

// Get returns the cached verse for a date, if any.
func (c *VerseCache) Get(date string) (*api.Verse, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var payload string
	err := c.db.QueryRow("SELECT payload FROM verses WHERE date = ?", date).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cache: %w", err)
	}

	var v api.Verse
	if err := json.Unmarshal([]byte(payload), &v); err != nil {
		return nil, false, fmt.Errorf("failed to parse cached verse: %w", err)
	}
	return &v, true, nil
}

// Prune drops entries older than the navigation window; they can never be
// displayed again.
func (c *VerseCache) Prune(windowDays int) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	cutoff := time.Now().AddDate(0, 0, -windowDays).Format(api.DateFormat)
	res, err := c.db.Exec("DELETE FROM verses WHERE date < ?", cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to prune cache: %w", err)
	}
	n, _ := res.RowsAffected()
	return int(n), nil
}

// Close releases the database handle.
func (c *VerseCache) Close() error {
	return c.db.Close()
}
