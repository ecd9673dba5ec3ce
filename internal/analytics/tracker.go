// Package analytics records client-side engagement events. Events are
// aggregated locally and mirrored to the server on a best-effort basis; a
// failed upload never surfaces to the user.
package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"

	"dailyverse/internal/api"
)

// Event names recorded by the client.
const (
	EventVerseViewed    = "verse_viewed"
	EventDayNavigated   = "day_navigated"
	EventHeartTapped    = "heart_tapped"
	EventVerseShared    = "verse_shared"
	EventVerseFavorited = "verse_favorited"
	EventPrayed         = "prayed"
	EventCelebrated     = "celebrated"
	EventSubmission     = "submission_created"
	EventTextSize       = "text_size_changed"
	EventThemeToggled   = "theme_toggled"
)

// Counts is the per-event aggregate kept on disk.
type Counts struct {
	Total     int    `json:"total"`
	LastSeen  string `json:"last_seen"`
	FirstSeen string `json:"first_seen"`
}

type trackerData struct {
	Version string            `json:"version"`
	ByEvent map[string]Counts `json:"by_event"`
	ByDate  map[string]int    `json:"by_date"`
}

// Uploader mirrors events to the server. *api.Client satisfies it.
type Uploader interface {
	RecordEvent(ctx context.Context, name string, verseID int, metadata map[string]string) error
}

// Tracker aggregates engagement events and persists them as JSON.
type Tracker struct {
	mu       sync.Mutex
	data     trackerData
	filePath string
	uploader Uploader
	logger   *zap.Logger
}

// NewTracker creates a tracker persisting under dir. uploader may be nil,
// in which case events are only kept locally.
func NewTracker(dir string, uploader Uploader, logger *zap.Logger) (*Tracker, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create analytics dir: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	t := &Tracker{
		filePath: filepath.Join(dir, "analytics.json"),
		uploader: uploader,
		logger:   logger,
		data: trackerData{
			Version: "1.0",
			ByEvent: make(map[string]Counts),
			ByDate:  make(map[string]int),
		},
	}
	if err := t.load(); err != nil {
		// Corrupt or missing history is not worth failing startup over.
		t.logger.Warn("analytics history unreadable, starting fresh", zap.Error(err))
	}
	return t, nil
}

func (t *Tracker) load() error {
	data, err := os.ReadFile(t.filePath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, &t.data); err != nil {
		return err
	}
	if t.data.ByEvent == nil {
		t.data.ByEvent = make(map[string]Counts)
	}
	if t.data.ByDate == nil {
		t.data.ByDate = make(map[string]int)
	}
	return nil
}

// Track records one occurrence of an event and mirrors it to the server in
// the background when an uploader is configured.
func (t *Tracker) Track(ctx context.Context, name string, verseID int) {
	now := time.Now()
	today := now.Format(api.DateFormat)
	stamp := now.Format(time.RFC3339)

	t.mu.Lock()
	c := t.data.ByEvent[name]
	if c.FirstSeen == "" {
		c.FirstSeen = stamp
	}
	c.Total++
	c.LastSeen = stamp
	t.data.ByEvent[name] = c
	t.data.ByDate[today]++
	t.mu.Unlock()

	if t.uploader == nil {
		return
	}
	// Detached from the caller's context so screen changes don't cancel the
	// upload mid-flight.
	go func() {
		uctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := t.uploader.RecordEvent(uctx, name, verseID, nil); err != nil {
			t.logger.Debug("event upload failed",
				zap.String("event", name),
				zap.Error(err))
		}
	}()
}

// Count returns the local total for an event.
func (t *Tracker) Count(name string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.data.ByEvent[name].Total
}

// TodayCount returns how many events were recorded today.
func (t *Tracker) TodayCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.data.ByDate[time.Now().Format(api.DateFormat)]
}

// Save writes the aggregates to disk.
func (t *Tracker) Save() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	data, err := json.MarshalIndent(t.data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(t.filePath, data, 0644)
}
