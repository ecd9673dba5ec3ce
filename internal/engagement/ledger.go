// Package engagement tracks the visitor's interactions with content.
//
// Engagement state falls into three consistency categories, made explicit
// here instead of being decided ad hoc per feature:
//
//   - local-authoritative: favorites and the recently-viewed list live only
//     on this install; no server call is involved.
//   - server-authoritative: verse hearts; the client displays whatever count
//     the server returns and never increments ahead of confirmation.
//   - server-confirmed: prayed/celebrated flags; the local record is written
//     only after the server accepted the increment, so the "already done"
//     visual state never lies about a failed call.
package engagement

import (
	"fmt"
	"sync"
	"time"

	"dailyverse/internal/localstate"
)

// RecentLimit bounds the recently-viewed list.
const RecentLimit = 10

// RecentVerse is one entry in the recently-viewed list.
type RecentVerse struct {
	VerseID   int       `json:"verse_id"`
	Date      string    `json:"date"`
	Reference string    `json:"reference"`
	ViewedAt  time.Time `json:"viewed_at"`
}

// Ledger holds the persisted engagement state for this install.
type Ledger struct {
	mu           sync.Mutex
	store        *localstate.Store
	favorites    []int
	recent       []RecentVerse
	interactions map[string]bool
}

// NewLedger loads persisted engagement state from the store.
func NewLedger(store *localstate.Store) (*Ledger, error) {
	l := &Ledger{
		store:        store,
		interactions: make(map[string]bool),
	}
	if _, err := store.Get(localstate.KeyFavorites, &l.favorites); err != nil {
		return nil, err
	}
	if _, err := store.Get(localstate.KeyRecentlyViewed, &l.recent); err != nil {
		return nil, err
	}
	if _, err := store.Get(localstate.KeyUserInteractions, &l.interactions); err != nil {
		return nil, err
	}
	if l.interactions == nil {
		l.interactions = make(map[string]bool)
	}
	return l, nil
}

// ToggleFavorite flips a verse in or out of the favorites set and persists
// the result. Toggling twice restores the prior contents exactly. Returns
// whether the verse is a favorite after the toggle.
func (l *Ledger) ToggleFavorite(verseID int) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, id := range l.favorites {
		if id == verseID {
			l.favorites = append(l.favorites[:i], l.favorites[i+1:]...)
			return false, l.store.Set(localstate.KeyFavorites, l.favorites)
		}
	}
	l.favorites = append(l.favorites, verseID)
	return true, l.store.Set(localstate.KeyFavorites, l.favorites)
}

// IsFavorite reports whether a verse is in the favorites set.
func (l *Ledger) IsFavorite(verseID int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, id := range l.favorites {
		if id == verseID {
			return true
		}
	}
	return false
}

// Favorites returns a copy of the favorites set in insertion order.
func (l *Ledger) Favorites() []int {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]int, len(l.favorites))
	copy(out, l.favorites)
	return out
}

// RecordView prepends a verse to the recently-viewed list, deduplicating by
// verse id and trimming to RecentLimit.
func (l *Ledger) RecordView(entry RecentVerse) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	filtered := l.recent[:0]
	for _, r := range l.recent {
		if r.VerseID != entry.VerseID {
			filtered = append(filtered, r)
		}
	}
	l.recent = append([]RecentVerse{entry}, filtered...)
	if len(l.recent) > RecentLimit {
		l.recent = l.recent[:RecentLimit]
	}
	return l.store.Set(localstate.KeyRecentlyViewed, l.recent)
}

// RecentlyViewed returns a copy of the list, most recent first.
func (l *Ledger) RecentlyViewed() []RecentVerse {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]RecentVerse, len(l.recent))
	copy(out, l.recent)
	return out
}

func interactionKey(kind string, id int) string {
	return fmt.Sprintf("%s_%d", kind, id)
}

// HasPrayed reports whether this install already prayed for a request.
func (l *Ledger) HasPrayed(requestID int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.interactions[interactionKey("prayer", requestID)]
}

// MarkPrayed records a confirmed prayer interaction. Callers must only
// invoke this after the server call succeeded.
func (l *Ledger) MarkPrayed(requestID int) error {
	return l.mark(interactionKey("prayer", requestID))
}

// HasCelebrated reports whether this install already celebrated a report.
func (l *Ledger) HasCelebrated(reportID int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.interactions[interactionKey("celebration", reportID)]
}

// MarkCelebrated records a confirmed celebration interaction.
func (l *Ledger) MarkCelebrated(reportID int) error {
	return l.mark(interactionKey("celebration", reportID))
}

func (l *Ledger) mark(key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.interactions[key] = true
	return l.store.Set(localstate.KeyUserInteractions, l.interactions)
}
