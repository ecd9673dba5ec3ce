package engagement

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"dailyverse/internal/localstate"
)

func newTestLedger(t *testing.T) (*Ledger, *localstate.Store) {
	t.Helper()
	store, err := localstate.Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	l, err := NewLedger(store)
	if err != nil {
		t.Fatalf("NewLedger failed: %v", err)
	}
	return l, store
}

func TestToggleFavorite_Idempotent(t *testing.T) {
	l, _ := newTestLedger(t)
	l.ToggleFavorite(1)
	l.ToggleFavorite(2)
	before := l.Favorites()

	// An even number of toggles on the same id restores the set exactly.
	if on, _ := l.ToggleFavorite(7); !on {
		t.Error("First toggle should add the favorite")
	}
	if on, _ := l.ToggleFavorite(7); on {
		t.Error("Second toggle should remove the favorite")
	}

	if diff := cmp.Diff(before, l.Favorites()); diff != "" {
		t.Errorf("Double toggle changed the favorites set:\n%s", diff)
	}
}

func TestToggleFavorite_PersistsAcrossReload(t *testing.T) {
	l, store := newTestLedger(t)
	l.ToggleFavorite(42)

	reloaded, err := NewLedger(store)
	if err != nil {
		t.Fatalf("NewLedger failed: %v", err)
	}
	if !reloaded.IsFavorite(42) {
		t.Error("Favorite lost after reload")
	}
}

func TestRecordView_DedupeAndBound(t *testing.T) {
	l, _ := newTestLedger(t)

	for i := 1; i <= RecentLimit+5; i++ {
		l.RecordView(RecentVerse{VerseID: i, Date: "2025-12-01", ViewedAt: time.Now()})
	}
	recent := l.RecentlyViewed()
	if len(recent) != RecentLimit {
		t.Fatalf("Recently viewed holds %d entries, want %d", len(recent), RecentLimit)
	}
	if recent[0].VerseID != RecentLimit+5 {
		t.Errorf("Most recent entry is %d, want %d", recent[0].VerseID, RecentLimit+5)
	}

	// Re-viewing an older verse moves it to the front without duplication.
	l.RecordView(RecentVerse{VerseID: RecentLimit + 3, Date: "2025-12-01"})
	recent = l.RecentlyViewed()
	if recent[0].VerseID != RecentLimit+3 {
		t.Errorf("Re-viewed verse is not first: %d", recent[0].VerseID)
	}
	seen := map[int]int{}
	for _, r := range recent {
		seen[r.VerseID]++
	}
	for id, n := range seen {
		if n > 1 {
			t.Errorf("Verse %d appears %d times in recently viewed", id, n)
		}
	}
}

func TestInteractions_RecordedOnlyWhenMarked(t *testing.T) {
	l, store := newTestLedger(t)

	if l.HasPrayed(3) {
		t.Error("Fresh ledger claims a prayer interaction")
	}
	// The caller marks only after server confirmation; until then the flag
	// must stay off.
	if err := l.MarkPrayed(3); err != nil {
		t.Fatalf("MarkPrayed failed: %v", err)
	}
	if !l.HasPrayed(3) {
		t.Error("MarkPrayed did not record the interaction")
	}
	if l.HasCelebrated(3) {
		t.Error("Prayer mark leaked into celebration state")
	}

	l.MarkCelebrated(9)
	reloaded, _ := NewLedger(store)
	if !reloaded.HasPrayed(3) || !reloaded.HasCelebrated(9) {
		t.Error("Interactions lost after reload")
	}
}
