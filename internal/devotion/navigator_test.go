package devotion

import (
	"testing"
	"time"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

var testNow = time.Date(2025, time.December, 24, 15, 30, 0, 0, time.UTC)

func TestNavigator_StartsOnToday(t *testing.T) {
	n := NewNavigator(WithClock(fixedClock(testNow)))

	if got := n.CurrentDate(); got != "2025-12-24" {
		t.Errorf("Expected start date 2025-12-24, got %s", got)
	}
	if !n.IsToday() {
		t.Error("Expected navigator to start on today")
	}
	if n.Epoch() != 0 {
		t.Errorf("Expected epoch 0 at start, got %d", n.Epoch())
	}
}

func TestNavigateDay_ReachesEveryDayInWindow(t *testing.T) {
	n := NewNavigator(WithClock(fixedClock(testNow)))

	// Walk back one day at a time; each step must be accepted and must bump
	// the epoch exactly once (one verse fetch + one community fetch per
	// generation).
	for i := 1; i <= WindowDays; i++ {
		before := n.Epoch()
		epoch, ok := n.NavigateDay(-1)
		if !ok {
			t.Fatalf("Step %d into the window was rejected", i)
		}
		if epoch != before+1 {
			t.Fatalf("Step %d bumped epoch from %d to %d, want +1", i, before, epoch)
		}
		want := testNow.AddDate(0, 0, -i).Format(DateFormat)
		if got := n.CurrentDate(); got != want {
			t.Fatalf("Step %d landed on %s, want %s", i, got, want)
		}
	}
}

func TestNavigateDay_RejectsBeyondWindowStart(t *testing.T) {
	n := NewNavigator(WithClock(fixedClock(testNow)))
	for i := 0; i < WindowDays; i++ {
		n.NavigateDay(-1)
	}

	before, beforeEpoch := n.CurrentDate(), n.Epoch()
	if _, ok := n.NavigateDay(-1); ok {
		t.Error("Expected step beyond the 14-day window to be rejected")
	}
	if n.CurrentDate() != before {
		t.Errorf("Rejected step changed date from %s to %s", before, n.CurrentDate())
	}
	if n.Epoch() != beforeEpoch {
		t.Errorf("Rejected step changed epoch from %d to %d; no fetch may occur", beforeEpoch, n.Epoch())
	}
}

func TestNavigateDay_RejectsFuture(t *testing.T) {
	n := NewNavigator(WithClock(fixedClock(testNow)))

	if _, ok := n.NavigateDay(1); ok {
		t.Error("Expected step past today to be rejected")
	}
	if !n.IsToday() {
		t.Error("Rejected forward step must leave the date on today")
	}
}

func TestNavigateDay_ForwardAfterGoingBack(t *testing.T) {
	n := NewNavigator(WithClock(fixedClock(testNow)))
	n.NavigateDay(-1)
	n.NavigateDay(-1)

	if _, ok := n.NavigateDay(1); !ok {
		t.Fatal("Expected forward step inside the window to succeed")
	}
	if got := n.CurrentDate(); got != "2025-12-23" {
		t.Errorf("Expected 2025-12-23, got %s", got)
	}
}

func TestGoToToday_UnconditionalAndSupersedes(t *testing.T) {
	n := NewNavigator(WithClock(fixedClock(testNow)))
	n.NavigateDay(-1)
	inflight := n.Epoch()

	epoch := n.GoToToday()
	if !n.IsToday() {
		t.Error("GoToToday must land on today")
	}
	if epoch != inflight+1 {
		t.Errorf("GoToToday epoch = %d, want %d", epoch, inflight+1)
	}
	if !n.Stale(inflight) {
		t.Error("The previous generation must be stale after GoToToday")
	}

	// Already on today: still starts a new generation (manual refresh).
	again := n.GoToToday()
	if again != epoch+1 {
		t.Errorf("Second GoToToday epoch = %d, want %d", again, epoch+1)
	}
}

func TestStale_DiscardsSupersededResponses(t *testing.T) {
	n := NewNavigator(WithClock(fixedClock(testNow)))

	first, _ := n.NavigateDay(-1)
	second, _ := n.NavigateDay(-1)

	if !n.Stale(first) {
		t.Error("Response from the first navigation must be stale")
	}
	if n.Stale(second) {
		t.Error("Response from the latest navigation must not be stale")
	}
}

func TestJumpTo_ClampedToWindow(t *testing.T) {
	n := NewNavigator(WithClock(fixedClock(testNow)))

	if _, ok := n.JumpTo(testNow.AddDate(0, 0, -3)); !ok {
		t.Error("Jump inside the window should succeed")
	}
	if got := n.CurrentDate(); got != "2025-12-21" {
		t.Errorf("Expected 2025-12-21, got %s", got)
	}

	if _, ok := n.JumpTo(testNow.AddDate(0, 0, -30)); ok {
		t.Error("Jump outside the window must be rejected")
	}
	if got := n.CurrentDate(); got != "2025-12-21" {
		t.Errorf("Rejected jump moved the date to %s", got)
	}
}

func TestLoadState_String(t *testing.T) {
	cases := map[LoadState]string{
		StateLoading:   "loading",
		StateDisplayed: "displayed",
		StateEmpty:     "empty",
		StateOffline:   "offline",
	}
	for state, want := range cases {
		if got := state.String(); got != want {
			t.Errorf("LoadState(%d).String() = %s, want %s", state, got, want)
		}
	}
}
