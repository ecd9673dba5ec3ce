package gesture

import (
	"testing"
	"time"
)

// testClock lets tests advance time explicitly.
type testClock struct {
	now time.Time
}

func (c *testClock) advance(d time.Duration) { c.now = c.now.Add(d) }
func (c *testClock) read() time.Time         { return c.now }

func newTestTracker() (*Tracker, *testClock) {
	clock := &testClock{now: time.Date(2025, 12, 24, 9, 0, 0, 0, time.UTC)}
	return NewTrackerWithClock(clock.read), clock
}

func TestHorizontalSwipe_TriggersDayNavigation(t *testing.T) {
	tr, clock := newTestTracker()

	// 60px horizontal, 10px vertical: horizontal axis dominates, so this is
	// day navigation, never text-size cycling.
	tr.Begin(200, 300)
	tr.Move(230, 305)
	clock.advance(120 * time.Millisecond)
	got := tr.End(260, 310)

	if got != KindSwipeRight {
		t.Errorf("Expected swipe-right, got %s", got)
	}
}

func TestHorizontalSwipe_Left(t *testing.T) {
	tr, clock := newTestTracker()

	tr.Begin(200, 300)
	tr.Move(160, 300)
	clock.advance(100 * time.Millisecond)
	if got := tr.End(140, 300); got != KindSwipeLeft {
		t.Errorf("Expected swipe-left, got %s", got)
	}
}

func TestHorizontalSwipe_BelowThresholdIsNothing(t *testing.T) {
	tr, clock := newTestTracker()

	tr.Begin(200, 300)
	tr.Move(220, 300)
	clock.advance(100 * time.Millisecond)
	if got := tr.End(240, 300); got != KindNone {
		t.Errorf("Expected none for 40px swipe, got %s", got)
	}
}

func TestVerticalSwipe_CyclesTextSize(t *testing.T) {
	tr, clock := newTestTracker()

	tr.Begin(200, 400)
	tr.Move(202, 340)
	clock.advance(150 * time.Millisecond)
	if got := tr.End(204, 280); got != KindSwipeUp {
		t.Errorf("Expected swipe-up, got %s", got)
	}
}

func TestAxisLock_VerticalDriftOnHorizontalGestureIgnored(t *testing.T) {
	tr, clock := newTestTracker()

	// Axis is decided horizontal on the first decisive move; the later
	// large vertical drift must be ignored for this gesture instance.
	tr.Begin(200, 300)
	tr.Move(230, 302)
	tr.Move(250, 420)
	clock.advance(100 * time.Millisecond)
	if got := tr.End(260, 450); got != KindSwipeRight {
		t.Errorf("Expected axis-locked swipe-right, got %s", got)
	}
}

func TestLongPress_TriggersShare(t *testing.T) {
	tr, clock := newTestTracker()

	tr.Begin(200, 300)
	clock.advance(LongPressDuration + 50*time.Millisecond)
	if got := tr.End(203, 302); got != KindLongPress {
		t.Errorf("Expected long-press, got %s", got)
	}
}

func TestShortPress_IsNotLongPress(t *testing.T) {
	tr, clock := newTestTracker()

	tr.Begin(200, 300)
	clock.advance(LongPressDuration - 100*time.Millisecond)
	if got := tr.End(200, 300); got != KindNone {
		t.Errorf("Expected none for a short press, got %s", got)
	}
}

func TestDoubleTap_TogglesFavorite(t *testing.T) {
	tr, clock := newTestTracker()

	tr.Begin(200, 300)
	clock.advance(80 * time.Millisecond)
	tr.End(200, 300)

	clock.advance(200 * time.Millisecond)
	tr.Begin(201, 301)
	clock.advance(80 * time.Millisecond)
	if got := tr.End(201, 301); got != KindDoubleTap {
		t.Errorf("Expected double-tap, got %s", got)
	}
}

func TestDoubleTap_WindowExpires(t *testing.T) {
	tr, clock := newTestTracker()

	tr.Begin(200, 300)
	clock.advance(50 * time.Millisecond)
	tr.End(200, 300)

	clock.advance(DoubleTapWindow + 100*time.Millisecond)
	tr.Begin(200, 300)
	clock.advance(50 * time.Millisecond)
	if got := tr.End(200, 300); got != KindNone {
		t.Errorf("Expected none for taps %v apart, got %s", DoubleTapWindow+100*time.Millisecond, got)
	}
}

func TestPullRefresh_FiresOncePerGesture(t *testing.T) {
	tr, clock := newTestTracker()
	tr.SetScrollTop(true)

	tr.Begin(200, 100)
	tr.Move(200, 160)
	if got := tr.Move(200, 210); got != KindPullRefresh {
		t.Fatalf("Expected pull-refresh past threshold, got %s", got)
	}
	// Continuing the same pull must not fire again.
	if got := tr.Move(200, 280); got != KindNone {
		t.Errorf("Pull-refresh fired twice in one gesture: %s", got)
	}
	clock.advance(100 * time.Millisecond)
	if got := tr.End(200, 300); got != KindNone {
		t.Errorf("Consumed pull gesture classified as %s at end", got)
	}

	// A fresh pull is allowed to fire again.
	tr.Begin(200, 100)
	if got := tr.Move(200, 220); got != KindPullRefresh {
		t.Errorf("Second pull gesture did not refresh: %s", got)
	}
}

func TestPullRefresh_OnlyAtScrollTop(t *testing.T) {
	tr, _ := newTestTracker()
	tr.SetScrollTop(false)

	tr.Begin(200, 100)
	if got := tr.Move(200, 250); got != KindNone {
		t.Errorf("Pull-refresh fired while scrolled down: %s", got)
	}
}

func TestCancel_AbandonsGesture(t *testing.T) {
	tr, _ := newTestTracker()

	tr.Begin(200, 300)
	tr.Move(280, 300)
	tr.Cancel()
	if tr.Active() {
		t.Error("Tracker still active after cancel")
	}
	if got := tr.End(300, 300); got != KindNone {
		t.Errorf("End after cancel classified as %s", got)
	}
}
