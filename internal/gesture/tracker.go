// Package gesture classifies a pointer sequence into exactly one gesture.
// The tracker is fed begin/move/end events in pixel coordinates; the
// terminal front end scales cell positions to approximate pixels before
// feeding it. Classification is mutually exclusive per gesture instance:
// once the dominant axis is determined, the other axis is ignored until the
// pointer lifts.
package gesture

import "time"

// Kind is the single classification of a completed (or, for pull-to-refresh,
// in-flight) gesture.
type Kind int

const (
	KindNone Kind = iota
	// KindSwipeLeft / KindSwipeRight navigate a day forward / back.
	KindSwipeLeft
	KindSwipeRight
	// KindSwipeUp / KindSwipeDown cycle the text size.
	KindSwipeUp
	KindSwipeDown
	// KindLongPress opens the share flow.
	KindLongPress
	// KindDoubleTap toggles the favorite.
	KindDoubleTap
	// KindPullRefresh reloads the current day; only fires at scroll top.
	KindPullRefresh
)

func (k Kind) String() string {
	switch k {
	case KindSwipeLeft:
		return "swipe-left"
	case KindSwipeRight:
		return "swipe-right"
	case KindSwipeUp:
		return "swipe-up"
	case KindSwipeDown:
		return "swipe-down"
	case KindLongPress:
		return "long-press"
	case KindDoubleTap:
		return "double-tap"
	case KindPullRefresh:
		return "pull-refresh"
	default:
		return "none"
	}
}

// Classification thresholds.
const (
	// HorizontalThreshold is the horizontal delta that triggers day
	// navigation.
	HorizontalThreshold = 50
	// VerticalThreshold is the vertical delta that cycles text size.
	VerticalThreshold = 100
	// PullThreshold is the downward pull at scroll top that refreshes.
	PullThreshold = 100
	// LongPressDuration is the hold time that triggers share.
	LongPressDuration = 800 * time.Millisecond
	// DoubleTapWindow is the maximum gap between two taps.
	DoubleTapWindow = 500 * time.Millisecond
	// axisSlop is the movement below which a press still counts as a tap
	// or hold, and above which the dominant axis is locked in.
	axisSlop = 10
)

type axis int

const (
	axisUndecided axis = iota
	axisHorizontal
	axisVertical
)

// Tracker is the single global touch-tracking state machine.
type Tracker struct {
	active       bool
	startX       int
	startY       int
	curX         int
	curY         int
	startTime    time.Time
	dominant     axis
	atTop        bool
	refreshFired bool

	lastTapTime time.Time

	clock func() time.Time
}

// NewTracker returns a tracker using the real clock.
func NewTracker() *Tracker {
	return &Tracker{clock: time.Now}
}

// NewTrackerWithClock injects a time source for tests.
func NewTrackerWithClock(clock func() time.Time) *Tracker {
	return &Tracker{clock: clock}
}

// SetScrollTop tells the tracker whether the view is scrolled to the top;
// pull-to-refresh is armed only there.
func (t *Tracker) SetScrollTop(atTop bool) {
	t.atTop = atTop
}

// Active reports whether a gesture is in flight.
func (t *Tracker) Active() bool {
	return t.active
}

// Begin starts a new gesture at the given position.
func (t *Tracker) Begin(x, y int) {
	t.active = true
	t.startX, t.startY = x, y
	t.curX, t.curY = x, y
	t.startTime = t.clock()
	t.dominant = axisUndecided
	t.refreshFired = false
}

// Move advances the in-flight gesture. It returns KindPullRefresh exactly
// once per gesture when a downward pull at scroll top crosses the
// threshold; the re-entrancy guard keeps a single pull from firing twice.
// All other classifications wait for End.
func (t *Tracker) Move(x, y int) Kind {
	if !t.active {
		return KindNone
	}
	t.curX, t.curY = x, y
	dx, dy := x-t.startX, y-t.startY

	if t.dominant == axisUndecided && (abs(dx) > axisSlop || abs(dy) > axisSlop) {
		if abs(dx) >= abs(dy) {
			t.dominant = axisHorizontal
		} else {
			t.dominant = axisVertical
		}
	}

	if t.dominant == axisVertical && t.atTop && !t.refreshFired && dy > PullThreshold {
		t.refreshFired = true
		return KindPullRefresh
	}
	return KindNone
}

// End completes the gesture and returns its classification.
func (t *Tracker) End(x, y int) Kind {
	if !t.active {
		return KindNone
	}
	t.active = false
	t.curX, t.curY = x, y

	// A pull that already refreshed consumes the whole gesture.
	if t.refreshFired {
		return KindNone
	}

	now := t.clock()
	dx, dy := x-t.startX, y-t.startY
	held := now.Sub(t.startTime)

	switch t.dominant {
	case axisHorizontal:
		if dx <= -HorizontalThreshold {
			return KindSwipeLeft
		}
		if dx >= HorizontalThreshold {
			return KindSwipeRight
		}
	case axisVertical:
		if dy <= -VerticalThreshold {
			return KindSwipeUp
		}
		if dy >= VerticalThreshold {
			return KindSwipeDown
		}
	case axisUndecided:
		// Stationary press: hold or tap.
		if held >= LongPressDuration {
			t.lastTapTime = time.Time{}
			return KindLongPress
		}
		if !t.lastTapTime.IsZero() && now.Sub(t.lastTapTime) < DoubleTapWindow {
			t.lastTapTime = time.Time{}
			return KindDoubleTap
		}
		t.lastTapTime = now
	}
	return KindNone
}

// Cancel abandons the in-flight gesture without classifying it.
func (t *Tracker) Cancel() {
	t.active = false
	t.refreshFired = false
	t.dominant = axisUndecided
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
