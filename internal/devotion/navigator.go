// Package devotion holds the date-window navigation state machine at the
// heart of the client: which calendar day is on screen, whether a requested
// step is allowed, and which in-flight fetch generation is still current.
package devotion

import "time"

// WindowDays bounds navigation to the recent past: the visible date always
// stays within [today-WindowDays, today].
const WindowDays = 14

// DateFormat is the calendar-day layout shared with the API.
const DateFormat = "2006-01-02"

// LoadState is the lifecycle of a single verse (or community) load.
// A load re-entering StateLoading always clears the previous terminal
// state's content before the next result lands.
type LoadState int

const (
	// StateLoading is shown optimistically before the fetch resolves.
	StateLoading LoadState = iota
	// StateDisplayed means a successful response with a non-nil payload.
	StateDisplayed
	// StateEmpty means the call succeeded but the day has no content.
	StateEmpty
	// StateOffline means a network or parse failure.
	StateOffline
)

func (s LoadState) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateDisplayed:
		return "displayed"
	case StateEmpty:
		return "empty"
	case StateOffline:
		return "offline"
	default:
		return "unknown"
	}
}

// Navigator owns the current calendar day and the fetch generation counter.
// Every accepted navigation bumps the epoch; responses tagged with an older
// epoch are stale and must be discarded rather than rendered.
type Navigator struct {
	current time.Time
	epoch   uint64
	clock   func() time.Time
}

// Option configures a Navigator.
type Option func(*Navigator)

// WithClock overrides the time source, used by tests.
func WithClock(clock func() time.Time) Option {
	return func(n *Navigator) { n.clock = clock }
}

// NewNavigator starts on today's date at epoch zero.
func NewNavigator(opts ...Option) *Navigator {
	n := &Navigator{clock: time.Now}
	for _, opt := range opts {
		opt(n)
	}
	n.current = n.today()
	return n
}

func (n *Navigator) today() time.Time {
	t := n.clock()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Current returns the displayed calendar day.
func (n *Navigator) Current() time.Time {
	return n.current
}

// CurrentDate returns the displayed day in API format.
func (n *Navigator) CurrentDate() string {
	return n.current.Format(DateFormat)
}

// IsToday reports whether the displayed day is the current day.
func (n *Navigator) IsToday() bool {
	return n.current.Equal(n.today())
}

// Epoch returns the current fetch generation.
func (n *Navigator) Epoch() uint64 {
	return n.epoch
}

// Stale reports whether a response tagged with the given epoch was
// superseded by a later navigation.
func (n *Navigator) Stale(epoch uint64) bool {
	return epoch != n.epoch
}

// InWindow reports whether a day is within the navigable range.
func (n *Navigator) InWindow(day time.Time) bool {
	today := n.today()
	earliest := today.AddDate(0, 0, -WindowDays)
	return !day.Before(earliest) && !day.After(today)
}

// NavigateDay shifts the displayed day one step in the given direction
// (negative for earlier, positive for later). Out-of-range steps are
// rejected without changing state or epoch; the caller's only feedback is
// the false return (surfaced as a terminal bell, nothing more).
func (n *Navigator) NavigateDay(direction int) (uint64, bool) {
	step := 1
	if direction < 0 {
		step = -1
	}
	candidate := n.current.AddDate(0, 0, step)
	if !n.InWindow(candidate) {
		return 0, false
	}
	n.current = candidate
	n.epoch++
	return n.epoch, true
}

// GoToToday resets to the current day unconditionally and starts a new
// fetch generation even when already on today, so a manual refresh always
// supersedes in-flight loads.
func (n *Navigator) GoToToday() uint64 {
	n.current = n.today()
	n.epoch++
	return n.epoch
}

// JumpTo moves directly to a day if it lies inside the window, bumping the
// epoch on success. Used when opening an entry from the recently-viewed
// list.
func (n *Navigator) JumpTo(day time.Time) (uint64, bool) {
	day = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	if !n.InWindow(day) {
		return 0, false
	}
	n.current = day
	n.epoch++
	return n.epoch, true
}
