// Package brand manages the organization's brand theme: a fixed set of
// named colors edited from the admin dashboard, persisted locally, and
// mirrored into the rendered styles.
package brand

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"dailyverse/internal/localstate"
)

// Theme is the fixed named color set plus the derived menu-text value.
// There is no schema version; the only validation is presence.
type Theme struct {
	Primary    string `json:"primary"`
	Accent     string `json:"accent"`
	Background string `json:"background"`
	Muted      string `json:"muted"`
	Success    string `json:"success"`
	Black      string `json:"black"`
	// MenuText is derived from Primary's luminance, never edited directly.
	MenuText string `json:"menuText"`
}

// Default returns the stock palette.
func Default() Theme {
	t := Theme{
		Primary:    "#2d5a87",
		Accent:     "#d4a853",
		Background: "#faf7f2",
		Muted:      "#8a8578",
		Success:    "#6d9b67",
		Black:      "#1b1b1b",
	}
	t.MenuText = deriveMenuText(t.Primary)
	return t
}

// Fields lists the editable color names in display order.
func Fields() []string {
	return []string{"primary", "accent", "background", "muted", "success", "black"}
}

// Editor owns the current theme and its persistence. Editing any single
// color re-derives the full theme object so a partial edit never loses the
// other fields.
type Editor struct {
	mu      sync.Mutex
	store   *localstate.Store
	current Theme
}

// NewEditor loads the persisted theme, falling back to the default palette.
func NewEditor(store *localstate.Store) *Editor {
	e := &Editor{store: store, current: Default()}
	var saved Theme
	if ok, err := store.Get(localstate.KeyBrandTheme, &saved); err == nil && ok {
		e.current = merge(e.current, saved)
	}
	return e
}

// Current returns the live theme.
func (e *Editor) Current() Theme {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.current
}

// SetColor updates one named color, re-derives the theme, and persists it.
func (e *Editor) SetColor(field, value string) (Theme, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	next := e.current
	switch strings.ToLower(field) {
	case "primary":
		next.Primary = value
	case "accent":
		next.Accent = value
	case "background":
		next.Background = value
	case "muted":
		next.Muted = value
	case "success":
		next.Success = value
	case "black":
		next.Black = value
	default:
		return e.current, fmt.Errorf("unknown theme color %q", field)
	}
	// Unset fields fall back to the previous values.
	next = merge(e.current, next)
	next.MenuText = deriveMenuText(next.Primary)

	if err := e.store.Set(localstate.KeyBrandTheme, next); err != nil {
		return e.current, err
	}
	e.current = next
	return next, nil
}

// Reset restores the default palette and clears the persisted state.
func (e *Editor) Reset() (Theme, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.store.Delete(localstate.KeyBrandTheme); err != nil {
		return e.current, err
	}
	e.current = Default()
	return e.current, nil
}

// Export serializes the current theme to a JSON document.
func (e *Editor) Export() ([]byte, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return json.MarshalIndent(e.current, "", "  ")
}

// Import parses an uploaded theme document, applies recognized fields, and
// silently ignores unrecognized ones. A malformed document returns an error
// and leaves the current theme untouched.
func (e *Editor) Import(data []byte) (Theme, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return e.Current(), fmt.Errorf("invalid theme file: %w", err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	next := e.current
	apply := func(key string, dst *string) {
		msg, ok := raw[key]
		if !ok {
			return
		}
		var v string
		if err := json.Unmarshal(msg, &v); err != nil || v == "" {
			return
		}
		*dst = v
	}
	apply("primary", &next.Primary)
	apply("accent", &next.Accent)
	apply("background", &next.Background)
	apply("muted", &next.Muted)
	apply("success", &next.Success)
	apply("black", &next.Black)
	next.MenuText = deriveMenuText(next.Primary)

	if err := e.store.Set(localstate.KeyBrandTheme, next); err != nil {
		return e.current, err
	}
	e.current = next
	return next, nil
}

// merge fills empty fields of next from base.
func merge(base, next Theme) Theme {
	pick := func(next, base string) string {
		if next == "" {
			return base
		}
		return next
	}
	out := Theme{
		Primary:    pick(next.Primary, base.Primary),
		Accent:     pick(next.Accent, base.Accent),
		Background: pick(next.Background, base.Background),
		Muted:      pick(next.Muted, base.Muted),
		Success:    pick(next.Success, base.Success),
		Black:      pick(next.Black, base.Black),
	}
	out.MenuText = deriveMenuText(out.Primary)
	return out
}

// deriveMenuText picks white or near-black menu text depending on the
// primary color's relative luminance.
func deriveMenuText(primary string) string {
	r, g, b, ok := parseHex(primary)
	if !ok {
		return "#ffffff"
	}
	luminance := 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
	if luminance > 150 {
		return "#1b1b1b"
	}
	return "#ffffff"
}

func parseHex(s string) (r, g, b uint8, ok bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), true
}
