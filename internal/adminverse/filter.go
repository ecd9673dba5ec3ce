// Package adminverse implements the dashboard's client-side verse list
// filtering. Filters never mutate the underlying list and compose as a
// logical AND; any combination may be active at once.
package adminverse

import (
	"strings"

	"dailyverse/internal/api"
)

// Filter values for the content-type and status dimensions.
const (
	FilterAll       = "all"
	StatusPublished = "published"
	StatusDraft     = "draft"
)

// FilterState is the ephemeral filter tuple over the in-memory verse list.
// It is deliberately not persisted.
type FilterState struct {
	Search string
	Type   string
	Status string
}

// NewFilterState returns the neutral filter that passes everything.
func NewFilterState() FilterState {
	return FilterState{Search: "", Type: FilterAll, Status: FilterAll}
}

// Active reports whether any dimension narrows the list, which decides
// between the "no verses exist" and "none match your filters" empty states.
func (f FilterState) Active() bool {
	return strings.TrimSpace(f.Search) != "" ||
		(f.Type != "" && f.Type != FilterAll) ||
		(f.Status != "" && f.Status != FilterAll)
}

// Apply filters verses in order: exact content-type match, exact
// published/draft match, then a case-insensitive substring search over the
// verse text, reference, and tags. Order is preserved; the input slice is
// never modified.
func (f FilterState) Apply(verses []api.Verse) []api.Verse {
	needle := strings.ToLower(strings.TrimSpace(f.Search))
	out := make([]api.Verse, 0, len(verses))
	for _, v := range verses {
		if f.Type != "" && f.Type != FilterAll && string(v.ContentType) != f.Type {
			continue
		}
		if f.Status == StatusPublished && !v.Published {
			continue
		}
		if f.Status == StatusDraft && v.Published {
			continue
		}
		if needle != "" && !matchesSearch(v, needle) {
			continue
		}
		out = append(out, v)
	}
	return out
}

func matchesSearch(v api.Verse, needle string) bool {
	haystack := strings.ToLower(v.VerseText + " " + v.BibleReference + " " + v.Tags)
	return strings.Contains(haystack, needle)
}
