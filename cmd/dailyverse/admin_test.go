package main

import (
	"testing"

	"dailyverse/internal/api"
)

func TestNextChoice(t *testing.T) {
	choices := []string{"all", "text", "image"}
	if got := nextChoice("all", choices); got != "text" {
		t.Errorf("nextChoice(all) = %q", got)
	}
	if got := nextChoice("image", choices); got != "all" {
		t.Errorf("nextChoice(image) = %q, want wrap to all", got)
	}
	if got := nextChoice("bogus", choices); got != "all" {
		t.Errorf("nextChoice(bogus) = %q, want first choice", got)
	}
}

func TestBuildModerationFeed(t *testing.T) {
	feed := buildModerationFeed(&api.Community{
		PrayerRequests: []api.PrayerRequest{
			{ID: 1, Date: "2026-09-01", Content: "for strength", IsApproved: true, IPAddress: "10.0.0.5"},
		},
		PraiseReports: []api.PraiseReport{
			{ID: 2, Date: "2026-09-01", Content: "answered prayer", IsHidden: true},
		},
	})
	if len(feed) != 2 {
		t.Fatalf("len(feed) = %d", len(feed))
	}
	if feed[0].kind != api.KindPrayerRequest || !feed[0].approved || feed[0].ip != "10.0.0.5" {
		t.Errorf("feed[0] = %+v", feed[0])
	}
	if feed[1].kind != api.KindPraiseReport || !feed[1].hidden {
		t.Errorf("feed[1] = %+v", feed[1])
	}
	if buildModerationFeed(nil) != nil {
		t.Error("nil community must yield nil feed")
	}
}

func TestAdmin_ApplyFiltersClampsSelection(t *testing.T) {
	m := adminModel{
		verses: []api.Verse{
			{ID: 1, VerseText: "a", ContentType: api.ContentText, Published: true},
			{ID: 2, VerseText: "b", ContentType: api.ContentText},
		},
		selected: 1,
	}
	m.filters.Status = "published"
	m.applyFilters()

	if len(m.filtered) != 1 {
		t.Fatalf("len(filtered) = %d", len(m.filtered))
	}
	if m.selected != 0 {
		t.Errorf("selected = %d, want clamp to 0", m.selected)
	}
}
