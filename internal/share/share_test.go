package share

import (
	"strings"
	"testing"

	"dailyverse/internal/api"
)

func TestText(t *testing.T) {
	v := &api.Verse{
		Date:           "2026-09-01",
		VerseText:      "The Lord is my shepherd.",
		BibleReference: "Psalm 23:1",
	}

	got := Text(v, "https://verse.example.com/")
	want := "\"The Lord is my shepherd.\" - Psalm 23:1\nhttps://verse.example.com/?date=2026-09-01"
	if got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
}

func TestText_NoReferenceNoURL(t *testing.T) {
	v := &api.Verse{Date: "2026-09-01", VerseText: "Rejoice always."}
	if got := Text(v, ""); got != "\"Rejoice always.\"" {
		t.Errorf("Text() = %q", got)
	}
}

func TestText_NilVerse(t *testing.T) {
	if got := Text(nil, "https://verse.example.com"); got != "" {
		t.Errorf("Text(nil) = %q, want empty", got)
	}
}

func TestLink_TrimsTrailingSlash(t *testing.T) {
	v := &api.Verse{Date: "2026-08-20"}
	got := Link(v, "https://verse.example.com///")
	if got != "https://verse.example.com/?date=2026-08-20" {
		t.Errorf("Link() = %q", got)
	}
}

func TestQR(t *testing.T) {
	v := &api.Verse{Date: "2026-09-01"}
	out, err := QR(v, "https://verse.example.com")
	if err != nil {
		t.Fatalf("QR() error: %v", err)
	}
	if !strings.Contains(out, "█") {
		t.Error("QR output does not look like a rendered code")
	}
}
