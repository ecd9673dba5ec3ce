// Package share formats verses for sharing outside the app.
package share

import (
	"fmt"
	"strings"

	qrcode "github.com/skip2/go-qrcode"

	"dailyverse/internal/api"
)

// Text builds the share line for a verse, mirroring what the share sheet
// sends: the verse text, its reference, and a link to the day.
func Text(v *api.Verse, baseURL string) string {
	if v == nil {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%q", strings.TrimSpace(v.VerseText))
	if v.BibleReference != "" {
		fmt.Fprintf(&b, " - %s", v.BibleReference)
	}
	if baseURL != "" {
		fmt.Fprintf(&b, "\n%s", Link(v, baseURL))
	}
	return b.String()
}

// Link returns the public URL for a verse's day.
func Link(v *api.Verse, baseURL string) string {
	return fmt.Sprintf("%s/?date=%s", strings.TrimRight(baseURL, "/"), v.Date)
}

// QR renders a terminal-printable QR code pointing at the verse's day.
func QR(v *api.Verse, baseURL string) (string, error) {
	q, err := qrcode.New(Link(v, baseURL), qrcode.Medium)
	if err != nil {
		return "", fmt.Errorf("failed to build QR code: %w", err)
	}
	return q.ToSmallString(false), nil
}
