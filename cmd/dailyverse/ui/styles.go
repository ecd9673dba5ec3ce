// Package ui provides the visual styling for the dailyverse terminal client.
// Colors come from the church's brand theme so the terminal app matches the
// public site; dark mode inverts the background pair.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"dailyverse/internal/brand"
)

// Styles holds all the styled components, built from a brand theme.
type Styles struct {
	Brand brand.Theme
	Dark  bool

	// Layout
	Header lipgloss.Style
	Footer lipgloss.Style
	Card   lipgloss.Style

	// Text
	Title     lipgloss.Style
	Reference lipgloss.Style
	Body      lipgloss.Style
	Muted     lipgloss.Style
	Bold      lipgloss.Style

	// Status
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Offline lipgloss.Style

	// Interactive
	Prompt   lipgloss.Style
	Selected lipgloss.Style
	Badge    lipgloss.Style
	Heart    lipgloss.Style
	Spinner  lipgloss.Style
	Divider  lipgloss.Style
}

// NewStyles builds styles from a brand theme. dark swaps the page background
// for near-black while keeping the brand's primary and accent.
func NewStyles(t brand.Theme, dark bool) Styles {
	fg := lipgloss.Color(t.Black)
	bg := lipgloss.Color(t.Background)
	if dark {
		fg = lipgloss.Color("#f2f2f2")
		bg = lipgloss.Color("#141d2b")
	}

	return Styles{
		Brand: t,
		Dark:  dark,

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Primary)).
			Foreground(lipgloss.Color(t.MenuText)).
			Padding(0, 2).
			Bold(true),

		Footer: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 2),

		Card: lipgloss.NewStyle().
			Foreground(fg).
			Background(bg).
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Accent)),

		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Primary)).
			Bold(true).
			MarginBottom(1),

		Reference: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Italic(true),

		Body: lipgloss.NewStyle().
			Foreground(fg),

		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		Bold: lipgloss.NewStyle().
			Foreground(fg).
			Bold(true),

		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e53935")).
			Bold(true),

		Warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFC107")).
			Bold(true),

		Offline: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)).
			Italic(true),

		Prompt: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Primary)).
			Foreground(lipgloss.Color(t.MenuText)),

		Badge: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Accent)).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 1).
			Bold(true),

		Heart: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e53935")),

		Spinner: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		Divider: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),
	}
}

// DefaultStyles returns styles with the default brand palette in light mode.
func DefaultStyles() Styles {
	return NewStyles(brand.Default(), false)
}

// RenderDivider returns a horizontal divider.
func (s Styles) RenderDivider(width int) string {
	if width <= 0 {
		return ""
	}
	return s.Divider.Render(strings.Repeat("─", width))
}
