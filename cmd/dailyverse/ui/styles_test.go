package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"dailyverse/internal/brand"
)

func TestNewStyles_CardUsesBrandBackground(t *testing.T) {
	theme := brand.Default()
	s := NewStyles(theme, false)
	if got := s.Card.GetBackground(); got != lipgloss.Color(theme.Background) {
		t.Errorf("card background = %v, want brand background %q", got, theme.Background)
	}
}

func TestNewStyles_DarkSwapsBackgroundPair(t *testing.T) {
	s := NewStyles(brand.Default(), true)
	if got := s.Card.GetBackground(); got != lipgloss.Color("#141d2b") {
		t.Errorf("dark card background = %v", got)
	}
	if got := s.Card.GetForeground(); got != lipgloss.Color("#f2f2f2") {
		t.Errorf("dark card foreground = %v", got)
	}
	if !s.Dark {
		t.Error("Dark flag not set")
	}
}
