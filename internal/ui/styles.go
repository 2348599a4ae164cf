// Package ui provides terminal styling for gitpet CLI output.
// Semantic colors communicate pet condition at a glance; everything
// degrades to plain text on non-TTY output or NO_COLOR.
package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func init() {
	if !ShouldUseColor() {
		lipgloss.SetColorProfile(termenv.Ascii)
	} else {
		lipgloss.SetColorProfile(termenv.TrueColor)
	}
}

// Adaptive palette (light/dark variants).
var (
	ColorGood = lipgloss.AdaptiveColor{
		Light: "#86b300",
		Dark:  "#c2d94c",
	}
	ColorWarn = lipgloss.AdaptiveColor{
		Light: "#f2ae49",
		Dark:  "#ffb454",
	}
	ColorBad = lipgloss.AdaptiveColor{
		Light: "#f07171",
		Dark:  "#f07178",
	}
	ColorMuted = lipgloss.AdaptiveColor{
		Light: "#828c99",
		Dark:  "#6c7680",
	}
	ColorAccent = lipgloss.AdaptiveColor{
		Light: "#399ee6",
		Dark:  "#59c2ff",
	}
	ColorMagic = lipgloss.AdaptiveColor{
		Light: "#a37acc",
		Dark:  "#d2a6ff",
	}
)

// ApplyTheme forces light or dark palette selection. "auto" (or anything
// unrecognized) keeps terminal background detection.
func ApplyTheme(theme string) {
	switch theme {
	case "dark":
		lipgloss.SetHasDarkBackground(true)
	case "light":
		lipgloss.SetHasDarkBackground(false)
	}
}

// Status icons.
const (
	IconPass = "✓"
	IconWarn = "⚠"
	IconFail = "✗"
)

var (
	accentStyle = lipgloss.NewStyle().Foreground(ColorAccent)
	mutedStyle  = lipgloss.NewStyle().Foreground(ColorMuted)
	magicStyle  = lipgloss.NewStyle().Foreground(ColorMagic)
)

// RenderAccent renders text in the accent color.
func RenderAccent(s string) string {
	return accentStyle.Render(s)
}

// RenderMuted renders secondary text.
func RenderMuted(s string) string {
	return mutedStyle.Render(s)
}

// RenderMagic renders evolution and resurrection callouts.
func RenderMagic(s string) string {
	return magicStyle.Render(s)
}

// VitalColor returns the bar color for a vital's current value.
func VitalColor(value float64) lipgloss.AdaptiveColor {
	switch {
	case value > 70:
		return ColorGood
	case value > 30:
		return ColorWarn
	default:
		return ColorBad
	}
}
