package ui

import "github.com/charmbracelet/lipgloss"

// Styles defines all visual styles for terminal output
type Styles struct {
	Header lipgloss.Style
	Label  lipgloss.Style
	Text   lipgloss.Style
	Hint   lipgloss.Style
	Frame  lipgloss.Style
}

// DefaultStyles returns the default style configuration
func DefaultStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary),

		Label: lipgloss.NewStyle().
			Foreground(ColorMuted).
			Width(16),

		Text: lipgloss.NewStyle().
			Foreground(ColorText),

		Hint: lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true),

		Frame: lipgloss.NewStyle().
			Foreground(ColorBorder),
	}
}

// Swatch returns a style that paints a block in the given #RRGGBB color.
func Swatch(hex string) lipgloss.Style {
	return lipgloss.NewStyle().Background(lipgloss.Color(hex))
}
