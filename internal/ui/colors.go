package ui

import "github.com/charmbracelet/lipgloss"

// Color palette for terminal output
var (
	ColorPrimary = lipgloss.Color("212") // Pink/magenta for the query header
	ColorText    = lipgloss.Color("252") // Light gray for representation text
	ColorMuted   = lipgloss.Color("241") // Gray for labels and hints
	ColorBorder  = lipgloss.Color("240") // Gray for the swatch frame
)
