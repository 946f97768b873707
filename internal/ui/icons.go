package ui

// Glyphs used in terminal output
const (
	IconSwatch    = "  " // painted with the color as background
	IconSeparator = "│"
	IconNoResults = "∅"
)
