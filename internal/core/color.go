package core

// Color represents a foreground color for a screen cell.
// The platform maps these to ANSI codes; the core stays terminal-agnostic.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorWhite
	ColorBrightGreen
	ColorBrightWhite
	ColorOrange
	ColorGray
)
