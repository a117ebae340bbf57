package snake

import "github.com/vovakirdan/snake-tui/internal/core"

// Direction represents the snake's movement direction.
// DirNone is only valid before the first directional input.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Vector returns the unit grid offset for the direction.
// DirNone returns (0, 0).
func (d Direction) Vector() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	}
	return 0, 0
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirNone:
		return "none"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// DirectionFor maps a directional intent to a Direction.
// Non-directional intents map to DirNone.
func DirectionFor(in core.Intent) Direction {
	switch in {
	case core.IntentUp:
		return DirUp
	case core.IntentDown:
		return DirDown
	case core.IntentLeft:
		return DirLeft
	case core.IntentRight:
		return DirRight
	}
	return DirNone
}
