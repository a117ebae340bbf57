package snake

import (
	"fmt"

	"github.com/vovakirdan/snake-tui/internal/core"
)

// CollisionKind distinguishes the two ways a run can end.
type CollisionKind int

const (
	CollisionWall CollisionKind = iota
	CollisionSelf
)

// String returns a human-readable name for the collision kind.
func (k CollisionKind) String() string {
	switch k {
	case CollisionWall:
		return "wall"
	case CollisionSelf:
		return "self"
	default:
		return "unknown"
	}
}

// CollisionError reports the collision that ended a run. It is an expected
// terminal game event, not a fault: it drives the Running→GameOver
// transition, and the only remedy is Reset.
type CollisionError struct {
	Kind CollisionKind
	At   core.Cell
}

// Error implements the error interface.
func (e *CollisionError) Error() string {
	return fmt.Sprintf("snake: %s collision at (%d, %d)", e.Kind, e.At.X, e.At.Y)
}
