package snake

import (
	"math/rand"

	"github.com/vovakirdan/snake-tui/internal/core"
)

// Phase is the coarse lifecycle state of a session.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseRunning
	PhasePaused
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not_started"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Session is the complete state of one game run. It is a value: Step
// consumes a session and returns the next one, never mutating shared
// state. The controller is the sole owner and mutator of the live copy.
type Session struct {
	Board   Board
	Snake   []core.Cell // Head at index 0, tail at the last index
	Food    core.Cell
	Dir     Direction // Direction of the last applied move
	Pending Direction // Buffered direction for the next move
	Score   int
	Phase   Phase
	Reward  int // Score increment per food

	rng *rand.Rand
}

// NewSession constructs a fresh session: a snake of length 1 at the start
// cell, no direction yet, score 0, phase NotStarted, and an initial food
// placed on a free cell.
func NewSession(board Board, start core.Cell, reward int, rng *rand.Rand) Session {
	s := Session{
		Board:   board,
		Snake:   []core.Cell{start},
		Dir:     DirNone,
		Pending: DirNone,
		Score:   0,
		Phase:   PhaseNotStarted,
		Reward:  reward,
		rng:     rng,
	}
	s.Food = spawnFood(rng, board, s.Occupies)
	return s
}

// Occupies reports whether any snake segment sits on the cell.
func (s Session) Occupies(c core.Cell) bool {
	for _, seg := range s.Snake {
		if seg == c {
			return true
		}
	}
	return false
}

// Head returns the snake's head cell. The snake is never empty.
func (s Session) Head() core.Cell {
	return s.Snake[0]
}
