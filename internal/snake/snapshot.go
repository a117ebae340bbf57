package snake

import "github.com/vovakirdan/snake-tui/internal/core"

// Snapshot is the read-only view of a session handed to renderers and
// score displays once per draw cycle. The body slice is a copy; observers
// cannot reach back into live state.
type Snapshot struct {
	Board Board
	Cells []core.Cell // Head first
	Food  core.Cell
	Dir   Direction
	Phase Phase
	Score int
}

// Snapshot captures the current session state.
func (s Session) Snapshot() Snapshot {
	cells := make([]core.Cell, len(s.Snake))
	copy(cells, s.Snake)

	return Snapshot{
		Board: s.Board,
		Cells: cells,
		Food:  s.Food,
		Dir:   s.Dir,
		Phase: s.Phase,
		Score: s.Score,
	}
}
