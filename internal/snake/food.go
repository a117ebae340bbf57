package snake

import (
	"math/rand"

	"github.com/vovakirdan/snake-tui/internal/core"
)

// spawnFood picks a uniformly random cell that is not occupied, by
// rejection sampling over the whole board. If the snake covers every cell
// this loops forever; that degenerate state is unreachable at a 20×20
// board with starting length 1 and is deliberately not guarded.
func spawnFood(rng *rand.Rand, board Board, occupied func(core.Cell) bool) core.Cell {
	for {
		c := core.Cell{X: rng.Intn(board.Size), Y: rng.Intn(board.Size)}
		if !occupied(c) {
			return c
		}
	}
}
