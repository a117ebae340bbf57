// Package snake implements the grid snake simulation: the board, the snake
// body, food spawning, the fixed-tick step function and the session
// controller. The package holds pure logic only; rendering and input
// mapping live in the platform layer.
package snake

import "github.com/vovakirdan/snake-tui/internal/core"

// Board is the N×N playfield. Cells range over [0, Size) on both axes.
type Board struct {
	Size int
}

// Contains reports whether the cell lies inside the board.
func (b Board) Contains(c core.Cell) bool {
	return c.X >= 0 && c.X < b.Size && c.Y >= 0 && c.Y < b.Size
}

// CellCount returns the total number of cells on the board.
func (b Board) CellCount() int {
	return b.Size * b.Size
}
