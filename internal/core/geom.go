// Package core provides fundamental types shared by the game core and the
// terminal platform. It contains no external dependencies (especially no
// Bubble Tea) to keep game logic pure and testable.
package core

// Cell is a discrete playfield coordinate on the N×N grid.
// Cells are immutable values; operations return new cells.
type Cell struct {
	X, Y int
}

// Add returns the cell offset by (dx, dy).
func (c Cell) Add(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
