package snake

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/snake-tui/internal/core"
)

func TestSpawnFoodAvoidsOccupiedCells(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	board := Board{Size: 20}

	occupied := map[core.Cell]bool{}
	for x := 0; x < 20; x++ {
		for y := 0; y < 10; y++ {
			occupied[core.Cell{X: x, Y: y}] = true
		}
	}

	for i := 0; i < 200; i++ {
		c := spawnFood(rng, board, func(c core.Cell) bool { return occupied[c] })
		if occupied[c] {
			t.Fatalf("spawn %d: food on an occupied cell %v", i, c)
		}
		if !board.Contains(c) {
			t.Fatalf("spawn %d: food out of bounds %v", i, c)
		}
	}
}

func TestSpawnFoodSingleFreeCell(t *testing.T) {
	// Rejection sampling must eventually find the only free cell.
	rng := rand.New(rand.NewSource(7))
	board := Board{Size: 4}
	free := core.Cell{X: 3, Y: 3}

	c := spawnFood(rng, board, func(c core.Cell) bool { return c != free })
	if c != free {
		t.Errorf("spawnFood = %v, expected the only free cell %v", c, free)
	}
}

func TestSpawnFoodDeterministic(t *testing.T) {
	board := Board{Size: 20}
	none := func(core.Cell) bool { return false }

	a := spawnFood(rand.New(rand.NewSource(42)), board, none)
	b := spawnFood(rand.New(rand.NewSource(42)), board, none)
	if a != b {
		t.Errorf("Same seed produced different cells: %v vs %v", a, b)
	}
}

func TestNewSessionFoodPlacement(t *testing.T) {
	rng := rand.New(rand.NewSource(55))
	s := NewSession(Board{Size: 20}, core.Cell{X: 10, Y: 10}, 10, rng)

	if s.Occupies(s.Food) {
		t.Errorf("Initial food %v overlaps the snake", s.Food)
	}
	if !s.Board.Contains(s.Food) {
		t.Errorf("Initial food %v out of bounds", s.Food)
	}
}
