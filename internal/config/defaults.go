package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the built-in configuration: a 20×20 grid, 150ms ticks,
// 10 points per food, snake starting at the grid center.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Size: 20,
		},
		Game: GameConfig{
			TickMillis: 150,
			FoodReward: 10,
			StartX:     10,
			StartY:     10,
		},
	}
}
