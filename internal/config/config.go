// Package config provides YAML-based game configuration loading for the
// snake platform.
package config

import "fmt"

// Config contains all tunable game parameters.
type Config struct {
	Grid GridConfig `yaml:"grid"`
	Game GameConfig `yaml:"game"`
}

// GridConfig defines the playfield.
type GridConfig struct {
	Size int `yaml:"size"` // N for the N×N grid
}

// GameConfig defines simulation parameters.
type GameConfig struct {
	TickMillis int `yaml:"tick_ms"`     // Fixed tick period in milliseconds
	FoodReward int `yaml:"food_reward"` // Score increment per food
	StartX     int `yaml:"start_x"`     // Snake start cell
	StartY     int `yaml:"start_y"`
}

// Validate checks the configuration for values the simulation cannot run
// with.
func (c Config) Validate() error {
	if c.Grid.Size < 4 {
		return fmt.Errorf("config: grid size %d too small, need at least 4", c.Grid.Size)
	}
	if c.Game.TickMillis <= 0 {
		return fmt.Errorf("config: tick_ms must be positive, got %d", c.Game.TickMillis)
	}
	if c.Game.FoodReward <= 0 {
		return fmt.Errorf("config: food_reward must be positive, got %d", c.Game.FoodReward)
	}
	if c.Game.StartX < 0 || c.Game.StartX >= c.Grid.Size ||
		c.Game.StartY < 0 || c.Game.StartY >= c.Grid.Size {
		return fmt.Errorf("config: start cell (%d, %d) outside the %d×%d grid",
			c.Game.StartX, c.Game.StartY, c.Grid.Size, c.Grid.Size)
	}
	return nil
}
