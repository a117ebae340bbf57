package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/snake-tui/internal/config"
	"github.com/vovakirdan/snake-tui/internal/core"
	"github.com/vovakirdan/snake-tui/internal/platform/tui"
	"github.com/vovakirdan/snake-tui/internal/snake"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the local terminal",
	Long: `Start a game in the current terminal.

Controls:
  Arrows/WASD - Steer the snake
  Enter       - Start
  Space/P     - Pause
  R           - New game (after game over)
  Q/Ctrl+C    - Quit

Examples:
  snake play
  snake play --seed 42
  snake play --tick 100
  snake play --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	gameCfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	ctrl := snake.NewController(snake.Options{
		Board:    snake.Board{Size: gameCfg.Grid.Size},
		Start:    core.Cell{X: gameCfg.Game.StartX, Y: gameCfg.Game.StartY},
		Reward:   gameCfg.Game.FoodReward,
		Interval: time.Duration(gameCfg.Game.TickMillis) * time.Millisecond,
		Seed:     flagSeed,
	})

	rtCfg := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
	}

	if err := tui.Run(ctrl, rtCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// loadGameConfig loads the YAML config and applies the --tick override.
func loadGameConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	if flagTick > 0 {
		cfg.Game.TickMillis = flagTick
	}
	return cfg, nil
}
