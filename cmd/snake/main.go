// snake is a terminal snake game.
//
// Usage:
//
//	snake play               - Play in the local terminal
//	snake serve              - Start an SSH server for remote play
//
// Global flags:
//
//	--config <path>  - Path to a game config YAML
//	--seed <value>   - RNG seed for reproducible runs
//	--tick <ms>      - Override the tick period in milliseconds
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig string
	flagSeed   int64
	flagTick   int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic grid game in your terminal",
	Long: `Snake is a terminal rendition of the classic grid game: steer the
snake with the arrow keys or WASD, eat food to grow, avoid the walls
and your own tail.

Available commands:
  play     - Play in the local terminal
  serve    - Start an SSH server for remote play

Examples:
  snake play
  snake play --seed 42
  snake play --config ./my-snake.yaml
  snake serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to game config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().IntVar(&flagTick, "tick", 0, "Tick period in milliseconds (0 = use config)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
}
