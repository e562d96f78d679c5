// arcade runs actor-driven retro games in the terminal, a desktop window,
// or over SSH.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade attract <game>    - Watch a game play itself
//	arcade menu              - Start menu to pick games interactively
//	arcade serve             - Start SSH server for remote play
//	arcade scores [game]     - Show high scores and recent runs
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.arcade/scores.db)
//	--log-level <level>  - debug, info, warn or error (default: info)
//	--log-file <path>    - Log destination (default: ~/.arcade/arcade.log)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/actor-arcade/internal/games/asteroids"
	_ "github.com/vovakirdan/actor-arcade/internal/games/pong"
	_ "github.com/vovakirdan/actor-arcade/internal/games/zombies"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
	flagSprites  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Actor Arcade - retro games built from actors and components",
	Long: `Actor Arcade plays small real-time games whose objects are actors
assembled from components. Games run in the terminal, in a desktop window,
or remotely over SSH.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  attract  - Watch a game run without a player
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores and recent runs

Examples:
  arcade list
  arcade play asteroids
  arcade play zombies --window
  arcade attract pong
  arcade menu
  arcade serve --ssh :2222
  arcade scores asteroids`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file (default ~/.arcade/arcade.log, stderr for serve)")
	rootCmd.PersistentFlags().StringVar(&flagSprites, "sprites", "", "Sprite sheet YAML layered over the built-in sprites")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(attractCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
