package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/actor-arcade/internal/platform/tui"
	"github.com/vovakirdan/actor-arcade/internal/platform/window"
	"github.com/vovakirdan/actor-arcade/internal/registry"
	"github.com/vovakirdan/actor-arcade/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagWindow     bool
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Arrows/WASD  - Move, turn and thrust
  Space        - Fire
  P            - Pause
  R            - Restart (after game over)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  arcade play pong
  arcade play asteroids --difficulty hard
  arcade play zombies --window
  arcade play asteroids --config ./my-asteroids.toml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config (YAML or TOML)")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagWindow, "window", false, "Play in a desktop window instead of the terminal")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}

	logger, closeLog, err := newLogger("arcade", true, nil)
	if err != nil {
		return err
	}
	defer closeLog()

	env, closeEnv := newEnv(logger, !flagMute)
	defer closeEnv()

	game, err := registry.Create(gameID, env)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	// A missing database only disables score saving.
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "err", err)
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	cfg := runtimeConfig()
	logger.Info("starting game", "game", gameID, "window", flagWindow, "seed", cfg.Seed)

	if flagWindow {
		err = window.Run(game, store, cfg, logger)
	} else {
		err = tui.Run(game, store, cfg, logger)
	}
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
