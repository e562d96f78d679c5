package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/actor-arcade/internal/platform/tui"
	"github.com/vovakirdan/actor-arcade/internal/registry"
	"github.com/vovakirdan/actor-arcade/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Tab          - Scoreboard
  Q            - Quit

Examples:
  arcade menu
  arcade menu --fps 30
  arcade menu --db ./scores.db`,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	menuCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger("arcade", true, nil)
	if err != nil {
		return err
	}
	defer closeLog()

	env, closeEnv := newEnv(logger, !flagMute)
	defer closeEnv()

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

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				logger.Error("scoreboard failed", "err", err)
			}
			if goBack {
				continue
			}
			return nil
		}

		if menuResult.GameID == "" {
			return nil
		}

		game, err := registry.Create(menuResult.GameID, env)
		if err != nil {
			logger.Error("creating game", "game", menuResult.GameID, "err", err)
			continue
		}

		// Fresh seed per game unless one was pinned.
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}
		if err := tui.Run(game, store, cfg, logger); err != nil {
			logger.Error("running game", "game", menuResult.GameID, "err", err)
		}
	}
}
