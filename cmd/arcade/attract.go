package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/actor-arcade/internal/actor"
	"github.com/vovakirdan/actor-arcade/internal/config"
	"github.com/vovakirdan/actor-arcade/internal/core"
	"github.com/vovakirdan/actor-arcade/internal/registry"
)

var (
	flagAttractFrames uint64
	flagAttractFire   bool
)

var attractCmd = &cobra.Command{
	Use:   "attract <game>",
	Short: "Watch a game run without a player",
	Long: `Run a game with no player input, drawing frames straight to the
terminal at the game's configured pace. Stops on game over, after
--frames frames, or on Ctrl+C.

Examples:
  arcade attract pong
  arcade attract zombies --fire --frames 600`,
	Args: cobra.ExactArgs(1),
	RunE: runAttract,
}

func init() {
	attractCmd.Flags().Uint64Var(&flagAttractFrames, "frames", 0, "Stop after this many frames (0 = until game over)")
	attractCmd.Flags().BoolVar(&flagAttractFire, "fire", false, "Hold the fire button")
}

// framed is implemented by games with configurable frame pacing.
type framed interface {
	Frame() config.FrameConfig
}

func runAttract(_ *cobra.Command, args []string) error {
	gameID := args[0]

	logger, closeLog, err := newLogger("attract", true, nil)
	if err != nil {
		return err
	}
	defer closeLog()

	env, closeEnv := newEnv(logger, false)
	defer closeEnv()

	game, err := registry.Create(gameID, env)
	if err != nil {
		return err
	}

	clockCfg := actor.DefaultClockConfig()
	if flagFPS > 0 {
		clockCfg.MinFrame = time.Second / time.Duration(flagFPS)
	}
	if f, ok := game.(framed); ok {
		fc := f.Frame()
		if fc.MinFrameMS > 0 {
			clockCfg.MinFrame = fc.MinFrame()
		}
		if fc.MaxDelta > 0 {
			clockCfg.MaxDelta = fc.MaxDelta
		}
	}

	cfg := runtimeConfig()
	cfg.ScreenH-- // keep the last line for the frame counter
	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	game.Reset(cfg)
	defer game.Close()

	var loop *actor.Loop
	input := actor.InputFunc(func() (core.InputFrame, bool) {
		in := core.NewInputFrame()
		if flagAttractFire {
			in.Set(core.ActionFire)
		}
		if game.State().GameOver {
			return in, false
		}
		if flagAttractFrames > 0 && loop.Frames()+1 >= flagAttractFrames {
			return in, false
		}
		return in, true
	})
	render := actor.RenderFunc(func() {
		game.Render(screen)
		fmt.Fprint(os.Stdout, "\x1b[H", screen.String(), "\n")
		fmt.Fprintf(os.Stdout, "frame %d  score %d", loop.Frames()+1, game.State().Score)
	})
	loop = actor.NewLoop(game, input, render, actor.NewClock(clockCfg), logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprint(os.Stdout, "\x1b[2J\x1b[?25l")
	defer fmt.Fprint(os.Stdout, "\x1b[?25h\n")

	logger.Info("attract mode", "game", gameID, "min_frame", clockCfg.MinFrame, "max_delta", clockCfg.MaxDelta)
	err = loop.Run(ctx)
	logger.Info("attract finished", "game", gameID, "frames", loop.Frames(), "score", game.State().Score)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
