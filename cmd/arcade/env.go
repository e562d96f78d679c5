package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/actor-arcade/internal/assets"
	"github.com/vovakirdan/actor-arcade/internal/audio"
	"github.com/vovakirdan/actor-arcade/internal/config"
	"github.com/vovakirdan/actor-arcade/internal/core"
	"github.com/vovakirdan/actor-arcade/internal/registry"
)

const defaultLogFile = "~/.arcade/arcade.log"

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// newLogger opens the log destination: --log-file when set, otherwise
// ~/.arcade/arcade.log when fileDefault is true, otherwise fallback.
func newLogger(prefix string, fileDefault bool, fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	path := flagLogFile
	if path == "" && fileDefault {
		path = defaultLogFile
	}

	w, closeFn := fallback, func() {}
	if path != "" {
		path = expandHome(path)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closeFn, nil
}

// newEnv builds the services shared by games. With sound enabled the audio
// engine is opened; a missing device only costs a warning.
func newEnv(logger *log.Logger, sound bool) (registry.Env, func()) {
	env := registry.Env{
		Logger:     logger,
		Assets:     assets.NewStore(logger.With("component", "assets")),
		ConfigPath: flagConfig,
		Difficulty: config.DifficultyPreset(flagDifficulty),
	}
	if flagSprites != "" {
		if err := env.Assets.LoadFile(expandHome(flagSprites)); err != nil {
			logger.Warn("using built-in sprites", "err", err)
		}
	}

	closeFn := func() {}
	if sound {
		engine := audio.NewEngine(logger.With("component", "audio"))
		if err := engine.Init(); err == nil {
			env.Audio = engine
			closeFn = engine.Close
		}
	}
	return env.Normalize(), closeFn
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg
}
