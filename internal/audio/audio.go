// Package audio plays short synthesized sound effects.
//
// The Engine is an explicitly constructed instance passed to whoever needs
// it. If the output device cannot be opened the engine logs once and stays
// silent; Play never blocks or fails.
package audio

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Effect names a sound effect.
type Effect int

const (
	EffectPaddle Effect = iota
	EffectWall
	EffectScore
	EffectLaser
	EffectExplosion
	EffectHit
	EffectGameOver
)

// String returns the effect's name.
func (e Effect) String() string {
	switch e {
	case EffectPaddle:
		return "paddle"
	case EffectWall:
		return "wall"
	case EffectScore:
		return "score"
	case EffectLaser:
		return "laser"
	case EffectExplosion:
		return "explosion"
	case EffectHit:
		return "hit"
	case EffectGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Player is the fire-and-forget interface games use.
type Player interface {
	Play(e Effect)
}

// Silent is a Player that discards every effect.
type Silent struct{}

// Play does nothing.
func (Silent) Play(Effect) {}

// Engine mixes effects onto the system speaker.
type Engine struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	failed      bool
	played      int
	logger      *log.Logger
}

// NewEngine creates an engine. Nothing is opened until Init.
func NewEngine(logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Engine{mixer: &beep.Mixer{}, logger: logger}
}

// Init opens the output device. On failure the engine stays silent and the
// error is returned for the caller to report.
func (e *Engine) Init() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.initialized || e.failed {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		e.failed = true
		e.logger.Warn("audio unavailable, continuing silently", "err", err)
		return err
	}
	speaker.Play(e.mixer)
	e.initialized = true
	e.logger.Debug("audio initialized", "rate", int(sampleRate))
	return nil
}

// Play queues an effect. It is a no-op when the device is not open.
func (e *Engine) Play(effect Effect) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}
	s := Stream(effect, sampleRate)
	if s == nil {
		return
	}

	speaker.Lock()
	e.mixer.Add(s)
	speaker.Unlock()
	e.played++
}

// Played returns the number of effects handed to the mixer.
func (e *Engine) Played() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.played
}

// Close stops all sounds and releases the device.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	e.initialized = false
}
