// Package window runs a game in a desktop window with ebiten. The game
// still renders into a core.Screen; each cell becomes a glyph or a colored
// block, and keys are read as real held states instead of terminal presses.
package window

import (
	"fmt"
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/actor-arcade/internal/actor"
	"github.com/vovakirdan/actor-arcade/internal/core"
	"github.com/vovakirdan/actor-arcade/internal/registry"
	"github.com/vovakirdan/actor-arcade/internal/storage"
)

// Cell size in pixels.
const (
	CellW = 8
	CellH = 16
)

// heldKeys maps keyboard keys to continuous actions.
var heldKeys = map[ebiten.Key]core.Action{
	ebiten.KeyArrowUp:    core.ActionUp,
	ebiten.KeyW:          core.ActionUp,
	ebiten.KeyArrowDown:  core.ActionDown,
	ebiten.KeyS:          core.ActionDown,
	ebiten.KeyArrowLeft:  core.ActionLeft,
	ebiten.KeyA:          core.ActionLeft,
	ebiten.KeyArrowRight: core.ActionRight,
	ebiten.KeyD:          core.ActionRight,
	ebiten.KeySpace:      core.ActionFire,
}

var palette = map[core.Color]color.RGBA{
	core.ColorDefault:       {0xe0, 0xe0, 0xe0, 0xff},
	core.ColorRed:           {0xcd, 0x31, 0x31, 0xff},
	core.ColorGreen:         {0x0d, 0xbc, 0x79, 0xff},
	core.ColorYellow:        {0xe5, 0xe5, 0x10, 0xff},
	core.ColorBlue:          {0x24, 0x72, 0xc8, 0xff},
	core.ColorMagenta:       {0xbc, 0x3f, 0xbc, 0xff},
	core.ColorCyan:          {0x11, 0xa8, 0xcd, 0xff},
	core.ColorWhite:         {0xe5, 0xe5, 0xe5, 0xff},
	core.ColorBrightRed:     {0xf1, 0x4c, 0x4c, 0xff},
	core.ColorBrightGreen:   {0x23, 0xd1, 0x8b, 0xff},
	core.ColorBrightYellow:  {0xf5, 0xf5, 0x43, 0xff},
	core.ColorBrightBlue:    {0x3b, 0x8e, 0xea, 0xff},
	core.ColorBrightMagenta: {0xd6, 0x70, 0xd6, 0xff},
	core.ColorBrightCyan:    {0x29, 0xb8, 0xdb, 0xff},
	core.ColorBrightWhite:   {0xff, 0xff, 0xff, 0xff},
	core.ColorOrange:        {0xff, 0x87, 0x00, 0xff},
	core.ColorGray:          {0x8a, 0x8a, 0x8a, 0xff},
}

// Runner adapts a registry.Game to ebiten.Game. Each ebiten tick runs one
// frame of an actor.Loop.
type Runner struct {
	game   registry.Game
	store  *storage.Store
	logger *log.Logger
	config core.RuntimeConfig
	screen *core.Screen
	loop   *actor.Loop
	pixel  *ebiten.Image

	state     core.GameState
	started   time.Time
	frameBase uint64
	runSaved  bool
}

// NewRunner creates a runner. store and logger may be nil.
func NewRunner(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) *Runner {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	r := &Runner{
		game:   game,
		store:  store,
		logger: logger,
		config: cfg,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
	}
	// ebiten paces the ticks; the clock only measures and clamps dt.
	clock := actor.NewClock(actor.ClockConfig{MinFrame: 0, MaxDelta: actor.DefaultMaxDelta})
	r.loop = actor.NewLoop(game, actor.InputFunc(r.poll), nil, clock, logger)
	return r
}

// poll snapshots the keyboard. Q or Escape quits.
func (r *Runner) poll() (core.InputFrame, bool) {
	in := core.NewInputFrame()
	for k, a := range heldKeys {
		if ebiten.IsKeyPressed(k) {
			in.Set(a)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		in.Set(core.ActionPause)
	}
	quit := inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	return in, !quit
}

// Update runs one frame. It implements ebiten.Game.
func (r *Runner) Update() error {
	if r.state.GameOver && inpututil.IsKeyJustPressed(ebiten.KeyR) {
		r.finish(storage.EndRestart)
		r.config.Seed = time.Now().UnixNano()
		r.game.Reset(r.config)
		r.state = r.game.State()
		r.started = time.Time{}
		r.frameBase = r.loop.Frames()
		r.runSaved = false
	}
	if r.started.IsZero() {
		r.started = time.Now()
	}

	running := r.loop.Frame()
	r.state = r.game.State()
	if r.state.GameOver {
		r.finish(storage.EndGameOver)
	}
	if !running {
		r.finish(storage.EndQuit)
		return ebiten.Termination
	}
	return nil
}

// Draw paints the game's screen buffer. It implements ebiten.Game.
func (r *Runner) Draw(dst *ebiten.Image) {
	if r.pixel == nil {
		r.pixel = ebiten.NewImage(1, 1)
		r.pixel.Fill(color.White)
	}

	r.game.Render(r.screen)
	for y := range r.screen.Height() {
		for x := range r.screen.Width() {
			cell := r.screen.GetCell(x, y)
			switch {
			case cell.Rune == ' ':
			case cell.Rune > ' ' && cell.Rune < 0x7f:
				ebitenutil.DebugPrintAt(dst, string(cell.Rune), x*CellW, y*CellH)
			default:
				r.drawBlock(dst, x, y, cell.Color)
			}
		}
	}
}

// drawBlock fills one cell with c.
func (r *Runner) drawBlock(dst *ebiten.Image, x, y int, c core.Color) {
	rgba, ok := palette[c]
	if !ok {
		rgba = palette[core.ColorDefault]
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(CellW, CellH)
	op.GeoM.Translate(float64(x*CellW), float64(y*CellH))
	op.ColorScale.ScaleWithColor(rgba)
	dst.DrawImage(r.pixel, op)
}

// Layout keeps a fixed logical size. It implements ebiten.Game.
func (r *Runner) Layout(int, int) (int, int) {
	return r.screen.Width() * CellW, r.screen.Height() * CellH
}

// finish records the current run once.
func (r *Runner) finish(reason string) {
	if r.runSaved {
		return
	}
	r.runSaved = true

	frames := r.loop.Frames() - r.frameBase
	r.logger.Info("run finished", "game", r.game.ID(), "score", r.state.Score, "frames", frames, "reason", reason)
	if r.store == nil || frames == 0 {
		return
	}
	err := r.store.Record(storage.Run{
		GameID:    r.game.ID(),
		Score:     r.state.Score,
		Frames:    frames,
		Duration:  time.Since(r.started),
		EndReason: reason,
	})
	if err != nil {
		r.logger.Warn("could not save run", "err", err)
	}
}

// Run opens a window for game and blocks until it is closed or the player
// quits.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	r := NewRunner(game, store, cfg, logger)

	ebiten.SetWindowSize(r.config.ScreenW*CellW, r.config.ScreenH*CellH)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if r.config.TickRate > 0 {
		ebiten.SetTPS(r.config.TickRate)
	}

	game.Reset(r.config)
	defer game.Close()

	if err := ebiten.RunGame(r); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	r.finish(storage.EndQuit)
	return nil
}
