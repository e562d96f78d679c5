package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/actor-arcade/internal/actor"
	"github.com/vovakirdan/actor-arcade/internal/core"
	"github.com/vovakirdan/actor-arcade/internal/registry"
	"github.com/vovakirdan/actor-arcade/internal/storage"
)

// Model is the Bubble Tea model that runs one game. Every tick drives one
// frame of an actor.Loop: held keys in, world update, then Bubble Tea
// calls View to render.
type Model struct {
	game   registry.Game
	screen *core.Screen
	store  *storage.Store
	logger *log.Logger
	config core.RuntimeConfig
	keys   KeyMap
	held   *HeldKeys
	loop   *actor.Loop

	state     core.GameState
	started   time.Time
	frameBase uint64

	allowBack  bool
	quitting   bool
	backToMenu bool
	runSaved   bool
}

// NewModel creates a model for the given game. store and logger may be nil.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	held := NewHeldKeys(DefaultHoldWindow)
	// Bubble Tea paces the frames; the clock only measures and clamps dt.
	clock := actor.NewClock(actor.ClockConfig{MinFrame: 0, MaxDelta: actor.DefaultMaxDelta})

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		logger: logger,
		config: cfg,
		keys:   DefaultKeyMap(),
		held:   held,
		loop:   actor.NewLoop(game, held, nil, clock, logger),
	}
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The demos live in world space, so a resize only changes the projection.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionBack:
		if m.allowBack && (m.state.GameOver || m.state.Paused) {
			m.finishRun(storage.EndQuit)
			m.backToMenu = true
		}
		return m, nil

	case core.ActionRestart:
		if m.state.GameOver {
			m.restart()
		}
		return m, nil
	}

	m.held.Press(action)
	return m, nil
}

// restart begins a fresh run with a new seed.
func (m *Model) restart() {
	m.finishRun(storage.EndRestart)
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.config)
	m.held.Release()
	m.state = m.game.State()
	m.started = time.Time{}
	m.frameBase = m.loop.Frames()
	m.runSaved = false
}

// handleTick runs one loop frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu {
		return m, nil
	}
	if m.started.IsZero() {
		m.started = time.Now()
	}

	running := m.loop.Frame()
	m.state = m.game.State()

	if m.state.GameOver {
		m.finishRun(storage.EndGameOver)
	}
	if !running {
		m.finishRun(storage.EndQuit)
		m.quitting = true
		m.game.Close()
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

// finishRun records the current run once: its score on game over and the
// session summary in every case.
func (m *Model) finishRun(reason string) {
	if m.runSaved {
		return
	}
	m.runSaved = true

	frames := m.loop.Frames() - m.frameBase
	m.logger.Info("run finished", "game", m.game.ID(), "score", m.state.Score, "frames", frames, "reason", reason)
	if m.store == nil || frames == 0 {
		return
	}

	var elapsed time.Duration
	if !m.started.IsZero() {
		elapsed = time.Since(m.started)
	}
	err := m.store.Record(storage.Run{
		GameID:    m.game.ID(),
		Score:     m.state.Score,
		Frames:    frames,
		Duration:  elapsed,
		EndReason: reason,
	})
	if err != nil {
		m.logger.Warn("could not save run", "err", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the game state seen after the last frame.
func (m Model) State() core.GameState {
	return m.state
}

// Frames returns the number of frames the loop has run.
func (m Model) Frames() uint64 {
	return m.loop.Frames()
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for game and blocks until it quits.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
