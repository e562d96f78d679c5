package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/actor-arcade/internal/registry"
	"github.com/vovakirdan/actor-arcade/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show game list sidebar
	sidebarWidth       = 20  // Width of game list sidebar
	maxScores          = 100 // Max scores to load
	maxRuns            = 50  // Max runs to load
)

// BoardView selects what the scoreboard table lists.
type BoardView int

const (
	ViewScores BoardView = iota // top scores
	ViewRuns                    // most recent runs, any outcome
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextGame key.Binding
	PrevGame key.Binding
	Toggle   key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextGame, k.Toggle, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextGame, k.PrevGame},
		{k.Toggle, k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextGame: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next game"),
		),
		PrevGame: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev game"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "scores/runs"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel shows each game's top scores or recent runs, with a
// one-line summary of its history.
type ScoreboardModel struct {
	games      []registry.GameInfo
	gameCursor int
	store      *storage.Store
	view       BoardView

	scores []storage.ScoreEntry
	runs   []storage.Run
	stats  *storage.GameStats

	table table.Model
	help  help.Model
	keys  ScoreboardKeyMap

	width, height int
	quitting      bool
	goingBack     bool // back to the menu rather than quit
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	h := help.New()
	h.Width = width

	m := ScoreboardModel{
		games:  registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.reload()
	return m
}

// GameID returns the selected game, or "" when none are registered.
func (m ScoreboardModel) GameID() string {
	if len(m.games) == 0 {
		return ""
	}
	return m.games[m.gameCursor].ID
}

// Board returns the active list.
func (m ScoreboardModel) Board() BoardView {
	return m.view
}

func (m ScoreboardModel) wide() bool {
	return m.width >= minWidthForSidebar
}

// reload fetches the selected game's rows and rebuilds the table.
func (m *ScoreboardModel) reload() {
	m.scores, m.runs, m.stats = nil, nil, nil

	gameID := m.GameID()
	if m.store != nil && gameID != "" {
		var err error
		switch m.view {
		case ViewScores:
			m.scores, err = m.store.TopScores(gameID, maxScores)
		case ViewRuns:
			m.runs, err = m.store.RecentRuns(gameID, maxRuns)
		}
		if err == nil {
			m.stats, _ = m.store.GetGameStats(gameID)
		}
	}

	m.table = m.newTable()
}

// newTable builds the table for the current view and size.
func (m ScoreboardModel) newTable() table.Model {
	avail := m.width - 4
	if m.wide() {
		avail -= sidebarWidth + 3
	}

	var columns []table.Column
	var rows []table.Row
	switch m.view {
	case ViewScores:
		columns = []table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Score", Width: 12},
			{Title: "Date", Width: min(20, max(12, avail-22))},
		}
		for i, s := range m.scores {
			rows = append(rows, table.Row{
				fmt.Sprintf("#%d", i+1),
				fmt.Sprintf("%d", s.Score),
				s.CreatedAt.Format("Jan 02 15:04"),
			})
		}
	case ViewRuns:
		columns = []table.Column{
			{Title: "Score", Width: 8},
			{Title: "Time", Width: 8},
			{Title: "Ended", Width: 10},
			{Title: "Date", Width: min(14, max(12, avail-30))},
		}
		for _, r := range m.runs {
			rows = append(rows, table.Row{
				fmt.Sprintf("%d", r.Score),
				r.Duration.Round(time.Second).String(),
				strings.ReplaceAll(r.EndReason, "_", " "),
				r.CreatedAt.Format("Jan 02 15:04"),
			})
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-9)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextGame):
			m.cycleGame(1)
			return m, nil

		case key.Matches(msg, m.keys.PrevGame):
			m.cycleGame(-1)
			return m, nil

		case key.Matches(msg, m.keys.Toggle):
			if m.view == ViewScores {
				m.view = ViewRuns
			} else {
				m.view = ViewScores
			}
			m.reload()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *ScoreboardModel) cycleGame(step int) {
	if len(m.games) == 0 {
		return
	}
	m.gameCursor = (m.gameCursor + step + len(m.games)) % len(m.games)
	m.reload()
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	title := "HIGH SCORES"
	if m.view == ViewRuns {
		title = "RECENT RUNS"
	}
	if len(m.games) > 0 {
		title += " - " + m.games[m.gameCursor].Title
	}
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n")
	if line := m.statsLine(); line != "" {
		b.WriteString(centerText(dim.Render(line), m.width))
	}
	b.WriteString("\n")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	body := box.Render(m.tableContent())

	if m.wide() {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar(), "  ", body))
	} else {
		b.WriteString(centerText(m.tabs(), m.width))
		b.WriteString("\n\n")
		b.WriteString(centerText(body, m.width))
	}

	b.WriteString("\n")
	b.WriteString(dim.Render(m.help.View(m.keys)))
	return b.String()
}

// statsLine summarizes the selected game's history, or "" when it has none.
func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return ""
	}
	return fmt.Sprintf("%d games  |  best %d  |  avg %.0f  |  played %s",
		m.stats.GamesCount, m.stats.HighScore, m.stats.AvgScore, m.stats.TotalTime.Round(time.Second))
}

// sidebar lists the games for the wide layout.
func (m ScoreboardModel) sidebar() string {
	var sb strings.Builder
	sb.WriteString("Games\n")
	sb.WriteString(strings.Repeat("-", sidebarWidth-4))
	sb.WriteString("\n")

	for i, g := range m.games {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.gameCursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}
		name := g.Title
		if limit := sidebarWidth - 6; len(name) > limit {
			name = name[:limit-1] + "."
		}
		sb.WriteString(style.Render(cursor + name))
		sb.WriteString("\n")
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1).
		Render(sb.String())
}

// tabs shows the games in one line for the narrow layout, falling back to
// the current title between arrows when they don't fit.
func (m ScoreboardModel) tabs() string {
	if len(m.games) == 0 {
		return ""
	}
	inactive := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	active := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(m.games))
	for i, g := range m.games {
		if i == m.gameCursor {
			tabs[i] = active.Render(g.Title)
		} else {
			tabs[i] = inactive.Render(" " + g.Title + " ")
		}
	}
	line := strings.Join(tabs, " ")
	if lipgloss.Width(line) > m.width-4 {
		line = fmt.Sprintf("< %s >", m.games[m.gameCursor].Title)
	}
	return line
}

// tableContent renders the table or an empty message.
func (m ScoreboardModel) tableContent() string {
	if len(m.table.Rows()) > 0 {
		return m.table.View()
	}
	msg := "No scores recorded yet.\nPlay a game to set a high score!"
	if m.view == ViewRuns {
		msg = "No runs recorded yet."
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4).
		Render(msg)
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(
		NewScoreboardModel(store, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
