package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/actor-arcade/internal/storage"
)

func boardStep(t *testing.T, m ScoreboardModel, msg tea.Msg) ScoreboardModel {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(ScoreboardModel)
	require.True(t, ok)
	return nm
}

func TestScoreboardScoresAndRuns(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Record(storage.Run{
		GameID: "fake", Score: 42, Frames: 120, Duration: 2 * time.Second, EndReason: storage.EndGameOver,
	}))
	require.NoError(t, store.Record(storage.Run{
		GameID: "fake", Score: 7, Frames: 30, Duration: time.Second, EndReason: storage.EndQuit,
	}))

	m := NewScoreboardModel(store, 100, 30)
	assert.Equal(t, "fake", m.GameID())
	assert.Equal(t, ViewScores, m.Board())

	view := m.View()
	assert.Contains(t, view, "HIGH SCORES - Fake")
	assert.Contains(t, view, "42")
	assert.Contains(t, view, "best 42")
	assert.Contains(t, view, "played 3s")

	m = boardStep(t, m, runeKey('v'))
	assert.Equal(t, ViewRuns, m.Board())
	view = m.View()
	assert.Contains(t, view, "RECENT RUNS - Fake")
	assert.Contains(t, view, "game over")
	assert.Contains(t, view, "quit")
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 20)
	assert.Contains(t, m.View(), "No scores recorded yet.")

	m = boardStep(t, m, runeKey('v'))
	assert.Contains(t, m.View(), "No runs recorded yet.")

	m = boardStep(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, m.IsGoingBack())
	assert.False(t, m.IsQuitting())
	assert.Empty(t, m.View())
}
