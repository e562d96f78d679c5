package assets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/actor-arcade/internal/core"
)

func TestDefaultSheetLoads(t *testing.T) {
	s := NewStore(nil)

	for _, name := range []string{"paddle", "ball", "ship", "laser", "asteroid", "player", "zombie_a"} {
		_, err := s.Lookup(name)
		assert.NoError(t, err, name)
	}

	ast := s.Sprite("asteroid")
	assert.Equal(t, 3, ast.Width())
	assert.Equal(t, 2, ast.Height())
	assert.Equal(t, core.ColorGray, ast.Color)
}

func TestMissingSpriteIsPlaceholder(t *testing.T) {
	s := NewStore(nil)

	_, err := s.Lookup("nope")
	require.ErrorIs(t, err, ErrNotFound)

	sp := s.Sprite("nope")
	assert.Equal(t, []string{"?"}, sp.Lines)
	assert.Equal(t, "nope", sp.Name)
}

func TestAnimationResolvesFrames(t *testing.T) {
	s := NewStore(nil)

	anim, err := s.Animation("zombie_walk")
	require.NoError(t, err)
	assert.Equal(t, 4.0, anim.FPS)
	require.Len(t, anim.Frames, 2)
	assert.Equal(t, "Z", anim.Frames[0].Lines[0])

	_, err = s.Animation("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoadFileOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	sheet := `
sprites:
  ship:
    color: red
    lines: [">"]
  ufo:
    lines: ["<o>"]
`
	require.NoError(t, os.WriteFile(path, []byte(sheet), 0o644))

	s := NewStore(nil)
	s.Sprite("ufo")
	require.NoError(t, s.LoadFile(path))

	assert.Equal(t, ">", s.Sprite("ship").Lines[0])
	assert.Equal(t, core.ColorRed, s.Sprite("ship").Color)
	assert.Equal(t, "<o>", s.Sprite("ufo").Lines[0])
	assert.Contains(t, s.Names(), "ufo")
}

func TestLoadFileErrors(t *testing.T) {
	s := NewStore(nil)

	assert.Error(t, s.LoadFile(filepath.Join(t.TempDir(), "absent.yaml")))
	assert.Error(t, s.LoadBytes([]byte("sprites: [")))
	assert.Error(t, s.LoadBytes([]byte("sprites:\n  x:\n    lines: []\n")))
	assert.Error(t, s.LoadBytes([]byte("sprites:\n  x:\n    color: plaid\n    lines: [x]\n")))
}

func TestRejectedSheetLeavesStoreUnchanged(t *testing.T) {
	s := NewStore(nil)
	before := s.Sprite("ship")

	sheet := `
sprites:
  ship:
    lines: ["X"]
  ufo:
    lines: ["<o>"]
  bad:
    color: plaid
    lines: [b]
`
	require.Error(t, s.LoadBytes([]byte(sheet)))

	assert.Equal(t, before, s.Sprite("ship"))
	_, err := s.Lookup("ufo")
	assert.ErrorIs(t, err, ErrNotFound)

	require.Error(t, s.LoadBytes([]byte("sprites:\n  ufo:\n    lines: [u]\nanimations:\n  spin:\n    fps: -1\n    frames: [ufo]\n")))
	_, err = s.Lookup("ufo")
	assert.ErrorIs(t, err, ErrNotFound)
}
