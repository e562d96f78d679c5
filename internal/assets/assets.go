// Package assets loads glyph sprites for the terminal renderer.
//
// Sprites come from YAML sheets: an embedded default sheet is always loaded,
// and further sheets can be layered on top with LoadFile. Lookups that miss
// are logged and return a visible placeholder so a broken sheet never stops a
// demo from running.
package assets

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/actor-arcade/internal/core"
)

//go:embed sheets/default.yaml
var defaultSheet []byte

// ErrNotFound is returned when a sprite or animation name is unknown.
var ErrNotFound = errors.New("assets: not found")

// PlaceholderRune marks a sprite that failed to load.
const PlaceholderRune = '?'

// Sprite is a block of text drawn centered on an actor.
type Sprite struct {
	Name  string
	Lines []string
	Color core.Color
}

// Width returns the widest line in cells.
func (s Sprite) Width() int {
	w := 0
	for _, l := range s.Lines {
		w = max(w, utf8.RuneCountInString(l))
	}
	return w
}

// Height returns the number of lines.
func (s Sprite) Height() int {
	return len(s.Lines)
}

// Placeholder returns the sprite used in place of a missing one.
func Placeholder(name string) Sprite {
	return Sprite{Name: name, Lines: []string{string(PlaceholderRune)}, Color: core.ColorBrightMagenta}
}

// Animation is an ordered list of sprites played at FPS frames per second.
type Animation struct {
	Name   string
	FPS    float64
	Frames []Sprite
}

type spriteDef struct {
	Color string   `yaml:"color"`
	Lines []string `yaml:"lines"`
}

type animationDef struct {
	FPS    float64  `yaml:"fps"`
	Frames []string `yaml:"frames"`
}

type sheet struct {
	Sprites    map[string]spriteDef    `yaml:"sprites"`
	Animations map[string]animationDef `yaml:"animations"`
}

// Store caches decoded sprites and animations.
type Store struct {
	mu         sync.RWMutex
	sprites    map[string]Sprite
	animations map[string]animationDef
	missing    map[string]bool
	logger     *log.Logger
}

// NewStore creates a store holding the embedded default sheet.
// A nil logger discards output.
func NewStore(logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Store{
		sprites:    make(map[string]Sprite),
		animations: make(map[string]animationDef),
		missing:    make(map[string]bool),
		logger:     logger,
	}
	if err := s.LoadBytes(defaultSheet); err != nil {
		logger.Error("embedded sprite sheet is invalid", "err", err)
	}
	return s
}

// LoadFile layers the sheet at path over the current contents.
func (s *Store) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("assets: failed to read sheet %s: %w", path, err)
	}
	if err := s.LoadBytes(data); err != nil {
		return fmt.Errorf("assets: %s: %w", path, err)
	}
	s.logger.Info("sprite sheet loaded", "path", path)
	return nil
}

// LoadBytes decodes a YAML sheet and merges it into the store. Entries with
// the same name replace earlier ones. A sheet with any invalid entry is
// rejected whole and leaves the store unchanged.
func (s *Store) LoadBytes(data []byte) error {
	var sh sheet
	if err := yaml.Unmarshal(data, &sh); err != nil {
		return fmt.Errorf("failed to parse sheet: %w", err)
	}

	sprites := make(map[string]Sprite, len(sh.Sprites))
	for name, def := range sh.Sprites {
		if len(def.Lines) == 0 {
			return fmt.Errorf("sprite %q has no lines", name)
		}
		color, ok := core.ParseColor(def.Color)
		if !ok {
			return fmt.Errorf("sprite %q: unknown color %q", name, def.Color)
		}
		sprites[name] = Sprite{Name: name, Lines: def.Lines, Color: color}
	}
	for name, def := range sh.Animations {
		if def.FPS < 0 {
			return fmt.Errorf("animation %q: negative fps", name)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for name, sp := range sprites {
		s.sprites[name] = sp
		delete(s.missing, name)
	}
	for name, def := range sh.Animations {
		s.animations[name] = def
	}
	return nil
}

// Lookup returns the named sprite or ErrNotFound.
func (s *Store) Lookup(name string) (Sprite, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sp, ok := s.sprites[name]
	if !ok {
		return Sprite{}, fmt.Errorf("sprite %q: %w", name, ErrNotFound)
	}
	return sp, nil
}

// Sprite returns the named sprite, or a placeholder if it is unknown.
// Each missing name is logged once.
func (s *Store) Sprite(name string) Sprite {
	sp, err := s.Lookup(name)
	if err != nil {
		s.mu.Lock()
		first := !s.missing[name]
		s.missing[name] = true
		s.mu.Unlock()
		if first {
			s.logger.Warn("sprite missing, using placeholder", "name", name)
		}
		return Placeholder(name)
	}
	return sp
}

// Animation returns the named animation with its frames resolved. Unknown
// frame names resolve to placeholders; an unknown animation is ErrNotFound.
func (s *Store) Animation(name string) (Animation, error) {
	s.mu.RLock()
	def, ok := s.animations[name]
	s.mu.RUnlock()
	if !ok {
		return Animation{}, fmt.Errorf("animation %q: %w", name, ErrNotFound)
	}
	anim := Animation{Name: name, FPS: def.FPS}
	for _, f := range def.Frames {
		anim.Frames = append(anim.Frames, s.Sprite(f))
	}
	return anim, nil
}

// Names returns the known sprite names, sorted.
func (s *Store) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.sprites))
	for n := range s.sprites {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// String renders a sprite for debugging.
func (s Sprite) String() string {
	return strings.Join(s.Lines, "\n")
}
