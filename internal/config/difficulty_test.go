package config

import (
	"math"
	"testing"
)

func TestDifficultyLevel(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.2,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 100},
		Scaling:      ScalingConfig{SpeedMultiplier: 1.0, CountIncrease: 4},
	}
	d := NewDifficultyManager(cfg)

	tests := []struct {
		score    int
		expected float64
	}{
		{0, 0.2},
		{50, 0.6},
		{100, 1.0},
		{500, 1.0},
	}
	for _, tt := range tests {
		if got := d.Level(tt.score, 0); math.Abs(got-tt.expected) > 1e-9 {
			t.Errorf("Level(%d) = %v, expected %v", tt.score, got, tt.expected)
		}
	}

	if got := d.Speed(100, 100, 0); got != 200 {
		t.Errorf("Speed() = %v, expected 200", got)
	}
	if got := d.Count(5, 100, 0); got != 9 {
		t.Errorf("Count() = %v, expected 9", got)
	}
}

func TestDifficultyTimeProgression(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 60},
	})
	if got := d.Level(0, 30); got != 0.5 {
		t.Errorf("Level(30s) = %v, expected 0.5", got)
	}
}

func TestDifficultyDisabled(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      false,
		InitialLevel: 0.7,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 10},
	})

	if d.IsEnabled() {
		t.Error("IsEnabled() = true, expected false")
	}
	if got := d.Level(1000, 1000); got != 0.7 {
		t.Errorf("Level() = %v, expected 0.7", got)
	}

	d = NewDifficultyManager(DifficultyConfig{InitialLevel: 3})
	if got := d.Level(0, 0); got != 1.0 {
		t.Errorf("Level() = %v, expected clamped 1.0", got)
	}

	d = NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "none", MaxAt: 10},
	})
	if d.IsEnabled() {
		t.Error("IsEnabled() = true for progression type none")
	}
}
