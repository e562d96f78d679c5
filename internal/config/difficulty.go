package config

import "math"

// DifficultyManager turns a score or elapsed time into a difficulty level
// in [0, 1] and scales spawn speeds and counts by it.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// progress returns how far score or elapsed seconds are toward MaxAt, in
// [0, 1]. Unknown progression types never progress.
func (d *DifficultyManager) progress(score int, elapsed float64) float64 {
	maxAt := math.Max(float64(d.cfg.Progression.MaxAt), 1)
	switch d.cfg.Progression.Type {
	case "score":
		return clampF(float64(score)/maxAt, 0, 1)
	case "time":
		return clampF(elapsed/maxAt, 0, 1)
	}
	return 0
}

// Level interpolates from the initial level to 1.0 as progress grows.
// With progression disabled it stays at the initial level.
func (d *DifficultyManager) Level(score int, elapsed float64) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}
	return d.initialLevel + d.progress(score, elapsed)*(1.0-d.initialLevel)
}

// Speed scales baseSpeed up to base * (1 + SpeedMultiplier) at full
// difficulty.
func (d *DifficultyManager) Speed(baseSpeed float64, score int, elapsed float64) float64 {
	return baseSpeed * (1.0 + d.Level(score, elapsed)*d.cfg.Scaling.SpeedMultiplier)
}

// Count returns the number of things to spawn: base plus up to
// CountIncrease more at full difficulty.
func (d *DifficultyManager) Count(base int, score int, elapsed float64) int {
	level := d.Level(score, elapsed)
	return base + int(math.Round(level*float64(d.cfg.Scaling.CountIncrease)))
}

func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
