// Package config provides YAML/TOML game configuration loading and
// difficulty management for the arcade platform.
package config

import "time"

// FrameConfig controls frame pacing for the actor loop.
type FrameConfig struct {
	MinFrameMS int     `yaml:"min_frame_ms" toml:"min_frame_ms"` // shortest frame in milliseconds
	MaxDelta   float64 `yaml:"max_delta" toml:"max_delta"`       // delta-time ceiling in seconds
}

// MinFrame returns MinFrameMS as a duration.
func (f FrameConfig) MinFrame() time.Duration {
	return time.Duration(f.MinFrameMS) * time.Millisecond
}

// FieldConfig is the world-space size of a playfield.
type FieldConfig struct {
	Width     float64 `yaml:"width" toml:"width"`
	Height    float64 `yaml:"height" toml:"height"`
	Thickness float64 `yaml:"thickness" toml:"thickness"` // wall thickness, Pong only
}

// PongConfig contains all configuration for the Pong game.
type PongConfig struct {
	Frame      FrameConfig      `yaml:"frame" toml:"frame"`
	Field      FieldConfig      `yaml:"field" toml:"field"`
	Paddles    PongPaddles      `yaml:"paddles" toml:"paddles"`
	Ball       PongBall         `yaml:"ball" toml:"ball"`
	Gameplay   PongGameplay     `yaml:"gameplay" toml:"gameplay"`
	CPU        PongCPU          `yaml:"cpu" toml:"cpu"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
}

// PongPaddles defines paddle geometry and speed.
type PongPaddles struct {
	Height float64 `yaml:"height" toml:"height"`
	Width  float64 `yaml:"width" toml:"width"`
	Offset float64 `yaml:"offset" toml:"offset"` // paddle center distance from the side edge
	Speed  float64 `yaml:"speed" toml:"speed"`   // world units per second
}

// PongBall defines ball physics.
type PongBall struct {
	Size     float64 `yaml:"size" toml:"size"`
	SpeedX   float64 `yaml:"speed_x" toml:"speed_x"`
	MinVY    float64 `yaml:"min_vy" toml:"min_vy"`
	MaxVY    float64 `yaml:"max_vy" toml:"max_vy"`
	SpeedUp  float64 `yaml:"speed_up" toml:"speed_up"` // multiplier applied on each paddle hit
	MaxSpeed float64 `yaml:"max_speed" toml:"max_speed"`
}

// PongGameplay defines scoring rules.
type PongGameplay struct {
	WinScore   int     `yaml:"win_score" toml:"win_score"`
	ServeDelay float64 `yaml:"serve_delay" toml:"serve_delay"` // seconds
}

// PongCPU defines the opponent's tracking skill.
type PongCPU struct {
	MinSkill float64 `yaml:"min_skill" toml:"min_skill"` // fraction of paddle speed
	MaxSkill float64 `yaml:"max_skill" toml:"max_skill"`
	DeadZone float64 `yaml:"dead_zone" toml:"dead_zone"` // ignore offsets smaller than this
}

// AsteroidsConfig contains all configuration for the Asteroids game.
type AsteroidsConfig struct {
	Frame      FrameConfig      `yaml:"frame" toml:"frame"`
	Field      FieldConfig      `yaml:"field" toml:"field"`
	Ship       AsteroidsShip    `yaml:"ship" toml:"ship"`
	Laser      AsteroidsLaser   `yaml:"laser" toml:"laser"`
	Rocks      AsteroidsRocks   `yaml:"rocks" toml:"rocks"`
	Gameplay   AsteroidsPlay    `yaml:"gameplay" toml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
}

// AsteroidsShip defines the player ship.
type AsteroidsShip struct {
	MaxForwardSpeed float64 `yaml:"max_forward_speed" toml:"max_forward_speed"`
	MaxAngularSpeed float64 `yaml:"max_angular_speed" toml:"max_angular_speed"` // radians per second
	Radius          float64 `yaml:"radius" toml:"radius"`
	LaserCooldown   float64 `yaml:"laser_cooldown" toml:"laser_cooldown"` // seconds
}

// AsteroidsLaser defines lasers.
type AsteroidsLaser struct {
	Speed    float64 `yaml:"speed" toml:"speed"`
	Lifetime float64 `yaml:"lifetime" toml:"lifetime"` // seconds
	Radius   float64 `yaml:"radius" toml:"radius"`
}

// AsteroidsRocks defines asteroids.
type AsteroidsRocks struct {
	Count  int     `yaml:"count" toml:"count"` // asteroids in the first wave
	Speed  float64 `yaml:"speed" toml:"speed"`
	Radius float64 `yaml:"radius" toml:"radius"`
	Points int     `yaml:"points" toml:"points"`
}

// AsteroidsPlay defines lives and waves.
type AsteroidsPlay struct {
	Lives      int     `yaml:"lives" toml:"lives"`
	WaveGrowth int     `yaml:"wave_growth" toml:"wave_growth"` // extra asteroids per wave
	SafeRadius float64 `yaml:"safe_radius" toml:"safe_radius"` // no spawns this close to the ship
}

// ZombiesConfig contains all configuration for the Zombie Arena game.
type ZombiesConfig struct {
	Frame      FrameConfig      `yaml:"frame" toml:"frame"`
	Field      FieldConfig      `yaml:"field" toml:"field"`
	Player     ZombiesPlayer    `yaml:"player" toml:"player"`
	Bullet     ZombiesBullet    `yaml:"bullet" toml:"bullet"`
	Horde      ZombiesHorde     `yaml:"horde" toml:"horde"`
	Types      []ZombieType     `yaml:"types" toml:"types"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
}

// ZombiesPlayer defines the player.
type ZombiesPlayer struct {
	Speed       float64 `yaml:"speed" toml:"speed"`
	Health      int     `yaml:"health" toml:"health"`
	Radius      float64 `yaml:"radius" toml:"radius"`
	HitCooldown float64 `yaml:"hit_cooldown" toml:"hit_cooldown"` // seconds of invulnerability after a hit
	FireRate    float64 `yaml:"fire_rate" toml:"fire_rate"`       // shots per second
}

// ZombiesBullet defines bullets.
type ZombiesBullet struct {
	Speed  float64 `yaml:"speed" toml:"speed"`
	Range  float64 `yaml:"range" toml:"range"` // distance before the bullet expires
	Radius float64 `yaml:"radius" toml:"radius"`
}

// ZombiesHorde defines waves.
type ZombiesHorde struct {
	Count      int     `yaml:"count" toml:"count"` // zombies in the first wave
	WaveGrowth int     `yaml:"wave_growth" toml:"wave_growth"`
	Radius     float64 `yaml:"radius" toml:"radius"`
	Points     int     `yaml:"points" toml:"points"`
	CorpseTime float64 `yaml:"corpse_time" toml:"corpse_time"` // seconds a dead zombie stays on the field
}

// ZombieType is one breed of zombie.
type ZombieType struct {
	Name   string  `yaml:"name" toml:"name"`
	Speed  float64 `yaml:"speed" toml:"speed"`
	Health int     `yaml:"health" toml:"health"`
	Weight int     `yaml:"weight" toml:"weight"` // relative spawn frequency
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled" toml:"enabled"`
	InitialLevel float64           `yaml:"initial_level" toml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression" toml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling" toml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type" toml:"type"`     // "score", "time", or "none"
	MaxAt int    `yaml:"max_at" toml:"max_at"` // Score/seconds at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier" toml:"speed_multiplier"` // Multiplier added to speed at max difficulty
	CountIncrease   int     `yaml:"count_increase" toml:"count_increase"`     // Extra spawns at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyPreset modifies a difficulty section according to a preset.
func ApplyPreset(cfg *DifficultyConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Enabled = false
	} else {
		cfg.Enabled = true
		cfg.InitialLevel = InitialLevelForPreset(preset)
	}
}
