package config

import (
	_ "embed"
	"math"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

//go:embed defaults/asteroids.yaml
var defaultAsteroidsYAML []byte

//go:embed defaults/zombies.yaml
var defaultZombiesYAML []byte

// DefaultFrameConfig returns a 16ms minimum frame and a 0.05s delta ceiling.
func DefaultFrameConfig() FrameConfig {
	return FrameConfig{MinFrameMS: 16, MaxDelta: 0.05}
}

// DefaultPongConfig returns the default Pong configuration.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Frame: DefaultFrameConfig(),
		Field: FieldConfig{Width: 1024, Height: 768, Thickness: 15},
		Paddles: PongPaddles{
			Height: 100,
			Width:  15,
			Offset: 30,
			Speed:  300,
		},
		Ball: PongBall{
			Size:     15,
			SpeedX:   200,
			MinVY:    100,
			MaxVY:    235,
			SpeedUp:  1.05,
			MaxSpeed: 600,
		},
		Gameplay: PongGameplay{
			WinScore:   5,
			ServeDelay: 1.0,
		},
		CPU: PongCPU{
			MinSkill: 0.6,
			MaxSkill: 0.85,
			DeadZone: 10,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 600, // 10 minutes
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// DefaultAsteroidsConfig returns the default Asteroids configuration.
func DefaultAsteroidsConfig() AsteroidsConfig {
	return AsteroidsConfig{
		Frame: DefaultFrameConfig(),
		Field: FieldConfig{Width: 1024, Height: 768},
		Ship: AsteroidsShip{
			MaxForwardSpeed: 300,
			MaxAngularSpeed: 2 * math.Pi,
			Radius:          20,
			LaserCooldown:   0.5,
		},
		Laser: AsteroidsLaser{
			Speed:    800,
			Lifetime: 1.0,
			Radius:   11,
		},
		Rocks: AsteroidsRocks{
			Count:  10,
			Speed:  150,
			Radius: 40,
			Points: 10,
		},
		Gameplay: AsteroidsPlay{
			Lives:      3,
			WaveGrowth: 2,
			SafeRadius: 150,
		},
		Difficulty: DifficultyConfig{
			Enabled: true,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 500,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
				CountIncrease:   6,
			},
		},
	}
}

// DefaultZombiesConfig returns the default Zombie Arena configuration.
func DefaultZombiesConfig() ZombiesConfig {
	return ZombiesConfig{
		Frame: DefaultFrameConfig(),
		Field: FieldConfig{Width: 1024, Height: 768},
		Player: ZombiesPlayer{
			Speed:       200,
			Health:      100,
			Radius:      20,
			HitCooldown: 0.2,
			FireRate:    4,
		},
		Bullet: ZombiesBullet{
			Speed:  1000,
			Range:  1000,
			Radius: 4,
		},
		Horde: ZombiesHorde{
			Count:      5,
			WaveGrowth: 3,
			Radius:     20,
			Points:     10,
			CorpseTime: 2.0,
		},
		Types: []ZombieType{
			{Name: "bloater", Speed: 40, Health: 5, Weight: 1},
			{Name: "chaser", Speed: 80, Health: 1, Weight: 2},
			{Name: "crawler", Speed: 20, Health: 3, Weight: 1},
		},
		Difficulty: DifficultyConfig{
			Enabled: true,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 300,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
				CountIncrease:   5,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "pong":
		return defaultPongYAML
	case "asteroids":
		return defaultAsteroidsYAML
	case "zombies":
		return defaultZombiesYAML
	default:
		return nil
	}
}
