package config

import (
	_ "embed"
)

//go:embed defaults/bricks.yaml
var defaultBricksYAML []byte

// Default returns the hardcoded default configuration. It matches the
// embedded defaults/bricks.yaml and is the fallback of last resort when
// no YAML source can be loaded.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Rows: 20,
			Cols: 20,
		},
		Physics: PhysicsConfig{
			BallSpeed:    300,  // 0.3 cells per tick
			MaxBallSpeed: 1000, // 1.0 cells per tick max
			PaddleSpeed:  500,  // 0.5 cells per tick
		},
		Paddle: PaddleConfig{
			Width:    10,
			MinWidth: 5,
			MaxWidth: 15,
		},
		Gameplay: GameplayConfig{
			Lives:         3,
			MaxLives:      5,
			ServeDelay:    60, // 1s at 60fps
			SpeedUpEveryN: 10, // Speed up every 10 bricks
			SpeedUpAmount: 20, // Add 0.02 to speed
			Cheats:        false,
		},
		Hazards: HazardConfig{
			SpawnDelay:  500, // 0.5s
			VarianceDeg: 20,
			MinSpeed:    5000, // 5 cells per second
		},
		Effects: EffectConfig{
			DurationTicks: 600, // 10s at 60fps
			ShrinkFactor:  700,
			EnlargeFactor: 1500,
		},
		Scoring: ScoringConfig{
			MilestoneEvery: 5000,
		},
	}
}

// DefaultYAML returns the embedded default configuration YAML.
func DefaultYAML() []byte {
	return defaultBricksYAML
}
