// Package config provides YAML-based game configuration loading and
// difficulty presets.
package config

// Config contains all tunables for the brick game. Fixed-point fields
// use the simulation scale (1000 = 1.0).
type Config struct {
	Grid     GridConfig     `yaml:"grid"`
	Physics  PhysicsConfig  `yaml:"physics"`
	Paddle   PaddleConfig   `yaml:"paddle"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Hazards  HazardConfig   `yaml:"hazards"`
	Effects  EffectConfig   `yaml:"effects"`
	Scoring  ScoringConfig  `yaml:"scoring"`
}

// GridConfig defines the brick playfield size in cells.
type GridConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// PhysicsConfig defines ball and paddle motion parameters.
type PhysicsConfig struct {
	BallSpeed    int `yaml:"ball_speed"`     // Fixed-point cells per tick
	MaxBallSpeed int `yaml:"max_ball_speed"` // Fixed-point cells per tick
	PaddleSpeed  int `yaml:"paddle_speed"`   // Fixed-point cells per tick
}

// PaddleConfig defines paddle dimensions in cells.
type PaddleConfig struct {
	Width    int `yaml:"width"`
	MinWidth int `yaml:"min_width"`
	MaxWidth int `yaml:"max_width"`
}

// GameplayConfig defines lives, pacing and cheat access.
type GameplayConfig struct {
	Lives         int  `yaml:"lives"`
	MaxLives      int  `yaml:"max_lives"`
	ServeDelay    int  `yaml:"serve_delay"`      // Ticks between life loss and the next serve
	SpeedUpEveryN int  `yaml:"speed_up_every_n"` // Speed up after every N bricks destroyed
	SpeedUpAmount int  `yaml:"speed_up_amount"`  // Fixed-point speed added per step
	Cheats        bool `yaml:"cheats"`           // Enables level skip keys
}

// HazardConfig defines falling hazard behavior.
type HazardConfig struct {
	SpawnDelay  int `yaml:"spawn_delay"`  // Fixed-point seconds between rotor destruction and spawn
	VarianceDeg int `yaml:"variance_deg"` // Launch angle variance in degrees
	MinSpeed    int `yaml:"min_speed"`    // Fixed-point cells per second, forward
}

// EffectConfig defines timed paddle effects.
type EffectConfig struct {
	DurationTicks int `yaml:"duration_ticks"` // Effect lifetime in ticks
	ShrinkFactor  int `yaml:"shrink_factor"`  // Fixed-point width multiplier
	EnlargeFactor int `yaml:"enlarge_factor"` // Fixed-point width multiplier
}

// ScoringConfig defines score milestone behavior.
type ScoringConfig struct {
	MilestoneEvery int `yaml:"milestone_every"` // Points per milestone; 0 disables
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ValidPreset reports whether the preset name is known.
func ValidPreset(p DifficultyPreset) bool {
	switch p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, "":
		return true
	}
	return false
}
