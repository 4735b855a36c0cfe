package core

// RuntimeConfig defines platform-level parameters passed to games at startup.
type RuntimeConfig struct {
	ScreenW  int    // Playfield width in characters
	ScreenH  int    // Playfield height in characters
	TickRate int    // Simulation ticks per second
	Seed     int64  // RNG seed for deterministic behavior
	Level    string // Starting level ID; empty means the first bundled level
}

// DefaultConfig returns a standard 80x24 terminal configuration at 60 FPS.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// GameState is a snapshot of game status exposed to the platform layer
// after each tick, used for HUD display and persistence.
type GameState struct {
	Score    int
	Lives    int
	Level    int  // Current level number (1-based)
	GameOver bool // True when the run has ended
	Won      bool // True when every level has been cleared
	Paused   bool
}

// StepResult carries per-tick results from game to platform.
type StepResult struct {
	State GameState
}
