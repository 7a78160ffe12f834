package core

// RuntimeConfig is what the platform hands a game at (re)start.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters
	ScreenH  int   // Terminal height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic level generation and spawning
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  100,
		ScreenH:  30,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the summary the platform needs after every tick.
type GameState struct {
	Score     int  // Whole points of the running score
	HighScore int  // Whole points of the best score known this session
	GameOver  bool // The player has died or the level was ended
	Paused    bool
	NewHigh   bool // The score passed the persisted high score
	Ticks     int  // Simulation ticks since the level started
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
