package core

// RuntimeConfig contains configuration passed to games at initialization.
// Hosts fill it from the terminal/window size and CLI flags.
type RuntimeConfig struct {
	ScreenW  int   // Host surface width (terminal cells or window pixels)
	ScreenH  int   // Host surface height
	TickRate int   // Host frame callbacks per second (default 60)
	Seed     int64 // RNG seed, 0 means time-based
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the read-only status a game reports to its host.
type GameState struct {
	Score     int     // Current score
	Speed     float64 // Current world scroll speed (px/s)
	HighScore int     // Best score known to this game instance
	GameOver  bool    // Whether the run has ended
	Locked    bool    // Whether play is gated (auth, pause)
	Loading   bool    // Whether required media is still loading
}

// StepResult is returned by a simulation step.
type StepResult struct {
	State GameState
}
