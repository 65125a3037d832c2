package core

// RuntimeConfig contains host-side settings passed to the platform layer.
// Game dimensions are compiled into each game; ScreenW/ScreenH describe the
// terminal the board is drawn into.
type RuntimeConfig struct {
	ScreenW  int // Terminal width in characters
	ScreenH  int // Terminal height in characters
	TickRate int // Host frames per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}
