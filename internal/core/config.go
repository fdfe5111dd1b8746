package core

// RuntimeConfig contains the terminal settings a world view starts with.
type RuntimeConfig struct {
	ScreenW  int    // Screen width in characters
	ScreenH  int    // Screen height in characters
	TickRate int    // Frames per second (default 30)
	Player   string // Name recorded with runs; empty for local play
	Source   string // Where the run happens: "play" or "ssh"
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Source:   "play",
	}
}
