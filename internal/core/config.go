package core

// RuntimeConfig contains runtime parameters passed from the platform to
// the game at initialization: terminal dimensions and the RNG seed.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed; 0 means use current time in the platform layer
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0,
	}
}
