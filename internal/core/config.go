package core

// RuntimeConfig is the per-run setup passed down from the CLI or SSH
// layer: terminal dimensions and the RNG seed for the template draw.
type RuntimeConfig struct {
	ScreenW int
	ScreenH int
	Seed    int64 // 0 means the platform layer seeds from the clock
}

// DefaultConfig returns a RuntimeConfig with standard terminal
// dimensions.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
	}
}
