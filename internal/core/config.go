package core

// RuntimeConfig carries the per-process settings the platform hands to a
// session at startup.
type RuntimeConfig struct {
	ScreenW int   // terminal width in characters
	ScreenH int   // terminal height in characters
	FPS     int   // render frame rate; game tick rate comes from the level table
	Seed    int64 // RNG seed, 0 = derive from current time
}

// DefaultRuntimeConfig returns sensible defaults for an 80x24 terminal.
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		FPS:     60,
	}
}
