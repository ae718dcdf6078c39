package parameter

import "time"

const (
	// FrameUpdateInterval is the render/input frame cadence of the interactive loop
	FrameUpdateInterval = time.Second / 60

	// KeyHoldWindow is how long a key counts as held after its last press or auto-repeat
	// Terminals report no key releases, so holds are inferred from repeats
	KeyHoldWindow = 150 * time.Millisecond

	// DefaultHeadlessTicks is the step count of a headless run without --ticks
	DefaultHeadlessTicks = 600

	// DefaultLevelPath is resolved relative to the working directory
	DefaultLevelPath = "assets/levels/level1.txt"

	// EnvPrefix namespaces environment overrides
	EnvPrefix = "JUMPMAN_"

	// EnvFile is read for overrides when present
	EnvFile = ".env"
)
