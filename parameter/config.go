package parameter

import (
	"github.com/lixenwraith/jumpman/vmath"
)

// Config holds the simulation tunables; built once at startup and never mutated afterwards
// Lengths are world pixels, times are seconds, speeds are px/s, accelerations px/s²
type Config struct {
	FixedDT      float64 `toml:"fixed_dt"`
	MaxFrameTime float64 `toml:"max_frame_time"`
	TileSize     float64 `toml:"tile_size"`

	PlayerSize vmath.Vec2 `toml:"player_size"`
	MoveSpeed  float64    `toml:"move_speed"`
	MoveAccel  float64    `toml:"move_accel"`
	MoveDecel  float64    `toml:"move_decel"`

	Gravity          float64 `toml:"gravity"`
	TerminalVelocity float64 `toml:"terminal_velocity"`

	JumpSpeed         float64 `toml:"jump_speed"`
	CoyoteTime        float64 `toml:"coyote_time"`
	JumpBufferTime    float64 `toml:"jump_buffer_time"`
	JumpCutMultiplier float64 `toml:"jump_cut_multiplier"`
	StompBounce       float64 `toml:"stomp_bounce"`

	EnemySize  vmath.Vec2 `toml:"enemy_size"`
	EnemySpeed float64    `toml:"enemy_speed"`

	MushroomSize vmath.Vec2 `toml:"mushroom_size"`

	HurtInvulnTime float64 `toml:"hurt_invuln_time"`
	HurtKnockbackX float64 `toml:"hurt_knockback_x"`
	HurtKnockbackY float64 `toml:"hurt_knockback_y"`
}

// DefaultConfig returns the stock tuning
func DefaultConfig() Config {
	return Config{
		FixedDT:           1.0 / 60.0,
		MaxFrameTime:      0.25,
		TileSize:          32,
		PlayerSize:        vmath.V2(22, 28),
		MoveSpeed:         220,
		MoveAccel:         1600,
		MoveDecel:         2000,
		Gravity:           1200,
		TerminalVelocity:  780,
		JumpSpeed:         420,
		CoyoteTime:        0.1,
		JumpBufferTime:    0.12,
		JumpCutMultiplier: 0.5,
		StompBounce:       320,
		EnemySize:         vmath.V2(24, 20),
		EnemySpeed:        65,
		MushroomSize:      vmath.V2(24, 22),
		HurtInvulnTime:    0.75,
		HurtKnockbackX:    200,
		HurtKnockbackY:    260,
	}
}

// Settings is the process-wide configuration: simulation tunables plus runtime options
type Settings struct {
	Level  string  `toml:"level"`
	Mute   bool    `toml:"mute"`
	Volume float64 `toml:"volume"`

	Physics Config `toml:"physics"`

	// Keys overrides default bindings: key name → action name, "none" unbinds
	Keys map[string]string `toml:"keys"`
}

// DefaultSettings returns settings with stock tuning and the bundled level
func DefaultSettings() Settings {
	return Settings{
		Level:   DefaultLevelPath,
		Volume:  DefaultVolume,
		Physics: DefaultConfig(),
	}
}
