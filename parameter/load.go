package parameter

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Sentinel errors
var (
	ErrInvalidConfig = errors.New("invalid config")
)

// Load builds settings from defaults, an optional TOML file, then .env and process environment
// An empty path skips the file; a missing .env is not an error
func Load(path string) (Settings, error) {
	s := DefaultSettings()
	if path != "" {
		if err := LoadFile(path, &s); err != nil {
			return s, err
		}
	}

	dotenv, err := godotenv.Read(EnvFile)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return s, fmt.Errorf("read %s: %w", EnvFile, err)
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}
	if err := ApplyEnv(&s, lookup); err != nil {
		return s, err
	}

	if err := s.Physics.Validate(); err != nil {
		return s, err
	}
	return s, nil
}

// LoadFile overlays a TOML file onto s; keys absent from the file keep their current values
func LoadFile(path string, s *Settings) error {
	md, err := toml.DecodeFile(path, s)
	if err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return fmt.Errorf("config %s: unknown keys %s: %w", path, strings.Join(keys, ", "), ErrInvalidConfig)
	}
	return nil
}

// ApplyEnv overrides individual settings from JUMPMAN_* variables
func ApplyEnv(s *Settings, lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvPrefix + "LEVEL"); ok && v != "" {
		s.Level = v
	}
	if v, ok := lookup(EnvPrefix + "MUTE"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sMUTE=%q: %w", EnvPrefix, v, err)
		}
		s.Mute = b
	}

	floats := []struct {
		key string
		dst *float64
	}{
		{"VOLUME", &s.Volume},
		{"GRAVITY", &s.Physics.Gravity},
		{"MOVE_SPEED", &s.Physics.MoveSpeed},
		{"JUMP_SPEED", &s.Physics.JumpSpeed},
	}
	for _, f := range floats {
		v, ok := lookup(EnvPrefix + f.key)
		if !ok {
			continue
		}
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s%s=%q: %w", EnvPrefix, f.key, v, err)
		}
		if math.IsNaN(parsed) || math.IsInf(parsed, 0) {
			return fmt.Errorf("%s%s=%q not finite: %w", EnvPrefix, f.key, v, ErrInvalidConfig)
		}
		*f.dst = parsed
	}
	return nil
}

// Validate rejects tunings the simulation cannot run with
// Comparisons are written so NaN fails them
func (c Config) Validate() error {
	for _, f := range c.fields() {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%s must be finite: %w", f.name, ErrInvalidConfig)
		}
	}

	switch {
	case !(c.FixedDT > 0):
		return fmt.Errorf("fixed_dt must be positive: %w", ErrInvalidConfig)
	case !(c.MaxFrameTime >= c.FixedDT):
		return fmt.Errorf("max_frame_time below fixed_dt: %w", ErrInvalidConfig)
	case !(c.TileSize > 0):
		return fmt.Errorf("tile_size must be positive: %w", ErrInvalidConfig)
	case !(c.PlayerSize.X > 0 && c.PlayerSize.Y > 0):
		return fmt.Errorf("player_size must be positive: %w", ErrInvalidConfig)
	case !(c.EnemySize.X > 0 && c.EnemySize.Y > 0):
		return fmt.Errorf("enemy_size must be positive: %w", ErrInvalidConfig)
	case !(c.MushroomSize.X > 0 && c.MushroomSize.Y > 0):
		return fmt.Errorf("mushroom_size must be positive: %w", ErrInvalidConfig)
	case !(c.TerminalVelocity > 0):
		return fmt.Errorf("terminal_velocity must be positive: %w", ErrInvalidConfig)
	case !(c.Gravity >= 0):
		return fmt.Errorf("gravity must be non-negative: %w", ErrInvalidConfig)
	case !(c.MoveSpeed >= 0 && c.MoveAccel >= 0 && c.MoveDecel >= 0):
		return fmt.Errorf("move tuning must be non-negative: %w", ErrInvalidConfig)
	case !(c.JumpSpeed >= 0 && c.StompBounce >= 0 && c.EnemySpeed >= 0):
		return fmt.Errorf("speeds must be non-negative: %w", ErrInvalidConfig)
	case !(c.HurtKnockbackX >= 0 && c.HurtKnockbackY >= 0):
		return fmt.Errorf("knockback must be non-negative: %w", ErrInvalidConfig)
	case !(c.JumpCutMultiplier >= 0 && c.JumpCutMultiplier <= 1):
		return fmt.Errorf("jump_cut_multiplier outside [0,1]: %w", ErrInvalidConfig)
	case !(c.CoyoteTime >= 0 && c.JumpBufferTime >= 0 && c.HurtInvulnTime >= 0):
		return fmt.Errorf("timers must be non-negative: %w", ErrInvalidConfig)
	}
	return nil
}

type configField struct {
	name  string
	value float64
}

func (c Config) fields() []configField {
	return []configField{
		{"fixed_dt", c.FixedDT},
		{"max_frame_time", c.MaxFrameTime},
		{"tile_size", c.TileSize},
		{"player_size.x", c.PlayerSize.X},
		{"player_size.y", c.PlayerSize.Y},
		{"move_speed", c.MoveSpeed},
		{"move_accel", c.MoveAccel},
		{"move_decel", c.MoveDecel},
		{"gravity", c.Gravity},
		{"terminal_velocity", c.TerminalVelocity},
		{"jump_speed", c.JumpSpeed},
		{"coyote_time", c.CoyoteTime},
		{"jump_buffer_time", c.JumpBufferTime},
		{"jump_cut_multiplier", c.JumpCutMultiplier},
		{"stomp_bounce", c.StompBounce},
		{"enemy_size.x", c.EnemySize.X},
		{"enemy_size.y", c.EnemySize.Y},
		{"enemy_speed", c.EnemySpeed},
		{"mushroom_size.x", c.MushroomSize.X},
		{"mushroom_size.y", c.MushroomSize.Y},
		{"hurt_invuln_time", c.HurtInvulnTime},
		{"hurt_knockback_x", c.HurtKnockbackX},
		{"hurt_knockback_y", c.HurtKnockbackY},
	}
}
