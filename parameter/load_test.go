package parameter

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero timestep", func(c *Config) { c.FixedDT = 0 }},
		{"frame cap below step", func(c *Config) { c.MaxFrameTime = c.FixedDT / 2 }},
		{"zero tile", func(c *Config) { c.TileSize = 0 }},
		{"flat player", func(c *Config) { c.PlayerSize.Y = 0 }},
		{"flat enemy", func(c *Config) { c.EnemySize.X = -1 }},
		{"flat mushroom", func(c *Config) { c.MushroomSize.X = 0 }},
		{"jump cut above one", func(c *Config) { c.JumpCutMultiplier = 1.5 }},
		{"negative coyote", func(c *Config) { c.CoyoteTime = -0.1 }},
		{"nan timestep", func(c *Config) { c.FixedDT = math.NaN() }},
		{"nan gravity", func(c *Config) { c.Gravity = math.NaN() }},
		{"infinite frame cap", func(c *Config) { c.MaxFrameTime = math.Inf(1) }},
		{"nan player height", func(c *Config) { c.PlayerSize.Y = math.NaN() }},
		{"nan jump cut", func(c *Config) { c.JumpCutMultiplier = math.NaN() }},
		{"negative terminal velocity", func(c *Config) { c.TerminalVelocity = -100 }},
		{"zero terminal velocity", func(c *Config) { c.TerminalVelocity = 0 }},
		{"negative gravity", func(c *Config) { c.Gravity = -1 }},
		{"negative move speed", func(c *Config) { c.MoveSpeed = -220 }},
		{"negative decel", func(c *Config) { c.MoveDecel = -1 }},
		{"negative enemy speed", func(c *Config) { c.EnemySpeed = -65 }},
		{"negative knockback", func(c *Config) { c.HurtKnockbackY = -260 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			tt.mutate(&c)
			assert.ErrorIs(t, c.Validate(), ErrInvalidConfig)
		})
	}
}

func TestLoadFileOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jumpman.toml")
	data := []byte(`
level = "levels/custom.txt"
volume = 0.3

[physics]
gravity = 900
jump_speed = 400

[physics.player_size]
x = 20
y = 30
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	s := DefaultSettings()
	require.NoError(t, LoadFile(path, &s))

	assert.Equal(t, "levels/custom.txt", s.Level)
	assert.Equal(t, 0.3, s.Volume)
	assert.Equal(t, 900.0, s.Physics.Gravity)
	assert.Equal(t, 400.0, s.Physics.JumpSpeed)
	assert.Equal(t, 20.0, s.Physics.PlayerSize.X)
	assert.Equal(t, 30.0, s.Physics.PlayerSize.Y)
	// Untouched keys keep defaults
	assert.Equal(t, DefaultConfig().MoveSpeed, s.Physics.MoveSpeed)
	assert.Equal(t, DefaultConfig().FixedDT, s.Physics.FixedDT)
}

func TestLoadFileRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("gravty = 3\n"), 0o644))

	s := DefaultSettings()
	assert.ErrorIs(t, LoadFile(path, &s), ErrInvalidConfig)
}

func TestLoadFileMissing(t *testing.T) {
	s := DefaultSettings()
	assert.Error(t, LoadFile(filepath.Join(t.TempDir(), "nope.toml"), &s))
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"JUMPMAN_LEVEL":      "x.txt",
		"JUMPMAN_MUTE":       "true",
		"JUMPMAN_GRAVITY":    "1500",
		"JUMPMAN_MOVE_SPEED": "250.5",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	s := DefaultSettings()
	require.NoError(t, ApplyEnv(&s, lookup))
	assert.Equal(t, "x.txt", s.Level)
	assert.True(t, s.Mute)
	assert.Equal(t, 1500.0, s.Physics.Gravity)
	assert.Equal(t, 250.5, s.Physics.MoveSpeed)
	assert.Equal(t, DefaultConfig().JumpSpeed, s.Physics.JumpSpeed)
}

func TestApplyEnvBadValue(t *testing.T) {
	lookup := func(k string) (string, bool) {
		if k == "JUMPMAN_JUMP_SPEED" {
			return "fast", true
		}
		return "", false
	}
	s := DefaultSettings()
	assert.Error(t, ApplyEnv(&s, lookup))
}

func TestApplyEnvRejectsNonFinite(t *testing.T) {
	for _, v := range []string{"NaN", "Inf", "-Inf"} {
		t.Run(v, func(t *testing.T) {
			lookup := func(k string) (string, bool) {
				if k == "JUMPMAN_GRAVITY" {
					return v, true
				}
				return "", false
			}
			s := DefaultSettings()
			assert.ErrorIs(t, ApplyEnv(&s, lookup), ErrInvalidConfig)
		})
	}
}

func TestLoadRejectsNaNFromEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("JUMPMAN_GRAVITY", "NaN")

	_, err := Load("")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, EnvFile), []byte("JUMPMAN_JUMP_SPEED=500\n"), 0o644))

	s, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 500.0, s.Physics.JumpSpeed)
}

func TestLoadWithoutDotEnv(t *testing.T) {
	chdir(t, t.TempDir())

	s, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
}

func TestExampleConfigMatchesDefaults(t *testing.T) {
	s := DefaultSettings()
	require.NoError(t, LoadFile(filepath.Join("..", "assets", "jumpman.example.toml"), &s))

	want := DefaultSettings()
	assert.Equal(t, want.Physics, s.Physics)
	assert.Equal(t, want.Level, s.Level)
	assert.Equal(t, "jump", s.Keys["i"])
}

// chdir changes the working directory for the duration of the test
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
