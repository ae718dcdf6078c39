package world

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/jumpman/parameter"
	"github.com/lixenwraith/jumpman/vmath"
)

func cfg() parameter.Config {
	return parameter.DefaultConfig()
}

func TestParseFallback(t *testing.T) {
	w := MustFallback(cfg())
	assert.Equal(t, 32, w.Width)
	assert.Equal(t, 8, w.Height)
	assert.NotEmpty(t, w.Solids)
	assert.NotEmpty(t, w.EnemySpawns)
	assert.Len(t, w.Coins, 3)
	assert.Len(t, w.Mushrooms, 1)
	assert.Equal(t, vmath.V2(64, 192), w.PlayerSpawn)
	assert.Equal(t, vmath.V2(29*32, 192), w.GoalTile)
}

func TestParseMinimalLevel(t *testing.T) {
	w, err := Parse("P.CG\n####", cfg())
	require.NoError(t, err)

	assert.Equal(t, 4, w.Width)
	assert.Equal(t, 2, w.Height)
	assert.Len(t, w.Solids, 4)
	require.Len(t, w.Coins, 1)
	assert.Equal(t, vmath.V2(80, 16), w.Coins[0])
	for col := 0; col < 4; col++ {
		assert.False(t, w.IsSolidTile(col, 0))
		assert.True(t, w.IsSolidTile(col, 1))
	}
}

func TestParseSolidOrderIsRowMajor(t *testing.T) {
	w, err := Parse("#.#\nPG.\n.##", cfg())
	require.NoError(t, err)
	want := []vmath.Rect{
		{X: 0, Y: 0, W: 32, H: 32},
		{X: 64, Y: 0, W: 32, H: 32},
		{X: 32, Y: 64, W: 32, H: 32},
		{X: 64, Y: 64, W: 32, H: 32},
	}
	assert.Equal(t, want, w.Solids)
}

func TestParseRaggedRows(t *testing.T) {
	w, err := Parse("PG\n#####\n\n##   \r\n", cfg())
	require.NoError(t, err)
	assert.Equal(t, 5, w.Width)
	assert.Equal(t, 3, w.Height)
	assert.False(t, w.IsSolidTile(4, 2))
	assert.True(t, w.IsSolidTile(1, 2))
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  error
	}{
		{"empty", "", ErrEmptyLevel},
		{"blank lines only", "\n  \n", ErrEmptyLevel},
		{"no spawns", "..\n..\n", ErrMissingPlayer},
		{"no goal", "P.\n##", ErrMissingGoal},
		{"two players", "PPG\n###", ErrDuplicatePlayer},
		{"two goals", "PGG\n###", ErrDuplicateGoal},
		{"bad tile", "P?G\n###", ErrBadTile},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := Parse(tt.level, cfg())
			assert.Nil(t, w)
			assert.ErrorIs(t, err, tt.want)

			var le *LoadError
			assert.ErrorAs(t, err, &le)
		})
	}
}

func TestBadTileMessage(t *testing.T) {
	_, err := Parse("P.G\n#x#", cfg())
	require.Error(t, err)
	assert.Equal(t, "unexpected tile 'x' at row 1 col 1", err.Error())
}

func TestIsSolidTileOutOfRange(t *testing.T) {
	w := MustFallback(cfg())
	assert.False(t, w.IsSolidTile(-1, 7))
	assert.False(t, w.IsSolidTile(0, -1))
	assert.False(t, w.IsSolidTile(w.Width, 7))
	assert.False(t, w.IsSolidTile(0, w.Height))
	assert.True(t, w.IsSolidTile(0, 7))
}

func TestGroundYForX(t *testing.T) {
	w := MustFallback(cfg())

	y, ok := w.GroundYForX(10, 0)
	require.True(t, ok)
	assert.Equal(t, 224.0, y)

	// Column 7 has a platform on row 5 above the floor gap
	y, ok = w.GroundYForX(7*32+5, 0)
	require.True(t, ok)
	assert.Equal(t, 160.0, y)

	// Starting below the platform finds nothing in the gap column
	_, ok = w.GroundYForX(7*32+5, 6*32)
	assert.False(t, ok)

	// Negative start clamps to row 0
	y, ok = w.GroundYForX(10, -500)
	require.True(t, ok)
	assert.Equal(t, 224.0, y)

	// Outside the world horizontally
	_, ok = w.GroundYForX(-40, 0)
	assert.False(t, ok)
}

func TestMushroomPlacedOnGround(t *testing.T) {
	c := cfg()
	w, err := Parse("P.M.G\n.....\n#####", c)
	require.NoError(t, err)
	require.Len(t, w.Mushrooms, 1)
	m := w.Mushrooms[0]
	assert.Equal(t, 64+(32-c.MushroomSize.X)*0.5, m.X)
	assert.Equal(t, 64-c.MushroomSize.Y, m.Y)
}

func TestMushroomWithoutGroundUsesTileBottom(t *testing.T) {
	c := cfg()
	w, err := Parse("P.M.G", c)
	require.NoError(t, err)
	require.Len(t, w.Mushrooms, 1)
	assert.Equal(t, 32-c.MushroomSize.Y, w.Mushrooms[0].Y)
}

func TestResetRestoresTemplates(t *testing.T) {
	w := MustFallback(cfg())
	coins := w.CoinSpawns()
	mushrooms := w.MushroomSpawns()
	assert.Equal(t, coins, w.Coins)
	assert.Equal(t, mushrooms, w.Mushrooms)

	w.Coins = w.Coins[1:]
	w.Mushrooms = nil
	w.Reset()

	assert.Equal(t, coins, w.Coins)
	assert.Equal(t, mushrooms, w.Mushrooms)

	// Mutating the live set never reaches the templates
	w.Coins[0] = vmath.V2(-1, -1)
	assert.Equal(t, coins, w.CoinSpawns())
}

func TestGoalTriggerRect(t *testing.T) {
	w := MustFallback(cfg())
	r := w.GoalTriggerRect()
	assert.InDelta(t, 29*32+16-32*0.18*0.5, r.X, 1e-9)
	assert.InDelta(t, 32*0.18, r.W, 1e-9)
	assert.Equal(t, 96.0, r.H)
	assert.Equal(t, 224.0, r.Bottom())
}

func TestCameraFor(t *testing.T) {
	w := MustFallback(cfg()) // 1024 x 256 px
	screen := vmath.V2(320, 480)

	// Wide world clamps X, short world centers Y
	assert.Equal(t, vmath.V2(160, 128), w.CameraFor(vmath.V2(0, 0), screen))
	assert.Equal(t, vmath.V2(500, 128), w.CameraFor(vmath.V2(500, 10), screen))
	assert.Equal(t, vmath.V2(1024-160, 128), w.CameraFor(vmath.V2(5000, 900), screen))

	small := vmath.V2(200, 100)
	assert.Equal(t, vmath.V2(500, 206), w.CameraFor(vmath.V2(500, 900), small))
	assert.Equal(t, vmath.V2(500, 50), w.CameraFor(vmath.V2(500, -900), small))
}

func TestLoadFallsBack(t *testing.T) {
	dir := t.TempDir()

	w, err := Load(filepath.Join(dir, "missing.txt"), cfg())
	assert.Error(t, err)
	require.NotNil(t, w)
	assert.Equal(t, 32, w.Width)

	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("P..\n###"), 0o644))
	w, err = Load(bad, cfg())
	assert.ErrorIs(t, err, ErrMissingGoal)
	require.NotNil(t, w)
	assert.Equal(t, MustFallback(cfg()).Solids, w.Solids)

	good := filepath.Join(dir, "good.txt")
	require.NoError(t, os.WriteFile(good, []byte("P.G\n###"), 0o644))
	w, err = Load(good, cfg())
	require.NoError(t, err)
	assert.Equal(t, 3, w.Width)
}

func TestBundledLevelParses(t *testing.T) {
	w, err := ReadFile(filepath.Join("..", parameter.DefaultLevelPath), cfg())
	require.NoError(t, err)
	assert.NotEmpty(t, w.EnemySpawns)
	assert.NotEmpty(t, w.Coins)
	assert.NotEmpty(t, w.Mushrooms)
}
