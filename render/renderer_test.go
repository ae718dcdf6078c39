package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/jumpman/engine"
	"github.com/lixenwraith/jumpman/input"
	"github.com/lixenwraith/jumpman/parameter"
	"github.com/lixenwraith/jumpman/vmath"
	"github.com/lixenwraith/jumpman/world"
)

func setup(t *testing.T, level string, debug bool) (tcell.SimulationScreen, *engine.Game, *Renderer) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)

	cfg := parameter.DefaultConfig()
	w, err := world.Parse(level, cfg)
	require.NoError(t, err)
	g := engine.NewGame(w, cfg)
	return screen, g, NewRenderer(screen, w, debug)
}

func row(screen tcell.Screen, y int) string {
	cols, _ := screen.Size()
	var sb strings.Builder
	for x := 0; x < cols; x++ {
		mainc, _, _, _ := screen.GetContent(x, y)
		if mainc == 0 {
			mainc = ' '
		}
		sb.WriteRune(mainc)
	}
	return sb.String()
}

func dump(screen tcell.Screen) string {
	_, rows := screen.Size()
	lines := make([]string, rows)
	for y := range lines {
		lines[y] = row(screen, y)
	}
	return strings.Join(lines, "\n")
}

func TestTitleScreen(t *testing.T) {
	screen, g, r := setup(t, "P.CG\n####", false)
	r.Draw(g.Snapshot(), nil)

	out := dump(screen)
	assert.Contains(t, out, "Press Enter to start")
	assert.Contains(t, row(screen, 0), "SCORE 000000")
	assert.NotContains(t, out, string(glyphPlayer))
}

func TestPlayfieldDrawsEntities(t *testing.T) {
	screen, g, r := setup(t, "P.C.M\n..E.G\n#####", false)
	g.Step(input.StepInput{StartPressed: true})
	require.Equal(t, engine.PhasePlaying, g.Phase())

	r.Draw(g.Snapshot(), nil)
	out := dump(screen)
	for _, glyph := range []rune{glyphPlayer, glyphCoin, glyphShroom, glyphEnemy, glyphGround, glyphPole} {
		assert.Contains(t, out, string(glyph), "missing %q", glyph)
	}
	assert.Contains(t, row(screen, 0), "COINS 1")
}

func TestDeadEnemyNotDrawn(t *testing.T) {
	screen, g, r := setup(t, "P...G\n..E..\n#####", false)
	g.Step(input.StepInput{StartPressed: true})

	snap := g.Snapshot()
	require.Len(t, snap.Enemies, 1)
	snap.Enemies[0].Alive = false
	r.Draw(snap, nil)
	assert.NotContains(t, dump(screen), string(glyphEnemy))
}

func TestLevelCompleteBanner(t *testing.T) {
	screen, g, r := setup(t, "PG\n##", false)
	snap := g.Snapshot()
	snap.Phase = engine.PhaseLevelComplete
	r.Draw(snap, nil)
	assert.Contains(t, dump(screen), "Course Complete! Press R to restart.")
}

func TestDebugOverlay(t *testing.T) {
	metrics := []string{"game.ticks=42"}

	screen, g, r := setup(t, "PG\n##", true)
	r.Draw(g.Snapshot(), metrics)
	assert.Contains(t, row(screen, 1), "game.ticks=42")

	screen, g, r = setup(t, "PG\n##", false)
	r.Draw(g.Snapshot(), metrics)
	assert.NotContains(t, dump(screen), "game.ticks=42")
}

func TestVisibleCullsSolids(t *testing.T) {
	_, _, r := setup(t, "P.......G\n#.......#", false)

	// Only the left wall tile lies in the first two tiles
	left := r.Visible(vmath.Rect{X: 0, Y: 0, W: 40, H: 64}, tagSolid)
	require.Len(t, left, 1)
	assert.Equal(t, 0.0, left[0].X)

	all := r.Visible(vmath.Rect{X: 0, Y: 0, W: 288, H: 64}, tagSolid)
	assert.Len(t, all, 2)

	goal := r.Visible(vmath.Rect{X: 0, Y: 0, W: 288, H: 64}, tagGoal)
	assert.Len(t, goal, 1)
}

func TestVisibleReturnsEveryObjectOnce(t *testing.T) {
	_, _, r := setup(t, "....\n....\nP..G\n####", false)
	view := vmath.Rect{X: 0, Y: 0, W: 128, H: 128}

	solids := r.Visible(view, tagSolid)
	require.Len(t, solids, 4)
	xs := make(map[float64]bool)
	for _, obj := range solids {
		xs[obj.X] = true
	}
	assert.Len(t, xs, 4)

	// The pole spans three cells but comes back once
	goal := r.Visible(view, tagGoal)
	require.Len(t, goal, 1)
	assert.Greater(t, goal[0].H, 32.0)

	assert.Empty(t, r.Visible(vmath.Rect{X: 0, Y: 0, W: 128, H: 64}, tagSolid))
}
