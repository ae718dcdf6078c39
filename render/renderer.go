package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/solarlune/resolv"

	"github.com/lixenwraith/jumpman/engine"
	"github.com/lixenwraith/jumpman/vmath"
	"github.com/lixenwraith/jumpman/world"
)

const (
	tagSolid = "solid"
	tagGoal  = "goal"

	hudRows = 1
)

// Renderer draws game snapshots onto a terminal screen
// Static level geometry is indexed once in a resolv space for per-frame culling
type Renderer struct {
	screen tcell.Screen
	world  *world.World
	space  *resolv.Space
	debug  bool
}

// NewRenderer indexes w's solids and goal for drawing on screen
func NewRenderer(screen tcell.Screen, w *world.World, debug bool) *Renderer {
	tile := int(w.TileSize)
	space := resolv.NewSpace(max(w.Width, 1)*tile, max(w.Height, 1)*tile, tile, tile)
	for _, s := range w.Solids {
		space.Add(resolv.NewObject(s.X, s.Y, s.W, s.H, tagSolid))
	}
	g := w.GoalTriggerRect()
	space.Add(resolv.NewObject(g.X, g.Y, g.W, g.H, tagGoal))

	return &Renderer{screen: screen, world: w, space: space, debug: debug}
}

// Visible returns the indexed objects with tag intersecting the view
func (r *Renderer) Visible(view vmath.Rect, tag string) []*resolv.Object {
	cx, cy := r.space.WorldToSpace(view.X, view.Y)
	ex, ey := r.space.WorldToSpace(view.Right(), view.Bottom())

	// Objects spanning several cells are registered in each of them
	seen := make(map[*resolv.Object]struct{})
	var out []*resolv.Object
	for iy := cy; iy <= ey; iy++ {
		for ix := cx; ix <= ex; ix++ {
			cell := r.space.Cell(ix, iy)
			if cell == nil || !cell.ContainsTags(tag) {
				continue
			}
			for _, obj := range cell.Objects {
				if !obj.HasTags(tag) {
					continue
				}
				if _, dup := seen[obj]; dup {
					continue
				}
				seen[obj] = struct{}{}
				out = append(out, obj)
			}
		}
	}
	return out
}

// Draw renders one frame from a settled snapshot; metrics lines show only in debug mode
func (r *Renderer) Draw(snap engine.Snapshot, metrics []string) {
	r.screen.SetStyle(styleSky)
	r.screen.Clear()

	cols, rows := r.screen.Size()
	switch snap.Phase {
	case engine.PhaseTitle:
		r.drawTitle(snap, cols, rows)
	case engine.PhasePlaying:
		r.drawPlayfield(snap, cols, rows)
	case engine.PhaseLevelComplete:
		r.drawPlayfield(snap, cols, rows)
		r.centered(rows/2, "Course Complete! Press R to restart.", styleText)
		r.centered(rows/2+1, "Esc for title", styleText)
	}
	r.drawHUD(snap, cols)

	if r.debug {
		for i, line := range metrics {
			r.text(cols-runewidth.StringWidth(line)-1, hudRows+i, line, styleDebug)
		}
	}
	r.screen.Show()
}

func (r *Renderer) viewport(snap engine.Snapshot, cols, rows int) Viewport {
	tile := r.world.TileSize
	playRows := max(rows-hudRows, 1)
	screenPx := vmath.V2(float64(cols)*tile/2, float64(playRows)*tile)
	focus := snap.Player.Pos.Add(snap.Player.Size.Scale(0.5))
	return NewViewport(r.world.CameraFor(focus, screenPx), tile, cols, playRows, hudRows)
}

func (r *Renderer) drawPlayfield(snap engine.Snapshot, cols, rows int) {
	vp := r.viewport(snap, cols, rows)
	view := vp.Bounds()

	for _, obj := range r.Visible(view, tagSolid) {
		r.fill(vp, vmath.Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}, glyphGround, styleGround)
	}
	for _, obj := range r.Visible(view, tagGoal) {
		pole := vmath.Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}
		r.fill(vp, pole, glyphPole, stylePole)
		if c, row := vp.Cell(vmath.V2(pole.X, pole.Y)); row >= hudRows {
			r.screen.SetContent(c+1, row, glyphFlag, nil, styleFlag)
		}
	}

	for _, c := range snap.Coins {
		r.fill(vp, r.world.CoinRect(c), glyphCoin, styleCoin)
	}
	for _, m := range snap.Mushrooms {
		r.fill(vp, vmath.RectAt(m, snap.Config.MushroomSize), glyphShroom, styleShroom)
	}
	for _, e := range snap.Enemies {
		if e.Alive {
			r.fill(vp, vmath.RectAt(e.Pos, e.Size), glyphEnemy, styleEnemy)
		}
	}

	p := snap.Player
	glyph, style := glyphPlayer, stylePlayer
	if p.Powered {
		style = stylePowered
	}
	// Blink while invulnerable
	if p.Invulnerable() && (snap.Tick/6)%2 == 0 {
		glyph = glyphInvuln
	}
	r.fill(vp, vmath.RectAt(p.Pos, p.Size), glyph, style)
}

func (r *Renderer) drawTitle(snap engine.Snapshot, cols, rows int) {
	mid := rows / 2
	r.centered(mid-3, "J U M P M A N", styleText)
	r.centered(mid-1, "Press Enter to start", styleText)
	r.centered(mid+1, "Arrows/A/D move  Space/W jump  R restart  Esc title", styleText)
	r.centered(mid+2, "Q quits", styleText)
	r.centered(mid+4, fmt.Sprintf("High score %06d", snap.HighScore), styleText)
}

func (r *Renderer) drawHUD(snap engine.Snapshot, cols int) {
	for x := 0; x < cols; x++ {
		r.screen.SetContent(x, 0, ' ', nil, styleHUD)
	}
	left := fmt.Sprintf(" SCORE %06d  HI %06d", snap.Score, snap.HighScore)
	r.text(0, 0, left, styleHUD)

	right := fmt.Sprintf("COINS %d ", len(snap.Coins))
	if snap.Player.Powered {
		right = "POWER  " + right
	}
	r.text(cols-runewidth.StringWidth(right), 0, right, styleHUD)
}

// fill paints every cell covered by rect
func (r *Renderer) fill(vp Viewport, rect vmath.Rect, glyph rune, style tcell.Style) {
	c0, r0, c1, r1, ok := vp.Span(rect)
	if !ok {
		return
	}
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			r.screen.SetContent(col, row, glyph, nil, style)
		}
	}
}

func (r *Renderer) text(x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x += runewidth.RuneWidth(ch)
	}
}

func (r *Renderer) centered(y int, s string, style tcell.Style) {
	cols, _ := r.screen.Size()
	x := int(math.Max(float64(cols-runewidth.StringWidth(s))/2, 0))
	r.text(x, y, s, style)
}
