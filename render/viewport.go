package render

import (
	"math"

	"github.com/lixenwraith/jumpman/vmath"
)

// Viewport maps world pixels onto terminal cells
// A tile spans two columns and one row so tiles look roughly square
type Viewport struct {
	Left, Top    float64 // world px at the top-left cell
	CellW, CellH float64 // world px per cell
	Cols, Rows   int
	RowOffset    int // screen rows above the playfield
}

// NewViewport centers a cols×rows playfield on the camera point
func NewViewport(camera vmath.Vec2, tile float64, cols, rows, rowOffset int) Viewport {
	v := Viewport{
		CellW:     tile / 2,
		CellH:     tile,
		Cols:      cols,
		Rows:      rows,
		RowOffset: rowOffset,
	}
	ext := v.Extent()
	v.Left = camera.X - ext.X/2
	v.Top = camera.Y - ext.Y/2
	return v
}

// Extent is the playfield size in world px
func (v Viewport) Extent() vmath.Vec2 {
	return vmath.V2(float64(v.Cols)*v.CellW, float64(v.Rows)*v.CellH)
}

// Bounds is the visible world rectangle
func (v Viewport) Bounds() vmath.Rect {
	ext := v.Extent()
	return vmath.Rect{X: v.Left, Y: v.Top, W: ext.X, H: ext.Y}
}

// Cell returns the screen cell containing a world point
func (v Viewport) Cell(p vmath.Vec2) (col, row int) {
	col = int(math.Floor((p.X - v.Left) / v.CellW))
	row = int(math.Floor((p.Y-v.Top)/v.CellH)) + v.RowOffset
	return col, row
}

// Span returns the inclusive cell range covered by r, clipped to the playfield
// ok is false when nothing is visible
func (v Viewport) Span(r vmath.Rect) (c0, r0, c1, r1 int, ok bool) {
	const eps = 1e-6
	c0, r0 = v.Cell(vmath.V2(r.X, r.Y))
	c1, r1 = v.Cell(vmath.V2(r.Right()-eps, r.Bottom()-eps))
	c0, c1 = max(c0, 0), min(c1, v.Cols-1)
	r0, r1 = max(r0, v.RowOffset), min(r1, v.RowOffset+v.Rows-1)
	return c0, r0, c1, r1, c0 <= c1 && r0 <= r1
}
