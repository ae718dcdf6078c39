package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/jumpman/vmath"
)

func TestViewportCentersOnCamera(t *testing.T) {
	vp := NewViewport(vmath.V2(320, 160), 32, 40, 10, 1)
	assert.Equal(t, 16.0, vp.CellW)
	assert.Equal(t, 32.0, vp.CellH)
	assert.Equal(t, vmath.V2(640, 320), vp.Extent())
	assert.Equal(t, 0.0, vp.Left)
	assert.Equal(t, 0.0, vp.Top)

	col, row := vp.Cell(vmath.V2(17, 33))
	assert.Equal(t, 1, col)
	assert.Equal(t, 2, row)
}

func TestViewportSpan(t *testing.T) {
	vp := NewViewport(vmath.V2(320, 160), 32, 40, 10, 1)

	// One tile covers two columns and one row
	c0, r0, c1, r1, ok := vp.Span(vmath.Rect{X: 32, Y: 32, W: 32, H: 32})
	assert.True(t, ok)
	assert.Equal(t, []int{2, 2, 3, 2}, []int{c0, r0, c1, r1})

	// Partially offscreen rects are clipped
	c0, r0, c1, r1, ok = vp.Span(vmath.Rect{X: -20, Y: -40, W: 40, H: 80})
	assert.True(t, ok)
	assert.Equal(t, []int{0, 1, 1, 2}, []int{c0, r0, c1, r1})

	// Fully offscreen
	_, _, _, _, ok = vp.Span(vmath.Rect{X: 700, Y: 0, W: 10, H: 10})
	assert.False(t, ok)
	_, _, _, _, ok = vp.Span(vmath.Rect{X: 0, Y: -100, W: 10, H: 10})
	assert.False(t, ok)
}
