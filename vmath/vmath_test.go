package vmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntersectsSymmetric(t *testing.T) {
	rects := []Rect{
		{0, 0, 10, 10},
		{5, 5, 10, 10},
		{10, 0, 10, 10},
		{0, 10, 10, 10},
		{-3, -3, 4, 4},
		{2, 2, 1, 1},
		{20, 20, 1, 1},
	}
	for i, a := range rects {
		for j, b := range rects {
			assert.Equal(t, Intersects(a, b), Intersects(b, a), "pair %d,%d", i, j)
		}
	}
}

func TestIntersectsTouchingEdges(t *testing.T) {
	a := Rect{0, 0, 10, 10}

	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"right edge", Rect{10, 0, 10, 10}, false},
		{"left edge", Rect{-10, 0, 10, 10}, false},
		{"bottom edge", Rect{0, 10, 10, 10}, false},
		{"top edge", Rect{0, -10, 10, 10}, false},
		{"corner", Rect{10, 10, 5, 5}, false},
		{"overlap", Rect{9.5, 9.5, 5, 5}, true},
		{"contained", Rect{2, 2, 1, 1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Intersects(a, tt.b))
		})
	}
}

func TestApproach(t *testing.T) {
	assert.Equal(t, 3.5, Approach(3.5, 10, 0))
	assert.Equal(t, -2.0, Approach(-2, -8, 0))

	assert.Equal(t, 10.0, Approach(3.5, 10, 1e9))
	assert.Equal(t, -8.0, Approach(-2, -8, 1e9))
	assert.Equal(t, 0.0, Approach(220, 0, math.MaxFloat64))

	assert.InDelta(t, 4.5, Approach(3.5, 10, 1), 1e-12)
	assert.InDelta(t, -3.0, Approach(-2, -8, 1), 1e-12)
	assert.Equal(t, 5.0, Approach(5, 5, 3))
}

func TestClampSignDecay(t *testing.T) {
	assert.Equal(t, 2.0, Clamp(1, 2, 4))
	assert.Equal(t, 4.0, Clamp(9, 2, 4))
	assert.Equal(t, 3.0, Clamp(3, 2, 4))

	assert.Equal(t, -1.0, Sign(-0.1))
	assert.Equal(t, 0.0, Sign(0))
	assert.Equal(t, 1.0, Sign(7))

	assert.Equal(t, 0.0, Decay(0.01, 1.0/60))
	assert.InDelta(t, 0.5, Decay(0.75, 0.25), 1e-12)
}

func TestRectHelpers(t *testing.T) {
	r := RectAt(V2(4, 6), V2(10, 20))
	assert.Equal(t, 14.0, r.Right())
	assert.Equal(t, 26.0, r.Bottom())
	assert.Equal(t, V2(9, 16), r.Center())

	sq := SquareAround(V2(16, 16), 6.4)
	assert.InDelta(t, 9.6, sq.X, 1e-9)
	assert.InDelta(t, 12.8, sq.W, 1e-9)
}
