package vmath

// Rect is an axis-aligned rectangle anchored at its top-left corner
type Rect struct {
	X, Y, W, H float64
}

// RectAt builds the rectangle covering size at pos
func RectAt(pos, size Vec2) Rect {
	return Rect{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the midpoint of the rectangle
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.W*0.5, r.Y + r.H*0.5}
}

// Intersects reports strict overlap; rectangles sharing only an edge do not intersect
func Intersects(a, b Rect) bool {
	return a.X < b.X+b.W && a.X+a.W > b.X && a.Y < b.Y+b.H && a.Y+a.H > b.Y
}

// SquareAround builds a square of the given half-size centered on p
func SquareAround(p Vec2, half float64) Rect {
	return Rect{X: p.X - half, Y: p.Y - half, W: half * 2, H: half * 2}
}
