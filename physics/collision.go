package physics

import (
	"github.com/lixenwraith/jumpman/vmath"
)

// MoveWithCollisions advances a box of size at pos by vel*dt against static solids
// Axes are resolved separately, X first then Y using the resolved X
// Each overlapping solid pushes the box out against the direction of travel and zeroes that velocity axis
// Solids are visited in slice order and the box is re-derived after every correction, so with
// several overlaps the last applicable correction wins. Dense clusters can resolve order-dependently
// onGround is true only when a downward move was stopped by a solid top
func MoveWithCollisions(pos, size, vel vmath.Vec2, solids []vmath.Rect, dt float64) (vmath.Vec2, vmath.Vec2, bool) {
	onGround := false

	pos.X += vel.X * dt
	box := vmath.RectAt(pos, size)
	for _, solid := range solids {
		if !vmath.Intersects(box, solid) {
			continue
		}
		if vel.X > 0 {
			pos.X = solid.X - size.X
		} else if vel.X < 0 {
			pos.X = solid.X + solid.W
		}
		vel.X = 0
		box.X = pos.X
	}

	pos.Y += vel.Y * dt
	box.Y = pos.Y
	for _, solid := range solids {
		if !vmath.Intersects(box, solid) {
			continue
		}
		if vel.Y > 0 {
			pos.Y = solid.Y - size.Y
			onGround = true
		} else if vel.Y < 0 {
			pos.Y = solid.Y + solid.H
		}
		vel.Y = 0
		box.Y = pos.Y
	}

	return pos, vel, onGround
}
