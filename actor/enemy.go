package actor

import (
	"math"

	"github.com/lixenwraith/jumpman/parameter"
	"github.com/lixenwraith/jumpman/physics"
	"github.com/lixenwraith/jumpman/vmath"
	"github.com/lixenwraith/jumpman/world"
)

// wallEpsilon treats a residual horizontal speed below it as fully blocked
const wallEpsilon = 1e-6

// Enemy is a patrolling walker that turns at walls and ledges
type Enemy struct {
	Pos      vmath.Vec2
	Vel      vmath.Vec2
	Alive    bool
	dir      float64
	size     vmath.Vec2
	onGround bool
}

// NewEnemy places an enemy centered in its spawn tile, feet on the ground at or below it
func NewEnemy(tilePos vmath.Vec2, w *world.World, cfg parameter.Config) *Enemy {
	size := cfg.EnemySize
	return &Enemy{
		Pos:   vmath.V2(tilePos.X+(cfg.TileSize-size.X)*0.5, w.BaseY(tilePos)-size.Y),
		Alive: true,
		dir:   parameter.EnemySpawnFacing,
		size:  size,
	}
}

// Update advances a live enemy one fixed step; dead enemies are inert
func (e *Enemy) Update(w *world.World, cfg parameter.Config, dt float64) {
	if !e.Alive {
		return
	}

	e.Vel.Y = physics.ApplyGravity(e.Vel.Y, cfg.Gravity, cfg.TerminalVelocity, dt)
	e.Vel.X = cfg.EnemySpeed * e.dir

	desiredX := e.Vel.X
	pos, vel, onGround := physics.MoveWithCollisions(e.Pos, e.size, e.Vel, w.Solids, dt)
	hitWall := math.Abs(desiredX) > wallEpsilon && math.Abs(vel.X) <= wallEpsilon
	e.Pos, e.Vel, e.onGround = pos, vel, onGround

	if hitWall {
		e.turn(cfg)
	} else if e.onGround && !e.groundAhead(w) {
		e.turn(cfg)
	}

	// Containment inside the horizontal world bounds
	worldW := w.PixelWidth()
	if e.Pos.X <= 0 {
		e.Pos.X = 0
		e.dir = 1
	} else if e.Pos.X+e.size.X >= worldW {
		e.Pos.X = math.Max(worldW-e.size.X, 0)
		e.dir = -1
	}
}

// groundAhead probes one pixel past the leading foot
func (e *Enemy) groundAhead(w *world.World) bool {
	footX := e.Pos.X - parameter.LedgeProbe
	if e.dir >= 0 {
		footX = e.Pos.X + e.size.X + parameter.LedgeProbe
	}
	footY := e.Pos.Y + e.size.Y + parameter.LedgeProbe
	groundY, ok := w.GroundYForX(footX, footY)
	return ok && groundY <= footY
}

func (e *Enemy) turn(cfg parameter.Config) {
	e.dir = -e.dir
	e.Vel.X = cfg.EnemySpeed * e.dir
}

func (e *Enemy) Rect() vmath.Rect {
	return vmath.RectAt(e.Pos, e.size)
}

func (e *Enemy) Size() vmath.Vec2 {
	return e.size
}

// Dir is the patrol direction, ±1
func (e *Enemy) Dir() float64 {
	return e.dir
}

// SetDir forces the patrol direction; any nonnegative value means right
func (e *Enemy) SetDir(dir float64) {
	if dir >= 0 {
		e.dir = 1
	} else {
		e.dir = -1
	}
}

func (e *Enemy) OnGround() bool {
	return e.onGround
}

// Kill removes the enemy from play
func (e *Enemy) Kill() {
	e.Alive = false
}
