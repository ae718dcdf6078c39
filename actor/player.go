package actor

import (
	"math"

	"github.com/lixenwraith/jumpman/input"
	"github.com/lixenwraith/jumpman/parameter"
	"github.com/lixenwraith/jumpman/physics"
	"github.com/lixenwraith/jumpman/vmath"
)

// Status exposes the player's derived predicates without its timers
type Status interface {
	Powered() bool
	Invulnerable() bool
	OnGround() bool
	Facing() float64
}

// Player is the controllable actor
// Grounded/airborne, powered/small and vulnerable/invulnerable are implied by the flags and timers below
type Player struct {
	Pos      vmath.Vec2
	Vel      vmath.Vec2
	onGround bool

	size   vmath.Vec2
	facing float64

	coyoteTimer     float64
	jumpBufferTimer float64
	powered         bool
	invulnTimer     float64
}

// NewPlayer places a player standing inside the spawn tile, centered horizontally
func NewPlayer(spawn vmath.Vec2, cfg parameter.Config) *Player {
	p := &Player{}
	p.Reset(spawn, cfg)
	return p
}

// Reset reinitializes every field from the spawn template
func (p *Player) Reset(spawn vmath.Vec2, cfg parameter.Config) {
	size := cfg.PlayerSize
	*p = Player{
		Pos:    spawn.Add(vmath.V2((cfg.TileSize-size.X)*0.5, cfg.TileSize-size.Y)),
		size:   size,
		facing: parameter.SpawnFacing,
	}
}

// Update advances the player one fixed step and reports whether a jump started
func (p *Player) Update(in input.StepInput, solids []vmath.Rect, cfg parameter.Config, dt float64) bool {
	jumped := false
	p.invulnTimer = vmath.Decay(p.invulnTimer, dt)

	if in.JumpPressed {
		p.jumpBufferTimer = cfg.JumpBufferTime
	} else {
		p.jumpBufferTimer = vmath.Decay(p.jumpBufferTimer, dt)
	}

	if in.JumpReleased && p.Vel.Y < 0 {
		p.Vel.Y *= cfg.JumpCutMultiplier
	}

	if p.onGround {
		p.coyoteTimer = cfg.CoyoteTime
	} else {
		p.coyoteTimer = vmath.Decay(p.coyoteTimer, dt)
	}

	moveX := in.MoveX()
	if moveX != 0 {
		p.facing = vmath.Sign(moveX)
	}

	rate := cfg.MoveDecel
	if moveX != 0 {
		rate = cfg.MoveAccel
	}
	p.Vel.X = physics.Accelerate(p.Vel.X, moveX*cfg.MoveSpeed, rate, dt)

	// Coyote window: still counts as grounded shortly after leaving a ledge
	if p.jumpBufferTimer > 0 && p.coyoteTimer > 0 {
		p.jump(cfg)
		jumped = true
	}

	p.Vel.Y = physics.ApplyGravity(p.Vel.Y, cfg.Gravity, cfg.TerminalVelocity, dt)

	p.Pos, p.Vel, p.onGround = physics.MoveWithCollisions(p.Pos, p.size, p.Vel, solids, dt)

	// Landing during this step's move fires a buffered jump immediately
	if p.jumpBufferTimer > 0 && p.onGround {
		p.jump(cfg)
		jumped = true
	}

	return jumped
}

func (p *Player) jump(cfg parameter.Config) {
	p.Vel.Y = -cfg.JumpSpeed
	p.onGround = false
	p.coyoteTimer = 0
	p.jumpBufferTimer = 0
}

// Bounce launches the player upward after a stomp
func (p *Player) Bounce(speed float64) {
	p.Vel.Y = -speed
}

// Knockback pushes the player away along dir (±1) and forces it airborne
func (p *Player) Knockback(dir float64, cfg parameter.Config) {
	p.Vel.X = dir * cfg.HurtKnockbackX
	p.Vel.Y = -cfg.HurtKnockbackY
	p.Pos.X += dir * parameter.KnockbackNudge
	p.onGround = false
}

func (p *Player) Size() vmath.Vec2 {
	return p.size
}

func (p *Player) Center() vmath.Vec2 {
	return p.Pos.Add(p.size.Scale(0.5))
}

func (p *Player) Rect() vmath.Rect {
	return vmath.RectAt(p.Pos, p.size)
}

func (p *Player) Facing() float64 {
	return p.facing
}

func (p *Player) OnGround() bool {
	return p.onGround
}

func (p *Player) Powered() bool {
	return p.powered
}

func (p *Player) SetPowered(powered bool) {
	p.powered = powered
}

// Invulnerable reports an active post-hit grace window
func (p *Player) Invulnerable() bool {
	return p.invulnTimer > 0
}

// StartInvulnerability opens a grace window; negative durations clamp to zero
func (p *Player) StartInvulnerability(duration float64) {
	p.invulnTimer = math.Max(duration, 0)
}

// Timers returns coyote, jump-buffer and invulnerability timers in seconds
func (p *Player) Timers() (coyote, jumpBuffer, invuln float64) {
	return p.coyoteTimer, p.jumpBufferTimer, p.invulnTimer
}
