package engine

import (
	"log"
	"math"
	"sync/atomic"

	"github.com/lixenwraith/jumpman/actor"
	"github.com/lixenwraith/jumpman/event"
	"github.com/lixenwraith/jumpman/input"
	"github.com/lixenwraith/jumpman/parameter"
	"github.com/lixenwraith/jumpman/status"
	"github.com/lixenwraith/jumpman/vmath"
	"github.com/lixenwraith/jumpman/world"
)

// Game orchestrates the fixed-step simulation of one level
// Single-threaded: Capture, Advance and Step must be called from the frame loop only
type Game struct {
	cfg   parameter.Config
	world *world.World

	player  *actor.Player
	enemies []*actor.Enemy

	phase       Phase
	accumulator float64
	tick        uint64
	score       uint32
	highScore   uint32

	latch    input.Latch
	events   []event.GameEvent
	observer func(input.StepInput)

	metrics    *status.Registry
	statTicks  *atomic.Int64
	statDeaths *atomic.Int64
	statStomps *atomic.Int64
	statCoins  *atomic.Int64
	statFrame  *status.AtomicFloat
	statAccum  *status.AtomicFloat
}

// NewGame builds a game on the title screen with actors at their spawn templates
func NewGame(w *world.World, cfg parameter.Config) *Game {
	metrics := status.NewRegistry()
	g := &Game{
		cfg:        cfg,
		world:      w,
		player:     actor.NewPlayer(w.PlayerSpawn, cfg),
		phase:      PhaseTitle,
		metrics:    metrics,
		statTicks:  metrics.Ints.Get("game.ticks"),
		statDeaths: metrics.Ints.Get("game.deaths"),
		statStomps: metrics.Ints.Get("game.stomps"),
		statCoins:  metrics.Ints.Get("game.coins"),
		statFrame:  metrics.Floats.Get("engine.frame_ms"),
		statAccum:  metrics.Floats.Get("engine.accumulator_ms"),
	}
	g.resetLevel()
	return g
}

// Capture latches one rendered frame of input for the next fixed steps
func (g *Game) Capture(f input.Frame) {
	g.latch.Capture(f)
}

// Advance feeds real elapsed time into the accumulator and runs every whole fixed step it covers
// Frame time is clamped to MaxFrameTime so a stall cannot trigger runaway catch-up
// Returns the events of all steps in emission order
func (g *Game) Advance(frameDt float64) []event.GameEvent {
	frameDt = vmath.Clamp(frameDt, 0, g.cfg.MaxFrameTime)
	g.accumulator += frameDt
	g.statFrame.Set(frameDt * 1000)

	var out []event.GameEvent
	for g.accumulator >= g.cfg.FixedDT {
		out = append(out, g.Step(g.latch.Consume())...)
		g.accumulator -= g.cfg.FixedDT
	}
	g.statAccum.Set(g.accumulator * 1000)
	return out
}

// ObserveSteps registers fn to see the input of every subsequent step, replacing any previous observer
func (g *Game) ObserveSteps(fn func(input.StepInput)) {
	g.observer = fn
}

// Step runs exactly one fixed step with the given input and returns its events
func (g *Game) Step(in input.StepInput) []event.GameEvent {
	if g.observer != nil {
		g.observer(in)
	}
	g.events = g.events[:0]
	g.tick++
	g.statTicks.Add(1)

	switch g.phase {
	case PhaseTitle:
		if in.StartPressed {
			g.setPhase(PhasePlaying)
			g.restartRun()
			g.emit(event.EventMusicStart, 0)
		}

	case PhasePlaying:
		if in.QuitPressed {
			g.emit(event.EventMusicStop, 0)
			g.setPhase(PhaseTitle)
			break
		}
		if in.RestartPressed {
			g.restartRun()
			g.emit(event.EventMusicStart, 0)
			break
		}
		g.simulate(in)

	case PhaseLevelComplete:
		if in.QuitPressed {
			g.emit(event.EventMusicStop, 0)
			g.setPhase(PhaseTitle)
			break
		}
		if in.RestartPressed {
			g.restartRun()
			g.setPhase(PhasePlaying)
			g.emit(event.EventMusicStart, 0)
		}
	}

	if len(g.events) == 0 {
		return nil
	}
	return append([]event.GameEvent(nil), g.events...)
}

// simulate advances actors and resolves every overlap for one playing step
func (g *Game) simulate(in input.StepInput) {
	dt := g.cfg.FixedDT
	if g.player.Update(in, g.world.Solids, g.cfg, dt) {
		g.emit(event.EventJumped, 0)
	}
	for _, e := range g.enemies {
		e.Update(g.world, g.cfg, dt)
	}

	if n := g.collectCoins(); n > 0 {
		g.emit(event.EventCoinCollected, n)
	}
	if n := g.collectMushrooms(); n > 0 {
		g.emit(event.EventMushroomCollected, n)
	}
	g.resolveEnemyContact()
	g.checkGoal()
	g.checkFallOff()
}

func (g *Game) emit(t event.EventType, value int) {
	g.events = append(g.events, event.GameEvent{Type: t, Tick: g.tick, Value: value})
}

func (g *Game) setPhase(p Phase) {
	if g.phase == p {
		return
	}
	log.Printf("Phase %s -> %s at tick %d", g.phase, p, g.tick)
	g.phase = p
	g.emit(event.EventPhaseChanged, int(p))
}

// resetLevel restores collectibles from their templates and rebuilds every actor
func (g *Game) resetLevel() {
	g.world.Reset()
	g.player.Reset(g.world.PlayerSpawn, g.cfg)
	g.enemies = g.enemies[:0]
	for _, spawn := range g.world.EnemySpawns {
		g.enemies = append(g.enemies, actor.NewEnemy(spawn, g.world, g.cfg))
	}
}

func (g *Game) restartRun() {
	g.score = 0
	g.resetLevel()
}

// playerDied zeroes the score and resets the level in place; the phase is unchanged
func (g *Game) playerDied() {
	g.emit(event.EventPlayerDied, 0)
	g.statDeaths.Add(1)
	g.score = 0
	g.resetLevel()
}

// addScore saturates instead of wrapping and tracks the running maximum
func (g *Game) addScore(points uint32) {
	if g.score > math.MaxUint32-points {
		g.score = math.MaxUint32
	} else {
		g.score += points
	}
	g.highScore = max(g.highScore, g.score)
}

func (g *Game) Phase() Phase {
	return g.phase
}

func (g *Game) Score() uint32 {
	return g.score
}

func (g *Game) HighScore() uint32 {
	return g.highScore
}

// Tick counts fixed steps since construction, in every phase
func (g *Game) Tick() uint64 {
	return g.tick
}

// Accumulator is the residual sub-step time carried into the next frame
func (g *Game) Accumulator() float64 {
	return g.accumulator
}

func (g *Game) Config() parameter.Config {
	return g.cfg
}

func (g *Game) World() *world.World {
	return g.world
}

func (g *Game) Player() *actor.Player {
	return g.player
}

func (g *Game) Enemies() []*actor.Enemy {
	return g.enemies
}

// Metrics exposes the step counters for the debug overlay
func (g *Game) Metrics() *status.Registry {
	return g.metrics
}

// Camera is the clamped view center for a screen of the given pixel extent
func (g *Game) Camera(screen vmath.Vec2) vmath.Vec2 {
	return g.world.CameraFor(g.player.Center(), screen)
}
