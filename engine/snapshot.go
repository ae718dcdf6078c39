package engine

import (
	"fmt"
	"hash/fnv"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/lixenwraith/jumpman/parameter"
	"github.com/lixenwraith/jumpman/vmath"
)

// PlayerState is the read-only view of the player
type PlayerState struct {
	_msgpack struct{} `msgpack:",as_array"`

	Pos, Vel, Size vmath.Vec2
	Facing         float64
	OnGround       bool
	Powered        bool
	Coyote         float64
	JumpBuffer     float64
	Invuln         float64
}

// Invulnerable mirrors actor.Player.Invulnerable
func (p PlayerState) Invulnerable() bool {
	return p.Invuln > 0
}

// EnemyState is the read-only view of one enemy
type EnemyState struct {
	_msgpack struct{} `msgpack:",as_array"`

	Pos, Vel, Size vmath.Vec2
	Dir            float64
	Alive          bool
	OnGround       bool
}

// Snapshot is the settled simulation state after a step
// The render layer draws from it; StateHash digests its encoding
type Snapshot struct {
	_msgpack struct{} `msgpack:",as_array"`

	Config    parameter.Config
	Phase     Phase
	Tick      uint64
	Score     uint32
	HighScore uint32
	Player    PlayerState
	Enemies   []EnemyState
	Coins     []vmath.Vec2
	Mushrooms []vmath.Vec2
}

// Snapshot copies the current state; the result shares nothing with the game
func (g *Game) Snapshot() Snapshot {
	p := g.player
	coyote, buffer, invuln := p.Timers()
	s := Snapshot{
		Config:    g.cfg,
		Phase:     g.phase,
		Tick:      g.tick,
		Score:     g.score,
		HighScore: g.highScore,
		Player: PlayerState{
			Pos:        p.Pos,
			Vel:        p.Vel,
			Size:       p.Size(),
			Facing:     p.Facing(),
			OnGround:   p.OnGround(),
			Powered:    p.Powered(),
			Coyote:     coyote,
			JumpBuffer: buffer,
			Invuln:     invuln,
		},
		Enemies:   make([]EnemyState, 0, len(g.enemies)),
		Coins:     append([]vmath.Vec2(nil), g.world.Coins...),
		Mushrooms: append([]vmath.Vec2(nil), g.world.Mushrooms...),
	}
	for _, e := range g.enemies {
		s.Enemies = append(s.Enemies, EnemyState{
			Pos:      e.Pos,
			Vel:      e.Vel,
			Size:     e.Size(),
			Dir:      e.Dir(),
			Alive:    e.Alive,
			OnGround: e.OnGround(),
		})
	}
	return s
}

// StateHash is a 64-bit FNV-1a digest of the msgpack-encoded snapshot
// Two runs of the same level, config and inputs produce equal hashes
func (g *Game) StateHash() (uint64, error) {
	data, err := msgpack.Marshal(g.Snapshot())
	if err != nil {
		return 0, fmt.Errorf("encode snapshot: %w", err)
	}
	h := fnv.New64a()
	h.Write(data)
	return h.Sum64(), nil
}
