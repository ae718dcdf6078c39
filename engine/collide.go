package engine

import (
	"github.com/lixenwraith/jumpman/event"
	"github.com/lixenwraith/jumpman/parameter"
	"github.com/lixenwraith/jumpman/vmath"
)

// collectCoins removes every coin under the player, preserving the order of the rest
func (g *Game) collectCoins() int {
	box := g.player.Rect()
	kept := g.world.Coins[:0]
	collected := 0
	for _, c := range g.world.Coins {
		if vmath.Intersects(box, g.world.CoinRect(c)) {
			collected++
			continue
		}
		kept = append(kept, c)
	}
	g.world.Coins = kept

	if collected > 0 {
		g.addScore(uint32(collected) * parameter.ScoreCoin)
		g.statCoins.Add(int64(collected))
	}
	return collected
}

// collectMushrooms removes every mushroom under the player and powers it up
func (g *Game) collectMushrooms() int {
	box := g.player.Rect()
	kept := g.world.Mushrooms[:0]
	collected := 0
	for _, m := range g.world.Mushrooms {
		if vmath.Intersects(box, vmath.RectAt(m, g.cfg.MushroomSize)) {
			collected++
			continue
		}
		kept = append(kept, m)
	}
	g.world.Mushrooms = kept

	if collected > 0 {
		g.player.SetPowered(true)
		g.addScore(uint32(collected) * parameter.ScoreMushroom)
	}
	return collected
}

// resolveEnemyContact handles only the first live enemy overlapping the player
func (g *Game) resolveEnemyContact() {
	box := g.player.Rect()
	for i, e := range g.enemies {
		if !e.Alive {
			continue
		}
		enemyBox := e.Rect()
		if !vmath.Intersects(box, enemyBox) {
			continue
		}

		switch {
		case g.player.Vel.Y > 0 && box.Bottom() <= enemyBox.Y+parameter.StompTolerance:
			e.Kill()
			g.player.Bounce(g.cfg.StompBounce)
			g.addScore(parameter.ScoreStomp)
			g.statStomps.Add(1)
			g.emit(event.EventEnemyStomped, i)

		case g.player.Invulnerable():
			// side contact during the grace window

		case g.player.Powered():
			dir := -1.0
			if enemyBox.Center().X < box.Center().X {
				dir = 1
			}
			g.player.SetPowered(false)
			g.player.StartInvulnerability(g.cfg.HurtInvulnTime)
			g.player.Knockback(dir, g.cfg)
			g.emit(event.EventPlayerHurt, 0)

		default:
			g.playerDied()
		}
		return
	}
}

// checkGoal completes the level when the player touches the pole
func (g *Game) checkGoal() {
	if !vmath.Intersects(g.player.Rect(), g.world.GoalTriggerRect()) {
		return
	}
	g.addScore(parameter.ScoreGoal)
	g.emit(event.EventMusicStop, 0)
	g.emit(event.EventGoalReached, 0)
	g.setPhase(PhaseLevelComplete)
}

// checkFallOff kills a player that dropped well below the level
func (g *Game) checkFallOff() {
	if g.player.Pos.Y > g.world.PixelHeight()+parameter.FallMargin {
		g.playerDied()
	}
}
