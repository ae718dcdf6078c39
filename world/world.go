package world

import (
	"math"

	"github.com/lixenwraith/jumpman/parameter"
	"github.com/lixenwraith/jumpman/vmath"
)

// World owns the level's static geometry and its collectible state
// Spawn templates are fixed at load; Coins and Mushrooms are the live sets mutated by pickups
type World struct {
	// Solids holds one rectangle per solid tile in row-major order, the sweep order of the motion kernel
	Solids []vmath.Rect

	Width, Height int // tiles
	TileSize      float64

	PlayerSpawn vmath.Vec2
	GoalTile    vmath.Vec2
	EnemySpawns []vmath.Vec2

	Coins     []vmath.Vec2 // coin centers
	Mushrooms []vmath.Vec2 // mushroom top-left corners

	solidTiles     []bool
	coinSpawns     []vmath.Vec2
	mushroomSpawns []vmath.Vec2
}

// Reset restores the live collectibles from their spawn templates
func (w *World) Reset() {
	w.Coins = append(w.Coins[:0], w.coinSpawns...)
	w.Mushrooms = append(w.Mushrooms[:0], w.mushroomSpawns...)
}

// CoinSpawns returns a copy of the coin templates
func (w *World) CoinSpawns() []vmath.Vec2 {
	return append([]vmath.Vec2(nil), w.coinSpawns...)
}

// MushroomSpawns returns a copy of the mushroom templates
func (w *World) MushroomSpawns() []vmath.Vec2 {
	return append([]vmath.Vec2(nil), w.mushroomSpawns...)
}

// PixelWidth is the world extent along X in pixels
func (w *World) PixelWidth() float64 {
	return float64(w.Width) * w.TileSize
}

// PixelHeight is the world extent along Y in pixels
func (w *World) PixelHeight() float64 {
	return float64(w.Height) * w.TileSize
}

// IsSolidTile reports grid occupancy; anything outside the grid is open
func (w *World) IsSolidTile(col, row int) bool {
	if col < 0 || row < 0 || col >= w.Width || row >= w.Height {
		return false
	}
	return w.solidTiles[row*w.Width+col]
}

// GroundYForX scans the column under x from the row containing startY downwards
// and returns the top edge of the first solid tile
func (w *World) GroundYForX(x, startY float64) (float64, bool) {
	col := int(math.Floor(x / w.TileSize))
	startRow := int(math.Max(math.Floor(startY/w.TileSize), 0))
	for row := startRow; row < w.Height; row++ {
		if w.IsSolidTile(col, row) {
			return float64(row) * w.TileSize, true
		}
	}
	return 0, false
}

// BaseY is the ground under the center of the tile at tilePos, or the tile's own bottom edge
func (w *World) BaseY(tilePos vmath.Vec2) float64 {
	if y, ok := w.GroundYForX(tilePos.X+w.TileSize*0.5, tilePos.Y); ok {
		return y
	}
	return tilePos.Y + w.TileSize
}

// GoalTriggerRect is the flag pole standing on the ground beneath the goal tile
func (w *World) GoalTriggerRect() vmath.Rect {
	tile := w.TileSize
	centerX := w.GoalTile.X + tile*0.5
	base := w.BaseY(w.GoalTile)
	poleH := tile * parameter.GoalPoleHeight
	poleW := tile * parameter.GoalPoleWidth
	return vmath.Rect{X: centerX - poleW*0.5, Y: base - poleH, W: poleW, H: poleH}
}

// CoinRect is the pickup square around a coin center
func (w *World) CoinRect(center vmath.Vec2) vmath.Rect {
	return vmath.SquareAround(center, w.TileSize*parameter.CoinRadiusFactor)
}

// CameraFor clamps the camera center per axis so the view stays inside the world
// An axis narrower than the screen centers on the world midpoint
func (w *World) CameraFor(focus, screen vmath.Vec2) vmath.Vec2 {
	return vmath.V2(
		cameraAxis(focus.X, screen.X, w.PixelWidth()),
		cameraAxis(focus.Y, screen.Y, w.PixelHeight()),
	)
}

func cameraAxis(focus, screen, extent float64) float64 {
	if extent > screen {
		return vmath.Clamp(focus, screen*0.5, extent-screen*0.5)
	}
	return extent * 0.5
}
