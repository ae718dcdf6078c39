package world

import (
	"strings"
	"unicode"

	"github.com/lixenwraith/jumpman/parameter"
	"github.com/lixenwraith/jumpman/vmath"
)

// Tile glyphs of the level text format
const (
	TileSolid    = '#'
	TileCoin     = 'C'
	TileMushroom = 'M'
	TileEnemy    = 'E'
	TilePlayer   = 'P'
	TileGoal     = 'G'
	TileEmpty    = '.'
)

// Parse builds a world from newline-separated tile rows
// Trailing whitespace is trimmed and blank rows are dropped; the widest row sets the width
// Short rows are padded with empty tiles
func Parse(contents string, cfg parameter.Config) (*World, error) {
	var lines []string
	for _, line := range strings.Split(contents, "\n") {
		line = strings.TrimRightFunc(line, unicode.IsSpace)
		if line != "" {
			lines = append(lines, line)
		}
	}

	height := len(lines)
	width := 0
	for _, line := range lines {
		if n := len([]rune(line)); n > width {
			width = n
		}
	}
	if width == 0 || height == 0 {
		return nil, &LoadError{Err: ErrEmptyLevel}
	}

	tile := cfg.TileSize
	w := &World{
		Width:      width,
		Height:     height,
		TileSize:   tile,
		solidTiles: make([]bool, width*height),
	}

	var mushroomTiles []vmath.Vec2
	hasPlayer, hasGoal := false, false

	for row, line := range lines {
		for col, ch := range []rune(line) {
			tilePos := vmath.V2(float64(col)*tile, float64(row)*tile)

			switch ch {
			case TileSolid:
				w.solidTiles[row*width+col] = true
				w.Solids = append(w.Solids, vmath.RectAt(tilePos, vmath.V2(tile, tile)))
			case TileCoin:
				w.coinSpawns = append(w.coinSpawns, tilePos.Add(vmath.V2(tile*0.5, tile*0.5)))
			case TileMushroom:
				mushroomTiles = append(mushroomTiles, tilePos)
			case TileEnemy:
				w.EnemySpawns = append(w.EnemySpawns, tilePos)
			case TilePlayer:
				if hasPlayer {
					return nil, &LoadError{Row: row, Col: col, Tile: ch, Err: ErrDuplicatePlayer}
				}
				hasPlayer = true
				w.PlayerSpawn = tilePos
			case TileGoal:
				if hasGoal {
					return nil, &LoadError{Row: row, Col: col, Tile: ch, Err: ErrDuplicateGoal}
				}
				hasGoal = true
				w.GoalTile = tilePos
			case TileEmpty:
			default:
				return nil, &LoadError{Row: row, Col: col, Tile: ch, Err: ErrBadTile}
			}
		}
	}

	if !hasPlayer {
		return nil, &LoadError{Err: ErrMissingPlayer}
	}
	if !hasGoal {
		return nil, &LoadError{Err: ErrMissingGoal}
	}

	// Mushrooms sit on the ground found at or below their tile, centered horizontally
	size := cfg.MushroomSize
	for _, tilePos := range mushroomTiles {
		base := w.BaseY(tilePos)
		w.mushroomSpawns = append(w.mushroomSpawns, vmath.V2(tilePos.X+(tile-size.X)*0.5, base-size.Y))
	}

	w.Reset()
	return w, nil
}
