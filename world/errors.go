package world

import (
	"errors"
	"fmt"
)

// Sentinel errors for malformed levels
var (
	ErrEmptyLevel      = errors.New("level has no tiles")
	ErrBadTile         = errors.New("unexpected tile")
	ErrMissingPlayer   = errors.New("missing player spawn")
	ErrDuplicatePlayer = errors.New("multiple player spawns found")
	ErrMissingGoal     = errors.New("missing goal tile")
	ErrDuplicateGoal   = errors.New("multiple goal tiles found")
)

// LoadError reports why a level source was rejected
// Row and Col are zero-based and only meaningful for tile-level failures
type LoadError struct {
	Row, Col int
	Tile     rune
	Err      error
}

func (e *LoadError) Error() string {
	switch {
	case errors.Is(e.Err, ErrBadTile):
		return fmt.Sprintf("%v '%c' at row %d col %d", e.Err, e.Tile, e.Row, e.Col)
	case e.Tile != 0:
		return fmt.Sprintf("%v (row %d col %d)", e.Err, e.Row, e.Col)
	}
	return e.Err.Error()
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
