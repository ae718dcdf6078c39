package world

import (
	"fmt"

	"github.com/lixenwraith/jumpman/parameter"
)

// FallbackLevel is the built-in layout used when the level source is unusable
const FallbackLevel = `................................
................................
................................
................................
.......C.........C.......C......
......#####.....#####...#####...
..P....M....E................G..
#######...########..######...###
`

// MustFallback parses the built-in level; failure is a programming error
func MustFallback(cfg parameter.Config) *World {
	w, err := Parse(FallbackLevel, cfg)
	if err != nil {
		panic(fmt.Sprintf("fallback level is invalid: %v", err))
	}
	return w
}
