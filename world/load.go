package world

import (
	"fmt"
	"log"
	"os"

	"github.com/lixenwraith/jumpman/parameter"
)

// ReadFile parses a level file, reporting read and parse failures
func ReadFile(path string, cfg parameter.Config) (*World, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	w, err := Parse(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("parse level %s: %w", path, err)
	}
	return w, nil
}

// Load returns the level at path, or the built-in level when it cannot be read or parsed
// The returned error describes why the fallback was used and is nil otherwise
func Load(path string, cfg parameter.Config) (*World, error) {
	w, err := ReadFile(path, cfg)
	if err == nil {
		return w, nil
	}
	log.Printf("Level load error: %v. Using fallback level.", err)
	return MustFallback(cfg), err
}
