package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/lixenwraith/jumpman/engine"
	"github.com/lixenwraith/jumpman/event"
	"github.com/lixenwraith/jumpman/input"
	"github.com/lixenwraith/jumpman/parameter"
	"github.com/lixenwraith/jumpman/replay"
	"github.com/lixenwraith/jumpman/world"
)

const exitHashMismatch = 3

// runHeadless steps the game without a terminal and prints the final state hash
// Returns the process exit code
func runHeadless(opts options, settings parameter.Settings, stdout io.Writer) (int, error) {
	var inputs []input.StepInput
	level := settings.Level
	ticks := parameter.DefaultHeadlessTicks

	if opts.replay != "" {
		rep, err := readReplay(opts.replay)
		if err != nil {
			return 1, err
		}
		inputs = rep.Inputs
		ticks = len(rep.Inputs)
		if rep.Level != "" {
			level = rep.Level
		}
	}
	if opts.level != "" {
		level = opts.level
	}
	if opts.ticksSet {
		ticks = opts.ticks
	}

	w, err := world.Load(level, settings.Physics)
	if err != nil {
		log.Printf("Headless run on fallback level: %v", err)
	}
	g := engine.NewGame(w, settings.Physics)

	used, events := replay.Run(g, inputs, ticks)
	logEvents(g, events)

	if opts.record != "" {
		if err := writeReplay(opts.record, replay.Replay{Version: replay.Version, Level: level, Inputs: used}); err != nil {
			return 1, err
		}
	}

	hash, err := g.StateHash()
	if err != nil {
		return 1, fmt.Errorf("state hash: %w", err)
	}
	fmt.Fprintf(stdout, "hash=0x%016x ticks=%d\n", hash, g.Tick())

	if opts.expectHash != "" {
		want, err := parseHash(opts.expectHash)
		if err != nil {
			return 1, err
		}
		if hash != want {
			log.Printf("Hash mismatch: got 0x%016x, want 0x%016x", hash, want)
			return exitHashMismatch, nil
		}
	}
	return 0, nil
}

// logEvents routes a headless run's events to the debug log
func logEvents(g *engine.Game, events []event.GameEvent) {
	queue := event.NewEventQueue()
	router := event.NewRouter[*engine.Game](queue)
	router.Register(event.HandlerFunc[*engine.Game]{
		Types: []event.EventType{
			event.EventPlayerDied,
			event.EventGoalReached,
			event.EventPhaseChanged,
		},
		Fn: func(g *engine.Game, ev event.GameEvent) {
			log.Printf("tick %d: %s (score %d)", ev.Tick, ev.Type, g.Score())
		},
	})
	queue.PushAll(events)
	router.DispatchAll(g)

	for _, line := range g.Metrics().Lines() {
		log.Print(line)
	}
}

func readReplay(path string) (replay.Replay, error) {
	f, err := os.Open(path)
	if err != nil {
		return replay.Replay{}, fmt.Errorf("open replay: %w", err)
	}
	defer f.Close()

	rep, err := replay.Decode(f)
	if err != nil {
		return replay.Replay{}, fmt.Errorf("replay %s: %w", path, err)
	}
	return rep, nil
}

func writeReplay(path string, rep replay.Replay) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create replay: %w", err)
	}
	if err := replay.Encode(f, rep); err != nil {
		f.Close()
		return fmt.Errorf("write replay %s: %w", path, err)
	}
	return f.Close()
}
