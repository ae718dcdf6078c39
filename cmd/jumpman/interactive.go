package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/jumpman/audio"
	"github.com/lixenwraith/jumpman/engine"
	"github.com/lixenwraith/jumpman/event"
	"github.com/lixenwraith/jumpman/input"
	"github.com/lixenwraith/jumpman/parameter"
	"github.com/lixenwraith/jumpman/render"
	"github.com/lixenwraith/jumpman/replay"
	"github.com/lixenwraith/jumpman/terminal"
	"github.com/lixenwraith/jumpman/world"
)

// keyTable merges configured overrides onto the stock bindings
func keyTable(bindings map[string]string) (*input.KeyTable, error) {
	table := input.DefaultKeyTable()
	if len(bindings) == 0 {
		return table, nil
	}
	override, err := input.LoadKeyConfig(bindings)
	if err != nil {
		return nil, fmt.Errorf("keys: %w", err)
	}
	return input.MergeKeyTable(table, override), nil
}

// runInteractive plays the game in the terminal until exit
func runInteractive(opts options, settings parameter.Settings) error {
	table, err := keyTable(settings.Keys)
	if err != nil {
		return err
	}

	level := settings.Level
	if opts.level != "" {
		level = opts.level
	}
	w, err := world.Load(level, settings.Physics)
	if err != nil {
		log.Printf("Playing fallback level: %v", err)
	}
	game := engine.NewGame(w, settings.Physics)

	var recorder *replay.Recorder
	if opts.record != "" {
		recorder = replay.NewRecorder(game, level)
	}

	queue := event.NewEventQueue()
	router := event.NewRouter[*engine.Game](queue)

	if !settings.Mute && !opts.mute {
		sound := audio.NewSoundManager(settings.Volume)
		if err := sound.Initialize(); err != nil {
			log.Printf("Audio initialization failed: %v (continuing without audio)", err)
		} else {
			defer sound.Cleanup()
			router.Register(audio.NewHandler[*engine.Game](sound))
		}
	}

	if err := terminal.ApplyColorMode(terminal.ParseColorMode(opts.color)); err != nil {
		log.Printf("Color mode: %v", err)
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	renderer := render.NewRenderer(screen, w, opts.debug)
	keyboard := input.NewKeyboard(table, parameter.KeyHoldWindow)

	eventChan := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	// Input polling uses a raw goroutine; PollEvent returns nil once the screen is finalized
	go func() {
		defer func() {
			if r := recover(); r != nil {
				terminal.EmergencyReset(os.Stdout)
				fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-quit:
				return
			}
		}
	}()

	frameTicker := time.NewTicker(parameter.FrameUpdateInterval)
	defer frameTicker.Stop()

	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				keyboard.HandleKey(ev, ev.When())
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-frameTicker.C:
			frame := keyboard.Poll(now)
			if keyboard.ExitRequested() || (frame.Quit && game.Phase() == engine.PhaseTitle) {
				return saveRecording(opts.record, recorder)
			}

			game.Capture(frame)
			queue.PushAll(game.Advance(now.Sub(last).Seconds()))
			last = now
			router.DispatchAll(game)

			var metrics []string
			if opts.debug {
				metrics = game.Metrics().Lines()
			}
			renderer.Draw(game.Snapshot(), metrics)
		}
	}
}

func saveRecording(path string, r *replay.Recorder) error {
	if r == nil {
		return nil
	}
	if err := writeReplay(path, r.Replay()); err != nil {
		return err
	}
	log.Printf("Recorded %d steps to %s", r.Len(), path)
	return nil
}
