// Command keyprobe shows how terminal key events resolve to game actions and
// how the hold window turns them into per-frame input, for tuning key overrides.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/jumpman/input"
	"github.com/lixenwraith/jumpman/parameter"
)

const maxLog = 12

func main() {
	configPath := flag.String("config", "", "TOML settings file with a [keys] table")
	hold := flag.Duration("hold", parameter.KeyHoldWindow, "Key hold window")
	flag.Parse()

	settings, err := parameter.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "settings: %v\n", err)
		os.Exit(1)
	}
	table := input.DefaultKeyTable()
	if len(settings.Keys) > 0 {
		override, err := input.LoadKeyConfig(settings.Keys)
		if err != nil {
			fmt.Fprintf(os.Stderr, "keys: %v\n", err)
			os.Exit(1)
		}
		table = input.MergeKeyTable(table, override)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "init failed: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "init failed: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	keyboard := input.NewKeyboard(table, *hold)
	eventLog := make([]string, 0, maxLog)
	addLog := func(s string) {
		if len(eventLog) >= maxLog {
			copy(eventLog, eventLog[1:])
			eventLog = eventLog[:maxLog-1]
		}
		eventLog = append(eventLog, s)
	}

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()

	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				keyboard.HandleKey(ev, ev.When())
				addLog(fmt.Sprintf("KEY: %-12s -> %s", ev.Name(), table.Lookup(ev)))
				if keyboard.ExitRequested() {
					return
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-ticker.C:
			f := keyboard.Poll(now)
			if f.JumpReleased {
				addLog("EDGE: jump released (hold expired)")
			}
			draw(screen, eventLog, f, *hold)
		}
	}
}

func draw(screen tcell.Screen, eventLog []string, f input.Frame, hold time.Duration) {
	header := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.NewRGBColor(40, 40, 60)).Bold(true)
	body := tcell.StyleDefault.Foreground(tcell.NewRGBColor(180, 180, 180))
	on := tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorGreen)

	screen.Clear()
	w, h := screen.Size()
	for x := 0; x < w; x++ {
		screen.SetContent(x, 0, ' ', nil, header)
	}
	text(screen, 1, 0, fmt.Sprintf("Key Probe - hold window %v - Ctrl+C to quit", hold), header)

	for i, entry := range eventLog {
		if 2+i >= h-2 {
			break
		}
		text(screen, 1, 2+i, entry, body)
	}

	x := 1
	for _, s := range []struct {
		label string
		held  bool
	}{{"LEFT", f.Left}, {"RIGHT", f.Right}, {"JUMP↓", f.JumpPressed}, {"JUMP↑", f.JumpReleased}} {
		style := body
		if s.held {
			style = on
		}
		text(screen, x, h-1, " "+s.label+" ", style)
		x += len([]rune(s.label)) + 3
	}
	screen.Show()
}

func text(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
