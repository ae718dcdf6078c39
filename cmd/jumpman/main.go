package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/lixenwraith/jumpman/parameter"
	"github.com/lixenwraith/jumpman/terminal"
)

func main() {
	// Panic Recovery: ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\n\x1b[31mJUMPMAN CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	opts, err := parseFlags(args, os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	// Without a terminal there is nothing to draw on
	if !opts.headless && !terminal.IsInteractive() {
		opts.headless = true
	}

	if opts.headless {
		setupHeadlessLogging(opts.debug)
	} else if logFile := setupLogging(opts.debug); logFile != nil {
		defer logFile.Close()
	}

	settings, err := parameter.Load(opts.config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load settings: %v\n", err)
		return 1
	}

	if opts.headless {
		code, err := runHeadless(opts, settings, os.Stdout)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
		return code
	}

	if err := runInteractive(opts, settings); err != nil {
		log.Printf("Exit with error: %v", err)
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
