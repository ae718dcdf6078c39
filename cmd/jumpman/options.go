package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var errBadHash = errors.New("bad hash")

type options struct {
	headless   bool
	ticks      int
	ticksSet   bool
	record     string
	replay     string
	expectHash string
	level      string
	config     string
	color      string
	debug      bool
	mute       bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("jumpman", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.BoolVar(&opts.headless, "headless", false, "Run the simulation without a terminal and print the state hash")
	fs.IntVar(&opts.ticks, "ticks", 0, "Steps to run headless (default 600, or the replay length)")
	fs.StringVar(&opts.record, "record", "", "Write the input of every step to a JSONL replay")
	fs.StringVar(&opts.replay, "replay", "", "Feed a JSONL replay headlessly")
	fs.StringVar(&opts.expectHash, "expect-hash", "", "Exit with status 3 unless the final state hash matches (hex)")
	fs.StringVar(&opts.level, "level", "", "Level file (overrides config and replay header)")
	fs.StringVar(&opts.config, "config", "", "TOML settings file")
	fs.StringVar(&opts.color, "color", "auto", "Color mode: auto, truecolor, 256")
	fs.BoolVar(&opts.debug, "debug", false, "Enable logging and the metrics overlay")
	fs.BoolVar(&opts.mute, "mute", false, "Disable audio")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 0 {
		return opts, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "ticks" {
			opts.ticksSet = true
		}
	})
	if opts.ticks < 0 {
		return opts, fmt.Errorf("--ticks must be non-negative, got %d", opts.ticks)
	}
	if opts.expectHash != "" {
		if _, err := parseHash(opts.expectHash); err != nil {
			return opts, err
		}
	}
	// A replay always runs headless
	if opts.replay != "" {
		opts.headless = true
	}
	return opts, nil
}

// parseHash accepts a 64-bit hex value with or without 0x
func parseHash(s string) (uint64, error) {
	trimmed := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "0x")
	h, err := strconv.ParseUint(trimmed, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %v", errBadHash, s, err)
	}
	return h, nil
}
