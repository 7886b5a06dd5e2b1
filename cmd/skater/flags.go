package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/lixenwraith/skater/config"
)

// options are the parsed command line flags
type options struct {
	configPath string
	color      string
	debug      bool
	mute       bool
	seed       int64
	statusAddr string

	// set records which flags were given explicitly
	set map[string]bool
}

// parseFlags parses args (without the program name)
func parseFlags(args []string, output io.Writer) (*options, error) {
	opts := &options{set: make(map[string]bool)}

	fs := flag.NewFlagSet("skater", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&opts.configPath, "config", "", "Config file (.toml, .yaml, .yml)")
	fs.StringVar(&opts.color, "color", config.ColorAuto, "Color mode: auto, truecolor, 256")
	fs.BoolVar(&opts.debug, "debug", false, "Write logs to logs/skater.log")
	fs.BoolVar(&opts.mute, "mute", false, "Start with sound muted")
	fs.Int64Var(&opts.seed, "seed", 0, "Spawn seed, 0 picks a time-based seed")
	fs.StringVar(&opts.statusAddr, "status-addr", "", "Serve status JSON on host:port")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	fs.Visit(func(f *flag.Flag) { opts.set[f.Name] = true })
	return opts, nil
}

// loadConfig reads the config file, then applies explicitly given flags over it
func loadConfig(opts *options) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}

	if opts.set["color"] {
		cfg.Display.ColorMode = opts.color
	}
	if opts.set["debug"] {
		cfg.Debug.Log = opts.debug
	}
	if opts.set["mute"] {
		cfg.Audio.Muted = opts.mute
	}
	if opts.set["seed"] {
		cfg.Seed = opts.seed
	}
	if opts.set["status-addr"] {
		cfg.Debug.StatusAddr = opts.statusAddr
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}
