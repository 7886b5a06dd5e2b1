package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/skater/audio"
	"github.com/lixenwraith/skater/config"
	"github.com/lixenwraith/skater/constants"
	"github.com/lixenwraith/skater/core"
	"github.com/lixenwraith/skater/engine"
	"github.com/lixenwraith/skater/input"
	"github.com/lixenwraith/skater/render"
	"github.com/lixenwraith/skater/status"
	"github.com/lixenwraith/skater/systems"
	"github.com/lixenwraith/skater/terminal"
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		core.HandleCrash(recover())
	}()

	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		os.Exit(2)
	}
	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "skater: %v\n", err)
		os.Exit(1)
	}

	if logFile := setupLogging(cfg.Debug.Log); logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg); err != nil {
		log.Printf("exit: %v", err)
		fmt.Fprintf(os.Stderr, "skater: %v\n", err)
		os.Exit(1)
	}
}

// run owns the screen for the lifetime of the game
func run(cfg *config.Config) error {
	colorMode, err := terminal.ParseColorMode(cfg.Display.ColorMode)
	if err != nil {
		return err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("starting: color=%s seed=%d", colorMode, seed)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()
	core.SetCrashCleanup(screen.Fini)

	screen.EnableMouse()
	screen.HideCursor()
	width, height := screen.Size()

	// Create game context with ECS world
	ctx := engine.NewGameContext(cfg, width, height, engine.NewPausableClock(), rand.New(rand.NewSource(seed)))
	systems.RegisterAll(ctx)

	// Audio degrades to silence when no device is available
	sounds := audio.NewSoundManager(cfg.Audio.Volume, cfg.Audio.Muted)
	if err := sounds.Initialize(); err != nil {
		log.Printf("audio disabled: %v", err)
	} else {
		defer sounds.Cleanup()
	}
	ctx.Audio = sounds

	if cfg.Debug.StatusAddr != "" {
		srv, err := status.NewServer(cfg.Debug.StatusAddr, ctx.Status)
		if err != nil {
			return err
		}
		defer srv.Close()
		core.Go(func() {
			if err := srv.Serve(); err != nil {
				log.Printf("%v", err)
			}
		})
	}

	renderer := render.NewTerminalRenderer(screen, render.NewPalette(colorMode), width, height)
	machine := input.NewMachine()

	eventChan := make(chan tcell.Event, constants.InputChannelSize)
	// PollEvent returns nil once the screen is finalized
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	})

	frameTicker := time.NewTicker(constants.FrameUpdateInterval)
	defer frameTicker.Stop()

	for {
		select {
		case ev := <-eventChan:
			intent := machine.Process(ev)
			if !input.Apply(ctx, intent) {
				log.Printf("quit: high score %d", ctx.State.HighScore)
				return nil
			}
			if intent != nil && intent.Type == input.IntentResize {
				renderer.Resize(ctx.Width, ctx.Height)
				screen.Sync()
			}

		case <-frameTicker.C:
			ctx.Update()
			renderer.RenderFrame(ctx)
		}
	}
}
