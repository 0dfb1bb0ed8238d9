package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/multipong/audio"
	"github.com/lixenwraith/multipong/config"
	"github.com/lixenwraith/multipong/constants"
	"github.com/lixenwraith/multipong/core"
	"github.com/lixenwraith/multipong/engine"
	"github.com/lixenwraith/multipong/events"
	"github.com/lixenwraith/multipong/input"
	"github.com/lixenwraith/multipong/render/tui"
	"github.com/lixenwraith/multipong/status"
	"github.com/lixenwraith/multipong/vmath"
)

func main() {
	os.Exit(realMain(os.Args[1:]))
}

// realMain returns the process exit code so deferred cleanup runs before os.Exit.
// 2 is a configuration error, 1 a runtime failure
func realMain(args []string) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		return 2
	}
	flags := flag.NewFlagSet("multipong", flag.ContinueOnError)
	cfg.RegisterFlags(flags)
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		return 2
	}

	if logFile := core.SetupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	applyColorMode(cfg.Color)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}

	// Panic Recovery: Ensure terminal is reset even if the game crashes
	core.SetCrashCleanup(screen.Fini)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	err = run(screen, cfg)
	screen.Fini()
	if err != nil {
		log.Printf("exit with error: %v", err)
		fmt.Fprintf(os.Stderr, "multipong: %v\n", err)
		return 1
	}
	return 0
}

// applyColorMode steers tcell's color depth detection before the screen is created
func applyColorMode(mode config.ColorMode) {
	switch mode {
	case config.Color256:
		os.Setenv("TCELL_TRUECOLOR", "disable")
	case config.ColorTrueColor:
		os.Setenv("COLORTERM", "truecolor")
	}
}

func run(screen tcell.Screen, cfg *config.Config) error {
	surface := core.Size{W: constants.SurfaceWidth, H: constants.SurfaceHeight}
	seed := cfg.EffectiveSeed(time.Now())
	log.Printf("seed %d, interval %v", seed, cfg.Interval)

	reg := status.NewRegistry()
	queue := events.NewEventQueue()
	router := events.NewRouter[*engine.Game](queue)
	router.Register(engine.NewMetricsHandler(reg))
	router.Register(engine.LogHandler{})

	sounds := newSoundManager(cfg)
	defer sounds.Cleanup()
	router.Register(sounds)

	game, err := engine.NewGame(surface, vmath.NewFastRand(seed), engine.WithEventQueue(queue))
	if err != nil {
		return err
	}

	keyChan := make(chan input.KeyEntry, 256)
	keys := input.DefaultKeyTable()
	screen.EnableFocus()
	// Input polling talks to the terminal directly
	core.Go(func() {
		for {
			switch ev := screen.PollEvent().(type) {
			case nil:
				// Screen finalized
				return
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventFocus:
				// Key-up never arrives for keys held while focus is elsewhere
				if !ev.Focused {
					keyChan <- input.KeyEntry{Intent: input.IntentReleaseAll}
				}
			case *tcell.EventKey:
				e := keys.Lookup(ev)
				if e.Intent == input.IntentNone {
					continue
				}
				select {
				case keyChan <- e:
				default:
					// Frame goroutine stalled; drop rather than block the poller
				}
			}
		}
	})

	s := &session{
		game:       game,
		router:     router,
		canvas:     tui.NewCanvas(screen, surface),
		tracker:    input.NewReleaseTracker(game),
		keyChan:    keyChan,
		toggleMute: sounds.ToggleMute,
		now:        time.Now,
	}

	loop := engine.NewLoop(cfg.Interval, s.frame, reg)
	loop.Start()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)

	select {
	case <-sig:
		loop.Stop()
	case <-loop.Done():
	}

	log.Printf("session ended after %d ticks: %s", game.Tick(), reg.Summary())
	return loop.Err()
}

// newSoundManager returns an initialized manager, or a silent one when audio is off or unavailable
func newSoundManager(cfg *config.Config) *audio.SoundManager {
	acfg := audio.DefaultAudioConfig()
	acfg.Enabled = cfg.AudioEnabled
	acfg.MasterVolume = cfg.MasterVolume
	acfg.SampleRate = cfg.SampleRate

	sm := audio.NewSoundManager(acfg)
	if !cfg.AudioEnabled {
		return sm
	}
	if err := sm.Initialize(); err != nil {
		// Non-fatal, game can run without sound
		log.Printf("audio initialization failed: %v", err)
	}
	return sm
}
