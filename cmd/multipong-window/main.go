package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/lixenwraith/multipong/audio"
	"github.com/lixenwraith/multipong/config"
	"github.com/lixenwraith/multipong/constants"
	"github.com/lixenwraith/multipong/core"
	"github.com/lixenwraith/multipong/engine"
	"github.com/lixenwraith/multipong/events"
	"github.com/lixenwraith/multipong/render/gui"
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
	flags := flag.NewFlagSet("multipong-window", flag.ContinueOnError)
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

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "multipong: %v\n", err)
		return 1
	}
	return 0
}

func run(cfg *config.Config) error {
	surface := core.Size{W: constants.SurfaceWidth, H: constants.SurfaceHeight}
	seed := cfg.EffectiveSeed(time.Now())
	log.Printf("seed %d, interval %v", seed, cfg.Interval)

	reg := status.NewRegistry()
	queue := events.NewEventQueue()
	router := events.NewRouter[*engine.Game](queue)
	router.Register(engine.NewMetricsHandler(reg))
	router.Register(engine.LogHandler{})

	acfg := audio.DefaultAudioConfig()
	acfg.Enabled = cfg.AudioEnabled
	acfg.MasterVolume = cfg.MasterVolume
	acfg.SampleRate = cfg.SampleRate
	sounds := audio.NewSoundManager(acfg)
	if cfg.AudioEnabled {
		if err := sounds.Initialize(); err != nil {
			log.Printf("audio initialization failed: %v", err)
		}
	}
	defer sounds.Cleanup()
	router.Register(sounds)

	game, err := engine.NewGame(surface, vmath.NewFastRand(seed), engine.WithEventQueue(queue))
	if err != nil {
		return err
	}

	w := gui.NewWindow(game, router, reg)
	w.OnMute(func() { sounds.ToggleMute() })

	err = w.Run("multipong", cfg.Interval)
	log.Printf("session ended after %d ticks: %s", game.Tick(), reg.Summary())
	return err
}
