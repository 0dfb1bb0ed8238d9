// Package config resolves runtime options from an optional .env file, MULTIPONG_* environment
// variables and command-line flags, in increasing precedence
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/lixenwraith/multipong/constants"
)

// Environment variable names
const (
	EnvFPS          = "MULTIPONG_FPS"
	EnvInterval     = "MULTIPONG_INTERVAL"
	EnvSeed         = "MULTIPONG_SEED"
	EnvAudioEnabled = "MULTIPONG_AUDIO_ENABLED"
	EnvMasterVolume = "MULTIPONG_MASTER_VOLUME"
	EnvSampleRate   = "MULTIPONG_SAMPLE_RATE"
	EnvColor        = "MULTIPONG_COLOR"
	EnvDebug        = "MULTIPONG_DEBUG"
)

// ColorMode selects terminal color depth
type ColorMode string

const (
	ColorAuto      ColorMode = "auto"
	ColorTrueColor ColorMode = "truecolor"
	Color256       ColorMode = "256"
)

// Sentinel errors
var (
	ErrInvalidInterval   = errors.New("frame interval out of range")
	ErrInvalidVolume     = errors.New("master volume must be 0-100")
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
	ErrInvalidColorMode  = errors.New("color mode must be auto, truecolor or 256")
)

// Config holds runtime options. Gameplay constants are fixed and not configurable
type Config struct {
	Interval time.Duration
	Seed     uint64 // 0 selects a time-based seed

	AudioEnabled bool
	MasterVolume float64 // 0.0-1.0
	SampleRate   int

	Color ColorMode
	Debug bool
}

// Default returns the built-in options
func Default() *Config {
	return &Config{
		Interval:     constants.FrameUpdateInterval,
		AudioEnabled: true,
		MasterVolume: constants.DefaultMasterVolume,
		SampleRate:   constants.DefaultSampleRate,
		Color:        ColorAuto,
	}
}

// Load reads envFiles (".env" when none are given) into the process environment without
// overriding variables already set, then applies MULTIPONG_* variables over the defaults.
// Missing env files are not an error. Ranges are not checked here since flags may still
// override the values; call Validate once all sources are applied
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("env file: %w", err)
	}

	cfg := Default()
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvFPS); v != "" {
		fps, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvFPS, err)
		}
		if fps <= 0 {
			return fmt.Errorf("%s: %w", EnvFPS, ErrInvalidInterval)
		}
		c.Interval = time.Second / time.Duration(fps)
	}

	// Explicit interval wins over FPS
	if v := os.Getenv(EnvInterval); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvInterval, err)
		}
		c.Interval = d
	}

	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		c.Seed = seed
	}

	if v := os.Getenv(EnvAudioEnabled); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvAudioEnabled, err)
		}
		c.AudioEnabled = b
	}

	// 0-100 converted to 0.0-1.0
	if v := os.Getenv(EnvMasterVolume); v != "" {
		vol, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMasterVolume, err)
		}
		if vol < 0 || vol > 100 {
			return fmt.Errorf("%s: %w", EnvMasterVolume, ErrInvalidVolume)
		}
		c.MasterVolume = float64(vol) / 100.0
	}

	if v := os.Getenv(EnvSampleRate); v != "" {
		rate, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSampleRate, err)
		}
		c.SampleRate = rate
	}

	if v := os.Getenv(EnvColor); v != "" {
		c.Color = ColorMode(v)
	}

	if v := os.Getenv(EnvDebug); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvDebug, err)
		}
		c.Debug = b
	}

	return nil
}

// Validate checks ranges and enumerations
func (c *Config) Validate() error {
	if c.Interval < constants.MinFrameInterval || c.Interval > constants.MaxFrameInterval {
		return fmt.Errorf("%v (allowed %v-%v): %w", c.Interval,
			constants.MinFrameInterval, constants.MaxFrameInterval, ErrInvalidInterval)
	}
	if c.MasterVolume < 0 || c.MasterVolume > 1 {
		return fmt.Errorf("%.2f: %w", c.MasterVolume, ErrInvalidVolume)
	}
	if c.SampleRate <= 0 {
		return fmt.Errorf("%d: %w", c.SampleRate, ErrInvalidSampleRate)
	}
	switch c.Color {
	case ColorAuto, ColorTrueColor, Color256:
	default:
		return fmt.Errorf("%q: %w", c.Color, ErrInvalidColorMode)
	}
	return nil
}

// RegisterFlags binds flags to c, using the current values as defaults so flags override the environment.
// Call Validate after parsing
func (c *Config) RegisterFlags(flags *flag.FlagSet) {
	flags.DurationVar(&c.Interval, "interval", c.Interval, "Frame interval, e.g. 16ms")
	flags.Func("fps", "Frames per second (overrides -interval when given later)", func(s string) error {
		fps, err := strconv.Atoi(s)
		if err != nil {
			return err
		}
		if fps <= 0 {
			return ErrInvalidInterval
		}
		c.Interval = time.Second / time.Duration(fps)
		return nil
	})
	flags.Uint64Var(&c.Seed, "seed", c.Seed, "RNG seed, 0 for time-based")
	flags.BoolVar(&c.AudioEnabled, "audio", c.AudioEnabled, "Enable sound effects")
	flags.Func("volume", "Master volume 0-100", func(s string) error {
		vol, err := strconv.Atoi(s)
		if err != nil {
			return err
		}
		if vol < 0 || vol > 100 {
			return ErrInvalidVolume
		}
		c.MasterVolume = float64(vol) / 100.0
		return nil
	})
	flags.IntVar(&c.SampleRate, "sample-rate", c.SampleRate, "Audio sample rate in Hz")
	flags.Func("color", "Color mode: auto, truecolor, 256", func(s string) error {
		c.Color = ColorMode(s)
		return nil
	})
	flags.BoolVar(&c.Debug, "debug", c.Debug, "Write debug log to logs/")
}

// EffectiveSeed returns Seed, or a seed derived from now when Seed is 0
func (c *Config) EffectiveSeed(now time.Time) uint64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return uint64(now.UnixNano())
}
