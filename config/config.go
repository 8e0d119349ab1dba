package config

import (
	"flag"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"snake-arena/game/types"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Frontend names
const (
	FrontendWindow   = "window"
	FrontendTerminal = "terminal"
)

// Config holds the startup settings. It is read once and never changed during the run.
type Config struct {
	Frontend     string // window (raylib) or terminal (tcell)
	TickInterval int    // Frames per movement tick
	FPS          int    // Frame rate of the host loop
	Seed         uint64 // Food placement seed, 0 picks one from the clock
	Sound        bool   // Play effects through the speaker
	Debug        bool   // Write logs to logs/
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Frontend:     FrontendWindow,
		TickInterval: types.TickInterval,
		FPS:          types.TargetFPS,
	}
}

// Load layers defaults, an optional .env file, SNAKE_* environment variables and then
// command-line flags, and validates the result.
func Load(args []string) (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	cfg := Default()
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet("snake-arena", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.Frontend, "frontend", cfg.Frontend, "Frontend: window or terminal")
	fs.IntVar(&cfg.TickInterval, "tick", cfg.TickInterval, "Frames per movement tick (lower = faster)")
	fs.IntVar(&cfg.FPS, "fps", cfg.FPS, "Frames per second")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Food placement seed (0 = random)")
	fs.BoolVar(&cfg.Sound, "sound", cfg.Sound, "Enable sound effects")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Write debug logs to logs/")
	if err := fs.Parse(args); err != nil {
		return Config{}, errors.Wrap(err, "parse flags")
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv("SNAKE_FRONTEND"); ok {
		c.Frontend = strings.ToLower(strings.TrimSpace(v))
	}

	var err error
	if c.TickInterval, err = envInt("SNAKE_TICK_INTERVAL", c.TickInterval); err != nil {
		return err
	}
	if c.FPS, err = envInt("SNAKE_FPS", c.FPS); err != nil {
		return err
	}
	if v, ok := os.LookupEnv("SNAKE_SEED"); ok {
		seed, perr := strconv.ParseUint(v, 10, 64)
		if perr != nil {
			return errors.Wrap(perr, "environment variable SNAKE_SEED must be an unsigned integer")
		}
		c.Seed = seed
	}
	if c.Sound, err = envBool("SNAKE_SOUND", c.Sound); err != nil {
		return err
	}
	if c.Debug, err = envBool("SNAKE_DEBUG", c.Debug); err != nil {
		return err
	}
	return nil
}

// Validate rejects settings the game loop cannot run with.
func (c Config) Validate() error {
	switch c.Frontend {
	case FrontendWindow, FrontendTerminal:
	default:
		return errors.Errorf("unknown frontend %q", c.Frontend)
	}
	if c.TickInterval < 1 {
		return errors.Errorf("tick interval must be at least 1 frame, got %d", c.TickInterval)
	}
	if c.FPS < 1 || c.FPS > 240 {
		return errors.Errorf("fps must be between 1 and 240, got %d", c.FPS)
	}
	return nil
}

func envInt(key string, fallback int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return fallback, errors.Wrapf(err, "environment variable %s must be an integer", key)
	}
	return n, nil
}

func envBool(key string, fallback bool) (bool, error) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return fallback, errors.Wrapf(err, "environment variable %s must be a boolean", key)
	}
	return b, nil
}
