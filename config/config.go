package config

import (
	"errors"
	"fmt"
	"io/fs"
	"scotlandyard/game"
	"scotlandyard/meta"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Config drives an experiment run. Games, Goroutines, MaxTurns and
// Detectives default to the values in the meta package.
type Config struct {
	Games      int    `env:"SY_GAMES"`
	Goroutines int    `env:"SY_GOROUTINES"`
	MaxTurns   int    `env:"SY_MAX_TURNS"`
	Seed       uint64 `env:"SY_SEED" envDefault:"1"`
	Detectives int    `env:"SY_DETECTIVES"`
	OutputDir  string `env:"SY_OUTPUT_DIR" envDefault:"experiments"`
	LogLevel   string `env:"SY_LOG_LEVEL" envDefault:"info"`
}

// Load reads the configuration from the environment, after loading the given
// dotenv files (".env" when none are given). Missing dotenv files are fine;
// variables already set in the environment win.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading dotenv: %w", err)
	}

	cfg := Config{
		Games:      meta.Games,
		Goroutines: meta.Goroutines,
		MaxTurns:   meta.MaxTurns,
		Detectives: meta.Detectives,
	}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c Config) validate() error {
	switch {
	case c.Games < 1:
		return fmt.Errorf("SY_GAMES must be positive, got %d", c.Games)
	case c.Goroutines < 1:
		return fmt.Errorf("SY_GOROUTINES must be positive, got %d", c.Goroutines)
	case c.MaxTurns < 1 || c.MaxTurns > meta.MaxTurns:
		return fmt.Errorf("SY_MAX_TURNS must be between 1 and %d, got %d", meta.MaxTurns, c.MaxTurns)
	case c.Detectives < 1 || c.Detectives > len(game.DetectivePieces):
		return fmt.Errorf("SY_DETECTIVES must be between 1 and %d, got %d", len(game.DetectivePieces), c.Detectives)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level is the zerolog level named by LogLevel.
func (c Config) Level() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("SY_LOG_LEVEL: %w", err)
	}
	return level, nil
}
