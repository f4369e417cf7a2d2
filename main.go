package main

import (
	"context"
	"os"
	"os/signal"
	"scotlandyard/config"
	"scotlandyard/experiments"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	level, err := cfg.Level()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_, err = experiments.Run(ctx, experiments.Config{
		Games:      cfg.Games,
		Goroutines: cfg.Goroutines,
		MaxTurns:   cfg.MaxTurns,
		Detectives: cfg.Detectives,
		Seed:       cfg.Seed,
		OutputDir:  cfg.OutputDir,
	}, os.Stdout)
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}
}
