package config

import (
	"os"
	"path/filepath"
	"scotlandyard/game"
	"scotlandyard/meta"
	"strconv"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))

		require.NoError(t, err)
		require.Equal(t, &Config{
			Games:      meta.Games,
			Goroutines: meta.Goroutines,
			MaxTurns:   meta.MaxTurns,
			Seed:       1,
			Detectives: meta.Detectives,
			OutputDir:  "experiments",
			LogLevel:   "info",
		}, cfg)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("SY_GAMES", "3")
		t.Setenv("SY_SEED", "42")
		t.Setenv("SY_LOG_LEVEL", "debug")

		cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))

		require.NoError(t, err)
		require.Equal(t, 3, cfg.Games)
		require.Equal(t, uint64(42), cfg.Seed)
		level, err := cfg.Level()
		require.NoError(t, err)
		require.Equal(t, zerolog.DebugLevel, level)
	})

	t.Run("dotenv file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "sim.env")
		require.NoError(t, os.WriteFile(path, []byte("SY_DETECTIVES=2\n"), 0o644))
		t.Cleanup(func() { os.Unsetenv("SY_DETECTIVES") })

		cfg, err := Load(path)

		require.NoError(t, err)
		require.Equal(t, 2, cfg.Detectives)
	})

	t.Run("invalid values", func(t *testing.T) {
		for name, value := range map[string]string{
			"SY_GAMES":      "0",
			"SY_GOROUTINES": "-1",
			"SY_MAX_TURNS":  strconv.Itoa(meta.MaxTurns + 1),
			"SY_DETECTIVES": strconv.Itoa(len(game.DetectivePieces) + 1),
			"SY_LOG_LEVEL":  "loud",
			"SY_SEED":       "minus",
		} {
			t.Run(name, func(t *testing.T) {
				t.Setenv(name, value)

				_, err := Load(filepath.Join(t.TempDir(), "missing.env"))

				require.Error(t, err)
			})
		}
	})
}

func TestLevel(t *testing.T) {
	level, err := Config{LogLevel: "warn"}.Level()
	require.NoError(t, err)
	require.Equal(t, zerolog.WarnLevel, level)

	_, err = Config{LogLevel: "loud"}.Level()
	require.Error(t, err)
}
