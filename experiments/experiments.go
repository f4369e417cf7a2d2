package experiments

import (
	"context"
	"fmt"
	"io"
	"scotlandyard/engine"
	"scotlandyard/experiments/metrics"
	"scotlandyard/game"
	"scotlandyard/meta"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type Config struct {
	Games      int
	Goroutines int
	MaxTurns   int
	Detectives int
	Seed       uint64 // game i is played with Seed+i
	OutputDir  string
}

// withDefaults fills unset fields from the meta package.
func (c Config) withDefaults() Config {
	if c.Games <= 0 {
		c.Games = meta.Games
	}
	if c.Goroutines <= 0 {
		c.Goroutines = meta.Goroutines
	}
	if c.MaxTurns <= 0 {
		c.MaxTurns = meta.MaxTurns
	}
	if c.Detectives <= 0 {
		c.Detectives = meta.Detectives
	}
	return c
}

// Run plays a batch of random games on the demo board, writes one CSV row
// per game and prints a summary table to out.
func Run(ctx context.Context, cfg Config, out io.Writer) (metrics.Summary, error) {
	cfg = cfg.withDefaults()
	run := uuid.New().String()
	log.Info().Msgf("starting run %s: %d games with %d detectives on %d goroutines", run, cfg.Games, cfg.Detectives, cfg.Goroutines)

	collector := metrics.NewCollector()
	records := make([]metrics.GameRecord, cfg.Games)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Goroutines)
	for i := 0; i < cfg.Games; i++ {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			seed := cfg.Seed + uint64(i)
			metric, err := runGame(seed, cfg.Detectives, cfg.MaxTurns)
			if err != nil {
				return fmt.Errorf("game %d (seed %d): %w", i+1, seed, err)
			}
			records[i] = metrics.GameRecord{
				ID:         i + 1,
				Seed:       seed,
				Detectives: cfg.Detectives,
				GameMetric: metric,
			}
			collector.Add(metric)
			log.Debug().Msgf("completed game %d with winner: %s (%s)", i+1, metric.Winner, metric.Reason)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return metrics.Summary{}, err
	}
	log.Info().Msgf("completed run %s", run)

	// Store experiment results
	writer, err := metrics.NewWriter(cfg.OutputDir, run)
	if err != nil {
		return metrics.Summary{}, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteGameRecords(records); err != nil {
		return metrics.Summary{}, fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msgf("stored game records in %s", writer.Dir())

	summary := collector.Summary()
	metrics.RenderSummary(out, fmt.Sprintf("%d games, %d detectives", cfg.Games, cfg.Detectives), summary)
	return summary, nil
}

// runGame plays a single seeded game and measures it.
func runGame(seed uint64, detectives, maxTurns int) (metrics.GameMetric, error) {
	model, err := engine.NewDemoModel(seed, detectives)
	if err != nil {
		return metrics.GameMetric{}, err
	}
	e, err := engine.LocalEngine(model, engine.NewRandomAgent(seed), maxTurns)
	if err != nil {
		return metrics.GameMetric{}, err
	}
	result, err := e.Run()
	if err != nil {
		return metrics.GameMetric{}, err
	}

	metric := metrics.GameMetric{
		Turns:  result.Turns,
		Rounds: result.Rounds,
		Reason: result.Reason,
		Winner: winnerName(result.Reason),
	}
	for _, u := range result.Updates {
		if u.Move.Commencer() != game.MrX {
			continue
		}
		if _, ok := u.Move.(game.DoubleMove); ok {
			metric.DoubleMoves++
		}
		for _, ticket := range u.Move.Tickets() {
			if ticket == game.Secret {
				metric.SecretMoves++
			}
		}
	}
	return metric, nil
}

func winnerName(reason game.WinReason) string {
	switch {
	case reason == game.NoWinner:
		return ""
	case reason.MrXWins():
		return "MrX"
	default:
		return "Detectives"
	}
}
