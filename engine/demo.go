package engine

import (
	"fmt"
	"scotlandyard/game"
	"scotlandyard/gamemaster"

	"golang.org/x/exp/rand"
)

// NewDemoModel sets up a game on the built-in board with the standard reveal
// schedule and tickets. Starting locations are drawn from seed.
func NewDemoModel(seed uint64, detectives int) (*gamemaster.Model, error) {
	if detectives < 1 || detectives > len(game.DetectivePieces) {
		return nil, fmt.Errorf("%w: %d detectives, want 1 to %d", game.ErrInvalidSetup, detectives, len(game.DetectivePieces))
	}
	rng := rand.New(rand.NewSource(seed))

	mrXStart := game.DemoMrXStarts[rng.Intn(len(game.DemoMrXStarts))]
	starts := append([]int(nil), game.DemoDetectiveStarts...)
	rng.Shuffle(len(starts), func(i, j int) {
		starts[i], starts[j] = starts[j], starts[i]
	})

	roster := make([]game.Player, detectives)
	for i := range roster {
		roster[i] = game.NewPlayer(game.DetectivePieces[i], game.DetectiveTickets(), starts[i])
	}

	setup := game.NewSetup(game.DemoGraph(), game.StandardRevealSchedule())
	return gamemaster.NewModel(setup, game.NewPlayer(game.MrX, game.MrXTickets(), mrXStart), roster)
}
