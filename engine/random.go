package engine

import (
	"scotlandyard/game"

	"golang.org/x/exp/rand"
)

// RandomAgent plays a uniformly random legal move. Games with the same seed
// replay identically.
type RandomAgent struct {
	rng *rand.Rand
}

func NewRandomAgent(seed uint64) *RandomAgent {
	return &RandomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *RandomAgent) FindMove(state *game.GameState) (game.Move, error) {
	moves := state.AvailableMoves()
	if len(moves) == 0 {
		return nil, ErrNoMoves
	}
	return moves[a.rng.Intn(len(moves))], nil
}
