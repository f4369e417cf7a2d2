package engine

import (
	"errors"
	"scotlandyard/game"
)

var ErrNoMoves = errors.New("no moves available")

// Agent picks the next move to play from a state that is not over.
type Agent interface {
	FindMove(state *game.GameState) (game.Move, error)
}

// Runner plays a whole game.
type Runner interface {
	// Run plays until there's a winner or the turn cap is reached
	Run() (Result, error)
}
