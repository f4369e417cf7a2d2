package game

// Setup is the fixed configuration of a game: the board and the reveal
// schedule. Moves[i] is true when MrX's location is revealed on the log
// entry with index i, and len(Moves) is the number of rounds MrX must survive.
type Setup struct {
	Graph *Graph
	Moves []bool
}

// NewSetup copies the reveal schedule so later changes by the caller do not
// leak into the game.
func NewSetup(graph *Graph, moves []bool) Setup {
	schedule := make([]bool, len(moves))
	copy(schedule, moves)
	return Setup{
		Graph: graph,
		Moves: schedule,
	}
}

// Rounds is the round limit of the game.
func (s Setup) Rounds() int {
	return len(s.Moves)
}

// IsRevealRound reports whether the log entry at the given index reveals
// MrX's location.
func (s Setup) IsRevealRound(index int) bool {
	return index >= 0 && index < len(s.Moves) && s.Moves[index]
}
