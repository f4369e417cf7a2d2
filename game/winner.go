package game

// WinReason tells which end condition finished the game.
type WinReason int

const (
	NoWinner WinReason = iota
	// Capture: a detective finished a move on MrX's location.
	Capture
	// DetectivesStuck: no detective can make a move.
	DetectivesStuck
	// MrXCornered: it is MrX's turn and he has nowhere to go.
	MrXCornered
	// MrXEscaped: MrX filled the travel log without being caught.
	MrXEscaped
)

func (r WinReason) String() string {
	switch r {
	case NoWinner:
		return "NoWinner"
	case Capture:
		return "Capture"
	case DetectivesStuck:
		return "DetectivesStuck"
	case MrXCornered:
		return "MrXCornered"
	case MrXEscaped:
		return "MrXEscaped"
	default:
		return "Unknown"
	}
}

// MrXWins reports whether the reason is a win for MrX.
func (r WinReason) MrXWins() bool {
	return r == DetectivesStuck || r == MrXEscaped
}

// EvaluateWinner determines the winning side. The checks run in a fixed
// order and the first one that holds decides: capture, detectives stuck,
// MrX cornered on his turn, then MrX surviving the final round. An empty
// result means the game goes on.
func EvaluateWinner(setup Setup, remaining []Piece, log []LogEntry, mrX Player, detectives []Player) ([]Piece, WinReason) {
	locations := detectiveLocations(detectives)
	mrXToMove := false
	for _, p := range remaining {
		if p == mrX.Piece() {
			mrXToMove = true
		}
	}

	for _, d := range detectives {
		if d.Location() == mrX.Location() {
			return detectivePieces(detectives), Capture
		}
	}

	if allStuck(setup.Graph, locations, detectives) {
		return []Piece{mrX.Piece()}, DetectivesStuck
	}

	if mrXToMove && !canMove(setup, locations, log, mrX) {
		return detectivePieces(detectives), MrXCornered
	}

	if mrXToMove && len(log) == setup.Rounds() {
		return []Piece{mrX.Piece()}, MrXEscaped
	}

	return nil, NoWinner
}

func allStuck(graph *Graph, locations []int, detectives []Player) bool {
	for _, d := range detectives {
		if len(SingleMoves(graph, locations, d, d.Location())) > 0 {
			return false
		}
	}
	return true
}

// canMove reports whether the player has any single or double move.
func canMove(setup Setup, locations []int, log []LogEntry, p Player) bool {
	if len(SingleMoves(setup.Graph, locations, p, p.Location())) > 0 {
		return true
	}
	return len(DoubleMoves(setup.Graph, locations, p, p.Location(), log, setup.Rounds())) > 0
}

func detectiveLocations(detectives []Player) []int {
	locations := make([]int, len(detectives))
	for i, d := range detectives {
		locations[i] = d.Location()
	}
	return locations
}

func detectivePieces(detectives []Player) []Piece {
	pieces := make([]Piece, len(detectives))
	for i, d := range detectives {
		pieces[i] = d.Piece()
	}
	return pieces
}
