package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"

	"golang.org/x/exp/slices"
)

type StateHash uint64

// GameState is an immutable snapshot of a game. Advance never modifies the
// receiver, it always returns a new GameState. The winner and the legal moves
// are computed when the state is created, so querying them is cheap.
type GameState struct {
	setup      Setup
	remaining  []Piece // sorted, pieces still to act this round
	log        []LogEntry
	mrX        Player
	detectives []Player
	roster     map[Piece]Player

	winner []Piece
	reason WinReason
	moves  []Move
	legal  map[Move]struct{}
}

// Build validates the initial roster and returns the first state of a game,
// with MrX to move. The state keeps its own copies of the roster and the
// reveal schedule, and freezes the graph.
func Build(setup Setup, mrX Player, detectives []Player) (*GameState, error) {
	if err := validate(setup, mrX, detectives); err != nil {
		return nil, err
	}
	setup = NewSetup(setup.Graph, setup.Moves)
	setup.Graph.freeze()
	return newGameState(setup, []Piece{mrX.Piece()}, nil, mrX, slices.Clone(detectives)), nil
}

func validate(setup Setup, mrX Player, detectives []Player) error {
	if !mrX.IsMrX() {
		return fmt.Errorf("%w: %s is not MrX", ErrInvalidSetup, mrX.Piece())
	}
	if len(setup.Moves) == 0 {
		return fmt.Errorf("%w: reveal schedule is empty", ErrInvalidSetup)
	}
	if setup.Graph == nil || setup.Graph.EdgeCount() == 0 {
		return fmt.Errorf("%w: graph is empty", ErrInvalidSetup)
	}
	if len(detectives) == 0 {
		return fmt.Errorf("%w: no detectives", ErrInvalidSetup)
	}

	players := append([]Player{mrX}, detectives...)
	pieces := make(map[Piece]struct{}, len(players))
	locations := make(map[int]Piece, len(players))
	for i, p := range players {
		if i > 0 {
			if !p.IsDetective() {
				return fmt.Errorf("%w: %s is not a detective", ErrInvalidSetup, p.Piece())
			}
			if p.Has(Secret) {
				return fmt.Errorf("%w: detective %s holds a secret ticket", ErrInvalidSetup, p.Piece())
			}
			if p.Has(Double) {
				return fmt.Errorf("%w: detective %s holds a double ticket", ErrInvalidSetup, p.Piece())
			}
		}
		if ticket, ok := p.Tickets().negative(); ok {
			return fmt.Errorf("%w: %s holds a negative number of %s tickets", ErrInvalidSetup, p.Piece(), ticket)
		}
		if !setup.Graph.HasNode(p.Location()) {
			return fmt.Errorf("%w: %s starts off the board at %d", ErrInvalidSetup, p.Piece(), p.Location())
		}
		if _, ok := pieces[p.Piece()]; ok {
			return fmt.Errorf("%w: duplicate piece %s", ErrInvalidSetup, p.Piece())
		}
		pieces[p.Piece()] = struct{}{}
		if other, ok := locations[p.Location()]; ok {
			return fmt.Errorf("%w: %s and %s share location %d", ErrInvalidSetup, other, p.Piece(), p.Location())
		}
		locations[p.Location()] = p.Piece()
	}
	return nil
}

func newGameState(setup Setup, remaining []Piece, log []LogEntry, mrX Player, detectives []Player) *GameState {
	roster := make(map[Piece]Player, len(detectives)+1)
	roster[mrX.Piece()] = mrX
	for _, d := range detectives {
		roster[d.Piece()] = d
	}

	gs := &GameState{
		setup:      setup,
		remaining:  sortPieces(remaining),
		log:        log,
		mrX:        mrX,
		detectives: detectives,
		roster:     roster,
	}
	gs.winner, gs.reason = EvaluateWinner(setup, gs.remaining, log, mrX, detectives)
	gs.moves = gs.computeMoves()
	gs.legal = make(map[Move]struct{}, len(gs.moves))
	for _, m := range gs.moves {
		gs.legal[m] = struct{}{}
	}
	return gs
}

// computeMoves collects the moves of every piece still to act, or none once
// the game is won.
func (gs *GameState) computeMoves() []Move {
	if len(gs.winner) > 0 {
		return nil
	}
	locations := detectiveLocations(gs.detectives)
	var moves []Move
	for _, piece := range gs.remaining {
		p := gs.roster[piece]
		for _, m := range SingleMoves(gs.setup.Graph, locations, p, p.Location()) {
			moves = append(moves, m)
		}
		for _, m := range DoubleMoves(gs.setup.Graph, locations, p, p.Location(), gs.log, gs.setup.Rounds()) {
			moves = append(moves, m)
		}
	}
	slices.SortFunc(moves, compareMoves)
	return moves
}

// Setup returns the board and a copy of the reveal schedule. The board is
// frozen, so it cannot be changed through the returned value.
func (gs *GameState) Setup() Setup {
	return NewSetup(gs.setup.Graph, gs.setup.Moves)
}

// Players returns MrX followed by the detectives in roster order.
func (gs *GameState) Players() []Piece {
	pieces := []Piece{gs.mrX.Piece()}
	return append(pieces, detectivePieces(gs.detectives)...)
}

// DetectiveLocation returns the location of a detective; ok is false when the
// piece is not a detective in this game.
func (gs *GameState) DetectiveLocation(piece Piece) (location int, ok bool) {
	if !piece.IsDetective() {
		return 0, false
	}
	p, ok := gs.roster[piece]
	if !ok {
		return 0, false
	}
	return p.Location(), true
}

// PlayerTickets returns the tickets of a piece; ok is false when the piece is
// not in this game.
func (gs *GameState) PlayerTickets(piece Piece) (tickets Tickets, ok bool) {
	p, ok := gs.roster[piece]
	if !ok {
		return Tickets{}, false
	}
	return p.Tickets(), true
}

// MrXLocation is MrX's true location. Boards shown to detectives should rely
// on the travel log instead.
func (gs *GameState) MrXLocation() int {
	return gs.mrX.Location()
}

func (gs *GameState) TravelLog() []LogEntry {
	return append([]LogEntry(nil), gs.log...)
}

// Remaining returns the pieces still entitled to move this round.
func (gs *GameState) Remaining() []Piece {
	return append([]Piece(nil), gs.remaining...)
}

// Winner returns the winning pieces, empty while the game goes on.
func (gs *GameState) Winner() []Piece {
	return append([]Piece(nil), gs.winner...)
}

func (gs *GameState) WinReason() WinReason {
	return gs.reason
}

func (gs *GameState) IsOver() bool {
	return len(gs.winner) > 0
}

// AvailableMoves returns the legal moves in a stable order. It is empty
// exactly when the game has a winner.
func (gs *GameState) AvailableMoves() []Move {
	return append([]Move(nil), gs.moves...)
}

// IsLegal reports whether the move can be played from this state.
func (gs *GameState) IsLegal(move Move) bool {
	if move == nil {
		return false
	}
	_, ok := gs.legal[move]
	return ok
}

// Advance plays a legal move and returns the resulting state.
func (gs *GameState) Advance(move Move) (*GameState, error) {
	if !gs.IsLegal(move) {
		return nil, fmt.Errorf("%w: %v", ErrIllegalMove, move)
	}

	log := append([]LogEntry(nil), gs.log...)
	mrX := gs.mrX
	player := gs.roster[move.Commencer()]

	switch m := move.(type) {
	case SingleMove:
		player = player.use(m.Ticket).at(m.To)
		if player.IsMrX() {
			log = appendLeg(log, gs.setup, m.Ticket, m.To)
		} else {
			mrX = mrX.give(m.Ticket)
		}
	case DoubleMove:
		player = player.use(m.Ticket1, m.Ticket2, Double).at(m.To2)
		if player.IsMrX() {
			log = appendLeg(log, gs.setup, m.Ticket1, m.To1)
			log = appendLeg(log, gs.setup, m.Ticket2, m.To2)
		} else {
			mrX = mrX.give(m.Ticket1, m.Ticket2)
		}
	default:
		panic(fmt.Sprintf("unexpected move type %T", move))
	}

	detectives := make([]Player, len(gs.detectives))
	copy(detectives, gs.detectives)
	if player.IsMrX() {
		mrX = player
	} else {
		detectives[indexOf(detectives, player.Piece())] = player
	}

	remaining := nextRemaining(gs.setup, gs.remaining, player.Piece(), mrX, detectives)
	return newGameState(gs.setup, remaining, log, mrX, detectives), nil
}

// nextRemaining works out who still has to act after mover has moved. A
// move by MrX starts a detective round; a detective move only takes that
// detective out. Detectives that cannot move are skipped so the round does
// not stall on them, and once no detective is left it is MrX's turn again.
func nextRemaining(setup Setup, remaining []Piece, mover Piece, mrX Player, detectives []Player) []Piece {
	var due []Piece
	if mover.IsMrX() {
		due = detectivePieces(detectives)
	} else {
		for _, p := range remaining {
			if p != mover {
				due = append(due, p)
			}
		}
	}

	locations := detectiveLocations(detectives)
	var next []Piece
	for _, piece := range due {
		d := detectives[indexOf(detectives, piece)]
		if len(SingleMoves(setup.Graph, locations, d, d.Location())) > 0 {
			next = append(next, piece)
		}
	}
	if len(next) == 0 {
		next = []Piece{mrX.Piece()}
	}
	return next
}

func indexOf(players []Player, piece Piece) int {
	for i, p := range players {
		if p.Piece() == piece {
			return i
		}
	}
	panic(fmt.Sprintf("piece %s not in roster", piece))
}

func sortPieces(pieces []Piece) []Piece {
	sorted := slices.Clone(pieces)
	slices.Sort(sorted)
	return sorted
}

// Hash identifies the state by who is to move, the travel log and every
// player's location and tickets.
func (gs *GameState) Hash() StateHash {
	hasher := fnv.New64a()

	// Hash remaining pieces
	for _, p := range gs.remaining {
		binary.Write(hasher, binary.LittleEndian, int64(p))
	}
	binary.Write(hasher, binary.LittleEndian, int64(-1))

	// Hash travel log
	for _, e := range gs.log {
		location, revealed := e.Location()
		binary.Write(hasher, binary.LittleEndian, int64(e.Ticket()))
		binary.Write(hasher, binary.LittleEndian, int64(location))
		binary.Write(hasher, binary.LittleEndian, revealed)
	}
	binary.Write(hasher, binary.LittleEndian, int64(-1))

	// Hash players
	for _, piece := range gs.Players() {
		p := gs.roster[piece]
		binary.Write(hasher, binary.LittleEndian, int64(piece))
		binary.Write(hasher, binary.LittleEndian, int64(p.Location()))
		for _, ticket := range AllTickets {
			binary.Write(hasher, binary.LittleEndian, int64(p.Tickets().Count(ticket)))
		}
	}

	return StateHash(hasher.Sum64())
}
