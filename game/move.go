package game

import (
	"cmp"
	"fmt"
)

// Move is either a SingleMove or a DoubleMove. Both are comparable values,
// so moves can be used as map keys and compared with ==; a DoubleMove never
// equals any SingleMove.
type Move interface {
	// Commencer is the piece making the move.
	Commencer() Piece
	// Tickets lists every ticket the move consumes.
	Tickets() []Ticket
	// Destination is where the piece ends up.
	Destination() int
	isMove()
}

// SingleMove moves a piece along one edge.
type SingleMove struct {
	Piece  Piece
	Source int
	Ticket Ticket
	To     int
}

func (m SingleMove) Commencer() Piece {
	return m.Piece
}

func (m SingleMove) Tickets() []Ticket {
	return []Ticket{m.Ticket}
}

func (m SingleMove) Destination() int {
	return m.To
}

func (SingleMove) isMove() {}

func (m SingleMove) String() string {
	return fmt.Sprintf("%s %d -%s-> %d", m.Piece, m.Source, m.Ticket, m.To)
}

// DoubleMove moves a piece along two edges in one turn using a Double ticket.
type DoubleMove struct {
	Piece   Piece
	Source  int
	Ticket1 Ticket
	To1     int
	Ticket2 Ticket
	To2     int
}

func (m DoubleMove) Commencer() Piece {
	return m.Piece
}

func (m DoubleMove) Tickets() []Ticket {
	return []Ticket{m.Ticket1, m.Ticket2, Double}
}

func (m DoubleMove) Destination() int {
	return m.To2
}

func (DoubleMove) isMove() {}

func (m DoubleMove) String() string {
	return fmt.Sprintf("%s %d -%s-> %d -%s-> %d", m.Piece, m.Source, m.Ticket1, m.To1, m.Ticket2, m.To2)
}

// compareMoves orders moves by piece, then single before double, then fields.
func compareMoves(a, b Move) int {
	ka, kb := moveKey(a), moveKey(b)
	for i := range ka {
		if c := cmp.Compare(ka[i], kb[i]); c != 0 {
			return c
		}
	}
	return 0
}

func moveKey(m Move) [7]int {
	switch m := m.(type) {
	case SingleMove:
		return [7]int{int(m.Piece), 0, m.Source, int(m.Ticket), m.To, 0, 0}
	case DoubleMove:
		return [7]int{int(m.Piece), 1, m.Source, int(m.Ticket1), m.To1, int(m.Ticket2), m.To2}
	default:
		panic(fmt.Sprintf("unexpected move type %T", m))
	}
}
