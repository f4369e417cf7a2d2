package game

import "fmt"

// Player is an immutable value: moving a player or changing its tickets
// produces a new Player.
type Player struct {
	piece    Piece
	tickets  Tickets
	location int
}

func NewPlayer(piece Piece, tickets Tickets, location int) Player {
	return Player{
		piece:    piece,
		tickets:  tickets,
		location: location,
	}
}

func (p Player) Piece() Piece {
	return p.piece
}

func (p Player) Tickets() Tickets {
	return p.tickets
}

func (p Player) Location() int {
	return p.location
}

func (p Player) IsMrX() bool {
	return p.piece.IsMrX()
}

func (p Player) IsDetective() bool {
	return p.piece.IsDetective()
}

func (p Player) Has(ticket Ticket) bool {
	return p.tickets.Has(ticket)
}

func (p Player) HasAtLeast(ticket Ticket, n int) bool {
	return p.tickets.HasAtLeast(ticket, n)
}

// use removes one of each given ticket.
func (p Player) use(tickets ...Ticket) Player {
	p.tickets = p.tickets.use(tickets...)
	return p
}

// give adds one of each given ticket.
func (p Player) give(tickets ...Ticket) Player {
	p.tickets = p.tickets.give(tickets...)
	return p
}

func (p Player) at(location int) Player {
	p.location = location
	return p
}

func (p Player) String() string {
	return fmt.Sprintf("%s@%d%v", p.piece, p.location, p.tickets.Map())
}
