package game

import "golang.org/x/exp/slices"

// SingleMoves returns every legal single move for player from source, given
// the locations currently held by detectives. A destination held by a
// detective is never proposed. A player holding a secret ticket may use it on
// any edge.
func SingleMoves(graph *Graph, detectives []int, player Player, source int) []SingleMove {
	occupied := locationSet(detectives)
	seen := make(map[SingleMove]struct{})
	var moves []SingleMove

	for _, destination := range graph.AdjacentNodes(source) {
		if _, ok := occupied[destination]; ok {
			continue
		}
		for _, ticket := range usableTickets(graph, player, source, destination) {
			m := SingleMove{Piece: player.Piece(), Source: source, Ticket: ticket, To: destination}
			if _, ok := seen[m]; !ok {
				seen[m] = struct{}{}
				moves = append(moves, m)
			}
		}
	}
	return moves
}

// DoubleMoves returns every legal double move for player from source. Double
// moves need a Double ticket and at least two rounds left before the round
// limit. Both legs avoid every detective location, and a ticket used on both
// legs must be held twice.
func DoubleMoves(graph *Graph, detectives []int, player Player, source int, log []LogEntry, totalRounds int) []DoubleMove {
	if !player.Has(Double) || totalRounds-len(log) < 2 {
		return nil
	}

	occupied := locationSet(detectives)
	seen := make(map[DoubleMove]struct{})
	var moves []DoubleMove

	for _, destination1 := range graph.AdjacentNodes(source) {
		if _, ok := occupied[destination1]; ok {
			continue
		}
		first := usableTickets(graph, player, source, destination1)
		if len(first) == 0 {
			continue
		}
		for _, destination2 := range graph.AdjacentNodes(destination1) {
			if _, ok := occupied[destination2]; ok {
				continue
			}
			second := usableTickets(graph, player, destination1, destination2)
			for _, ticket1 := range first {
				for _, ticket2 := range second {
					if ticket1 == ticket2 && !player.HasAtLeast(ticket1, 2) {
						continue
					}
					m := DoubleMove{
						Piece:   player.Piece(),
						Source:  source,
						Ticket1: ticket1,
						To1:     destination1,
						Ticket2: ticket2,
						To2:     destination2,
					}
					if _, ok := seen[m]; !ok {
						seen[m] = struct{}{}
						moves = append(moves, m)
					}
				}
			}
		}
	}
	return moves
}

// usableTickets returns the tickets the player holds that allow travel
// between two adjacent locations, with Secret last.
func usableTickets(graph *Graph, player Player, from, to int) []Ticket {
	var tickets []Ticket
	for _, ticket := range graph.RequiredTickets(from, to) {
		if ticket != Secret && player.Has(ticket) {
			tickets = append(tickets, ticket)
		}
	}
	slices.Sort(tickets)
	if player.Has(Secret) && len(graph.EdgeValue(from, to)) > 0 {
		tickets = append(tickets, Secret)
	}
	return tickets
}

func locationSet(locations []int) map[int]struct{} {
	set := make(map[int]struct{}, len(locations))
	for _, l := range locations {
		set[l] = struct{}{}
	}
	return set
}
