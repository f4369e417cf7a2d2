package game

// StandardRevealSchedule is the 24 round schedule of the board game, with
// MrX surfacing on rounds 3, 8, 13, 18 and 24.
func StandardRevealSchedule() []bool {
	moves := make([]bool, 24)
	for _, round := range []int{3, 8, 13, 18, 24} {
		moves[round-1] = true
	}
	return moves
}

// MrXTickets is MrX's starting hand.
func MrXTickets() Tickets {
	return NewTickets(map[Ticket]int{
		Taxi:        4,
		Bus:         3,
		Underground: 3,
		Double:      2,
		Secret:      5,
	})
}

// DetectiveTickets is every detective's starting hand.
func DetectiveTickets() Tickets {
	return NewTickets(map[Ticket]int{
		Taxi:        11,
		Bus:         8,
		Underground: 4,
	})
}

// DemoGraph builds the small built-in board used by the simulator.
func DemoGraph() *Graph {
	g := NewGraph()
	for transport, edges := range demoEdges {
		for _, e := range edges {
			g.AddEdge(e[0], e[1], transport)
		}
	}
	return g
}

// Starting locations on the demo board, MrX's kept apart from the detectives'.
var (
	DemoMrXStarts       = []int{6, 10, 15, 19, 20}
	DemoDetectiveStarts = []int{1, 3, 4, 9, 12, 13, 17}
)

// GLOBAL DATA. A 20 location board with every transport on it.
var demoEdges = map[Transport][][2]int{
	TaxiRoute: {
		{1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 6}, {6, 7}, {7, 8}, {8, 9}, {9, 10}, {10, 11},
		{11, 12}, {12, 13}, {13, 14}, {14, 15}, {15, 16}, {16, 17}, {17, 18}, {18, 19}, {19, 20}, {20, 1},
		{1, 8}, {3, 12}, {5, 16}, {9, 18}, {11, 20}, {7, 14},
	},
	BusRoute: {
		{1, 5}, {5, 9}, {9, 13}, {13, 17}, {17, 1}, {2, 10}, {10, 18}, {6, 14},
	},
	UndergroundRoute: {
		{1, 9}, {9, 17}, {4, 13}, {13, 20},
	},
	Ferry: {
		{2, 15}, {8, 19},
	},
}
