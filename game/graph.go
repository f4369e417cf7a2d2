package game

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Graph is the static transport network. Locations are nodes, and each pair
// of adjacent locations carries one or more transports. Building a game
// freezes the graph: adding nodes or edges afterwards panics.
type Graph struct {
	edges  map[int]map[int][]Transport // location -> neighbour -> transports
	frozen bool
}

// NewGraph creates and returns an empty Graph.
func NewGraph() *Graph {
	return &Graph{
		edges: make(map[int]map[int][]Transport),
	}
}

// AddNode adds a location with no edges.
func (g *Graph) AddNode(location int) {
	g.checkMutable()
	if _, ok := g.edges[location]; !ok {
		g.edges[location] = make(map[int][]Transport)
	}
}

// AddEdge adds an undirected edge between two locations. Parallel edges of
// different transports are kept; repeating a transport is a no-op.
func (g *Graph) AddEdge(a, b int, transport Transport) {
	g.checkMutable()
	if a == b {
		panic(fmt.Sprintf("self loop on location %d", a))
	}
	g.AddNode(a)
	g.AddNode(b)
	if !slices.Contains(g.edges[a][b], transport) {
		g.edges[a][b] = insertTransport(g.edges[a][b], transport)
		g.edges[b][a] = insertTransport(g.edges[b][a], transport)
	}
}

// Frozen reports whether a game has been built on the graph.
func (g *Graph) Frozen() bool {
	return g.frozen
}

func (g *Graph) freeze() {
	g.frozen = true
}

func (g *Graph) checkMutable() {
	if g.frozen {
		panic("graph is frozen once a game is built on it")
	}
}

// Nodes returns every location in ascending order.
func (g *Graph) Nodes() []int {
	nodes := make([]int, 0, len(g.edges))
	for n := range g.edges {
		nodes = append(nodes, n)
	}
	slices.Sort(nodes)
	return nodes
}

// HasNode reports whether the location is on the board.
func (g *Graph) HasNode(location int) bool {
	_, ok := g.edges[location]
	return ok
}

// AdjacentNodes returns the neighbours of a location in ascending order.
func (g *Graph) AdjacentNodes(location int) []int {
	neighbours := make([]int, 0, len(g.edges[location]))
	for n := range g.edges[location] {
		neighbours = append(neighbours, n)
	}
	slices.Sort(neighbours)
	return neighbours
}

// EdgeValue returns the transports between two locations, or nil if they are
// not adjacent.
func (g *Graph) EdgeValue(a, b int) []Transport {
	return g.edges[a][b]
}

// RequiredTickets returns the distinct tickets accepted on the edge between
// two locations.
func (g *Graph) RequiredTickets(a, b int) []Ticket {
	var tickets []Ticket
	for _, t := range g.edges[a][b] {
		ticket := t.RequiredTicket()
		if !slices.Contains(tickets, ticket) {
			tickets = append(tickets, ticket)
		}
	}
	return tickets
}

// EdgeCount returns the number of adjacent location pairs.
func (g *Graph) EdgeCount() int {
	count := 0
	for _, neighbours := range g.edges {
		count += len(neighbours)
	}
	return count / 2
}

// insertTransport keeps transports sorted so edge values are deterministic.
func insertTransport(slice []Transport, t Transport) []Transport {
	i, _ := slices.BinarySearch(slice, t)
	return slices.Insert(slice, i, t)
}
