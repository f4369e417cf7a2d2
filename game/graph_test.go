package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGraph(t *testing.T) {
	t.Run("edges are undirected and keep parallel transports", func(t *testing.T) {
		g := NewGraph()
		g.AddEdge(1, 2, BusRoute)
		g.AddEdge(2, 1, TaxiRoute)
		g.AddEdge(1, 2, BusRoute)

		require.Equal(t, []Transport{TaxiRoute, BusRoute}, g.EdgeValue(1, 2))
		require.Equal(t, []Transport{TaxiRoute, BusRoute}, g.EdgeValue(2, 1))
		require.Equal(t, 1, g.EdgeCount())
		require.Nil(t, g.EdgeValue(1, 3))
	})

	t.Run("required tickets per edge", func(t *testing.T) {
		g := NewGraph()
		g.AddEdge(1, 2, Ferry)
		g.AddEdge(1, 2, UndergroundRoute)

		require.Equal(t, []Ticket{Underground, Secret}, g.RequiredTickets(1, 2))
	})

	t.Run("nodes and neighbours are sorted", func(t *testing.T) {
		g := NewGraph()
		g.AddEdge(5, 3, TaxiRoute)
		g.AddEdge(5, 1, TaxiRoute)
		g.AddNode(9)

		require.Equal(t, []int{1, 3, 5, 9}, g.Nodes())
		require.Equal(t, []int{1, 3}, g.AdjacentNodes(5))
		require.Empty(t, g.AdjacentNodes(9))
		require.True(t, g.HasNode(9))
		require.False(t, g.HasNode(4))
	})

	t.Run("self loops panic", func(t *testing.T) {
		require.Panics(t, func() { NewGraph().AddEdge(1, 1, TaxiRoute) })
	})
}

func TestDemoBoard(t *testing.T) {
	g := DemoGraph()

	require.Len(t, g.Nodes(), 20)
	for _, l := range append(append([]int{}, DemoMrXStarts...), DemoDetectiveStarts...) {
		require.True(t, g.HasNode(l), "start %d should be on the board", l)
	}
	for _, l := range DemoMrXStarts {
		require.NotContains(t, DemoDetectiveStarts, l)
	}
	require.Len(t, StandardRevealSchedule(), 24)
	require.True(t, StandardRevealSchedule()[23], "The last round always reveals MrX")
}

func TestTickets(t *testing.T) {
	tickets := NewTickets(map[Ticket]int{Taxi: 2, Secret: 1, Ticket(-3): 7})

	require.Equal(t, map[Ticket]int{Taxi: 2, Secret: 1}, tickets.Map(), "Unknown kinds are dropped")
	require.True(t, tickets.HasAtLeast(Taxi, 2))
	require.False(t, tickets.Has(Bus))
	require.Equal(t, 3, tickets.Total())

	used := tickets.use(Taxi, Taxi)
	require.Equal(t, 0, used.Count(Taxi))
	require.Equal(t, 2, tickets.Count(Taxi), "Ledgers are values")
}
