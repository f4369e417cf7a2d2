package gamemaster

import (
	"scotlandyard/game"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type recorder struct {
	name   string
	calls  *[]string
	events []Event
	boards []*game.GameState
}

func (r *recorder) OnModelChanged(board *game.GameState, event Event) {
	r.events = append(r.events, event)
	r.boards = append(r.boards, board)
	if r.calls != nil {
		*r.calls = append(*r.calls, r.name)
	}
}

type funcObserver func(*game.GameState, Event)

func (f funcObserver) OnModelChanged(board *game.GameState, event Event) { f(board, event) }

// newTestModel plays on a line 1-2-3 for MrX while Red shuttles on 10-11
// with a single taxi ticket, so the game ends after Red's first move.
func newTestModel(t *testing.T) *Model {
	t.Helper()
	g := game.NewGraph()
	g.AddEdge(1, 2, game.TaxiRoute)
	g.AddEdge(2, 3, game.TaxiRoute)
	g.AddEdge(10, 11, game.TaxiRoute)
	model, err := NewModel(
		game.NewSetup(g, []bool{false, false, false, true}),
		game.NewPlayer(game.MrX, game.NewTickets(map[game.Ticket]int{game.Taxi: 4}), 1),
		[]game.Player{game.NewPlayer(game.Red, game.NewTickets(map[game.Ticket]int{game.Taxi: 1}), 10)},
	)
	require.NoError(t, err)
	return model
}

func TestNewModel(t *testing.T) {
	t.Run("invalid roster is rejected", func(t *testing.T) {
		g := game.NewGraph()
		g.AddEdge(1, 2, game.TaxiRoute)

		model, err := NewModel(game.NewSetup(g, []bool{true}), game.NewPlayer(game.MrX, game.Tickets{}, 1), nil)

		require.ErrorIs(t, err, game.ErrInvalidSetup)
		require.Nil(t, model)
	})

	t.Run("models get distinct ids", func(t *testing.T) {
		require.NotEqual(t, newTestModel(t).ID(), newTestModel(t).ID())
	})
}

func TestObservers(t *testing.T) {
	t.Run("register and unregister by identity", func(t *testing.T) {
		model := newTestModel(t)
		a, b := &recorder{name: "a"}, &recorder{name: "b"}

		require.NoError(t, model.RegisterObserver(a))
		require.NoError(t, model.RegisterObserver(b))
		require.Equal(t, []Observer{a, b}, model.Observers())

		require.NoError(t, model.UnregisterObserver(a))
		require.Equal(t, []Observer{b}, model.Observers())
	})

	t.Run("protocol errors", func(t *testing.T) {
		model := newTestModel(t)
		a := &recorder{name: "a"}
		var missing *recorder

		require.ErrorIs(t, model.RegisterObserver(nil), ErrNilObserver)
		require.ErrorIs(t, model.RegisterObserver(missing), ErrNilObserver)
		require.ErrorIs(t, model.UnregisterObserver(nil), ErrNilObserver)
		require.ErrorIs(t, model.UnregisterObserver(a), ErrUnknownObserver)
		require.ErrorIs(t, model.RegisterObserver(funcObserver(func(*game.GameState, Event) {})), ErrIncomparableObserver)

		require.NoError(t, model.RegisterObserver(a))
		require.ErrorIs(t, model.RegisterObserver(a), ErrDuplicateObserver)
		require.Len(t, model.Observers(), 1)
	})
}

func TestChooseMove(t *testing.T) {
	t.Run("notifies every observer in order with the new board", func(t *testing.T) {
		model := newTestModel(t)
		var calls []string
		a, b := &recorder{name: "a", calls: &calls}, &recorder{name: "b", calls: &calls}
		require.NoError(t, model.RegisterObserver(a))
		require.NoError(t, model.RegisterObserver(b))

		err := model.ChooseMove(game.SingleMove{Piece: game.MrX, Source: 1, Ticket: game.Taxi, To: 2})

		require.NoError(t, err)
		require.Equal(t, []string{"a", "b"}, calls)
		require.Equal(t, []Event{MoveMade}, a.events)
		require.Same(t, model.CurrentBoard(), a.boards[0], "Observers see the swapped state")
		require.Equal(t, []game.Piece{game.Red}, model.CurrentBoard().Remaining())
	})

	t.Run("game over event", func(t *testing.T) {
		model := newTestModel(t)
		a := &recorder{name: "a"}
		require.NoError(t, model.RegisterObserver(a))

		require.NoError(t, model.ChooseMove(game.SingleMove{Piece: game.MrX, Source: 1, Ticket: game.Taxi, To: 2}))
		require.NoError(t, model.ChooseMove(game.SingleMove{Piece: game.Red, Source: 10, Ticket: game.Taxi, To: 11}))

		require.Equal(t, []Event{MoveMade, GameOver}, a.events)
		require.Equal(t, []game.Piece{game.MrX}, model.CurrentBoard().Winner())
	})

	t.Run("illegal move changes nothing", func(t *testing.T) {
		model := newTestModel(t)
		a := &recorder{name: "a"}
		require.NoError(t, model.RegisterObserver(a))
		before := model.CurrentBoard()

		err := model.ChooseMove(game.SingleMove{Piece: game.MrX, Source: 1, Ticket: game.Taxi, To: 3})

		require.ErrorIs(t, err, game.ErrIllegalMove)
		require.Same(t, before, model.CurrentBoard())
		require.Empty(t, a.events)
	})

	t.Run("observers may unregister others while notified", func(t *testing.T) {
		model := newTestModel(t)
		calls := 0
		first, other := &recorder{name: "first"}, &recorder{name: "other"}
		unregistering := &unregisterOnce{model: model, target: other, calls: &calls}
		require.NoError(t, model.RegisterObserver(first))
		require.NoError(t, model.RegisterObserver(other))
		require.NoError(t, model.RegisterObserver(unregistering))

		require.NoError(t, model.ChooseMove(game.SingleMove{Piece: game.MrX, Source: 1, Ticket: game.Taxi, To: 2}))

		require.Equal(t, 1, calls)
		require.Equal(t, []Observer{first, unregistering}, model.Observers())
		require.Len(t, other.events, 1, "Already notified for this move")
	})

	t.Run("observers may choose the next move", func(t *testing.T) {
		model := newTestModel(t)
		player := &autoPlayer{model: model}
		watcher := &recorder{name: "watcher"}
		require.NoError(t, model.RegisterObserver(player))
		require.NoError(t, model.RegisterObserver(watcher))

		done := make(chan error, 1)
		go func() {
			done <- model.ChooseMove(game.SingleMove{Piece: game.MrX, Source: 1, Ticket: game.Taxi, To: 2})
		}()

		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("ChooseMove did not return")
		}
		require.NoError(t, player.err)
		require.Equal(t, 1, player.played)
		require.Equal(t, []game.Piece{game.MrX}, model.CurrentBoard().Winner())
		require.Equal(t, []Event{GameOver, MoveMade}, watcher.events, "The nested move is notified first")
	})
}

// autoPlayer answers every MoveMade by playing the first available move.
type autoPlayer struct {
	model  *Model
	played int
	err    error
}

func (a *autoPlayer) OnModelChanged(board *game.GameState, event Event) {
	if event != MoveMade {
		return
	}
	a.played++
	if err := a.model.ChooseMove(board.AvailableMoves()[0]); err != nil {
		a.err = err
	}
}

type unregisterOnce struct {
	model  *Model
	target Observer
	calls  *int
}

func (u *unregisterOnce) OnModelChanged(*game.GameState, Event) {
	*u.calls++
	_ = u.model.UnregisterObserver(u.target)
}

func TestEvent(t *testing.T) {
	require.Equal(t, "MOVE_MADE", MoveMade.String())
	require.Equal(t, "GAME_OVER", GameOver.String())
}
