package engine

import (
	"fmt"
	"scotlandyard/game"
	"scotlandyard/gamemaster"
	"scotlandyard/meta"

	"github.com/rs/zerolog/log"
)

// Update records one played move and the state it led to.
type Update struct {
	Move  game.Move
	Hash  game.StateHash
	Event gamemaster.Event
}

// Result summarises a finished (or capped) game.
type Result struct {
	Winner  []game.Piece
	Reason  game.WinReason
	Turns   int
	Rounds  int // length of MrX's travel log
	Updates []Update
}

var (
	_ Runner              = (*Engine)(nil)
	_ gamemaster.Observer = (*Engine)(nil)
)

type Engine struct {
	Model    *gamemaster.Model
	Agent    Agent
	MaxTurns int

	played  game.Move
	updates []Update
}

// LocalEngine drives model with agent. The engine watches the model to
// record every update.
func LocalEngine(model *gamemaster.Model, agent Agent, maxTurns int) (*Engine, error) {
	if maxTurns <= 0 {
		maxTurns = meta.MaxTurns
	}
	e := &Engine{
		Model:    model,
		Agent:    agent,
		MaxTurns: maxTurns,
	}
	if err := model.RegisterObserver(e); err != nil {
		return nil, fmt.Errorf("watching model: %w", err)
	}
	return e, nil
}

func (e *Engine) OnModelChanged(board *game.GameState, event gamemaster.Event) {
	e.updates = append(e.updates, Update{
		Move:  e.played,
		Hash:  board.Hash(),
		Event: event,
	})
}

// Run executes the game loop until a winner is found or MaxTurns moves have
// been played.
func (e *Engine) Run() (Result, error) {
	state := e.Model.CurrentBoard()
	log.Debug().Msgf("game %s starting with %v", e.Model.ID(), state.Players())

	turns := 0
	for !state.IsOver() && turns < e.MaxTurns {
		move, err := e.Agent.FindMove(state)
		if err != nil {
			return Result{}, fmt.Errorf("finding move on turn %d: %w", turns+1, err)
		}

		e.played = move
		if err := e.Model.ChooseMove(move); err != nil {
			return Result{}, fmt.Errorf("playing move on turn %d: %w", turns+1, err)
		}
		state = e.Model.CurrentBoard()
		turns++
	}

	if !state.IsOver() {
		log.Warn().Msgf("game %s stopped after %d turns (no winner yet)", e.Model.ID(), turns)
	}

	return Result{
		Winner:  state.Winner(),
		Reason:  state.WinReason(),
		Turns:   turns,
		Rounds:  len(state.TravelLog()),
		Updates: append([]Update(nil), e.updates...),
	}, nil
}
