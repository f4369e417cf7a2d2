package gamemaster

import (
	"errors"
	"fmt"
	"reflect"
	"scotlandyard/game"
	"scotlandyard/utils"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	ErrNilObserver          = errors.New("observer is nil")
	ErrDuplicateObserver    = errors.New("observer is already registered")
	ErrUnknownObserver      = errors.New("observer is not registered")
	ErrIncomparableObserver = errors.New("observer cannot be compared by identity")
)

// Event tells observers why the model changed.
type Event int

const (
	MoveMade Event = iota
	GameOver
)

func (e Event) String() string {
	switch e {
	case MoveMade:
		return "MOVE_MADE"
	case GameOver:
		return "GAME_OVER"
	default:
		return "UNKNOWN"
	}
}

// Observer is notified after every move chosen on a Model. Observers are
// told apart by identity, so they must be comparable (pointers usually).
type Observer interface {
	OnModelChanged(board *game.GameState, event Event)
}

// Model holds the current state of one game and the observers watching it.
// Advancing the state is serialised; observers run synchronously, in
// registration order, after the new state is in place and with no lock held,
// so an observer may choose the next move itself.
type Model struct {
	id     uuid.UUID
	logger zerolog.Logger

	mu        sync.RWMutex
	state     *game.GameState
	observers []Observer
}

// NewModel builds the initial state and wraps it in a Model.
func NewModel(setup game.Setup, mrX game.Player, detectives []game.Player) (*Model, error) {
	state, err := game.Build(setup, mrX, detectives)
	if err != nil {
		return nil, err
	}
	id := uuid.New()
	return &Model{
		id:     id,
		logger: log.With().Str("model", id.String()).Logger(),
		state:  state,
	}, nil
}

func (m *Model) ID() uuid.UUID {
	return m.id
}

// CurrentBoard returns the state the game is in.
func (m *Model) CurrentBoard() *game.GameState {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

func (m *Model) RegisterObserver(observer Observer) error {
	if err := checkObserver(observer); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if utils.FindIndex(m.observers, observer) >= 0 {
		return ErrDuplicateObserver
	}
	m.observers = append(m.observers, observer)
	return nil
}

func (m *Model) UnregisterObserver(observer Observer) error {
	if err := checkObserver(observer); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	i := utils.FindIndex(m.observers, observer)
	if i < 0 {
		return ErrUnknownObserver
	}
	m.observers = append(m.observers[:i:i], m.observers[i+1:]...)
	return nil
}

// Observers returns the registered observers in registration order.
func (m *Model) Observers() []Observer {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]Observer(nil), m.observers...)
}

// ChooseMove advances the game by move and notifies every observer once,
// with GameOver if the move ended the game and MoveMade otherwise. An illegal
// move leaves the model unchanged and notifies nobody. A move chosen by an
// observer during notification is applied and notified before the remaining
// observers hear about the earlier move.
func (m *Model) ChooseMove(move game.Move) error {
	m.mu.Lock()
	next, err := m.state.Advance(move)
	if err != nil {
		m.mu.Unlock()
		return fmt.Errorf("choosing move: %w", err)
	}
	m.state = next
	observers := append([]Observer(nil), m.observers...)
	m.mu.Unlock()

	event := MoveMade
	if next.IsOver() {
		event = GameOver
		m.logger.Info().Msgf("game over after %d rounds: %v won by %s", len(next.TravelLog()), next.Winner(), next.WinReason())
	} else {
		m.logger.Debug().Msgf("move made: %v", move)
	}

	for _, o := range observers {
		o.OnModelChanged(next, event)
	}
	return nil
}

func checkObserver(observer Observer) error {
	if observer == nil {
		return ErrNilObserver
	}
	v := reflect.ValueOf(observer)
	if v.Kind() == reflect.Pointer && v.IsNil() {
		return ErrNilObserver
	}
	if !v.Type().Comparable() {
		return fmt.Errorf("%w: %T", ErrIncomparableObserver, observer)
	}
	return nil
}
