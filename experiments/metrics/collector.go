package metrics

import (
	"scotlandyard/game"
	"sync"
)

type GameMetric struct {
	Turns       int
	Rounds      int // entries in MrX's travel log
	Winner      string
	Reason      game.WinReason
	DoubleMoves int
	SecretMoves int
}

type GameRecord struct {
	ID         int
	Seed       uint64
	Detectives int
	GameMetric
}

// Summary aggregates the outcome of many games.
type Summary struct {
	Games         int
	MrXWins       int
	DetectiveWins int
	Unfinished    int
	ByReason      map[game.WinReason]int
	AvgRounds     float64
	AvgTurns      float64
}

// Collector tallies game metrics. It is safe for concurrent use.
type Collector struct {
	mu       sync.Mutex
	games    int
	mrXWins  int
	detWins  int
	rounds   int
	turns    int
	byReason map[game.WinReason]int
}

func NewCollector() *Collector {
	return &Collector{byReason: make(map[game.WinReason]int)}
}

func (c *Collector) Add(m GameMetric) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.games++
	c.rounds += m.Rounds
	c.turns += m.Turns
	c.byReason[m.Reason]++
	switch {
	case m.Reason == game.NoWinner:
	case m.Reason.MrXWins():
		c.mrXWins++
	default:
		c.detWins++
	}
}

func (c *Collector) Summary() Summary {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := Summary{
		Games:         c.games,
		MrXWins:       c.mrXWins,
		DetectiveWins: c.detWins,
		Unfinished:    c.byReason[game.NoWinner],
		ByReason:      make(map[game.WinReason]int, len(c.byReason)),
	}
	for reason, n := range c.byReason {
		s.ByReason[reason] = n
	}
	if c.games > 0 {
		s.AvgRounds = float64(c.rounds) / float64(c.games)
		s.AvgTurns = float64(c.turns) / float64(c.games)
	}
	return s
}
