package game

import "fmt"

// LogEntry is one leg of MrX's travel. The ticket is always recorded, the
// location only on reveal rounds.
type LogEntry struct {
	ticket   Ticket
	location int
	revealed bool
}

// Hidden records a leg without its destination.
func Hidden(ticket Ticket) LogEntry {
	return LogEntry{ticket: ticket}
}

// Reveal records a leg together with its destination.
func Reveal(ticket Ticket, location int) LogEntry {
	return LogEntry{ticket: ticket, location: location, revealed: true}
}

func (e LogEntry) Ticket() Ticket {
	return e.ticket
}

// Location returns the destination of the leg; ok is false for hidden entries.
func (e LogEntry) Location() (location int, ok bool) {
	return e.location, e.revealed
}

func (e LogEntry) IsRevealed() bool {
	return e.revealed
}

func (e LogEntry) String() string {
	if e.revealed {
		return fmt.Sprintf("Reveal(%s, %d)", e.ticket, e.location)
	}
	return fmt.Sprintf("Hidden(%s)", e.ticket)
}

// appendLeg adds the log entry for a leg of MrX's move. The reveal schedule
// is looked up with the log length at the time the leg is appended.
func appendLeg(log []LogEntry, setup Setup, ticket Ticket, destination int) []LogEntry {
	if setup.IsRevealRound(len(log)) {
		return append(log, Reveal(ticket, destination))
	}
	return append(log, Hidden(ticket))
}
