package game

// Tickets is an immutable ledger of ticket counts. The zero value holds no
// tickets. Operations on Tickets always return a new copy.
type Tickets struct {
	counts [numTickets]int
}

// NewTickets builds a ledger from a count per ticket kind. Unknown ticket
// kinds are ignored.
func NewTickets(counts map[Ticket]int) Tickets {
	var t Tickets
	for ticket, n := range counts {
		if ticket.valid() {
			t.counts[ticket] = n
		}
	}
	return t
}

// Count returns how many tickets of the given kind are held, 0 for unknown kinds.
func (t Tickets) Count(ticket Ticket) int {
	if !ticket.valid() {
		return 0
	}
	return t.counts[ticket]
}

func (t Tickets) Has(ticket Ticket) bool {
	return t.Count(ticket) > 0
}

func (t Tickets) HasAtLeast(ticket Ticket, n int) bool {
	return t.Count(ticket) >= n
}

// Map returns the non-zero counts as a map.
func (t Tickets) Map() map[Ticket]int {
	m := make(map[Ticket]int)
	for _, ticket := range AllTickets {
		if t.counts[ticket] != 0 {
			m[ticket] = t.counts[ticket]
		}
	}
	return m
}

// Total sums all held tickets.
func (t Tickets) Total() int {
	total := 0
	for _, n := range t.counts {
		total += n
	}
	return total
}

func (t Tickets) use(tickets ...Ticket) Tickets {
	for _, ticket := range tickets {
		t.counts[ticket]--
	}
	return t
}

func (t Tickets) give(tickets ...Ticket) Tickets {
	for _, ticket := range tickets {
		t.counts[ticket]++
	}
	return t
}

// negative returns the first ticket kind with a negative count.
func (t Tickets) negative() (Ticket, bool) {
	for _, ticket := range AllTickets {
		if t.counts[ticket] < 0 {
			return ticket, true
		}
	}
	return 0, false
}
