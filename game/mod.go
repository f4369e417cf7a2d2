package game

// Ticket is a kind of ticket held by a player.
type Ticket int

const (
	Taxi Ticket = iota
	Bus
	Underground
	Double
	Secret
)

const numTickets = int(Secret) + 1

// AllTickets lists every ticket kind in a stable order.
var AllTickets = []Ticket{Taxi, Bus, Underground, Double, Secret}

func (t Ticket) String() string {
	switch t {
	case Taxi:
		return "Taxi"
	case Bus:
		return "Bus"
	case Underground:
		return "Underground"
	case Double:
		return "Double"
	case Secret:
		return "Secret"
	default:
		return "Unknown"
	}
}

func (t Ticket) valid() bool {
	return t >= Taxi && t <= Secret
}

// Transport is the mode of travel along an edge of the board.
type Transport int

const (
	TaxiRoute Transport = iota
	BusRoute
	UndergroundRoute
	Ferry
)

// RequiredTicket returns the ticket needed to travel by this transport.
// Ferries can only be taken with a secret ticket.
func (t Transport) RequiredTicket() Ticket {
	switch t {
	case TaxiRoute:
		return Taxi
	case BusRoute:
		return Bus
	case UndergroundRoute:
		return Underground
	default:
		return Secret
	}
}

func (t Transport) String() string {
	switch t {
	case TaxiRoute:
		return "Taxi"
	case BusRoute:
		return "Bus"
	case UndergroundRoute:
		return "Underground"
	case Ferry:
		return "Ferry"
	default:
		return "Unknown"
	}
}

// Piece identifies a player on the board. Pieces are plain values so two
// pieces are the same player exactly when they compare equal.
type Piece int

const (
	MrX Piece = iota
	Red
	Green
	Blue
	White
	Yellow
)

// DetectivePieces lists every detective identity in turn order.
var DetectivePieces = []Piece{Red, Green, Blue, White, Yellow}

func (p Piece) IsMrX() bool {
	return p == MrX
}

func (p Piece) IsDetective() bool {
	return p >= Red && p <= Yellow
}

// WebColour is the colour the piece is drawn with.
func (p Piece) WebColour() string {
	switch p {
	case MrX:
		return "#000"
	case Red:
		return "#f00"
	case Green:
		return "#0f0"
	case Blue:
		return "#00f"
	case White:
		return "#fff"
	case Yellow:
		return "#ff0"
	default:
		return ""
	}
}

func (p Piece) String() string {
	switch p {
	case MrX:
		return "MrX"
	case Red:
		return "Red"
	case Green:
		return "Green"
	case Blue:
		return "Blue"
	case White:
		return "White"
	case Yellow:
		return "Yellow"
	default:
		return "Unknown"
	}
}
