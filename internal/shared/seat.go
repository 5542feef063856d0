package shared

// SeatCount is the number of positions at the table.
const SeatCount = 4

// SeatIndex identifies one of the four fixed positions around the table:
// 0=North, 1=East, 2=South, 3=West. Seats 0 and 2 form one partnership,
// seats 1 and 3 the other.
type SeatIndex int

var seatNames = [SeatCount]string{"North", "East", "South", "West"}

func (s SeatIndex) String() string {
	if s < 0 || s >= SeatCount {
		return "?"
	}
	return seatNames[s]
}

// Next returns the seat that acts after s in turn order.
func (s SeatIndex) Next() SeatIndex {
	return (s + 1) % SeatCount
}

// Team returns the partnership index (0 or 1) the seat belongs to.
func (s SeatIndex) Team() int {
	return int(s) % 2
}

// Partner returns the seat sitting opposite s.
func (s SeatIndex) Partner() SeatIndex {
	return (s + 2) % SeatCount
}

// Seat holds the per-position state for one round: the hand, the recorded
// bid and the running count of tricks won.
type Seat struct {
	Index  SeatIndex `json:"index"`
	Name   string    `json:"name"`
	Hand   []Card    `json:"hand"`
	Bid    int       `json:"bid"`
	HasBid bool      `json:"has_bid"`
	Tricks int       `json:"tricks"`
}

// NewSeat creates a seat with the default positional name.
func NewSeat(index SeatIndex) *Seat {
	return &Seat{Index: index, Name: index.String()}
}

// ResetForRound clears the per-round counters ahead of a new deal.
func (s *Seat) ResetForRound(hand []Card) {
	s.Hand = hand
	s.Bid = 0
	s.HasBid = false
	s.Tricks = 0
}

// HasCard reports whether the card is currently in the seat's hand.
func (s *Seat) HasCard(card Card) bool {
	for _, c := range s.Hand {
		if c == card {
			return true
		}
	}
	return false
}

// RemoveCard removes the card from the hand. Returns false if absent.
func (s *Seat) RemoveCard(card Card) bool {
	for i, c := range s.Hand {
		if c == card {
			s.Hand = append(s.Hand[:i], s.Hand[i+1:]...)
			return true
		}
	}
	return false
}

// HasSuit reports whether the hand contains at least one card of the suit.
func (s *Seat) HasSuit(suit Suit) bool {
	for _, c := range s.Hand {
		if c.Suit == suit {
			return true
		}
	}
	return false
}

// HasNonTrump reports whether the hand contains any card outside the
// trump suit.
func (s *Seat) HasNonTrump() bool {
	for _, c := range s.Hand {
		if !c.IsTrump() {
			return true
		}
	}
	return false
}
