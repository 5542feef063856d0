package shared

// PlayedCard stores a card along with the seat that played it.
type PlayedCard struct {
	Card Card      `json:"card"`
	Seat SeatIndex `json:"seat"`
}

// NoWinner marks a trick whose winner has not been determined yet.
const NoWinner SeatIndex = -1

// Trick represents one sub-round in which each seat plays exactly one card.
type Trick struct {
	Cards   []PlayedCard `json:"cards"`
	Leader  SeatIndex    `json:"leader"`
	LedSuit Suit         `json:"led_suit"`
	Winner  SeatIndex    `json:"winner"`
}

// NewTrick creates an empty trick led by the given seat.
func NewTrick(leader SeatIndex) *Trick {
	return &Trick{
		Cards:  []PlayedCard{},
		Leader: leader,
		Winner: NoWinner,
	}
}

// AddCard appends a card to the trick. The first card fixes the led suit.
func (t *Trick) AddCard(card Card, seat SeatIndex) {
	if len(t.Cards) == 0 {
		t.LedSuit = card.Suit
	}
	t.Cards = append(t.Cards, PlayedCard{Card: card, Seat: seat})
}

// Complete reports whether every seat has contributed a card.
func (t *Trick) Complete() bool {
	return len(t.Cards) == SeatCount
}

// WinningPlay returns the card currently winning the trick: the highest
// trump if any trump has been played, otherwise the highest card of the
// led suit. Cards of other suits never win regardless of rank. The result
// depends only on the led suit and the played cards, not on their order.
func (t *Trick) WinningPlay() (PlayedCard, bool) {
	if len(t.Cards) == 0 {
		return PlayedCard{}, false
	}

	var best PlayedCard
	found := false
	for _, pc := range t.Cards {
		if !pc.Card.IsTrump() {
			continue
		}
		if !found || pc.Card.Rank > best.Card.Rank {
			best = pc
			found = true
		}
	}
	if found {
		return best, true
	}

	for _, pc := range t.Cards {
		if pc.Card.Suit != t.LedSuit {
			continue
		}
		if !found || pc.Card.Rank > best.Card.Rank {
			best = pc
			found = true
		}
	}
	return best, found
}

// DetermineWinner resolves a complete trick, records the winning seat and
// returns it.
func (t *Trick) DetermineWinner() SeatIndex {
	winner, ok := t.WinningPlay()
	if !ok {
		return NoWinner
	}
	t.Winner = winner.Seat
	return t.Winner
}
