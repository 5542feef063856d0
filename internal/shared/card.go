package shared

import "fmt"

// Suit represents the suit of a card.
type Suit string

const (
	Spades   Suit = "Spades"
	Hearts   Suit = "Hearts"
	Diamonds Suit = "Diamonds"
	Clubs    Suit = "Clubs"
)

// Suits lists all four suits in display order (spades first).
var Suits = []Suit{Spades, Hearts, Diamonds, Clubs}

// Symbol returns the one-character glyph for the suit, used in log lines.
func (s Suit) Symbol() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	}
	return "?"
}

// Rank represents the rank of a card. Values run 2..14 so that ranks
// compare directly (2=2 ... J=11, Q=12, K=13, A=14).
type Rank int

const (
	Two   Rank = 2
	Three Rank = 3
	Four  Rank = 4
	Five  Rank = 5
	Six   Rank = 6
	Seven Rank = 7
	Eight Rank = 8
	Nine  Rank = 9
	Ten   Rank = 10
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
	Ace   Rank = 14
)

// Ranks lists all thirteen ranks in ascending order.
var Ranks = []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

func (r Rank) String() string {
	switch r {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	}
	return fmt.Sprintf("%d", int(r))
}

// Card represents a single playing card. Cards are immutable values;
// equality of two Cards is plain struct equality.
type Card struct {
	Suit Suit `json:"suit"`
	Rank Rank `json:"rank"`
}

// IsTrump reports whether the card belongs to the trump suit. Trump is
// fixed to spades for the whole game.
func (c Card) IsTrump() bool {
	return c.Suit == Spades
}

// String renders the card the way the game log prints it, e.g. "A♠".
func (c Card) String() string {
	return c.Rank.String() + c.Suit.Symbol()
}

// suitGroup orders suits for hand display: spades, hearts, diamonds, clubs.
func suitGroup(s Suit) int {
	switch s {
	case Spades:
		return 0
	case Hearts:
		return 1
	case Diamonds:
		return 2
	case Clubs:
		return 3
	}
	return 4
}

// DisplayLess orders cards by suit group, then by descending rank. The
// order is presentational only and carries no rule significance.
func DisplayLess(a, b Card) bool {
	if ga, gb := suitGroup(a.Suit), suitGroup(b.Suit); ga != gb {
		return ga < gb
	}
	return a.Rank > b.Rank
}
