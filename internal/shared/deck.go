package shared

import (
	"math/rand/v2"
	"sort"
)

// DeckSize is the number of cards in a full deck.
const DeckSize = 52

// Deck represents a collection of cards.
type Deck struct {
	Cards []Card
}

// NewDeck creates a standard 52-card deck in suit-then-rank order.
func NewDeck() *Deck {
	cards := make([]Card, 0, DeckSize)
	for _, suit := range Suits {
		for _, rank := range Ranks {
			cards = append(cards, Card{Suit: suit, Rank: rank})
		}
	}
	return &Deck{Cards: cards}
}

// Shuffle randomizes the order of cards in the deck.
func (d *Deck) Shuffle() {
	rand.Shuffle(len(d.Cards), func(i, j int) {
		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	})
}

// Deal distributes the entire deck into numHands equal hands and empties
// the deck. Each hand is sorted for display. Returns nil if the deck does
// not split evenly.
func (d *Deck) Deal(numHands int) [][]Card {
	if numHands <= 0 || len(d.Cards)%numHands != 0 {
		return nil
	}
	perHand := len(d.Cards) / numHands

	dealt := make([][]Card, numHands)
	for i := 0; i < numHands; i++ {
		hand := make([]Card, perHand)
		copy(hand, d.Cards[i*perHand:(i+1)*perHand])
		sort.Slice(hand, func(a, b int) bool { return DisplayLess(hand[a], hand[b]) })
		dealt[i] = hand
	}

	d.Cards = nil
	return dealt
}
