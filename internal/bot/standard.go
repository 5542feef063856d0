package bot

import (
	"spades-game/internal/shared"
	"spades-game/internal/spades"
)

// StandardBot is a heuristic policy, not an optimal strategy: it counts
// high cards to bid, leads cheap, and follows with the cheapest winner.
type StandardBot struct{}

// SuggestBid counts high cards in half-points: high spades (J..A) are a
// full point, middle spades (8..10) and off-suit aces half a point. The
// rounded total is clamped to [0, len(hand)].
func (b *StandardBot) SuggestBid(hand []shared.Card) int {
	halves := 0
	for _, c := range hand {
		switch {
		case c.IsTrump() && c.Rank >= shared.Jack:
			halves += 2
		case c.IsTrump() && c.Rank >= shared.Eight:
			halves++
		case c.Rank == shared.Ace:
			halves++
		}
	}
	bid := (halves + 1) / 2 // round half up
	if bid > len(hand) {
		bid = len(hand)
	}
	return bid
}

// SuggestPlay picks a card the engine will accept for the seat. When
// leading it prefers the lowest non-spade; when following it prefers the
// cheapest card that beats the play currently winning the trick, and
// discards the lowest legal card when it cannot win. Returns false when
// the seat has no legal card, which only happens out of turn.
func (b *StandardBot) SuggestPlay(e *spades.Engine, seat shared.SeatIndex) (shared.Card, bool) {
	var legal []shared.Card
	for _, c := range e.Hand(seat) {
		if e.LegalPlay(seat, c) == nil {
			legal = append(legal, c)
		}
	}
	if len(legal) == 0 {
		return shared.Card{}, false
	}

	plays, ledSuit := e.CurrentTrick()
	if len(plays) == 0 {
		if c, ok := lowest(legal, func(c shared.Card) bool { return !c.IsTrump() }); ok {
			return c, true
		}
		c, _ := lowest(legal, nil)
		return c, true
	}

	trick := &shared.Trick{Cards: plays, LedSuit: ledSuit, Winner: shared.NoWinner}
	winning, _ := trick.WinningPlay()

	if c, ok := lowest(legal, func(c shared.Card) bool { return beats(c, winning.Card, ledSuit) }); ok {
		return c, true
	}
	c, _ := lowest(legal, nil)
	return c, true
}

// beats reports whether playing card would take the trick from the play
// currently winning it.
func beats(card, winning shared.Card, ledSuit shared.Suit) bool {
	if card.IsTrump() {
		if winning.IsTrump() {
			return card.Rank > winning.Rank
		}
		return true
	}
	if winning.IsTrump() {
		return false
	}
	return card.Suit == ledSuit && card.Rank > winning.Rank
}

// lowest returns the lowest-ranked card satisfying keep (nil keeps all).
// Rank ties across suits prefer the non-spade so trump is spent last.
func lowest(cards []shared.Card, keep func(shared.Card) bool) (shared.Card, bool) {
	var best shared.Card
	found := false
	for _, c := range cards {
		if keep != nil && !keep(c) {
			continue
		}
		if !found || c.Rank < best.Rank || (c.Rank == best.Rank && best.IsTrump() && !c.IsTrump()) {
			best = c
			found = true
		}
	}
	return best, found
}
