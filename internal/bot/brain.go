package bot

import (
	"spades-game/internal/shared"
	"spades-game/internal/spades"
)

// Brain is the interface all automated-seat strategies implement. The
// brain only chooses an action; submitting it to the engine is the
// caller's job, so a rejected suggestion never corrupts game state.
type Brain interface {
	// SuggestBid estimates a bid for the hand during the Bid phase.
	SuggestBid(hand []shared.Card) int

	// SuggestPlay chooses a legal card for the seat during the Play phase.
	SuggestPlay(e *spades.Engine, seat shared.SeatIndex) (shared.Card, bool)
}

// New returns the default strategy.
func New() Brain {
	return &StandardBot{}
}
