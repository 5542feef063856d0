package spades

import "spades-game/internal/shared"

// snapshotLogLines is how many trailing log lines a snapshot carries.
const snapshotLogLines = 5

// SeatSnapshot is the rendered view of one seat.
type SeatSnapshot struct {
	Index  shared.SeatIndex `json:"index"`
	Name   string           `json:"name"`
	Hand   []shared.Card    `json:"hand"`
	Bid    int              `json:"bid"`
	HasBid bool             `json:"has_bid"`
	Tricks int              `json:"tricks"`
}

// TeamSnapshot is the rendered view of one partnership.
type TeamSnapshot struct {
	Name   string `json:"name"`
	Bid    int    `json:"bid"`
	Tricks int    `json:"tricks"`
	Score  int    `json:"score"`
	Bags   int    `json:"bags"`
}

// Snapshot is a full copy of the observable game state, safe to hold
// after further engine mutations.
type Snapshot struct {
	Phase        Phase                            `json:"phase"`
	Round        int                              `json:"round"`
	Dealer       shared.SeatIndex                 `json:"dealer"`
	Turn         shared.SeatIndex                 `json:"turn"`
	Seats        [shared.SeatCount]SeatSnapshot   `json:"seats"`
	Teams        [2]TeamSnapshot                  `json:"teams"`
	Trick        []shared.PlayedCard              `json:"trick"`
	LedSuit      shared.Suit                      `json:"led_suit,omitempty"`
	SpadesBroken bool                             `json:"spades_broken"`
	Winner       int                              `json:"winner"`
	Log          []string                         `json:"log"`
}

// Snapshot returns a copy of the current state for rendering.
func (e *Engine) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:        e.phase,
		Round:        e.round,
		Dealer:       e.dealer,
		Turn:         e.turn,
		SpadesBroken: e.spadesBroken,
		Winner:       e.winner,
		Log:          e.RecentLog(snapshotLogLines),
	}
	for i, s := range e.seats {
		snap.Seats[i] = SeatSnapshot{
			Index:  s.Index,
			Name:   s.Name,
			Hand:   e.Hand(s.Index),
			Bid:    s.Bid,
			HasBid: s.HasBid,
			Tricks: s.Tricks,
		}
	}
	for i, t := range e.teams {
		snap.Teams[i] = TeamSnapshot{
			Name:   t.Name(),
			Bid:    t.Bid,
			Tricks: t.Tricks,
			Score:  t.Score,
			Bags:   t.Bags,
		}
	}
	snap.Trick, snap.LedSuit = e.CurrentTrick()
	return snap
}
