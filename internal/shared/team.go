package shared

import "github.com/google/uuid"

// Team represents one of the two fixed partnerships: seats 0+2 form team
// index 0 (North/South), seats 1+3 form team index 1 (East/West). Score
// and Bags accumulate across rounds for the lifetime of one game.
type Team struct {
	ID    string       `json:"id"`
	Index int          `json:"-"`
	Seats [2]SeatIndex `json:"seats"`

	// Per-round aggregates: the sum of the two seats' bids and tricks.
	Bid    int `json:"bid"`
	Tricks int `json:"tricks"`

	// Cumulative across rounds for the lifetime of one game.
	Score int `json:"score"`
	Bags  int `json:"bags"`
}

// NewTeam creates a partnership with a fresh UUID.
func NewTeam(index int, a, b SeatIndex) *Team {
	return &Team{
		ID:    uuid.NewString(),
		Index: index,
		Seats: [2]SeatIndex{a, b},
	}
}

// Name returns the conventional partnership label, e.g. "North/South".
func (t *Team) Name() string {
	return t.Seats[0].String() + "/" + t.Seats[1].String()
}

// ResetForRound clears the per-round aggregates ahead of a new deal.
func (t *Team) ResetForRound() {
	t.Bid = 0
	t.Tricks = 0
}

// AddScore adds points (possibly negative) to the cumulative score.
func (t *Team) AddScore(points int) {
	t.Score += points
}
