package spades

import "spades-game/internal/shared"

// TrickResult is emitted when the fourth card of a trick resolves it.
type TrickResult struct {
	Round  int                 `json:"round"`
	Trick  int                 `json:"trick"`
	Winner shared.SeatIndex    `json:"winner"`
	Cards  []shared.PlayedCard `json:"cards"`
}

// TeamRoundResult summarizes one partnership's outcome for a single round.
type TeamRoundResult struct {
	Team       int  `json:"team"`
	Bid        int  `json:"bid"`
	Tricks     int  `json:"tricks"`
	Points     int  `json:"points"`
	Bags       int  `json:"bags"`
	BagPenalty bool `json:"bag_penalty"`
	Score      int  `json:"score"`
	TotalBags  int  `json:"total_bags"`
}

// RoundResult is emitted after every scored round.
type RoundResult struct {
	Round int                `json:"round"`
	Teams [2]TeamRoundResult `json:"teams"`
}

// GameResult is emitted once when a partnership reaches the winning score.
type GameResult struct {
	WinningTeam int    `json:"winning_team"`
	Scores      [2]int `json:"scores"`
	Rounds      int    `json:"rounds"`
}

// Observer receives scoring events from the engine. The engine knows
// nothing about what the caller does with them (persistence, rewards,
// broadcasting); a nil observer is valid and disables the callbacks.
type Observer interface {
	TrickResolved(TrickResult)
	RoundScored(RoundResult)
	GameWon(GameResult)
}
