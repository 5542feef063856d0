package database

// GameRecord is one finished game as stored in sqlite. Seats are recorded
// by position; North/South form team 1, East/West team 2.
type GameRecord struct {
	ID          string `json:"id"`
	CreatedAt   string `json:"created_at"`
	North       string `json:"north"`
	East        string `json:"east"`
	South       string `json:"south"`
	West        string `json:"west"`
	Team1Score  int    `json:"team1_score"`
	Team2Score  int    `json:"team2_score"`
	WinningTeam int    `json:"winning_team"`
	Rounds      int    `json:"rounds"`
}
