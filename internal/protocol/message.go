package protocol

import (
	"encoding/json"

	"spades-game/internal/shared"
	"spades-game/internal/spades"
)

// Message represents a generic WebSocket message structure.
type Message struct {
	Type    string          `json:"type"`              // e.g. "join_game", "submit_bid", "play_card"
	Payload json.RawMessage `json:"payload,omitempty"` // raw JSON payload, allows flexible structures
}

// --- Client -> Server payloads ---

type CreateGamePayload struct {
	Name string `json:"name"`
}

type JoinGamePayload struct {
	Name     string `json:"name"`
	GameCode string `json:"game_code"`
}

// StartGamePayload is sent by the lobby creator; seats without a human
// are filled with automated players.
type StartGamePayload struct{}

type SubmitBidPayload struct {
	Bid int `json:"bid"`
}

type PlayCardPayload struct {
	Suit shared.Suit `json:"suit"`
	Rank shared.Rank `json:"rank"`
}

// --- Server -> Client payloads ---

type GameCreatedPayload struct {
	GameCode string `json:"game_code"`
}

type JoinErrorPayload struct {
	Message string `json:"message"`
}

type PlayerInfo struct {
	ID   string           `json:"id,omitempty"`
	Name string           `json:"name"`
	Seat shared.SeatIndex `json:"seat"`
	Bot  bool             `json:"bot"`
}

type LobbyUpdatePayload struct {
	Players []PlayerInfo `json:"players"`
}

type GameStartPayload struct {
	GameID       string       `json:"game_id"`
	Players      []PlayerInfo `json:"players"`
	WinningScore int          `json:"winning_score"`
}

type DealHandPayload struct {
	Round int           `json:"round"`
	Hand  []shared.Card `json:"hand"`
}

type BidRecordedPayload struct {
	Seat shared.SeatIndex `json:"seat"`
	Name string           `json:"name"`
	Bid  int              `json:"bid"`
}

type CardPlayedPayload struct {
	Seat shared.SeatIndex `json:"seat"`
	Name string           `json:"name"`
	Card shared.Card      `json:"card"`
}

type YourTurnPayload struct {
	Seat  shared.SeatIndex `json:"seat"`
	Phase spades.Phase     `json:"phase"`
}

// GameStatePayload carries the full public snapshot; hands other than the
// recipient's own are stripped before sending.
type GameStatePayload struct {
	State spades.Snapshot `json:"state"`
}

type TrickEndPayload struct {
	Winner     shared.SeatIndex    `json:"winner"`
	WinnerName string              `json:"winner_name"`
	Cards      []shared.PlayedCard `json:"cards"`
}

type RoundEndPayload struct {
	Result spades.RoundResult `json:"result"`
}

type GameOverPayload struct {
	Result   spades.GameResult `json:"result"`
	TeamName string            `json:"team_name"`
	Forfeit  bool              `json:"forfeit"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}

type PlayerLeftPayload struct {
	PlayerID string `json:"player_id"`
}

// NewMessage builds the JSON wire form of a message.
func NewMessage(msgType string, payload interface{}) ([]byte, error) {
	if payload == nil {
		return json.Marshal(Message{Type: msgType})
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Message{
		Type:    msgType,
		Payload: payloadBytes,
	})
}
