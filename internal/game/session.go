package game

import (
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"

	"spades-game/internal/bot"
	"spades-game/internal/database"
	"spades-game/internal/protocol"
	"spades-game/internal/shared"
	"spades-game/internal/spades"

	"github.com/google/uuid"
)

// MessageSender defines the function signature for sending messages back
// to clients. The Hub provides an implementation of this.
type MessageSender func(clientID string, message []byte)

// ResultStore persists finished games. *database.Service satisfies it.
type ResultStore interface {
	Insert(database.GameRecord) error
}

// Occupant describes who controls a seat: a connected human client, or
// an automated brain when Brain is non-nil.
type Occupant struct {
	ClientID string
	Name     string
	Brain    bot.Brain
}

// Session glues one engine, its four seat occupants and the transport
// together for the lifetime of a match. All engine access goes through
// the session mutex, so the engine sees one input at a time.
type Session struct {
	ID        string
	engine    *spades.Engine
	occupants [shared.SeatCount]Occupant
	store     ResultStore
	botDelay  time.Duration

	mu             sync.Mutex
	send           MessageSender
	finished       bool
	botRunning     bool
	lastDealtRound int
}

// NewSession creates a match for the given occupants. A winningScore of 0
// selects the engine default. store may be nil to skip persistence.
func NewSession(occupants [shared.SeatCount]Occupant, winningScore int, store ResultStore, botDelay time.Duration) *Session {
	s := &Session{
		ID:             uuid.NewString(),
		engine:         spades.NewEngine(winningScore),
		occupants:      occupants,
		store:          store,
		botDelay:       botDelay,
		lastDealtRound: -1,
	}
	for i, occ := range occupants {
		s.engine.SetSeatName(shared.SeatIndex(i), occ.Name)
	}
	s.engine.SetObserver(s)
	return s
}

// Start announces the match and kicks off the first bidding round. It is
// called once by the Hub, in a goroutine.
func (s *Session) Start(sender MessageSender) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.send = sender
	log.Printf("Session %s: starting game.", s.ID)

	players := make([]protocol.PlayerInfo, shared.SeatCount)
	for i, occ := range s.occupants {
		players[i] = protocol.PlayerInfo{
			ID:   occ.ClientID,
			Name: occ.Name,
			Seat: shared.SeatIndex(i),
			Bot:  occ.Brain != nil,
		}
	}
	startMsg, _ := protocol.NewMessage("game_start", protocol.GameStartPayload{
		GameID:       s.ID,
		Players:      players,
		WinningScore: s.engine.WinningScore(),
	})
	s.broadcast(startMsg)

	s.afterActionLocked()
}

// HandleAction processes an incoming action from a human client.
func (s *Session) HandleAction(clientID string, msg protocol.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.finished || s.engine.Phase() == spades.PhaseGameOver {
		s.sendErrorTo(clientID, "Game is already over.")
		return
	}

	seat, ok := s.seatOf(clientID)
	if !ok {
		log.Printf("Session %s: action from unknown client %s", s.ID, clientID)
		return
	}

	switch msg.Type {
	case "submit_bid":
		var payload protocol.SubmitBidPayload
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			s.sendErrorTo(clientID, "Invalid submit_bid message.")
			return
		}
		if err := s.engine.SubmitBid(seat, payload.Bid); err != nil {
			s.sendErrorTo(clientID, rejectionMessage(err))
			return
		}
		s.broadcastBid(seat, payload.Bid)

	case "play_card":
		var payload protocol.PlayCardPayload
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			s.sendErrorTo(clientID, "Invalid play_card message.")
			return
		}
		card := shared.Card{Suit: payload.Suit, Rank: payload.Rank}
		if err := s.engine.PlayCard(seat, card); err != nil {
			s.sendErrorTo(clientID, rejectionMessage(err))
			return
		}
		s.broadcastPlay(seat, card)

	default:
		log.Printf("Session %s: unhandled action type '%s' from %s", s.ID, msg.Type, clientID)
		return
	}

	s.afterActionLocked()
}

// HandleDisconnect forfeits the match when a human leaves mid-game.
func (s *Session) HandleDisconnect(clientID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.finished || s.engine.Phase() == spades.PhaseGameOver {
		return
	}
	seat, ok := s.seatOf(clientID)
	if !ok {
		return
	}

	log.Printf("Session %s: %s (%s) disconnected, forfeiting.", s.ID, clientID, s.occupants[seat].Name)
	s.finished = true

	leftMsg, _ := protocol.NewMessage("player_left", protocol.PlayerLeftPayload{PlayerID: clientID})
	s.broadcast(leftMsg)

	winner := 1 - seat.Team()
	snap := s.engine.Snapshot()
	result := spades.GameResult{
		WinningTeam: winner,
		Scores:      [2]int{snap.Teams[0].Score, snap.Teams[1].Score},
		Rounds:      snap.Round + 1,
	}
	overMsg, _ := protocol.NewMessage("game_over", protocol.GameOverPayload{
		Result:   result,
		TeamName: snap.Teams[winner].Name,
		Forfeit:  true,
	})
	s.broadcast(overMsg)
	s.persist(result)
}

// Finished reports whether the match has ended (win or forfeit).
func (s *Session) Finished() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.finished || s.engine.Phase() == spades.PhaseGameOver
}

// --- Engine observer callbacks (invoked with the session lock held) ---

// TrickResolved broadcasts the trick outcome.
func (s *Session) TrickResolved(tr spades.TrickResult) {
	msg, _ := protocol.NewMessage("trick_end", protocol.TrickEndPayload{
		Winner:     tr.Winner,
		WinnerName: s.engine.SeatName(tr.Winner),
		Cards:      tr.Cards,
	})
	s.broadcast(msg)
}

// RoundScored broadcasts the round scoring.
func (s *Session) RoundScored(rr spades.RoundResult) {
	msg, _ := protocol.NewMessage("round_end", protocol.RoundEndPayload{Result: rr})
	s.broadcast(msg)
}

// GameWon broadcasts the final result and persists it.
func (s *Session) GameWon(gr spades.GameResult) {
	snap := s.engine.Snapshot()
	msg, _ := protocol.NewMessage("game_over", protocol.GameOverPayload{
		Result:   gr,
		TeamName: snap.Teams[gr.WinningTeam].Name,
	})
	s.broadcast(msg)
	s.persist(gr)
}

// --- Internals (assume lock is held) ---

// afterActionLocked brings clients up to date after an accepted engine
// mutation: deals of a new round, the public state, and whose turn it is.
// When an automated seat is due it starts the bot loop.
func (s *Session) afterActionLocked() {
	phase := s.engine.Phase()

	if phase == spades.PhaseBid && s.engine.Round() != s.lastDealtRound {
		s.lastDealtRound = s.engine.Round()
		for i, occ := range s.occupants {
			if occ.ClientID == "" {
				continue
			}
			dealMsg, _ := protocol.NewMessage("deal_hand", protocol.DealHandPayload{
				Round: s.lastDealtRound + 1,
				Hand:  s.engine.Hand(shared.SeatIndex(i)),
			})
			s.sendTo(occ.ClientID, dealMsg)
		}
	}

	s.broadcastState()

	if phase != spades.PhaseBid && phase != spades.PhasePlay {
		return
	}

	turn := s.engine.Turn()
	if s.occupants[turn].Brain == nil {
		turnMsg, _ := protocol.NewMessage("your_turn", protocol.YourTurnPayload{
			Seat:  turn,
			Phase: phase,
		})
		s.sendTo(s.occupants[turn].ClientID, turnMsg)
		return
	}

	if !s.botRunning {
		s.botRunning = true
		go s.runBots()
	}
}

// runBots plays automated seats until a human is due or the game ends.
// The delay between moves is presentational pacing only.
func (s *Session) runBots() {
	for {
		time.Sleep(s.botDelay)

		s.mu.Lock()
		phase := s.engine.Phase()
		if s.finished || (phase != spades.PhaseBid && phase != spades.PhasePlay) {
			s.botRunning = false
			s.mu.Unlock()
			return
		}

		seat := s.engine.Turn()
		brain := s.occupants[seat].Brain
		if brain == nil {
			s.botRunning = false
			s.mu.Unlock()
			return
		}

		switch phase {
		case spades.PhaseBid:
			bid := brain.SuggestBid(s.engine.Hand(seat))
			if err := s.engine.SubmitBid(seat, bid); err != nil {
				log.Printf("Session %s: bot bid rejected for seat %s: %v", s.ID, seat, err)
				s.botRunning = false
				s.mu.Unlock()
				return
			}
			s.broadcastBid(seat, bid)

		case spades.PhasePlay:
			card, ok := brain.SuggestPlay(s.engine, seat)
			if !ok {
				log.Printf("Session %s: bot found no legal play for seat %s", s.ID, seat)
				s.botRunning = false
				s.mu.Unlock()
				return
			}
			if err := s.engine.PlayCard(seat, card); err != nil {
				log.Printf("Session %s: bot play %s rejected for seat %s: %v", s.ID, card, seat, err)
				s.botRunning = false
				s.mu.Unlock()
				return
			}
			s.broadcastPlay(seat, card)
		}

		s.afterActionLocked()
		s.mu.Unlock()
	}
}

func (s *Session) broadcastBid(seat shared.SeatIndex, bid int) {
	msg, _ := protocol.NewMessage("bid_recorded", protocol.BidRecordedPayload{
		Seat: seat,
		Name: s.occupants[seat].Name,
		Bid:  bid,
	})
	s.broadcast(msg)
}

func (s *Session) broadcastPlay(seat shared.SeatIndex, card shared.Card) {
	msg, _ := protocol.NewMessage("card_played", protocol.CardPlayedPayload{
		Seat: seat,
		Name: s.occupants[seat].Name,
		Card: card,
	})
	s.broadcast(msg)
}

// broadcastState sends each human a snapshot with every hand but their
// own stripped out.
func (s *Session) broadcastState() {
	snap := s.engine.Snapshot()
	for i, occ := range s.occupants {
		if occ.ClientID == "" {
			continue
		}
		view := snap
		for j := range view.Seats {
			if j != i {
				view.Seats[j].Hand = nil
			}
		}
		msg, err := protocol.NewMessage("game_state_update", protocol.GameStatePayload{State: view})
		if err != nil {
			log.Printf("Session %s: error building state update: %v", s.ID, err)
			return
		}
		s.sendTo(occ.ClientID, msg)
	}
}

func (s *Session) seatOf(clientID string) (shared.SeatIndex, bool) {
	for i, occ := range s.occupants {
		if occ.ClientID != "" && occ.ClientID == clientID {
			return shared.SeatIndex(i), true
		}
	}
	return 0, false
}

func (s *Session) broadcast(message []byte) {
	if s.send == nil {
		return
	}
	for _, occ := range s.occupants {
		if occ.ClientID != "" {
			s.send(occ.ClientID, message)
		}
	}
}

func (s *Session) sendTo(clientID string, message []byte) {
	if s.send == nil || clientID == "" {
		return
	}
	s.send(clientID, message)
}

func (s *Session) sendErrorTo(clientID string, errorMsg string) {
	msg, err := protocol.NewMessage("error", protocol.ErrorPayload{Message: errorMsg})
	if err != nil {
		log.Printf("Session %s: error building error message: %v", s.ID, err)
		return
	}
	s.sendTo(clientID, msg)
}

func (s *Session) persist(gr spades.GameResult) {
	if s.store == nil {
		return
	}
	rec := database.GameRecord{
		ID:          s.ID,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
		North:       s.occupants[0].Name,
		East:        s.occupants[1].Name,
		South:       s.occupants[2].Name,
		West:        s.occupants[3].Name,
		Team1Score:  gr.Scores[0],
		Team2Score:  gr.Scores[1],
		WinningTeam: gr.WinningTeam + 1,
		Rounds:      gr.Rounds,
	}
	if err := s.store.Insert(rec); err != nil {
		log.Printf("Session %s: failed to save result: %v", s.ID, err)
	}
}

// rejectionMessage maps engine rule violations to user-facing text.
func rejectionMessage(err error) string {
	switch {
	case errors.Is(err, spades.ErrWrongPhase):
		return "You can't do that right now."
	case errors.Is(err, spades.ErrOutOfTurn):
		return "Not your turn."
	case errors.Is(err, spades.ErrBidOutOfRange):
		return "Bid must be between 0 and 13."
	case errors.Is(err, spades.ErrCardNotInHand):
		return "Card not in your hand."
	case errors.Is(err, spades.ErrMustFollowSuit):
		return "You must follow the led suit."
	case errors.Is(err, spades.ErrSpadesNotBroken):
		return "Spades haven't been broken yet."
	}
	return "Invalid move."
}
