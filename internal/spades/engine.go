package spades

import (
	"fmt"

	"spades-game/internal/shared"
)

// Phase represents the current phase of the round state machine.
// Deal and Score are internal: dealing auto-advances into Bid, and
// scoring auto-advances into the next Deal or the terminal GameOver.
type Phase string

const (
	PhaseDeal     Phase = "Deal"
	PhaseBid      Phase = "Bid"
	PhasePlay     Phase = "Play"
	PhaseScore    Phase = "Score"
	PhaseGameOver Phase = "GameOver"
)

const (
	// CardsPerHand is the number of cards dealt to each seat.
	CardsPerHand = shared.DeckSize / shared.SeatCount

	// DefaultWinningScore ends the game when a team's cumulative score
	// reaches it.
	DefaultWinningScore = 500

	// Ten accumulated bags cost a flat penalty; the remainder carries.
	bagPenaltyThreshold = 10
	bagPenaltyPoints    = 100
)

// Engine enforces the rules of partnership Spades: dealing, bidding,
// legal-play validation, trick resolution and scoring, until one team
// reaches the winning score. It performs no I/O and is not safe for
// concurrent use; callers serialize access (see game.Session).
type Engine struct {
	seats        [shared.SeatCount]*shared.Seat
	teams        [2]*shared.Team
	phase        Phase
	round        int
	dealer       shared.SeatIndex
	turn         shared.SeatIndex
	trick        *shared.Trick
	tricksPlayed int
	spadesBroken bool
	winningScore int
	winner       int
	gameLog      []string
	observer     Observer
}

// NewEngine creates a game with zeroed team counters, deals the first
// round and leaves the engine in the Bid phase with the seat after the
// dealer due to act. A winningScore of 0 selects the default of 500.
func NewEngine(winningScore int) *Engine {
	if winningScore <= 0 {
		winningScore = DefaultWinningScore
	}
	e := &Engine{
		winningScore: winningScore,
		winner:       -1,
	}
	for i := range e.seats {
		e.seats[i] = shared.NewSeat(shared.SeatIndex(i))
	}
	e.teams[0] = shared.NewTeam(0, 0, 2)
	e.teams[1] = shared.NewTeam(1, 1, 3)

	e.startRound()
	return e
}

// SetObserver installs the scoring-event callback. Pass nil to disable.
func (e *Engine) SetObserver(o Observer) {
	e.observer = o
}

// SetSeatName overrides the default positional name for a seat.
func (e *Engine) SetSeatName(seat shared.SeatIndex, name string) {
	if seat < 0 || seat >= shared.SeatCount || name == "" {
		return
	}
	e.seats[seat].Name = name
}

// startRound deals a fresh shuffled deck and opens the bidding.
func (e *Engine) startRound() {
	e.phase = PhaseDeal

	deck := shared.NewDeck()
	deck.Shuffle()
	hands := deck.Deal(shared.SeatCount)

	for i, hand := range hands {
		e.seats[i].ResetForRound(hand)
	}
	for _, team := range e.teams {
		team.ResetForRound()
	}
	e.tricksPlayed = 0
	e.spadesBroken = false
	e.trick = nil

	e.turn = e.dealer.Next()
	e.logf("Round %d: dealer is %s.", e.round+1, e.seats[e.dealer].Name)
	e.phase = PhaseBid
}

// SetDealtHands replaces the dealt hands before any bid has been recorded.
// The four hands must partition the full 52-card deck. Intended for
// replaying known deals; normal games keep the shuffled deal.
func (e *Engine) SetDealtHands(hands [shared.SeatCount][]shared.Card) error {
	if e.phase != PhaseBid {
		return ErrWrongPhase
	}
	for _, s := range e.seats {
		if s.HasBid {
			return fmt.Errorf("cannot replace hands after bidding has started")
		}
	}

	seen := make(map[shared.Card]bool, shared.DeckSize)
	for i, hand := range hands {
		if len(hand) != CardsPerHand {
			return fmt.Errorf("seat %d: expected %d cards, got %d", i, CardsPerHand, len(hand))
		}
		for _, c := range hand {
			if seen[c] {
				return fmt.Errorf("duplicate card %s", c)
			}
			seen[c] = true
		}
	}
	if len(seen) != shared.DeckSize {
		return fmt.Errorf("expected %d unique cards, got %d", shared.DeckSize, len(seen))
	}

	for i, hand := range hands {
		cp := make([]shared.Card, len(hand))
		copy(cp, hand)
		e.seats[i].Hand = cp
	}
	return nil
}

// SubmitBid records a bid for the seat currently due to act. Rejections
// leave all state untouched.
func (e *Engine) SubmitBid(seat shared.SeatIndex, bid int) error {
	if e.phase != PhaseBid {
		return ErrWrongPhase
	}
	if seat != e.turn {
		return ErrOutOfTurn
	}
	if bid < 0 || bid > CardsPerHand {
		return ErrBidOutOfRange
	}

	s := e.seats[seat]
	s.Bid = bid
	s.HasBid = true
	e.logf("%s bids %d.", s.Name, bid)

	e.turn = e.turn.Next()

	for _, st := range e.seats {
		if !st.HasBid {
			return nil
		}
	}

	// All four bids are in: aggregate per team and open play.
	for _, team := range e.teams {
		team.Bid = e.seats[team.Seats[0]].Bid + e.seats[team.Seats[1]].Bid
	}
	e.logf("%s bid %d, %s bid %d.",
		e.teams[0].Name(), e.teams[0].Bid,
		e.teams[1].Name(), e.teams[1].Bid)

	e.phase = PhasePlay
	e.turn = e.dealer.Next()
	e.trick = shared.NewTrick(e.turn)
	return nil
}

// LegalPlay reports whether the seat may play the card right now,
// returning the same error PlayCard would. It never mutates state.
func (e *Engine) LegalPlay(seat shared.SeatIndex, card shared.Card) error {
	if e.phase != PhasePlay {
		return ErrWrongPhase
	}
	if seat != e.turn {
		return ErrOutOfTurn
	}
	s := e.seats[seat]
	if !s.HasCard(card) {
		return ErrCardNotInHand
	}

	if len(e.trick.Cards) == 0 {
		// Leading trump requires spades broken, unless the hand is all spades.
		if card.IsTrump() && !e.spadesBroken && s.HasNonTrump() {
			return ErrSpadesNotBroken
		}
		return nil
	}

	if card.Suit != e.trick.LedSuit && s.HasSuit(e.trick.LedSuit) {
		return ErrMustFollowSuit
	}
	return nil
}

// PlayCard plays a card for the seat currently due to act. The fourth
// card of a trick resolves it immediately; the thirteenth trick of the
// round triggers scoring. Rejections leave all state untouched.
func (e *Engine) PlayCard(seat shared.SeatIndex, card shared.Card) error {
	if err := e.LegalPlay(seat, card); err != nil {
		return err
	}

	s := e.seats[seat]
	s.RemoveCard(card)
	e.trick.AddCard(card, seat)
	if card.IsTrump() {
		e.spadesBroken = true
	}

	if e.trick.Complete() {
		e.resolveTrick()
	} else {
		e.turn = e.turn.Next()
	}
	return nil
}

// resolveTrick scores a complete trick and either opens the next one or
// ends the round.
func (e *Engine) resolveTrick() {
	winner := e.trick.DetermineWinner()
	e.seats[winner].Tricks++
	e.teams[winner.Team()].Tricks++
	e.logf("%s won the trick.", e.seats[winner].Name)

	e.tricksPlayed++
	if e.observer != nil {
		cards := make([]shared.PlayedCard, len(e.trick.Cards))
		copy(cards, e.trick.Cards)
		e.observer.TrickResolved(TrickResult{
			Round:  e.round + 1,
			Trick:  e.tricksPlayed,
			Winner: winner,
			Cards:  cards,
		})
	}
	if e.tricksPlayed == CardsPerHand {
		e.scoreRound()
		return
	}

	e.turn = winner
	e.trick = shared.NewTrick(winner)
}

// scoreRound applies the round's scoring to both teams, reports results
// to the observer, and either ends the game or deals the next round.
func (e *Engine) scoreRound() {
	e.phase = PhaseScore

	result := RoundResult{Round: e.round + 1}
	for i, team := range e.teams {
		tr := TeamRoundResult{Team: i, Bid: team.Bid, Tricks: team.Tricks}

		if team.Tricks >= team.Bid {
			tr.Bags = team.Tricks - team.Bid
			tr.Points = team.Bid*10 + tr.Bags
			team.Bags += tr.Bags
		} else {
			tr.Points = -team.Bid * 10
		}
		team.AddScore(tr.Points)

		if team.Bags >= bagPenaltyThreshold {
			team.AddScore(-bagPenaltyPoints)
			team.Bags -= bagPenaltyThreshold
			tr.BagPenalty = true
			e.logf("%s take the bag penalty: -%d points.", team.Name(), bagPenaltyPoints)
		}

		tr.Score = team.Score
		tr.TotalBags = team.Bags
		result.Teams[i] = tr
	}

	e.logf("Round %d end. %s: %d, %s: %d.",
		e.round+1,
		e.teams[0].Name(), e.teams[0].Score,
		e.teams[1].Name(), e.teams[1].Score)

	if e.observer != nil {
		e.observer.RoundScored(result)
	}

	for i, team := range e.teams {
		if team.Score >= e.winningScore {
			e.phase = PhaseGameOver
			e.winner = i
			e.logf("%s win the game, %d - %d.",
				team.Name(), e.teams[0].Score, e.teams[1].Score)
			if e.observer != nil {
				e.observer.GameWon(GameResult{
					WinningTeam: i,
					Scores:      [2]int{e.teams[0].Score, e.teams[1].Score},
					Rounds:      e.round + 1,
				})
			}
			return
		}
	}

	e.round++
	e.dealer = e.dealer.Next()
	e.startRound()
}

// logf appends a line to the append-only game log.
func (e *Engine) logf(format string, args ...any) {
	e.gameLog = append(e.gameLog, fmt.Sprintf(format, args...))
}

// --- Queries ---

// Phase returns the current phase.
func (e *Engine) Phase() Phase { return e.phase }

// Turn returns the seat currently due to act.
func (e *Engine) Turn() shared.SeatIndex { return e.turn }

// Dealer returns the current dealer.
func (e *Engine) Dealer() shared.SeatIndex { return e.dealer }

// Round returns the zero-based round counter.
func (e *Engine) Round() int { return e.round }

// SpadesBroken reports whether a spade has been played this round.
func (e *Engine) SpadesBroken() bool { return e.spadesBroken }

// Winner returns the winning team index, or -1 while the game is live.
func (e *Engine) Winner() int { return e.winner }

// WinningScore returns the score a team must reach to win.
func (e *Engine) WinningScore() int { return e.winningScore }

// SeatName returns the display name of a seat.
func (e *Engine) SeatName(seat shared.SeatIndex) string {
	if seat < 0 || seat >= shared.SeatCount {
		return ""
	}
	return e.seats[seat].Name
}

// Hand returns a copy of the seat's current hand.
func (e *Engine) Hand(seat shared.SeatIndex) []shared.Card {
	if seat < 0 || seat >= shared.SeatCount {
		return nil
	}
	hand := make([]shared.Card, len(e.seats[seat].Hand))
	copy(hand, e.seats[seat].Hand)
	return hand
}

// CurrentTrick returns a copy of the in-progress trick's plays and the
// led suit. The suit is empty while no card has been led.
func (e *Engine) CurrentTrick() ([]shared.PlayedCard, shared.Suit) {
	if e.trick == nil {
		return nil, ""
	}
	plays := make([]shared.PlayedCard, len(e.trick.Cards))
	copy(plays, e.trick.Cards)
	if len(plays) == 0 {
		return plays, ""
	}
	return plays, e.trick.LedSuit
}

// RecentLog returns the trailing n log lines. The log itself is unbounded;
// only the returned slice is capped.
func (e *Engine) RecentLog(n int) []string {
	if n <= 0 || len(e.gameLog) == 0 {
		return nil
	}
	start := len(e.gameLog) - n
	if start < 0 {
		start = 0
	}
	out := make([]string, len(e.gameLog)-start)
	copy(out, e.gameLog[start:])
	return out
}
