package bot

import (
	"testing"

	"spades-game/internal/shared"
	"spades-game/internal/spades"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func card(suit shared.Suit, rank shared.Rank) shared.Card {
	return shared.Card{Suit: suit, Rank: rank}
}

func TestSuggestBid(t *testing.T) {
	b := New()

	tt := []struct {
		name string
		hand []shared.Card
		want int
	}{
		{
			name: "three high spades bid three",
			hand: []shared.Card{
				card(shared.Spades, shared.Ace),
				card(shared.Spades, shared.King),
				card(shared.Spades, shared.Jack),
				card(shared.Hearts, shared.Two),
				card(shared.Clubs, shared.Five),
			},
			want: 3,
		},
		{
			name: "middle spades count half each",
			hand: []shared.Card{
				card(shared.Spades, shared.Eight),
				card(shared.Spades, shared.Nine),
				card(shared.Spades, shared.Ten),
				card(shared.Diamonds, shared.Four),
			},
			want: 2,
		},
		{
			name: "lone off-suit ace rounds up to one",
			hand: []shared.Card{
				card(shared.Hearts, shared.Ace),
				card(shared.Clubs, shared.Three),
				card(shared.Diamonds, shared.Six),
			},
			want: 1,
		},
		{
			name: "no honors bids zero",
			hand: []shared.Card{
				card(shared.Hearts, shared.Two),
				card(shared.Clubs, shared.Seven),
				card(shared.Diamonds, shared.King),
				card(shared.Spades, shared.Four),
			},
			want: 0,
		},
		{
			name: "low spades below eight are worthless",
			hand: []shared.Card{
				card(shared.Spades, shared.Two),
				card(shared.Spades, shared.Five),
				card(shared.Spades, shared.Seven),
			},
			want: 0,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, b.SuggestBid(tc.hand))
		})
	}
}

func TestSuggestBidNeverExceedsHandSize(t *testing.T) {
	b := New()

	// A short hand stuffed with honors still cannot bid more tricks than
	// it holds cards.
	hand := []shared.Card{
		card(shared.Spades, shared.Ace),
		card(shared.Spades, shared.King),
	}
	assert.Equal(t, 2, b.SuggestBid(hand))
	assert.Equal(t, 0, b.SuggestBid(nil))
}

func TestBeats(t *testing.T) {
	led := shared.Hearts

	tt := []struct {
		name    string
		card    shared.Card
		winning shared.Card
		want    bool
	}{
		{"higher in led suit wins", card(shared.Hearts, shared.King), card(shared.Hearts, shared.Ten), true},
		{"lower in led suit loses", card(shared.Hearts, shared.Three), card(shared.Hearts, shared.Ten), false},
		{"off-suit discard never wins", card(shared.Clubs, shared.Ace), card(shared.Hearts, shared.Two), false},
		{"any trump beats a plain card", card(shared.Spades, shared.Two), card(shared.Hearts, shared.Ace), true},
		{"higher trump beats lower trump", card(shared.Spades, shared.Nine), card(shared.Spades, shared.Five), true},
		{"lower trump loses to higher trump", card(shared.Spades, shared.Five), card(shared.Spades, shared.Nine), false},
		{"plain card never beats trump", card(shared.Hearts, shared.Ace), card(shared.Spades, shared.Two), false},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, beats(tc.card, tc.winning, led))
		})
	}
}

func TestLowestPrefersNonTrumpOnRankTies(t *testing.T) {
	cards := []shared.Card{
		card(shared.Spades, shared.Two),
		card(shared.Hearts, shared.Two),
		card(shared.Clubs, shared.Five),
	}

	got, ok := lowest(cards, nil)
	require.True(t, ok)
	assert.Equal(t, card(shared.Hearts, shared.Two), got)

	got, ok = lowest(cards, func(c shared.Card) bool { return c.IsTrump() })
	require.True(t, ok)
	assert.Equal(t, card(shared.Spades, shared.Two), got)

	_, ok = lowest(cards, func(shared.Card) bool { return false })
	assert.False(t, ok)
}

// riggedEngine builds a bidding-complete engine where North holds every
// spade, East holds hearts plus the ace of clubs, South holds diamonds
// plus a couple of hearts, and West holds clubs plus the ace of diamonds.
func riggedEngine(t *testing.T) *spades.Engine {
	t.Helper()

	var hands [shared.SeatCount][]shared.Card
	for r := shared.Two; r <= shared.Ace; r++ {
		hands[0] = append(hands[0], card(shared.Spades, r))
	}
	for r := shared.Three; r <= shared.Ace; r++ {
		hands[1] = append(hands[1], card(shared.Hearts, r))
	}
	hands[1] = append(hands[1], card(shared.Clubs, shared.Ace))
	for r := shared.Two; r <= shared.Queen; r++ {
		hands[2] = append(hands[2], card(shared.Diamonds, r))
	}
	hands[2] = append(hands[2], card(shared.Hearts, shared.Two), card(shared.Diamonds, shared.King))
	for r := shared.Two; r <= shared.King; r++ {
		hands[3] = append(hands[3], card(shared.Clubs, r))
	}
	hands[3] = append(hands[3], card(shared.Diamonds, shared.Ace))

	e := spades.NewEngine(0)
	require.NoError(t, e.SetDealtHands(hands))
	for i := 0; i < shared.SeatCount; i++ {
		require.NoError(t, e.SubmitBid(e.Turn(), 3))
	}
	require.Equal(t, spades.PhasePlay, e.Phase())
	return e
}

func TestSuggestPlay(t *testing.T) {
	b := New()
	e := riggedEngine(t)

	// East leads the lowest non-trump it holds.
	got, ok := b.SuggestPlay(e, 1)
	require.True(t, ok)
	assert.Equal(t, card(shared.Hearts, shared.Three), got)
	require.NoError(t, e.PlayCard(1, got))

	// South must follow hearts; its only heart is forced.
	got, ok = b.SuggestPlay(e, 2)
	require.True(t, ok)
	assert.Equal(t, card(shared.Hearts, shared.Two), got)
	require.NoError(t, e.PlayCard(2, got))

	// West cannot beat the heart lead and discards its cheapest club.
	got, ok = b.SuggestPlay(e, 3)
	require.True(t, ok)
	assert.Equal(t, card(shared.Clubs, shared.Two), got)
	require.NoError(t, e.PlayCard(3, got))

	// North is void in hearts and trumps in as cheaply as possible.
	got, ok = b.SuggestPlay(e, 0)
	require.True(t, ok)
	assert.Equal(t, card(shared.Spades, shared.Two), got)
	require.NoError(t, e.PlayCard(0, got))

	// North won and holds only spades, so the lead falls back to trump.
	require.Equal(t, shared.SeatIndex(0), e.Turn())
	got, ok = b.SuggestPlay(e, 0)
	require.True(t, ok)
	assert.Equal(t, card(shared.Spades, shared.Three), got)
}

func TestSuggestPlayFollowsWithCheapestWinner(t *testing.T) {
	var hands [shared.SeatCount][]shared.Card
	for r := shared.Two; r <= shared.Ace; r++ {
		hands[0] = append(hands[0], card(shared.Spades, r))
		hands[3] = append(hands[3], card(shared.Diamonds, r))
	}
	for r := shared.Two; r <= shared.King; r++ {
		hands[1] = append(hands[1], card(shared.Clubs, r))
	}
	hands[1] = append(hands[1], card(shared.Hearts, shared.Two))
	for r := shared.Three; r <= shared.Ace; r++ {
		hands[2] = append(hands[2], card(shared.Hearts, r))
	}
	hands[2] = append(hands[2], card(shared.Clubs, shared.Ace))

	e := spades.NewEngine(0)
	require.NoError(t, e.SetDealtHands(hands))
	for i := 0; i < shared.SeatCount; i++ {
		require.NoError(t, e.SubmitBid(e.Turn(), 3))
	}

	b := New()

	// East leads its lone heart; South holds every other heart and beats
	// it with the cheapest one, not the ace.
	require.NoError(t, e.PlayCard(1, card(shared.Hearts, shared.Two)))
	got, ok := b.SuggestPlay(e, 2)
	require.True(t, ok)
	assert.Equal(t, card(shared.Hearts, shared.Three), got)
}

func TestSuggestPlayOutOfTurn(t *testing.T) {
	b := New()
	e := riggedEngine(t)

	// East is due to act; suggesting for South finds no legal card.
	_, ok := b.SuggestPlay(e, 2)
	assert.False(t, ok)
}
