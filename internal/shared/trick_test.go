package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetermineWinner(t *testing.T) {
	tt := []struct {
		name   string
		leader SeatIndex
		plays  []PlayedCard
		want   SeatIndex
	}{
		{
			name:   "highest of led suit wins without trump",
			leader: 1,
			plays: []PlayedCard{
				{Card: Card{Suit: Hearts, Rank: Seven}, Seat: 1},
				{Card: Card{Suit: Hearts, Rank: Queen}, Seat: 2},
				{Card: Card{Suit: Hearts, Rank: Three}, Seat: 3},
				{Card: Card{Suit: Hearts, Rank: Nine}, Seat: 0},
			},
			want: 2,
		},
		{
			name:   "any trump beats the led suit",
			leader: 0,
			plays: []PlayedCard{
				{Card: Card{Suit: Diamonds, Rank: Ace}, Seat: 0},
				{Card: Card{Suit: Diamonds, Rank: King}, Seat: 1},
				{Card: Card{Suit: Spades, Rank: Two}, Seat: 2},
				{Card: Card{Suit: Diamonds, Rank: Queen}, Seat: 3},
			},
			want: 2,
		},
		{
			name:   "highest trump wins among several",
			leader: 3,
			plays: []PlayedCard{
				{Card: Card{Suit: Clubs, Rank: Ace}, Seat: 3},
				{Card: Card{Suit: Spades, Rank: Five}, Seat: 0},
				{Card: Card{Suit: Spades, Rank: Jack}, Seat: 1},
				{Card: Card{Suit: Spades, Rank: Seven}, Seat: 2},
			},
			want: 1,
		},
		{
			name:   "off-suit discard never wins regardless of rank",
			leader: 2,
			plays: []PlayedCard{
				{Card: Card{Suit: Clubs, Rank: Four}, Seat: 2},
				{Card: Card{Suit: Hearts, Rank: Ace}, Seat: 3},
				{Card: Card{Suit: Diamonds, Rank: Ace}, Seat: 0},
				{Card: Card{Suit: Clubs, Rank: Six}, Seat: 1},
			},
			want: 1,
		},
		{
			name:   "spade lead is won by the highest spade",
			leader: 0,
			plays: []PlayedCard{
				{Card: Card{Suit: Spades, Rank: Ten}, Seat: 0},
				{Card: Card{Suit: Spades, Rank: King}, Seat: 1},
				{Card: Card{Suit: Hearts, Rank: Ace}, Seat: 2},
				{Card: Card{Suit: Spades, Rank: Three}, Seat: 3},
			},
			want: 1,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			trick := NewTrick(tc.leader)
			for _, pc := range tc.plays {
				trick.AddCard(pc.Card, pc.Seat)
			}
			require.True(t, trick.Complete())
			assert.Equal(t, tc.want, trick.DetermineWinner())
			assert.Equal(t, tc.want, trick.Winner)
		})
	}
}

func TestWinnerInvariantUnderPlayOrder(t *testing.T) {
	// The winner depends only on the led suit and the (seat, card)
	// pairs, not on the order the followers' cards are evaluated in.
	lead := PlayedCard{Card: Card{Suit: Hearts, Rank: Six}, Seat: 0}
	followers := []PlayedCard{
		{Card: Card{Suit: Hearts, Rank: Jack}, Seat: 1},
		{Card: Card{Suit: Spades, Rank: Four}, Seat: 2},
		{Card: Card{Suit: Diamonds, Rank: Ace}, Seat: 3},
	}
	orders := [][]int{{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0}}

	for _, order := range orders {
		trick := NewTrick(lead.Seat)
		trick.AddCard(lead.Card, lead.Seat)
		for _, i := range order {
			trick.AddCard(followers[i].Card, followers[i].Seat)
		}
		assert.Equal(t, SeatIndex(2), trick.DetermineWinner(), "order %v", order)
	}
}

func TestWinningPlayOnPartialTrick(t *testing.T) {
	trick := NewTrick(1)
	_, ok := trick.WinningPlay()
	assert.False(t, ok)

	trick.AddCard(Card{Suit: Clubs, Rank: Nine}, 1)
	winning, ok := trick.WinningPlay()
	require.True(t, ok)
	assert.Equal(t, SeatIndex(1), winning.Seat)

	trick.AddCard(Card{Suit: Spades, Rank: Two}, 2)
	winning, ok = trick.WinningPlay()
	require.True(t, ok)
	assert.Equal(t, SeatIndex(2), winning.Seat, "low trump should be winning")
}

func TestSeatIndexHelpers(t *testing.T) {
	assert.Equal(t, SeatIndex(0), SeatIndex(3).Next())
	assert.Equal(t, SeatIndex(0), SeatIndex(1).Next().Next().Next())
	assert.Equal(t, 0, SeatIndex(2).Team())
	assert.Equal(t, 1, SeatIndex(3).Team())
	assert.Equal(t, SeatIndex(0), SeatIndex(2).Partner())
	assert.Equal(t, "West", SeatIndex(3).String())
}
