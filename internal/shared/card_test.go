package shared

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRankString(t *testing.T) {
	cases := map[Rank]string{
		Two:   "2",
		Nine:  "9",
		Ten:   "10",
		Jack:  "J",
		Queen: "Q",
		King:  "K",
		Ace:   "A",
	}
	for rank, want := range cases {
		assert.Equal(t, want, rank.String())
	}
}

func TestCardString(t *testing.T) {
	assert.Equal(t, "A♠", Card{Suit: Spades, Rank: Ace}.String())
	assert.Equal(t, "10♦", Card{Suit: Diamonds, Rank: Ten}.String())
	assert.Equal(t, "2♣", Card{Suit: Clubs, Rank: Two}.String())
}

func TestIsTrump(t *testing.T) {
	assert.True(t, Card{Suit: Spades, Rank: Two}.IsTrump())
	assert.False(t, Card{Suit: Hearts, Rank: Ace}.IsTrump())
}

func TestDisplayLess(t *testing.T) {
	cards := []Card{
		{Suit: Clubs, Rank: Ace},
		{Suit: Hearts, Rank: Two},
		{Suit: Spades, Rank: Three},
		{Suit: Hearts, Rank: King},
		{Suit: Diamonds, Rank: Ten},
	}
	sort.Slice(cards, func(i, j int) bool { return DisplayLess(cards[i], cards[j]) })

	want := []Card{
		{Suit: Spades, Rank: Three},
		{Suit: Hearts, Rank: King},
		{Suit: Hearts, Rank: Two},
		{Suit: Diamonds, Rank: Ten},
		{Suit: Clubs, Rank: Ace},
	}
	assert.Equal(t, want, cards)
}
