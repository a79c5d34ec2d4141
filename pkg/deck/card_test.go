package deck

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_constants(t *testing.T) {
	assert.Equal(t, 11, Jack)
	assert.Equal(t, 12, Queen)
	assert.Equal(t, 13, King)
	assert.Equal(t, 14, Ace)
}

func TestCard_String(t *testing.T) {
	assert.Equal(t, "2♡", Card{Rank: 2, Suit: Hearts}.String())
	assert.Equal(t, "J♣", Card{Rank: 11, Suit: Clubs}.String())
	assert.Equal(t, "Q♢", Card{Rank: 12, Suit: Diamonds}.String())
	assert.Equal(t, "K♠", Card{Rank: 13, Suit: Spades}.String())
	assert.Equal(t, "A♠", Card{Rank: 14, Suit: Spades}.String())
}

func TestCard_Token(t *testing.T) {
	assert.Equal(t, "H8", Card{Rank: 8, Suit: Hearts}.Token())
	assert.Equal(t, "D10", Card{Rank: 10, Suit: Diamonds}.Token())
	assert.Equal(t, "SA", Card{Rank: Ace, Suit: Spades}.Token())
}

func TestCard_Equal(t *testing.T) {
	a := assert.New(t)
	a.True(CardFromString("8h").Equal(Card{Rank: 8, Suit: Hearts}))
	a.False(CardFromString("8h").Equal(CardFromString("8s")))
	a.Equal(CardFromString("14c"), CardFromString("14C"))
}

func TestParseCard(t *testing.T) {
	a := assert.New(t)

	card, err := ParseCard("H8")
	a.NoError(err)
	a.Equal(Card{Rank: 8, Suit: Hearts}, card)

	card, err = ParseCard(" d10 ")
	a.NoError(err)
	a.Equal(Card{Rank: 10, Suit: Diamonds}, card)

	card, err = ParseCard("SA")
	a.NoError(err)
	a.Equal(Card{Rank: Ace, Suit: Spades}, card)

	card, err = ParseCard("QC")
	a.NoError(err)
	a.Equal(Card{Rank: Queen, Suit: Clubs}, card)

	card, err = ParseCard("as")
	a.NoError(err)
	a.Equal(Card{Rank: Ace, Suit: Spades}, card)

	for _, bad := range []string{"", "H1", "H11", "X8", "8", "H", "HH8"} {
		_, err := ParseCard(bad)
		a.True(errors.Is(err, ErrInvalidCard), bad)
	}
}

func TestParseSuitAndRank(t *testing.T) {
	a := assert.New(t)

	suit, err := ParseSuit("s")
	a.NoError(err)
	a.Equal(Spades, suit)

	_, err = ParseSuit("x")
	a.True(errors.Is(err, ErrInvalidSuit))

	rank, err := ParseRank("k")
	a.NoError(err)
	a.Equal(King, rank)

	rank, err = ParseRank("10")
	a.NoError(err)
	a.Equal(10, rank)

	_, err = ParseRank("1")
	a.True(errors.Is(err, ErrInvalidRank))
}

func TestCardsFromString(t *testing.T) {
	cards := CardsFromString("2c,10h,14s")
	assert.Equal(t, []Card{{2, Clubs}, {10, Hearts}, {Ace, Spades}}, cards)
	assert.Equal(t, "2c,10h,14s", CardsToString(cards))
	assert.Equal(t, []Card{}, CardsFromString(""))
	assert.Panics(t, func() { CardFromString("zz") })
}
