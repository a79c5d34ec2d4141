package deck

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidCard is returned when a card token cannot be parsed
var ErrInvalidCard = errors.New("invalid card")

// ErrInvalidSuit is returned when a suit token cannot be parsed
var ErrInvalidSuit = errors.New("invalid suit")

// ErrInvalidRank is returned when a rank token cannot be parsed
var ErrInvalidRank = errors.New("invalid rank")

// Suit represents a card suit
type Suit string

// suit constants
const (
	Hearts   Suit = "hearts"
	Clubs    Suit = "clubs"
	Diamonds Suit = "diamonds"
	Spades   Suit = "spades"
)

// Suits is every suit in deck order
var Suits = []Suit{Clubs, Diamonds, Hearts, Spades}

// Card is an individual playing card
// Cards are values: two cards with the same rank and suit are the same card
type Card struct {
	Rank int  `json:"rank" yaml:"rank"`
	Suit Suit `json:"suit" yaml:"suit"`
}

// face cards
const (
	Jack  = 11
	Queen = 12
	King  = 13
	Ace   = 14
)

// Ranks is every rank from lowest to highest
var Ranks = []int{2, 3, 4, 5, 6, 7, 8, 9, 10, Jack, Queen, King, Ace}

func (c Card) String() string {
	var suit string
	switch c.Suit {
	case Clubs:
		suit = "♣"
	case Diamonds:
		suit = "♢"
	case Hearts:
		suit = "♡"
	case Spades:
		suit = "♠"
	default:
		panic("unknown suit")
	}

	return RankString(c.Rank) + suit
}

// Token returns the card in the suit-then-rank format players type (e.g., H8, D10, SA)
func (c Card) Token() string {
	return c.Suit.Letter() + RankString(c.Rank)
}

// Equal returns true if the cards are equal (matches suit and rank)
func (c Card) Equal(card Card) bool {
	return c == card
}

// Letter returns the single letter abbreviation of the suit
func (s Suit) Letter() string {
	switch s {
	case Clubs:
		return "C"
	case Diamonds:
		return "D"
	case Hearts:
		return "H"
	case Spades:
		return "S"
	}

	return "?"
}

// RankString returns the display value of a rank (A, 2-10, J, Q, K)
func RankString(rank int) string {
	switch rank {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return strconv.Itoa(rank)
	}
}

// ParseSuit parses a suit from one of C, D, H, S (case-insensitive) or the full suit name
func ParseSuit(s string) (Suit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "c", "clubs":
		return Clubs, nil
	case "d", "diamonds":
		return Diamonds, nil
	case "h", "hearts":
		return Hearts, nil
	case "s", "spades":
		return Spades, nil
	}

	return "", fmt.Errorf("%w: %q", ErrInvalidSuit, s)
}

// ParseRank parses a rank from A, 2-10, J, Q, K (case-insensitive)
func ParseRank(s string) (int, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "A":
		return Ace, nil
	case "J":
		return Jack, nil
	case "Q":
		return Queen, nil
	case "K":
		return King, nil
	}

	rank, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || rank < 2 || rank > 10 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidRank, s)
	}

	return rank, nil
}

var suitFirstRx = regexp.MustCompile(`(?i)^([cdhs])(10|[2-9]|[ajqk])\z`)
var rankFirstRx = regexp.MustCompile(`(?i)^(10|[2-9]|[ajqk])([cdhs])\z`)

// ParseCard parses a card token.
// The preferred format is the suit followed by the rank (H8, D10, SA); rank followed by suit (8H) is also accepted.
func ParseCard(token string) (Card, error) {
	token = strings.TrimSpace(token)

	var suitStr, rankStr string
	if match := suitFirstRx.FindStringSubmatch(token); match != nil {
		suitStr, rankStr = match[1], match[2]
	} else if match := rankFirstRx.FindStringSubmatch(token); match != nil {
		rankStr, suitStr = match[1], match[2]
	} else {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, token)
	}

	suit, err := ParseSuit(suitStr)
	if err != nil {
		return Card{}, err
	}

	rank, err := ParseRank(rankStr)
	if err != nil {
		return Card{}, err
	}

	return Card{Rank: rank, Suit: suit}, nil
}

var cardRx = regexp.MustCompile(`(?i)^([0-9]|1[0-4])([cdhs])\z`)

// CardFromString returns a Card from the string.
// The string must be in the format of <rank><suit> where rank >= 2 and <= 14 and suit in [cdhs]
func CardFromString(s string) Card {
	match := cardRx.FindStringSubmatch(s)
	if match == nil {
		panic(fmt.Sprintf("could not parse card: %s", s))
	}

	rank, err := strconv.Atoi(match[1])
	if err != nil {
		panic(fmt.Sprintf("could not parse card `%s`: %v", s, err))
	}

	suit, err := ParseSuit(match[2])
	if err != nil {
		panic(err)
	}

	return Card{
		Rank: rank,
		Suit: suit,
	}
}

// CardsFromString will returns a slice of cards
func CardsFromString(s string) []Card {
	if s == "" {
		return []Card{}
	}

	cardStrings := strings.Split(s, ",")
	cards := make([]Card, len(cardStrings))
	for i, card := range cardStrings {
		cards[i] = CardFromString(card)
	}

	return cards
}

// CardToString converts a card (Ace of Clubs) to a string (14c)
func CardToString(card Card) string {
	return fmt.Sprintf("%d%s", card.Rank, strings.ToLower(card.Suit.Letter()))
}

// CardsToString will convert a slice of cards to a string in the format of 2c,3h,4s,...
func CardsToString(cards []Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = CardToString(card)
	}

	return strings.Join(c, ",")
}
