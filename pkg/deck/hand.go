package deck

import (
	"strings"
)

// Hand represents a collection of cards
type Hand []Card

func (h Hand) Len() int {
	return len(h)
}

func (h Hand) Less(i, j int) bool {
	if cmp := strings.Compare(string(h[i].Suit), string(h[j].Suit)); cmp != 0 {
		return cmp < 0
	}

	return h[i].Rank < h[j].Rank
}

func (h Hand) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

// AddCard adds a card to the hand
func (h *Hand) AddCard(card Card) {
	*h = append(*h, card)
}

// HasCard returns true if the hand contains the specified card
func (h Hand) HasCard(card Card) bool {
	for _, c := range h {
		if c == card {
			return true
		}
	}

	return false
}

// Discard removes one copy of the card from the hand.
// Returns false if the card was not in the hand
func (h *Hand) Discard(card Card) bool {
	for i, c := range *h {
		if c == card {
			newHand := make(Hand, 0, len(*h)-1)
			newHand = append(newHand, (*h)[:i]...)
			newHand = append(newHand, (*h)[i+1:]...)
			*h = newHand
			return true
		}
	}

	return false
}

// IsEmpty returns true if there are no cards in the hand
func (h Hand) IsEmpty() bool {
	return len(h) == 0
}

// CountRank returns how many cards of the rank are in the hand
func (h Hand) CountRank(rank int) int {
	count := 0
	for _, c := range h {
		if c.Rank == rank {
			count++
		}
	}

	return count
}

// DiscardRank removes every card of the rank and returns them
func (h *Hand) DiscardRank(rank int) []Card {
	removed := make([]Card, 0)
	kept := make(Hand, 0, len(*h))
	for _, c := range *h {
		if c.Rank == rank {
			removed = append(removed, c)
		} else {
			kept = append(kept, c)
		}
	}

	*h = kept
	return removed
}

// FirstCard returns the first card in the hand, false if the hand is empty
func (h Hand) FirstCard() (Card, bool) {
	if len(h) == 0 {
		return Card{}, false
	}

	return h[0], true
}

// LastCard returns the last card in the hand, false if the hand is empty
func (h Hand) LastCard() (Card, bool) {
	n := len(h)
	if n == 0 {
		return Card{}, false
	}

	return h[n-1], true
}

// String renders the hand as the tokens a player would type, e.g. "H8 D10 SA"
func (h Hand) String() string {
	tokens := make([]string, len(h))
	for i, c := range h {
		tokens[i] = c.Token()
	}

	return strings.Join(tokens, " ")
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}
