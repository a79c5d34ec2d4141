package playable

import (
	"cardgames/pkg/deck"
)

// Player is an individual seated at the table
type Player struct {
	Username string
	hand     deck.Hand
}

// NewPlayer returns a new player
func NewPlayer(username string) *Player {
	return &Player{
		Username: username,
		hand:     make(deck.Hand, 0),
	}
}

// AddCard add a card to the players hand
func (p *Player) AddCard(card deck.Card) {
	p.hand.AddCard(card)
}

// Hand returns a shallow clone of the player's hand
func (p *Player) Hand() deck.Hand {
	return p.hand.Clone()
}

// SetHand replaces the player's hand
func (p *Player) SetHand(hand deck.Hand) {
	p.hand = hand.Clone()
}

// HasCard returns true if the player has the card in their hand
func (p *Player) HasCard(card deck.Card) bool {
	return p.hand.HasCard(card)
}

// RemoveCard removes the card from the player's hand
func (p *Player) RemoveCard(card deck.Card) error {
	if !p.hand.Discard(card) {
		return ErrCardNotInHand
	}

	return nil
}

// RemoveRank removes and returns every card of the rank from the player's hand
func (p *Player) RemoveRank(rank int) []deck.Card {
	return p.hand.DiscardRank(rank)
}

// HandSize returns the number of cards in the player's hand
func (p *Player) HandSize() int {
	return len(p.hand)
}

func (p *Player) String() string {
	return p.Username
}
