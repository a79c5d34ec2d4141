package crazyeights

import (
	"fmt"

	"cardgames/pkg/deck"
	"cardgames/pkg/playable"

	"github.com/sirupsen/logrus"
)

// player limits
const (
	MinPlayers = 2
	MaxPlayers = 5
)

// eights are wild
const wildRank = 8

const name = "Crazy Eights"

// Game is a game of crazy eights
type Game struct {
	*playable.Table

	options Options

	// field is the face-up discard stack, the last card is on top
	field []deck.Card
	// activeSuit is the suit every non-eight must follow
	activeSuit deck.Suit

	winners []*playable.Player
}

// NewGame returns a new game of crazy eights with the cards already dealt
// usernames should be in turn order
func NewGame(logger logrus.FieldLogger, usernames []string, registry playable.UserRegistry, in playable.Input, out playable.Output, opts Options) (*Game, error) {
	if err := playable.CheckPlayerCount(MinPlayers, MaxPlayers, len(usernames)); err != nil {
		return nil, err
	}

	if opts.HandSize <= 0 {
		return nil, ErrInvalidHandSize
	}

	if opts.HandSize*len(usernames)+1 > 52 {
		return nil, fmt.Errorf("cannot deal %d cards to %d players", opts.HandSize, len(usernames))
	}

	table, err := playable.NewTable(logger, name, usernames, registry, in, out)
	if err != nil {
		return nil, err
	}

	g := &Game{
		Table:   table,
		options: opts,
	}

	if err := g.deal(); err != nil {
		return nil, err
	}

	return g, nil
}

// deal shuffles, deals each player their hand and flips the first card onto the field
func (g *Game) deal() error {
	d := g.Deck()
	d.Shuffle(g.options.Seed)
	g.Logger().WithFields(logrus.Fields{
		"seed":     d.GetSeed(),
		"deckHash": d.HashCode(),
	}).Debug("deck shuffled")

	if err := g.Deal(g.options.HandSize); err != nil {
		return err
	}

	card, err := d.Draw()
	if err != nil {
		return err
	}

	g.field = []deck.Card{card}
	g.activeSuit = card.Suit
	g.Logger().WithField("card", card).Debug("flipped first card")

	return nil
}

// Name returns "Crazy Eights"
func (g *Game) Name() string {
	return name
}

// Winners returns the winner once the game is over
func (g *Game) Winners() []*playable.Player {
	return g.winners
}

// TopCard returns the card on top of the playing field
func (g *Game) TopCard() deck.Card {
	return g.field[len(g.field)-1]
}

// ActiveSuit returns the suit that must be followed
func (g *Game) ActiveSuit() deck.Suit {
	return g.activeSuit
}

// FieldSize returns the number of cards on the playing field
func (g *Game) FieldSize() int {
	return len(g.field)
}

// StartGame plays turns until a player empties their hand
func (g *Game) StartGame() error {
	if g.winners != nil {
		return ErrGameOver
	}

	g.Logger().WithField("players", g.Usernames()).Info("game started")

	for {
		player := g.CurrentPlayer()
		g.Send("Top card: %s (active suit: %s)", g.TopCard().Token(), g.activeSuit.Letter())
		g.Send("%s's hand: %s", player.Username, player.Hand())

		if err := g.takeTurn(player); err != nil {
			return err
		}

		if g.checkWin() {
			g.winners = []*playable.Player{player}
			g.RecordResult(player)
			g.AnnounceWinners(g.winners)
			return nil
		}

		g.NextTurn()
		g.Send("")
	}
}

// takeTurn prompts the player until they make a legal move or draw
func (g *Game) takeTurn(player *playable.Player) error {
	if !g.HasValidMove(player.Hand()) {
		g.Send("%s has no cards to play and draws from the deck", player.Username)
		return g.drawCard(player)
	}

	for {
		draw, err := g.In().DrawCard()
		if err != nil {
			return err
		}

		if draw {
			return g.drawCard(player)
		}

		token, err := g.In().GetCard()
		if err != nil {
			return err
		}

		card, err := deck.ParseCard(token)
		if err != nil {
			g.Send("%q is not a card, try again", token)
			continue
		}

		if !g.CheckMove(card) {
			g.Send("%s cannot be played, try again", card.Token())
			continue
		}

		suit := card.Suit
		if card.Rank == wildRank {
			if suit, err = g.pickSuit(); err != nil {
				return err
			}
		}

		return g.MakeMove(card, suit)
	}
}

func (g *Game) pickSuit() (deck.Suit, error) {
	for {
		g.Send("Pick the new suit (C, D, H, S)")
		suit, err := g.In().GetSuit()
		if err != nil {
			return "", err
		}

		if isSuit(suit) {
			return suit, nil
		}

		g.Send("%q is not a suit, try again", suit)
	}
}

func isSuit(suit deck.Suit) bool {
	for _, s := range deck.Suits {
		if s == suit {
			return true
		}
	}

	return false
}

// drawCard moves the top card of the deck into the player's hand.
// If the deck is empty, everything but the top of the field is shuffled back into the deck
func (g *Game) drawCard(player *playable.Player) error {
	d := g.Deck()
	if !d.CanDraw(1) {
		if len(g.field) <= 1 {
			g.Send("The deck is empty, %s passes", player.Username)
			return nil
		}

		top := g.TopCard()
		d.ShuffleDiscards(g.field[:len(g.field)-1])
		g.field = []deck.Card{top}
		g.Logger().WithField("cardsLeft", d.CardsLeft()).Debug("playing field shuffled back into the deck")
	}

	card, err := d.Draw()
	if err != nil {
		return err
	}

	player.AddCard(card)
	g.Logger().WithFields(logrus.Fields{
		"username": player.Username,
		"card":     card,
	}).Debug("player drew a card")

	return nil
}

// isPlayable returns true if the card can go on the field, ignoring who holds it
func (g *Game) isPlayable(card deck.Card) bool {
	if card.Rank == wildRank {
		return true
	}

	top := g.TopCard()
	return card.Suit == g.activeSuit || card.Rank == top.Rank
}

// CheckMove returns true if the current player holds the card and it can be played
func (g *Game) CheckMove(card deck.Card) bool {
	player := g.CurrentPlayer()
	if player.HandSize() == 0 || !player.HasCard(card) {
		return false
	}

	return g.isPlayable(card)
}

// HasValidMove returns true if any card in the hand can be played
func (g *Game) HasValidMove(hand deck.Hand) bool {
	for _, card := range hand {
		if g.isPlayable(card) {
			return true
		}
	}

	return false
}

// MakeMove plays the card from the current player's hand onto the field.
// newSuit is only used when an eight is played
func (g *Game) MakeMove(card deck.Card, newSuit deck.Suit) error {
	if g.winners != nil {
		return ErrGameOver
	}

	player := g.CurrentPlayer()
	if !player.HasCard(card) {
		return playable.ErrCardNotInHand
	}

	if !g.isPlayable(card) {
		return ErrIllegalMove
	}

	if card.Rank == wildRank && !isSuit(newSuit) {
		return ErrInvalidSuit
	}

	if err := player.RemoveCard(card); err != nil {
		return err
	}

	g.field = append(g.field, card)
	if card.Rank == wildRank {
		g.activeSuit = newSuit
	} else {
		g.activeSuit = card.Suit
	}

	g.Logger().WithFields(logrus.Fields{
		"username":   player.Username,
		"card":       card,
		"activeSuit": g.activeSuit,
	}).Debug("card played")

	return nil
}

// checkWin returns true if the current player has no cards left
func (g *Game) checkWin() bool {
	return g.CurrentPlayer().HandSize() == 0
}
