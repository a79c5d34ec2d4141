package war

import (
	"fmt"

	"cardgames/pkg/deck"
	"cardgames/pkg/playable"

	"github.com/sirupsen/logrus"
)

// war is always heads up
const (
	MinPlayers = 2
	MaxPlayers = 2
)

// Tie is returned by DecideRoundWinner when both cards have the same rank
const Tie = 2

const name = "War"

// Game is a game of war
// Each player's hand is their face-down draw pile, the first card is on top
type Game struct {
	*playable.Table

	options Options

	// piles are the face-up cards each player put into the current round, the last card is on top
	piles [][]deck.Card
	// winnings are the cards each player has won, they become the hand when the hand runs out
	winnings [][]deck.Card

	round   int
	winners []*playable.Player
}

// NewGame returns a new game of war with the deck split between the two players
func NewGame(logger logrus.FieldLogger, usernames []string, registry playable.UserRegistry, in playable.Input, out playable.Output, opts Options) (*Game, error) {
	if err := playable.CheckPlayerCount(MinPlayers, MaxPlayers, len(usernames)); err != nil {
		return nil, err
	}

	table, err := playable.NewTable(logger, name, usernames, registry, in, out)
	if err != nil {
		return nil, err
	}

	g := &Game{
		Table:    table,
		options:  opts,
		piles:    make([][]deck.Card, len(usernames)),
		winnings: make([][]deck.Card, len(usernames)),
	}

	d := g.Deck()
	d.Shuffle(opts.Seed)
	g.Logger().WithFields(logrus.Fields{
		"seed":     d.GetSeed(),
		"deckHash": d.HashCode(),
	}).Debug("deck shuffled")

	if err := g.Deal(d.CardsLeft() / len(usernames)); err != nil {
		return nil, err
	}

	return g, nil
}

// Name returns "War"
func (g *Game) Name() string {
	return name
}

// Winners returns the winner once the game is over
func (g *Game) Winners() []*playable.Player {
	return g.winners
}

// StartGame plays rounds until one player holds every card
func (g *Game) StartGame() error {
	if g.winners != nil {
		return ErrGameOver
	}

	g.Logger().WithField("players", g.Usernames()).Info("game started")

	for {
		if winner, over := g.checkWin(); over {
			player := g.Player(winner)
			g.winners = []*playable.Player{player}
			g.RecordResult(player)
			g.AnnounceWinners(g.winners)
			return nil
		}

		g.Send("Round %d: %s has %d cards, %s has %d cards", g.round+1,
			g.Player(0).Username, g.CardCount(0), g.Player(1).Username, g.CardCount(1))
		if err := g.In().Stall(); err != nil {
			return err
		}

		winner, err := g.PlayRound()
		if err != nil {
			return err
		}

		g.Send("%s wins the round", g.Player(winner).Username)
	}
}

// PlayRound flips a card for each player and settles any war.
// Returns the index of the player who won the round
func (g *Game) PlayRound() (int, error) {
	if g.winners != nil {
		return -1, ErrGameOver
	}

	g.round++
	if err := g.FlipCards(); err != nil {
		return -1, err
	}

	for {
		a, _ := g.ReturnTopCard(0)
		b, _ := g.ReturnTopCard(1)
		g.Send("%s flips %s, %s flips %s", g.Player(0).Username, a, g.Player(1).Username, b)

		result := g.DecideRoundWinner(a, b)
		if result != Tie {
			g.collect(result)
			return result, nil
		}

		g.Send("War!")
		if loser := g.goToWar(); loser >= 0 {
			winner := 1 - loser
			g.Send("%s cannot continue the war", g.Player(loser).Username)
			g.collect(winner)
			return winner, nil
		}
	}
}

// FlipCards moves the top card of each player's hand onto their pile
func (g *Game) FlipCards() error {
	for i := range g.Players() {
		if err := g.SetTurn(i); err != nil {
			return err
		}

		card, err := g.takeTopCard(i)
		if err != nil {
			return err
		}

		g.MakeMove(card)
	}

	return nil
}

// ReturnTopCard returns the top card of the player's pile
func (g *Game) ReturnTopCard(i int) (deck.Card, bool) {
	pile := g.piles[i]
	if len(pile) == 0 {
		return deck.Card{}, false
	}

	return pile[len(pile)-1], true
}

// MakeMove puts the card on top of the current player's pile
func (g *Game) MakeMove(card deck.Card) {
	i := g.CurrentPlayerIndex()
	g.piles[i] = append(g.piles[i], card)
}

// DecideRoundWinner compares the cards by rank only.
// Returns 0 if a wins, 1 if b wins or Tie
func (g *Game) DecideRoundWinner(a, b deck.Card) int {
	switch {
	case a.Rank > b.Rank:
		return 0
	case b.Rank > a.Rank:
		return 1
	default:
		return Tie
	}
}

// CardCount returns every card the player holds, including the cards in play
func (g *Game) CardCount(i int) int {
	return g.cardsLeft(i) + len(g.piles[i])
}

// cardsLeft returns the cards the player can still put into play
func (g *Game) cardsLeft(i int) int {
	return g.Player(i).HandSize() + len(g.winnings[i])
}

// goToWar has each player add face-down cards and one face-up card to their pile.
// A player with fewer cards uses their last card face up.
// Returns the index of a player who could not add any card, otherwise -1
func (g *Game) goToWar() int {
	for i := range g.Players() {
		if g.cardsLeft(i) == 0 {
			return i
		}
	}

	for i := range g.Players() {
		_ = g.SetTurn(i)

		faceDown := g.options.WarCards
		if left := g.cardsLeft(i) - 1; left < faceDown {
			faceDown = left
		}

		for n := 0; n <= faceDown; n++ {
			card, err := g.takeTopCard(i)
			if err != nil {
				// cardsLeft was checked above
				panic(err)
			}

			g.MakeMove(card)
		}
	}

	return -1
}

// takeTopCard removes the top card of the player's hand, picking up their winnings if the hand is empty
func (g *Game) takeTopCard(i int) (deck.Card, error) {
	player := g.Player(i)
	if player.HandSize() == 0 && len(g.winnings[i]) > 0 {
		player.SetHand(g.winnings[i])
		g.winnings[i] = nil
		g.Logger().WithFields(logrus.Fields{
			"username": player.Username,
			"cards":    player.HandSize(),
		}).Debug("player picked up their winnings")
	}

	card, ok := player.Hand().FirstCard()
	if !ok {
		return deck.Card{}, fmt.Errorf("%s: %w", player.Username, ErrNoCards)
	}

	if err := player.RemoveCard(card); err != nil {
		return deck.Card{}, err
	}

	return card, nil
}

// collect gives every card in play to the winner
func (g *Game) collect(winner int) {
	for i, pile := range g.piles {
		g.winnings[winner] = append(g.winnings[winner], pile...)
		g.piles[i] = nil
	}

	g.Logger().WithFields(logrus.Fields{
		"round":    g.round,
		"username": g.Player(winner).Username,
	}).Debug("round won")
}

// checkWin returns the winner if a player is out of cards or the round limit was reached
func (g *Game) checkWin() (int, bool) {
	for i := range g.Players() {
		if g.CardCount(i) == 0 {
			return 1 - i, true
		}
	}

	if g.options.MaxRounds > 0 && g.round >= g.options.MaxRounds {
		if g.CardCount(1) > g.CardCount(0) {
			return 1, true
		}

		return 0, true
	}

	return -1, false
}
