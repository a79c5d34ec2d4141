package gofish

import (
	"fmt"
	"sort"

	"cardgames/pkg/deck"
	"cardgames/pkg/playable"

	"github.com/sirupsen/logrus"
)

// player limits
const (
	MinPlayers = 2
	MaxPlayers = 6
)

// bookSize is how many cards of a rank make a book
const bookSize = 4

const name = "Go Fish"

// Game is a game of go fish
type Game struct {
	*playable.Table

	options Options

	// books are the ranks each player has collected, indexed like the players
	books [][]int

	winners []*playable.Player
}

// NewGame returns a new game of go fish with the cards already dealt
func NewGame(logger logrus.FieldLogger, usernames []string, registry playable.UserRegistry, in playable.Input, out playable.Output, opts Options) (*Game, error) {
	if err := playable.CheckPlayerCount(MinPlayers, MaxPlayers, len(usernames)); err != nil {
		return nil, err
	}

	handSize := opts.handSize(len(usernames))
	if handSize*len(usernames) > 52 {
		return nil, fmt.Errorf("cannot deal %d cards to %d players", handSize, len(usernames))
	}

	table, err := playable.NewTable(logger, name, usernames, registry, in, out)
	if err != nil {
		return nil, err
	}

	g := &Game{
		Table:   table,
		options: opts,
		books:   make([][]int, len(usernames)),
	}

	d := g.Deck()
	d.Shuffle(opts.Seed)
	g.Logger().WithFields(logrus.Fields{
		"seed":     d.GetSeed(),
		"deckHash": d.HashCode(),
	}).Debug("deck shuffled")

	if err := g.Deal(handSize); err != nil {
		return nil, err
	}

	for _, player := range g.Players() {
		g.collectBooks(player)
	}

	return g, nil
}

// Name returns "Go Fish"
func (g *Game) Name() string {
	return name
}

// Winners returns the players with the most books once the game is over
func (g *Game) Winners() []*playable.Player {
	return g.winners
}

// Books returns the ranks of the books the player at index i has made
func (g *Game) Books(i int) []int {
	return append([]int{}, g.books[i]...)
}

// StartGame plays turns until every book has been made
func (g *Game) StartGame() error {
	if g.winners != nil {
		return ErrGameOver
	}

	g.Logger().WithField("players", g.Usernames()).Info("game started")

	for {
		if g.isOver() {
			g.winners = g.leaders()
			g.RecordResult(g.winners...)
			g.AnnounceWinners(g.winners)
			return nil
		}

		again, err := g.takeTurn(g.CurrentPlayer())
		if err != nil {
			return err
		}

		if !again {
			g.NextTurn()
			g.Send("")
		}
	}
}

// takeTurn plays one ask for the player. Returns true if the player goes again
func (g *Game) takeTurn(player *playable.Player) (bool, error) {
	d := g.Deck()
	if player.HandSize() == 0 {
		if !d.CanDraw(1) {
			g.Send("%s has no cards and the deck is empty", player.Username)
			return false, nil
		}

		card, err := d.Draw()
		if err != nil {
			return false, err
		}

		player.AddCard(card)
		g.Send("%s has no cards and draws one", player.Username)
	}

	hand := player.Hand()
	sort.Sort(hand)
	g.Send("%s's hand: %s (books: %d, deck: %d)", player.Username, hand, len(g.books[g.CurrentPlayerIndex()]), d.CardsLeft())

	candidates := g.candidates(player)
	if len(candidates) == 0 {
		g.Send("Nobody else has cards, go fish!")
		_, err := g.fish(player)
		return false, err
	}

	target, err := g.pickTarget(player, candidates)
	if err != nil {
		return false, err
	}

	rank, err := g.pickRank(player)
	if err != nil {
		return false, err
	}

	got, err := g.Ask(target, rank)
	if err != nil {
		return false, err
	}

	if got > 0 {
		g.Send("%s hands over %d × %s", target.Username, got, deck.RankString(rank))
		g.collectBooks(player)
		return true, nil
	}

	g.Send("%s has no %s, go fish!", target.Username, deck.RankString(rank))
	card, err := g.fish(player)
	if err != nil {
		return false, err
	}

	if card != nil && card.Rank == rank {
		g.Send("%s fished a %s and goes again", player.Username, deck.RankString(rank))
		return true, nil
	}

	return false, nil
}

// fish draws a card for the player, nil if the deck is empty
func (g *Game) fish(player *playable.Player) (*deck.Card, error) {
	d := g.Deck()
	if !d.CanDraw(1) {
		g.Send("The deck is empty")
		return nil, nil
	}

	card, err := d.Draw()
	if err != nil {
		return nil, err
	}

	player.AddCard(card)
	g.collectBooks(player)
	return &card, nil
}

// candidates returns the usernames of the other players who still hold cards
func (g *Game) candidates(player *playable.Player) []string {
	usernames := make([]string, 0)
	for _, p := range g.Players() {
		if p != player && p.HandSize() > 0 {
			usernames = append(usernames, p.Username)
		}
	}

	return usernames
}

func (g *Game) pickTarget(player *playable.Player, candidates []string) (*playable.Player, error) {
	for {
		g.Send("Who do you ask? (%v)", candidates)
		username, err := g.In().GetPlayerUsername(player.Username, candidates)
		if err != nil {
			return nil, err
		}

		for _, c := range candidates {
			if c == username {
				target, _ := g.PlayerByUsername(username)
				return target, nil
			}
		}

		g.Send("%q cannot be asked, try again", username)
	}
}

func (g *Game) pickRank(player *playable.Player) (int, error) {
	for {
		g.Send("Which rank do you ask for?")
		rank, err := g.In().GetRank()
		if err != nil {
			return 0, err
		}

		if player.Hand().CountRank(rank) > 0 {
			return rank, nil
		}

		g.Send("You must ask for a rank you hold, try again")
	}
}

// Ask moves every card of the rank from the target to the current player.
// Returns how many cards were handed over
func (g *Game) Ask(target *playable.Player, rank int) (int, error) {
	if g.winners != nil {
		return 0, ErrGameOver
	}

	asker := g.CurrentPlayer()
	if seated, ok := g.PlayerByUsername(target.Username); !ok || seated != target || target == asker {
		return 0, ErrInvalidTarget
	}

	if asker.Hand().CountRank(rank) == 0 {
		return 0, ErrRankNotInHand
	}

	cards := target.RemoveRank(rank)
	for _, card := range cards {
		asker.AddCard(card)
	}

	g.Logger().WithFields(logrus.Fields{
		"username": asker.Username,
		"target":   target.Username,
		"rank":     rank,
		"got":      len(cards),
	}).Debug("player asked")

	return len(cards), nil
}

// collectBooks removes every complete book from the player's hand
func (g *Game) collectBooks(player *playable.Player) {
	idx := g.indexOf(player)
	hand := player.Hand()
	for _, rank := range deck.Ranks {
		if hand.CountRank(rank) < bookSize {
			continue
		}

		player.RemoveRank(rank)
		g.books[idx] = append(g.books[idx], rank)
		g.Send("%s makes a book of %s", player.Username, deck.RankString(rank))
	}
}

func (g *Game) indexOf(player *playable.Player) int {
	for i, p := range g.Players() {
		if p == player {
			return i
		}
	}

	panic(fmt.Sprintf("player is not seated: %s", player.Username))
}

// isOver returns true once all thirteen books have been made
func (g *Game) isOver() bool {
	total := 0
	for _, books := range g.books {
		total += len(books)
	}

	return total == len(deck.Ranks)
}

// leaders returns every player tied for the most books
func (g *Game) leaders() []*playable.Player {
	most := 0
	leaders := make([]*playable.Player, 0)
	for i, player := range g.Players() {
		count := len(g.books[i])
		if count > most {
			most = count
			leaders = []*playable.Player{player}
		} else if count == most {
			leaders = append(leaders, player)
		}
	}

	return leaders
}
