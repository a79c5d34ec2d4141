package war

import (
	"errors"
	"testing"

	"cardgames/pkg/deck"
	"cardgames/pkg/playable"
	"cardgames/pkg/playable/playabletest"
	"cardgames/pkg/snapshot"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	game *Game
	in   *playabletest.Input
	out  *playabletest.Output
	reg  *playabletest.Registry
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		in:  &playabletest.Input{},
		out: &playabletest.Output{},
		reg: playabletest.NewRegistry(),
	}

	game, err := NewGame(logrus.StandardLogger(), []string{"Daniel", "Bradley"}, f.reg, f.in, f.out, DefaultOptions())
	require.NoError(t, err)
	f.game = game
	return f
}

func setupGame(t *testing.T, hand0, hand1 string) *fixture {
	t.Helper()

	f := newFixture(t)
	f.game.Player(0).SetHand(deck.CardsFromString(hand0))
	f.game.Player(1).SetHand(deck.CardsFromString(hand1))
	return f
}

func card(s string) deck.Card {
	return deck.CardFromString(s)
}

func TestNewGame(t *testing.T) {
	a := assert.New(t)
	g := newFixture(t).game

	a.Equal("War", g.Name())
	a.Equal(26, g.Player(0).HandSize())
	a.Equal(26, g.Player(1).HandSize())
	a.Equal(0, g.Deck().CardsLeft())

	all := append(g.Player(0).Hand(), g.Player(1).Hand()...)
	a.ElementsMatch(deck.New().Cards, all)

	g2 := newFixture(t).game
	a.Equal(g.Player(0).Hand(), g2.Player(0).Hand())
}

func TestNewGame_playerCount(t *testing.T) {
	_, err := NewGame(nil, []string{"a", "b", "c"}, nil, nil, nil, DefaultOptions())
	assert.EqualError(t, err, "expected 2 players, got 3")

	var countErr playable.PlayerCountError
	assert.True(t, errors.As(err, &countErr))
	assert.Equal(t, 3, countErr.Got)
}

func TestGame_FlipCards(t *testing.T) {
	a := assert.New(t)
	g := newFixture(t).game

	p1Card, _ := g.Player(0).Hand().FirstCard()
	p2Card, _ := g.Player(1).Hand().FirstCard()
	a.NoError(g.FlipCards())

	p1Actual, ok := g.ReturnTopCard(0)
	a.True(ok)
	p2Actual, ok := g.ReturnTopCard(1)
	a.True(ok)
	a.Equal(p1Card, p1Actual)
	a.Equal(p2Card, p2Actual)
	a.Equal(25, g.Player(0).HandSize())
}

func TestGame_FlipCards_noCards(t *testing.T) {
	g := setupGame(t, "", "2c").game
	assert.True(t, errors.Is(g.FlipCards(), ErrNoCards))
}

func TestGame_DecideRoundWinner(t *testing.T) {
	a := assert.New(t)
	g := newFixture(t).game

	a.Equal(Tie, g.DecideRoundWinner(card("2h"), card("2h")))
	a.Equal(Tie, g.DecideRoundWinner(card("2h"), card("2s")))
	a.Equal(1, g.DecideRoundWinner(card("2h"), card("14h")))
	a.Equal(0, g.DecideRoundWinner(card("14h"), card("2h")))
	a.Equal(0, g.DecideRoundWinner(card("3h"), card("2h")))
	a.Equal(1, g.DecideRoundWinner(card("2c"), card("3h")))

	// suit never matters and the comparison is antisymmetric
	for _, x := range deck.New().Cards {
		for _, y := range []deck.Card{card("2s"), card("9d"), card("14c")} {
			xy := g.DecideRoundWinner(x, y)
			yx := g.DecideRoundWinner(y, x)
			if x.Rank == y.Rank {
				a.Equal(Tie, xy)
				a.Equal(Tie, yx)
			} else {
				a.Equal(1-xy, yx)
			}
		}
	}
}

func TestGame_MakeMove(t *testing.T) {
	a := assert.New(t)
	g := newFixture(t).game

	a.NoError(g.SetTurn(0))
	g.MakeMove(card("3h"))
	top, ok := g.ReturnTopCard(0)
	a.True(ok)
	a.Equal(card("3h"), top)

	a.NoError(g.SetTurn(1))
	g.MakeMove(card("3c"))
	top, _ = g.ReturnTopCard(1)
	a.Equal(card("3c"), top)
	top, _ = g.ReturnTopCard(0)
	a.Equal(card("3h"), top, "the other pile is untouched")
}

func TestGame_PlayRound(t *testing.T) {
	a := assert.New(t)
	g := setupGame(t, "10h,4c", "2c,4h").game

	winner, err := g.PlayRound()
	a.NoError(err)
	a.Equal(0, winner)
	a.Equal("10h,2c", deck.CardsToString(g.winnings[0]))
	a.Equal(3, g.CardCount(0))
	a.Equal(1, g.CardCount(1))
	_, ok := g.ReturnTopCard(0)
	a.False(ok, "piles are cleared after a round")
}

func TestGame_PlayRound_war(t *testing.T) {
	a := assert.New(t)
	f := setupGame(t, "5h,2c,3c,4c,13h", "5s,2d,3d,4d,9h")

	winner, err := f.game.PlayRound()
	a.NoError(err)
	a.Equal(0, winner)
	a.Equal(10, f.game.CardCount(0))
	a.Equal(0, f.game.CardCount(1))
	a.True(f.out.Contains("War!"))
}

func TestGame_PlayRound_shortWar(t *testing.T) {
	a := assert.New(t)
	g := setupGame(t, "5h,14h", "5s,2d,3d,4d,9d").game

	// Daniel only has one card left so it goes face up
	winner, err := g.PlayRound()
	a.NoError(err)
	a.Equal(0, winner)
	a.Equal(7, g.CardCount(0))
	a.Equal(0, g.CardCount(1))
}

func TestGame_PlayRound_outOfCardsDuringWar(t *testing.T) {
	a := assert.New(t)
	g := setupGame(t, "5h", "5s,2d").game

	winner, err := g.PlayRound()
	a.NoError(err)
	a.Equal(1, winner)
	a.Equal(0, g.CardCount(0))
	a.Equal(3, g.CardCount(1))
}

func TestGame_PlayRound_picksUpWinnings(t *testing.T) {
	a := assert.New(t)
	g := setupGame(t, "14h", "2c,3c").game

	_, err := g.PlayRound()
	a.NoError(err)
	a.Equal(0, g.Player(0).HandSize())

	winner, err := g.PlayRound()
	a.NoError(err)
	a.Equal(0, winner)
	a.Equal("2c", deck.CardsToString(g.Player(0).Hand()))
	a.Equal("14h,3c", deck.CardsToString(g.winnings[0]))
}

func TestGame_StartGame(t *testing.T) {
	a := assert.New(t)
	f := setupGame(t, "14h,13h", "2c,3c")

	a.NoError(f.game.StartGame())
	a.Equal(2, f.in.Stalls)
	a.Equal([]*playable.Player{f.game.Player(0)}, f.game.Winners())
	a.Equal("Daniel wins!", f.out.Last())
	a.Equal(map[string]int{"Daniel": 1}, f.reg.Played)
	a.Equal(map[string]int{"Bradley": -1}, f.reg.Won)

	a.Equal(ErrGameOver, f.game.StartGame())
	_, err := f.game.PlayRound()
	a.Equal(ErrGameOver, err)
}

func TestGame_StartGame_maxRounds(t *testing.T) {
	a := assert.New(t)
	f := setupGame(t, "2h,3h,4h", "14c,13c")
	f.game.options.MaxRounds = 1

	a.NoError(f.game.StartGame())
	a.Equal(1, f.in.Stalls)
	a.Equal([]*playable.Player{f.game.Player(1)}, f.game.Winners())
}

func TestGame_StartGame_maxRoundsTie(t *testing.T) {
	a := assert.New(t)
	f := setupGame(t, "14h,2h", "2c,14c")
	f.game.options.MaxRounds = 2

	// each player takes one round and ends the cap with two cards, the first player wins the tie
	a.NoError(f.game.StartGame())
	a.Equal(2, f.in.Stalls)
	a.Equal(2, f.game.CardCount(0))
	a.Equal(2, f.game.CardCount(1))
	a.Equal([]*playable.Player{f.game.Player(0)}, f.game.Winners())
	a.Equal("Daniel wins!", f.out.Last())
}

func TestGame_StartGame_fullDeck(t *testing.T) {
	f := newFixture(t)

	assert.NoError(t, f.game.StartGame())
	assert.Len(t, f.game.Winners(), 1)

	winner := f.game.Winners()[0]
	assert.LessOrEqual(t, f.in.Stalls, DefaultOptions().MaxRounds)
	if f.in.Stalls < DefaultOptions().MaxRounds {
		// the game ended because a player ran out of cards
		idx := 0
		if winner == f.game.Player(1) {
			idx = 1
		}
		assert.Equal(t, 52, f.game.CardCount(idx))
	}
}

func TestNewGame_snapshot(t *testing.T) {
	g := newFixture(t).game
	snapshot.Validate(t, []string{deck.CardsToString(g.Player(0).Hand()), deck.CardsToString(g.Player(1).Hand())})
}
