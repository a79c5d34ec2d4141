package console

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"cardgames/pkg/deck"
	"cardgames/pkg/playable"
	"cardgames/pkg/selector"

	"github.com/stretchr/testify/assert"
)

var _ playable.Input = &Console{}
var _ playable.Output = &Console{}
var _ selector.Input = &Console{}

func newConsole(input string) (*Console, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return New(strings.NewReader(input), out), out
}

func TestConsole_GetCard(t *testing.T) {
	a := assert.New(t)
	c, out := newConsole(" h8 \nd10")

	card, err := c.GetCard()
	a.NoError(err)
	a.Equal("H8", card)
	a.Contains(out.String(), "Card to play")

	card, err = c.GetCard()
	a.NoError(err)
	a.Equal("D10", card, "the last line does not need a newline")

	_, err = c.GetCard()
	a.Equal(io.EOF, err)
}

func TestConsole_DrawCard(t *testing.T) {
	a := assert.New(t)
	c, _ := newConsole("y\nYes\n\nno\n")

	for _, expected := range []bool{true, true, false, false} {
		draw, err := c.DrawCard()
		a.NoError(err)
		a.Equal(expected, draw)
	}
}

func TestConsole_GetSuit(t *testing.T) {
	a := assert.New(t)
	c, _ := newConsole("h\nspades\nx\n")

	suit, err := c.GetSuit()
	a.NoError(err)
	a.Equal(deck.Hearts, suit)

	suit, _ = c.GetSuit()
	a.Equal(deck.Spades, suit)

	suit, _ = c.GetSuit()
	a.Equal(deck.Suit("x"), suit)
}

func TestConsole_GetRank(t *testing.T) {
	a := assert.New(t)
	c, out := newConsole("z\nq\n10\n")

	rank, err := c.GetRank()
	a.NoError(err)
	a.Equal(deck.Queen, rank)
	a.Contains(out.String(), `"z" is not a rank`)

	rank, _ = c.GetRank()
	a.Equal(10, rank)

	_, err = c.GetRank()
	a.Equal(io.EOF, err)
}

func TestConsole_GetPlayerUsername(t *testing.T) {
	a := assert.New(t)
	c, out := newConsole("2\nAna\n9\n")
	candidates := []string{"Bradley", "Ana"}

	username, err := c.GetPlayerUsername("Daniel", candidates)
	a.NoError(err)
	a.Equal("Ana", username)
	a.Contains(out.String(), "Daniel, pick a player [1] Bradley [2] Ana")

	username, _ = c.GetPlayerUsername("Daniel", candidates)
	a.Equal("Ana", username)

	username, _ = c.GetPlayerUsername("Daniel", candidates)
	a.Equal("9", username)
}

func TestConsole_Stall(t *testing.T) {
	a := assert.New(t)
	c, out := newConsole("\n")

	a.NoError(c.Stall())
	a.NotContains(out.String(), clearScreen, "a buffer is not a terminal")
	a.Equal(io.EOF, c.Stall())
}

func TestConsole_selector(t *testing.T) {
	a := assert.New(t)
	c, out := newConsole("1\nabc\n3\n Daniel \n")

	sel, err := c.GetUserSelection()
	a.NoError(err)
	a.Equal(1, sel)

	count, err := c.GetPlayerCount(2, 5)
	a.NoError(err)
	a.Equal(-1, count)
	a.Contains(out.String(), "Players (2-5)")

	count, _ = c.GetPlayerCount(2, 5)
	a.Equal(3, count)

	username, err := c.GetUsername()
	a.NoError(err)
	a.Equal("Daniel", username)

	_, err = c.GetUserSelection()
	a.Equal(io.EOF, err)
}

func TestConsole_SendOutput(t *testing.T) {
	c, out := newConsole("")
	c.SendOutput("Daniel wins!")
	assert.Equal(t, "Daniel wins!\n", out.String())
}
