package playable

import (
	"fmt"
	"strings"

	"cardgames/pkg/deck"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Table holds the state every game shares: the seated players, the undealt deck and whose turn it is
// Games embed a *Table and add their own rules on top
type Table struct {
	// ID identifies a single game for logging purposes
	ID string

	players         []*Player
	deck            *deck.Deck
	currPlayerIndex int

	registry UserRegistry
	in       Input
	out      Output
	logger   logrus.FieldLogger
}

// NewTable seats one player per username in the order given and builds a full, unshuffled deck
func NewTable(logger logrus.FieldLogger, gameName string, usernames []string, registry UserRegistry, in Input, out Output) (*Table, error) {
	if len(usernames) == 0 {
		return nil, ErrNoPlayers
	}

	seen := make(map[string]bool)
	players := make([]*Player, len(usernames))
	for i, username := range usernames {
		if seen[username] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateUsername, username)
		}

		seen[username] = true
		players[i] = NewPlayer(username)
	}

	if logger == nil {
		logger = logrus.StandardLogger()
	}

	id := uuid.New().String()
	return &Table{
		ID:              id,
		players:         players,
		deck:            deck.New(),
		currPlayerIndex: 0,
		registry:        registry,
		in:              in,
		out:             out,
		logger: logger.WithFields(logrus.Fields{
			"gameID": id,
			"game":   gameName,
		}),
	}, nil
}

// Players returns the players in turn order
func (t *Table) Players() []*Player {
	return append([]*Player{}, t.players...)
}

// Player returns the player at the index
func (t *Table) Player(i int) *Player {
	return t.players[i]
}

// PlayerCount returns the number of seated players
func (t *Table) PlayerCount() int {
	return len(t.players)
}

// PlayerByUsername returns the player with the username
func (t *Table) PlayerByUsername(username string) (*Player, bool) {
	for _, p := range t.players {
		if p.Username == username {
			return p, true
		}
	}

	return nil, false
}

// Usernames returns the usernames in turn order
func (t *Table) Usernames() []string {
	usernames := make([]string, len(t.players))
	for i, p := range t.players {
		usernames[i] = p.Username
	}

	return usernames
}

// Deck returns the undealt cards
func (t *Table) Deck() *deck.Deck {
	return t.deck
}

// CurrentPlayer returns the player whose turn it is
func (t *Table) CurrentPlayer() *Player {
	return t.players[t.currPlayerIndex]
}

// CurrentPlayerIndex returns the index of the player whose turn it is
func (t *Table) CurrentPlayerIndex() int {
	return t.currPlayerIndex
}

// SetTurn makes it the turn of the player at index i
func (t *Table) SetTurn(i int) error {
	if i < 0 || i >= len(t.players) {
		return fmt.Errorf("no player at index %d", i)
	}

	t.currPlayerIndex = i
	return nil
}

// NextTurn advances the turn to the next player
func (t *Table) NextTurn() {
	t.currPlayerIndex = (t.currPlayerIndex + 1) % len(t.players)
}

// Deal deals count cards to every player, one at a time in turn order
func (t *Table) Deal(count int) error {
	for i := 0; i < count; i++ {
		for _, player := range t.players {
			card, err := t.deck.Draw()
			if err != nil {
				return err
			}

			player.AddCard(card)
		}
	}

	return nil
}

// In returns the input collaborator
func (t *Table) In() Input {
	return t.in
}

// Send sends a formatted message to the output collaborator
func (t *Table) Send(format string, a ...interface{}) {
	if t.out != nil {
		t.out.SendOutput(fmt.Sprintf(format, a...))
	}
}

// Logger returns the logger for this game
func (t *Table) Logger() logrus.FieldLogger {
	return t.logger
}

// RecordResult credits each winner with a game played and takes a win away from every other player.
// Registry failures, including a won count that cannot go below zero, are logged and never stop the game from finishing
func (t *Table) RecordResult(winners ...*Player) {
	if t.registry == nil {
		return
	}

	won := make(map[*Player]bool)
	for _, w := range winners {
		won[w] = true
	}

	for _, p := range t.players {
		log := t.logger.WithField("username", p.Username)
		if won[p] {
			if err := t.registry.AddGamesPlayed(p.Username, 1); err != nil {
				log.WithError(err).Warn("could not record game played")
			}

			continue
		}

		if err := t.registry.AddGamesWon(p.Username, -1); err != nil {
			log.WithError(err).Warn("could not record game not won")
		}
	}
}

// AnnounceWinners sends the winners to the output collaborator
func (t *Table) AnnounceWinners(winners []*Player) {
	names := make([]string, len(winners))
	for i, w := range winners {
		names[i] = w.Username
	}

	t.logger.WithField("winners", names).Info("game over")
	if len(names) == 1 {
		t.Send("%s wins!", names[0])
	} else {
		t.Send("%s tie for the win!", strings.Join(names, " and "))
	}
}
