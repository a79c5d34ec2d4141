package selector

import (
	"errors"
	"fmt"
	"strings"

	"cardgames/pkg/gamefactory"
	"cardgames/pkg/playable"
	"cardgames/pkg/registry"

	"github.com/sirupsen/logrus"
)

// width of the menu banner
const width = 39

// Input retrieves the menu answers from a user
type Input interface {
	// GetUserSelection returns the picked menu entry, 0 exits
	GetUserSelection() (int, error)
	// GetPlayerCount returns how many players will play
	GetPlayerCount(min, max int) (int, error)
	// GetUsername returns the username of the next player
	GetUsername() (string, error)
}

// Selector shows the game menu and runs the picked game
type Selector struct {
	logger   logrus.FieldLogger
	in       Input
	out      playable.Output
	gameIn   playable.Input
	gameOut  playable.Output
	registry playable.UserRegistry
	seed     int64
	games    []string
	dashes   string
}

// New returns a new selector. A seed of 0 plays every game with its default seed
func New(logger logrus.FieldLogger, in Input, out playable.Output, gameIn playable.Input, gameOut playable.Output, registry playable.UserRegistry, seed int64) *Selector {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Selector{
		logger:   logger,
		in:       in,
		out:      out,
		gameIn:   gameIn,
		gameOut:  gameOut,
		registry: registry,
		seed:     seed,
		games:    gamefactory.Names(),
		dashes:   strings.Repeat("=", width),
	}
}

// Run shows the menu and plays games until the user exits
func (s *Selector) Run() error {
	for {
		s.displayMenu()

		sel, err := s.in.GetUserSelection()
		if err != nil {
			return err
		}

		for {
			if sel == 0 {
				return nil
			}

			ok, err := s.handleUserSelection(sel)
			if err != nil {
				return err
			}

			if ok {
				break
			}

			s.send("Invalid menu selection.")
			if sel, err = s.in.GetUserSelection(); err != nil {
				return err
			}
		}
	}
}

func (s *Selector) displayMenu() {
	s.send("%s\n%s\n%s", s.dashes, center("GAME SELECT"), s.dashes)
	for i, game := range s.games {
		s.send("[%d] %s", i+1, game)
	}

	s.send("[0] EXIT")
	s.send("%s", s.dashes)
}

// handleUserSelection plays the picked game. Returns false if the selection is invalid
func (s *Selector) handleUserSelection(sel int) (bool, error) {
	if sel < 1 || sel > len(s.games) {
		return false, nil
	}

	factory, err := gamefactory.Get(s.games[sel-1])
	if err != nil {
		if errors.Is(err, gamefactory.ErrUnknownVariant) {
			return false, nil
		}

		return false, err
	}

	s.send("%s\n%s\n%s", s.dashes, center(factory.Name()), s.dashes)

	count, err := s.playerCount(factory.MinPlayers(), factory.MaxPlayers())
	if err != nil {
		return false, err
	}

	usernames, err := s.usernames(count)
	if err != nil {
		return false, err
	}

	game, err := factory.CreateGame(s.logger, usernames, s.registry, s.gameIn, s.gameOut, s.seed)
	if err != nil {
		return false, err
	}

	if err := game.StartGame(); err != nil {
		return false, fmt.Errorf("%s: %w", game.Name(), err)
	}

	return true, nil
}

func (s *Selector) playerCount(min, max int) (int, error) {
	for {
		if min == max {
			s.send("%d players", min)
			return min, nil
		}

		s.send("How many players? (%d-%d)", min, max)
		count, err := s.in.GetPlayerCount(min, max)
		if err != nil {
			return 0, err
		}

		if count >= min && count <= max {
			return count, nil
		}

		s.send("Enter a number between %d and %d", min, max)
	}
}

// usernames asks for a unique username per seat and registers each one
func (s *Selector) usernames(count int) ([]string, error) {
	usernames := make([]string, 0, count)
	seen := make(map[string]bool)

	for len(usernames) < count {
		s.send("Username for player %d:", len(usernames)+1)
		answer, err := s.in.GetUsername()
		if err != nil {
			return nil, err
		}

		username, err := registry.CleanUsername(answer)
		if err != nil {
			s.send("%s, try again", err)
			continue
		}

		if seen[username] {
			s.send("%s is already playing, try again", username)
			continue
		}

		if s.registry != nil {
			if err := s.registry.AddUser(username); err != nil && !errors.Is(err, registry.ErrUserAlreadyExists) {
				s.logger.WithError(err).WithField("username", username).Warn("could not register user")
			}
		}

		seen[username] = true
		usernames = append(usernames, username)
	}

	return usernames, nil
}

func (s *Selector) send(format string, a ...interface{}) {
	if s.out != nil {
		s.out.SendOutput(fmt.Sprintf(format, a...))
	}
}

func center(title string) string {
	pad := (width - len(title)) / 2
	if pad < 0 {
		pad = 0
	}

	return strings.Repeat(" ", pad) + title
}
