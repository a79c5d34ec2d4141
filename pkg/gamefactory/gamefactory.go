package gamefactory

import (
	"errors"
	"fmt"
	"strings"

	"cardgames/pkg/playable"

	"github.com/sirupsen/logrus"
)

// ErrUnknownVariant is returned when no factory matches the requested name
var ErrUnknownVariant = errors.New("unknown game")

// names are the factory keys in menu order
var names = []string{
	"CRAZY EIGHTS",
	"WAR",
	"GO FISH",
}

var factories = map[string]GameFactory{
	"CRAZY EIGHTS": crazyEightsFactory{},
	"WAR":          warFactory{},
	"GO FISH":      goFishFactory{},
}

// GameFactory is a factory for creating games that implement the Playable interface
type GameFactory interface {
	// Name is the name shown in the menu
	Name() string
	MinPlayers() int
	MaxPlayers() int
	// CreateGame deals a new game. A seed of 0 uses the game's default options
	CreateGame(logger logrus.FieldLogger, usernames []string, registry playable.UserRegistry, in playable.Input, out playable.Output, seed int64) (playable.Playable, error)
}

// Get returns a factory by the given name, ignoring case and surrounding whitespace
func Get(name string) (GameFactory, error) {
	factory, ok := factories[strings.ToUpper(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
	}

	return factory, nil
}

// Create looks up the factory and creates a game with it
func Create(logger logrus.FieldLogger, name string, usernames []string, registry playable.UserRegistry, in playable.Input, out playable.Output, seed int64) (playable.Playable, error) {
	factory, err := Get(name)
	if err != nil {
		return nil, err
	}

	return factory.CreateGame(logger, usernames, registry, in, out, seed)
}

// Names returns the name of every game in menu order
func Names() []string {
	return append([]string{}, names...)
}
