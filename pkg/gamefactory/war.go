package gamefactory

import (
	"cardgames/pkg/playable"
	"cardgames/pkg/playable/war"

	"github.com/sirupsen/logrus"
)

type warFactory struct{}

func (warFactory) Name() string {
	return "WAR"
}

func (warFactory) MinPlayers() int {
	return war.MinPlayers
}

func (warFactory) MaxPlayers() int {
	return war.MaxPlayers
}

func (warFactory) CreateGame(logger logrus.FieldLogger, usernames []string, registry playable.UserRegistry, in playable.Input, out playable.Output, seed int64) (playable.Playable, error) {
	opts := war.DefaultOptions()
	if seed != 0 {
		opts.Seed = seed
	}

	game, err := war.NewGame(logger, usernames, registry, in, out, opts)
	if err != nil {
		return nil, err
	}

	return game, nil
}
