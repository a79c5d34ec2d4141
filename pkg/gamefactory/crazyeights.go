package gamefactory

import (
	"cardgames/pkg/playable"
	"cardgames/pkg/playable/crazyeights"

	"github.com/sirupsen/logrus"
)

type crazyEightsFactory struct{}

func (crazyEightsFactory) Name() string {
	return "CRAZY EIGHTS"
}

func (crazyEightsFactory) MinPlayers() int {
	return crazyeights.MinPlayers
}

func (crazyEightsFactory) MaxPlayers() int {
	return crazyeights.MaxPlayers
}

func (crazyEightsFactory) CreateGame(logger logrus.FieldLogger, usernames []string, registry playable.UserRegistry, in playable.Input, out playable.Output, seed int64) (playable.Playable, error) {
	opts := crazyeights.DefaultOptions()
	if seed != 0 {
		opts.Seed = seed
	}

	game, err := crazyeights.NewGame(logger, usernames, registry, in, out, opts)
	if err != nil {
		return nil, err
	}

	return game, nil
}
