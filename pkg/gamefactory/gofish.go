package gamefactory

import (
	"cardgames/pkg/playable"
	"cardgames/pkg/playable/gofish"

	"github.com/sirupsen/logrus"
)

type goFishFactory struct{}

func (goFishFactory) Name() string {
	return "GO FISH"
}

func (goFishFactory) MinPlayers() int {
	return gofish.MinPlayers
}

func (goFishFactory) MaxPlayers() int {
	return gofish.MaxPlayers
}

func (goFishFactory) CreateGame(logger logrus.FieldLogger, usernames []string, registry playable.UserRegistry, in playable.Input, out playable.Output, seed int64) (playable.Playable, error) {
	opts := gofish.DefaultOptions()
	if seed != 0 {
		opts.Seed = seed
	}

	game, err := gofish.NewGame(logger, usernames, registry, in, out, opts)
	if err != nil {
		return nil, err
	}

	return game, nil
}
