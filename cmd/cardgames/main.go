package main

import (
	"errors"
	"flag"
	"io"
	"os"
	"strings"

	"cardgames/internal/config"
	"cardgames/internal/console"
	"cardgames/internal/rng"
	"cardgames/pkg/registry"
	"cardgames/pkg/selector"

	"github.com/sirupsen/logrus"
)

var (
	seed   = flag.Int64("seed", 0, "the shuffle seed, overrides the configuration (0 uses each game's default)")
	random = flag.Bool("random", false, "shuffle with a random seed instead of the configured one")
)

func main() {
	flag.Parse()
	setupLogger()

	cfg := config.Instance()
	if *seed != 0 {
		cfg.Seed = *seed
	}

	if *random {
		cfg.Seed = rng.Seed(rng.Crypto{})
		logrus.WithField("seed", cfg.Seed).Info("using a random seed")
	}

	store, closeStore, err := registry.Open(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("could not open the user registry")
	}

	c := console.New(os.Stdin, os.Stdout)
	runErr := selector.New(logrus.StandardLogger(), c, c, c, c, store, cfg.Seed).Run()

	if err := closeStore(); err != nil {
		logrus.WithError(err).Error("could not save the user registry")
	}

	if runErr != nil && !errors.Is(runErr, io.EOF) {
		logrus.WithError(runErr).Fatal("could not finish the game")
	}
}

func setupLogger() {
	if lvl := config.Instance().Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(config.Instance().Log.Format) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
