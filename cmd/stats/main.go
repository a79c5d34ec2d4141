package main

import (
	"flag"
	"net/http"
	"os"
	"strings"
	"time"

	"cardgames/internal/config"
	"cardgames/internal/mux"
	"cardgames/pkg/registry"

	"github.com/gorilla/handlers"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

const readTimeout = time.Second * 5
const writeTimeout = time.Second * 10

// Version is the server version
var Version = "v0.0.0-dev"

var addr = flag.String("addr", "", "the listen address, overrides the configuration")

func main() {
	flag.Parse()
	setupLogger()

	cfg := config.Instance()
	if *addr != "" {
		cfg.Stats.Addr = *addr
	}

	store, closeStore, err := registry.OpenReadOnly(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("could not open the user registry")
	}

	defer func() {
		if err := closeStore(); err != nil {
			logrus.WithError(err).Error("could not close the user registry")
		}
	}()

	c := cors.New(cors.Options{
		AllowedHeaders: []string{"Origin", "Accept", "Content-Type", "X-Requested-With"},
		AllowedMethods: []string{http.MethodGet},
	})

	srv := &http.Server{
		Addr:         cfg.Stats.Addr,
		Handler:      handlers.CombinedLoggingHandler(os.Stdout, c.Handler(mux.NewMux(Version, store))),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	logrus.WithField("addr", srv.Addr).Info("listening")
	if err := srv.ListenAndServe(); err != nil {
		logrus.WithError(err).Error("server stopped")
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
