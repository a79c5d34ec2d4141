package registry

import (
	"fmt"

	"cardgames/internal/config"
	"cardgames/pkg/db"

	"github.com/sirupsen/logrus"
)

// Open returns the registry the configuration asks for, migrating a postgres database first.
// The returned func saves a file registry or closes the database connection
func Open(cfg config.Config) (Store, func() error, error) {
	return open(cfg, false)
}

// OpenReadOnly returns the registry without migrating the database.
// The returned func closes the database connection and never saves a file registry
func OpenReadOnly(cfg config.Config) (Store, func() error, error) {
	return open(cfg, true)
}

func open(cfg config.Config, readOnly bool) (Store, func() error, error) {
	switch cfg.Registry.Driver {
	case config.DriverFile, "":
		path := cfg.Registry.File
		r := Import(path)
		if readOnly {
			return r, func() error { return nil }, nil
		}

		save := func() error {
			written, err := r.Export(path)
			if err != nil {
				return err
			}

			logrus.WithField("path", written).Info("exported users")
			return nil
		}

		return r, save, nil
	case config.DriverPostgres:
		dbh, err := db.Open(cfg.Registry.PGDSN)
		if err != nil {
			return nil, nil, err
		}

		if !readOnly {
			if err := db.Migrate(dbh, cfg.Registry.MigrationsPath); err != nil {
				_ = dbh.Close()
				return nil, nil, err
			}
		}

		return NewPostgres(dbh), dbh.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown registry driver: %s", cfg.Registry.Driver)
	}
}
