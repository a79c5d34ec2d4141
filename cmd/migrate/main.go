package main

import (
	"database/sql"
	"time"

	"cardgames/internal/config"
	"cardgames/pkg/db"

	"github.com/sirupsen/logrus"
)

func main() {
	dbh := waitForDB()
	if err := db.Migrate(dbh, config.Instance().Registry.MigrationsPath); err != nil {
		logrus.WithError(err).Fatal("could not run migrations")
	}
}

func waitForDB() *sql.DB {
	timeout := time.NewTimer(time.Second * 10)
	for {
		select {
		case <-timeout.C:
			logrus.Fatal("could not connect to database")
		default:
			dbh := func() *sql.DB {
				defer func() { _ = recover() }()
				return db.Instance()
			}()

			if dbh != nil {
				return dbh
			}

			time.Sleep(time.Millisecond * 500)
		}
	}
}
