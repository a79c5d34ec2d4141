package registry

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"cardgames/pkg/db"

	"github.com/lib/pq"
)

const queryTimeout = time.Second * 5

const pqDuplicateKeyErrorCode pq.ErrorCode = "23505"
const pqCheckViolationErrorCode pq.ErrorCode = "23514"

const userColumns = `
users.username,
users.games_played,
users.games_won`

// Postgres is a registry backed by the users table
type Postgres struct {
	db *sql.DB
}

// NewPostgres returns a registry using the database handle
func NewPostgres(dbh *sql.DB) *Postgres {
	return &Postgres{db: dbh}
}

func getUserByRow(row db.Scanner) (User, error) {
	var u User
	if err := row.Scan(&u.Username, &u.GamesPlayed, &u.GamesWon); err != nil {
		return User{}, err
	}

	return u, nil
}

// AddUser registers a new user
func (p *Postgres) AddUser(username string) error {
	username, err := CleanUsername(username)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	const query = `INSERT INTO users (username) VALUES ($1)`
	if _, err := p.db.ExecContext(ctx, query, username); err != nil {
		if err, ok := err.(*pq.Error); ok && err.Code == pqDuplicateKeyErrorCode {
			return ErrUserAlreadyExists
		}

		return err
	}

	return nil
}

// AddGamesPlayed adds delta to the user's played count
func (p *Postgres) AddGamesPlayed(username string, delta int) error {
	const query = `
UPDATE users
SET games_played = games_played + $1,
    updated = (NOW() AT TIME ZONE 'utc')
WHERE username = $2`

	return p.update(query, username, delta)
}

// AddGamesWon adds delta to the user's won count
func (p *Postgres) AddGamesWon(username string, delta int) error {
	const query = `
UPDATE users
SET games_won = games_won + $1,
    updated = (NOW() AT TIME ZONE 'utc')
WHERE username = $2`

	return p.update(query, username, delta)
}

func (p *Postgres) update(query, username string, delta int) error {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, query, delta, username)
	if err != nil {
		if err, ok := err.(*pq.Error); ok && err.Code == pqCheckViolationErrorCode {
			return ErrInvalidDelta
		}

		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if n == 0 {
		return ErrUserNotFound
	}

	return tx.Commit()
}

// User returns a single user
func (p *Postgres) User(username string) (User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	const query = `
SELECT ` + userColumns + `
FROM users
WHERE username = $1`

	u, err := getUserByRow(p.db.QueryRowContext(ctx, query, username))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrUserNotFound
		}

		return User{}, err
	}

	return u, nil
}

// Users returns every user sorted by username
func (p *Postgres) Users() ([]User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	const query = `
SELECT ` + userColumns + `
FROM users
ORDER BY username`

	rows, err := p.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]User, 0)
	for rows.Next() {
		u, err := getUserByRow(rows)
		if err != nil {
			return nil, err
		}

		users = append(users, u)
	}

	return users, rows.Err()
}
