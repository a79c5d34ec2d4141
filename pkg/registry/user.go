package registry

import (
	"strings"
	"unicode/utf8"
)

// maxUsernameLength matches the users.username column
const maxUsernameLength = 64

// User is a registered player and their results
type User struct {
	Username    string `yaml:"username" json:"username"`
	GamesPlayed int    `yaml:"gamesPlayed" json:"gamesPlayed"`
	GamesWon    int    `yaml:"gamesWon" json:"gamesWon"`
}

// Store is a registry that can also be read back
type Store interface {
	AddUser(username string) error
	AddGamesPlayed(username string, delta int) error
	AddGamesWon(username string, delta int) error

	// User returns a single user or ErrUserNotFound
	User(username string) (User, error)
	// Users returns every user sorted by username
	Users() ([]User, error)
}

// CleanUsername trims the username and makes sure it can be stored
func CleanUsername(username string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" || utf8.RuneCountInString(username) > maxUsernameLength {
		return "", ErrInvalidUsername
	}

	return username, nil
}
