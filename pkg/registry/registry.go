package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

// Registry is an in-memory registry that can be imported from and exported to a yaml file
type Registry struct {
	mu    sync.Mutex
	users map[string]*User
}

// file is the yaml layout of an exported registry
type file struct {
	Users []User `yaml:"users"`
}

// New returns an empty registry
func New() *Registry {
	return &Registry{
		users: make(map[string]*User),
	}
}

// Import reads a registry from path
// Any failure is logged and an empty registry is returned instead
func Import(path string) *Registry {
	log := logrus.WithField("path", path)
	r, err := load(path)
	if err != nil {
		log.WithError(err).Warn("could not import users, starting with an empty registry")
		return New()
	}

	log.WithField("users", len(r.users)).Info("imported users")
	return r
}

func load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}

	r := New()
	for i := range f.Users {
		u := f.Users[i]
		username, err := CleanUsername(u.Username)
		if err != nil {
			return nil, fmt.Errorf("user %d: %w", i, err)
		}

		if _, found := r.users[username]; found {
			return nil, fmt.Errorf("%s: %w", username, ErrUserAlreadyExists)
		}

		if u.GamesPlayed < 0 || u.GamesWon < 0 {
			return nil, fmt.Errorf("%s: %w", username, ErrInvalidDelta)
		}

		u.Username = username
		r.users[username] = &u
	}

	return r, nil
}

// Export writes the registry to path
// If path cannot be written, a users-<unix timestamp>.yaml file is written next to it.
// Returns the path that was written
func (r *Registry) Export(path string) (string, error) {
	data, err := r.marshal()
	if err != nil {
		return "", err
	}

	err = os.WriteFile(path, data, 0600)
	if err == nil {
		return path, nil
	}

	fallback := filepath.Join(filepath.Dir(path), fmt.Sprintf("users-%d.yaml", time.Now().Unix()))
	logrus.WithError(err).WithFields(logrus.Fields{
		"path":     path,
		"fallback": fallback,
	}).Warn("could not export users, trying the fallback file")

	if err := os.WriteFile(fallback, data, 0600); err != nil {
		return "", err
	}

	return fallback, nil
}

func (r *Registry) marshal() ([]byte, error) {
	users, _ := r.Users()
	return yaml.Marshal(file{Users: users})
}

// AddUser registers a new user
func (r *Registry) AddUser(username string) error {
	username, err := CleanUsername(username)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, found := r.users[username]; found {
		return ErrUserAlreadyExists
	}

	r.users[username] = &User{Username: username}
	return nil
}

// AddGamesPlayed adds delta to the user's played count
func (r *Registry) AddGamesPlayed(username string, delta int) error {
	return r.update(username, func(u *User) *int {
		return &u.GamesPlayed
	}, delta)
}

// AddGamesWon adds delta to the user's won count
func (r *Registry) AddGamesWon(username string, delta int) error {
	return r.update(username, func(u *User) *int {
		return &u.GamesWon
	}, delta)
}

func (r *Registry) update(username string, field func(u *User) *int, delta int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, found := r.users[username]
	if !found {
		return ErrUserNotFound
	}

	count := field(u)
	if *count+delta < 0 {
		return ErrInvalidDelta
	}

	*count += delta
	return nil
}

// User returns a copy of the user
func (r *Registry) User(username string) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, found := r.users[username]
	if !found {
		return User{}, ErrUserNotFound
	}

	return *u, nil
}

// Users returns a copy of every user sorted by username
func (r *Registry) Users() ([]User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users := make([]User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, *u)
	}

	sort.Slice(users, func(i, j int) bool {
		return users[i].Username < users[j].Username
	})

	return users, nil
}
