// Package playabletest provides scripted collaborators for testing games
package playabletest

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"cardgames/pkg/deck"
)

// ErrNoMoreInput is returned once a script runs out of answers
var ErrNoMoreInput = errors.New("no more scripted input")

// Input replays scripted answers in order. Each method has its own queue
type Input struct {
	Cards     []string
	Draws     []bool
	Suits     []deck.Suit
	Ranks     []int
	Usernames []string

	// Stalls counts calls to Stall()
	Stalls int
	// Asked records the candidates passed to each GetPlayerUsername call
	Asked [][]string
}

// GetCard returns the next scripted card token
func (i *Input) GetCard() (string, error) {
	if len(i.Cards) == 0 {
		return "", fmt.Errorf("GetCard: %w", ErrNoMoreInput)
	}

	card := i.Cards[0]
	i.Cards = i.Cards[1:]
	return card, nil
}

// DrawCard returns the next scripted draw decision, false if none are left
func (i *Input) DrawCard() (bool, error) {
	if len(i.Draws) == 0 {
		return false, nil
	}

	draw := i.Draws[0]
	i.Draws = i.Draws[1:]
	return draw, nil
}

// GetSuit returns the next scripted suit
func (i *Input) GetSuit() (deck.Suit, error) {
	if len(i.Suits) == 0 {
		return "", fmt.Errorf("GetSuit: %w", ErrNoMoreInput)
	}

	suit := i.Suits[0]
	i.Suits = i.Suits[1:]
	return suit, nil
}

// GetRank returns the next scripted rank
func (i *Input) GetRank() (int, error) {
	if len(i.Ranks) == 0 {
		return 0, fmt.Errorf("GetRank: %w", ErrNoMoreInput)
	}

	rank := i.Ranks[0]
	i.Ranks = i.Ranks[1:]
	return rank, nil
}

// GetPlayerUsername returns the next scripted username
func (i *Input) GetPlayerUsername(currentUsername string, candidates []string) (string, error) {
	i.Asked = append(i.Asked, candidates)
	if len(i.Usernames) == 0 {
		return "", fmt.Errorf("GetPlayerUsername: %w", ErrNoMoreInput)
	}

	username := i.Usernames[0]
	i.Usernames = i.Usernames[1:]
	return username, nil
}

// Stall never blocks
func (i *Input) Stall() error {
	i.Stalls++
	return nil
}

// Output records everything sent to it
type Output struct {
	Messages []string
}

// SendOutput records the value
func (o *Output) SendOutput(v interface{}) {
	o.Messages = append(o.Messages, fmt.Sprint(v))
}

// Contains returns true if any message contains substr
func (o *Output) Contains(substr string) bool {
	for _, m := range o.Messages {
		if strings.Contains(m, substr) {
			return true
		}
	}

	return false
}

// Last returns the last message sent
func (o *Output) Last() string {
	if len(o.Messages) == 0 {
		return ""
	}

	return o.Messages[len(o.Messages)-1]
}

// Registry is an in-memory registry that can be made to fail
type Registry struct {
	mu     sync.Mutex
	Played map[string]int
	Won    map[string]int
	Err    error
}

// NewRegistry returns an empty registry
func NewRegistry() *Registry {
	return &Registry{
		Played: make(map[string]int),
		Won:    make(map[string]int),
	}
}

// AddUser returns Err if set
func (r *Registry) AddUser(username string) error {
	return r.Err
}

// AddGamesPlayed adds delta to the user's played count unless Err is set
func (r *Registry) AddGamesPlayed(username string, delta int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}

	r.Played[username] += delta
	return nil
}

// AddGamesWon adds delta to the user's won count unless Err is set
func (r *Registry) AddGamesWon(username string, delta int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}

	r.Won[username] += delta
	return nil
}
