package playable

import (
	"errors"
	"fmt"
)

// ErrDuplicateUsername is returned when the same username is seated twice
var ErrDuplicateUsername = errors.New("username is already seated")

// ErrNoPlayers is returned when a table is created without any players
var ErrNoPlayers = errors.New("at least one player is required")

// ErrCardNotInHand happens when the player tries to give up a card they don't have
var ErrCardNotInHand = errors.New("card is not in player's hand")

// PlayerCountError is an error on the number of players in the game
type PlayerCountError struct {
	Min int
	Max int
	Got int
}

func (p PlayerCountError) Error() string {
	if p.Min == p.Max {
		return fmt.Sprintf("expected %d players, got %d", p.Min, p.Got)
	}

	return fmt.Sprintf("expected %d–%d players, got %d", p.Min, p.Max, p.Got)
}

// CheckPlayerCount returns a PlayerCountError if got is not within [min, max]
func CheckPlayerCount(min, max, got int) error {
	if got < min || got > max {
		return PlayerCountError{Min: min, Max: max, Got: got}
	}

	return nil
}
