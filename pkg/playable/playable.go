package playable

import "cardgames/pkg/deck"

// Playable is a game that can be played to completion
type Playable interface {
	// Name returns the name of the game
	Name() string

	// StartGame runs the game until a winner is determined
	// An error is only returned if a collaborator fails or the game cannot continue
	StartGame() error

	// Winners returns the winners once the game is over, nil otherwise
	Winners() []*Player
}

// Input allows games to retrieve input from a user
type Input interface {
	// GetCard returns a picked card.
	// The first character is the suit (one of C, D, H, S), followed by the rank (A, 2-10, J, Q, K)
	GetCard() (string, error)

	// DrawCard returns true if a card should be drawn from the deck instead of playing
	DrawCard() (bool, error)

	// GetSuit returns a picked suit
	GetSuit() (deck.Suit, error)

	// GetRank returns a picked rank
	GetRank() (int, error)

	// GetPlayerUsername returns one of the candidates picked by the current player
	GetPlayerUsername(currentUsername string, candidates []string) (string, error)

	// Stall waits for the user to acknowledge before continuing
	Stall() error
}

// Output allows games to send output back to the user
type Output interface {
	// SendOutput renders the value to the user
	SendOutput(v interface{})
}

// UserRegistry records the results of a game for each user
// Implementations must be safe for concurrent use
type UserRegistry interface {
	AddUser(username string) error
	AddGamesPlayed(username string, delta int) error
	AddGamesWon(username string, delta int) error
}
