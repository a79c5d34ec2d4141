package war

import "errors"

// ErrGameOver is an error when a round is attempted after the game ended
var ErrGameOver = errors.New("game is over")

// ErrNoCards happens when a player has to flip a card but has none left
var ErrNoCards = errors.New("player has no cards left")
