package crazyeights

import "errors"

// ErrIllegalMove happens when the card does not follow the suit or rank on the field
var ErrIllegalMove = errors.New("card does not match the active suit or the top card")

// ErrInvalidSuit happens when an eight is played without a valid new suit
var ErrInvalidSuit = errors.New("an eight needs one of the four suits")

// ErrInvalidHandSize is an error when the options ask for an impossible deal
var ErrInvalidHandSize = errors.New("hand size must be greater than 0")

// ErrGameOver is an error when a move is attempted after the game ended
var ErrGameOver = errors.New("game is over")
