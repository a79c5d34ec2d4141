package gofish

import "errors"

// ErrGameOver is an error when a turn is attempted after the game ended
var ErrGameOver = errors.New("game is over")

// ErrInvalidTarget happens when a player asks themselves or someone not at the table
var ErrInvalidTarget = errors.New("player cannot be asked")

// ErrRankNotInHand happens when a player asks for a rank they do not hold
var ErrRankNotInHand = errors.New("you must hold a card of the rank you ask for")
