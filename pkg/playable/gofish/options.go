package gofish

// DefaultSeed is used when no seed is supplied so games are reproducible
const DefaultSeed = 12345

// Options are options for creating a new game of go fish
type Options struct {
	// Seed is the deck shuffle seed
	Seed int64
	// HandSize overrides how many cards each player is dealt. 0 deals 7 cards to 2-3 players and 5 otherwise
	HandSize int
}

// DefaultOptions returns the default options
func DefaultOptions() Options {
	return Options{
		Seed: DefaultSeed,
	}
}

// handSize returns how many cards each player is dealt
func (o Options) handSize(players int) int {
	if o.HandSize > 0 {
		return o.HandSize
	}

	if players <= 3 {
		return 7
	}

	return 5
}
