package war

// DefaultSeed is used when no seed is supplied so games are reproducible
const DefaultSeed = 12345

// Options are options for creating a new game of war
type Options struct {
	// Seed is the deck shuffle seed
	Seed int64
	// MaxRounds ends the game early, the player holding the most cards wins. 0 means no limit
	MaxRounds int
	// WarCards is how many face-down cards each player adds when the flipped cards tie
	WarCards int
}

// DefaultOptions returns the default options
func DefaultOptions() Options {
	return Options{
		Seed:      DefaultSeed,
		MaxRounds: 1000,
		WarCards:  3,
	}
}
