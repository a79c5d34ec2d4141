package crazyeights

// DefaultSeed is used when no seed is supplied so games are reproducible
const DefaultSeed = 12345

// Options are options for creating a new crazy eights game
type Options struct {
	// HandSize is how many cards each player is dealt
	HandSize int
	// Seed is the deck shuffle seed
	Seed int64
}

// DefaultOptions returns the default options
func DefaultOptions() Options {
	return Options{
		HandSize: 1,
		Seed:     DefaultSeed,
	}
}
