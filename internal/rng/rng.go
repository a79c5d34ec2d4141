package rng

import "math"

// Generator provides a simple random number
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
}

// Seed returns a positive shuffle seed drawn from the generator
func Seed(g Generator) int64 {
	return int64(g.Intn(math.MaxInt32)) + 1
}
