package rng

// Generator provides a source of random numbers for shuffling
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
}
