package core

// RandomSource abstracts randomness for the domain so simulated outcomes can be pinned in tests
type RandomSource interface {
	// Intn returns a non-negative pseudo-random number in [0, n)
	Intn(n int) int
}
