// Package randutil derives reproducible random sources for decks and agents.
package randutil

import rand "math/rand/v2"

const goldenGamma = 0x9e3779b97f4a7c15

// New returns a PCG-backed *rand.Rand whose sequence depends only on seed.
func New(seed int64) *rand.Rand {
	return Stream(seed, 0)
}

// Stream returns an independent source for the n-th consumer of seed, so
// that parallel tables seeded from one value never share a sequence.
func Stream(seed int64, n uint64) *rand.Rand {
	s := uint64(seed) + n*goldenGamma
	return rand.New(rand.NewPCG(splitmix(s), splitmix(s+goldenGamma)))
}

// splitmix is the SplitMix64 finaliser.
func splitmix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
