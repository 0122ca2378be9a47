// Package rng provides the seedable uniform generator threaded through a
// guide-tree build.
//
// A Source is a single sequential stream. It is never global and is not safe
// for concurrent use: builds stay reproducible only when draws happen in a
// fixed order from one goroutine.
package rng

import "math/rand/v2"

// DefaultSeed is the seed used by the builder when none is configured.
const DefaultSeed uint64 = 42

// Source is a deterministic uniform generator.
type Source struct {
	r     *rand.Rand
	seed  uint64
	draws uint64
}

// New returns a Source seeded with seed. The same seed always yields the
// same sequence of draws.
func New(seed uint64) *Source {
	return &Source{
		r:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		seed: seed,
	}
}

// Intn returns a uniform integer in [0, n). It panics if n <= 0.
func (s *Source) Intn(n int) int {
	s.draws++
	return s.r.IntN(n)
}

// Seed returns the seed the stream was created with.
func (s *Source) Seed() uint64 {
	return s.seed
}

// Draws returns how many values have been drawn so far.
func (s *Source) Draws() uint64 {
	return s.draws
}
