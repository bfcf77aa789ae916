// Package random provides RandomSource implementations backed by math/rand/v2.
package random

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Source is a PCG-backed RandomSource safe for concurrent use.
type Source struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New returns a Source seeded from the clock.
func New() *Source {
	now := uint64(time.Now().UnixNano())
	return NewSeeded(now, now>>32|now<<32)
}

// NewSeeded returns a Source with a fixed seed. Equal seeds give equal sequences.
func NewSeeded(seed1, seed2 uint64) *Source {
	return &Source{rng: rand.New(rand.NewPCG(seed1, seed2))}
}

// IntN returns a uniform integer in [0, n). It panics if n <= 0.
func (s *Source) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}
