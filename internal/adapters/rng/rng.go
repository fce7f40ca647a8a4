// Package rng provides the random sources the service draws from.
package rng

import (
	"math/rand/v2"
	"sync"
)

// Std delegates to the auto-seeded top-level math/rand/v2 functions.
type Std struct{}

func (Std) IntN(n int) int   { return rand.IntN(n) }
func (Std) Float64() float64 { return rand.Float64() }

// Seeded is a reproducible PCG source that is safe for concurrent use.
type Seeded struct {
	mu sync.Mutex
	r  *rand.Rand
}

func NewSeeded(seed uint64) *Seeded {
	return &Seeded{r: rand.New(rand.NewPCG(seed, seed))}
}

func (s *Seeded) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.IntN(n)
}

func (s *Seeded) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Float64()
}
