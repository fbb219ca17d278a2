package splitmix64

import (
	"math/rand"
	randv2 "math/rand/v2"
)

var _ randv2.Source = (*State)(nil)

// Uint64 is Next64 under the name math/rand/v2 expects.
func (g *State) Uint64() uint64 {
	return g.Next64()
}

var _ rand.Source = (*Source)(nil)
var _ rand.Source64 = (*Source)(nil)

// Source adapts a State to math/rand.
type Source struct {
	state State
}

// NewSource returns a math/rand source seeded with the bit pattern of seed.
func NewSource(seed int64) *Source {
	return &Source{state: New(uint64(seed))}
}

// Seed implements rand.Source.
func (s *Source) Seed(seed int64) {
	s.state.Seed(uint64(seed))
}

// Uint64 implements rand.Source64.
func (s *Source) Uint64() uint64 {
	return s.state.Next64()
}

// Int63 keeps the top 63 bits of the next 64-bit value.
func (s *Source) Int63() int64 {
	return int64(s.state.Next64() >> 1)
}
