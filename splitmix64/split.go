package splitmix64

// Split returns an independent State seeded with g's next 64-bit value.
func (g *State) Split() State {
	return New(g.Next64())
}

// Advance skips n 64-bit draws. The 32-bit cache is left as is, the same as
// it would be after n calls to Next64.
func (g *State) Advance(n uint64) {
	g.counter += n * IncrementConstant
}
