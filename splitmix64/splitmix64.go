// Package splitmix64 implements the SplitMix64 pseudo-random number generator.
//
// A State is a plain value owned by the caller. It is not safe for concurrent
// use; give each goroutine its own State (see State.Split).
package splitmix64

const (
	IncrementConstant = 0x9e3779b97f4a7c15
	mixConstant1      = 0xbf58476d1ce4e5b9
	mixConstant2      = 0x94d049bb133111eb
)

func next(x0 uint64) uint64 {
	x0 = (x0 ^ (x0 >> 30)) * mixConstant1
	x0 = (x0 ^ (x0 >> 27)) * mixConstant2
	return x0 ^ (x0 >> 31)
}

// Splitmix64 advances a bare counter by one step and returns the mixed output.
func Splitmix64(state *uint64) uint64 {
	*state += IncrementConstant
	return next(*state)
}

// State is the generator state. The zero value is a generator seeded with 0.
type State struct {
	counter   uint64 // Advanced by IncrementConstant on every 64-bit draw.
	hasUint32 bool   // Set while uinteger holds an unreturned low half.
	uinteger  uint32 // Low half of the last 64-bit draw taken by Next32.
}

// New returns a State seeded with seed. Every value, including zero, is a valid seed.
func New(seed uint64) State {
	return State{counter: seed}
}

// Seed re-initializes g with seed and drops any cached 32-bit half.
func (g *State) Seed(seed uint64) {
	*g = State{counter: seed}
}

// Next64 returns the next 64-bit value. It never touches the 32-bit cache.
func (g *State) Next64() uint64 {
	return Splitmix64(&g.counter)
}

// Next32 returns the next 32-bit value.
// A fresh 64-bit draw yields its high half first; the low half is cached and
// returned by the following call without advancing the counter.
func (g *State) Next32() uint32 {
	if g.hasUint32 {
		g.hasUint32 = false
		return g.uinteger
	}
	v := g.Next64()
	g.uinteger = uint32(v)
	g.hasUint32 = true
	return uint32(v >> 32)
}

// Counter returns the raw counter.
func (g *State) Counter() uint64 {
	return g.counter
}

// Cached reports the pending low half, if any.
func (g *State) Cached() (half uint32, ok bool) {
	return g.uinteger, g.hasUint32
}
