package splitmix64

import (
	"encoding/binary"
	"io"
)

const float64Unit = 1.0 / (1 << 53)

// Float64 returns a value in [0, 1) built from the top 53 bits of one 64-bit draw.
func (g *State) Float64() float64 {
	return float64(g.Next64()>>11) * float64Unit
}

var _ io.Reader = (*State)(nil)

// Read fills p with successive 64-bit draws in little-endian order.
// A trailing partial word still costs a full draw; its unused bytes are dropped.
// It always returns len(p), nil.
func (g *State) Read(p []byte) (n int, err error) {
	n = len(p)
	for len(p) >= 8 {
		binary.LittleEndian.PutUint64(p, g.Next64())
		p = p[8:]
	}
	if len(p) > 0 {
		var word [8]byte
		binary.LittleEndian.PutUint64(word[:], g.Next64())
		copy(p, word[:])
	}
	return n, nil
}
