package splitmix64

import (
	"encoding"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
)

var (
	ErrInvalidState = errors.New("splitmix64: invalid state encoding")
)

/*
Binary state layout, 13 bytes:
  [0:8]   counter, big-endian
  [8]     1 if a low half is cached, else 0
  [9:13]  cached low half, big-endian
*/
const stateSize = 13

var (
	_ encoding.BinaryMarshaler   = State{}
	_ encoding.BinaryUnmarshaler = (*State)(nil)
	_ encoding.TextMarshaler     = State{}
	_ encoding.TextUnmarshaler   = (*State)(nil)
)

// MarshalBinary encodes all three state fields.
func (g State) MarshalBinary() ([]byte, error) {
	b := make([]byte, stateSize)
	binary.BigEndian.PutUint64(b[0:8], g.counter)
	if g.hasUint32 {
		b[8] = 1
	}
	binary.BigEndian.PutUint32(b[9:13], g.uinteger)
	return b, nil
}

// UnmarshalBinary restores a state written by MarshalBinary.
func (g *State) UnmarshalBinary(data []byte) error {
	if len(data) != stateSize {
		return fmt.Errorf("%w: length %d, want %d", ErrInvalidState, len(data), stateSize)
	}
	if data[8] > 1 {
		return fmt.Errorf("%w: cache flag %#x", ErrInvalidState, data[8])
	}
	g.counter = binary.BigEndian.Uint64(data[0:8])
	g.hasUint32 = data[8] == 1
	g.uinteger = binary.BigEndian.Uint32(data[9:13])
	return nil
}

// MarshalText encodes the binary form as lowercase hex.
func (g State) MarshalText() ([]byte, error) {
	b, _ := g.MarshalBinary()
	out := make([]byte, hex.EncodedLen(len(b)))
	hex.Encode(out, b)
	return out, nil
}

func (g *State) UnmarshalText(text []byte) error {
	b := make([]byte, hex.DecodedLen(len(text)))
	if _, err := hex.Decode(b, text); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidState, err)
	}
	return g.UnmarshalBinary(b)
}
