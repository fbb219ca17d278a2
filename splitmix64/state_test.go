package splitmix64_test

import (
	"bytes"
	"errors"
	"testing"

	"gosuda.org/splitmix/splitmix64"
)

// TestStateRoundTripContinues restores a state with a pending low half and
// checks that the restored copy continues the exact sequence.
func TestStateRoundTripContinues(t *testing.T) {
	g := splitmix64.New(42)
	g.Next64()
	g.Next32() // leaves a cached half

	data, err := g.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != 13 {
		t.Fatalf("len(MarshalBinary) = %d, want 13", len(data))
	}

	var restored splitmix64.State
	if err := restored.UnmarshalBinary(data); err != nil {
		t.Fatal(err)
	}
	if restored != g {
		t.Fatalf("restored = %+v, want %+v", restored, g)
	}
	for i := 0; i < 64; i++ {
		if x, y := g.Next32(), restored.Next32(); x != y {
			t.Fatalf("draw %d: original %#x, restored %#x", i, x, y)
		}
	}
}

func TestStateBinaryLayout(t *testing.T) {
	g := splitmix64.New(0)
	g.Next32()

	data, _ := g.MarshalBinary()
	want := []byte{
		0x9e, 0x37, 0x79, 0xb9, 0x7f, 0x4a, 0x7c, 0x15, // counter
		0x01,                   // cached
		0x7b, 0x1d, 0xcd, 0xaf, // low half of 0xe220a8397b1dcdaf
	}
	if !bytes.Equal(data, want) {
		t.Fatalf("MarshalBinary = %x, want %x", data, want)
	}
}

func TestStateText(t *testing.T) {
	g := splitmix64.New(0x2a)
	text, err := g.MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	if want := "000000000000002a0000000000"; string(text) != want {
		t.Fatalf("MarshalText = %s, want %s", text, want)
	}

	var restored splitmix64.State
	if err := restored.UnmarshalText(text); err != nil {
		t.Fatal(err)
	}
	if got, want := restored.Next64(), uint64(0xbdd732262feb6e95); got != want {
		t.Fatalf("restored Next64 = %#x, want %#x", got, want)
	}
}

func TestStateUnmarshalInvalid(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"short", "000000000000002a00000000"},
		{"long", "000000000000002a000000000000"},
		{"bad flag", "000000000000002a0200000000"},
		{"not hex", "zz0000000000002a0000000000"},
		{"odd length", "000000000000002a000000000"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := splitmix64.New(7)
			err := g.UnmarshalText([]byte(tc.text))
			if !errors.Is(err, splitmix64.ErrInvalidState) {
				t.Fatalf("UnmarshalText(%q) error = %v, want ErrInvalidState", tc.text, err)
			}
			if g != splitmix64.New(7) {
				t.Fatalf("failed UnmarshalText modified the state: %+v", g)
			}
		})
	}
}
