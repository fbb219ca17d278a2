package splitmix_test

import (
	"testing"

	"gosuda.org/splitmix"
	"gosuda.org/splitmix/splitmix64"
)

var _ splitmix.Stream = (*splitmix64.State)(nil)

func TestStateIsStream(t *testing.T) {
	g := splitmix64.New(0)
	var s splitmix.Stream = &g

	var gen splitmix.Generator = s
	if got := gen.Next32(); got != 0xe220a839 {
		t.Fatalf("Next32 = %#x, want 0xe220a839", got)
	}
	if got := s.Next32(); got != 0x7b1dcdaf {
		t.Fatalf("Next32 = %#x, want 0x7b1dcdaf", got)
	}
}
