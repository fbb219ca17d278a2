package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestCheckNotTerminal(t *testing.T) {
	if err := checkNotTerminal(&bytes.Buffer{}); err != nil {
		t.Fatalf("buffer: %v", err)
	}

	f, err := os.Create(filepath.Join(t.TempDir(), "out.bin"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := checkNotTerminal(f); err != nil {
		t.Fatalf("regular file: %v", err)
	}
}

func TestNewFormatter(t *testing.T) {
	for _, format := range []string{"hex", "dec", "float", "uuid", "raw"} {
		for _, width := range []int{32, 64} {
			if _, err := newFormatter(format, width); err != nil {
				t.Errorf("newFormatter(%q, %d): %v", format, width, err)
			}
		}
	}
	if _, err := newFormatter("hex", 48); err == nil {
		t.Error("width 48 accepted")
	}
	if _, err := newFormatter("octal", 64); err == nil {
		t.Error("format octal accepted")
	}
}
