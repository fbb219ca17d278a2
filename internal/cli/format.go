package cli

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/google/uuid"
	"golang.org/x/term"

	"gosuda.org/splitmix"
)

// formatter writes one value drawn from g to w.
type formatter func(w io.Writer, g splitmix.Stream) error

var errTerminal = errors.New("refusing to write raw output to a terminal")

func newFormatter(format string, width int) (formatter, error) {
	if width != 64 && width != 32 {
		return nil, fmt.Errorf("unsupported width %d: want 64 or 32", width)
	}

	switch format {
	case "hex":
		if width == 32 {
			return func(w io.Writer, g splitmix.Stream) error {
				_, err := fmt.Fprintf(w, "%08x\n", g.Next32())
				return err
			}, nil
		}
		return func(w io.Writer, g splitmix.Stream) error {
			_, err := fmt.Fprintf(w, "%016x\n", g.Next64())
			return err
		}, nil
	case "dec":
		if width == 32 {
			return func(w io.Writer, g splitmix.Stream) error {
				_, err := fmt.Fprintln(w, g.Next32())
				return err
			}, nil
		}
		return func(w io.Writer, g splitmix.Stream) error {
			_, err := fmt.Fprintln(w, g.Next64())
			return err
		}, nil
	case "float":
		return func(w io.Writer, g splitmix.Stream) error {
			_, err := io.WriteString(w, strconv.FormatFloat(g.Float64(), 'g', -1, 64)+"\n")
			return err
		}, nil
	case "uuid":
		return func(w io.Writer, g splitmix.Stream) error {
			u, err := uuid.NewRandomFromReader(g)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(w, u.String())
			return err
		}, nil
	case "raw":
		if width == 32 {
			return func(w io.Writer, g splitmix.Stream) error {
				var b [4]byte
				binary.LittleEndian.PutUint32(b[:], g.Next32())
				_, err := w.Write(b[:])
				return err
			}, nil
		}
		return func(w io.Writer, g splitmix.Stream) error {
			var b [8]byte
			binary.LittleEndian.PutUint64(b[:], g.Next64())
			_, err := w.Write(b[:])
			return err
		}, nil
	}
	return nil, fmt.Errorf("unknown format %q: want hex, dec, float, uuid or raw", format)
}

// checkNotTerminal fails when w is a terminal.
func checkNotTerminal(w io.Writer) error {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return errTerminal
	}
	return nil
}
