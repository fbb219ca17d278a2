// Package splitmix declares the small interfaces consumers of the generator
// program against. The generator lives in package splitmix64.
package splitmix

// Generator produces 64-bit values and 32-bit halves of them.
type Generator interface {
	Next64() uint64
	Next32() uint32
}

// Stream is a Generator that can also emit floats and raw bytes.
type Stream interface {
	Generator

	Float64() float64
	Read(p []byte) (n int, err error)
}
