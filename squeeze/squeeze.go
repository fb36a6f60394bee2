// Package squeeze binds a fixed, compile-time-style set of strings to an
// encoding strategy (typically huffman.Encoding, or nilcode.Encoding for
// the uncompressed reference strategy) and exposes O(1) indexed or keyed
// lookup over the result. Decoding is always a forward, single-pass,
// byte-at-a-time iteration; nothing under this package materializes a
// full decoded string unless the caller asks it to.
package squeeze

import "iter"

// ByteIterator is a forward, single-pass sequence of decoded bytes.
// Calling Next after it has reported done keeps returning (0, false)
// rather than panicking. An iterator is not safe for concurrent use.
type ByteIterator interface {
	Next() (byte, bool)
	All() iter.Seq[byte]
}

// compiledTable is the shape the facade reads a compiled corpus through.
// huffman.Encoding and nilcode.Encoding return their own concrete
// *Iterator types from ByIndex, so each is wrapped in a small adapter
// (huffmanTable, nilTable in encoders.go) to satisfy it. Neither package
// imports this one, which keeps the facade encoder-agnostic, the same
// role a template parameter plays in the original design this was
// distilled from.
type compiledTable interface {
	Count() int
	ByIndex(i int) ByteIterator
}

// Encoder compiles a string corpus into a compiledTable. HuffmanEncoder
// and NilEncoder both implement it.
type Encoder interface {
	Compile(strings []string) (compiledTable, error)
}

// emptyIterator is returned wherever this package's own contract calls
// for "no error, just an empty result": an out-of-range index, or (via
// Map) a key that was never registered.
type emptyIterator struct{}

func (emptyIterator) Next() (byte, bool) { return 0, false }

func (emptyIterator) All() iter.Seq[byte] {
	return func(yield func(byte) bool) {}
}

// Drain reads an iterator to completion and returns the bytes it
// produced. This defeats the zero-allocation decode guarantee the rest
// of this package is built around; it exists only for callers (tests,
// debugging, one-off tooling) who explicitly want the whole string
// materialized and have decided that cost is fine.
func Drain(it ByteIterator) []byte {
	var out []byte
	for b, ok := it.Next(); ok; b, ok = it.Next() {
		out = append(out, b)
	}
	return out
}
