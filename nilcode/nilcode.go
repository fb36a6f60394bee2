// Package nilcode is the trivial reference encoder: it stores every
// string in the corpus uncompressed, concatenated into a single buffer,
// with a parallel offset array marking where each one starts. It exists
// to give the facade in package squeeze a second, interchangeable
// Encoder alongside huffman.Encoding — and, for any caller who genuinely
// does not want compression, a table with no decode cost at all.
package nilcode

import "iter"

// Encoding is the concatenated-storage artifact: Offsets[i] is where the
// i-th string begins in Storage, and it ends either at Offsets[i+1] or,
// for the last string, at the end of Storage.
type Encoding struct {
	Offsets []int
	Storage []byte
}

// Build concatenates every string into one buffer and records each
// one's start offset.
func Build(strings []string) (*Encoding, error) {
	total := 0
	for _, s := range strings {
		total += len(s)
	}

	storage := make([]byte, 0, total)
	offsets := make([]int, len(strings))
	for i, s := range strings {
		offsets[i] = len(storage)
		storage = append(storage, s...)
	}

	return &Encoding{Offsets: offsets, Storage: storage}, nil
}

// Count reports the number of strings in the table.
func (e *Encoding) Count() int { return len(e.Offsets) }

// ByIndex returns an iterator over the i-th string. An out-of-range
// index returns an iterator that is already at its end.
func (e *Encoding) ByIndex(i int) *Iterator {
	if i < 0 || i >= len(e.Offsets) {
		return &Iterator{}
	}
	start := e.Offsets[i]
	end := len(e.Storage)
	if i+1 < len(e.Offsets) {
		end = e.Offsets[i+1]
	}
	return &Iterator{data: e.Storage[start:end]}
}

// Iterator is a forward, single-pass byte sequence over one string. It
// holds the already-materialized slice for that string (there is
// nothing to decode); its zero value is simply an empty sequence.
type Iterator struct {
	data []byte
	pos  int
}

// Next produces the next byte of the string, or (0, false) once
// exhausted.
func (it *Iterator) Next() (byte, bool) {
	if it.pos >= len(it.data) {
		return 0, false
	}
	b := it.data[it.pos]
	it.pos++
	return b, true
}

// All adapts Next into a range-over-func byte sequence.
func (it *Iterator) All() iter.Seq[byte] {
	return func(yield func(byte) bool) {
		for {
			b, ok := it.Next()
			if !ok {
				return
			}
			if !yield(b) {
				return
			}
		}
	}
}
