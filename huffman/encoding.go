package huffman

import (
	"errors"

	"github.com/huffstring/squeeze/internal/container"
)

// ErrCodeTooLong is returned if some symbol's code word is longer than
// the 16 bits a codeEntry pattern holds. Only a very skewed frequency
// distribution produces a tree that deep.
var ErrCodeTooLong = errors.New("huffman: code word exceeds 16 bits")

// Encoding is the complete artifact produced by Build: the Huffman tree
// flattened into a position-independent node array, the packed
// bit-stream holding every encoded string, and the per-string entry
// table locating each one within that stream. It is plain data — no
// pointers into caller storage — and is safe for concurrent readers
// once constructed, since nothing about it is ever mutated again.
type Encoding struct {
	Entries []Entry
	Bits    *container.Buffer
	Nodes   []FlatNode
}

// Build runs the full compile-time-style pipeline over strings:
// frequency analysis, tree construction, BFS flattening, code table
// derivation, and bit-stream emission. It is meant to be called exactly
// once, typically from a package-level var initializer.
func Build(strings []string) (*Encoding, error) {
	counts := CountFrequencies(strings)
	table := BuildFrequencyTable(counts)

	root, arena, err := buildTree(table)
	if err != nil {
		return nil, err
	}

	nodes, err := flatten(root)
	if err != nil {
		return nil, err
	}

	codes := buildCodeTable(arena)
	for _, c := range codes {
		if c.Length > 16 {
			return nil, ErrCodeTooLong
		}
	}
	entries, bits := emit(strings, codes)

	return &Encoding{Entries: entries, Bits: bits, Nodes: nodes}, nil
}

// Count reports the number of strings in the encoded table.
func (e *Encoding) Count() int { return len(e.Entries) }

// ByIndex returns a streaming decoder for the i-th string. An
// out-of-range index returns an iterator that is already at its end,
// rather than panicking.
func (e *Encoding) ByIndex(i int) *Iterator {
	if i < 0 || i >= len(e.Entries) {
		return newIterator(e.Nodes, e.bitAt, Entry{})
	}
	return newIterator(e.Nodes, e.bitAt, e.Entries[i])
}

func (e *Encoding) bitAt(i uint64) bool {
	return e.Bits.Get(int(i))
}
