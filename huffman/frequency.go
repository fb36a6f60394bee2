// Package huffman implements the compile-time-style encoder and the
// streaming run-time decoder for a per-corpus Huffman string table: a
// fixed set of strings, known up front, compressed with one Huffman
// code derived over the whole corpus and decoded one byte at a time
// without ever materializing a decoded string in memory.
package huffman

// FrequencyEntry pairs a distinct byte value present in the corpus with
// the number of times it occurs.
type FrequencyEntry struct {
	Symbol byte
	Count  uint64
}

// CountFrequencies walks every byte of every string and returns the
// occurrence count per byte value.
func CountFrequencies(strings []string) (counts [256]uint64) {
	for _, s := range strings {
		for i := 0; i < len(s); i++ {
			counts[s[i]]++
		}
	}
	return counts
}

// BuildFrequencyTable compacts a 256-entry count array into the dense,
// ascending-by-symbol list of entries whose count is non-zero.
func BuildFrequencyTable(counts [256]uint64) []FrequencyEntry {
	n := 0
	for _, c := range counts {
		if c != 0 {
			n++
		}
	}
	entries := make([]FrequencyEntry, 0, n)
	for sym, c := range counts {
		if c == 0 {
			continue
		}
		entries = append(entries, FrequencyEntry{Symbol: byte(sym), Count: c})
	}
	return entries
}
