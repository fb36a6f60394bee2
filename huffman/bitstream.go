package huffman

import "github.com/huffstring/squeeze/internal/container"

// Entry records where one source string's encoded form begins and how
// many source bytes it decodes back to. FirstBit is a bit offset into
// the Encoding's bit-stream; OriginalLength is a byte count, not a bit
// count.
type Entry struct {
	FirstBit       uint64
	OriginalLength uint64
}

// encodedBitLength sums the code length of every byte in s.
func encodedBitLength(s string, table [256]codeEntry) uint64 {
	var n uint64
	for i := 0; i < len(s); i++ {
		n += uint64(table[s[i]].Length)
	}
	return n
}

// emit packs every string into a single bit-stream sized exactly to the
// corpus's total encoded length, recording each string's start offset
// and original length as it goes. The stream starts zeroed, so only
// Set calls are needed for the 1 bits.
func emit(strings []string, table [256]codeEntry) ([]Entry, *container.Buffer) {
	var totalBits uint64
	for _, s := range strings {
		totalBits += encodedBitLength(s, table)
	}

	bits := container.NewBuffer(int(totalBits))
	entries := make([]Entry, len(strings))

	var cursor uint64
	for i, s := range strings {
		first := cursor
		for j := 0; j < len(s); j++ {
			code := table[s[j]]
			for b := int(code.Length) - 1; b >= 0; b-- {
				if code.Pattern&(1<<uint(b)) != 0 {
					bits.Set(int(cursor))
				}
				cursor++
			}
		}
		entries[i] = Entry{FirstBit: first, OriginalLength: uint64(len(s))}
	}

	return entries, bits
}
