package squeeze

import (
	"github.com/huffstring/squeeze/huffman"
	"github.com/huffstring/squeeze/nilcode"
)

// HuffmanEncoder compiles a corpus into a huffman.Encoding: the
// compressed, Huffman-coded strategy this module exists to provide.
type HuffmanEncoder struct{}

// Compile implements Encoder.
func (HuffmanEncoder) Compile(strings []string) (compiledTable, error) {
	enc, err := huffman.Build(strings)
	if err != nil {
		return nil, err
	}
	return huffmanTable{enc}, nil
}

// huffmanTable adapts *huffman.Encoding's concrete ByIndex return type
// to the ByteIterator interface compiledTable requires.
type huffmanTable struct{ enc *huffman.Encoding }

func (t huffmanTable) Count() int                 { return t.enc.Count() }
func (t huffmanTable) ByIndex(i int) ByteIterator { return t.enc.ByIndex(i) }

// NilEncoder compiles a corpus into a nilcode.Encoding: every string
// stored uncompressed: the reference implementation, a baseline rather
// than a contender. NewTable and NewMap take the encoder explicitly;
// there is no default.
type NilEncoder struct{}

// Compile implements Encoder.
func (NilEncoder) Compile(strings []string) (compiledTable, error) {
	enc, err := nilcode.Build(strings)
	if err != nil {
		return nil, err
	}
	return nilTable{enc}, nil
}

type nilTable struct{ enc *nilcode.Encoding }

func (t nilTable) Count() int                 { return t.enc.Count() }
func (t nilTable) ByIndex(i int) ByteIterator { return t.enc.ByIndex(i) }
