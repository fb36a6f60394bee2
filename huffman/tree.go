package huffman

import (
	"errors"

	"github.com/huffstring/squeeze/internal/container"
)

// ErrEmptyCorpus is returned when Build is given a corpus with no bytes
// in it: zero strings, or only empty strings. There is no frequency
// table, so there is no tree to construct.
var ErrEmptyCorpus = errors.New("huffman: empty corpus")

// treeNode is the transient, pointer-linked construction form of a tree
// node. It lives in an arena (a single pre-sized slice) for the whole
// build; nothing here outlives flattening and code-table derivation.
type treeNode struct {
	weight uint64
	leaf   bool
	symbol byte
	seq    int // creation order, used only to break weight ties deterministically

	parent       *treeNode
	left, right  *treeNode
	index        uint16
}

func (n *treeNode) isLeaf() bool { return n.left == nil && n.right == nil }

// nodeLess orders two tree nodes by weight, then by creation order. Leaf
// nodes are created in ascending symbol order, so among equal-weight
// leaves this also resolves to "lower symbol value wins"; among
// equal-weight internal nodes it resolves to "earlier-built node wins".
// This fixes the tie-break the source spec leaves open, which repeated
// builds over identical input need in order to be byte-identical.
func nodeLess(a, b *treeNode) bool {
	if a.weight != b.weight {
		return a.weight < b.weight
	}
	return a.seq < b.seq
}

// countNodes runs the weight-only simulation pre-pass: push every
// entry's weight into a min-heap, then repeatedly pop two and push their
// sum, counting one allocation per merge. For L>=2 distinct symbols this
// always yields 2L-1, but the simulation is kept explicit (rather than
// just returning the closed form) because it is what lets an
// allocation-free build size its arena before constructing anything,
// matching the two-pass sizing discipline the rest of this package
// follows.
func countNodes(entries []FrequencyEntry) int {
	h := container.NewHeap[uint64](len(entries), func(a, b uint64) bool { return a < b })
	for _, e := range entries {
		h.Push(e.Count)
	}
	count := len(entries)
	for h.Len() > 1 {
		a := h.Pop()
		b := h.Pop()
		count++
		h.Push(a + b)
	}
	return count
}

// buildTree constructs the Huffman tree for entries and returns its
// root along with the arena backing every node in it. entries must be
// non-empty; the single-symbol degenerate case is handled by
// synthesizing a zero-weight dummy sibling leaf so that the real symbol
// always gets at least a 1-bit code.
func buildTree(entries []FrequencyEntry) (root *treeNode, arena []*treeNode, err error) {
	if len(entries) == 0 {
		return nil, nil, ErrEmptyCorpus
	}

	if len(entries) == 1 {
		return buildDummyPaddedTree(entries[0])
	}

	numNodes := countNodes(entries)
	arena = make([]*treeNode, 0, numNodes)
	seq := 0

	nodes := make([]treeNode, numNodes)
	next := 0
	newNode := func() *treeNode {
		n := &nodes[next]
		next++
		return n
	}

	h := container.NewHeap[*treeNode](len(entries), nodeLess)
	for _, e := range entries {
		n := newNode()
		n.weight, n.leaf, n.symbol, n.seq = e.Count, true, e.Symbol, seq
		seq++
		arena = append(arena, n)
		h.Push(n)
	}

	for h.Len() > 1 {
		a := h.Pop()
		b := h.Pop()
		merged := newNode()
		merged.weight = a.weight + b.weight
		merged.seq = seq
		seq++
		merged.left, merged.right = a, b
		a.parent, b.parent = merged, merged
		arena = append(arena, merged)
		h.Push(merged)
	}

	return h.Pop(), arena, nil
}

// buildDummyPaddedTree handles the single-distinct-symbol corpus: a bare
// leaf cannot carry a code (a 0-bit code is indistinguishable from an
// empty payload), so a zero-weight sibling leaf is synthesized, forcing
// a minimum 1-bit code for the real symbol. The sibling's symbol is
// never written to the bit-stream (its weight is 0) and is chosen as
// the bitwise complement of the real symbol so it can never collide.
func buildDummyPaddedTree(real FrequencyEntry) (root *treeNode, arena []*treeNode, err error) {
	nodes := make([]treeNode, 3)
	realLeaf := &nodes[0]
	realLeaf.weight, realLeaf.leaf, realLeaf.symbol, realLeaf.seq = real.Count, true, real.Symbol, 0

	dummyLeaf := &nodes[1]
	dummyLeaf.weight, dummyLeaf.leaf, dummyLeaf.symbol, dummyLeaf.seq = 0, true, real.Symbol^0xFF, 1

	root = &nodes[2]
	root.weight = real.Count
	root.seq = 2
	root.left, root.right = realLeaf, dummyLeaf
	realLeaf.parent, dummyLeaf.parent = root, root

	return root, []*treeNode{realLeaf, dummyLeaf, root}, nil
}
