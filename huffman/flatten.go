package huffman

import (
	"errors"
	"math"

	"github.com/huffstring/squeeze/internal/container"
)

// NoChild is the sentinel child index meaning "no such child". It only
// ever appears in an artifact that has been corrupted or paired with
// the wrong decoder; a freshly built Encoding never contains it.
const NoChild = 0xFFFF

// ErrTreeTooLarge is returned if the tree needs more than 65535 nodes to
// index, which cannot happen for a byte alphabet (at most 511 nodes) but
// is checked anyway per the artifact's 16-bit index width.
var ErrTreeTooLarge = errors.New("huffman: tree exceeds 16-bit node index range")

// FlatNode is one element of the persisted, position-independent node
// array: either a leaf carrying a symbol, or an internal node carrying
// the indices of its two children. Child0/Child1 are meaningless when
// Leaf is true.
type FlatNode struct {
	Leaf   bool
	Symbol byte
	Child0 uint16
	Child1 uint16
}

// flatten assigns breadth-first indices to root and every descendant
// (root always lands at index 0) and produces the flat node array. It
// mutates the index field of every treeNode reachable from root but
// does not discard the tree: buildCodeTable still needs the parent
// links afterward.
func flatten(root *treeNode) ([]FlatNode, error) {
	q := container.NewQueue[*treeNode]()
	q.PushBack(root)

	var ordered []*treeNode
	next := 0
	for !q.Empty() {
		n := q.PopFront()
		if next >= math.MaxUint16 {
			return nil, ErrTreeTooLarge
		}
		n.index = uint16(next)
		next++
		ordered = append(ordered, n)

		if !n.isLeaf() {
			q.PushBack(n.left)
			q.PushBack(n.right)
		}
	}

	nodes := make([]FlatNode, len(ordered))
	for _, n := range ordered {
		if n.isLeaf() {
			nodes[n.index] = FlatNode{Leaf: true, Symbol: n.symbol}
		} else {
			nodes[n.index] = FlatNode{
				Leaf:   false,
				Child0: n.left.index,
				Child1: n.right.index,
			}
		}
	}
	return nodes, nil
}
