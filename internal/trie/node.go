package trie

import (
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// Entry is one stored (block, boundary) pair.
//
// Entries are shared between the trie, the owning index and rebuilt tries.
// Nobody may mutate Block or Boundary once the entry has been inserted.
type Entry struct {
	Block    *bitset.BitSet
	Boundary *bitset.BitSet
}

// Node is a trie node. Its exported methods are read-only views used by
// dumpers and exporters.
type Node struct {
	key      []uint32 // key segment, empty only at the root
	children []*Node
	union    *bitset.BitSet // union of blocks stored in the subtree
	inter    *bitset.BitSet // intersection of boundaries stored in the subtree
	entries  []*Entry
}

func newRoot(n int) *Node {
	inter := bitset.New(uint(n))
	inter.FlipRange(0, uint(n))
	return &Node{
		union: bitset.New(uint(n)),
		inter: inter,
	}
}

func newLeaf(key []uint32, e *Entry) *Node {
	return &Node{
		key:   slices.Clone(key),
		union: e.Block.Clone(),
		inter: e.Boundary.Clone(),
	}
}

// fold adds e to the subtree aggregates.
func (n *Node) fold(e *Entry) {
	n.union.InPlaceUnion(e.Block)
	n.inter.InPlaceIntersection(e.Boundary)
}

// Key returns a copy of the node's key segment.
func (n *Node) Key() []uint32 { return slices.Clone(n.key) }

// Children returns the child nodes in traversal order.
func (n *Node) Children() []*Node { return slices.Clone(n.children) }

// Union returns a copy of the union of all blocks in the subtree.
func (n *Node) Union() *bitset.BitSet { return n.union.Clone() }

// Intersection returns a copy of the intersection of all boundaries in the subtree.
func (n *Node) Intersection() *bitset.BitSet { return n.inter.Clone() }

// Entries returns the entries terminating at this node, in insertion order.
func (n *Node) Entries() []*Entry { return slices.Clone(n.entries) }

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool { return len(n.children) == 0 }

func commonPrefixLen(a, b []uint32) int {
	m := min(len(a), len(b))
	for i := range m {
		if a[i] != b[i] {
			return i
		}
	}
	return m
}
