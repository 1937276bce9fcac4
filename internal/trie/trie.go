package trie

import (
	"slices"
)

// Trie is a path-compressed trie over a fixed universe of n vertices.
type Trie struct {
	n     int
	words int
	root  *Node
	nodes int // including the root
	size  int
	fast  bool

	// query scratch, padded to words
	qBlock    []uint64
	qBoundary []uint64

	prune pruning
}

// pruning selects which aggregate checks Query applies.
type pruning uint8

const (
	pruneIntersection pruning = 1 << iota
	pruneUnion

	pruneAll = pruneIntersection | pruneUnion
)

// New returns an empty trie over [0, n). With fast set, the pruning checks
// run on raw words instead of the bitset API.
func New(n int, fast bool) *Trie {
	invariant(n > 0, "universe must not be empty")
	words := (n + 63) / 64
	return &Trie{
		n:         n,
		words:     words,
		root:      newRoot(n),
		nodes:     1,
		fast:      fast,
		qBlock:    make([]uint64, words),
		qBoundary: make([]uint64, words),
		prune:     pruneAll,
	}
}

// Universe returns n.
func (t *Trie) Universe() int { return t.n }

// Size returns the number of inserted entries.
func (t *Trie) Size() int { return t.size }

// Nodes returns the number of nodes, root included.
func (t *Trie) Nodes() int { return t.nodes }

// FastPath reports whether word-level pruning is in use.
func (t *Trie) FastPath() bool { return t.fast }

// Root returns the root node.
func (t *Trie) Root() *Node { return t.root }

// Insert stores e under key, the members of e.Boundary in rank order.
//
// Both sets of e must have length n. Insert never fails; it extends the
// trie and folds e into the aggregates of every node on the path.
func (t *Trie) Insert(e *Entry, key []uint32) {
	invariant(len(key) == int(e.Boundary.Count()), "key does not match boundary")

	t.root.fold(e)
	node := t.root
	for len(key) > 0 {
		node = t.descend(node, key, e)
		key = key[len(node.key):]
	}
	node.entries = append(node.entries, e)
	t.size++
}

// descend returns the child of parent that consumes a prefix of key,
// splitting or creating it as needed. Aggregates of the returned node
// already include e.
func (t *Trie) descend(parent *Node, key []uint32, e *Entry) *Node {
	for i, child := range parent.children {
		p := commonPrefixLen(child.key, key)
		switch {
		case p == len(child.key):
			child.fold(e)
			return child
		case p > 0:
			mid := &Node{
				key:      slices.Clone(key[:p]),
				children: []*Node{child},
				union:    child.union.Clone(),
				inter:    child.inter.Clone(),
			}
			mid.fold(e)
			child.key = slices.Clone(child.key[p:])
			parent.children[i] = mid
			t.nodes++
			return mid
		}
	}

	leaf := newLeaf(key, e)
	parent.children = append(parent.children, leaf)
	t.nodes++
	return leaf
}

// Depth returns the number of edges on the longest root-to-leaf path.
func (t *Trie) Depth() int {
	return t.root.depthRec()
}

func (n *Node) depthRec() int {
	d := 0
	for _, c := range n.children {
		d = max(d, 1+c.depthRec())
	}
	return d
}
