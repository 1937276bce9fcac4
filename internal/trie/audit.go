package trie

import (
	"errors"
	"fmt"
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// ErrInvariant is returned by Audit when the structure is inconsistent.
var ErrInvariant = errors.New("trie invariant violated")

// Keyer lays out a boundary as a trie key and ranks single vertices.
type Keyer interface {
	Key(set *bitset.BitSet, buf []uint32) []uint32
	Rank(v uint32) uint32
}

// Audit recomputes every aggregate from scratch and checks the structural
// invariants against all, the complete list of inserted entries. It is
// meant for tests and diagnostics; the cost is quadratic in the worst case.
func (t *Trie) Audit(all []*Entry, keyer Keyer) error {
	a := auditor{t: t, keyer: keyer, seen: make(map[*Entry]int, len(all))}
	a.node(t.root, nil)
	if a.err != nil {
		return a.err
	}
	if a.nodes != t.nodes {
		return fmt.Errorf("%w: counted %d nodes, trie reports %d", ErrInvariant, a.nodes, t.nodes)
	}
	if len(a.seen) != len(all) || t.size != len(all) {
		return fmt.Errorf("%w: %d entries reachable, %d inserted", ErrInvariant, len(a.seen), len(all))
	}
	for _, e := range all {
		if c := a.seen[e]; c != 1 {
			return fmt.Errorf("%w: entry %v/%v reachable %d times", ErrInvariant, e.Block, e.Boundary, c)
		}
	}
	return nil
}

type auditor struct {
	t     *Trie
	keyer Keyer
	seen  map[*Entry]int
	nodes int
	err   error
}

func (a *auditor) fail(format string, args ...any) {
	if a.err == nil {
		a.err = fmt.Errorf("%w: "+format, append([]any{ErrInvariant}, args...)...)
	}
}

// node checks n and returns the entries stored in its subtree.
func (a *auditor) node(n *Node, path []uint32) []*Entry {
	a.nodes++
	isRoot := n == a.t.root
	if !isRoot && len(n.key) == 0 {
		a.fail("empty key segment below the root at path %v", path)
	}
	path = append(slices.Clone(path), n.key...)
	for i := 1; i < len(path); i++ {
		if a.keyer.Rank(path[i-1]) >= a.keyer.Rank(path[i]) {
			a.fail("path %v not strictly ascending in rank order", path)
			break
		}
	}
	if !isRoot && len(n.entries) == 0 && len(n.children) < 2 {
		a.fail("node at path %v has no entries and %d children", path, len(n.children))
	}

	firsts := make(map[uint32]bool, len(n.children))
	var sub []*Entry
	for _, c := range n.children {
		if len(c.key) > 0 {
			if firsts[c.key[0]] {
				a.fail("siblings below path %v share prefix %d", path, c.key[0])
			}
			firsts[c.key[0]] = true
		}
		sub = append(sub, a.node(c, path)...)
	}

	for _, e := range n.entries {
		a.seen[e]++
		if key := a.keyer.Key(e.Boundary, nil); !slices.Equal(key, path) {
			a.fail("entry with key %v stored at path %v", key, path)
		}
	}
	sub = append(sub, n.entries...)

	union := bitset.New(uint(a.t.n))
	inter := bitset.New(uint(a.t.n))
	inter.FlipRange(0, uint(a.t.n))
	for _, e := range sub {
		union.InPlaceUnion(e.Block)
		inter.InPlaceIntersection(e.Boundary)
	}
	if !union.Equal(n.union) {
		a.fail("union at path %v is %v, want %v", path, n.union, union)
	}
	if !inter.Equal(n.inter) {
		a.fail("intersection at path %v is %v, want %v", path, n.inter, inter)
	}
	return sub
}
