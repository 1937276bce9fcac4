// Package scan provides a brute-force reference for superset queries.
//
// Index answers the same query as the trie by inspecting entries directly.
// Per-vertex Roaring posting lists narrow the candidates to entries whose
// block contains every vertex of the query block; the width bound is then
// checked entry by entry. It exists to cross-check the trie in tests and in
// the check command, not to be fast.
package scan

import (
	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"
)

// Index is a linear superset index over a fixed universe.
type Index struct {
	n        int
	blocks   []*bitset.BitSet
	bounds   []*bitset.BitSet
	postings []*roaring.Bitmap // postings[v] = ids of entries whose block holds v
	all      *roaring.Bitmap
}

// New creates an empty index over [0, n).
func New(n int) *Index {
	postings := make([]*roaring.Bitmap, n)
	for v := range postings {
		postings[v] = roaring.New()
	}
	return &Index{
		n:        n,
		postings: postings,
		all:      roaring.New(),
	}
}

// Len returns the number of entries.
func (x *Index) Len() int { return len(x.blocks) }

// Insert adds an entry. The sets are retained; callers must not mutate them.
func (x *Index) Insert(block, boundary *bitset.BitSet) {
	id := uint32(len(x.blocks))
	x.blocks = append(x.blocks, block)
	x.bounds = append(x.bounds, boundary)
	x.all.Add(id)
	for v, ok := block.NextSet(0); ok; v, ok = block.NextSet(v + 1) {
		if int(v) < x.n {
			x.postings[v].Add(id)
		}
	}
}

// Candidates returns the ids of entries whose block is a superset of block.
func (x *Index) Candidates(block *bitset.BitSet) *roaring.Bitmap {
	var lists []*roaring.Bitmap
	for v, ok := block.NextSet(0); ok; v, ok = block.NextSet(v + 1) {
		if int(v) >= x.n {
			return roaring.New()
		}
		lists = append(lists, x.postings[v])
	}
	switch len(lists) {
	case 0:
		return x.all.Clone()
	case 1:
		return lists[0].Clone()
	}
	return roaring.FastAnd(lists...)
}

// Query returns every distinct boundary B of an entry whose block contains
// block and for which |boundary ∪ B| <= widthBound+1, in insertion order of
// the first such entry. The returned sets are shared with the index.
func (x *Index) Query(block, boundary *bitset.BitSet, widthBound int) []*bitset.BitSet {
	if int(boundary.Count())-1 > widthBound {
		return nil
	}
	var out []*bitset.BitSet
	seen := make(map[string]struct{})
	it := x.Candidates(block).Iterator()
	for it.HasNext() {
		id := it.Next()
		b := x.bounds[id]
		if int(boundary.UnionCardinality(b))-1 > widthBound {
			continue
		}
		key := b.String()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, b)
	}
	return out
}
