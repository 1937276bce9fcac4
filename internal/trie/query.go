package trie

import (
	"math"

	"github.com/bits-and-blooms/bitset"
)

// QueryStats describes the work done by one query.
type QueryStats struct {
	Visited int // nodes whose aggregates were tested
	Pruned  int // nodes rejected by an aggregate test
	Skipped int // children skipped because their segment exceeded the budget
	Emitted int // witnesses reported
}

// search carries the per-query state through the traversal.
type search struct {
	t         *Trie
	block     *bitset.BitSet
	boundary  *bitset.BitSet
	k         int
	emit      func(*Entry)
	stats     QueryStats
	qBlock    []uint64
	qBoundary []uint64
}

// Query reports, through emit, one witness entry per node whose stored
// blocks include a superset of block, restricted to entries whose boundary
// adds at most widthBound+1-|boundary| vertices to boundary.
//
// Both sets must have length n. The emitted entries are shared; callers
// must copy before handing them out.
func (t *Trie) Query(block, boundary *bitset.BitSet, widthBound int, emit func(*Entry)) QueryStats {
	s := search{
		t:        t,
		block:    block,
		boundary: boundary,
		k:        queryBudget(widthBound, int(boundary.Count())),
		emit:     emit,
	}
	if s.k < 0 {
		return s.stats
	}
	if t.fast {
		s.qBlock = loadWords(t.qBlock, block)
		s.qBoundary = loadWords(t.qBoundary, boundary)
		s.visitFast(t.root, s.k)
	} else {
		s.visit(t.root, s.k)
	}
	return s.stats
}

// queryBudget returns widthBound+1-size, the number of vertices a stored boundary
// may add to a query boundary of the given size. It is -1 when nothing fits
// and saturates at math.MaxInt instead of overflowing.
func queryBudget(widthBound, size int) int {
	if size-1 > widthBound {
		return -1
	}
	k := widthBound - size
	if k < math.MaxInt {
		k++
	}
	return k
}

// visit is the bitset based traversal.
func (s *search) visit(n *Node, budget int) {
	s.stats.Visited++
	if s.t.prune&pruneIntersection != 0 && int(n.inter.DifferenceCardinality(s.boundary)) > s.k {
		s.stats.Pruned++
		return
	}
	if s.t.prune&pruneUnion != 0 && !n.union.IsSuperSet(s.block) {
		s.stats.Pruned++
		return
	}
	for _, e := range n.entries {
		if e.Block.IsSuperSet(s.block) {
			s.emit(e)
			s.stats.Emitted++
			break
		}
	}
	for _, c := range n.children {
		rest := budget
		for _, v := range c.key {
			if !s.boundary.Test(uint(v)) {
				rest--
			}
		}
		if rest < 0 {
			s.stats.Skipped++
			continue
		}
		s.visit(c, rest)
	}
}
