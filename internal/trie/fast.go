package trie

import (
	"math/bits"

	"github.com/bits-and-blooms/bitset"
)

// loadWords copies the words of b into dst, zero padded to len(dst).
func loadWords(dst []uint64, b *bitset.BitSet) []uint64 {
	n := copy(dst, b.Words())
	clear(dst[n:])
	return dst
}

// andNotCount returns popcount(a &^ b) over len(a) words.
func andNotCount(a, b []uint64) int {
	b = b[:len(a)]
	count := 0
	for i, w := range a {
		count += bits.OnesCount64(w &^ b[i])
	}
	return count
}

// subsetOf reports whether a is a subset of b.
func subsetOf(a, b []uint64) bool {
	b = b[:len(a)]
	for i, w := range a {
		if w&^b[i] != 0 {
			return false
		}
	}
	return true
}

func hasBit(words []uint64, v uint32) bool {
	return words[v>>6]&(1<<(v&63)) != 0
}

// visitFast mirrors visit on raw words. Node aggregates have length n and
// therefore exactly t.words words.
func (s *search) visitFast(n *Node, budget int) {
	s.stats.Visited++
	if s.t.prune&pruneIntersection != 0 && andNotCount(n.inter.Words(), s.qBoundary) > s.k {
		s.stats.Pruned++
		return
	}
	if s.t.prune&pruneUnion != 0 && !subsetOf(s.qBlock, n.union.Words()) {
		s.stats.Pruned++
		return
	}
	for _, e := range n.entries {
		if subsetOf(s.qBlock, e.Block.Words()) {
			s.emit(e)
			s.stats.Emitted++
			break
		}
	}
	for _, c := range n.children {
		rest := budget
		for _, v := range c.key {
			if !hasBit(s.qBoundary, v) {
				rest--
			}
		}
		if rest < 0 {
			s.stats.Skipped++
			continue
		}
		s.visitFast(c, rest)
	}
}
