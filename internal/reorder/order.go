package reorder

import (
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// Order is a frozen ranking of the vertices of a universe.
// Lower rank means earlier position in every trie key.
type Order struct {
	rank     []uint32 // rank[v] = position of vertex v
	vertices []uint32 // vertices[r] = vertex at position r
	identity bool
}

// Identity returns the order that ranks vertices by ascending id.
func Identity(n int) *Order {
	o := &Order{
		rank:     make([]uint32, n),
		vertices: make([]uint32, n),
		identity: true,
	}
	for v := range n {
		o.rank[v] = uint32(v)
		o.vertices[v] = uint32(v)
	}
	return o
}

// byFrequency ranks vertices by descending count, ties by ascending id.
func byFrequency(counts []uint64) *Order {
	n := len(counts)
	o := &Order{
		rank:     make([]uint32, n),
		vertices: make([]uint32, n),
	}
	for v := range n {
		o.vertices[v] = uint32(v)
	}
	slices.SortStableFunc(o.vertices, func(a, b uint32) int {
		switch {
		case counts[a] > counts[b]:
			return -1
		case counts[a] < counts[b]:
			return 1
		}
		return int(a) - int(b)
	})
	o.identity = true
	for r, v := range o.vertices {
		o.rank[v] = uint32(r)
		if uint32(r) != v {
			o.identity = false
		}
	}
	return o
}

// Len returns the universe size.
func (o *Order) Len() int { return len(o.rank) }

// Rank returns the position of v.
func (o *Order) Rank(v uint32) uint32 { return o.rank[v] }

// IsIdentity reports whether the order equals ascending id order.
func (o *Order) IsIdentity() bool { return o.identity }

// Vertices returns the vertices in rank order.
func (o *Order) Vertices() []uint32 { return slices.Clone(o.vertices) }

// Key returns the members of set in rank order, appended to buf[:0].
func (o *Order) Key(set *bitset.BitSet, buf []uint32) []uint32 {
	key := buf[:0]
	for v, ok := set.NextSet(0); ok; v, ok = set.NextSet(v + 1) {
		key = append(key, uint32(v))
	}
	if !o.identity {
		slices.SortFunc(key, func(a, b uint32) int {
			return int(o.rank[a]) - int(o.rank[b])
		})
	}
	return key
}
