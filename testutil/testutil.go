package testutil

import (
	"math"
	"math/rand"
	"slices"
	"sync"

	"github.com/bits-and-blooms/bitset"
)

// Pair is one (block, boundary) entry.
type Pair struct {
	Block    *bitset.BitSet
	Boundary *bitset.BitSet
}

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// SetOf returns a set of length n holding vs.
func SetOf(n int, vs ...uint) *bitset.BitSet {
	b := bitset.New(uint(n))
	for _, v := range vs {
		b.Set(v)
	}
	return b
}

// Set returns a set of length n where every vertex is a member with probability p.
func (r *RNG) Set(n int, p float64) *bitset.BitSet {
	r.mu.Lock()
	defer r.mu.Unlock()

	b := bitset.New(uint(n))
	for v := range n {
		if r.rand.Float64() < p {
			b.Set(uint(v))
		}
	}
	return b
}

// Pairs generates count entries over n vertices. Every vertex joins the
// block with probability p, otherwise the boundary with probability p, so
// block and boundary are disjoint.
func (r *RNG) Pairs(count, n int, p float64) []Pair {
	r.mu.Lock()
	defer r.mu.Unlock()

	pairs := make([]Pair, count)
	for i := range pairs {
		block, boundary := bitset.New(uint(n)), bitset.New(uint(n))
		for v := range n {
			switch {
			case r.rand.Float64() < p:
				block.Set(uint(v))
			case r.rand.Float64() < p:
				boundary.Set(uint(v))
			}
		}
		pairs[i] = Pair{Block: block, Boundary: boundary}
	}
	return pairs
}

// SkewedPairs generates count entries whose boundaries draw up to
// maxBoundary vertices from a Zipf distribution with skew s, so a few
// vertices dominate. Blocks are uniform over the remaining vertices.
func (r *RNG) SkewedPairs(count, n, maxBoundary int, s float64) []Pair {
	r.mu.Lock()
	defer r.mu.Unlock()

	pairs := make([]Pair, count)
	for i := range pairs {
		boundary := bitset.New(uint(n))
		size := r.rand.Intn(maxBoundary + 1)
		for range size {
			// scatter the popular vertices so rank order differs from id order
			v := (r.zipfLocked(n, s)*7 + 3) % n
			boundary.Set(uint(v))
		}
		block := bitset.New(uint(n))
		for v := range n {
			if !boundary.Test(uint(v)) && r.rand.Float64() < 0.3 {
				block.Set(uint(v))
			}
		}
		pairs[i] = Pair{Block: block, Boundary: boundary}
	}
	return pairs
}

// zipfLocked is the internal implementation (caller must hold lock).
func (r *RNG) zipfLocked(n int, s float64) int {
	if n <= 1 {
		return 0
	}

	var hns float64
	for i := 1; i <= n; i++ {
		hns += 1.0 / math.Pow(float64(i), s)
	}

	u := r.rand.Float64() * hns
	var cumulative float64
	for k := 1; k <= n; k++ {
		cumulative += 1.0 / math.Pow(float64(k), s)
		if u <= cumulative {
			return k - 1 // 0-indexed
		}
	}

	return n - 1
}

// BruteForce answers a superset query by scanning every pair: it returns
// each distinct boundary B of a pair whose block contains block and for
// which |boundary ∪ B| <= width+1.
func BruteForce(pairs []Pair, block, boundary *bitset.BitSet, width int) []*bitset.BitSet {
	var out []*bitset.BitSet
	seen := make(map[string]bool)
	for _, p := range pairs {
		if !p.Block.IsSuperSet(block) {
			continue
		}
		if int(boundary.UnionCardinality(p.Boundary))-1 > width {
			continue
		}
		key := p.Boundary.String()
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, p.Boundary.Clone())
	}
	return out
}

// Keys returns the sorted string forms of sets, for order independent
// comparison of query results.
func Keys(sets []*bitset.BitSet) []string {
	keys := make([]string, len(sets))
	for i, s := range sets {
		keys[i] = s.String()
	}
	slices.Sort(keys)
	return keys
}
