package reorder

import (
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// Tracker counts vertex occurrences across inserted boundaries.
type Tracker struct {
	counts []uint64
}

// NewTracker returns a tracker for a universe of n vertices.
func NewTracker(n int) *Tracker {
	return &Tracker{counts: make([]uint64, n)}
}

// Observe adds one occurrence for every member of boundary.
func (t *Tracker) Observe(boundary *bitset.BitSet) {
	for v, ok := boundary.NextSet(0); ok; v, ok = boundary.NextSet(v + 1) {
		if int(v) < len(t.counts) {
			t.counts[v]++
		}
	}
}

// Count returns the number of observed occurrences of v.
func (t *Tracker) Count(v uint32) uint64 { return t.counts[v] }

// Counts returns a copy of all counters indexed by vertex.
func (t *Tracker) Counts() []uint64 { return slices.Clone(t.counts) }

// Order snapshots the current counters into a frequency order.
func (t *Tracker) Order() *Order { return byFrequency(t.counts) }
