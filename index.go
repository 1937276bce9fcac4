package supertrie

import (
	"fmt"
	"io"
	"time"

	"github.com/bits-and-blooms/bitset"
	"github.com/exacttw/supertrie/internal/latex"
	"github.com/exacttw/supertrie/internal/reorder"
	"github.com/exacttw/supertrie/internal/trie"
)

// Index stores (block, boundary) pairs over the universe [0, n) and answers
// bounded superset queries.
type Index struct {
	n     int
	width int

	trie    *trie.Trie
	order   *reorder.Order
	tracker *reorder.Tracker
	entries []*trie.Entry // insertion order, replayed by rebuilds
	key     []uint32      // scratch

	policy   RebuildPolicy
	fastPath bool
	rebuilds int
	visited  int64
	pruned   int64

	logger  *Logger
	metrics MetricsCollector
}

// Stats describes the shape of an index.
type Stats struct {
	Entries   int   // stored pairs
	Nodes     int   // trie nodes, root included
	Depth     int   // edges on the longest root-to-leaf path
	Rebuilds  int   // completed rebuilds
	Reordered bool  // current key order differs from ascending ids
	FastPath  bool  // word-level pruning in use
	Visited   int64 // nodes tested by all queries so far
	Pruned    int64 // nodes rejected by all queries so far
}

// New creates an empty index over the universe [0, n). widthBound is the
// default bound used by Query.
func New(n, widthBound int, optFns ...Option) (*Index, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidUniverse, n)
	}
	if widthBound < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWidth, widthBound)
	}

	opts := applyOptions(optFns)

	x := &Index{
		n:        n,
		width:    widthBound,
		trie:     trie.New(n, opts.fastPath),
		order:    reorder.Identity(n),
		tracker:  reorder.NewTracker(n),
		policy:   opts.policy,
		fastPath: opts.fastPath,
		logger:   opts.logger.WithUniverse(n).WithWidth(widthBound),
		metrics:  opts.metricsCollector,
	}
	x.logger.LogCreate(x.fastPath, x.policy)
	return x, nil
}

// Universe returns n.
func (x *Index) Universe() int { return x.n }

// WidthBound returns the width bound used by Query.
func (x *Index) WidthBound() int { return x.width }

// Size returns the number of stored pairs, duplicates included.
func (x *Index) Size() int { return len(x.entries) }

// Insert stores the pair (block, boundary). Both sets must have length n.
// The index keeps its own copies; the caller may reuse the arguments.
func (x *Index) Insert(block, boundary *bitset.BitSet) (err error) {
	start := time.Now()
	defer func() {
		x.metrics.RecordInsert(time.Since(start), err)
	}()

	if err := x.checkSets(block, boundary); err != nil {
		x.logger.LogRejected("insert", err)
		return err
	}

	if x.policy.Due(len(x.entries)) {
		x.rebuild()
	}

	e := &trie.Entry{Block: block.Clone(), Boundary: boundary.Clone()}
	x.entries = append(x.entries, e)
	x.tracker.Observe(e.Boundary)
	x.key = x.order.Key(e.Boundary, x.key)
	x.trie.Insert(e, x.key)
	return nil
}

// Query returns the distinct stored boundaries B' of pairs (B, B') with
// componentBlock ⊆ B and |componentBoundary ∪ B'| <= WidthBound()+1.
func (x *Index) Query(componentBlock, componentBoundary *bitset.BitSet) ([]*bitset.BitSet, error) {
	return x.QueryWidth(componentBlock, componentBoundary, x.width)
}

// QueryWidth is Query with an explicit width bound. The result is empty
// when componentBoundary alone already exceeds widthBound+1 vertices.
//
// The returned sets are copies owned by the caller. Their order is
// unspecified.
func (x *Index) QueryWidth(componentBlock, componentBoundary *bitset.BitSet, widthBound int) (found []*bitset.BitSet, err error) {
	start := time.Now()
	var st trie.QueryStats
	defer func() {
		x.metrics.RecordQuery(len(found), st.Visited, st.Pruned, time.Since(start), err)
	}()

	if err := x.checkSets(componentBlock, componentBoundary); err != nil {
		x.logger.LogRejected("query", err)
		return nil, err
	}

	st = x.trie.Query(componentBlock, componentBoundary, widthBound, func(e *trie.Entry) {
		found = append(found, e.Boundary.Clone())
	})
	x.visited += int64(st.Visited)
	x.pruned += int64(st.Pruned)
	return found, nil
}

// Stats returns a snapshot of the index shape.
func (x *Index) Stats() Stats {
	return Stats{
		Entries:   len(x.entries),
		Nodes:     x.trie.Nodes(),
		Depth:     x.trie.Depth(),
		Rebuilds:  x.rebuilds,
		Reordered: !x.order.IsIdentity(),
		FastPath:  x.fastPath,
		Visited:   x.visited,
		Pruned:    x.pruned,
	}
}

// Audit recomputes every node aggregate from the stored pairs and checks
// the structure of the trie. It returns an error wrapping
// ErrInvariantViolation on the first inconsistency found.
func (x *Index) Audit() error {
	err := translateError(x.trie.Audit(x.entries, x.order))
	x.logger.LogAudit(len(x.entries), err)
	return err
}

// Dump writes a plain text rendering of the trie to w.
func (x *Index) Dump(w io.Writer) {
	x.trie.Dump(w)
}

// WriteLaTeX writes the trie as a standalone forest document to w.
func (x *Index) WriteLaTeX(w io.Writer, features LaTeXFeature) error {
	return latex.Write(w, x.trie.Root(), features)
}

func (x *Index) checkSets(block, boundary *bitset.BitSet) error {
	for _, s := range []*bitset.BitSet{block, boundary} {
		if s == nil {
			return ErrNilSet
		}
		if int(s.Len()) != x.n {
			return &ErrUniverseMismatch{Expected: x.n, Actual: int(s.Len())}
		}
	}
	return nil
}

// rebuild replays all pairs into a fresh trie keyed by the current
// frequency order and swaps it in once complete.
func (x *Index) rebuild() {
	start := time.Now()

	order := x.tracker.Order()
	t := trie.New(x.n, x.fastPath)
	var key []uint32
	for _, e := range x.entries {
		key = order.Key(e.Boundary, key)
		t.Insert(e, key)
	}

	x.trie, x.order = t, order
	x.rebuilds++

	d := time.Since(start)
	x.metrics.RecordRebuild(len(x.entries), d)
	x.logger.LogRebuild(len(x.entries), t.Nodes(), !order.IsIdentity(), d)
}
