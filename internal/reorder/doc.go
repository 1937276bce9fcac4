// Package reorder tracks how often each vertex occurs in inserted boundaries
// and derives the key order used to lay out boundaries as trie keys.
//
// Vertices that recur across many boundaries are ranked first so that keys
// share longer prefixes and the aggregates near the root prune earlier. The
// order is a snapshot: it only changes when the owning index decides to
// rebuild, which is governed by a Policy.
package reorder
