// Package trie implements the path-compressed superset-query trie.
//
// Entries are (block, boundary) pairs of vertex sets. The boundary, laid out
// as a key in the caller's rank order, determines the unique root-to-node path
// an entry is stored under. Every node carries the union of all blocks and the
// intersection of all boundaries stored in its subtree; the query traversal
// uses both aggregates, together with a budget of boundary vertices that may
// still be added, to skip whole subtrees.
//
// A Trie is not safe for concurrent use. Query mutates scratch buffers, so
// even read-only callers need exclusive access.
package trie

// invariant panics on internal invariant breaks; caller input is validated
// before it reaches this package.
func invariant(condition bool, msg string) {
	if !condition {
		panic("trie: " + msg)
	}
}
