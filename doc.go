// Package supertrie provides an in-memory index of (block, boundary) vertex
// set pairs that answers bounded superset queries, as needed by exact
// treewidth dynamic programs.
//
// All sets live in a fixed universe [0, n) and are represented by
// *bitset.BitSet values of length n. An Index stores pairs and, given a
// component block C and boundary X, reports the distinct stored boundaries
// B' of pairs (B, B') with
//
//   - C ⊆ B, and
//   - |X ∪ B'| <= widthBound + 1.
//
// # Quick Start
//
//	idx, _ := supertrie.New(6, 2)
//	_ = idx.Insert(blockOf(0, 1), boundaryOf(2, 3))
//	_ = idx.Insert(blockOf(0), boundaryOf(2, 3, 4))
//
//	found, _ := idx.Query(blockOf(0), boundaryOf(2))
//	// found holds {2,3} and {2,3,4}
//
// # Structure
//
// Internally the index is a path-compressed trie keyed by the vertices of
// each boundary. Every node keeps the union of the blocks and the
// intersection of the boundaries stored below it, which lets queries skip
// whole subtrees. Keys are ordered by how often a vertex occurs in
// boundaries; the order is refreshed by rebuilding the trie according to a
// RebuildPolicy. Reordering changes the shape of the trie, never the result
// of a query.
//
// # Concurrency
//
// An Index is not safe for concurrent use, not even for concurrent queries,
// because queries reuse scratch buffers. Wrap it with NewSynchronized when
// several goroutines share one index.
//
// # Diagnostics
//
// Dump writes a plain text tree, WriteLaTeX a forest document, and Audit
// recomputes every aggregate from scratch.
package supertrie
