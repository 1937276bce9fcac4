// Package testutil provides testing utilities for supertrie.
//
// This package is intended for tests and the supertrie check tooling.
// It provides helpers for generating random vertex sets and entry pairs,
// and a brute-force oracle for superset queries.
//
// # Random Entries
//
//	rng := testutil.NewRNG(seed)
//	pairs := rng.Pairs(200, 16, 0.3)            // uniform, disjoint block/boundary
//	skewed := rng.SkewedPairs(200, 16, 5, 1.2) // Zipf distributed boundary vertices
//
// # Ground Truth
//
//	want := testutil.BruteForce(pairs, block, boundary, width)
//	assert.Equal(t, testutil.Keys(want), testutil.Keys(got))
package testutil
