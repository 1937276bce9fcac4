package scan

import (
	"math"
	"testing"

	"github.com/exacttw/supertrie/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var setOf = testutil.SetOf

func TestIndex(t *testing.T) {
	x := New(6)
	x.Insert(setOf(6, 0, 1), setOf(6, 2, 3))
	x.Insert(setOf(6, 0), setOf(6, 2, 3, 4))
	x.Insert(setOf(6, 0, 1, 5), setOf(6, 2, 3))
	require.Equal(t, 3, x.Len())

	t.Run("Candidates", func(t *testing.T) {
		assert.Equal(t, []uint32{0, 1, 2}, x.Candidates(setOf(6)).ToArray())
		assert.Equal(t, []uint32{0, 2}, x.Candidates(setOf(6, 1)).ToArray())
		assert.Equal(t, []uint32{2}, x.Candidates(setOf(6, 1, 5)).ToArray())
		assert.True(t, x.Candidates(setOf(6, 4)).IsEmpty())
	})

	t.Run("Query", func(t *testing.T) {
		got := x.Query(setOf(6, 0), setOf(6, 2, 3), 2)
		require.Len(t, got, 2)
		assert.True(t, got[0].Equal(setOf(6, 2, 3)))
		assert.True(t, got[1].Equal(setOf(6, 2, 3, 4)))

		got = x.Query(setOf(6, 1), setOf(6, 2, 3), 2)
		require.Len(t, got, 1)
		assert.True(t, got[0].Equal(setOf(6, 2, 3)))

		assert.Empty(t, x.Query(setOf(6, 0), setOf(6, 1, 2, 3, 4), 2))
	})

	t.Run("ExtremeWidth", func(t *testing.T) {
		assert.Len(t, x.Query(setOf(6, 0), setOf(6), math.MaxInt), 2)
		assert.Empty(t, x.Query(setOf(6, 0), setOf(6), math.MinInt))
	})

	t.Run("CandidatesAreCopies", func(t *testing.T) {
		c := x.Candidates(setOf(6))
		c.Clear()
		assert.Equal(t, uint64(3), x.Candidates(setOf(6)).GetCardinality())
	})
}

func TestIndexMatchesBruteForce(t *testing.T) {
	const n = 16
	rng := testutil.NewRNG(7)
	pairs := rng.Pairs(300, n, 0.2)

	x := New(n)
	for _, p := range pairs {
		x.Insert(p.Block, p.Boundary)
	}
	for range 200 {
		block, boundary, width := rng.Set(n, 0.1), rng.Set(n, 0.2), rng.Intn(7)
		assert.Equal(t,
			testutil.Keys(testutil.BruteForce(pairs, block, boundary, width)),
			testutil.Keys(x.Query(block, boundary, width)))
	}
}
