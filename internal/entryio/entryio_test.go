package entryio

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/exacttw/supertrie/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var setOf = testutil.SetOf

func TestReader(t *testing.T) {
	t.Run("Stream", func(t *testing.T) {
		r, err := NewReader(strings.NewReader("# sample\n6\n2\n\n0,1 2,3\n0   2,3,4\n5 -\n"))
		require.NoError(t, err)
		assert.Equal(t, Header{Universe: 6, Width: 2}, r.Header())

		block, boundary, err := r.Next()
		require.NoError(t, err)
		assert.True(t, block.Equal(setOf(6, 0, 1)))
		assert.True(t, boundary.Equal(setOf(6, 2, 3)))

		block, boundary, err = r.Next()
		require.NoError(t, err)
		assert.True(t, block.Equal(setOf(6, 0)))
		assert.True(t, boundary.Equal(setOf(6, 2, 3, 4)))

		block, boundary, err = r.Next()
		require.NoError(t, err)
		assert.True(t, block.Equal(setOf(6, 5)))
		assert.True(t, boundary.None())
		assert.Equal(t, uint(6), boundary.Len())

		_, _, err = r.Next()
		assert.Equal(t, io.EOF, err)
	})

	t.Run("Errors", func(t *testing.T) {
		tests := []struct {
			name  string
			input string
			line  int
		}{
			{name: "MissingHeader", input: "", line: 0},
			{name: "BadUniverse", input: "x\n2\n", line: 1},
			{name: "ZeroUniverse", input: "0\n2\n", line: 1},
			{name: "NegativeWidth", input: "4\n-1\n", line: 2},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := NewReader(strings.NewReader(tt.input))
				require.ErrorIs(t, err, ErrSyntax)
				var pe *ParseError
				require.ErrorAs(t, err, &pe)
				assert.Equal(t, tt.line, pe.Line)
			})
		}

		for _, line := range []string{"0,1", "0,x 1", "0 9", "0 1 2"} {
			r, err := NewReader(strings.NewReader("6\n2\n" + line + "\n"))
			require.NoError(t, err)
			_, _, err = r.Next()
			assert.ErrorIs(t, err, ErrSyntax, line)
		}
	})
}

func TestWriterRoundTrip(t *testing.T) {
	rng := testutil.NewRNG(3)
	pairs := rng.Pairs(40, 20, 0.2)

	var buf bytes.Buffer
	w, err := NewWriter(&buf, Header{Universe: 20, Width: 4})
	require.NoError(t, err)
	for _, p := range pairs {
		require.NoError(t, w.Write(p.Block, p.Boundary))
	}
	require.NoError(t, w.Flush())

	r, err := NewReader(&buf)
	require.NoError(t, err)
	assert.Equal(t, Header{Universe: 20, Width: 4}, r.Header())
	for i := 0; ; i++ {
		block, boundary, err := r.Next()
		if err == io.EOF {
			assert.Equal(t, len(pairs), i)
			break
		}
		require.NoError(t, err)
		assert.True(t, block.Equal(pairs[i].Block), "entry %d", i)
		assert.True(t, boundary.Equal(pairs[i].Boundary), "entry %d", i)
	}
}

func TestCompressedFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"entries.txt", "entries.zst", "entries.lz4"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)

			wc, err := Create(path)
			require.NoError(t, err)
			w, err := NewWriter(wc, Header{Universe: 6, Width: 2})
			require.NoError(t, err)
			require.NoError(t, w.Write(setOf(6, 0, 1), setOf(6, 2, 3)))
			require.NoError(t, w.Flush())
			require.NoError(t, wc.Close())

			rc, err := Open(path)
			require.NoError(t, err)
			defer rc.Close()
			r, err := NewReader(rc)
			require.NoError(t, err)
			block, boundary, err := r.Next()
			require.NoError(t, err)
			assert.True(t, block.Equal(setOf(6, 0, 1)))
			assert.True(t, boundary.Equal(setOf(6, 2, 3)))
		})
	}

	assert.Equal(t, Zstd, CodecFor("a.zst"))
	assert.Equal(t, LZ4, CodecFor("a.lz4"))
	assert.Equal(t, Plain, CodecFor("a.txt"))
}
