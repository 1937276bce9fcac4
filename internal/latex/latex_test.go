package latex

import (
	"errors"
	"strings"
	"testing"

	"github.com/exacttw/supertrie/internal/reorder"
	"github.com/exacttw/supertrie/internal/trie"
	"github.com/exacttw/supertrie/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var setOf = testutil.SetOf

func sample() *trie.Trie {
	order := reorder.Identity(6)
	tr := trie.New(6, false)
	for _, e := range []*trie.Entry{
		{Block: setOf(6, 0, 1), Boundary: setOf(6, 2, 3)},
		{Block: setOf(6, 0), Boundary: setOf(6, 2, 3, 4)},
	} {
		tr.Insert(e, order.Key(e.Boundary, nil))
	}
	return tr
}

func TestWrite(t *testing.T) {
	t.Run("PathsOnly", func(t *testing.T) {
		var sb strings.Builder
		require.NoError(t, Write(&sb, sample().Root(), None))

		out := sb.String()
		assert.True(t, strings.HasPrefix(out, `\documentclass{standalone}`))
		assert.True(t, strings.HasSuffix(out, "\\end{document}\n"))
		assert.Contains(t, out,
			`[{$\emptyset$ },align=center`+
				`[{$\mathbf{\underline{2\,3}}$ },align=center,line width=.7mm`+
				`[{$2\,3\,\mathbf{\underline{4}}$ },align=center,line width=.7mm]]]`)
	})

	t.Run("AllFeatures", func(t *testing.T) {
		var sb strings.Builder
		require.NoError(t, Write(&sb, sample().Root(), All))

		out := sb.String()
		assert.Contains(t, out, `{\color{black!50} $2 3$}`)
		assert.Contains(t, out, `{\color{blue} $0 1$}`)
		assert.Contains(t, out, `{\color{blue!50} $0$}`)
	})

	t.Run("EmptyTrie", func(t *testing.T) {
		var sb strings.Builder
		require.NoError(t, Write(&sb, trie.New(3, false).Root(), Intersection|Union))
		assert.Contains(t, sb.String(), `{\color{black!50} $0 1 2$}`)
		assert.Contains(t, sb.String(), `{\color{blue} $\emptyset$}`)
	})

	t.Run("WriterError", func(t *testing.T) {
		err := Write(failingWriter{}, sample().Root(), All)
		assert.ErrorIs(t, err, errBroken)
	})
}

var errBroken = errors.New("broken pipe")

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errBroken }
