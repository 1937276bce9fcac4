package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenAndLatex(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"entries.txt", "entries.zst", "entries.lz4"} {
		t.Run(name, func(t *testing.T) {
			in := filepath.Join(dir, name)
			require.NoError(t, runGen(genOptions{
				n: 20, width: 4, entries: 50, maxBoundary: 5, skew: 1.1, seed: 9, out: in,
			}))

			idx, err := loadIndex(in)
			require.NoError(t, err)
			assert.Equal(t, 20, idx.Universe())
			assert.Equal(t, 4, idx.WidthBound())
			assert.Equal(t, 50, idx.Size())
			require.NoError(t, idx.Audit())

			out := filepath.Join(dir, name+".tex")
			require.NoError(t, runLatex(in, latexOptions{features: 7, out: out}))
			doc, err := os.ReadFile(out)
			require.NoError(t, err)
			assert.Contains(t, string(doc), `\end{forest}`)
		})
	}
}

func TestLoadIndexErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := loadIndex(filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("4\n1\n0 9\n"), 0o644))
	_, err = loadIndex(bad)
	assert.Error(t, err)
}

func TestLatexWriteError(t *testing.T) {
	if _, err := os.Stat("/dev/full"); err != nil {
		t.Skip("no /dev/full")
	}
	in := filepath.Join(t.TempDir(), "entries.txt")
	require.NoError(t, runGen(genOptions{n: 10, width: 3, entries: 20, maxBoundary: 4, skew: 1.1, seed: 2, out: in}))

	assert.Error(t, runLatex(in, latexOptions{features: 7, out: "/dev/full"}))
	assert.Error(t, runLatex(in, latexOptions{features: 7, out: filepath.Join(t.TempDir(), "missing", "out.tex")}))
}

func TestCheck(t *testing.T) {
	for _, fast := range []bool{false, true} {
		err := runCheck(context.Background(), checkOptions{
			instances:   4,
			firstSeed:   1,
			n:           24,
			width:       5,
			entries:     150,
			queries:     60,
			maxBoundary: 6,
			skew:        1.3,
			rebuildMin:  16,
			parallel:    2,
			fast:        fast,
		})
		require.NoError(t, err)
	}
}
