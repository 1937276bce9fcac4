// Package latex renders a trie as a standalone LaTeX document drawn with the
// forest package.
//
// Each node is labelled with its full root path, the node's own key segment
// set in bold and underlined. Depending on the requested features the label
// also lists the subtree intersection of boundaries, the subtree union of
// blocks and the blocks stored at the node. Nodes holding entries get a
// thick border.
package latex

import (
	"bufio"
	"io"
	"strconv"

	"github.com/bits-and-blooms/bitset"
	"github.com/exacttw/supertrie/internal/trie"
)

// Feature selects optional node annotations. Values combine as bit flags.
type Feature uint8

const (
	// Intersection prints the subtree intersection of boundaries in grey.
	Intersection Feature = 1 << iota
	// Union prints the subtree union of blocks in blue.
	Union
	// Blocks prints every stored block in light blue.
	Blocks

	// None prints only the key paths.
	None Feature = 0
	// All enables every annotation.
	All = Intersection | Union | Blocks
)

const preamble = `\documentclass{standalone}
\usepackage{forest}
\forestset{  default preamble={  for tree={draw,rounded corners}  }}
\begin{document}
\begin{forest}
`

const closing = `
\end{forest}
\end{document}
`

// Write renders the tree below root to w.
func Write(w io.Writer, root *trie.Node, features Feature) error {
	bw := bufio.NewWriter(w)
	r := renderer{w: bw, features: features}
	r.str(preamble)
	r.node(root, nil)
	r.str(closing)
	return bw.Flush()
}

// renderer writes to a bufio.Writer, whose error is sticky and reported by
// Flush.
type renderer struct {
	w        *bufio.Writer
	features Feature
}

func (r *renderer) str(s string) { _, _ = r.w.WriteString(s) }

func (r *renderer) int(v uint) { r.str(strconv.FormatUint(uint64(v), 10)) }

func (r *renderer) node(n *trie.Node, parent []uint32) {
	key := n.Key()
	path := append(append([]uint32(nil), parent...), key...)

	r.str("[{$")
	if len(path) == 0 {
		r.str(`\emptyset`)
	} else {
		for i, v := range path {
			if i > 0 {
				r.str(`\,`)
			}
			if i == len(parent) {
				r.str(`\mathbf{\underline{`)
			}
			r.int(uint(v))
		}
		r.str("}}")
	}
	r.str("$ ")

	if r.features&Intersection != 0 {
		r.set(n.Intersection(), "black!50")
	}
	if r.features&Union != 0 {
		r.set(n.Union(), "blue")
	}
	entries := n.Entries()
	if r.features&Blocks != 0 {
		for _, e := range entries {
			r.set(e.Block, "blue!50")
		}
	}
	r.str("},align=center")
	if len(entries) > 0 {
		r.str(",line width=.7mm")
	}
	for _, c := range n.Children() {
		r.node(c, path)
	}
	r.str("]")
}

func (r *renderer) set(b *bitset.BitSet, colour string) {
	r.str(`\\ [-1ex] \scriptsize {\color{` + colour + `} $`)
	if b.None() {
		r.str(`\emptyset`)
	} else {
		sep := ""
		for v, ok := b.NextSet(0); ok; v, ok = b.NextSet(v + 1) {
			r.str(sep)
			r.int(v)
			sep = " "
		}
	}
	r.str("$} ")
}
