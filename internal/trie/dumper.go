package trie

import (
	"fmt"
	"io"
	"strings"
)

// ##################################################
//  useful during development, debugging and testing
// ##################################################

// dumpString is just a wrapper for Dump.
func (t *Trie) dumpString() string {
	w := new(strings.Builder)
	t.Dump(w)
	return w.String()
}

// Dump writes the trie structure and all aggregates to w.
func (t *Trie) Dump(w io.Writer) {
	if t == nil {
		return
	}
	fmt.Fprintf(w, "### universe(%d), size(%d), nodes(%d), fast(%t)\n", t.n, t.size, t.nodes, t.fast)
	t.root.dumpRec(w, nil, 0)
}

// dumpRec, rec-descent the trie.
func (n *Node) dumpRec(w io.Writer, path []uint32, depth int) {
	path = append(path, n.key...)
	n.dump(w, path, depth)
	for _, c := range n.children {
		c.dumpRec(w, path, depth+1)
	}
}

func (n *Node) dump(w io.Writer, path []uint32, depth int) {
	indent := strings.Repeat(".", depth)
	fmt.Fprintf(w, "%s[%s] key: %v path: %v\n", indent, n.hasType(), n.key, path)
	fmt.Fprintf(w, "%s  union: %v inter: %v\n", indent, n.union.String(), n.inter.String())
	for _, e := range n.entries {
		fmt.Fprintf(w, "%s  block: %v\n", indent, e.Block.String())
	}
}

func (n *Node) hasType() string {
	switch {
	case len(n.key) == 0:
		return "ROOT"
	case len(n.children) == 0:
		return "LEAF"
	case len(n.entries) == 0:
		return "INNER"
	default:
		return "FULL"
	}
}
