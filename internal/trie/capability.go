package trie

var hasPopcount bool

// FastPathSupported reports whether the CPU counts bits in hardware, which
// is what makes word-level pruning pay off.
func FastPathSupported() bool { return hasPopcount }
