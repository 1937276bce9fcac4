// Package entryio reads and writes streams of (block, boundary) entries.
//
// The text format starts with the universe size and the width bound on one
// line each, followed by one entry per line:
//
//	6
//	2
//	0,1 2,3
//	0 2,3,4
//
// Both sets are comma separated vertex lists; "-" denotes the empty set.
// Blank lines and lines starting with '#' are ignored.
//
// Open and Create pick a compression codec from the file extension: ".zst"
// uses zstd, ".lz4" uses lz4, anything else is plain text.
package entryio
