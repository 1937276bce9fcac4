package supertrie

import (
	"github.com/exacttw/supertrie/internal/latex"
	"github.com/exacttw/supertrie/internal/reorder"
)

// RebuildPolicy decides at which sizes the trie is rebuilt with a vertex
// order computed from the boundaries seen so far. Due is consulted before
// every insert with the number of pairs already stored.
type RebuildPolicy interface {
	Due(size int) bool
}

// DefaultMinRebuild is the smallest size at which the default policy
// rebuilds.
const DefaultMinRebuild = reorder.DefaultMinRebuild

// DoublingPolicy rebuilds whenever the size reaches a power of two that is
// at least minSize.
func DoublingPolicy(minSize int) RebuildPolicy { return reorder.Doubling{Min: minSize} }

// GeometricPolicy rebuilds at start, start*factor, start*factor², ...
func GeometricPolicy(start, factor int) RebuildPolicy {
	return reorder.Geometric{Start: start, Factor: factor}
}

// NeverRebuild disables reordering.
func NeverRebuild() RebuildPolicy { return reorder.Never{} }

// LaTeXFeature selects optional annotations of WriteLaTeX. Values combine
// as bit flags.
type LaTeXFeature = latex.Feature

const (
	// LaTeXIntersection prints the subtree intersection of boundaries.
	LaTeXIntersection = latex.Intersection
	// LaTeXUnion prints the subtree union of blocks.
	LaTeXUnion = latex.Union
	// LaTeXBlocks prints the blocks stored at each node.
	LaTeXBlocks = latex.Blocks
	// LaTeXAll enables every annotation.
	LaTeXAll = latex.All
)
