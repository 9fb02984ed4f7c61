// Package topo defines core types, options, and sentinel errors for
// topology construction.
package topo

import (
	"errors"
)

// Sentinel errors for topology construction. All construction failures wrap
// one of these; check with errors.Is.
var (
	// ErrSiteCount indicates a non-positive site count.
	ErrSiteCount = errors.New("topo: invalid site count")

	// ErrSiteRange indicates an edge endpoint outside [0, SiteCount),
	// including an explicit site count too small for the edge list.
	ErrSiteRange = errors.New("topo: site index out of range")

	// ErrSelfLoop indicates an edge joining a site to itself.
	ErrSelfLoop = errors.New("topo: self-loop edge not allowed")

	// ErrDuplicateEdge indicates the same unordered site pair listed twice.
	ErrDuplicateEdge = errors.New("topo: duplicate edge")

	// ErrUnknownEdge indicates an edge color assigned to a pair that is not
	// an edge of the graph.
	ErrUnknownEdge = errors.New("topo: color assigned to unknown edge")

	// ErrBadColor indicates a negative edge color.
	ErrBadColor = errors.New("topo: edge color must be non-negative")

	// ErrBadSymmetry indicates a supplied permutation that is not a
	// bijection over the sites, or does not preserve adjacency and colors.
	ErrBadSymmetry = errors.New("topo: permutation is not a color-preserving automorphism")
)

// EdgeKey identifies an undirected edge by its endpoints, normalized so that
// U ≤ V. Use NewEdgeKey to construct one; a hand-built key with U > V will
// never match a stored edge.
type EdgeKey struct {
	U, V int
}

// NewEdgeKey returns the normalized key for the unordered pair {a, b}.
// Complexity: O(1).
func NewEdgeKey(a, b int) EdgeKey {
	if a > b {
		a, b = b, a
	}
	return EdgeKey{U: a, V: b}
}

// ColorMap assigns each edge a small non-negative coupling class.
type ColorMap map[EdgeKey]int

// Graph is the read-only topology contract every generator satisfies.
//
// Implementations are immutable once constructed: all methods are pure
// queries and safe for concurrent use. Returned slices and maps are fresh
// copies; callers may mutate them freely.
type Graph interface {
	// SiteCount returns the total number of sites.
	SiteCount() int

	// AdjacencyList returns per-site neighbor lists, index-aligned with
	// site indices. Each list is sorted ascending and duplicate-free, and
	// adjacency is symmetric: j ∈ list[i] ⇔ i ∈ list[j].
	AdjacencyList() [][]int

	// EdgeColors returns the coupling class of every edge. Every edge in
	// AdjacencyList appears exactly once under its normalized EdgeKey.
	EdgeColors() ColorMap

	// SymmetryTable returns the known automorphisms as site permutations.
	// The table always contains at least the identity. Each permutation p
	// satisfies: {u,v} is an edge of color c ⇔ {p[u],p[v]} is an edge of
	// color c.
	SymmetryTable() [][]int
}
