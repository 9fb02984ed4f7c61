package topo

import (
	"fmt"
	"sort"
)

// Option configures CustomGraph construction via functional arguments.
// An invalid option is recorded internally and surfaced by NewCustom.
type Option func(*customOptions)

// customOptions holds pending construction parameters.
type customOptions struct {
	siteCount  int // 0 means "derive from max edge index"
	colors     ColorMap
	symmetries [][]int

	// internal error recorded during option parsing
	err error
}

// WithSiteCount fixes the number of sites explicitly. Without it the count
// defaults to the largest referenced index + 1. Must be positive and at
// least large enough for every edge endpoint.
func WithSiteCount(n int) Option {
	return func(o *customOptions) {
		if n < 1 {
			o.err = fmt.Errorf("%w: site count must be ≥ 1, got %d", ErrSiteCount, n)
			return
		}
		o.siteCount = n
	}
}

// WithEdgeColors assigns coupling classes to edges. Keys are normalized via
// NewEdgeKey on insertion, so callers may pass endpoints in either order.
// Edges absent from the map keep the default color 0.
func WithEdgeColors(colors map[EdgeKey]int) Option {
	return func(o *customOptions) {
		if len(colors) == 0 {
			return
		}
		o.colors = make(ColorMap, len(colors))
		for k, c := range colors {
			o.colors[NewEdgeKey(k.U, k.V)] = c
		}
	}
}

// WithSymmetries supplies the symmetry table. Each permutation is verified
// to be a color-preserving automorphism during construction. Without this
// option the table is the trivial group {identity}: computing the full
// automorphism group is out of scope here.
func WithSymmetries(perms [][]int) Option {
	return func(o *customOptions) {
		o.symmetries = perms
	}
}

// customGraph is the Graph built from an explicit edge list. Immutable once
// constructed; accessors return copies.
type customGraph struct {
	siteCount  int
	adjacency  [][]int
	colors     ColorMap
	symmetries [][]int
}

// NewCustom builds a Graph from an explicit undirected edge list.
//
// Validation is fatal and complete at construction time: out-of-range
// endpoints (ErrSiteRange), self-loops (ErrSelfLoop), duplicate pairs
// (ErrDuplicateEdge), colors on non-edges (ErrUnknownEdge), and supplied
// permutations that fail the automorphism check (ErrBadSymmetry) all reject
// the whole graph. An empty edge list with WithSiteCount(n) yields a valid
// n-site edgeless graph.
//
// Complexity: O(V + E·log E + S·(V+E)) where S is the number of supplied
// symmetries.
func NewCustom(edges [][2]int, opts ...Option) (Graph, error) {
	o := customOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := o.siteCount
	if n == 0 {
		// Derive from the largest referenced index.
		for _, e := range edges {
			if e[0] >= n {
				n = e[0] + 1
			}
			if e[1] >= n {
				n = e[1] + 1
			}
		}
	}
	if n < 1 {
		return nil, fmt.Errorf("%w: no edges and no explicit site count", ErrSiteCount)
	}

	g := &customGraph{
		siteCount: n,
		adjacency: make([][]int, n),
		colors:    make(ColorMap, len(edges)),
	}

	seen := make(map[EdgeKey]struct{}, len(edges))
	for _, e := range edges {
		u, v := e[0], e[1]
		if u < 0 || u >= n || v < 0 || v >= n {
			return nil, fmt.Errorf("%w: edge (%d,%d) with %d sites", ErrSiteRange, u, v, n)
		}
		if u == v {
			return nil, fmt.Errorf("%w: (%d,%d)", ErrSelfLoop, u, v)
		}
		key := NewEdgeKey(u, v)
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("%w: (%d,%d)", ErrDuplicateEdge, u, v)
		}
		seen[key] = struct{}{}
		g.adjacency[u] = append(g.adjacency[u], v)
		g.adjacency[v] = append(g.adjacency[v], u)
		g.colors[key] = 0
	}
	for i := range g.adjacency {
		sort.Ints(g.adjacency[i])
	}

	// Overlay caller-supplied colors; every key must name a real edge.
	for key, c := range o.colors {
		if c < 0 {
			return nil, fmt.Errorf("%w: color %d on edge (%d,%d)", ErrBadColor, c, key.U, key.V)
		}
		if _, ok := g.colors[key]; !ok {
			return nil, fmt.Errorf("%w: (%d,%d)", ErrUnknownEdge, key.U, key.V)
		}
		g.colors[key] = c
	}

	if o.symmetries == nil {
		g.symmetries = [][]int{identity(n)}
	} else {
		g.symmetries = make([][]int, 0, len(o.symmetries))
		for i, perm := range o.symmetries {
			if err := VerifyAutomorphism(g, perm); err != nil {
				return nil, fmt.Errorf("symmetry %d: %w", i, err)
			}
			g.symmetries = append(g.symmetries, append([]int(nil), perm...))
		}
		if len(g.symmetries) == 0 {
			g.symmetries = [][]int{identity(n)}
		}
	}

	return g, nil
}

// SiteCount returns the number of sites. Complexity: O(1).
func (g *customGraph) SiteCount() int { return g.siteCount }

// AdjacencyList returns a deep copy of the neighbor lists.
// Complexity: O(V + E).
func (g *customGraph) AdjacencyList() [][]int { return copyAdjacency(g.adjacency) }

// EdgeColors returns a copy of the edge color map. Complexity: O(E).
func (g *customGraph) EdgeColors() ColorMap { return copyColors(g.colors) }

// SymmetryTable returns a deep copy of the symmetry permutations.
// Complexity: O(S·V).
func (g *customGraph) SymmetryTable() [][]int { return copyTable(g.symmetries) }

// identity returns the identity permutation over n sites.
func identity(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	return p
}

func copyAdjacency(adj [][]int) [][]int {
	out := make([][]int, len(adj))
	for i, row := range adj {
		out[i] = append([]int(nil), row...)
	}
	return out
}

func copyColors(colors ColorMap) ColorMap {
	out := make(ColorMap, len(colors))
	for k, c := range colors {
		out[k] = c
	}
	return out
}

func copyTable(perms [][]int) [][]int {
	out := make([][]int, len(perms))
	for i, p := range perms {
		out[i] = append([]int(nil), p...)
	}
	return out
}
