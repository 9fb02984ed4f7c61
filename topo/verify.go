package topo

import (
	"fmt"
)

// VerifyAutomorphism checks that perm is a bijection over the sites of g
// mapping every edge onto an edge of the same color. It works purely
// through the Graph contract, so it applies to any generator's output.
//
// Returns nil on success, or an error wrapping ErrBadSymmetry naming the
// first violation. Complexity: O(V + E).
func VerifyAutomorphism(g Graph, perm []int) error {
	n := g.SiteCount()
	if len(perm) != n {
		return fmt.Errorf("%w: length %d, want %d", ErrBadSymmetry, len(perm), n)
	}
	seen := make([]bool, n)
	for i, p := range perm {
		if p < 0 || p >= n {
			return fmt.Errorf("%w: perm[%d]=%d out of range", ErrBadSymmetry, i, p)
		}
		if seen[p] {
			return fmt.Errorf("%w: site %d mapped twice", ErrBadSymmetry, p)
		}
		seen[p] = true
	}

	colors := g.EdgeColors()
	for key, c := range colors {
		img := NewEdgeKey(perm[key.U], perm[key.V])
		ic, ok := colors[img]
		if !ok {
			return fmt.Errorf("%w: edge (%d,%d) maps to non-edge (%d,%d)",
				ErrBadSymmetry, key.U, key.V, img.U, img.V)
		}
		if ic != c {
			return fmt.Errorf("%w: edge (%d,%d) color %d maps to color %d",
				ErrBadSymmetry, key.U, key.V, c, ic)
		}
	}
	return nil
}
