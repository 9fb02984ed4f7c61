// Package hypercube generates d-dimensional hyper-rectangular lattices as
// topo.Graph values: the "Hypercube" topology of many-body simulation input.
//
// What:
//
//   - New builds a lattice from a dimension count, per-axis side lengths
//     (uniform or per-axis), and a periodic/open boundary flag per axis.
//   - Sites are the L₀×L₁×…×L_{d-1} integer coordinate tuples in
//     lexicographic order; each site connects to its axis-aligned nearest
//     neighbors, wrapping across periodic boundaries.
//   - Edge color = axis index, so couplings along different lattice
//     directions can be told apart downstream.
//   - The symmetry table is the group of axis-aligned translations allowed
//     by the boundary conditions (the full cyclic group per periodic axis,
//     only the identity per open axis), optionally composed with per-axis
//     reflections via WithReflections.
//
// Why:
//
//   - Regular lattices are the default geometry of lattice models; deriving
//     translations procedurally hands the solver a symmetry group for free.
//
// Degenerate boundaries are handled rather than rejected: an axis of length
// 1 contributes no edges, and periodic wrap on an axis of length 2 would
// duplicate the nearest-neighbor edge, so it is folded into it.
//
// Errors:
//
//   - ErrDimension — dimension < 1.
//   - ErrSideLength — missing, non-positive, or miscounted side lengths.
//   - ErrBoundaryCount — periodic flags that match neither 1 nor d axes.
//
// Complexity: O(V·d) for edges and O(S·V) for the symmetry table, where
// S is the group size (∏ L over periodic axes, ×2 per reflected axis).
package hypercube
