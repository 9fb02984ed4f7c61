// Package topograph describes finite lattice and network topologies used as
// input geometry for many-body simulations: sites, pairwise connectivity,
// per-edge coupling classes, and the symmetry group a solver may later
// exploit to reduce computation.
//
// What you get:
//
//   - topo/      — the Graph contract (sites, adjacency, edge colors,
//     symmetry table) plus CustomGraph, built from an explicit edge list
//   - hypercube/ — a d-dimensional hyper-rectangular lattice generator with
//     per-axis side lengths, periodic or open boundaries, and the derived
//     translation (and optional reflection) symmetry group
//   - traverse/  — breadth-first traversal with depth bounds and hooks,
//     connectivity and bipartiteness tests, single-source and all-pairs
//     hop-count distances — written once against the Graph contract
//   - config/    — HCL/YAML topology configuration and the dispatcher that
//     selects a generator from it
//   - catalog/   — a Badger-backed store that dedupes topologies by canonical
//     encoding and caches their distance matrices
//
// Every Graph is immutable once constructed, so all queries are safe for
// concurrent use without locking. Construction failures are reported as
// wrapped sentinel errors checkable with errors.Is; no partial graph is ever
// returned.
//
// Quick ASCII example — a 1-D periodic lattice of four sites:
//
//	0───1
//	│   │
//	3───2
//
// adjacency [[1,3],[0,2],[1,3],[0,2]], every edge color 0, and a cyclic
// translation group of four permutations.
package topograph
