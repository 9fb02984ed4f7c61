// Package topo defines the topology contract shared by every graph
// generator, and CustomGraph, the generator that builds a topology from an
// explicit edge list.
//
// What:
//
//   - Graph — the read-only contract: SiteCount, AdjacencyList, EdgeColors,
//     SymmetryTable.
//   - EdgeKey — an unordered pair of site indices, the key of the color map.
//   - NewCustom — validated construction from an edge list, with optional
//     site count, edge colors, and symmetry table.
//
// Why:
//
//   - Many-body solvers only care about sites, couplings, and symmetries;
//     whether those came from a procedural lattice or a hand-written edge
//     list must be invisible past construction.
//   - Immutability after construction makes every query safe for concurrent
//     use without locks.
//
// Invariants (enforced at construction, relied upon everywhere):
//
//   - Site indices are contiguous 0..SiteCount-1.
//   - Adjacency is symmetric, self-loop-free, duplicate-free, and each
//     neighbor list is sorted ascending.
//   - Every edge carries exactly one color (default 0).
//   - The symmetry table contains at least the identity, and every entry is
//     a bijection preserving adjacency and edge colors.
//
// Errors:
//
//   - ErrSiteCount — non-positive site count.
//   - ErrSiteRange — an edge references a site outside [0, SiteCount).
//   - ErrSelfLoop — an edge joins a site to itself.
//   - ErrDuplicateEdge — the same unordered pair appears twice.
//   - ErrUnknownEdge — a color was assigned to an edge that does not exist.
//   - ErrBadSymmetry — a supplied permutation is not a color-preserving
//     automorphism.
package topo
