// Package catalog persists topologies and their derived data across
// simulation runs.
//
// Topology surveys enumerate many candidate geometries; the catalog dedupes
// them by canonical encoding and caches the expensive all-pairs distance
// matrices so repeated runs do not recompute them.
//
// What:
//
//   - Open — a Badger-backed store, on disk or fully in-memory when no path
//     is given. Read-only mode is supported for shared result sets.
//   - TryAdd — inserts a graph keyed by its canonical encoding; reports
//     whether it was new.
//   - Distances — the graph's all-pairs distance matrix, computed once and
//     persisted.
//   - NumGraphs / Len — per-site-count and total tallies, answered from an
//     ordered in-memory index rebuilt on Open.
//
// The canonical encoding covers site count, edge set, and edge colors —
// exactly the data that determines every distance and adjacency query. Two
// graphs that differ only in their symmetry tables encode identically.
//
// Errors:
//
//   - ErrBadParam — invalid Opts combination (read-only without a path).
//   - ErrReadOnly — a write attempted on a read-only catalog.
//   - ErrClosed — use after Close.
package catalog
