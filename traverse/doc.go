// Package traverse implements the read-only graph queries shared by every
// topology generator: breadth-first traversal, connectivity, bipartiteness,
// and unweighted shortest-path distances.
//
// Everything here is written once against the topo.Graph contract, so a
// procedural lattice and a hand-written edge list get identical behavior.
//
// What:
//
//   - BFS — depth-bounded breadth-first search from one site, visiting each
//     reachable site exactly once in non-decreasing depth order, with
//     optional hooks, edge-color filtering, and context cancellation.
//   - Walk — BFS restarted once per connected component, in site order,
//     visiting every site of the graph.
//   - IsConnected, IsBipartite — component and 2-coloring tests.
//   - Distances, AllDistances — hop counts from one root or from every root,
//     with Unreachable (-1) marking other components.
//
// Why:
//
//   - Simulation setup needs sublattice structure (bipartite check),
//     coordination analysis (distances), and symmetry-sector sanity checks
//     before any physics runs; all of them are plain BFS dressed up.
//
// Complexity:
//
//   - BFS / Walk / Distances / IsConnected / IsBipartite: O(V + E).
//   - AllDistances: O(V·(V + E)) by repeated single-source BFS; edges are
//     unweighted, so nothing heavier is warranted.
//
// Errors:
//
//   - ErrGraphNil — nil Graph passed in.
//   - ErrStartOutOfRange — start site outside [0, SiteCount).
//   - ErrOptionViolation — invalid Option value.
//   - Any error returned by an OnVisit hook aborts the search and is
//     propagated unchanged (wrapped with the offending site).
//
// Graphs are immutable, so concurrent traversals of the same Graph are safe.
package traverse
