package traverse

import (
	"fmt"

	"github.com/manybody/topograph/topo"
)

// The queries below are total over any constructed topo.Graph: generators
// validate at construction time, so there is nothing left to fail here.

// IsConnected reports whether a single BFS from site 0 reaches every site.
// Complexity: O(V + E).
func IsConnected(g topo.Graph) bool {
	adj := g.AdjacencyList()
	reached := bfsDepths(adj, 0)
	for _, d := range reached {
		if d == Unreachable {
			return false
		}
	}
	return true
}

// IsBipartite reports whether g admits a proper 2-coloring, i.e. no edge
// joins two same-colored sites. Each connected component is 2-colored by
// BFS independently; the first conflict ends the scan. Complexity: O(V + E).
func IsBipartite(g topo.Graph) bool {
	adj := g.AdjacencyList()
	side := make([]int8, len(adj)) // 0 = unassigned, ±1 = the two sublattices
	var queue []int
	for root := range adj {
		if side[root] != 0 {
			continue
		}
		side[root] = 1
		queue = append(queue[:0], root)
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, nbr := range adj[cur] {
				if side[nbr] == side[cur] {
					return false
				}
				if side[nbr] == 0 {
					side[nbr] = -side[cur]
					queue = append(queue, nbr)
				}
			}
		}
	}
	return true
}

// Distances returns the hop count from root to every site, Unreachable for
// sites in a different component. Returns ErrStartOutOfRange for an invalid
// root. Complexity: O(V + E).
func Distances(g topo.Graph, root int) ([]int, error) {
	adj := g.AdjacencyList()
	if root < 0 || root >= len(adj) {
		return nil, fmt.Errorf("%w: %d with %d sites", ErrStartOutOfRange, root, len(adj))
	}
	return bfsDepths(adj, root), nil
}

// AllDistances returns Distances(i) for every site i — the all-pairs
// shortest-path matrix by repeated single-source BFS. Edges are unweighted,
// so this beats Floyd–Warshall at O(V·(V+E)).
func AllDistances(g topo.Graph) [][]int {
	adj := g.AdjacencyList()
	out := make([][]int, len(adj))
	for i := range adj {
		out[i] = bfsDepths(adj, i)
	}
	return out
}

// bfsDepths is the bare distance sweep shared by the queries above: no
// hooks, no filters, no allocation beyond the result and the queue.
func bfsDepths(adj [][]int, root int) []int {
	depth := make([]int, len(adj))
	for i := range depth {
		depth[i] = Unreachable
	}
	depth[root] = 0
	queue := make([]int, 0, len(adj))
	queue = append(queue, root)
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, nbr := range adj[cur] {
			if depth[nbr] == Unreachable {
				depth[nbr] = depth[cur] + 1
				queue = append(queue, nbr)
			}
		}
	}
	return depth
}
