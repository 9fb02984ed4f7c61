package traverse

import (
	"fmt"

	"github.com/manybody/topograph/topo"
)

// queueItem pairs a site with its BFS depth.
type queueItem struct {
	site  int
	depth int
}

// walker encapsulates mutable traversal state over one immutable graph.
type walker struct {
	adjacency [][]int
	colors    topo.ColorMap // fetched only when a color filter is active
	opts      Options
	queue     []queueItem
	res       *Result
}

// BFS runs breadth-first search on g starting from start, applying any
// number of functional Options. Sites are visited exactly once each, in
// non-decreasing depth order with ties broken by adjacency-list order.
//
// Returns ErrGraphNil or ErrStartOutOfRange for invalid input,
// ErrOptionViolation for bad options, or any error returned by an OnVisit
// hook. Complexity: O(V + E).
func BFS(g topo.Graph, start int, opts ...Option) (*Result, error) {
	w, err := newWalker(g, opts)
	if err != nil {
		return nil, err
	}
	if start < 0 || start >= len(w.adjacency) {
		return nil, fmt.Errorf("%w: %d with %d sites", ErrStartOutOfRange, start, len(w.adjacency))
	}
	w.enqueue(start, 0)
	return w.res, w.loop()
}

// Walk runs BFS once per connected component, choosing each new root as the
// lowest-indexed unvisited site, so every site of g is visited exactly once.
// Depths are relative to the component's root. Complexity: O(V + E).
func Walk(g topo.Graph, opts ...Option) (*Result, error) {
	w, err := newWalker(g, opts)
	if err != nil {
		return nil, err
	}
	for root := range w.adjacency {
		if w.res.Depth[root] != Unreachable {
			continue
		}
		w.enqueue(root, 0)
		if err := w.loop(); err != nil {
			return nil, err
		}
	}
	return w.res, nil
}

// newWalker validates inputs, resolves options, and snapshots the adjacency.
func newWalker(g topo.Graph, opts []Option) (*walker, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	adj := g.AdjacencyList()
	n := len(adj)
	w := &walker{
		adjacency: adj,
		opts:      o,
		queue:     make([]queueItem, 0, n),
		res: &Result{
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for i := 0; i < n; i++ {
		w.res.Depth[i] = Unreachable
		w.res.Parent[i] = -1
	}
	if o.colorSet != nil {
		w.colors = g.EdgeColors()
	}
	return w, nil
}

// enqueue marks site discovered at depth d, fires OnEnqueue, and queues it.
func (w *walker) enqueue(site, d int) {
	w.res.Depth[site] = d
	w.opts.OnEnqueue(site, d)
	w.queue = append(w.queue, queueItem{site: site, depth: d})
}

// loop drains the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per site)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// dequeue pops the head item and fires OnDequeue.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.site, item.depth)
	return item
}

// visit records the site in Order and fires OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.site)
	if err := w.opts.OnVisit(item.site, item.depth); err != nil {
		return fmt.Errorf("traverse: OnVisit error at site %d: %w", item.site, err)
	}
	return nil
}

// enqueueNeighbors applies filters and MaxDepth, then queues each
// undiscovered neighbor in adjacency-list order.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.adjacency[item.site] {
		if !w.opts.FilterNeighbor(item.site, nbr) {
			continue
		}
		if w.colors != nil {
			c := w.colors[topo.NewEdgeKey(item.site, nbr)]
			if _, ok := w.opts.colorSet[c]; !ok {
				continue
			}
		}
		if w.res.Depth[nbr] == Unreachable {
			w.res.Parent[nbr] = item.site
			w.enqueue(nbr, nextDepth)
		}
	}
}
