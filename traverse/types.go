// Package traverse provides tunable options and error definitions for
// breadth-first queries over a topo.Graph.
package traverse

import (
	"context"
	"errors"
	"fmt"
)

// Unreachable marks a site in a different connected component in Depth and
// distance slices.
const Unreachable = -1

// Sentinel errors for traversal execution.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("traverse: graph is nil")

	// ErrStartOutOfRange is returned when the start site is not a valid index.
	ErrStartOutOfRange = errors.New("traverse: start site out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("traverse: invalid option supplied")
)

// Option configures traversal behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded internally
// and surfaced as ErrOptionViolation when the traversal is invoked.
type Option func(*Options)

// Options holds parameters and callbacks customizing a traversal.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a site is first discovered, before visiting.
	OnEnqueue func(site, depth int)

	// OnDequeue is called immediately before visiting a site.
	OnDequeue func(site, depth int)

	// OnVisit is called when visiting a site. If it returns an error, the
	// traversal aborts and propagates that error to the caller.
	OnVisit func(site, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this many hops from the
	// start. 0 disables the limit (the search is already bounded by the
	// site count).
	MaxDepth int

	// FilterNeighbor can skip edges by returning false.
	// Called for each edge curr→neighbor.
	FilterNeighbor func(curr, neighbor int) bool

	// colorSet, when non-nil, restricts traversal to edges whose color is
	// present. Set via WithEdgeColorFilter.
	colorSet map[int]struct{}

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults: background context, no
// depth limit, no filtering, no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnEnqueue:      func(int, int) {},
		OnDequeue:      func(int, int) {},
		OnVisit:        func(int, int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(_, _ int) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run when a site is discovered.
func WithOnEnqueue(fn func(site, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(site, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers the visitor callback; returning an error from it
// aborts the traversal and the error propagates to the caller unchanged.
func WithOnVisit(fn func(site, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth bounds the search at the given hop count (inclusive).
//
//	d > 0: visit sites at most d hops from the start
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			// explicit "no limit"
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterNeighbor skips the edge curr→neighbor when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor int) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// WithEdgeColorFilter restricts the traversal to edges of the given coupling
// classes, e.g. walking a single lattice axis. An empty list is an invalid
// option.
func WithEdgeColorFilter(colors ...int) Option {
	return func(o *Options) {
		if len(colors) == 0 {
			o.err = fmt.Errorf("%w: WithEdgeColorFilter needs at least one color", ErrOptionViolation)
			return
		}
		o.colorSet = make(map[int]struct{}, len(colors))
		for _, c := range colors {
			o.colorSet[c] = struct{}{}
		}
	}
}

// Result holds the outcome of a traversal:
//   - Order: sites in visit sequence.
//   - Depth: hop count from the (component) start per site, Unreachable for
//     sites the traversal never reached.
//   - Parent: predecessor in the BFS forest, -1 for roots and unreached sites.
type Result struct {
	Order  []int
	Depth  []int
	Parent []int
}

// Reached reports whether the traversal visited site.
func (r *Result) Reached(site int) bool {
	return site >= 0 && site < len(r.Depth) && r.Depth[site] != Unreachable
}

// PathTo reconstructs the path from the site's BFS root to dest.
// Returns an error if dest was not reached.
func (r *Result) PathTo(dest int) ([]int, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("traverse: no path to site %d", dest)
	}
	var path []int
	for cur := dest; cur != -1; cur = r.Parent[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}
