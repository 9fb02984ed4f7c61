package hypercube

import (
	"fmt"

	"github.com/manybody/topograph/topo"
)

// Lattice is a d-dimensional hyper-rectangular lattice. It satisfies
// topo.Graph through the embedded, fully validated graph, and adds
// coordinate bookkeeping on top. Immutable once constructed.
type Lattice struct {
	topo.Graph

	lengths  []int
	periodic []bool
	strides  []int // stride per axis; the last axis varies fastest
}

// New constructs the lattice for the given dimension. A side length is
// required (WithLength or WithLengths); boundaries default to periodic on
// every axis.
//
// Site i corresponds to the i-th coordinate tuple in lexicographic order.
// Neighbor lists come out sorted ascending, and edge color equals the axis
// of the connecting dimension.
func New(dim int, opts ...Option) (*Lattice, error) {
	if dim < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrDimension, dim)
	}
	o := latticeOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	lengths, err := resolveLengths(dim, &o)
	if err != nil {
		return nil, err
	}
	periodic, err := resolvePeriodic(dim, &o)
	if err != nil {
		return nil, err
	}

	lat := &Lattice{
		lengths:  lengths,
		periodic: periodic,
		strides:  make([]int, dim),
	}
	n := 1
	for k := dim - 1; k >= 0; k-- {
		lat.strides[k] = n
		n *= lengths[k]
	}

	edges, colors := lat.buildEdges(n)
	perms := lat.buildSymmetries(n, o.reflections)

	g, err := topo.NewCustom(edges,
		topo.WithSiteCount(n),
		topo.WithEdgeColors(colors),
		topo.WithSymmetries(perms),
	)
	if err != nil {
		// Generation and validation disagree; nothing the caller can fix.
		return nil, fmt.Errorf("hypercube: internal construction error: %w", err)
	}
	lat.Graph = g
	return lat, nil
}

// resolveLengths expands uniform or per-axis side lengths against dim.
func resolveLengths(dim int, o *latticeOptions) ([]int, error) {
	switch {
	case o.lengths != nil:
		if len(o.lengths) != dim {
			return nil, fmt.Errorf("%w: %d lengths for %d axes", ErrSideLength, len(o.lengths), dim)
		}
		return append([]int(nil), o.lengths...), nil
	case o.uniform > 0:
		lengths := make([]int, dim)
		for k := range lengths {
			lengths[k] = o.uniform
		}
		return lengths, nil
	default:
		return nil, fmt.Errorf("%w: no side length specified (use WithLength or WithLengths)", ErrSideLength)
	}
}

// resolvePeriodic expands boundary flags against dim; default is periodic
// everywhere.
func resolvePeriodic(dim int, o *latticeOptions) ([]bool, error) {
	switch len(o.periodic) {
	case 0:
		periodic := make([]bool, dim)
		for k := range periodic {
			periodic[k] = true
		}
		return periodic, nil
	case 1:
		periodic := make([]bool, dim)
		for k := range periodic {
			periodic[k] = o.periodic[0]
		}
		return periodic, nil
	case dim:
		return append([]bool(nil), o.periodic...), nil
	default:
		return nil, fmt.Errorf("%w: %d flags for %d axes", ErrBoundaryCount, len(o.periodic), dim)
	}
}

// Dim returns the number of lattice dimensions. Complexity: O(1).
func (lat *Lattice) Dim() int { return len(lat.lengths) }

// Lengths returns a copy of the per-axis side lengths.
func (lat *Lattice) Lengths() []int { return append([]int(nil), lat.lengths...) }

// Periodic returns a copy of the per-axis boundary flags.
func (lat *Lattice) Periodic() []bool { return append([]bool(nil), lat.periodic...) }

// Coordinate converts a site index back to its coordinate tuple.
// Complexity: O(d).
func (lat *Lattice) Coordinate(site int) []int {
	coords := make([]int, len(lat.lengths))
	for k, s := range lat.strides {
		coords[k] = (site / s) % lat.lengths[k]
	}
	return coords
}

// Index maps a coordinate tuple to its site index. Returns ErrSideLength if
// the tuple has the wrong arity or a coordinate is out of range.
// Complexity: O(d).
func (lat *Lattice) Index(coords []int) (int, error) {
	if len(coords) != len(lat.lengths) {
		return 0, fmt.Errorf("%w: %d coordinates for %d axes", ErrSideLength, len(coords), len(lat.lengths))
	}
	site := 0
	for k, c := range coords {
		if c < 0 || c >= lat.lengths[k] {
			return 0, fmt.Errorf("%w: coordinate %d on axis %d (length %d)", ErrSideLength, c, k, lat.lengths[k])
		}
		site += c * lat.strides[k]
	}
	return site, nil
}

// buildEdges enumerates axis-aligned nearest-neighbor pairs, colored by
// axis. Only the +1 direction is generated per site; periodic wrap edges
// that would duplicate an existing pair (length-2 axes) are folded, and
// length-1 axes contribute nothing.
func (lat *Lattice) buildEdges(n int) ([][2]int, map[topo.EdgeKey]int) {
	var edges [][2]int
	colors := make(map[topo.EdgeKey]int)
	for site := 0; site < n; site++ {
		coords := lat.Coordinate(site)
		for k, l := range lat.lengths {
			if l == 1 {
				continue
			}
			c := coords[k]
			var nbr int
			switch {
			case c+1 < l:
				nbr = site + lat.strides[k]
			case lat.periodic[k]:
				nbr = site - c*lat.strides[k] // wrap to coordinate 0
			default:
				continue // open boundary
			}
			key := topo.NewEdgeKey(site, nbr)
			if _, dup := colors[key]; dup {
				continue
			}
			colors[key] = k
			edges = append(edges, [2]int{key.U, key.V})
		}
	}
	return edges, colors
}

// buildSymmetries enumerates the boundary-preserving rigid motions: the
// cartesian product of per-axis translations (0..L-1 on periodic axes, only
// 0 on open ones), optionally composed with per-axis reflections. The
// identity always comes first. Coinciding motions (a reflection of a
// periodic length-2 axis is also a translation) are emitted once.
func (lat *Lattice) buildSymmetries(n int, reflections bool) [][]int {
	dim := len(lat.lengths)

	// Axes eligible for reflection: length 1 reflects onto itself.
	var reflectable []int
	if reflections {
		for k, l := range lat.lengths {
			if l > 1 {
				reflectable = append(reflectable, k)
			}
		}
	}

	var perms [][]int
	seen := make(map[string]struct{})
	shift := make([]int, dim)
	mirror := make([]bool, dim)

	var sweepAxes func(k int)
	apply := func() {
		perm := make([]int, n)
		enc := make([]byte, 0, 4*n)
		for site := 0; site < n; site++ {
			coords := lat.Coordinate(site)
			for k, l := range lat.lengths {
				c := coords[k]
				if mirror[k] {
					c = l - 1 - c
				}
				coords[k] = (c + shift[k]) % l
			}
			img, _ := lat.Index(coords)
			perm[site] = img
			enc = append(enc, byte(img), byte(img>>8), byte(img>>16), byte(img>>24))
		}
		if _, dup := seen[string(enc)]; dup {
			return
		}
		seen[string(enc)] = struct{}{}
		perms = append(perms, perm)
	}
	sweepAxes = func(k int) {
		if k == dim {
			apply()
			return
		}
		limit := 1
		if lat.periodic[k] {
			limit = lat.lengths[k]
		}
		for s := 0; s < limit; s++ {
			shift[k] = s
			sweepAxes(k + 1)
		}
		shift[k] = 0
	}

	var sweepMirrors func(i int)
	sweepMirrors = func(i int) {
		if i == len(reflectable) {
			sweepAxes(0)
			return
		}
		axis := reflectable[i]
		mirror[axis] = false
		sweepMirrors(i + 1)
		mirror[axis] = true
		sweepMirrors(i + 1)
		mirror[axis] = false
	}
	sweepMirrors(0)

	return perms
}
