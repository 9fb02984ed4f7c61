package hypercube_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/manybody/topograph/hypercube"
	"github.com/manybody/topograph/topo"
	"github.com/manybody/topograph/traverse"
)

//----------------------------------------------------------------------------//
// Construction errors
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that malformed dimensions and options are rejected.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		dim  int
		opts []hypercube.Option
		err  error
	}{
		{"ZeroDim", 0, []hypercube.Option{hypercube.WithLength(4)}, hypercube.ErrDimension},
		{"NegativeDim", -2, []hypercube.Option{hypercube.WithLength(4)}, hypercube.ErrDimension},
		{"NoLength", 2, nil, hypercube.ErrSideLength},
		{"ZeroLength", 1, []hypercube.Option{hypercube.WithLength(0)}, hypercube.ErrSideLength},
		{"ZeroInLengths", 2, []hypercube.Option{hypercube.WithLengths(4, 0)}, hypercube.ErrSideLength},
		{"LengthCountMismatch", 3, []hypercube.Option{hypercube.WithLengths(4, 4)}, hypercube.ErrSideLength},
		{"BoundaryCountMismatch", 3, []hypercube.Option{hypercube.WithLength(2), hypercube.WithPeriodic(true, false)}, hypercube.ErrBoundaryCount},
		{"EmptyPeriodic", 1, []hypercube.Option{hypercube.WithLength(2), hypercube.WithPeriodic()}, hypercube.ErrBoundaryCount},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := hypercube.New(tc.dim, tc.opts...); !errors.Is(err, tc.err) {
				t.Errorf("New(%d) error = %v; want %v", tc.dim, err, tc.err)
			}
		})
	}
}

//----------------------------------------------------------------------------//
// 1-D chains
//----------------------------------------------------------------------------//

// TestChainOpen: 4-site open chain.
func TestChainOpen(t *testing.T) {
	lat, err := hypercube.New(1, hypercube.WithLength(4), hypercube.WithPeriodic(false))
	if err != nil {
		t.Fatal(err)
	}
	if n := lat.SiteCount(); n != 4 {
		t.Errorf("SiteCount = %d; want 4", n)
	}
	wantAdj := [][]int{{1}, {0, 2}, {1, 3}, {2}}
	if adj := lat.AdjacencyList(); !reflect.DeepEqual(adj, wantAdj) {
		t.Errorf("AdjacencyList = %v; want %v", adj, wantAdj)
	}
	if !traverse.IsBipartite(lat) {
		t.Error("open chain should be bipartite")
	}
	d, err := traverse.Distances(lat, 0)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 1, 2, 3}; !reflect.DeepEqual(d, want) {
		t.Errorf("Distances(0) = %v; want %v", d, want)
	}
	// Fully open, no reflections: translations reduce to the identity.
	if sym := lat.SymmetryTable(); len(sym) != 1 {
		t.Errorf("SymmetryTable has %d entries; want identity alone", len(sym))
	}
}

// TestChainPeriodic: 4-site ring.
func TestChainPeriodic(t *testing.T) {
	lat, err := hypercube.New(1, hypercube.WithLength(4))
	if err != nil {
		t.Fatal(err)
	}
	wantAdj := [][]int{{1, 3}, {0, 2}, {1, 3}, {0, 2}}
	if adj := lat.AdjacencyList(); !reflect.DeepEqual(adj, wantAdj) {
		t.Errorf("AdjacencyList = %v; want %v", adj, wantAdj)
	}
	d, err := traverse.Distances(lat, 0)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 1, 2, 1}; !reflect.DeepEqual(d, want) {
		t.Errorf("Distances(0) = %v; want %v", d, want)
	}
	if !traverse.IsBipartite(lat) {
		t.Error("even ring should be bipartite")
	}
	sym := lat.SymmetryTable()
	if len(sym) != 4 {
		t.Fatalf("SymmetryTable has %d entries; want 4 cyclic translations", len(sym))
	}
	for _, perm := range sym {
		if err := topo.VerifyAutomorphism(lat, perm); err != nil {
			t.Errorf("translation %v rejected: %v", perm, err)
		}
	}
}

// TestOddRingNotBipartite: a 5-ring has an odd cycle.
func TestOddRingNotBipartite(t *testing.T) {
	lat, err := hypercube.New(1, hypercube.WithLength(5))
	if err != nil {
		t.Fatal(err)
	}
	if traverse.IsBipartite(lat) {
		t.Error("odd ring should not be bipartite")
	}
}

//----------------------------------------------------------------------------//
// Higher dimensions
//----------------------------------------------------------------------------//

// TestSquareLattice checks coordination, colors, and symmetry count on a
// periodic 3×3 square lattice.
func TestSquareLattice(t *testing.T) {
	lat, err := hypercube.New(2, hypercube.WithLength(3))
	if err != nil {
		t.Fatal(err)
	}
	if n := lat.SiteCount(); n != 9 {
		t.Fatalf("SiteCount = %d; want 9", n)
	}
	for site, nbrs := range lat.AdjacencyList() {
		if len(nbrs) != 4 {
			t.Errorf("site %d has %d neighbors; want 4", site, len(nbrs))
		}
	}
	// Colors must be exactly the two axes.
	axes := map[int]int{}
	for _, c := range lat.EdgeColors() {
		axes[c]++
	}
	if axes[0] != 9 || axes[1] != 9 {
		t.Errorf("edges per axis = %v; want 9 of color 0 and 9 of color 1", axes)
	}
	if sym := lat.SymmetryTable(); len(sym) != 9 {
		t.Errorf("SymmetryTable has %d entries; want 9 translations", len(sym))
	}
	if !traverse.IsConnected(lat) {
		t.Error("periodic square lattice should be connected")
	}
}

// TestMixedBoundaries: per-axis lengths and boundaries. Axis 0 periodic of
// length 4, axis 1 open of length 2.
func TestMixedBoundaries(t *testing.T) {
	lat, err := hypercube.New(2,
		hypercube.WithLengths(4, 2),
		hypercube.WithPeriodic(true, false),
	)
	if err != nil {
		t.Fatal(err)
	}
	if n := lat.SiteCount(); n != 8 {
		t.Fatalf("SiteCount = %d; want 8", n)
	}
	// Translations only along the periodic axis.
	if sym := lat.SymmetryTable(); len(sym) != 4 {
		t.Errorf("SymmetryTable has %d entries; want 4", len(sym))
	}
	// Site (0,0): wrap neighbor (3,0), right neighbor (1,0), up neighbor (0,1).
	wantNbrs := []int{1, 2, 6}
	if adj := lat.AdjacencyList(); !reflect.DeepEqual(adj[0], wantNbrs) {
		t.Errorf("neighbors of site 0 = %v; want %v", adj[0], wantNbrs)
	}
}

// TestLengthTwoPeriodicNoDuplicateEdges folds wrap edges into the existing
// nearest-neighbor pair.
func TestLengthTwoPeriodicNoDuplicateEdges(t *testing.T) {
	lat, err := hypercube.New(1, hypercube.WithLength(2))
	if err != nil {
		t.Fatal(err)
	}
	wantAdj := [][]int{{1}, {0}}
	if adj := lat.AdjacencyList(); !reflect.DeepEqual(adj, wantAdj) {
		t.Errorf("AdjacencyList = %v; want %v", adj, wantAdj)
	}
	if colors := lat.EdgeColors(); len(colors) != 1 {
		t.Errorf("EdgeColors has %d entries; want 1", len(colors))
	}
}

// TestLengthOneAxis contributes no edges along that axis.
func TestLengthOneAxis(t *testing.T) {
	lat, err := hypercube.New(2, hypercube.WithLengths(3, 1))
	if err != nil {
		t.Fatal(err)
	}
	if n := lat.SiteCount(); n != 3 {
		t.Fatalf("SiteCount = %d; want 3", n)
	}
	for _, c := range lat.EdgeColors() {
		if c != 0 {
			t.Errorf("unexpected edge color %d on a degenerate axis", c)
		}
	}
}

//----------------------------------------------------------------------------//
// Reflections
//----------------------------------------------------------------------------//

// TestReflections_OpenChain: with reflections a fully open chain gains the
// mirror automorphism.
func TestReflections_OpenChain(t *testing.T) {
	lat, err := hypercube.New(1,
		hypercube.WithLength(4),
		hypercube.WithPeriodic(false),
		hypercube.WithReflections(),
	)
	if err != nil {
		t.Fatal(err)
	}
	sym := lat.SymmetryTable()
	if len(sym) != 2 {
		t.Fatalf("SymmetryTable has %d entries; want identity + mirror", len(sym))
	}
	if want := []int{3, 2, 1, 0}; !reflect.DeepEqual(sym[1], want) {
		t.Errorf("mirror = %v; want %v", sym[1], want)
	}
}

// TestReflections_Deduplicated: reflecting a periodic length-2 axis is the
// same motion as translating it, and must not appear twice.
func TestReflections_Deduplicated(t *testing.T) {
	lat, err := hypercube.New(1, hypercube.WithLength(2), hypercube.WithReflections())
	if err != nil {
		t.Fatal(err)
	}
	sym := lat.SymmetryTable()
	seen := map[string]bool{}
	for _, perm := range sym {
		key := ""
		for _, p := range perm {
			key += string(rune('0' + p))
		}
		if seen[key] {
			t.Fatalf("duplicate permutation %v in %v", perm, sym)
		}
		seen[key] = true
	}
	if len(sym) != 2 {
		t.Errorf("SymmetryTable has %d entries; want 2", len(sym))
	}
}

//----------------------------------------------------------------------------//
// Coordinates
//----------------------------------------------------------------------------//

// TestCoordinateIndexRoundTrip covers lexicographic enumeration.
func TestCoordinateIndexRoundTrip(t *testing.T) {
	lat, err := hypercube.New(3, hypercube.WithLengths(2, 3, 4))
	if err != nil {
		t.Fatal(err)
	}
	for site := 0; site < lat.SiteCount(); site++ {
		coords := lat.Coordinate(site)
		back, err := lat.Index(coords)
		if err != nil {
			t.Fatalf("Index(%v): %v", coords, err)
		}
		if back != site {
			t.Errorf("round trip %d → %v → %d", site, coords, back)
		}
	}
	// Lexicographic: site 0 is the origin, site 1 bumps the last axis.
	if got := lat.Coordinate(0); !reflect.DeepEqual(got, []int{0, 0, 0}) {
		t.Errorf("Coordinate(0) = %v; want origin", got)
	}
	if got := lat.Coordinate(1); !reflect.DeepEqual(got, []int{0, 0, 1}) {
		t.Errorf("Coordinate(1) = %v; want [0 0 1]", got)
	}
	if _, err := lat.Index([]int{0, 0}); !errors.Is(err, hypercube.ErrSideLength) {
		t.Errorf("short tuple: want ErrSideLength, got %v", err)
	}
	if _, err := lat.Index([]int{0, 0, 9}); !errors.Is(err, hypercube.ErrSideLength) {
		t.Errorf("out-of-range coordinate: want ErrSideLength, got %v", err)
	}
}
