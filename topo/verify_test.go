package topo_test

import (
	"errors"
	"testing"

	"github.com/manybody/topograph/topo"
)

// square returns a 4-cycle 0-1-2-3-0 with per-edge colors.
func square(t *testing.T) topo.Graph {
	t.Helper()
	g, err := topo.NewCustom(
		[][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}},
		topo.WithEdgeColors(map[topo.EdgeKey]int{
			topo.NewEdgeKey(0, 1): 0,
			topo.NewEdgeKey(1, 2): 1,
			topo.NewEdgeKey(2, 3): 0,
			topo.NewEdgeKey(3, 0): 1,
		}),
	)
	if err != nil {
		t.Fatalf("square: %v", err)
	}
	return g
}

// TestVerifyAutomorphism_Accepts covers identity and a color-preserving
// rotation of the 2-colored square.
func TestVerifyAutomorphism_Accepts(t *testing.T) {
	g := square(t)
	if err := topo.VerifyAutomorphism(g, []int{0, 1, 2, 3}); err != nil {
		t.Errorf("identity rejected: %v", err)
	}
	// Rotating by two sites maps color-0 edges onto color-0 edges.
	if err := topo.VerifyAutomorphism(g, []int{2, 3, 0, 1}); err != nil {
		t.Errorf("rotation by 2 rejected: %v", err)
	}
}

// TestVerifyAutomorphism_Rejects covers adjacency-preserving permutations
// that shuffle colors, and malformed permutations.
func TestVerifyAutomorphism_Rejects(t *testing.T) {
	g := square(t)
	cases := []struct {
		name string
		perm []int
	}{
		// Rotation by one preserves the cycle but swaps the two colors.
		{"ColorSwap", []int{1, 2, 3, 0}},
		{"WrongLength", []int{0, 1, 2}},
		{"OutOfRange", []int{0, 1, 2, 4}},
		{"NotBijective", []int{0, 0, 2, 3}},
		// Transposing adjacent sites breaks the cycle.
		{"BreaksAdjacency", []int{1, 0, 2, 3}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := topo.VerifyAutomorphism(g, tc.perm); !errors.Is(err, topo.ErrBadSymmetry) {
				t.Errorf("VerifyAutomorphism(%v) = %v; want ErrBadSymmetry", tc.perm, err)
			}
		})
	}
}
