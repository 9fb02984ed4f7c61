package traverse_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/manybody/topograph/topo"
	"github.com/manybody/topograph/traverse"
)

// TestIsConnected covers a triangle (connected) and two islands (not).
func TestIsConnected(t *testing.T) {
	triangle, err := topo.NewCustom([][2]int{{0, 1}, {1, 2}, {0, 2}})
	if err != nil {
		t.Fatal(err)
	}
	if !traverse.IsConnected(triangle) {
		t.Error("triangle: IsConnected = false; want true")
	}

	islands, err := topo.NewCustom([][2]int{{0, 1}, {2, 3}}, topo.WithSiteCount(5))
	if err != nil {
		t.Fatal(err)
	}
	if traverse.IsConnected(islands) {
		t.Error("islands: IsConnected = true; want false")
	}
}

// TestIsBipartite: odd cycles fail, even cycles and forests pass, and each
// component is judged independently.
func TestIsBipartite(t *testing.T) {
	cases := []struct {
		name  string
		edges [][2]int
		opts  []topo.Option
		want  bool
	}{
		{"Triangle", [][2]int{{0, 1}, {1, 2}, {0, 2}}, nil, false},
		{"Square", [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}}, nil, true},
		{"Path", [][2]int{{0, 1}, {1, 2}, {2, 3}}, nil, true},
		{"Edgeless", nil, []topo.Option{topo.WithSiteCount(3)}, true},
		{
			"GoodPlusOddComponent",
			[][2]int{{0, 1}, {2, 3}, {3, 4}, {2, 4}},
			nil,
			false,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := topo.NewCustom(tc.edges, tc.opts...)
			if err != nil {
				t.Fatal(err)
			}
			if got := traverse.IsBipartite(g); got != tc.want {
				t.Errorf("IsBipartite = %v; want %v", got, tc.want)
			}
		})
	}
}

// TestDistances covers reachable and unreachable sites and bad roots.
func TestDistances(t *testing.T) {
	g, err := topo.NewCustom([][2]int{{0, 1}, {2, 3}}, topo.WithSiteCount(5))
	if err != nil {
		t.Fatal(err)
	}
	d, err := traverse.Distances(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 1, -1, -1, -1}; !reflect.DeepEqual(d, want) {
		t.Errorf("Distances(0) = %v; want %v", d, want)
	}
	if _, err := traverse.Distances(g, 5); !errors.Is(err, traverse.ErrStartOutOfRange) {
		t.Errorf("Distances(5): want ErrStartOutOfRange, got %v", err)
	}
}

// TestAllDistances checks the undirected symmetry and zero-diagonal
// properties on a 4-cycle.
func TestAllDistances(t *testing.T) {
	g, err := topo.NewCustom([][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}})
	if err != nil {
		t.Fatal(err)
	}
	all := traverse.AllDistances(g)
	want := [][]int{
		{0, 1, 2, 1},
		{1, 0, 1, 2},
		{2, 1, 0, 1},
		{1, 2, 1, 0},
	}
	if !reflect.DeepEqual(all, want) {
		t.Fatalf("AllDistances = %v; want %v", all, want)
	}
	for i := range all {
		for j := range all {
			if all[i][j] != all[j][i] {
				t.Errorf("asymmetry at (%d,%d)", i, j)
			}
		}
		if all[i][i] != 0 {
			t.Errorf("diagonal (%d,%d) = %d; want 0", i, i, all[i][i])
		}
	}
}

// TestConnectedMatchesDistances cross-checks the invariant:
// IsConnected ⇔ Distances(0) has no Unreachable entry.
func TestConnectedMatchesDistances(t *testing.T) {
	graphs := []struct {
		name  string
		edges [][2]int
		opts  []topo.Option
	}{
		{"Connected", [][2]int{{0, 1}, {1, 2}}, nil},
		{"Split", [][2]int{{0, 1}}, []topo.Option{topo.WithSiteCount(3)}},
	}
	for _, tc := range graphs {
		t.Run(tc.name, func(t *testing.T) {
			g, err := topo.NewCustom(tc.edges, tc.opts...)
			if err != nil {
				t.Fatal(err)
			}
			d, err := traverse.Distances(g, 0)
			if err != nil {
				t.Fatal(err)
			}
			noSentinel := true
			for _, v := range d {
				if v == traverse.Unreachable {
					noSentinel = false
				}
			}
			if got := traverse.IsConnected(g); got != noSentinel {
				t.Errorf("IsConnected = %v but sentinel-free = %v", got, noSentinel)
			}
		})
	}
}
