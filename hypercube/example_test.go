package hypercube_test

import (
	"fmt"

	"github.com/manybody/topograph/hypercube"
)

// ExampleNew builds a periodic 4×4 square lattice and reports its shape.
func ExampleNew() {
	lat, err := hypercube.New(2, hypercube.WithLength(4))
	if err != nil {
		fmt.Println("construction failed:", err)
		return
	}
	fmt.Println("sites:", lat.SiteCount())
	fmt.Println("edges:", len(lat.EdgeColors()))
	fmt.Println("translations:", len(lat.SymmetryTable()))
	fmt.Println("site 5 sits at:", lat.Coordinate(5))
	// Output:
	// sites: 16
	// edges: 32
	// translations: 16
	// site 5 sits at: [1 1]
}
