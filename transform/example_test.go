package transform_test

import (
	"fmt"

	"github.com/katalvlaran/axifield/transform"
)

// ExampleRotate rotates a unit point a quarter turn about the origin.
func ExampleRotate() {
	pts := [][2]float64{{1, 0}}
	out := transform.Rotate(pts, 90, 0, 0)
	fmt.Printf("(%.0f, %.0f)\n", out[0][0], out[0][1])

	// Output:
	// (0, 1)
}
