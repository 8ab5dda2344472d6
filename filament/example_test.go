package filament_test

import (
	"fmt"

	"github.com/katalvlaran/axifield/filament"
)

////////////////////////////////////////////////////////////////////////////////
// Example: RectangularCoil
////////////////////////////////////////////////////////////////////////////////

// ExampleNewRectangularCoil builds a 2×2 filament coil carrying 1 kA and
// reports its aggregate quantities.
// Scenario:
//
//   - Centroid (1.0, 0.0) m, spacings 0.1 m, zero orientation
//   - Default all-ones weights, so total current = 4 × 1 kA
//
// Complexity: O(nr·nz)
func ExampleNewRectangularCoil() {
	opts := filament.DefaultRectangularCoilOptions()
	opts.NR, opts.NZ = 2, 2
	opts.Current = 1000

	coil, _ := filament.NewRectangularCoil(1.0, 0.0, opts)

	fmt.Println("filaments:", coil.NPts())
	fmt.Printf("area: %.2f m^2\n", coil.Area())
	fmt.Printf("total current: %.0f A\n", coil.TotalCurrent())

	// Output:
	// filaments: 4
	// area: 0.04 m^2
	// total current: 4000 A
}

////////////////////////////////////////////////////////////////////////////////
// Example: MagnetRing
////////////////////////////////////////////////////////////////////////////////

// ExampleNewMagnetRing shows the anti-parallel sheet defaults of a dipole
// magnet ring: opposing bound surface currents sum to a net of zero no
// matter the shared current.
func ExampleNewMagnetRing() {
	opts := filament.DefaultMagnetRingOptions()
	opts.Width, opts.Height = 0.02, 0.08

	ring, _ := filament.NewMagnetRing(1.0, 0.0, opts)
	ring.SetCurrent(2500)

	fmt.Println("filaments:", ring.NPts())
	fmt.Printf("total current: %.0f A\n", ring.TotalCurrent())

	// Output:
	// filaments: 16
	// total current: 0 A
}

////////////////////////////////////////////////////////////////////////////////
// Example: staleness protocol
////////////////////////////////////////////////////////////////////////////////

// ExampleCurrentFilamentSet_Stale walks the invalidation contract a field
// solver relies on: geometry mutations flag the set, current changes do
// not.
func ExampleCurrentFilamentSet_Stale() {
	coil, _ := filament.NewRectangularCoil(1.0, 0.0, filament.DefaultRectangularCoilOptions())

	fmt.Println("fresh construction stale:", coil.Stale())
	coil.ClearStale() // a solver computed its coefficients

	coil.SetCurrent(500)
	fmt.Println("after SetCurrent stale:", coil.Stale())

	coil.Translate(0.0, 0.25)
	fmt.Println("after Translate stale:", coil.Stale())

	// Output:
	// fresh construction stale: true
	// after SetCurrent stale: false
	// after Translate stale: true
}
