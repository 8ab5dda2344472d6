package filament_test

import (
	"testing"

	"github.com/katalvlaran/axifield/filament"
)

// BenchmarkRectangularCoil_RZPts measures point-grid regeneration for a
// 100×100 filament coil under nonzero orientation (the rotated path).
// Complexity: O(nr·nz)
func BenchmarkRectangularCoil_RZPts(b *testing.B) {
	opts := filament.DefaultRectangularCoilOptions()
	opts.NR, opts.NZ = 100, 100
	opts.DR, opts.DZ = 0.01, 0.01
	opts.Angle = 30
	coil, err := filament.NewRectangularCoil(1, 0, opts)
	if err != nil {
		b.Fatalf("setup NewRectangularCoil failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = coil.RZPts()
	}
}

// BenchmarkRectangularCoil_RZW measures full (R, Z, W) matrix assembly for
// the same 100×100 coil.
func BenchmarkRectangularCoil_RZW(b *testing.B) {
	opts := filament.DefaultRectangularCoilOptions()
	opts.NR, opts.NZ = 100, 100
	opts.DR, opts.DZ = 0.01, 0.01
	coil, err := filament.NewRectangularCoil(1, 0, opts)
	if err != nil {
		b.Fatalf("setup NewRectangularCoil failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = coil.RZW()
	}
}

// BenchmarkMagnetRing_RZPts measures sheet regeneration under a rotated
// moment angle.
func BenchmarkMagnetRing_RZPts(b *testing.B) {
	opts := filament.DefaultMagnetRingOptions()
	opts.MuHat = 45
	ring, err := filament.NewMagnetRing(1, 0, opts)
	if err != nil {
		b.Fatalf("setup NewMagnetRing failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ring.RZPts()
	}
}
