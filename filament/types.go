package filament

import (
	"errors"
	"image/color"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Sentinel errors for filament-set operations.
var (
	// ErrNotImplemented indicates a declared-but-unimplemented operation
	// (Simplify, Clone). Callers must not rely on these succeeding.
	ErrNotImplemented = errors.New("filament: operation not implemented")

	// ErrWeightCount indicates a weights slice whose length does not match
	// the filament count.
	ErrWeightCount = errors.New("filament: weights length must equal filament count")

	// ErrNoFilaments indicates an empty point set where at least one
	// filament is required.
	ErrNoFilaments = errors.New("filament: at least one filament required")

	// ErrGridCount indicates a rectangular grid count below 1.
	ErrGridCount = errors.New("filament: grid counts nr and nz must be at least 1")

	// ErrSpacing indicates a non-positive filament spacing.
	ErrSpacing = errors.New("filament: filament spacing must be positive")

	// ErrDimension indicates a non-positive magnet width or height.
	ErrDimension = errors.New("filament: magnet width and height must be positive")
)

// atol is the fixed absolute tolerance used for angle ≈ 0 checks during
// point generation and for suppressing markers of near-zero filament
// currents. Compared with zero relative tolerance.
const atol = 1e-12

// PathCode is a segment command in a boundary-polygon description.
type PathCode uint8

const (
	// MoveTo starts the polygon at the first vertex.
	MoveTo PathCode = iota
	// LineTo draws a straight segment to the next vertex.
	LineTo
	// ClosePoly closes the polygon back to the first vertex.
	ClosePoly
)

// rectCodes is the segment-command sequence shared by all four-cornered
// boundary polygons: move to the first corner, line to the remaining three,
// close.
var rectCodes = []PathCode{MoveTo, LineTo, LineTo, LineTo, ClosePoly}

// PatchStyle carries pass-through styling for a boundary polygon. The core
// performs no validation on it; the rendering layer consumes it as-is.
type PatchStyle struct {
	// LineStyle styles the polygon outline.
	LineStyle draw.LineStyle
	// FillColor fills the polygon interior; nil leaves it unfilled.
	FillColor color.Color
}

// DefaultPatchStyle returns a PatchStyle with a 1pt black outline and no
// fill.
func DefaultPatchStyle() PatchStyle {
	return PatchStyle{
		LineStyle: draw.LineStyle{
			Color: color.Black,
			Width: vg.Points(1),
		},
	}
}

// Patch is a closed planar polygon approximating a shape's physical
// outline, described as an ordered vertex sequence with segment commands.
// It is used for rendering and visual verification only.
type Patch struct {
	// Verts lists the polygon vertices in draw order; the first vertex is
	// repeated last to close the outline.
	Verts [][2]float64
	// Codes holds one segment command per vertex.
	Codes []PathCode
	// Style is the pass-through styling for the rendering layer.
	Style PatchStyle
}

// ArbitraryPointsOptions configures NewArbitraryPoints.
type ArbitraryPointsOptions struct {
	// Current is the shared current magnitude in amps.
	Current float64
	// Weights are per-filament multipliers; nil defaults to all ones.
	// Must match the point count when supplied.
	Weights []float64
	// Style is the boundary-polygon styling (unused by this shape, which
	// has no boundary polygon, but kept for interface uniformity).
	Style PatchStyle
}

// DefaultArbitraryPointsOptions returns options with Current=1, default
// weights and default styling.
func DefaultArbitraryPointsOptions() ArbitraryPointsOptions {
	return ArbitraryPointsOptions{Current: 1, Style: DefaultPatchStyle()}
}

// RectangularCoilOptions configures NewRectangularCoil.
type RectangularCoilOptions struct {
	// NR, NZ are filament grid counts in R and Z; both must be ≥ 1.
	NR, NZ int
	// DR, DZ are filament spacings in meters; both must be > 0.
	DR, DZ float64
	// Angle is the coil orientation in degrees measured from the z-axis.
	Angle float64
	// Current is the shared current magnitude in amps.
	Current float64
	// Weights are per-filament multipliers; nil defaults to all ones.
	// Must have length NR*NZ when supplied.
	Weights []float64
	// Style is the boundary-polygon styling.
	Style PatchStyle
}

// DefaultRectangularCoilOptions returns options with a single filament
// (NR=NZ=1), 0.1 m spacings, zero orientation, Current=1, default weights
// and default styling.
func DefaultRectangularCoilOptions() RectangularCoilOptions {
	return RectangularCoilOptions{
		NR:      1,
		NZ:      1,
		DR:      0.1,
		DZ:      0.1,
		Current: 1,
		Style:   DefaultPatchStyle(),
	}
}

// MagnetRingOptions configures NewMagnetRing.
type MagnetRingOptions struct {
	// Width, Height are the physical magnet cross-section dimensions in
	// meters; both must be > 0.
	Width, Height float64
	// MuHat is the magnetic-moment angle in degrees from the z-axis.
	MuHat float64
	// Current is the shared current magnitude in amps.
	Current float64
	// Weights are per-filament multipliers; nil defaults to −1 for the
	// first sheet and +1 for the second. Must have length 16 when supplied.
	Weights []float64
	// Style is the boundary-polygon styling.
	Style PatchStyle
}

// DefaultMagnetRingOptions returns options with a 0.01 m × 0.01 m
// cross-section, moment along +z, Current=1, the anti-parallel sheet
// default weights and default styling.
func DefaultMagnetRingOptions() MagnetRingOptions {
	return MagnetRingOptions{
		Width:   0.01,
		Height:  0.01,
		Current: 1,
		Style:   DefaultPatchStyle(),
	}
}
