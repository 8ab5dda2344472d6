package filament

import "github.com/katalvlaran/axifield/transform"

// ArbitraryPoints is a set of explicitly positioned filaments in the (R, Z)
// plane with no parametric structure: the point array is stored directly
// rather than derived. It has no boundary polygon.
type ArbitraryPoints struct {
	base

	pts   [][2]float64
	angle float64 // accumulated rotation, bookkeeping only
}

var _ CurrentFilamentSet = (*ArbitraryPoints)(nil)

// NewArbitraryPoints constructs a point-cloud filament set from an Nx2
// coordinate array. The input is deep-copied to prevent external mutation.
// Returns ErrNoFilaments for an empty array and ErrWeightCount if supplied
// weights do not match the point count.
// Complexity: O(n).
func NewArbitraryPoints(rzPts [][2]float64, opts ArbitraryPointsOptions) (*ArbitraryPoints, error) {
	if len(rzPts) == 0 {
		return nil, ErrNoFilaments
	}
	a := &ArbitraryPoints{
		pts: append([][2]float64(nil), rzPts...),
	}
	if err := a.initBase(a, opts.Current, opts.Weights, opts.Style); err != nil {
		return nil, err
	}

	return a, nil
}

// NPts returns the number of stored points.
func (a *ArbitraryPoints) NPts() int { return len(a.pts) }

// RZPts returns a copy of the stored (R, Z) positions.
func (a *ArbitraryPoints) RZPts() [][2]float64 {
	return append([][2]float64(nil), a.pts...)
}

// Angle returns the accumulated rotation in degrees. Bookkeeping only: the
// stored points already include every applied rotation.
func (a *ArbitraryPoints) Angle() float64 { return a.angle }

// Patch returns nil: a bare point cloud has no physical outline.
func (a *ArbitraryPoints) Patch() *Patch { return nil }

// Translate adds (dR, dZ) to every stored point and marks the set stale.
// Complexity: O(n).
func (a *ArbitraryPoints) Translate(dR, dZ float64) {
	a.pts = transform.Translate(a.pts, dR, dZ)
	a.invalidate()
}

// Rotate rotates the stored points by angleDeg degrees about the pivot,
// accumulates the angle for bookkeeping, and marks the set stale.
// Complexity: O(n).
func (a *ArbitraryPoints) Rotate(angleDeg, pivotR, pivotZ float64) {
	a.angle += angleDeg
	a.pts = transform.Rotate(a.pts, angleDeg, pivotR, pivotZ)
	a.invalidate()
}
