package transform

import "math"

// Rotate returns a copy of pts rotated by angleDeg degrees about the pivot
// (pivotR, pivotZ). The angle is measured from the z-axis and converted to
// radians internally; the standard 2-D rotation matrix is applied to each
// point relative to the pivot.
// The input slice is never modified.
// Complexity: O(n) time, O(n) memory.
func Rotate(pts [][2]float64, angleDeg, pivotR, pivotZ float64) [][2]float64 {
	theta := angleDeg * math.Pi / 180
	c, s := math.Cos(theta), math.Sin(theta)

	out := make([][2]float64, len(pts))
	for i, p := range pts {
		dr, dz := p[0]-pivotR, p[1]-pivotZ
		out[i][0] = pivotR + c*dr - s*dz
		out[i][1] = pivotZ + s*dr + c*dz
	}

	return out
}

// RotatePoint rotates the single point (r, z) by angleDeg degrees about the
// pivot (pivotR, pivotZ) and returns the rotated coordinates.
// Complexity: O(1).
func RotatePoint(r, z, angleDeg, pivotR, pivotZ float64) (float64, float64) {
	theta := angleDeg * math.Pi / 180
	c, s := math.Cos(theta), math.Sin(theta)
	dr, dz := r-pivotR, z-pivotZ

	return pivotR + c*dr - s*dz, pivotZ + s*dr + c*dz
}

// Translate returns a copy of pts shifted by the displacement (dR, dZ).
// The input slice is never modified.
// Complexity: O(n) time, O(n) memory.
func Translate(pts [][2]float64, dR, dZ float64) [][2]float64 {
	out := make([][2]float64, len(pts))
	for i, p := range pts {
		out[i][0] = p[0] + dR
		out[i][1] = p[1] + dZ
	}

	return out
}
