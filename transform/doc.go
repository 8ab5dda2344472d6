// Package transform provides pure rigid-body transforms for 2-D point sets
// in the (R, Z) plane.
//
// What:
//
//   - Rotate: rotate a point set about an arbitrary pivot by an angle in
//     degrees measured from the z-axis.
//   - RotatePoint: single-point form of Rotate.
//   - Translate: shift a point set by a displacement vector.
//
// Why:
//
//   - Every parametric filament shape regenerates its point grid from a
//     centroid and a scalar orientation; one shared rotation convention
//     keeps centroid rotation and grid regeneration exactly consistent.
//   - Boundary-polygon construction reuses the same rotation for corner
//     offset vectors under nonzero orientation.
//
// Complexity:
//
//   - Rotate / Translate: O(n) time, O(n) memory for the returned slice.
//   - RotatePoint: O(1).
//
// All functions are pure: inputs are never mutated and results are freshly
// allocated.
package transform
