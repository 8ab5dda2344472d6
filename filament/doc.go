// Package filament models axisymmetric current-carrying geometries as
// weighted sets of point current filaments in the cylindrical (R, Z) plane.
//
// What:
//
//   - CurrentFilamentSet: the polymorphic contract every shape satisfies —
//     filament count, (R, Z) positions, boundary polygon, rigid translate
//     and rotate, shared current/weights bookkeeping.
//   - ArbitraryPoints: a bare point cloud with no parametric structure.
//   - RectangularCoil: an nr×nz filament grid centered on a centroid,
//     rotated by a stored orientation angle.
//   - MagnetRing: a permanent-dipole magnet cross-section modeled as two
//     anti-parallel 8-filament current sheets.
//   - Draw: boundary polygon plus signed filament markers on a gonum/plot
//     canvas.
//
// Why:
//
//   - Green's-function field solvers superpose contributions of point
//     filaments; reducing every physical shape to an ordered (R, Z, weight)
//     table makes superposition uniform across shape families.
//   - Parametric shapes regenerate their points from (centroid, orientation)
//     on every access, so in-place mutation can never desynchronize the
//     stored parametrization from the filament positions.
//
// Staleness protocol:
//
//	Green's-function coefficient matrices are expensive and are computed by
//	a downstream solver, not here. Every setter that feeds into RZPts,
//	Weights, or the boundary polygon marks the set stale; the solver checks
//	Stale() before serving any field quantity, recomputes against the
//	current RZW if needed, then calls ClearStale(). Setting the scalar
//	current does NOT mark the set stale: coefficients are
//	current-independent and are rescaled at query time.
//
// Invariants:
//
//   - len(Weights()) == NPts() after construction and after every mutation.
//   - RZPts and Weights are index-aligned per filament.
//   - Translate and Rotate are rigid: filament count and pairwise distances
//     are preserved.
//   - NPts() >= 1.
//
// Errors:
//
//   - ErrNotImplemented: Simplify and Clone are declared gaps.
//   - ErrWeightCount: weights length does not match the filament count.
//   - ErrNoFilaments: a point cloud needs at least one point.
//   - ErrGridCount: rectangular grid counts must be at least 1.
//   - ErrSpacing: filament spacing must be positive.
//   - ErrDimension: magnet width and height must be positive.
//
// Units are meters and amps; R ≥ 0 is expected by convention, not enforced.
package filament
