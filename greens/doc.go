// Package greens computes magnetic field and flux quantities of
// axisymmetric filament sets on an (R, Z) mesh via Green's-function
// superposition.
//
// What:
//
//   - PsiG, BrG, BzG: poloidal flux and field components per unit current
//     of a single circular filament, in closed form through complete
//     elliptic integrals.
//   - Mesh: a flattened list of (R, Z) evaluation points, with a
//     convenience rectangular-grid constructor.
//   - Solver: binds one filament.CurrentFilamentSet to a Mesh, caching
//     per-mesh-point coefficient vectors and recomputing them only when the
//     set reports stale geometry.
//
// Why:
//
//   - Green's-function coefficients cost an elliptic-integral pair per
//     (mesh point, filament) pair; recomputing them on every query would
//     dominate any workload. The filament package's staleness protocol
//     makes the cache sound: no query result is ever derived from
//     coefficients older than the latest geometry- or weight-affecting
//     mutation.
//   - Coefficients are current-independent. Changing the set's scalar
//     current rescales cached vectors at query time without a recompute.
//
// Complexity:
//
//   - Coefficient rebuild: O(nmesh·npts) elliptic-integral evaluations.
//   - Psi/BR/BZ with warm cache: O(nmesh).
//
// Errors:
//
//   - ErrNilSet: a Solver needs a non-nil filament set.
//   - ErrMeshSize: mesh coordinate slices must be non-empty and equal
//     length.
//   - ErrGridExtent: rectangular grids need at least one point per axis.
//
// Evaluation exactly at a filament location is singular; the corresponding
// mesh point receives ±Inf rather than an error.
package greens
