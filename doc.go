// Package axifield models axisymmetric current-carrying geometries — coils,
// point filament clusters, and permanent-magnet rings — as weighted sets of
// point current filaments in a cylindrical (R, Z) cross-section, ready for
// Green's-function field superposition.
//
// 🚀 What is axifield?
//
//	A small, focused library that brings together:
//		• Filament sets: ArbitraryPoints, RectangularCoil, MagnetRing — one
//		  polymorphic contract over parametric shape families
//		• Rigid transforms: translate & rotate that keep each shape's
//		  closed-form parametrization intact
//		• Staleness protocol: geometry mutations flag cached field data so a
//		  solver never serves results from an outdated geometry
//		• Green's functions: poloidal flux and field components of a circular
//		  filament via complete elliptic integrals, with lazy coefficient
//		  caching keyed by the staleness flag
//		• Rendering: boundary polygons and signed filament markers drawn onto
//		  a gonum/plot canvas
//
// ✨ Why choose axifield?
//
//   - Minimal API, clear naming — a coil is a constructor call away
//   - Closed-form geometry — filament grids regenerate from (centroid,
//     orientation), so incremental rotations never accumulate drift in the
//     stored parametrization
//   - Honest caching — expensive Green's-function matrices recompute only
//     when geometry or weighting actually changed
//
// Everything is organized under three subpackages:
//
//	transform/ — pure 2-D point-set rotation and translation
//	filament/  — CurrentFilamentSet contract and the concrete shapes
//	greens/    — elliptic-integral field solver consuming the staleness flag
//
// Quick ASCII example:
//
//	    Z
//	    │   ┌─┐        two anti-parallel current sheets
//	    │   │⊗│⊙       modeling a dipole magnet ring
//	    │   └─┘
//	    └────────── R
//
// Units are meters and amps throughout; coordinates are cylindrical (R, Z)
// with R ≥ 0 expected by convention.
//
//	go get github.com/katalvlaran/axifield
package axifield
