package filament

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// CurrentFilamentSet is the polymorphic contract over all filament shapes:
// a set of axisymmetric current centroids with per-filament current weights
// and a shared scalar current.
//
// RZPts and RZW are pure derivations recomputed on every access; no caching
// happens at this layer. Caching belongs in a downstream field solver keyed
// by Stale/ClearStale.
//
// A CurrentFilamentSet is not safe for concurrent use: the staleness flag
// and the solver cache it guards must share one mutual-exclusion boundary
// if concurrency is ever introduced.
type CurrentFilamentSet interface {
	fmt.Stringer

	// NPts returns the number of current filaments in the set. Always ≥ 1.
	NPts() int

	// RZPts returns the Nx2 ordered (R, Z) filament positions in meters,
	// recomputed from the shape's parameters on each access. The returned
	// slice is freshly allocated; callers may modify it freely.
	RZPts() [][2]float64

	// Patch returns the closed boundary polygon approximating the shape's
	// physical outline, or nil for point-cloud-only shapes.
	Patch() *Patch

	// Translate rigidly shifts all filament positions by (dR, dZ) and
	// marks the set stale.
	Translate(dR, dZ float64)

	// Rotate rigidly rotates all filament positions by angleDeg degrees
	// about the pivot (pivotR, pivotZ), updates any stored orientation
	// parameter, and marks the set stale.
	Rotate(angleDeg, pivotR, pivotZ float64)

	// Current returns the shared current magnitude in amps.
	Current() float64

	// SetCurrent replaces the shared current. It does NOT mark the set
	// stale: Green's-function data is current-independent and is rescaled,
	// not recomputed, by the solver.
	SetCurrent(current float64)

	// Weights returns a copy of the per-filament multipliers, index-aligned
	// with RZPts.
	Weights() []float64

	// SetWeights replaces the per-filament multipliers and marks the set
	// stale. Returns ErrWeightCount if len(weights) != NPts().
	SetWeights(weights []float64) error

	// TotalCurrent returns Current() times the sum of the weights. Zero is
	// a valid state, not an error.
	TotalCurrent() float64

	// SetTotalCurrent re-derives the shared current so that TotalCurrent
	// equals the given value, holding weights fixed.
	SetTotalCurrent(total float64)

	// RZW returns the Nx3 matrix whose columns are R, Z, and weight per
	// filament, freshly assembled on each call.
	RZW() *mat.Dense

	// Stale reports whether the geometry or weighting has changed since the
	// last ClearStale. A downstream solver must recompute its
	// Green's-function data before serving any field quantity while Stale
	// reports true.
	Stale() bool

	// ClearStale marks cached field data as consistent with the current
	// geometry. Only the consuming solver should call it, after a
	// recompute.
	ClearStale()

	// Style returns the pass-through boundary-polygon styling.
	Style() PatchStyle

	// SetStyle replaces the boundary-polygon styling. Styling does not feed
	// into field data, so this does not mark the set stale.
	SetStyle(style PatchStyle)

	// Simplify is intended to collapse the set to a single equivalent coil
	// at the weighted centroid carrying the total current. It is a declared
	// gap: it always returns ErrNotImplemented rather than a silently
	// incorrect approximation.
	Simplify() (CurrentFilamentSet, error)

	// Clone is intended to produce an independent deep copy. It is a
	// declared gap: it always returns ErrNotImplemented.
	Clone() (CurrentFilamentSet, error)
}

// geometry is the slice of the contract the shared base needs back from its
// concrete shape: the filament count and positions that only the shape's
// parameters can produce.
type geometry interface {
	NPts() int
	RZPts() [][2]float64
}

// base implements the shape-independent half of CurrentFilamentSet. Every
// concrete shape embeds it and wires itself in via initBase.
type base struct {
	geom    geometry
	current float64
	weights []float64
	style   PatchStyle
	stale   bool
}

// initBase finishes construction of the shared state. The concrete shape
// must have all state needed by NPts in place before calling it, because
// defaulting the weights requires the filament count. A supplied weights
// slice is copied; a nil one defaults to all ones.
// Returns ErrWeightCount on a length mismatch.
func (b *base) initBase(geom geometry, current float64, weights []float64, style PatchStyle) error {
	b.geom = geom
	b.current = current
	b.style = style
	b.stale = true // nothing computed against this geometry yet

	n := geom.NPts()
	if weights == nil {
		b.weights = make([]float64, n)
		for i := range b.weights {
			b.weights[i] = 1
		}
		return nil
	}
	if len(weights) != n {
		return ErrWeightCount
	}
	b.weights = append([]float64(nil), weights...)

	return nil
}

// invalidate marks any downstream Green's-function data stale. Every setter
// that feeds into RZPts, Weights, or the boundary polygon calls it.
func (b *base) invalidate() { b.stale = true }

// Stale reports whether geometry or weighting changed since ClearStale.
func (b *base) Stale() bool { return b.stale }

// ClearStale marks cached field data as consistent with current geometry.
func (b *base) ClearStale() { b.stale = false }

// Current returns the shared current magnitude in amps.
func (b *base) Current() float64 { return b.current }

// SetCurrent replaces the shared current without invalidating: coefficient
// data scales linearly with the stored weights and is rescaled at query
// time.
func (b *base) SetCurrent(current float64) { b.current = current }

// Weights returns a copy of the per-filament multipliers.
func (b *base) Weights() []float64 {
	return append([]float64(nil), b.weights...)
}

// SetWeights replaces the per-filament multipliers and marks the set stale.
// Returns ErrWeightCount if len(weights) != NPts().
func (b *base) SetWeights(weights []float64) error {
	if len(weights) != b.geom.NPts() {
		return ErrWeightCount
	}
	b.weights = append([]float64(nil), weights...)
	b.invalidate()

	return nil
}

// TotalCurrent returns Current() times the sum of the weights.
func (b *base) TotalCurrent() float64 {
	return b.current * floats.Sum(b.weights)
}

// SetTotalCurrent re-derives the shared current holding weights fixed.
func (b *base) SetTotalCurrent(total float64) {
	b.current = total / floats.Sum(b.weights)
}

// RZW assembles the Nx3 (R, Z, weight) matrix from the shape's current
// positions and the stored weights. Freshly computed on every call.
// Complexity: O(n).
func (b *base) RZW() *mat.Dense {
	pts := b.geom.RZPts()
	rzw := mat.NewDense(len(pts), 3, nil)
	for i, p := range pts {
		rzw.Set(i, 0, p[0])
		rzw.Set(i, 1, p[1])
		rzw.Set(i, 2, b.weights[i])
	}

	return rzw
}

// Style returns the pass-through boundary-polygon styling.
func (b *base) Style() PatchStyle { return b.style }

// SetStyle replaces the styling. Rendering-only state: no invalidation.
func (b *base) SetStyle(style PatchStyle) { b.style = style }

// Simplify always returns ErrNotImplemented.
func (b *base) Simplify() (CurrentFilamentSet, error) {
	return nil, ErrNotImplemented
}

// Clone always returns ErrNotImplemented.
func (b *base) Clone() (CurrentFilamentSet, error) {
	return nil, ErrNotImplemented
}

// String renders a human-readable summary: concrete class, current,
// filament count, total current, and the full (R, Z, W) table.
func (b *base) String() string {
	var sb strings.Builder
	sb.WriteString("CurrentFilamentSet\n")
	fmt.Fprintf(&sb, "%16s  %T\n", "Class:", b.geom)
	fmt.Fprintf(&sb, "%16s  %.6e amps\n", "Current:", b.current)
	fmt.Fprintf(&sb, "%16s  %d\n", "N Filaments:", b.geom.NPts())
	fmt.Fprintf(&sb, "%16s  %.6e amps\n", "Total Current:", b.TotalCurrent())
	for i, p := range b.geom.RZPts() {
		label := ""
		if i == 0 {
			label = "R, Z, W:"
		}
		fmt.Fprintf(&sb, "%16s  [%.6e, %.6e, %.6e]\n", label, p[0], p[1], b.weights[i])
	}

	return sb.String()
}
