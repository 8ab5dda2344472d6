package greens

import "errors"

// Sentinel errors for mesh and solver construction.
var (
	// ErrNilSet indicates NewSolver was given a nil filament set.
	ErrNilSet = errors.New("greens: filament set must not be nil")

	// ErrMeshSize indicates mesh coordinate slices that are empty or of
	// differing lengths.
	ErrMeshSize = errors.New("greens: mesh coordinate slices must be non-empty and equal length")

	// ErrGridExtent indicates a rectangular grid with fewer than one point
	// along an axis.
	ErrGridExtent = errors.New("greens: grid needs at least one point per axis")
)

// Mesh is a flattened list of (R, Z) evaluation points in meters. Index i
// of every field-quantity slice produced by a Solver refers to
// (R[i], Z[i]).
type Mesh struct {
	R, Z []float64
}

// NewMesh builds a Mesh from parallel coordinate slices, deep-copying both.
// Returns ErrMeshSize if the slices are empty or of differing lengths.
// Complexity: O(n).
func NewMesh(r, z []float64) (*Mesh, error) {
	if len(r) == 0 || len(r) != len(z) {
		return nil, ErrMeshSize
	}

	return &Mesh{
		R: append([]float64(nil), r...),
		Z: append([]float64(nil), z...),
	}, nil
}

// NewGrid builds a flattened rectangular mesh of nr×nz points spanning
// [rmin, rmax]×[zmin, zmax], enumerated R-major with Z varying fastest.
// Single-point axes (nr or nz equal to 1) collapse to the lower bound.
// Returns ErrGridExtent if nr or nz is below 1.
// Complexity: O(nr·nz).
func NewGrid(rmin, rmax float64, nr int, zmin, zmax float64, nz int) (*Mesh, error) {
	if nr < 1 || nz < 1 {
		return nil, ErrGridExtent
	}
	dr, dz := 0.0, 0.0
	if nr > 1 {
		dr = (rmax - rmin) / float64(nr-1)
	}
	if nz > 1 {
		dz = (zmax - zmin) / float64(nz-1)
	}

	m := &Mesh{
		R: make([]float64, 0, nr*nz),
		Z: make([]float64, 0, nr*nz),
	}
	for i := 0; i < nr; i++ {
		r := rmin + dr*float64(i)
		for j := 0; j < nz; j++ {
			m.R = append(m.R, r)
			m.Z = append(m.Z, zmin+dz*float64(j))
		}
	}

	return m, nil
}

// Len returns the number of mesh points.
func (m *Mesh) Len() int { return len(m.R) }
