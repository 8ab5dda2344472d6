package greens

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/axifield/filament"
)

// Solver binds one filament set to a mesh and serves field quantities by
// Green's-function superposition.
//
// Coefficient vectors (one value per mesh point, weights folded in) are
// cached between queries. Before serving any quantity the solver checks the
// set's staleness flag: while it reports true the coefficients are rebuilt
// against the current RZW, then the flag is cleared. Filament order is
// taken from the set's RZPts order, which the set keeps stable between
// invalidations. The set's scalar current is applied as a linear rescale at
// query time, so current changes never trigger a recompute.
//
// A Solver is single-threaded, like the sets it consumes: the check-
// recompute-clear sequence must not interleave with mutations.
type Solver struct {
	set  filament.CurrentFilamentSet
	mesh *Mesh

	gpsi, gbr, gbz *mat.VecDense
}

// NewSolver constructs a Solver for the given set and mesh.
// Returns ErrNilSet for a nil set and ErrMeshSize for a nil or empty mesh.
func NewSolver(set filament.CurrentFilamentSet, mesh *Mesh) (*Solver, error) {
	if set == nil {
		return nil, ErrNilSet
	}
	if mesh == nil || mesh.Len() == 0 {
		return nil, ErrMeshSize
	}

	return &Solver{set: set, mesh: mesh}, nil
}

// Mesh returns the evaluation mesh.
func (s *Solver) Mesh() *Mesh { return s.mesh }

// Psi returns the poloidal flux in Wb at every mesh point.
// Complexity: O(nmesh) with a warm cache, O(nmesh·npts) after a mutation.
func (s *Solver) Psi() []float64 { return s.scaled(s.ensure().gpsi) }

// BR returns the radial magnetic field in T at every mesh point.
// Complexity: O(nmesh) with a warm cache, O(nmesh·npts) after a mutation.
func (s *Solver) BR() []float64 { return s.scaled(s.ensure().gbr) }

// BZ returns the vertical magnetic field in T at every mesh point.
// Complexity: O(nmesh) with a warm cache, O(nmesh·npts) after a mutation.
func (s *Solver) BZ() []float64 { return s.scaled(s.ensure().gbz) }

// ensure rebuilds the coefficient vectors when the set reports stale
// geometry, then clears the flag. The nmesh×npts per-filament coefficient
// matrices are collapsed against the weight column of RZW, leaving one
// current-independent value per mesh point and quantity.
func (s *Solver) ensure() *Solver {
	if !s.set.Stale() && s.gpsi != nil {
		return s
	}

	rzw := s.set.RZW()
	npts, _ := rzw.Dims()
	nmesh := s.mesh.Len()

	mpsi := mat.NewDense(nmesh, npts, nil)
	mbr := mat.NewDense(nmesh, npts, nil)
	mbz := mat.NewDense(nmesh, npts, nil)
	for j := 0; j < npts; j++ {
		a, b := rzw.At(j, 0), rzw.At(j, 1)
		for i := 0; i < nmesh; i++ {
			r, z := s.mesh.R[i], s.mesh.Z[i]
			mpsi.Set(i, j, PsiG(a, b, r, z))
			mbr.Set(i, j, BrG(a, b, r, z))
			mbz.Set(i, j, BzG(a, b, r, z))
		}
	}

	w := mat.NewVecDense(npts, mat.Col(nil, 2, rzw))
	s.gpsi = collapse(mpsi, w)
	s.gbr = collapse(mbr, w)
	s.gbz = collapse(mbz, w)
	s.set.ClearStale()

	return s
}

// collapse folds the weight vector into a per-filament coefficient matrix,
// producing one value per mesh point.
func collapse(g *mat.Dense, w *mat.VecDense) *mat.VecDense {
	rows, _ := g.Dims()
	out := mat.NewVecDense(rows, nil)
	out.MulVec(g, w)

	return out
}

// scaled returns a cached coefficient vector scaled by the set's current.
func (s *Solver) scaled(v *mat.VecDense) []float64 {
	out := append([]float64(nil), v.RawVector().Data...)
	floats.Scale(s.set.Current(), out)

	return out
}
