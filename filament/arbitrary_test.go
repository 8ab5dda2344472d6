package filament_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/axifield/filament"
)

// TestArbitraryPoints_Errors verifies an empty point array is rejected.
func TestArbitraryPoints_Errors(t *testing.T) {
	_, err := filament.NewArbitraryPoints(nil, filament.DefaultArbitraryPointsOptions())
	require.ErrorIs(t, err, filament.ErrNoFilaments)

	_, err = filament.NewArbitraryPoints(
		[][2]float64{{1, 0}},
		filament.ArbitraryPointsOptions{Current: 1, Weights: []float64{1, 2}},
	)
	require.ErrorIs(t, err, filament.ErrWeightCount)
}

// TestArbitraryPoints_DeepCopy verifies construction and RZPts decouple the
// stored points from caller slices.
func TestArbitraryPoints_DeepCopy(t *testing.T) {
	in := [][2]float64{{1, 0}, {2, 1}}
	a, err := filament.NewArbitraryPoints(in, filament.DefaultArbitraryPointsOptions())
	require.NoError(t, err)

	in[0][0] = 99
	require.Equal(t, 1.0, a.RZPts()[0][0])

	out := a.RZPts()
	out[1][1] = -99
	require.Equal(t, 1.0, a.RZPts()[1][1])
}

// TestArbitraryPoints_NoPatch verifies a bare point cloud has no boundary
// polygon.
func TestArbitraryPoints_NoPatch(t *testing.T) {
	a, err := filament.NewArbitraryPoints([][2]float64{{1, 0}}, filament.DefaultArbitraryPointsOptions())
	require.NoError(t, err)
	require.Nil(t, a.Patch())
}

// TestArbitraryPoints_Translate verifies the displacement lands on every
// stored point.
func TestArbitraryPoints_Translate(t *testing.T) {
	a, err := filament.NewArbitraryPoints([][2]float64{{1, 0}, {2, -1}}, filament.DefaultArbitraryPointsOptions())
	require.NoError(t, err)

	a.Translate(0.5, 1.5)
	pts := a.RZPts()
	require.InDelta(t, 1.5, pts[0][0], tol)
	require.InDelta(t, 1.5, pts[0][1], tol)
	require.InDelta(t, 2.5, pts[1][0], tol)
	require.InDelta(t, 0.5, pts[1][1], tol)
}

// TestArbitraryPoints_Rotate verifies the in-place rotation and the
// bookkeeping angle accumulation.
func TestArbitraryPoints_Rotate(t *testing.T) {
	a, err := filament.NewArbitraryPoints([][2]float64{{1, 0}}, filament.DefaultArbitraryPointsOptions())
	require.NoError(t, err)

	a.Rotate(90, 0, 0)
	require.InDelta(t, 90, a.Angle(), tol)
	pts := a.RZPts()
	require.InDelta(t, 0, pts[0][0], 1e-10)
	require.InDelta(t, 1, pts[0][1], 1e-10)

	a.Rotate(-90, 0, 0)
	require.InDelta(t, 0, a.Angle(), tol)
	pts = a.RZPts()
	require.InDelta(t, 1, pts[0][0], 1e-10)
	require.InDelta(t, 0, pts[0][1], 1e-10)
}
