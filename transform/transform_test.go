package transform_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/axifield/transform"
)

const tol = 1e-12

// TestRotate_QuarterTurn verifies a 90° rotation about the origin maps
// (1,0)→(0,1) and (0,1)→(−1,0).
func TestRotate_QuarterTurn(t *testing.T) {
	pts := [][2]float64{{1, 0}, {0, 1}}
	got := transform.Rotate(pts, 90, 0, 0)

	want := [][2]float64{{0, 1}, {-1, 0}}
	for i := range want {
		if math.Abs(got[i][0]-want[i][0]) > tol || math.Abs(got[i][1]-want[i][1]) > tol {
			t.Errorf("point %d = (%g,%g); want (%g,%g)", i, got[i][0], got[i][1], want[i][0], want[i][1])
		}
	}
}

// TestRotate_Pivot verifies that the pivot itself is a fixed point and that
// rotation about a non-origin pivot matches translate-rotate-translate.
func TestRotate_Pivot(t *testing.T) {
	pts := [][2]float64{{2, 3}, {5, -1}}
	pr, pz := 2.0, 3.0
	got := transform.Rotate(pts, 37.5, pr, pz)

	if math.Abs(got[0][0]-pr) > tol || math.Abs(got[0][1]-pz) > tol {
		t.Errorf("pivot moved to (%g,%g); want (%g,%g)", got[0][0], got[0][1], pr, pz)
	}

	shifted := transform.Translate(pts, -pr, -pz)
	rotated := transform.Rotate(shifted, 37.5, 0, 0)
	back := transform.Translate(rotated, pr, pz)
	for i := range pts {
		if math.Abs(got[i][0]-back[i][0]) > tol || math.Abs(got[i][1]-back[i][1]) > tol {
			t.Errorf("point %d: pivot form (%g,%g) != composed form (%g,%g)",
				i, got[i][0], got[i][1], back[i][0], back[i][1])
		}
	}
}

// TestRotate_RoundTrip checks Rotate(a) followed by Rotate(−a) restores the
// input to within floating-point tolerance.
func TestRotate_RoundTrip(t *testing.T) {
	pts := [][2]float64{{1.3, -0.7}, {0.2, 2.9}, {4, 4}}
	cases := []struct {
		name   string
		angle  float64
		pr, pz float64
	}{
		{"OriginSmall", 12.25, 0, 0},
		{"OriginLarge", 231, 0, 0},
		{"OffsetPivot", -77.5, 1.5, -2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fwd := transform.Rotate(pts, tc.angle, tc.pr, tc.pz)
			back := transform.Rotate(fwd, -tc.angle, tc.pr, tc.pz)
			for i := range pts {
				if math.Abs(back[i][0]-pts[i][0]) > 1e-10 || math.Abs(back[i][1]-pts[i][1]) > 1e-10 {
					t.Errorf("point %d = (%g,%g); want (%g,%g)",
						i, back[i][0], back[i][1], pts[i][0], pts[i][1])
				}
			}
		})
	}
}

// TestRotate_Pure verifies the input slice is left untouched.
func TestRotate_Pure(t *testing.T) {
	pts := [][2]float64{{1, 2}, {3, 4}}
	_ = transform.Rotate(pts, 45, 0.5, 0.5)
	if pts[0] != [2]float64{1, 2} || pts[1] != [2]float64{3, 4} {
		t.Errorf("input mutated: %v", pts)
	}
}

// TestRotatePoint_MatchesRotate checks the single-point form against the
// slice form.
func TestRotatePoint_MatchesRotate(t *testing.T) {
	r, z := transform.RotatePoint(1.1, -0.4, 63, 0.3, 0.9)
	got := transform.Rotate([][2]float64{{1.1, -0.4}}, 63, 0.3, 0.9)
	if math.Abs(r-got[0][0]) > tol || math.Abs(z-got[0][1]) > tol {
		t.Errorf("RotatePoint = (%g,%g); Rotate = (%g,%g)", r, z, got[0][0], got[0][1])
	}
}

// TestTranslate verifies the rigid shift and purity of Translate.
func TestTranslate(t *testing.T) {
	pts := [][2]float64{{0, 0}, {-1, 2}}
	got := transform.Translate(pts, 0.5, -1.5)

	want := [][2]float64{{0.5, -1.5}, {-0.5, 0.5}}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("point %d = %v; want %v", i, got[i], want[i])
		}
	}
	if pts[0] != [2]float64{0, 0} {
		t.Errorf("input mutated: %v", pts)
	}
}
