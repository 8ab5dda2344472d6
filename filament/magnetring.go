package filament

import "github.com/katalvlaran/axifield/transform"

// magnetNPts is the fixed filament count of a MagnetRing: two anti-parallel
// 8-filament current sheets modeling the bound surface currents of a dipole
// cross-section.
const magnetNPts = 16

// MagnetRing models a rectangular cross-section axisymmetric dipole-magnet
// ring. The dipole is represented by two parallel sheets of 8 filaments
// each on either face of the magnet, carrying opposing currents, with the
// magnetic-moment angle MuHat measured in degrees from the z-axis.
type MagnetRing struct {
	base

	r0, z0        float64
	width, height float64
	muHat         float64 // degrees from the z-axis
}

var _ CurrentFilamentSet = (*MagnetRing)(nil)

// NewMagnetRing constructs a magnet ring centered at (r0, z0). Default
// weights are −1 for the first sheet and +1 for the second, so the net
// current is zero: opposing bound surface currents. Returns ErrDimension if
// Width or Height is not positive and ErrWeightCount if supplied weights do
// not have length 16.
func NewMagnetRing(r0, z0 float64, opts MagnetRingOptions) (*MagnetRing, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, ErrDimension
	}
	m := &MagnetRing{
		r0:     r0,
		z0:     z0,
		width:  opts.Width,
		height: opts.Height,
		muHat:  opts.MuHat,
	}
	weights := opts.Weights
	if weights == nil {
		weights = make([]float64, magnetNPts)
		for i := range weights {
			if i < magnetNPts/2 {
				weights[i] = -1
			} else {
				weights[i] = 1
			}
		}
	}
	if err := m.initBase(m, opts.Current, weights, opts.Style); err != nil {
		return nil, err
	}

	return m, nil
}

// R0 returns the centroid R coordinate in meters.
func (m *MagnetRing) R0() float64 { return m.r0 }

// Z0 returns the centroid Z coordinate in meters.
func (m *MagnetRing) Z0() float64 { return m.z0 }

// Centroid returns the (R, Z) centroid of the magnet ring.
func (m *MagnetRing) Centroid() (float64, float64) { return m.r0, m.z0 }

// Width returns the magnet cross-section width in meters.
func (m *MagnetRing) Width() float64 { return m.width }

// Height returns the magnet cross-section height in meters.
func (m *MagnetRing) Height() float64 { return m.height }

// MuHat returns the magnetic-moment angle in degrees from the z-axis.
func (m *MagnetRing) MuHat() float64 { return m.muHat }

// NPts returns the fixed filament count, 16.
func (m *MagnetRing) NPts() int { return magnetNPts }

// RZPts regenerates the two current sheets from the magnet parameters:
// sheet one (filaments 0..7) at R = r0 − width/2, sheet two (8..15) at
// R = r0 + width/2, both sharing 8 evenly spaced Z offsets spanning
// ±height/2 around z0, rotated about the centroid when MuHat is nonzero
// (fixed absolute tolerance, zero relative tolerance).
// Complexity: O(1) (fixed 16 filaments).
func (m *MagnetRing) RZPts() [][2]float64 {
	const h = magnetNPts / 2
	hw, hh := m.width/2, m.height/2
	dz := m.height / float64(h-1)

	pts := make([][2]float64, magnetNPts)
	for j := 0; j < h; j++ {
		z := m.z0 - hh + dz*float64(j)
		pts[j] = [2]float64{m.r0 - hw, z}
		pts[h+j] = [2]float64{m.r0 + hw, z}
	}
	if m.muHat < atol && m.muHat > -atol {
		return pts
	}

	return transform.Rotate(pts, m.muHat, m.r0, m.z0)
}

// verts returns the closed 5-vertex outline: the sheet-end filaments at
// flat indices 0, 7, 15, 8 (repeating 0) taken directly as the
// quadrilateral corners. Unlike RectangularCoil there is no half-spacing
// offset: the sheets already sit on the magnet faces.
func (m *MagnetRing) verts() [][2]float64 {
	const h = magnetNPts / 2
	pts := m.RZPts()
	idx := []int{0, h - 1, magnetNPts - 1, h, 0}

	out := make([][2]float64, len(idx))
	for k, i := range idx {
		out[k] = pts[i]
	}

	return out
}

// Patch returns the magnet ring's boundary polygon.
func (m *MagnetRing) Patch() *Patch {
	return &Patch{Verts: m.verts(), Codes: rectCodes, Style: m.style}
}

// SetR0 moves the centroid R coordinate and marks the set stale.
func (m *MagnetRing) SetR0(r0 float64) {
	m.r0 = r0
	m.invalidate()
}

// SetZ0 moves the centroid Z coordinate and marks the set stale.
func (m *MagnetRing) SetZ0(z0 float64) {
	m.z0 = z0
	m.invalidate()
}

// SetCentroid moves the magnet centroid and marks the set stale.
func (m *MagnetRing) SetCentroid(r0, z0 float64) {
	m.r0, m.z0 = r0, z0
	m.invalidate()
}

// SetWidth changes the cross-section width and marks the set stale.
// Returns ErrDimension if width is not positive.
func (m *MagnetRing) SetWidth(width float64) error {
	if width <= 0 {
		return ErrDimension
	}
	m.width = width
	m.invalidate()

	return nil
}

// SetHeight changes the cross-section height and marks the set stale.
// Returns ErrDimension if height is not positive.
func (m *MagnetRing) SetHeight(height float64) error {
	if height <= 0 {
		return ErrDimension
	}
	m.height = height
	m.invalidate()

	return nil
}

// SetMuHat replaces the magnetic-moment angle and marks the set stale.
func (m *MagnetRing) SetMuHat(muHatDeg float64) {
	m.muHat = muHatDeg
	m.invalidate()
}

// Translate shifts the magnet centroid by (dR, dZ); the sheets follow on
// the next RZPts access. Marks the set stale.
func (m *MagnetRing) Translate(dR, dZ float64) {
	m.SetCentroid(m.r0+dR, m.z0+dZ)
}

// Rotate accumulates angleDeg into MuHat, then rotates the centroid about
// the pivot; the sheets are regenerated from (centroid, MuHat) on the next
// RZPts access. Marks the set stale.
func (m *MagnetRing) Rotate(angleDeg, pivotR, pivotZ float64) {
	m.muHat += angleDeg
	m.SetCentroid(transform.RotatePoint(m.r0, m.z0, angleDeg, pivotR, pivotZ))
}
