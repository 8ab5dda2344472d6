package filament

import "github.com/katalvlaran/axifield/transform"

// RectangularCoil models a rectangular cross-section coil as a regular
// nr×nz grid of filaments centered at (r0, z0), spaced by (dr, dz), rotated
// by a stored orientation angle about its own centroid.
//
// The grid is regenerated from (centroid, angle) on every RZPts access, so
// mutating any parameter keeps positions and parametrization consistent by
// construction.
type RectangularCoil struct {
	base

	r0, z0 float64
	nr, nz int
	dr, dz float64
	angle  float64 // degrees from the z-axis
}

var _ CurrentFilamentSet = (*RectangularCoil)(nil)

// NewRectangularCoil constructs a rectangular coil centered at (r0, z0).
// Returns ErrGridCount if NR or NZ is below 1, ErrSpacing if DR or DZ is
// not positive, and ErrWeightCount if supplied weights do not have length
// NR*NZ.
func NewRectangularCoil(r0, z0 float64, opts RectangularCoilOptions) (*RectangularCoil, error) {
	if opts.NR < 1 || opts.NZ < 1 {
		return nil, ErrGridCount
	}
	if opts.DR <= 0 || opts.DZ <= 0 {
		return nil, ErrSpacing
	}
	c := &RectangularCoil{
		r0:    r0,
		z0:    z0,
		nr:    opts.NR,
		nz:    opts.NZ,
		dr:    opts.DR,
		dz:    opts.DZ,
		angle: opts.Angle,
	}
	if err := c.initBase(c, opts.Current, opts.Weights, opts.Style); err != nil {
		return nil, err
	}

	return c, nil
}

// R0 returns the centroid R coordinate in meters.
func (c *RectangularCoil) R0() float64 { return c.r0 }

// Z0 returns the centroid Z coordinate in meters.
func (c *RectangularCoil) Z0() float64 { return c.z0 }

// Centroid returns the (R, Z) centroid of the coil.
func (c *RectangularCoil) Centroid() (float64, float64) { return c.r0, c.z0 }

// NR returns the filament count in the R direction.
func (c *RectangularCoil) NR() int { return c.nr }

// NZ returns the filament count in the Z direction.
func (c *RectangularCoil) NZ() int { return c.nz }

// DR returns the filament spacing in the R direction in meters.
func (c *RectangularCoil) DR() float64 { return c.dr }

// DZ returns the filament spacing in the Z direction in meters.
func (c *RectangularCoil) DZ() float64 { return c.dz }

// Angle returns the coil orientation in degrees from the z-axis.
func (c *RectangularCoil) Angle() float64 { return c.angle }

// NPts returns nr*nz.
func (c *RectangularCoil) NPts() int { return c.nr * c.nz }

// Area returns the coil cross-section area nr*dr*nz*dz in m².
func (c *RectangularCoil) Area() float64 {
	return float64(c.nr) * c.dr * float64(c.nz) * c.dz
}

// CurrentDensity returns TotalCurrent divided by Area, in A/m².
func (c *RectangularCoil) CurrentDensity() float64 {
	return c.TotalCurrent() / c.Area()
}

// RZPts regenerates the filament grid from the coil parameters: nr evenly
// spaced R values spanning r0 ± dr(nr−1)/2 crossed with nz Z values
// spanning z0 ± dz(nz−1)/2, enumerated R-major with Z varying fastest, then
// rotated about the centroid when the orientation is nonzero.
// Complexity: O(nr·nz).
func (c *RectangularCoil) RZPts() [][2]float64 {
	rl := c.r0 - c.dr*float64(c.nr-1)/2
	zl := c.z0 - c.dz*float64(c.nz-1)/2

	pts := make([][2]float64, 0, c.nr*c.nz)
	for i := 0; i < c.nr; i++ {
		r := rl + c.dr*float64(i)
		for j := 0; j < c.nz; j++ {
			pts = append(pts, [2]float64{r, zl + c.dz*float64(j)})
		}
	}
	if c.angle < atol && c.angle > -atol {
		return pts
	}

	return transform.Rotate(pts, c.angle, c.r0, c.z0)
}

// verts returns the closed 5-vertex outline of the coil: the four corner
// filaments (flat indices 0, nz−1, nr·nz−1, (nr−1)·nz, repeating 0) offset
// outward by half a filament spacing so the polygon tracks the physical
// extent beyond the outermost filament centers. Under nonzero orientation
// the offset vectors are rotated about the origin so they follow the coil's
// rotated axes.
func (c *RectangularCoil) verts() [][2]float64 {
	pts := c.RZPts()
	idx := []int{0, c.nz - 1, c.nr*c.nz - 1, (c.nr - 1) * c.nz, 0}

	hdr, hdz := c.dr/2, c.dz/2
	dverts := [][2]float64{
		{-hdr, -hdz},
		{-hdr, hdz},
		{hdr, hdz},
		{hdr, -hdz},
		{-hdr, -hdz},
	}
	if !(c.angle < atol && c.angle > -atol) {
		dverts = transform.Rotate(dverts, c.angle, 0, 0)
	}

	out := make([][2]float64, len(idx))
	for k, i := range idx {
		out[k][0] = pts[i][0] + dverts[k][0]
		out[k][1] = pts[i][1] + dverts[k][1]
	}

	return out
}

// Patch returns the coil's boundary polygon.
func (c *RectangularCoil) Patch() *Patch {
	return &Patch{Verts: c.verts(), Codes: rectCodes, Style: c.style}
}

// SetR0 moves the centroid R coordinate and marks the set stale.
func (c *RectangularCoil) SetR0(r0 float64) {
	c.r0 = r0
	c.invalidate()
}

// SetZ0 moves the centroid Z coordinate and marks the set stale.
func (c *RectangularCoil) SetZ0(z0 float64) {
	c.z0 = z0
	c.invalidate()
}

// SetCentroid moves the coil centroid and marks the set stale.
func (c *RectangularCoil) SetCentroid(r0, z0 float64) {
	c.r0, c.z0 = r0, z0
	c.invalidate()
}

// SetNR changes the R-direction filament count and marks the set stale.
// The weights are reset to the all-ones default for the new filament count,
// keeping len(weights) == NPts.
// Returns ErrGridCount if nr is below 1.
func (c *RectangularCoil) SetNR(nr int) error {
	if nr < 1 {
		return ErrGridCount
	}
	c.nr = nr
	c.resetWeights()
	c.invalidate()

	return nil
}

// SetNZ changes the Z-direction filament count and marks the set stale.
// The weights are reset to the all-ones default for the new filament count,
// keeping len(weights) == NPts.
// Returns ErrGridCount if nz is below 1.
func (c *RectangularCoil) SetNZ(nz int) error {
	if nz < 1 {
		return ErrGridCount
	}
	c.nz = nz
	c.resetWeights()
	c.invalidate()

	return nil
}

// SetDR changes the R-direction spacing and marks the set stale.
// Returns ErrSpacing if dr is not positive.
func (c *RectangularCoil) SetDR(dr float64) error {
	if dr <= 0 {
		return ErrSpacing
	}
	c.dr = dr
	c.invalidate()

	return nil
}

// SetDZ changes the Z-direction spacing and marks the set stale.
// Returns ErrSpacing if dz is not positive.
func (c *RectangularCoil) SetDZ(dz float64) error {
	if dz <= 0 {
		return ErrSpacing
	}
	c.dz = dz
	c.invalidate()

	return nil
}

// SetAngle replaces the coil orientation and marks the set stale.
func (c *RectangularCoil) SetAngle(angleDeg float64) {
	c.angle = angleDeg
	c.invalidate()
}

// resetWeights restores the all-ones default after a filament-count change.
func (c *RectangularCoil) resetWeights() {
	c.weights = make([]float64, c.NPts())
	for i := range c.weights {
		c.weights[i] = 1
	}
}

// Translate shifts the coil centroid by (dR, dZ); the grid follows on the
// next RZPts access. Marks the set stale.
func (c *RectangularCoil) Translate(dR, dZ float64) {
	c.SetCentroid(c.r0+dR, c.z0+dZ)
}

// Rotate accumulates angleDeg into the stored orientation, then rotates the
// centroid about the pivot. Position and orientation both update while the
// grid stays representable by the (centroid, angle) parametrization; it is
// regenerated on the next RZPts access. Marks the set stale.
func (c *RectangularCoil) Rotate(angleDeg, pivotR, pivotZ float64) {
	c.angle += angleDeg
	c.SetCentroid(transform.RotatePoint(c.r0, c.z0, angleDeg, pivotR, pivotZ))
}
