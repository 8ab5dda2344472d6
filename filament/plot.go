package filament

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// markerRadius is the glyph radius for filament markers.
var markerRadius = vg.Points(3)

// Draw renders a filament set onto a gonum/plot canvas: the boundary
// polygon first (when the shape has one), styled by the set's PatchStyle,
// then one marker per filament signed by current*weight — a cross for
// positive filament current, a ring for negative, and no marker when the
// signed current is within the fixed absolute tolerance of zero.
// Complexity: O(n).
func Draw(p *plot.Plot, s CurrentFilamentSet) error {
	if patch := s.Patch(); patch != nil {
		xys := make(plotter.XYs, len(patch.Verts))
		for i, v := range patch.Verts {
			xys[i].X, xys[i].Y = v[0], v[1]
		}
		poly, err := plotter.NewPolygon(xys)
		if err != nil {
			return err
		}
		poly.LineStyle = patch.Style.LineStyle
		poly.Color = patch.Style.FillColor
		p.Add(poly)
	}

	current := s.Current()
	weights := s.Weights()
	var pos, neg plotter.XYs
	for i, pt := range s.RZPts() {
		cw := current * weights[i]
		switch {
		case cw > atol:
			pos = append(pos, plotter.XY{X: pt[0], Y: pt[1]})
		case cw < -atol:
			neg = append(neg, plotter.XY{X: pt[0], Y: pt[1]})
		}
	}
	if err := addMarkers(p, pos, draw.CrossGlyph{}); err != nil {
		return err
	}

	return addMarkers(p, neg, draw.RingGlyph{})
}

// addMarkers adds one scatter of identically shaped glyphs to the plot.
func addMarkers(p *plot.Plot, xys plotter.XYs, shape draw.GlyphDrawer) error {
	if len(xys) == 0 {
		return nil
	}
	sc, err := plotter.NewScatter(xys)
	if err != nil {
		return err
	}
	sc.GlyphStyle = draw.GlyphStyle{
		Color:  color.Black,
		Radius: markerRadius,
		Shape:  shape,
	}
	p.Add(sc)

	return nil
}
