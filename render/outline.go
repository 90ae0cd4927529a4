// seehuhn.de/go/isomap - synthetic contour map generator
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package render

import (
	"image"
	"image/color"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/isomap/contour"
)

// Style describes the pen used for a contour outline.
type Style struct {
	Color color.RGBA
	Width float64
	Cap   graphics.LineCapStyle
}

// OutlineStyles selects the pen by contour type.
type OutlineStyles struct {
	Closed Style
	Open   Style
}

// DefaultOutlineStyles draws closed contours in black and open contours
// in dark purple, with the given pen width.
func DefaultOutlineStyles(width float64) OutlineStyles {
	return OutlineStyles{
		Closed: Style{
			Color: color.RGBA{A: 0xff},
			Width: width,
			Cap:   graphics.LineCapRound,
		},
		Open: Style{
			Color: color.RGBA{R: 90, G: 40, B: 90, A: 0xff},
			Width: width,
			Cap:   graphics.LineCapButt,
		},
	}
}

// ContourPath returns the polyline through the pixel centres of c.
// Closed contours get a closed path.  A contour with a single point
// becomes a zero-length segment, which is visible with round caps.
func ContourPath(c *contour.Contour) *path.Data {
	p := &path.Data{}
	if len(c.Points) == 0 {
		return p
	}
	p.MoveTo(pixelCentre(c.Points[0]))
	if len(c.Points) == 1 {
		return p.LineTo(pixelCentre(c.Points[0]))
	}
	for _, q := range c.Points[1:] {
		p.LineTo(pixelCentre(q))
	}
	if c.Closed {
		p.Close()
	}
	return p
}

func pixelCentre(p contour.Point) vec.Vec2 {
	return vec.Vec2{X: float64(p.X) + 0.5, Y: float64(p.Y) + 0.5}
}

// OutlineContour strokes ct onto the canvas with the pen for its type.
// Pixels inside the exclude rectangles, usually the contour's own labels,
// are left untouched.  The clip rectangle of r is not changed.
func OutlineContour(c *Canvas, r *Rasteriser, ct *contour.Contour, styles OutlineStyles, exclude []image.Rectangle) {
	s := styles.Open
	if ct.Closed {
		s = styles.Closed
	}
	if s.Width <= 0 || s.Color.A == 0 {
		return
	}
	r.Width = s.Width
	r.Cap = s.Cap
	r.Stroke(ContourPath(ct), c.Paint(s.Color, exclude...))
}
