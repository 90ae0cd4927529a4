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

package export

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/isomap/render"
)

// WritePDF writes a single page PDF file with the contours of d drawn as
// vector outlines.  One pixel is one PDF point.  Closed contours are
// black, open contours grey.  Wells are drawn as grey discs.
func WritePDF(fname string, d *Document, lineWidth float64) error {
	paper := &pdf.Rectangle{
		URx: float64(d.Width),
		URy: float64(d.Height),
	}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left, image coordinates are top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(d.Height)})

	page.SetLineWidth(lineWidth)
	page.SetLineCap(graphics.LineCapRound)
	page.SetLineJoin(graphics.LineJoinRound)

	for i := range d.Contours {
		c := &d.Contours[i]
		if c.Closed {
			page.SetStrokeColor(color.DeviceGray(0))
		} else {
			page.SetStrokeColor(color.DeviceGray(0.5))
		}
		addPath(page, render.ContourPath(c))
		page.Stroke()
	}

	page.SetFillColor(color.DeviceGray(0.7))
	page.SetStrokeColor(color.DeviceGray(0))
	for _, wl := range d.Wells {
		centre := vec.Vec2{X: float64(wl.Center.X) + 0.5, Y: float64(wl.Center.Y) + 0.5}
		addPath(page, render.Circle(centre, float64(wl.Radius)))
		page.FillAndStroke()
	}

	return page.Close()
}

// addPath appends p to the current PDF path.  Quadratic segments are
// converted to cubic ones, since PDF has no quadratic curves.
func addPath(page *document.Page, p *path.Data) {
	var cur, start vec.Vec2
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			cur = p.Coords[k]
			start = cur
			page.MoveTo(cur.X, cur.Y)
			k++
		case path.CmdLineTo:
			cur = p.Coords[k]
			page.LineTo(cur.X, cur.Y)
			k++
		case path.CmdQuadTo:
			c, e := p.Coords[k], p.Coords[k+1]
			c1 := cur.Add(c.Sub(cur).Mul(2.0 / 3))
			c2 := e.Add(c.Sub(e).Mul(2.0 / 3))
			page.CurveTo(c1.X, c1.Y, c2.X, c2.Y, e.X, e.Y)
			cur = e
			k += 2
		case path.CmdCubeTo:
			c1, c2, e := p.Coords[k], p.Coords[k+1], p.Coords[k+2]
			page.CurveTo(c1.X, c1.Y, c2.X, c2.Y, e.X, e.Y)
			cur = e
			k += 3
		case path.CmdClose:
			page.ClosePath()
			cur = start
		}
	}
}
