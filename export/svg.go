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
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"seehuhn.de/go/isomap/contour"
)

// Styles used for the SVG drawing.
const (
	closedStyle = "fill:none;stroke:black;stroke-width:1"
	openStyle   = "fill:none;stroke:rgb(150,100,150);stroke-width:1"
	labelStyle  = "fill:none;stroke:red;stroke-width:0.5"
	wellStyle   = "stroke:black;stroke-width:1"
)

// WriteSVG draws the contours of d as polylines through the pixel
// centres, grouped by depth.  Label rectangles and wells are drawn on top.
func WriteSVG(w io.Writer, d *Document) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(d.Width, d.Height)
	canvas.Title(fmt.Sprintf("%d contours", len(d.Contours)))

	maxDepth := contour.Background
	for i := range d.Contours {
		maxDepth = max(maxDepth, d.Contours[i].Depth)
	}
	for depth := contour.Background; depth <= maxDepth; depth++ {
		started := false
		for i := range d.Contours {
			c := &d.Contours[i]
			if c.Depth != depth || len(c.Points) == 0 {
				continue
			}
			if !started {
				canvas.Gid(fmt.Sprintf("depth%d", depth))
				started = true
			}
			xs, ys := coords(c.Points)
			if c.Closed {
				canvas.Polygon(xs, ys, closedStyle)
			} else {
				canvas.Polyline(xs, ys, openStyle)
			}
		}
		if started {
			canvas.Gend()
		}
	}

	if len(d.Labels) > 0 {
		canvas.Gid("labels")
		for _, id := range d.labelIDs() {
			for _, r := range d.Labels[id] {
				canvas.Rect(r.Min.X, r.Min.Y, r.Dx(), r.Dy(), labelStyle)
			}
		}
		canvas.Gend()
	}

	if len(d.Wells) > 0 {
		canvas.Gid("wells")
		for _, wl := range d.Wells {
			style := wellStyle + ";fill:" + hexColor(wl.Color.R, wl.Color.G, wl.Color.B)
			canvas.Circle(wl.Center.X, wl.Center.Y, wl.Radius, style)
			if wl.Title != "" {
				off := wl.Radius + 2
				canvas.Text(wl.Center.X+off, wl.Center.Y-off, wl.Title, "font-size:10px")
			}
		}
		canvas.Gend()
	}

	canvas.End()
	return ew.err
}

func coords(pts []contour.Point) (xs, ys []int) {
	xs = make([]int, len(pts))
	ys = make([]int, len(pts))
	for i, p := range pts {
		xs[i] = p.X
		ys[i] = p.Y
	}
	return xs, ys
}

// errWriter remembers the first write error.  The SVG library does not
// report errors itself.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	ew.err = err
	return n, err
}
