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
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Stroke fills the outline of p, drawn with a pen of diameter r.Width.
// Open subpaths end in r.Cap, corners are always round.
//
// The outline is built from one quadrilateral per segment and one disc
// per corner, all with the same orientation, and filled with the nonzero
// winding rule so that overlapping pieces are painted once.
func (r *Rasteriser) Stroke(p *path.Data, emit Emit) {
	d := r.Width / 2
	if d <= 0 {
		return
	}

	r.flatten(p)
	r.polys = r.polys[:0]
	r.polyStart = r.polyStart[:0]
	for i := range r.subStart {
		r.strokeSubpath(r.subpath(i), r.subClosed[i], d)
	}

	r.beginEdges()
	for i := range r.polyStart {
		r.polygonEdges(r.polygon(i))
	}
	r.sweep(fillNonZero, emit)
}

// flatten splits p into subpaths of vertices.  Curves are replaced by
// line segments.  A subpath consisting only of a MoveTo is dropped.
func (r *Rasteriser) flatten(p *path.Data) {
	r.pts = r.pts[:0]
	r.subStart = r.subStart[:0]
	r.subClosed = r.subClosed[:0]

	start := -1 // start of the current subpath in r.pts
	drawn := false
	end := func(closed bool) {
		if start < 0 {
			return
		}
		if drawn {
			r.subStart = append(r.subStart, start)
			r.subClosed = append(r.subClosed, closed)
		} else {
			r.pts = r.pts[:start]
		}
		start, drawn = -1, false
	}
	appendPoint := func(_, b vec.Vec2) {
		r.pts = append(r.pts, b)
	}

	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			end(false)
			start = len(r.pts)
			r.pts = append(r.pts, p.Coords[k])
			k++
		case path.CmdLineTo:
			if start >= 0 {
				r.pts = append(r.pts, p.Coords[k])
				drawn = true
			}
			k++
		case path.CmdQuadTo:
			if start >= 0 {
				r.flattenQuadratic(r.pts[len(r.pts)-1], p.Coords[k], p.Coords[k+1], appendPoint)
				drawn = true
			}
			k += 2
		case path.CmdCubeTo:
			if start >= 0 {
				r.flattenCubic(r.pts[len(r.pts)-1], p.Coords[k], p.Coords[k+1], p.Coords[k+2], appendPoint)
				drawn = true
			}
			k += 3
		case path.CmdClose:
			end(true)
		}
	}
	end(false)
}

func (r *Rasteriser) subpath(i int) []vec.Vec2 {
	end := len(r.pts)
	if i+1 < len(r.subStart) {
		end = r.subStart[i+1]
	}
	return r.pts[r.subStart[i]:end]
}

func (r *Rasteriser) polygon(i int) []vec.Vec2 {
	end := len(r.polys)
	if i+1 < len(r.polyStart) {
		end = r.polyStart[i+1]
	}
	return r.polys[r.polyStart[i]:end]
}

// strokeSubpath adds the outline pieces for one subpath.  d is half the
// stroke width.
func (r *Rasteriser) strokeSubpath(pts []vec.Vec2, closed bool, d float64) {
	n := len(pts)
	if closed {
		n++ // revisit the first vertex
	}

	segs := 0
	var firstT, lastT vec.Vec2
	a := pts[0]
	for i := 1; i < n; i++ {
		b := pts[i%len(pts)]
		t, ok := unit(b.Sub(a))
		if !ok {
			continue
		}
		if segs > 0 && isCorner(lastT, t) {
			r.addDisc(a, d)
		}
		r.addQuad(a, b, t, d)
		if segs == 0 {
			firstT = t
		}
		lastT = t
		segs++
		a = b
	}

	switch {
	case segs == 0:
		// A subpath without extent has no direction.  Round and square
		// caps still mark the point.
		switch r.Cap {
		case graphics.LineCapRound:
			r.addDisc(pts[0], d)
		case graphics.LineCapSquare:
			x := vec.Vec2{X: d}
			r.addQuad(pts[0].Sub(x), pts[0].Add(x), vec.Vec2{X: 1}, d)
		}
	case closed:
		if segs > 1 && isCorner(lastT, firstT) {
			r.addDisc(pts[0], d)
		}
	default:
		r.addCap(pts[0], firstT.Mul(-1), d)
		r.addCap(a, lastT, d)
	}
}

// addCap adds the cap at end point p.  t points away from the line.
func (r *Rasteriser) addCap(p, t vec.Vec2, d float64) {
	switch r.Cap {
	case graphics.LineCapSquare:
		r.addQuad(p, p.Add(t.Mul(d)), t, d)
	case graphics.LineCapRound:
		r.addDisc(p, d)
	}
}

// addQuad adds the rectangle of half-width d around the segment from a
// to b.  t is the unit direction from a to b.
func (r *Rasteriser) addQuad(a, b, t vec.Vec2, d float64) {
	n := vec.Vec2{X: -t.Y, Y: t.X}.Mul(d)
	r.polyStart = append(r.polyStart, len(r.polys))
	r.polys = append(r.polys, a.Add(n), b.Add(n), b.Sub(n), a.Sub(n))
}

// addDisc adds a regular polygon approximating the circle of the given
// radius.  The vertices run in the same rotational sense as the
// quadrilaterals from addQuad.
func (r *Rasteriser) addDisc(c vec.Vec2, radius float64) {
	n := minDiscVertices
	if radius > r.Flatness {
		step := 2 * math.Acos(1-r.Flatness/radius)
		n = max(n, int(math.Ceil(2*math.Pi/step)))
	}

	r.polyStart = append(r.polyStart, len(r.polys))
	for i := range n {
		phi := -2 * math.Pi * float64(i) / float64(n)
		r.polys = append(r.polys, vec.Vec2{
			X: c.X + radius*math.Cos(phi),
			Y: c.Y + radius*math.Sin(phi),
		})
	}
}

// isCorner reports whether the direction changes from t1 to t2.
func isCorner(t1, t2 vec.Vec2) bool {
	cross := t1.X*t2.Y - t1.Y*t2.X
	return math.Abs(cross) > collinearityThreshold || t1.Dot(t2) < 0
}

func unit(v vec.Vec2) (vec.Vec2, bool) {
	l := v.Length()
	if l < zeroLengthThreshold {
		return vec.Vec2{}, false
	}
	return v.Mul(1 / l), true
}

const (
	// collinearityThreshold is the largest |sin| of the turning angle at
	// which no join is drawn.
	collinearityThreshold = 1e-6

	minDiscVertices = 8
)
