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

// Package render draws anti-aliased vector shapes onto RGBA canvases.
//
// Shapes are given as seehuhn.de/go/geom/path data in pixel coordinates,
// with y pointing down.  A Rasteriser turns a path into per-row coverage
// values, and a Canvas blends coverage into an image.
package render

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Emit receives the coverage of pixels xMin, xMin+1, ... in row y.
// The coverage slice is only valid for the duration of the call.
type Emit func(y, xMin int, coverage []float32)

// edge is a non-horizontal line segment in pixel coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

func (e *edge) yMin() float64 { return min(e.y0, e.y1) }
func (e *edge) yMax() float64 { return max(e.y0, e.y1) }

// Rasteriser converts paths to pixel coverage.
// A Rasteriser can be reused for any number of paths; its buffers grow
// as needed and are never released.
type Rasteriser struct {
	// Clip is the region receiving output.  It must have integer
	// coordinates.
	Clip rect.Rect

	// Flatness is the maximal distance, in pixels, between a curve and
	// the line segments used to approximate it.
	Flatness float64

	// Width is the stroke width in pixels.
	Width float64

	// Cap is the shape drawn at the ends of open stroked subpaths.
	Cap graphics.LineCapStyle

	cover     []float32
	area      []float32
	edges     []edge
	active    []int
	crossings []float64

	// bounding box of the edges
	bboxEmpty    bool
	bxMin, bxMax float64
	byMin, byMax float64

	// flattened stroke subpaths
	pts       []vec.Vec2
	subStart  []int
	subClosed []bool

	// stroke outline polygons
	polys     []vec.Vec2
	polyStart []int
}

// NewRasteriser returns a Rasteriser for the given clip rectangle, with a
// stroke width of one pixel and round caps.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	r := &Rasteriser{}
	r.Reset(clip)
	return r
}

// Reset restores the default parameters and sets a new clip rectangle.
// Buffer capacity is kept.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.Width = 1
	r.Cap = graphics.LineCapRound
}

// FillNonZero fills p using the nonzero winding rule.
func (r *Rasteriser) FillNonZero(p *path.Data, emit Emit) {
	r.beginEdges()
	r.pathEdges(p)
	r.sweep(fillNonZero, emit)
}

// FillEvenOdd fills p using the even-odd rule.
func (r *Rasteriser) FillEvenOdd(p *path.Data, emit Emit) {
	r.beginEdges()
	r.pathEdges(p)
	r.sweep(fillEvenOdd, emit)
}

type fillRule int

const (
	fillNonZero fillRule = iota
	fillEvenOdd
)

func (r *Rasteriser) beginEdges() {
	r.edges = r.edges[:0]
	r.bboxEmpty = true
}

// pathEdges flattens p into the edge list.  Open subpaths are closed
// implicitly.
func (r *Rasteriser) pathEdges(p *path.Data) {
	var cur, start vec.Vec2
	open := false
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if open && cur != start {
				r.addEdge(cur, start)
			}
			cur = p.Coords[k]
			start = cur
			open = true
			k++
		case path.CmdLineTo:
			r.addEdge(cur, p.Coords[k])
			cur = p.Coords[k]
			k++
		case path.CmdQuadTo:
			r.flattenQuadratic(cur, p.Coords[k], p.Coords[k+1], r.addEdge)
			cur = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			r.flattenCubic(cur, p.Coords[k], p.Coords[k+1], p.Coords[k+2], r.addEdge)
			cur = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			if cur != start {
				r.addEdge(cur, start)
			}
			cur = start
			open = false
		}
	}
	if open && cur != start {
		r.addEdge(cur, start)
	}
}

// polygonEdges adds the edges of a closed polygon.
func (r *Rasteriser) polygonEdges(poly []vec.Vec2) {
	if len(poly) < 3 {
		return
	}
	for i := 1; i < len(poly); i++ {
		r.addEdge(poly[i-1], poly[i])
	}
	r.addEdge(poly[len(poly)-1], poly[0])
}

func (r *Rasteriser) addEdge(a, b vec.Vec2) {
	dy := b.Y - a.Y
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}
	r.edges = append(r.edges, edge{
		x0: a.X, y0: a.Y,
		x1: b.X, y1: b.Y,
		dxdy: (b.X - a.X) / dy,
	})

	if r.bboxEmpty {
		r.bxMin, r.bxMax = a.X, a.X
		r.byMin, r.byMax = a.Y, a.Y
		r.bboxEmpty = false
	}
	r.bxMin = min(r.bxMin, a.X, b.X)
	r.bxMax = max(r.bxMax, a.X, b.X)
	r.byMin = min(r.byMin, a.Y, b.Y)
	r.byMax = max(r.byMax, a.Y, b.Y)
}

// flattenQuadratic approximates the quadratic Bézier curve p0, p1, p2 by
// line segments.
func (r *Rasteriser) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(a, b vec.Vec2)) {
	dev := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25).Length()
	n := 1
	if dev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / r.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
}

// flattenCubic approximates the cubic Bézier curve p0, ..., p3 by line
// segments.  The number of segments follows Wang's formula.
func (r *Rasteriser) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(a, b vec.Vec2)) {
	d1 := p0.Sub(p1.Mul(2)).Add(p2).Length()
	d2 := p1.Sub(p2.Mul(2)).Add(p3).Length()
	n := 1
	if m := max(d1, d2); m > 0 {
		n = max(1, int(math.Ceil(math.Sqrt(3*m/(4*r.Flatness)))))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		emit(prev, pt)
		prev = pt
	}
}

// sweep rasterises the collected edges scanline by scanline, using an
// active edge list.
//
// For every pixel two values are accumulated: cover, the signed vertical
// extent of the edges crossing the pixel, and area, the part of that
// extent weighted by the horizontal distance from the crossing to the
// right pixel border.  Integrating cover from the left and adding area
// gives the signed coverage of each pixel.
func (r *Rasteriser) sweep(rule fillRule, emit Emit) {
	if len(r.edges) == 0 {
		return
	}
	xMin := max(int(math.Floor(r.bxMin)), int(r.Clip.LLx))
	xMax := min(int(math.Floor(r.bxMax))+1, int(r.Clip.URx))
	yMin := max(int(math.Floor(r.byMin)), int(r.Clip.LLy))
	yMax := min(int(math.Floor(r.byMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return
	}
	width := xMax - xMin

	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.yMin(), b.yMin())
	})
	r.active = r.active[:0]
	next := 0

	for y := yMin; y < yMax; y++ {
		top, bot := float64(y), float64(y+1)

		for next < len(r.edges) && r.edges[next].yMin() < bot {
			r.active = append(r.active, next)
			next++
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.active); {
			e := &r.edges[r.active[i]]
			if e.yMax() <= top {
				r.active[i] = r.active[len(r.active)-1]
				r.active = r.active[:len(r.active)-1]
				continue
			}
			if r.accumulate(e, y, xMin, xMax) {
				touched = true
			}
			i++
		}
		if !touched {
			continue
		}

		if rule == fillNonZero {
			integrateNonZero(r.cover, r.area)
		} else {
			integrateEvenOdd(r.cover, r.area)
		}
		if cov, off := trimZeros(r.cover); cov != nil {
			emit(y, xMin+off, cov)
		}
	}
}

// accumulate adds the contribution of e within row y to the cover and
// area buffers, which are indexed by x - xMin.  Parts of the edge left of
// the buffer count as fully covering pixel xMin.  It reports whether the
// edge intersects the row.
func (r *Rasteriser) accumulate(e *edge, y, xMin, xMax int) bool {
	top := max(float64(y), e.yMin())
	bot := min(float64(y+1), e.yMax())
	if bot <= top {
		return false
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xTop := e.x0 + e.dxdy*(top-e.y0)
	xBot := e.x0 + e.dxdy*(bot-e.y0)
	left := int(math.Floor(min(xTop, xBot)))
	right := int(math.Floor(max(xTop, xBot)))

	if left >= xMax {
		return true
	}

	// Split the edge where it crosses vertical pixel borders.
	r.crossings = append(r.crossings[:0], top, bot)
	if left != right {
		dydx := 1 / e.dxdy
		for x := left + 1; x <= right; x++ {
			yx := e.y0 + dydx*(float64(x)-e.x0)
			if yx > top && yx < bot {
				r.crossings = append(r.crossings, yx)
			}
		}
		slices.Sort(r.crossings)
	}

	for i := 1; i < len(r.crossings); i++ {
		y0, y1 := r.crossings[i-1], r.crossings[i]
		if y1 <= y0 {
			continue
		}
		c := sign * float32(y1-y0)
		xm := e.x0 + e.dxdy*((y0+y1)/2-e.y0)
		pix := int(math.Floor(xm))

		switch {
		case pix < xMin:
			r.cover[0] += c
			r.area[0] += c
		case pix < xMax:
			k := pix - xMin
			r.cover[k] += c
			r.area[k] += c * float32(1-(xm-float64(pix)))
		}
	}
	return true
}

// integrateNonZero turns accumulated cover and area into coverage under
// the nonzero winding rule.  The result is stored in cover.
func integrateNonZero(cover, area []float32) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		cover[i] = min(v, 1)
	}
}

// integrateEvenOdd turns accumulated cover and area into coverage under
// the even-odd rule.  The result is stored in cover.
func integrateEvenOdd(cover, area []float32) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		v -= 2 * float32(int(v/2))
		if v > 1 {
			v = 2 - v
		}
		cover[i] = v
	}
}

// trimZeros strips leading and trailing zeros.  It returns nil if all
// values are zero.
func trimZeros(cov []float32) ([]float32, int) {
	lo, hi := 0, len(cov)
	for lo < hi && cov[lo] == 0 {
		lo++
	}
	if lo == hi {
		return nil, 0
	}
	for cov[hi-1] == 0 {
		hi--
	}
	return cov[lo:hi], lo
}

const (
	// defaultFlatness is below the threshold of visual perception.
	defaultFlatness = 0.25

	// horizontalEdgeThreshold is the smallest vertical extent of an edge
	// which contributes to coverage.
	horizontalEdgeThreshold = 1e-10

	// zeroLengthThreshold is the smallest length of a stroked segment.
	zeroLengthThreshold = 1e-10
)
