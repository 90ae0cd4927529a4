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

package testcases

import (
	"seehuhn.de/go/isomap/grid"
)

// TestCase defines a single thinned boundary mask together with the
// contours expected from it.
type TestCase struct {
	Name   string  // lowercase a-z and _ only
	Width  int     // mask width in pixels
	Height int     // mask height in pixels
	Shapes []Shape // one-pixel-wide curves drawn into the mask

	// Closed and Depths list the expected contours in trace order.  Nil
	// slices are not checked.
	Closed []bool
	Depths []int

	// Approximate marks cases where Depths records the result of the
	// nesting heuristic rather than the true nesting.
	Approximate bool
}

// Mask draws the shapes of tc into a new mask.
func (tc TestCase) Mask() *grid.Mask {
	m := grid.NewMask(tc.Width, tc.Height)
	for _, s := range tc.Shapes {
		s.draw(m)
	}
	return m
}

// Shape is a curve which can be drawn into a mask.
type Shape interface {
	draw(m *grid.Mask)
}

// Ring is the one-pixel outline of the axis-aligned box with corners
// (X0, Y0) and (X1, Y1), both inclusive.
type Ring struct {
	X0, Y0, X1, Y1 int
}

func (r Ring) draw(m *grid.Mask) {
	for x := r.X0; x <= r.X1; x++ {
		m.Set(x, r.Y0, grid.Foreground)
		m.Set(x, r.Y1, grid.Foreground)
	}
	for y := r.Y0; y <= r.Y1; y++ {
		m.Set(r.X0, y, grid.Foreground)
		m.Set(r.X1, y, grid.Foreground)
	}
}

// Polyline connects consecutive vertices by 8-connected lines.
// If Closed is set, the last vertex is joined to the first.
type Polyline struct {
	Vertices [][2]int
	Closed   bool
}

func (p Polyline) draw(m *grid.Mask) {
	n := len(p.Vertices)
	if n == 1 {
		m.Set(p.Vertices[0][0], p.Vertices[0][1], grid.Foreground)
	}
	for i := 1; i < n; i++ {
		line(m, p.Vertices[i-1], p.Vertices[i])
	}
	if p.Closed && n > 2 {
		line(m, p.Vertices[n-1], p.Vertices[0])
	}
}

// Dot is a single pixel.
type Dot struct {
	X, Y int
}

func (d Dot) draw(m *grid.Mask) {
	m.Set(d.X, d.Y, grid.Foreground)
}

// line draws a Bresenham line from a to b, both end points included.
func line(m *grid.Mask, a, b [2]int) {
	x0, y0 := a[0], a[1]
	x1, y1 := b[0], b[1]
	dx, sx := abs(x1-x0), 1
	if x1 < x0 {
		sx = -1
	}
	dy, sy := -abs(y1-y0), 1
	if y1 < y0 {
		sy = -1
	}
	e := dx + dy
	for {
		m.Set(x0, y0, grid.Foreground)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
