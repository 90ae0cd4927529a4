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

package contour

// IDMask records, for every pixel, the Value of the contour passing
// through it, or 0.
type IDMask struct {
	W, H int
	Pix  []int32
}

// NewIDMask paints the points of all contours into a new w×h mask.
// Points outside the mask are skipped.
func NewIDMask(w, h int, contours []Contour) *IDMask {
	w, h = max(w, 0), max(h, 0)
	ids := &IDMask{W: w, H: h, Pix: make([]int32, w*h)}
	for i := range contours {
		c := &contours[i]
		for _, p := range c.Points {
			if p.X >= 0 && p.X < w && p.Y >= 0 && p.Y < h {
				ids.Pix[p.Y*w+p.X] = c.Value
			}
		}
	}
	return ids
}

// At returns the contour value at (x, y), or 0 outside the mask.
func (m *IDMask) At(x, y int) int32 {
	if x < 0 || x >= m.W || y < 0 || y >= m.H {
		return 0
	}
	return m.Pix[y*m.W+x]
}

// ResolveDepths sets the Depth of every contour.
//
// For a contour C the row through its first point is scanned from the left
// edge to the right edge.  Each time the scanline meets the value of
// another contour which differs from the last value toggled, that contour
// is toggled in a set for the side of C's first point on which this
// happened.  Background pixels and C's own pixels are skipped and leave
// the last toggled value unchanged.  A contour left in
// either set was crossed an odd number of times on that side and may
// enclose C.  Candidates whose bounding box does not contain C's bounding
// box are discarded, and the number of remaining candidates is the depth.
//
// The bounding box test is necessary but not sufficient: for concave
// enclosures the result can be too large.  Contours are looked up by
// Value, so contours must hold dense values 1..len(contours) in order, as
// returned by Trace.
func ResolveDepths(ids *IDMask, contours []Contour) {
	for i := range contours {
		c := &contours[i]
		seed := c.Points[0]
		if seed.Y < 0 || seed.Y >= ids.H {
			c.Depth = 0
			continue
		}

		left := make(map[int32]bool)
		right := make(map[int32]bool)
		row := ids.Pix[seed.Y*ids.W : (seed.Y+1)*ids.W]

		// prev is the last toggled value
		var prev int32
		for x, v := range row {
			if v == prev || v == 0 || v == c.Value {
				continue
			}
			prev = v
			side := right
			if x < seed.X {
				side = left
			}
			if side[v] {
				delete(side, v)
			} else {
				side[v] = true
			}
		}

		for v := range right {
			left[v] = true
		}
		depth := 0
		for v := range left {
			if int(v) > len(contours) {
				continue
			}
			if contours[v-1].Bounds.Contains(c.Bounds) {
				depth++
			}
		}
		c.Depth = depth
	}
}
