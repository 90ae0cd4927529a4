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

import (
	"slices"

	"seehuhn.de/go/isomap/grid"
)

// TraceOption configures Trace.
type TraceOption func(*traceOptions)

type traceOptions struct {
	closeThreshold float64
}

// WithCloseThreshold sets the largest end point distance at which a
// contour is still classified as closed.
func WithCloseThreshold(px float64) TraceOption {
	return func(o *traceOptions) {
		o.closeThreshold = px
	}
}

// Trace extracts every connected curve of foreground pixels from m.
//
// The mask is scanned row by row.  Each foreground pixel found starts a
// new walk, and every pixel accepted by a walk is cleared in m, so that no
// pixel belongs to two contours.  On return m contains no foreground.
//
// The returned contours have dense IDs starting at 1 in discovery order,
// Value == ID, Closed and Bounds set, and Depth == Background.  A contour
// consisting of a single pixel is always open.
func Trace(m *grid.Mask, opts ...TraceOption) []Contour {
	o := traceOptions{closeThreshold: DefaultCloseThreshold}
	for _, opt := range opts {
		opt(&o)
	}

	var contours []Contour
	var stack []Point // reused across walks
	for y := range m.H {
		for x := range m.W {
			if m.Pix[y*m.W+x] != grid.Foreground {
				continue
			}
			var pts []Point
			pts, stack = walk(m, Point{x, y}, stack)

			id := len(contours) + 1
			contours = append(contours, Contour{
				ID:     id,
				Value:  int32(id),
				Points: pts,
				Closed: len(pts) > 1 && pts[0].Dist(pts[len(pts)-1]) <= o.closeThreshold,
				Depth:  Background,
				Bounds: BoundingRect(pts),
			})
		}
	}
	return contours
}

// walk follows the curve through seed.  Each step pushes at most one
// neighbour: the first foreground pixel in the direction-biased order.
// When the walk stalls it restarts once from the seed with the point list
// reversed, so that a seed in the middle of a curve yields the whole curve
// in drawing order.
func walk(m *grid.Mask, seed Point, stack []Point) ([]Point, []Point) {
	var pts []Point

	stack = append(stack[:0], seed)
	prev := seed
	reversed := false

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		idx := p.Y*m.W + p.X
		if m.Pix[idx] == grid.Foreground {
			pts = append(pts, p)
			m.Pix[idx] = 0
		}

		for _, d := range neighbourOrder[DirectionOf(prev, p)] {
			n := Point{p.X + d.X, p.Y + d.Y}
			if m.IsSet(n.X, n.Y) {
				stack = append(stack, n)
				break
			}
		}
		prev = p

		if len(stack) == 0 && !reversed {
			reversed = true
			slices.Reverse(pts)
			stack = append(stack, seed)
			prev = seed
		}
	}
	return pts, stack
}
