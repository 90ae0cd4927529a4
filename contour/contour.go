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

// Package contour extracts ordered isolines from a thinned binary mask and
// computes how deeply each one is nested inside the others.
//
// The three steps must run in order on a single goroutine:
//
//	cs := contour.Trace(mask)              // consumes mask
//	ids := contour.NewIDMask(w, h, cs)     // frozen afterwards
//	contour.ResolveDepths(ids, cs)
package contour

import "math"

// DefaultCloseThreshold is the largest distance, in pixels, between the
// first and the last point of a closed contour.
const DefaultCloseThreshold = 3.0

// Background is the depth of the region outside all contours.
const Background = -1

// Point is an integer pixel coordinate.
type Point struct {
	X, Y int
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(float64(p.X-q.X), float64(p.Y-q.Y))
}

// Rect is an axis-aligned pixel box.  Both corners are inclusive.
type Rect struct {
	Min, Max Point
}

// Contains reports whether r fully contains s.
func (r Rect) Contains(s Rect) bool {
	return r.Min.X <= s.Min.X && r.Min.Y <= s.Min.Y &&
		r.Max.X >= s.Max.X && r.Max.Y >= s.Max.Y
}

// BoundingRect returns the smallest Rect covering pts.
// pts must not be empty.
func BoundingRect(pts []Point) Rect {
	r := Rect{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		r.Min.X = min(r.Min.X, p.X)
		r.Min.Y = min(r.Min.Y, p.Y)
		r.Max.X = max(r.Max.X, p.X)
		r.Max.Y = max(r.Max.Y, p.Y)
	}
	return r
}

// Contour is one traced isoline.
//
// The order of Points is the trace order.  It defines the direction of the
// curve and which points are adjacent when the curve is drawn.
type Contour struct {
	// ID is the 1-based discovery order.
	ID int

	// Value is the label written into the IDMask.  It equals ID.
	Value int32

	Points []Point

	// Closed is true if the end points are within the close threshold.
	Closed bool

	// Depth is the number of enclosing contours.  It is Background until
	// ResolveDepths has run.
	Depth int

	Bounds Rect
}
