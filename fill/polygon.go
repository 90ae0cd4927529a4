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

package fill

import "seehuhn.de/go/isomap/contour"

// PointInPolygon classifies p relative to the closed polygon through pts.
// It returns +1 if p is strictly inside, 0 if p lies on an edge and -1 if
// p is outside.  The last point is implicitly joined to the first.
func PointInPolygon(pts []contour.Point, p contour.Point) int {
	n := len(pts)
	if n == 0 {
		return -1
	}

	inside := false
	for i := range n {
		a := pts[i]
		b := pts[(i+1)%n]

		if onSegment(a, b, p) {
			return 0
		}
		if (a.Y > p.Y) == (b.Y > p.Y) {
			continue
		}
		// The edge crosses the horizontal line through p.  Test whether
		// the crossing lies to the right of p, using integer arithmetic:
		// p.X < a.X + (p.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y).
		lhs := (p.X - a.X) * (b.Y - a.Y)
		rhs := (p.Y - a.Y) * (b.X - a.X)
		if b.Y > a.Y {
			if lhs < rhs {
				inside = !inside
			}
		} else if lhs > rhs {
			inside = !inside
		}
	}
	if inside {
		return 1
	}
	return -1
}

func onSegment(a, b, p contour.Point) bool {
	cross := (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
	if cross != 0 {
		return false
	}
	return min(a.X, b.X) <= p.X && p.X <= max(a.X, b.X) &&
		min(a.Y, b.Y) <= p.Y && p.Y <= max(a.Y, b.Y)
}
