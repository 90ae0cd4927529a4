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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Circle returns a closed path approximating the circle with the given
// centre and radius by four cubic Bézier curves.
func Circle(center vec.Vec2, radius float64) *path.Data {
	k := circleKappa * radius
	x, y := center.X, center.Y
	p := &path.Data{}
	p.MoveTo(vec.Vec2{X: x + radius, Y: y})
	p.CubeTo(
		vec.Vec2{X: x + radius, Y: y + k},
		vec.Vec2{X: x + k, Y: y + radius},
		vec.Vec2{X: x, Y: y + radius})
	p.CubeTo(
		vec.Vec2{X: x - k, Y: y + radius},
		vec.Vec2{X: x - radius, Y: y + k},
		vec.Vec2{X: x - radius, Y: y})
	p.CubeTo(
		vec.Vec2{X: x - radius, Y: y - k},
		vec.Vec2{X: x - k, Y: y - radius},
		vec.Vec2{X: x, Y: y - radius})
	p.CubeTo(
		vec.Vec2{X: x + k, Y: y - radius},
		vec.Vec2{X: x + radius, Y: y - k},
		vec.Vec2{X: x + radius, Y: y})
	p.Close()
	return p
}

// circleKappa is the control point distance for a quarter circle of
// radius 1.
const circleKappa = 0.5522847498
