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

// Direction is the heading of the trace between two consecutive points.
// Image coordinates are used: Up means decreasing y.
type Direction uint8

// The eight compass headings, plus None for the start of a walk.
const (
	Up Direction = iota
	UpRight
	Right
	DownRight
	Down
	DownLeft
	Left
	UpLeft
	None
)

var directionNames = [...]string{
	Up:        "up",
	UpRight:   "up-right",
	Right:     "right",
	DownRight: "down-right",
	Down:      "down",
	DownLeft:  "down-left",
	Left:      "left",
	UpLeft:    "up-left",
	None:      "none",
}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return "invalid"
}

// DirectionOf returns the heading from prev to next.  Only the signs of
// the coordinate differences matter.
func DirectionOf(prev, next Point) Direction {
	dx, dy := sign(next.X-prev.X), sign(next.Y-prev.Y)
	return headings[dy+1][dx+1]
}

// headings is indexed by [sign(dy)+1][sign(dx)+1].
var headings = [3][3]Direction{
	{UpLeft, Up, UpRight},
	{Left, None, Right},
	{DownLeft, Down, DownRight},
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// neighbourOrder lists, for each heading, the relative offsets in the order
// in which the tracer tries them.  Offsets that continue the heading come
// first, sharp turns come last, and the pixel straight behind is never
// tried.  A walk without heading tries all eight neighbours.
var neighbourOrder = [...][]Point{
	Up:        {{0, -1}, {1, -1}, {-1, -1}, {1, 0}, {-1, 0}, {1, 1}, {-1, 1}},
	UpRight:   {{1, -1}, {0, -1}, {1, 0}, {-1, -1}, {1, 1}, {0, 1}, {-1, 0}},
	Right:     {{1, 0}, {1, -1}, {1, 1}, {0, -1}, {0, 1}, {-1, -1}, {-1, 1}},
	DownRight: {{1, 1}, {1, 0}, {0, 1}, {1, -1}, {-1, 1}, {-1, 0}, {0, -1}},
	Down:      {{0, 1}, {1, 1}, {-1, 1}, {1, 0}, {-1, 0}, {1, -1}, {-1, -1}},
	DownLeft:  {{-1, 1}, {0, 1}, {-1, 0}, {1, 1}, {-1, -1}, {0, -1}, {1, 0}},
	Left:      {{-1, 0}, {-1, 1}, {-1, -1}, {0, 1}, {0, -1}, {1, 1}, {1, -1}},
	UpLeft:    {{-1, -1}, {0, -1}, {-1, 0}, {1, -1}, {-1, 1}, {0, 1}, {1, 0}},
	None:      {{0, -1}, {1, -1}, {-1, -1}, {1, 0}, {-1, 0}, {1, 1}, {-1, 1}, {0, 1}},
}
