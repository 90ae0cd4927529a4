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

var nestingCases = []TestCase{
	{
		Name:   "concentric",
		Width:  40,
		Height: 40,
		Shapes: []Shape{
			Ring{2, 2, 37, 37},
			Ring{8, 8, 31, 31},
			Ring{14, 14, 25, 25},
		},
		Closed: []bool{true, true, true},
		Depths: []int{0, 1, 2},
	},
	{
		Name:   "disjoint",
		Width:  40,
		Height: 20,
		Shapes: []Shape{
			Ring{2, 2, 15, 15},
			Ring{20, 4, 35, 15},
		},
		Closed: []bool{true, true},
		Depths: []int{0, 0},
	},
	{
		Name:   "ring_in_diamond",
		Width:  41,
		Height: 41,
		Shapes: []Shape{
			Polyline{
				Vertices: [][2]int{{20, 2}, {38, 20}, {20, 38}, {2, 20}},
				Closed:   true,
			},
			Ring{16, 16, 24, 24},
		},
		Closed: []bool{true, true},
		Depths: []int{0, 1},
	},
	{
		Name:   "line_in_ring",
		Width:  24,
		Height: 24,
		Shapes: []Shape{
			Ring{2, 2, 21, 21},
			Polyline{Vertices: [][2]int{{6, 10}, {16, 10}}},
		},
		Closed: []bool{true, false},
		Depths: []int{0, 1},
	},
	{
		// A ring in the notch of a U shape, away from the rim.  The
		// scanline meets the U twice on the left, with only background in
		// between, so the U is toggled once and the ring is reported as
		// enclosed although it is not.
		Name:   "notch_below_rim",
		Width:  35,
		Height: 25,
		Shapes: []Shape{
			uShape,
			Ring{15, 8, 19, 12},
		},
		Closed:      []bool{true, true},
		Depths:      []int{0, 1},
		Approximate: true,
	},
	{
		// The scanline through the inner ring runs along the top edge of
		// the left arm.  The ring is reported as enclosed although it is
		// not.
		Name:   "notch_on_rim",
		Width:  35,
		Height: 25,
		Shapes: []Shape{
			uShape,
			Ring{15, 5, 19, 9},
		},
		Closed:      []bool{true, true},
		Depths:      []int{0, 1},
		Approximate: true,
	},
	{
		// The bounding box of the open hook contains the ring.  The
		// scanline through the ring meets the hook twice on the right,
		// with a gap in between, and this counts as a single crossing.
		Name:   "ring_beside_hook",
		Width:  34,
		Height: 24,
		Shapes: []Shape{
			Polyline{Vertices: [][2]int{{4, 2}, {30, 2}, {30, 20}, {20, 20}, {20, 6}}},
			Ring{8, 8, 14, 14},
		},
		Closed:      []bool{false, true},
		Depths:      []int{0, 1},
		Approximate: true,
	},
}

// uShape is a closed outline with a notch open to the top.  The left arm
// is shorter than the right arm.
var uShape = Polyline{
	Vertices: [][2]int{
		{2, 6}, {12, 6}, {12, 14}, {22, 14}, {22, 2}, {32, 2}, {32, 22}, {2, 22},
	},
	Closed: true,
}
