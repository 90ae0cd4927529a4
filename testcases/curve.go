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

var emptyCases = []TestCase{
	{
		Name:   "blank",
		Width:  16,
		Height: 16,
		Closed: []bool{},
		Depths: []int{},
	},
	{
		Name:   "dot",
		Width:  12,
		Height: 12,
		Shapes: []Shape{Dot{5, 5}},
		Closed: []bool{false},
		Depths: []int{0},
	},
}

var curveCases = []TestCase{
	{
		Name:   "line",
		Width:  16,
		Height: 12,
		Shapes: []Shape{Polyline{Vertices: [][2]int{{2, 5}, {12, 5}}}},
		Closed: []bool{false},
		Depths: []int{0},
	},
	{
		// end points two pixels apart count as closed
		Name:   "short_line",
		Width:  8,
		Height: 8,
		Shapes: []Shape{Polyline{Vertices: [][2]int{{2, 5}, {4, 5}}}},
		Closed: []bool{true},
		Depths: []int{0},
	},
	{
		// the trace starts at the apex, in the middle of the curve
		Name:   "arch",
		Width:  17,
		Height: 13,
		Shapes: []Shape{Polyline{Vertices: [][2]int{{2, 10}, {8, 4}, {14, 10}}}},
		Closed: []bool{false},
		Depths: []int{0},
	},
	{
		Name:   "diamond",
		Width:  21,
		Height: 21,
		Shapes: []Shape{Polyline{
			Vertices: [][2]int{{10, 2}, {18, 10}, {10, 18}, {2, 10}},
			Closed:   true,
		}},
		Closed: []bool{true},
		Depths: []int{0},
	},
	{
		Name:   "square",
		Width:  12,
		Height: 12,
		Shapes: []Shape{Ring{2, 2, 9, 9}},
		Closed: []bool{true},
		Depths: []int{0},
	},
}
