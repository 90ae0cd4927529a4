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

package noise

import (
	"math"

	"seehuhn.de/go/isomap/grid"
)

// Edges applies 3×3 Sobel operators to f and thresholds the combined
// gradient magnitude.
//
// The absolute x and y responses are each rounded to 8 bits, then
// averaged and rounded again.  A result of 1 is treated as noise and
// cleared, anything larger becomes foreground.
func Edges(f *grid.Field) *grid.Mask {
	m := grid.NewMask(f.W, f.H)
	for y := range f.H {
		for x := range f.W {
			tl, t, tr := f.At(x-1, y-1), f.At(x, y-1), f.At(x+1, y-1)
			l, r := f.At(x-1, y), f.At(x+1, y)
			bl, b, br := f.At(x-1, y+1), f.At(x, y+1), f.At(x+1, y+1)

			gx := (tr + 2*r + br) - (tl + 2*l + bl)
			gy := (bl + 2*b + br) - (tl + 2*t + tr)

			v := saturate(0.5*saturate(math.Abs(gx)) + 0.5*saturate(math.Abs(gy)))
			if v > 1 {
				m.Pix[y*m.W+x] = grid.Foreground
			}
		}
	}
	return m
}

// saturate rounds v half to even and clamps it to [0, 255].
func saturate(v float64) float64 {
	return math.Min(math.Max(math.RoundToEven(v), 0), 255)
}
