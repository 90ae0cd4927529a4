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

import (
	"image"
	"image/color"

	"seehuhn.de/go/isomap/contour"
)

// Sentinel is the canvas colour of pixels which have not been painted yet.
var Sentinel = color.RGBA{A: 0xff}

// DepthScale returns a colour scale spanning depth -1 (the background) to
// the largest depth found in contours.
func DepthScale(contours []contour.Contour, lo, hi color.RGBA) *ColorScale {
	maxDepth := 0
	for _, c := range contours {
		maxDepth = max(maxDepth, c.Depth)
	}
	return NewColorScale(contour.Background, float64(maxDepth), lo, hi)
}

// Filler paints the regions enclosed by contours.
type Filler struct {
	Scale *ColorScale
}

// Fill colours the regions of canvas.
//
// The canvas must have its origin at (0, 0) and must cover the IDMask.
// Unpainted pixels are expected to hold the Sentinel colour and contour
// pixels some other colour.  For every contour a seed pixel is searched in
// the 8-neighbourhood of its points: the seed is not on any contour and
// lies strictly inside the contour's polygon.  The 4-connected region of
// the seed's colour is flood filled with the colour for the contour's
// depth.  Contours without a seed are skipped.  Finally every remaining
// region of Sentinel colour is filled with the background colour.
func (f *Filler) Fill(canvas *image.RGBA, ids *contour.IDMask, contours []contour.Contour) {
	for i := range contours {
		c := &contours[i]
		seed, ok := findSeed(ids, c)
		if !ok {
			continue
		}
		floodFill(canvas, seed, f.Scale.Get(float64(c.Depth)))
	}

	bg := f.Scale.Get(contour.Background)
	b := canvas.Rect
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if canvas.RGBAAt(x, y) == Sentinel {
				floodFill(canvas, contour.Point{X: x, Y: y}, bg)
			}
		}
	}
}

func findSeed(ids *contour.IDMask, c *contour.Contour) (contour.Point, bool) {
	for _, pt := range c.Points {
		for dx := -1; dx <= 1; dx++ {
			for dy := -1; dy <= 1; dy++ {
				if dx == 0 && dy == 0 {
					continue
				}
				p := contour.Point{X: pt.X + dx, Y: pt.Y + dy}
				if p.X < 0 || p.X >= ids.W || p.Y < 0 || p.Y >= ids.H {
					continue
				}
				if ids.At(p.X, p.Y) != 0 {
					continue
				}
				if PointInPolygon(c.Points, p) > 0 {
					return p, true
				}
			}
		}
	}
	return contour.Point{}, false
}

// floodFill replaces the 4-connected region of pixels sharing the colour
// of seed by col.  It fills whole horizontal spans and keeps the pending
// spans on an explicit stack.
func floodFill(img *image.RGBA, seed contour.Point, col color.RGBA) {
	b := img.Rect
	if !(image.Point{X: seed.X, Y: seed.Y}).In(b) {
		return
	}
	old := img.RGBAAt(seed.X, seed.Y)
	if old == col {
		return
	}

	stack := []contour.Point{seed}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if img.RGBAAt(p.X, p.Y) != old {
			continue
		}

		x0 := p.X
		for x0 > b.Min.X && img.RGBAAt(x0-1, p.Y) == old {
			x0--
		}
		x1 := p.X
		for x1 < b.Max.X-1 && img.RGBAAt(x1+1, p.Y) == old {
			x1++
		}

		for x := x0; x <= x1; x++ {
			img.SetRGBA(x, p.Y, col)
		}

		for _, y := range [2]int{p.Y - 1, p.Y + 1} {
			if y < b.Min.Y || y >= b.Max.Y {
				continue
			}
			inSpan := false
			for x := x0; x <= x1; x++ {
				match := img.RGBAAt(x, y) == old
				if match && !inSpan {
					stack = append(stack, contour.Point{X: x, Y: y})
				}
				inSpan = match
			}
		}
	}
}
