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
	"image"
	"image/color"
	"image/draw"

	"seehuhn.de/go/geom/rect"
)

// Canvas is an RGBA image which can receive coverage from a Rasteriser.
type Canvas struct {
	Img *image.RGBA
}

// NewCanvas returns a w×h canvas filled with bg.
func NewCanvas(w, h int, bg color.Color) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	return &Canvas{Img: img}
}

// Clip returns the image bounds as a clip rectangle for a Rasteriser.
func (c *Canvas) Clip() rect.Rect {
	b := c.Img.Bounds()
	return rect.Rect{
		LLx: float64(b.Min.X),
		LLy: float64(b.Min.Y),
		URx: float64(b.Max.X),
		URy: float64(b.Max.Y),
	}
}

// Paint returns an Emit function which blends col over the canvas,
// weighted by coverage.  Pixels inside any of the exclude rectangles are
// left unchanged.
func (c *Canvas) Paint(col color.Color, exclude ...image.Rectangle) Emit {
	sr, sg, sb, sa := col.RGBA()
	img := c.Img
	return func(y, xMin int, coverage []float32) {
		for i, cov := range coverage {
			x := xMin + i
			if cov <= 0 || excluded(x, y, exclude) {
				continue
			}
			a := uint32(min(cov, 1)*0xffff + 0.5)

			// source alpha, scaled by coverage, in 0..0xffff
			ca := sa * a / 0xffff
			k := 0xffff - ca

			off := img.PixOffset(x, y)
			p := img.Pix[off : off+4 : off+4]
			p[0] = blend(p[0], sr, a, k)
			p[1] = blend(p[1], sg, a, k)
			p[2] = blend(p[2], sb, a, k)
			p[3] = blend(p[3], sa, a, k)
		}
	}
}

// blend composites a premultiplied source channel s, scaled by coverage a,
// over the 8-bit destination channel d.  k is the remaining destination
// weight.  All weights are in 0..0xffff.
func blend(d uint8, s, a, k uint32) uint8 {
	v := (uint32(d)*0x101*k/0xffff + s*a/0xffff)
	return uint8(v >> 8)
}

func excluded(x, y int, rects []image.Rectangle) bool {
	pt := image.Point{X: x, Y: y}
	for _, r := range rects {
		if pt.In(r) {
			return true
		}
	}
	return false
}
