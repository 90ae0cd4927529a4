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

// Package grid provides the owned, mutable 2D buffers shared by the
// contour pipeline: scalar fields and binary masks.
//
// All grids are stored row-major in a flat slice.  Index (x, y) maps to
// y*W + x.  Coordinates outside the grid are never stored; the accessors
// report them as background.
package grid

import (
	"image"
	"image/color"
)

// Foreground is the mask value of a set pixel.
const Foreground uint8 = 255

// Mask is a binary raster with values 0 (background) and 255 (foreground).
type Mask struct {
	W, H int
	Pix  []uint8
}

// NewMask returns an all-background mask.  Negative sizes are clamped to 0.
func NewMask(w, h int) *Mask {
	w, h = max(w, 0), max(h, 0)
	return &Mask{W: w, H: h, Pix: make([]uint8, w*h)}
}

// InBounds reports whether (x, y) lies inside the mask.
func (m *Mask) InBounds(x, y int) bool {
	return x >= 0 && x < m.W && y >= 0 && y < m.H
}

// At returns the value at (x, y), or 0 outside the mask.
func (m *Mask) At(x, y int) uint8 {
	if !m.InBounds(x, y) {
		return 0
	}
	return m.Pix[y*m.W+x]
}

// Set stores v at (x, y).  Writes outside the mask are ignored.
func (m *Mask) Set(x, y int, v uint8) {
	if m.InBounds(x, y) {
		m.Pix[y*m.W+x] = v
	}
}

// IsSet reports whether (x, y) is a foreground pixel.
func (m *Mask) IsSet(x, y int) bool {
	return m.At(x, y) == Foreground
}

// Count returns the number of foreground pixels.
func (m *Mask) Count() int {
	n := 0
	for _, v := range m.Pix {
		if v == Foreground {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of m.
func (m *Mask) Clone() *Mask {
	c := &Mask{W: m.W, H: m.H, Pix: make([]uint8, len(m.Pix))}
	copy(c.Pix, m.Pix)
	return c
}

// Crop returns a copy of m with border pixels removed on every side.
// If the mask is too small, the result is empty.
func (m *Mask) Crop(border int) *Mask {
	w, h := m.W-2*border, m.H-2*border
	if w <= 0 || h <= 0 {
		return NewMask(0, 0)
	}
	c := NewMask(w, h)
	for y := range h {
		copy(c.Pix[y*w:(y+1)*w], m.Pix[(y+border)*m.W+border:])
	}
	return c
}

// Gray converts the mask to an 8-bit grayscale image.
func (m *Mask) Gray() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, m.W, m.H))
	for y := range m.H {
		copy(img.Pix[y*img.Stride:y*img.Stride+m.W], m.Pix[y*m.W:(y+1)*m.W])
	}
	return img
}

// MaskFromImage thresholds img at mid-gray: pixels brighter than 127
// become foreground.
func MaskFromImage(img image.Image) *Mask {
	b := img.Bounds()
	m := NewMask(b.Dx(), b.Dy())
	for y := range m.H {
		for x := range m.W {
			g := color.GrayModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.Gray)
			if g.Y > 127 {
				m.Pix[y*m.W+x] = Foreground
			}
		}
	}
	return m
}

// Field is a 2D grid of real values, one per pixel.
type Field struct {
	W, H int
	Val  []float64
}

// NewField returns a zero field.  Negative sizes are clamped to 0.
func NewField(w, h int) *Field {
	w, h = max(w, 0), max(h, 0)
	return &Field{W: w, H: h, Val: make([]float64, w*h)}
}

// At returns the value at (x, y) with reflect-101 border handling, so that
// derivative kernels can read one pixel past the edge.
func (f *Field) At(x, y int) float64 {
	return f.Val[reflect101(y, f.H)*f.W+reflect101(x, f.W)]
}

// reflect101 maps i into [0, n) by mirroring without repeating the edge
// sample: -1 -> 1, n -> n-2.
func reflect101(i, n int) int {
	if n == 1 {
		return 0
	}
	for i < 0 || i >= n {
		if i < 0 {
			i = -i
		}
		if i >= n {
			i = 2*n - 2 - i
		}
	}
	return i
}

// Conn4 lists the orthogonal neighbour offsets: N, E, S, W.
var Conn4 = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Conn8 lists all eight neighbour offsets clockwise from N.
var Conn8 = [8][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
