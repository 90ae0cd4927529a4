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

// Package inpaint reconstructs masked pixels of an image from their
// surroundings.
package inpaint

import (
	"errors"
	"image"

	"seehuhn.de/go/isomap/grid"
)

// ErrSize is returned if the mask and the image differ in size.
var ErrSize = errors.New("inpaint: mask size does not match image")

// An Inpainter replaces every pixel of img where mask is set.
// radius is the neighbourhood, in pixels, considered for each pixel.
type Inpainter interface {
	Inpaint(img *image.RGBA, mask *grid.Mask, radius int) error
}

// Diffusion fills the masked region from its boundary inwards.
//
// Pixels are filled in layers.  Each layer consists of the masked pixels
// which touch a known pixel, and each of them becomes the average of the
// known pixels within radius, weighted by inverse squared distance.  The
// result does not depend on the scan order.
type Diffusion struct{}

// Inpaint implements the Inpainter interface.
func (Diffusion) Inpaint(img *image.RGBA, mask *grid.Mask, radius int) error {
	b := img.Bounds()
	if mask.W != b.Dx() || mask.H != b.Dy() || len(mask.Pix) != mask.W*mask.H {
		return ErrSize
	}
	radius = max(radius, 1)
	w, h := mask.W, mask.H

	known := make([]bool, w*h)
	queued := make([]bool, w*h)
	for i, v := range mask.Pix {
		known[i] = v != grid.Foreground
	}

	var front []int
	for i, v := range mask.Pix {
		if v == grid.Foreground && touchesKnown(known, w, h, i) {
			front = append(front, i)
			queued[i] = true
		}
	}

	var values [][4]uint8
	var next []int
	for len(front) > 0 {
		values = values[:0]
		for _, i := range front {
			values = append(values, average(img, known, w, h, i, radius))
		}
		for k, i := range front {
			off := img.PixOffset(b.Min.X+i%w, b.Min.Y+i/w)
			copy(img.Pix[off:off+4], values[k][:])
			known[i] = true
		}

		next = next[:0]
		for _, i := range front {
			x, y := i%w, i/w
			for _, d := range grid.Conn8 {
				nx, ny := x+d[0], y+d[1]
				if nx < 0 || nx >= w || ny < 0 || ny >= h {
					continue
				}
				j := ny*w + nx
				if !known[j] && !queued[j] {
					queued[j] = true
					next = append(next, j)
				}
			}
		}
		front, next = next, front
	}
	return nil
}

func touchesKnown(known []bool, w, h, i int) bool {
	x, y := i%w, i/w
	for _, d := range grid.Conn8 {
		nx, ny := x+d[0], y+d[1]
		if nx >= 0 && nx < w && ny >= 0 && ny < h && known[ny*w+nx] {
			return true
		}
	}
	return false
}

// average returns the weighted mean colour of the known pixels in the
// square window of the given radius around pixel i.
func average(img *image.RGBA, known []bool, w, h, i, radius int) [4]uint8 {
	b := img.Bounds()
	x0, y0 := i%w, i/w

	var sum [4]float64
	var total float64
	for y := max(y0-radius, 0); y <= min(y0+radius, h-1); y++ {
		for x := max(x0-radius, 0); x <= min(x0+radius, w-1); x++ {
			if !known[y*w+x] {
				continue
			}
			dx, dy := x-x0, y-y0
			wt := 1 / float64(dx*dx+dy*dy)
			off := img.PixOffset(b.Min.X+x, b.Min.Y+y)
			for c := range 4 {
				sum[c] += wt * float64(img.Pix[off+c])
			}
			total += wt
		}
	}

	var res [4]uint8
	for c := range 4 {
		res[c] = uint8(sum[c]/total + 0.5)
	}
	return res
}
