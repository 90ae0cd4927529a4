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


//go:build gocv

package inpaint

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"

	"seehuhn.de/go/isomap/grid"
)

// OpenCV inpaints with the photo module of OpenCV, using the method by
// Telea (2004).
type OpenCV struct{}

// Inpaint implements the Inpainter interface.  The alpha channel is
// kept as it is.
func (OpenCV) Inpaint(img *image.RGBA, mask *grid.Mask, radius int) error {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if mask.W != w || mask.H != h || len(mask.Pix) != w*h {
		return ErrSize
	}
	if w == 0 || h == 0 || mask.Count() == 0 {
		return nil
	}

	rgb := make([]byte, 0, 3*w*h)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.Pix[img.PixOffset(b.Min.X, y):]
		for x := range w {
			rgb = append(rgb, row[4*x], row[4*x+1], row[4*x+2])
		}
	}

	src, err := gocv.NewMatFromBytes(h, w, gocv.MatTypeCV8UC3, rgb)
	if err != nil {
		return fmt.Errorf("inpaint: %w", err)
	}
	defer src.Close()
	m, err := gocv.NewMatFromBytes(h, w, gocv.MatTypeCV8UC1, mask.Pix)
	if err != nil {
		return fmt.Errorf("inpaint: %w", err)
	}
	defer m.Close()

	dst := gocv.NewMat()
	defer dst.Close()
	gocv.Inpaint(src, m, &dst, float32(max(radius, 1)), gocv.Telea)

	out := dst.ToBytes()
	for y := range h {
		row := img.Pix[img.PixOffset(b.Min.X, b.Min.Y+y):]
		for x := range w {
			k := 3 * (y*w + x)
			copy(row[4*x:4*x+3], out[k:k+3])
		}
	}
	return nil
}
