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

package export

import (
	"image"
	"io"

	"github.com/gotranspile/gotrace"

	"seehuhn.de/go/isomap/grid"
)

// TraceMaskSVG vectorises the boundary mask m with potrace and writes the
// result as SVG.  Mask pixels become the traced (dark) shapes.
func TraceMaskSVG(w io.Writer, m *grid.Mask) error {
	// potrace traces dark pixels on a light background
	img := image.NewGray(image.Rect(0, 0, m.W, m.H))
	for i, v := range m.Pix {
		if v == grid.Foreground {
			img.Pix[i] = 0
		} else {
			img.Pix[i] = 0xff
		}
	}

	bm := gotrace.BitmapFromGray(img, nil)
	paths, err := gotrace.Trace(bm, nil)
	if err != nil {
		return err
	}

	return gotrace.Render("svg", nil, w, paths, m.W, m.H)
}
