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

package thin

import (
	"fmt"

	"gocv.io/x/gocv"
	"gocv.io/x/gocv/contrib"

	"seehuhn.de/go/isomap/grid"
)

// OpenCV thins masks with the ximgproc module of OpenCV.
type OpenCV struct {
	Type contrib.ThinningTypes
}

// Thin implements the Skeletonizer interface.
func (o OpenCV) Thin(m *grid.Mask) (*grid.Mask, error) {
	if len(m.Pix) != m.W*m.H {
		return nil, ErrSize
	}
	if m.W == 0 || m.H == 0 {
		return grid.NewMask(m.W, m.H), nil
	}

	src, err := gocv.NewMatFromBytes(m.H, m.W, gocv.MatTypeCV8UC1, m.Pix)
	if err != nil {
		return nil, fmt.Errorf("thin: %w", err)
	}
	defer src.Close()

	dst := gocv.NewMat()
	defer dst.Close()
	contrib.Thinning(src, &dst, o.Type)

	out := grid.NewMask(m.W, m.H)
	copy(out.Pix, dst.ToBytes())
	return out, nil
}
