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

// Package thin reduces boundary masks to curves of one pixel width.
package thin

import (
	"errors"

	"seehuhn.de/go/isomap/grid"
)

// ErrSize is returned for masks whose pixel slice does not match their
// dimensions.
var ErrSize = errors.New("thin: mask size does not match pixel data")

// A Skeletonizer thins a binary mask.  The input is not modified.
type Skeletonizer interface {
	Thin(m *grid.Mask) (*grid.Mask, error)
}

// GuoHall implements the two-subiteration thinning algorithm by Guo and
// Hall (1989).  The outermost pixel frame of the mask is never changed.
type GuoHall struct{}

// Thin implements the Skeletonizer interface.
func (GuoHall) Thin(m *grid.Mask) (*grid.Mask, error) {
	if len(m.Pix) != m.W*m.H {
		return nil, ErrSize
	}

	w, h := m.W, m.H
	img := make([]uint8, len(m.Pix))
	for i, v := range m.Pix {
		if v == grid.Foreground {
			img[i] = 1
		}
	}

	var marks []int
	for {
		changed := false
		for iter := range 2 {
			marks = marks[:0]
			for y := 1; y < h-1; y++ {
				for x := 1; x < w-1; x++ {
					i := y*w + x
					if img[i] == 0 {
						continue
					}
					p2 := img[i-w]
					p3 := img[i-w+1]
					p4 := img[i+1]
					p5 := img[i+w+1]
					p6 := img[i+w]
					p7 := img[i+w-1]
					p8 := img[i-1]
					p9 := img[i-w-1]

					c := (not(p2) & (p3 | p4)) + (not(p4) & (p5 | p6)) +
						(not(p6) & (p7 | p8)) + (not(p8) & (p9 | p2))
					n1 := (p9 | p2) + (p3 | p4) + (p5 | p6) + (p7 | p8)
					n2 := (p2 | p3) + (p4 | p5) + (p6 | p7) + (p8 | p9)
					n := min(n1, n2)

					var keep uint8
					if iter == 0 {
						keep = (p6 | p7 | not(p9)) & p8
					} else {
						keep = (p2 | p3 | not(p5)) & p4
					}

					if c == 1 && n >= 2 && n <= 3 && keep == 0 {
						marks = append(marks, i)
					}
				}
			}
			for _, i := range marks {
				img[i] = 0
			}
			changed = changed || len(marks) > 0
		}
		if !changed {
			break
		}
	}

	out := grid.NewMask(w, h)
	for i, v := range img {
		out.Pix[i] = v * grid.Foreground
	}
	return out, nil
}

func not(v uint8) uint8 {
	return 1 - v
}
