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

// Package well draws well markers: filled discs at random positions, with
// an optional outline and a random number as title.
package well

import (
	"image"
	"image/color"
	"math/rand/v2"
	"strconv"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/isomap/render"
)

// Params controls the appearance of well markers.
type Params struct {
	Count  int // number of wells
	Radius int // disc radius in pixels

	// Outline is the width of the black ring around each disc.  Zero
	// disables the ring.
	Outline float64

	// DrawTitle enables the numeric title to the upper right of each
	// well.  TitleOffset is the gap between the disc and the title.
	DrawTitle   bool
	TitleOffset int

	// Face is used for titles.  If nil, a 7x13 bitmap font is used.
	Face font.Face
}

// DefaultParams returns the parameters for small outlined wells with
// titles.  Count is zero.
func DefaultParams() Params {
	return Params{
		Radius:      5,
		Outline:     1,
		DrawTitle:   true,
		TitleOffset: 2,
	}
}

// Well describes one marker which has been drawn.
type Well struct {
	Center image.Point
	Radius int
	Color  color.RGBA
	Title  string // empty if no title was drawn
}

// maxTitle bounds the random well numbers.
const maxTitle = 999

// Draw places p.Count wells at uniformly random pixels of the canvas.
// All wells of one call share a random fill colour.
func Draw(c *render.Canvas, rng *rand.Rand, p Params) []Well {
	b := c.Img.Bounds()
	if p.Count <= 0 || b.Empty() {
		return nil
	}

	col := color.RGBA{
		R: uint8(rng.IntN(255)),
		G: uint8(rng.IntN(255)),
		B: uint8(rng.IntN(255)),
		A: 0xff,
	}
	face := p.Face
	if face == nil {
		face = basicfont.Face7x13
	}
	title := &font.Drawer{
		Dst:  c.Img,
		Src:  image.NewUniform(color.Black),
		Face: face,
	}

	r := render.NewRasteriser(c.Clip())
	r.Cap = graphics.LineCapButt
	r.Width = p.Outline

	wells := make([]Well, 0, p.Count)
	for range p.Count {
		w := Well{
			Center: image.Point{
				X: b.Min.X + rng.IntN(b.Dx()),
				Y: b.Min.Y + rng.IntN(b.Dy()),
			},
			Radius: p.Radius,
			Color:  col,
		}

		disc := render.Circle(vec.Vec2{
			X: float64(w.Center.X) + 0.5,
			Y: float64(w.Center.Y) + 0.5,
		}, float64(p.Radius))
		r.FillNonZero(disc, c.Paint(col))
		if p.Outline > 0 {
			r.Stroke(disc, c.Paint(color.Black))
		}

		if p.DrawTitle {
			w.Title = strconv.Itoa(rng.IntN(maxTitle))
			off := p.Radius + p.TitleOffset
			title.Dot = fixed.P(w.Center.X+off, w.Center.Y-off)
			title.DrawString(w.Title)
		}
		wells = append(wells, w)
	}
	return wells
}
