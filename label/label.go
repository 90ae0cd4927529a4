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

// Package label writes the nesting value of contours next to the contour
// lines.
package label

import (
	"image"
	"image/color"
	"image/draw"
	"strconv"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/isomap/contour"
)

// DefaultSpacing is the default minimal distance between two labels on
// the same contour, in pixels.
const DefaultSpacing = 150

// Placer draws value labels along contours.
type Placer struct {
	Face    font.Face
	Color   color.Color
	Spacing float64
}

// NewPlacer returns a Placer using a 7x13 bitmap font in black.
func NewPlacer() *Placer {
	return &Placer{
		Face:    basicfont.Face7x13,
		Color:   color.Black,
		Spacing: DefaultSpacing,
	}
}

// Positions returns the points of c which receive a label.
//
// The first point is always labelled.  A later point is labelled if it
// is at least Spacing away from the previous label, and the walk stops
// at the first such point which is closer than Spacing to the last point
// of the contour.
func (p *Placer) Positions(c *contour.Contour) []contour.Point {
	if len(c.Points) == 0 {
		return nil
	}
	last := c.Points[len(c.Points)-1]

	res := []contour.Point{c.Points[0]}
	prev := c.Points[0]
	for _, pt := range c.Points[1:] {
		if pt.Dist(prev) < p.Spacing {
			continue
		}
		if pt.Dist(last) < p.Spacing {
			break
		}
		res = append(res, pt)
		prev = pt
	}
	return res
}

// Text returns the label of c, the depth counted from 1.
func Text(c *contour.Contour) string {
	return strconv.Itoa(c.Depth + 1)
}

// Place draws the labels of c onto dst and returns the rectangles
// covered by the text.
func (p *Placer) Place(dst draw.Image, c *contour.Contour) []image.Rectangle {
	text := Text(c)
	m := p.Face.Metrics()
	width := font.MeasureString(p.Face, text).Ceil()
	ascent := m.Ascent.Ceil()
	height := ascent + m.Descent.Ceil()

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(p.Color),
		Face: p.Face,
	}

	var rects []image.Rectangle
	for _, pt := range p.Positions(c) {
		x := pt.X - width/2
		top := pt.Y - height/2
		d.Dot = fixed.P(x, top+ascent)
		d.DrawString(text)
		rects = append(rects, image.Rect(x, top, x+width, top+height))
	}
	return rects
}
