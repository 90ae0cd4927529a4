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

// Package fill colours the regions between traced contours according to
// their nesting depth.
package fill

import (
	"image/color"
	"math"
)

// ColorScale maps real values linearly onto a colour ramp.
// Values outside [Min, Max] are clamped to the end colours.
type ColorScale struct {
	Min, Max           float64
	MinColor, MaxColor color.RGBA
}

// NewColorScale returns a scale from minColor at min to maxColor at max.
func NewColorScale(min, max float64, minColor, maxColor color.RGBA) *ColorScale {
	return &ColorScale{Min: min, Max: max, MinColor: minColor, MaxColor: maxColor}
}

// Get returns the colour for v.  Each channel is interpolated separately
// and rounded to the nearest integer.  The alpha channel is always opaque.
func (s *ColorScale) Get(v float64) color.RGBA {
	if v < s.Min || s.Max <= s.Min {
		return opaque(s.MinColor)
	}
	if v > s.Max {
		return opaque(s.MaxColor)
	}
	t := (v - s.Min) / (s.Max - s.Min)
	lerp := func(a, b uint8) uint8 {
		return uint8(math.Round(float64(a) + t*(float64(b)-float64(a))))
	}
	return color.RGBA{
		R: lerp(s.MinColor.R, s.MaxColor.R),
		G: lerp(s.MinColor.G, s.MaxColor.G),
		B: lerp(s.MinColor.B, s.MaxColor.B),
		A: 0xff,
	}
}

func opaque(c color.RGBA) color.RGBA {
	c.A = 0xff
	return c
}
