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

package fill

import (
	"fmt"
	"image/color"
	"math/rand/v2"
)

// Mode selects the end colours of the depth colour scale.
type Mode int

// These are the supported palette modes.
const (
	// Standard uses a fixed green to red ramp.
	Standard Mode = iota

	// Random draws two bright colours which are far apart.
	Random
)

func (m Mode) String() string {
	switch m {
	case Standard:
		return "standard"
	case Random:
		return "random"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts the output of Mode.String back to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "standard":
		return Standard, nil
	case "random":
		return Random, nil
	}
	return 0, fmt.Errorf("fill: unknown palette mode %q", s)
}

// The end colours of the Standard palette.
var (
	StandardLow  = color.RGBA{R: 27, G: 185, B: 18, A: 0xff}
	StandardHigh = color.RGBA{R: 185, G: 20, B: 20, A: 0xff}
)

// Constraints for the Random palette.
const (
	MinLuminance = 20.0
	MinDistance  = 200
)

// Palette returns the low and high end colours for mode.
// The random source is only used in Random mode.
func Palette(mode Mode, rng *rand.Rand) (lo, hi color.RGBA) {
	if mode != Random {
		return StandardLow, StandardHigh
	}
	lo = brightColor(rng)
	hi = brightColor(rng)
	for distance(lo, hi) < MinDistance {
		hi = brightColor(rng)
	}
	return lo, hi
}

// brightColor draws colours until one has at least MinLuminance.
func brightColor(rng *rand.Rand) color.RGBA {
	for {
		c := color.RGBA{
			R: uint8(rng.IntN(256)),
			G: uint8(rng.IntN(256)),
			B: uint8(rng.IntN(256)),
			A: 0xff,
		}
		if luminance(c) >= MinLuminance {
			return c
		}
	}
}

func luminance(c color.RGBA) float64 {
	return 0.2126*float64(c.R) + 0.7152*float64(c.G) + 0.0722*float64(c.B)
}

// distance is the L1 distance between the RGB channels of a and b.
func distance(a, b color.RGBA) int {
	d := func(x, y uint8) int {
		if x > y {
			return int(x - y)
		}
		return int(y - x)
	}
	return d(a.R, b.R) + d(a.G, b.G) + d(a.B, b.B)
}
