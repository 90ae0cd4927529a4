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

// Package noise generates the synthetic boundary masks from which contour
// maps are built.
//
// A smooth noise surface is scaled by an amplitude and folded into [0, 1)
// by keeping only the fractional part.  Every wrap-around of the fraction
// produces a sharp edge, and the edges detected by a Sobel filter form a
// family of nested, roughly iso-valued curves.
package noise

import (
	"math"

	"github.com/aquilax/go-perlin"
)

// Source is a smooth 2D noise function with values in [0, 1].
// Implementations must be safe for concurrent use.
type Source interface {
	Noise2D(x, y float64) float64
}

// Perlin parameters used by NewPerlin.
const (
	perlinAlpha   = 2
	perlinBeta    = 2
	perlinOctaves = 1
)

type perlinSource struct {
	p *perlin.Perlin
}

// NewPerlin returns a single-octave Perlin noise source.  Sources created
// with the same seed produce identical values.
func NewPerlin(seed int64) Source {
	return perlinSource{p: perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, seed)}
}

func (s perlinSource) Noise2D(x, y float64) float64 {
	v := s.p.Noise2D(x, y)*0.5 + 0.5
	return math.Min(math.Max(v, 0), 1)
}
