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

package isomap

import (
	"math/rand/v2"

	"golang.org/x/image/font"

	"seehuhn.de/go/isomap/inpaint"
	"seehuhn.de/go/isomap/noise"
	"seehuhn.de/go/isomap/render"
	"seehuhn.de/go/isomap/thin"
)

// Option configures a Pipeline.
//
// Example:
//
//	pl := isomap.New(isomap.WithWorkers(4), isomap.WithInpainter(inpaint.OpenCV{}))
type Option func(*options)

type options struct {
	rng       *rand.Rand
	source    noise.Source
	skeleton  thin.Skeletonizer
	inpainter inpaint.Inpainter
	face      font.Face
	workers   int
	styles    *render.OutlineStyles
}

func defaultOptions() options {
	return options{
		skeleton:  thin.GuoHall{},
		inpainter: inpaint.Diffusion{},
	}
}

// WithRand sets the random source for the fill palette and for well
// placement.  By default a new source seeded from Params.Seed is used for
// every map.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		o.rng = rng
	}
}

// WithNoise replaces the Perlin noise seeded from Params.Seed.
func WithNoise(src noise.Source) Option {
	return func(o *options) {
		o.source = src
	}
}

// WithSkeletonizer sets the thinning algorithm.  The default is
// thin.GuoHall.
func WithSkeletonizer(s thin.Skeletonizer) Option {
	return func(o *options) {
		o.skeleton = s
	}
}

// WithInpainter sets the algorithm which restores pixels under traced
// contours and at the image border.  The default is inpaint.Diffusion.
func WithInpainter(in inpaint.Inpainter) Option {
	return func(o *options) {
		o.inpainter = in
	}
}

// WithLabelFace sets the font for value labels and well titles.
func WithLabelFace(face font.Face) Option {
	return func(o *options) {
		o.face = face
	}
}

// WithWorkers limits the number of goroutines used to sample noise.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithOutlineStyles sets the pens for closed and open contours.  The
// width in Params.OutlineWidth is ignored if this option is given.
func WithOutlineStyles(s render.OutlineStyles) Option {
	return func(o *options) {
		o.styles = &s
	}
}
