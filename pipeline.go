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
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math/rand/v2"
	"time"

	"seehuhn.de/go/isomap/contour"
	"seehuhn.de/go/isomap/fill"
	"seehuhn.de/go/isomap/grid"
	"seehuhn.de/go/isomap/label"
	"seehuhn.de/go/isomap/noise"
	"seehuhn.de/go/isomap/render"
	"seehuhn.de/go/isomap/well"
)

// A Generator produces one map per call.
type Generator interface {
	Generate(ctx context.Context, p Params) (*Result, error)
}

// Result is a generated map.
type Result struct {
	// Image is the map, Mask the isoline mask with boundary pixels set
	// to 255.  Both have the requested size.
	Image *image.RGBA
	Mask  *image.Gray

	// Contours, Labels and Wells describe the map.  Their coordinates
	// exclude the one pixel border of Image, so that Image pixel
	// (x+1, y+1) corresponds to point (x, y).  The Script backend leaves
	// them empty.
	Contours []contour.Contour
	Labels   map[int][]image.Rectangle
	Wells    []well.Well

	// Seed is the seed which was used.
	Seed int64
}

// Pixel colours of traced contours before filling.
var (
	closedMarker = color.RGBA{R: 75, G: 75, B: 75, A: 0xff}
	openMarker   = color.RGBA{R: 150, G: 100, B: 150, A: 0xff}
)

const (
	// border is the width of the frame removed after thinning and
	// restored by inpainting at the end.
	border = 1

	inpaintRadius = 3
)

// Pipeline generates maps in-process.
// A Pipeline may be used concurrently, unless WithRand was given.
type Pipeline struct {
	opts options
}

// New returns a Pipeline with the given options.
func New(opts ...Option) *Pipeline {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Pipeline{opts: o}
}

// Generate implements the Generator interface.
//
// The context is only checked between stages which work on whole
// images.  Tracing, depth resolution and filling always run to the end.
func (pl *Pipeline) Generate(ctx context.Context, p Params) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p = p.Normalize()

	seed := p.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := pl.opts.rng
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(seed), rngStream))
	}

	log := Logger().With("seed", seed)
	start := time.Now()

	res := &Result{Seed: seed}
	inner := image.Rect(0, 0, max(p.Width-2*border, 0), max(p.Height-2*border, 0))

	var canvas *render.Canvas
	if p.GenerateIsolines {
		mask, err := pl.boundaries(ctx, p, seed)
		if err != nil {
			return nil, err
		}
		log.Debug("noise", "boundary pixels", mask.Count(), "elapsed", time.Since(start))
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		res.Mask = mask.Gray()

		canvas, err = pl.draw(p, mask, rng, res)
		if err != nil {
			return nil, err
		}
	} else {
		res.Mask = image.NewGray(image.Rect(0, 0, p.Width, p.Height))
		canvas = render.NewCanvas(inner.Dx(), inner.Dy(), color.Black)
	}

	if p.Wells.Count > 0 {
		wp := p.Wells
		if wp.Face == nil {
			wp.Face = pl.opts.face
		}
		res.Wells = well.Draw(canvas, rng, wp)
	}

	img, err := pl.pad(canvas.Img, p.Width, p.Height)
	if err != nil {
		return nil, err
	}
	res.Image = img

	log.Debug("map done", "contours", len(res.Contours), "elapsed", time.Since(start))
	return res, nil
}

// rngStream is the second PCG seed word.
const rngStream = 0x69736f6d6170

// boundaries computes the full size boundary mask of the noise field.
func (pl *Pipeline) boundaries(ctx context.Context, p Params, seed int64) (*grid.Mask, error) {
	src := pl.opts.source
	if src == nil {
		src = noise.NewPerlin(seed)
	}
	gen := &noise.Generator{
		Source:    src,
		XFreq:     p.XFreq,
		YFreq:     p.YFreq,
		Amplitude: p.Amplitude,
		Workers:   pl.opts.workers,
	}
	return gen.BoundaryMask(ctx, p.Width, p.Height)
}

// draw turns the boundary mask into the map, without the outer border.
// The contours and labels are stored in res.
func (pl *Pipeline) draw(p Params, mask *grid.Mask, rng *rand.Rand, res *Result) (*render.Canvas, error) {
	log := Logger()
	t0 := time.Now()

	thinned, err := pl.opts.skeleton.Thin(mask)
	if err != nil {
		log.Warn("thinning failed", "error", err)
		return nil, fmt.Errorf("isomap: thinning: %w", err)
	}
	cropped := thinned.Crop(border)
	w, h := cropped.W, cropped.H

	contours := contour.Trace(cropped, contour.WithCloseThreshold(p.CloseThreshold))
	ids := contour.NewIDMask(w, h, contours)
	contour.ResolveDepths(ids, contours)
	res.Contours = contours
	log.Debug("trace", "contours", len(contours), "elapsed", time.Since(t0))

	bg := color.Color(color.White)
	if p.Fill {
		bg = fill.Sentinel
	}
	canvas := render.NewCanvas(w, h, bg)
	onContour := grid.NewMask(w, h)
	for i := range contours {
		c := &contours[i]
		col := openMarker
		if c.Closed {
			col = closedMarker
		}
		for _, pt := range c.Points {
			canvas.Img.SetRGBA(pt.X, pt.Y, col)
			onContour.Set(pt.X, pt.Y, grid.Foreground)
		}
	}

	if p.Fill {
		lo, hi := fill.Palette(p.FillMode, rng)
		f := &fill.Filler{Scale: fill.DepthScale(contours, lo, hi)}
		f.Fill(canvas.Img, ids, contours)
	}

	if err := pl.opts.inpainter.Inpaint(canvas.Img, onContour, inpaintRadius); err != nil {
		log.Warn("inpainting failed", "error", err)
		return nil, fmt.Errorf("isomap: inpainting contours: %w", err)
	}

	styles := render.DefaultOutlineStyles(p.OutlineWidth)
	if pl.opts.styles != nil {
		styles = *pl.opts.styles
	}
	var placer *label.Placer
	if p.DrawValues {
		placer = label.NewPlacer()
		if pl.opts.face != nil {
			placer.Face = pl.opts.face
		}
		placer.Spacing = float64(p.LabelSpacing)
	}
	res.Labels = decorate(canvas, contours, placer, styles)

	log.Debug("draw", "elapsed", time.Since(t0))
	return canvas, nil
}

// decorate labels and strokes the contours.  Each contour is labelled and
// then stroked before the next one, so an outline may cover the labels of
// earlier contours only.  The label rectangles are returned, or nil if
// placer is nil.
func decorate(canvas *render.Canvas, contours []contour.Contour, placer *label.Placer, styles render.OutlineStyles) map[int][]image.Rectangle {
	var labels map[int][]image.Rectangle
	if placer != nil {
		labels = make(map[int][]image.Rectangle, len(contours))
	}
	r := render.NewRasteriser(canvas.Clip())
	for i := range contours {
		c := &contours[i]
		var boxes []image.Rectangle
		if placer != nil {
			boxes = placer.Place(canvas.Img, c)
			labels[c.ID] = boxes
		}
		render.OutlineContour(canvas, r, c, styles, boxes)
	}
	return labels
}

// pad places img in the middle of a w×h white image and inpaints the
// border around it.
func (pl *Pipeline) pad(img *image.RGBA, w, h int) (*image.RGBA, error) {
	out := render.NewCanvas(w, h, color.White).Img
	r := img.Bounds().Add(image.Pt(border, border)).Intersect(out.Bounds())
	draw.Draw(out, r, img, img.Bounds().Min, draw.Src)

	frame := grid.NewMask(w, h)
	for y := range h {
		for x := range w {
			if !(image.Point{X: x, Y: y}).In(r) {
				frame.Set(x, y, grid.Foreground)
			}
		}
	}
	if err := pl.opts.inpainter.Inpaint(out, frame, inpaintRadius); err != nil {
		Logger().Warn("inpainting failed", "error", err)
		return nil, fmt.Errorf("isomap: inpainting border: %w", err)
	}
	return out, nil
}
