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

package noise

import (
	"context"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"seehuhn.de/go/isomap/grid"
)

// Generator turns a noise Source into a folded scalar field and its
// boundary mask.
type Generator struct {
	Source Source

	// XFreq and YFreq scale pixel coordinates before sampling.
	XFreq, YFreq float64

	// Amplitude multiplies the noise value before folding.  It controls
	// how many boundaries the mask contains.
	Amplitude float64

	// Workers limits the number of goroutines sampling rows.
	// Zero means runtime.GOMAXPROCS(0).
	Workers int
}

// Field samples the folded noise field on a w×h grid.
//
// Rows are sampled concurrently.  Each pixel depends only on its own
// coordinates, so the result does not depend on the number of workers.
func (g *Generator) Field(ctx context.Context, w, h int) (*grid.Field, error) {
	f := grid.NewField(w, h)
	if f.W == 0 || f.H == 0 {
		return f, nil
	}

	workers := g.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	band := (f.H + workers - 1) / workers

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for y0 := 0; y0 < f.H; y0 += band {
		y1 := min(y0+band, f.H)
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for y := y0; y < y1; y++ {
				row := f.Val[y*f.W : (y+1)*f.W]
				for x := range row {
					v := g.Source.Noise2D(float64(x)*g.XFreq, float64(y)*g.YFreq) * g.Amplitude
					row[x] = v - math.Floor(v)
				}
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return f, nil
}

// BoundaryMask samples the field and marks the pixels where the folded
// value wraps around.
//
// A degenerate configuration (zero amplitude, zero frequencies, or an
// empty size) gives an all-background mask.  The only error returned is
// the context error.
func (g *Generator) BoundaryMask(ctx context.Context, w, h int) (*grid.Mask, error) {
	f, err := g.Field(ctx, w, h)
	if err != nil {
		return nil, err
	}
	return Edges(f), nil
}
