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
	"time"
)

// Batch generates n maps with g and hands each of them to sink, in order.
//
// If p.Seed is nonzero, map i uses seed p.Seed+i, so that a batch can be
// reproduced.  Cancellation of ctx is checked before each map; a map
// which has been started is always finished.  Batch stops at the first
// error from g or sink.
func Batch(ctx context.Context, g Generator, p Params, n int, sink func(i int, r *Result) error) error {
	base := p.Seed
	for i := range n {
		if err := ctx.Err(); err != nil {
			return err
		}
		if base != 0 {
			p.Seed = base + int64(i)
		}

		start := time.Now()
		res, err := g.Generate(context.WithoutCancel(ctx), p)
		if err != nil {
			return err
		}
		Logger().Info("map generated", "index", i, "seed", res.Seed, "elapsed", time.Since(start))

		if err := sink(i, res); err != nil {
			return err
		}
	}
	return nil
}
