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

// Package isomap generates synthetic contour maps together with binary
// masks of their isolines, for use as machine learning training data.
//
// A map is made from a folded noise field.  The boundaries between the
// folds are thinned to curves of one pixel width, traced into ordered
// contours, and the nesting depth of every contour is computed.  The
// regions between contours are then filled with colours taken from a
// depth colour scale, and the contours are drawn on top, optionally with
// value labels and well markers.
//
// Basic use:
//
//	p := isomap.DefaultParams()
//	p.Seed = 42
//	res, err := isomap.New().Generate(ctx, p)
//
// Result.Image holds the map and Result.Mask the isoline mask, both with
// the requested size.
package isomap
