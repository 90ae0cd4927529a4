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

// Package export writes traced contours to sidecar files: JSON records,
// SVG and PDF drawings, and a potrace vectorisation of the boundary mask.
package export

import (
	"encoding/json"
	"fmt"
	"image"
	"io"
	"maps"
	"slices"

	"seehuhn.de/go/isomap/contour"
	"seehuhn.de/go/isomap/well"
)

// Document collects everything known about one generated map.
type Document struct {
	Width, Height int
	Contours      []contour.Contour

	// Labels maps contour IDs to the rectangles occupied by value
	// labels.  It may be nil.
	Labels map[int][]image.Rectangle

	Wells []well.Well
}

type jsonDocument struct {
	Width    int           `json:"width"`
	Height   int           `json:"height"`
	Contours []jsonContour `json:"contours"`
	Wells    []jsonWell    `json:"wells,omitempty"`
}

type jsonContour struct {
	ID     int      `json:"id"`
	Value  int32    `json:"value"`
	Depth  int      `json:"depth"`
	Closed bool     `json:"closed"`
	Bounds [4]int   `json:"bounds"` // x0, y0, x1, y1, inclusive
	Points int      `json:"points"`
	Labels [][4]int `json:"labels,omitempty"`
}

type jsonWell struct {
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Color string `json:"color"`
	Title string `json:"title,omitempty"`
}

// WriteJSON writes one record per contour, with the label rectangles of
// the contour, followed by the wells.
func WriteJSON(w io.Writer, d *Document) error {
	out := jsonDocument{
		Width:    d.Width,
		Height:   d.Height,
		Contours: make([]jsonContour, 0, len(d.Contours)),
	}
	for i := range d.Contours {
		c := &d.Contours[i]
		jc := jsonContour{
			ID:     c.ID,
			Value:  c.Value,
			Depth:  c.Depth,
			Closed: c.Closed,
			Bounds: [4]int{c.Bounds.Min.X, c.Bounds.Min.Y, c.Bounds.Max.X, c.Bounds.Max.Y},
			Points: len(c.Points),
		}
		for _, r := range d.Labels[c.ID] {
			jc.Labels = append(jc.Labels, [4]int{r.Min.X, r.Min.Y, r.Max.X, r.Max.Y})
		}
		out.Contours = append(out.Contours, jc)
	}
	for _, wl := range d.Wells {
		out.Wells = append(out.Wells, jsonWell{
			X:     wl.Center.X,
			Y:     wl.Center.Y,
			Color: hexColor(wl.Color.R, wl.Color.G, wl.Color.B),
			Title: wl.Title,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// labelIDs returns the contour IDs which have labels, in increasing order.
func (d *Document) labelIDs() []int {
	return slices.Sorted(maps.Keys(d.Labels))
}

func hexColor(r, g, b uint8) string {
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}
